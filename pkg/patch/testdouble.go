package patch

import "github.com/dshills/logicfill/pkg/item"

// NopPatcher discards every call. Useful for fill-engine tests that only
// care about the resulting Layout, not the patched artifact.
type NopPatcher struct{}

func (NopPatcher) ApplyChest(Descriptor, item.Item) error       { return nil }
func (NopPatcher) ApplyBigChest(Descriptor, item.Item) error    { return nil }
func (NopPatcher) ApplyKey(Descriptor, item.Item) error         { return nil }
func (NopPatcher) ApplyHeart(Descriptor, item.Item) error       { return nil }
func (NopPatcher) ApplyMaiamai(Descriptor, item.Item) error     { return nil }
func (NopPatcher) ApplySilverRupee(Descriptor, item.Item) error { return nil }
func (NopPatcher) ApplyGoldRupee(Descriptor, item.Item) error   { return nil }
func (NopPatcher) ApplyEvent(Descriptor, item.Item) error       { return nil }
func (NopPatcher) ApplyShop(Descriptor, item.Item) error        { return nil }
func (NopPatcher) Finalise() ([]byte, error)                    { return nil, nil }

// Call records one Apply* invocation against a RecordingPatcher.
type Call struct {
	Descriptor Descriptor
	Item       item.Item
}

// RecordingPatcher records every call it receives in order, for assertions
// in fill-engine tests.
type RecordingPatcher struct {
	Calls     []Call
	Finalised bool
}

func (r *RecordingPatcher) record(d Descriptor, it item.Item) error {
	r.Calls = append(r.Calls, Call{Descriptor: d, Item: it})
	return nil
}

func (r *RecordingPatcher) ApplyChest(d Descriptor, it item.Item) error       { return r.record(d, it) }
func (r *RecordingPatcher) ApplyBigChest(d Descriptor, it item.Item) error    { return r.record(d, it) }
func (r *RecordingPatcher) ApplyKey(d Descriptor, it item.Item) error         { return r.record(d, it) }
func (r *RecordingPatcher) ApplyHeart(d Descriptor, it item.Item) error       { return r.record(d, it) }
func (r *RecordingPatcher) ApplyMaiamai(d Descriptor, it item.Item) error     { return r.record(d, it) }
func (r *RecordingPatcher) ApplySilverRupee(d Descriptor, it item.Item) error { return r.record(d, it) }
func (r *RecordingPatcher) ApplyGoldRupee(d Descriptor, it item.Item) error   { return r.record(d, it) }
func (r *RecordingPatcher) ApplyEvent(d Descriptor, it item.Item) error       { return r.record(d, it) }
func (r *RecordingPatcher) ApplyShop(d Descriptor, it item.Item) error        { return r.record(d, it) }

func (r *RecordingPatcher) Finalise() ([]byte, error) {
	r.Finalised = true
	return nil, nil
}
