package patch

import (
	"fmt"

	"github.com/dshills/logicfill/pkg/item"
)

// Kind selects which Patcher method a Descriptor is routed to.
type Kind int

const (
	Chest Kind = iota
	BigChest
	Key
	Heart
	Maiamai
	SilverRupee
	GoldRupee
	Event
	Shop
)

// Descriptor locates one Check inside the proprietary game image. Course,
// Stage, and Unq mirror the identifiers the original game's scene format
// uses to address an actor instance; Index and Name cover event and shop
// slots which are addressed differently.
type Descriptor struct {
	Kind   Kind
	Course string
	Stage  int
	Unq    int
	Index  int
	Name   string
}

// Patcher is the external collaborator the core calls to write a finished
// Layout into game assets. Implementations perform the actual ROM/scene
// patching; the core only supplies Descriptor+Item pairs and calls
// Finalise once every Check has been applied.
type Patcher interface {
	ApplyChest(d Descriptor, it item.Item) error
	ApplyBigChest(d Descriptor, it item.Item) error
	ApplyKey(d Descriptor, it item.Item) error
	ApplyHeart(d Descriptor, it item.Item) error
	ApplyMaiamai(d Descriptor, it item.Item) error
	ApplySilverRupee(d Descriptor, it item.Item) error
	ApplyGoldRupee(d Descriptor, it item.Item) error
	ApplyEvent(d Descriptor, it item.Item) error
	ApplyShop(d Descriptor, it item.Item) error
	Finalise() ([]byte, error)
}

// Apply dispatches a Descriptor to the Patcher method matching its Kind.
func Apply(p Patcher, d Descriptor, it item.Item) error {
	switch d.Kind {
	case Chest:
		return p.ApplyChest(d, it)
	case BigChest:
		return p.ApplyBigChest(d, it)
	case Key:
		return p.ApplyKey(d, it)
	case Heart:
		return p.ApplyHeart(d, it)
	case Maiamai:
		return p.ApplyMaiamai(d, it)
	case SilverRupee:
		return p.ApplySilverRupee(d, it)
	case GoldRupee:
		return p.ApplyGoldRupee(d, it)
	case Event:
		return p.ApplyEvent(d, it)
	case Shop:
		return p.ApplyShop(d, it)
	default:
		return fmt.Errorf("patch: unknown descriptor kind %d", d.Kind)
	}
}
