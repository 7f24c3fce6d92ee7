package progress

import (
	"testing"

	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/settings"
	"pgregory.net/rapid"
)

// sampleTokens is a representative slice of the capability alphabet, wide
// enough to exercise equipment, key, and event queries without needing an
// exported enumeration of every Token from pkg/capability.
var sampleTokens = []capability.Token{
	capability.Sword01, capability.Sword02, capability.Sword03, capability.Sword04,
	capability.Bow01, capability.Bow02,
	capability.Bombs01, capability.Bombs02,
	capability.Glove01, capability.Glove02,
	capability.RaviosBracelet01, capability.RaviosBracelet02,
	capability.Net01, capability.Net02,
	capability.Lamp01, capability.Lamp02,
	capability.Flippers, capability.PegasusBoots,
	capability.MaiamaiUpgrade,
	capability.EasternKeySmall01, capability.EasternKeySmall02, capability.EasternKeyBig,
}

func anyToken(t *rapid.T) capability.Token {
	return rapid.SampledFrom(sampleTokens).Draw(t, "token")
}

func anyProgress(t *rapid.T) *Progress {
	s := settings.Default()
	p := New(s)
	n := rapid.IntRange(0, len(sampleTokens)).Draw(t, "n")
	for i := 0; i < n; i++ {
		p.Add(anyToken(t))
	}
	return p
}

// Add is idempotent: adding the same token twice leaves every query result
// identical to adding it once.
func TestRapidAddIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := anyProgress(t)
		tok := anyToken(t)

		p.Add(tok)
		once := snapshotQueries(p)

		p.Add(tok)
		twice := snapshotQueries(p)

		for name, want := range once {
			if twice[name] != want {
				t.Fatalf("adding %v twice changed query %s: %v vs %v", tok, name, want, twice[name])
			}
		}
	})
}

// Adding a token is monotone: every boolean query that was true before Add
// remains true after, for every query in snapshotQueries.
func TestRapidAddIsMonotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := anyProgress(t)
		before := snapshotQueries(p)

		p.Add(anyToken(t))

		after := snapshotQueries(p)
		for name, wasTrue := range before {
			if wasTrue && !after[name] {
				t.Fatalf("query %s was true before Add and false after; capability queries must be monotone", name)
			}
		}
	})
}

// Clone is independent: mutating the clone never affects the original.
func TestRapidCloneIsIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := anyProgress(t)
		c := p.Clone()
		before := snapshotQueries(p)

		c.Add(anyToken(t))

		after := snapshotQueries(p)
		for name, wasTrue := range before {
			if wasTrue != after[name] {
				t.Fatalf("mutating a clone changed the original's %s query", name)
			}
		}
	})
}

func snapshotQueries(p *Progress) map[string]bool {
	return map[string]bool{
		"HasBow":         p.HasBow(),
		"HasBombs":       p.HasBombs(),
		"HasNiceBombs":   p.HasNiceBombs(),
		"HasSword":       p.HasSword(),
		"HasMasterSword": p.HasMasterSword(),
		"HasTitansMitt":  p.HasTitansMitt(),
		"CanMerge":       p.CanMerge(),
		"HasNet":         p.HasNet(),
		"HasLamp":        p.HasLamp(),
		"HasFireSource":  p.HasFireSource(),
		"CanAttack":      p.CanAttack(),
		"CanHitSwitch":   p.CanHitSwitch(),
		"HasEasternKeys": p.Count(capability.EasternKeySmall01, capability.EasternKeySmall02) > 0,
	}
}
