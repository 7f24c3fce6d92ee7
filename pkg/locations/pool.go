package locations

import (
	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/fill"
	"github.com/dshills/logicfill/pkg/item"
)

func keyRings() map[string]capability.KeyRing {
	return map[string]capability.KeyRing{
		"Eastern Palace": {
			Small: []capability.Token{capability.EasternKeySmall01, capability.EasternKeySmall02},
			Big:   capability.EasternKeyBig,
		},
		"House of Gales": {
			Small: []capability.Token{
				capability.GalesKeySmall01, capability.GalesKeySmall02,
				capability.GalesKeySmall03, capability.GalesKeySmall04,
			},
			Big: capability.GalesKeyBig,
		},
		"Tower of Hera": {
			Small: []capability.Token{capability.HeraKeySmall01, capability.HeraKeySmall02},
			Big:   capability.HeraKeyBig,
		},
		"Dark Palace": {
			Small: []capability.Token{
				capability.DarkKeySmall01, capability.DarkKeySmall02,
				capability.DarkKeySmall03, capability.DarkKeySmall04,
			},
			Big: capability.DarkKeyBig,
		},
	}
}

func manifests() []fill.DungeonManifest {
	return []fill.DungeonManifest{
		{Name: "Eastern Palace", SmallKeys: 2, BigKey: true, Compass: true},
		{Name: "House of Gales", SmallKeys: 4, BigKey: true, Compass: true},
		{Name: "Tower of Hera", SmallKeys: 2, BigKey: true, Compass: true},
		{Name: "Dark Palace", SmallKeys: 4, BigKey: true, Compass: true},
	}
}

// progressionPool lists every copy of every non-dungeon-scoped, non-quest
// progression item this sample world places. Quantities are chosen to
// exercise every boss predicate family reachable from the graph in
// table.go, not to transcribe a complete item catalog; see DESIGN.md.
func progressionPool() []item.Item {
	var pool []item.Item
	add := func(it item.Item, n int) {
		for i := 0; i < n; i++ {
			pool = append(pool, it)
		}
	}
	add(item.Bow, 2)
	add(item.Bombs, 2)
	add(item.FireRod, 2)
	add(item.IceRod, 1)
	add(item.Hammer, 1)
	add(item.Hookshot, 1)
	add(item.Boomerang, 1)
	add(item.TornadoRod, 2)
	add(item.Lamp, 1)
	add(item.Glove, 1)
	add(item.Bracelet, 1)
	add(item.Flippers, 1)
	add(item.Bottle, 1)
	add(item.SwordL2, 1)
	add(item.Bell, 1)
	return pool
}

// junkPool is sized to exactly match the number of Checks left empty after
// quest, dungeon-manifest, and progression placement: 33 overworld checks
// minus 19 progression items (14), plus the two non-quest Checks each
// dungeon has beyond its manifest's item count, across 4 dungeons (8).
// Which two Checks those are varies by seed.
// Build's caller relies on this balancing; adding a Check or a
// progression copy to table.go/progressionPool without updating this
// count will surface as ferrors.InvariantViolation at fill time.
func junkPool() []item.Item {
	cycle := []item.Item{
		item.RupeeR, item.RupeeG, item.RupeeB, item.RupeePurple,
		item.RupeeSilver, item.RupeeGold, item.Heart, item.HeartPiece, item.Maiamai,
	}
	const total = 22
	pool := make([]item.Item, total)
	for i := range pool {
		pool[i] = cycle[i%len(cycle)]
	}
	return pool
}

func pool() fill.Pool {
	return fill.Pool{
		KeyRings:    keyRings(),
		Manifests:   manifests(),
		Progression: progressionPool(),
		Junk:        junkPool(),
	}
}
