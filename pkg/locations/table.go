package locations

import (
	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/fill"
	"github.com/dshills/logicfill/pkg/logic"
	"github.com/dshills/logicfill/pkg/patch"
	"github.com/dshills/logicfill/pkg/progress"
	"github.com/dshills/logicfill/pkg/world"
)

func hyrule(id string) world.Subregion { return world.Subregion{World: world.Hyrule, Region: "Overworld", ID: id} }
func lorule(id string) world.Subregion { return world.Subregion{World: world.Lorule, Region: "Overworld", ID: id} }
func dungeon(name, id string) world.Subregion {
	return world.Subregion{World: world.Dungeons, Region: name, ID: id}
}

func open() logic.Logic { return logic.Free() }

func need(p logic.Predicate) logic.Logic { return logic.Logic{Normal: p} }

// needHard supplements a Normal predicate with a Hard-tier predicate that
// also grants access, without replacing the Normal route.
func needHard(normal, hard logic.Predicate) logic.Logic {
	return logic.Logic{Normal: normal, Hard: hard}
}

// needGlitchBasic supplements a Normal predicate with a GlitchBasic-tier
// predicate, for routes that only open up once glitched movement tricks
// are in logic.
func needGlitchBasic(normal, glitch logic.Predicate) logic.Logic {
	return logic.Logic{Normal: normal, GlitchBasic: glitch}
}

// needGlitchAdvanced supplements a Normal predicate with a
// GlitchAdvanced-tier predicate, for the deepest sample routes.
func needGlitchAdvanced(normal, glitch logic.Predicate) logic.Logic {
	return logic.Logic{Normal: normal, GlitchAdvanced: glitch}
}

func chest(name string) patch.Descriptor    { return patch.Descriptor{Kind: patch.Chest, Name: name} }
func bigChest(name string) patch.Descriptor { return patch.Descriptor{Kind: patch.BigChest, Name: name} }
func key(name string) patch.Descriptor      { return patch.Descriptor{Kind: patch.Key, Name: name} }
func heart(name string) patch.Descriptor    { return patch.Descriptor{Kind: patch.Heart, Name: name} }
func event(name string) patch.Descriptor    { return patch.Descriptor{Kind: patch.Event, Name: name} }

func questCheck(name string, tok capability.Token, l logic.Logic) world.Check {
	t := tok
	return world.Check{Name: name, Logic: l, Quest: &t, Patch: event(name)}
}

// entry pairs a Subregion with its LocationNode. table.go builds ordered
// slices of these, never maps: Graph.AddNode must be called in a stable
// order because Graph.order drives the traversal order ReachableChecks and
// Collect use, and that order has to stay identical across runs with the
// same seed for the fill engine's RNG draws to be reproducible.
type entry struct {
	sr   world.Subregion
	node world.LocationNode
}

func addNodes(g *world.Graph, entries []entry) error {
	for _, e := range entries {
		if err := g.AddNode(e.sr, e.node); err != nil {
			return err
		}
	}
	return nil
}

// Build assembles the sample Hyrule/Lorule/Dungeons world graph together
// with the key rings, dungeon manifests, and item pools a fill run needs.
// It exercises four boss predicates (Yuga, Margomill, Moldorm, Gemasaur),
// tier-specific routes up to GlitchAdvanced, and the merge-gated
// Hyrule-to-Lorule transition, without attempting to transcribe the full
// original game.
func Build() (*world.Graph, fill.Pool, error) {
	g := world.NewGraph(hyrule("Start"))

	if err := addNodes(g, overworldEntries()); err != nil {
		return nil, fill.Pool{}, err
	}
	if err := addNodes(g, easternPalaceEntries()); err != nil {
		return nil, fill.Pool{}, err
	}
	if err := addNodes(g, houseOfGalesEntries()); err != nil {
		return nil, fill.Pool{}, err
	}
	if err := addNodes(g, towerOfHeraEntries()); err != nil {
		return nil, fill.Pool{}, err
	}
	if err := addNodes(g, darkPalaceEntries()); err != nil {
		return nil, fill.Pool{}, err
	}

	if err := g.Validate(); err != nil {
		return nil, fill.Pool{}, err
	}

	return g, pool(), nil
}

func overworldEntries() []entry {
	return []entry{
		{hyrule("Start"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Tree Stump", Logic: open(), Patch: chest("Tree Stump")},
				{Name: "Bee Guy", Logic: open(), Patch: chest("Bee Guy")},
				{Name: "Haunted Grove Stump", Logic: open(), Patch: chest("Haunted Grove Stump")},
			},
			Paths: []world.Path{
				{Target: hyrule("Kakariko"), Logic: open()},
				{Target: hyrule("EasternRuins"), Logic: open()},
				{Target: hyrule("DesertEntrance"), Logic: open()},
				{Target: hyrule("DeathMountainFoot"), Logic: open()},
				{Target: hyrule("LakeHyliaShore"), Logic: need((*progress.Progress).HasFlippers)},
			},
		}},
		{hyrule("Kakariko"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Well Chest", Logic: open(), Patch: chest("Well Chest")},
				{Name: "Milk Bar Owner", Logic: open(), Patch: chest("Milk Bar Owner")},
				{Name: "Rupee Rush", Logic: open(), Patch: chest("Rupee Rush")},
				{Name: "Ravio's Shop", Logic: open(), Patch: chest("Ravio's Shop")},
				{Name: "Cucco Ranch", Logic: open(), Patch: chest("Cucco Ranch")},
			},
			Paths: []world.Path{
				{Target: hyrule("Start"), Logic: open()},
				{Target: hyrule("LostWoods"), Logic: need((*progress.Progress).HasLamp)},
			},
		}},
		{hyrule("EasternRuins"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Merge Stone", Logic: open(), Patch: chest("Merge Stone")},
				{Name: "Hyrule Hotfoot", Logic: open(), Patch: chest("Hyrule Hotfoot")},
				{Name: "Pegasus Boots Owner", Logic: open(), Patch: chest("Pegasus Boots Owner")},
			},
			Paths: []world.Path{
				{Target: hyrule("Start"), Logic: open()},
				{Target: dungeon("Eastern Palace", "Entry"), Logic: open()},
			},
		}},
		{hyrule("DesertEntrance"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Sand Dune", Logic: open(), Patch: chest("Sand Dune")},
				{Name: "Buried Chest", Logic: need((*progress.Progress).HasPowerGlove), Patch: chest("Buried Chest")},
			},
			Paths: []world.Path{
				{Target: hyrule("Start"), Logic: open()},
				{Target: hyrule("WindReef"), Logic: need((*progress.Progress).HasBombs)},
			},
		}},
		{hyrule("WindReef"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Windmill Cave", Logic: open(), Patch: chest("Windmill Cave")},
				{Name: "Wind Shrine", Logic: open(), Patch: chest("Wind Shrine")},
			},
			Paths: []world.Path{
				{Target: dungeon("House of Gales", "Entry"), Logic: open()},
			},
		}},
		{hyrule("DeathMountainFoot"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Rosso's House", Logic: open(), Patch: chest("Rosso's House")},
				{Name: "Rosso's Ore Mine", Logic: open(), Patch: chest("Rosso's Ore Mine")},
			},
			Paths: []world.Path{
				{Target: hyrule("Start"), Logic: open()},
				{Target: hyrule("DeathMountainTop"), Logic: need((*progress.Progress).HasHammer)},
			},
		}},
		{hyrule("DeathMountainTop"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Spectacle Rock", Logic: open(), Patch: chest("Spectacle Rock")},
				{Name: "Fairy Cave", Logic: open(), Patch: chest("Fairy Cave")},
			},
			Paths: []world.Path{
				{Target: dungeon("Tower of Hera", "Entry"), Logic: open()},
			},
		}},
		{hyrule("LakeHyliaShore"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Lake Chest", Logic: open(), Patch: chest("Lake Chest")},
				{Name: "Turtle Rock Hint", Logic: open(), Patch: chest("Turtle Rock Hint")},
				{Name: "Ice Cave", Logic: open(), Patch: chest("Ice Cave")},
			},
			Paths: []world.Path{
				{Target: hyrule("Start"), Logic: open()},
			},
		}},
		{hyrule("LostWoods"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Golden Bee Shop", Logic: open(), Patch: chest("Golden Bee Shop")},
				{Name: "Fortune Teller", Logic: open(), Patch: chest("Fortune Teller")},
			},
			Paths: []world.Path{
				{Target: hyrule("Kakariko"), Logic: open()},
				{Target: hyrule("MergePlains"), Logic: open()},
			},
		}},
		{hyrule("MergePlains"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Bee Guy House", Logic: open(), Patch: chest("Bee Guy House")},
				{Name: "Haunted Grove Tree", Logic: open(), Patch: chest("Haunted Grove Tree")},
			},
			Paths: []world.Path{
				{Target: hyrule("LostWoods"), Logic: open()},
				{Target: lorule("Entry"), Logic: needHard((*progress.Progress).CanMerge, (*progress.Progress).CanSwordClip)},
			},
		}},
		{lorule("Entry"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Lorule Field Cave", Logic: open(), Patch: chest("Lorule Field Cave")},
				{Name: "Big Bomb Flower Shop", Logic: open(), Patch: chest("Big Bomb Flower Shop")},
			},
			Paths: []world.Path{
				{Target: lorule("LostWoods"), Logic: need((*progress.Progress).HasHookshot)},
				{Target: lorule("DarkPalaceApproach"), Logic: open()},
			},
		}},
		{lorule("LostWoods"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Vacant House", Logic: open(), Patch: chest("Vacant House")},
				{Name: "Thief Girl Cave", Logic: open(), Patch: chest("Thief Girl Cave")},
				{Name: "Great Rupee Fairy", Logic: open(), Patch: chest("Great Rupee Fairy")},
			},
			Paths: []world.Path{
				{Target: lorule("Entry"), Logic: open()},
			},
		}},
		{lorule("DarkPalaceApproach"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Dark Maze Chest", Logic: open(), Patch: chest("Dark Maze Chest")},
				{Name: "Lorule Lake Chest", Logic: open(), Patch: chest("Lorule Lake Chest")},
			},
			Paths: []world.Path{
				{Target: lorule("Entry"), Logic: open()},
				{Target: dungeon("Dark Palace", "Entry"), Logic: need((*progress.Progress).HasFireSource)},
			},
		}},
	}
}

func easternPalaceEntries() []entry {
	const d = "Eastern Palace"
	return []entry{
		{dungeon(d, "Entry"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 1", Logic: open(), Patch: key("EP Key 1")},
				{Name: "Compass Chest", Logic: open(), Patch: chest("EP Compass")},
			},
			Paths: []world.Path{
				// Hard tier: a ranged switch hit through the bars trips the
				// door mechanism without needing the first small key.
				{Target: dungeon(d, "KeyArea"), Logic: needHard(
					func(p *progress.Progress) bool { return p.HasEasternKeys(1) },
					(*progress.Progress).CanHitFarSwitch,
				)},
			},
		}},
		{dungeon(d, "KeyArea"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 2", Logic: open(), Patch: key("EP Key 2")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "BigChestArea"), Logic: need(func(p *progress.Progress) bool { return p.HasEasternKeys(2) })},
			},
		}},
		{dungeon(d, "BigChestArea"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Switch Chest", Logic: open(), Patch: chest("EP Switch Chest")},
				{Name: "Big Chest", Logic: need((*progress.Progress).HasEasternBigKey), Patch: bigChest("EP Big Chest")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "BossDoor"), Logic: need((*progress.Progress).HasEasternBigKey)},
			},
		}},
		{dungeon(d, "BossDoor"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Boss Heart", Logic: need((*progress.Progress).CanDefeatYuga), Patch: heart("EP Boss Heart")},
				questCheck("Pendant of Courage", capability.PendantOfCourage, need((*progress.Progress).CanDefeatYuga)),
			},
		}},
	}
}

func houseOfGalesEntries() []entry {
	const d = "House of Gales"
	return []entry{
		{dungeon(d, "Entry"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 1", Logic: open(), Patch: key("HG Key 1")},
				{Name: "Compass Chest", Logic: open(), Patch: chest("HG Compass")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "Area2"), Logic: need(func(p *progress.Progress) bool { return p.HasGalesKeys(1) })},
			},
		}},
		{dungeon(d, "Area2"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 2", Logic: open(), Patch: key("HG Key 2")},
			},
			Paths: []world.Path{
				// GlitchBasic tier: a Sand Rod pillar can substitute for the
				// Tornado Rod updraft with a well-placed vacuum pull.
				{Target: dungeon(d, "Area3"), Logic: needGlitchBasic(
					func(p *progress.Progress) bool { return p.HasGalesKeys(2) && p.HasTornadoRod() },
					func(p *progress.Progress) bool { return p.HasGalesKeys(2) && p.HasSandRod() },
				)},
			},
		}},
		{dungeon(d, "Area3"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 3", Logic: open(), Patch: key("HG Key 3")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "Area4"), Logic: need(func(p *progress.Progress) bool { return p.HasGalesKeys(3) })},
			},
		}},
		{dungeon(d, "Area4"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 4", Logic: open(), Patch: key("HG Key 4")},
				{Name: "Switch Chest", Logic: open(), Patch: chest("HG Switch Chest")},
				{Name: "Big Chest", Logic: need((*progress.Progress).HasGalesBigKey), Patch: bigChest("HG Big Chest")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "BossDoor"), Logic: need(func(p *progress.Progress) bool { return p.HasGalesKeys(4) })},
			},
		}},
		{dungeon(d, "BossDoor"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Boss Heart", Logic: need((*progress.Progress).CanDefeatMargomill), Patch: heart("HG Boss Heart")},
				questCheck("Pendant of Wisdom", capability.PendantOfWisdom, need((*progress.Progress).CanDefeatMargomill)),
			},
		}},
	}
}

func towerOfHeraEntries() []entry {
	const d = "Tower of Hera"
	return []entry{
		{dungeon(d, "Entry"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 1", Logic: open(), Patch: key("ToH Key 1")},
				{Name: "Compass Chest", Logic: open(), Patch: chest("ToH Compass")},
			},
			Paths: []world.Path{
				// Hard tier: a Hookshot grapple across the gap skips needing
				// the first small key entirely.
				{Target: dungeon(d, "Mid"), Logic: needHard(
					func(p *progress.Progress) bool { return p.HasHeraKeys(1) },
					(*progress.Progress).HasHookshot,
				)},
			},
		}},
		{dungeon(d, "Mid"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 2", Logic: open(), Patch: key("ToH Key 2")},
				{Name: "Switch Chest", Logic: open(), Patch: chest("ToH Switch Chest")},
				{Name: "Big Chest", Logic: need((*progress.Progress).HasHeraBigKey), Patch: bigChest("ToH Big Chest")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "BossDoor"), Logic: need(func(p *progress.Progress) bool { return p.HasHeraKeys(2) })},
			},
		}},
		{dungeon(d, "BossDoor"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Boss Heart", Logic: need((*progress.Progress).CanDefeatMoldorm), Patch: heart("ToH Boss Heart")},
				questCheck("Pendant of Power", capability.PendantOfPower, need((*progress.Progress).CanDefeatMoldorm)),
			},
		}},
	}
}

func darkPalaceEntries() []entry {
	const d = "Dark Palace"
	return []entry{
		{dungeon(d, "Entry"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 1", Logic: open(), Patch: key("DP Key 1")},
				{Name: "Compass Chest", Logic: open(), Patch: chest("DP Compass")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "Area2"), Logic: need(func(p *progress.Progress) bool { return p.HasDarkKeys(1) })},
			},
		}},
		{dungeon(d, "Area2"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 2", Logic: open(), Patch: key("DP Key 2")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "Area3"), Logic: need(func(p *progress.Progress) bool { return p.HasDarkKeys(2) })},
			},
		}},
		{dungeon(d, "Area3"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 3", Logic: open(), Patch: key("DP Key 3")},
				{Name: "Big Chest", Logic: need((*progress.Progress).HasDarkBigKey), Patch: bigChest("DP Big Chest")},
			},
			Paths: []world.Path{
				// GlitchAdvanced tier: clipping through the barred wall with
				// a sword-swing cancel only needs two of the three keys.
				{Target: dungeon(d, "Area4"), Logic: needGlitchAdvanced(
					func(p *progress.Progress) bool { return p.HasDarkKeys(3) },
					func(p *progress.Progress) bool { return p.HasDarkKeys(2) && p.CanSwordClip() },
				)},
			},
		}},
		{dungeon(d, "Area4"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Key Chest 4", Logic: open(), Patch: key("DP Key 4")},
				{Name: "Switch Chest", Logic: open(), Patch: chest("DP Switch Chest")},
			},
			Paths: []world.Path{
				{Target: dungeon(d, "BossDoor"), Logic: need(func(p *progress.Progress) bool { return p.HasDarkKeys(4) })},
			},
		}},
		{dungeon(d, "BossDoor"), world.LocationNode{
			Checks: []world.Check{
				{Name: "Boss Heart", Logic: need((*progress.Progress).CanDefeatGemasaur), Patch: heart("DP Boss Heart")},
				questCheck("Sage Gulley", capability.SageGulley, need((*progress.Progress).CanDefeatGemasaur)),
			},
		}},
	}
}
