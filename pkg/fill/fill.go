package fill

import (
	"fmt"

	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/ferrors"
	"github.com/dshills/logicfill/pkg/item"
	"github.com/dshills/logicfill/pkg/layout"
	"github.com/dshills/logicfill/pkg/progress"
	"github.com/dshills/logicfill/pkg/rng"
	"github.com/dshills/logicfill/pkg/settings"
	"github.com/dshills/logicfill/pkg/world"
)

// DungeonManifest declares how many of each dungeon-scoped item a dungeon
// contributes. Name must match the Region of that dungeon's Subregions.
type DungeonManifest struct {
	Name     string
	SmallKeys int
	BigKey   bool
	Compass  bool
}

// Pool is the static item inventory the fill engine draws from: the
// per-dungeon key rings, the dungeon manifests, the global progression
// pool, and the junk pool. pkg/locations builds one of these alongside
// its Graph.
type Pool struct {
	KeyRings    map[string]capability.KeyRing
	Manifests   []DungeonManifest
	Progression []item.Item
	Junk        []item.Item
}

// grantTable accumulates, as the fill progresses, which tokens the item
// placed at each LocationInfo grants. It backs the world.Grant closure
// passed to Graph.Collect.
type grantTable struct {
	byLocation map[world.LocationInfo][]capability.Token
}

func newGrantTable() *grantTable {
	return &grantTable{byLocation: make(map[world.LocationInfo][]capability.Token)}
}

func (g *grantTable) set(li world.LocationInfo, toks ...capability.Token) {
	if len(toks) == 0 {
		return
	}
	g.byLocation[li] = toks
}

func (g *grantTable) grant(li world.LocationInfo) []capability.Token {
	return g.byLocation[li]
}

// Run executes one assumed-fill attempt. It does not retry; callers that
// want seed-bumping retry semantics should use RunWithRetry.
func Run(g *world.Graph, s *settings.Settings, pool Pool) (*layout.Layout, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	lay := layout.New()
	grants := newGrantTable()

	all := g.AllLocations()

	quest := make(map[world.LocationInfo]bool)
	var empty []world.LocationInfo
	for _, li := range all {
		c, ok := g.CheckAt(li)
		if !ok {
			return nil, fmt.Errorf("fill: location %s vanished from graph: %w", li, ferrors.InvariantViolation)
		}
		if c.Quest != nil {
			it, ok := item.QuestItemFor(*c.Quest)
			if !ok {
				return nil, fmt.Errorf("fill: check %s has unknown quest token %s: %w", li, *c.Quest, ferrors.InvariantViolation)
			}
			lay.Set(li, it)
			grants.set(li, *c.Quest)
			quest[li] = true
			continue
		}
		empty = append(empty, li)
	}

	byDungeon := make(map[string][]world.LocationInfo)
	var nonDungeon []world.LocationInfo
	var allDungeon []world.LocationInfo
	for _, li := range empty {
		if dungeon, ok := li.Subregion.Dungeon(); ok {
			byDungeon[dungeon] = append(byDungeon[dungeon], li)
			allDungeon = append(allDungeon, li)
		} else {
			nonDungeon = append(nonDungeon, li)
		}
	}

	filled := make(map[world.LocationInfo]bool)

	settingsHash := s.Hash()
	dungeonRNG := rng.NewRNG(uint64(s.Seed), "dungeon_items", settingsHash)
	progressionRNG := rng.NewRNG(uint64(s.Seed), "progression_items", settingsHash)
	junkRNG := rng.NewRNG(uint64(s.Seed), "junk_items", settingsHash)

	// Step 2: dungeon items, per dungeon, assuming the whole (unplaced)
	// progression pool is owned.
	assumedProgression := allProgressionTokens(pool.Progression)

	for _, manifest := range pool.Manifests {
		ring, ok := pool.KeyRings[manifest.Name]
		if !ok {
			return nil, fmt.Errorf("fill: no key ring declared for dungeon %q: %w", manifest.Name, ferrors.InvariantViolation)
		}

		// ScopeOwnDungeon confines this manifest's items to its own
		// dungeon's Checks; ScopeAnyDungeon widens the candidate pool to
		// every dungeon's Checks.
		candidatePool := byDungeon[manifest.Name]
		if s.DungeonItemScope == settings.ScopeAnyDungeon {
			candidatePool = allDungeon
		}

		place := func(it item.Item, tok capability.Token, hasToken bool) error {
			candidates := dungeonCandidates(g, s, assumedProgression, grants, candidatePool, filled)
			if len(candidates) == 0 {
				return fmt.Errorf("fill: no reachable check for %s in dungeon %q: %w", it, manifest.Name, ferrors.NoValidPlacement)
			}
			chosen := candidates[dungeonRNG.Choice(len(candidates))]
			lay.Set(chosen, it)
			filled[chosen] = true
			if hasToken {
				grants.set(chosen, tok)
			}
			return nil
		}

		for i := 0; i < manifest.SmallKeys; i++ {
			if i >= len(ring.Small) {
				return nil, fmt.Errorf("fill: dungeon %q declares %d small keys but key ring only has %d: %w", manifest.Name, manifest.SmallKeys, len(ring.Small), ferrors.InvariantViolation)
			}
			if err := place(item.SmallKey, ring.Small[i], true); err != nil {
				return nil, err
			}
		}
		if manifest.BigKey {
			if err := place(item.BigKey, ring.Big, true); err != nil {
				return nil, err
			}
		}
		if manifest.Compass {
			if err := place(item.Compass, 0, false); err != nil {
				return nil, err
			}
		}
	}

	// Step 3: progression items, shuffled, each still assuming every other
	// not-yet-placed progression item is owned.
	order := make([]int, len(pool.Progression))
	for i := range order {
		order[i] = i
	}
	progressionRNG.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	placedCount := make(map[item.Item]int)
	remaining := make(map[int]bool, len(order))
	for _, idx := range order {
		remaining[idx] = true
	}

	for _, idx := range order {
		it := pool.Progression[idx]
		delete(remaining, idx)
		seed := progress.New(s)
		assumed := make(map[item.Item]int)
		for otherIdx := range remaining {
			other := pool.Progression[otherIdx]
			addTokens(seed, other, placedCount[other]+assumed[other])
			assumed[other]++
		}

		reached := g.Collect(seed, grants.grant)
		candidates := unfilledReachable(reached, g, nonDungeon, filled)
		if len(candidates) == 0 {
			return nil, fmt.Errorf("fill: no reachable check for progression item %s: %w", it, ferrors.NoValidPlacement)
		}
		chosen := candidates[progressionRNG.Choice(len(candidates))]

		lay.Set(chosen, it)
		filled[chosen] = true

		if tok, ok := it.TokenAt(placedCount[it]); ok {
			grants.set(chosen, tok)
		}
		placedCount[it]++
	}

	// Step 4: junk fills whatever is left, order doesn't affect logic.
	var leftover []world.LocationInfo
	for _, li := range nonDungeon {
		if !filled[li] {
			leftover = append(leftover, li)
		}
	}
	for _, li := range allDungeon {
		if !filled[li] {
			leftover = append(leftover, li)
		}
	}

	if len(leftover) != len(pool.Junk) {
		return nil, fmt.Errorf("fill: %d junk checks remain but junk pool has %d items: %w", len(leftover), len(pool.Junk), ferrors.InvariantViolation)
	}

	junkOrder := make([]int, len(pool.Junk))
	for i := range junkOrder {
		junkOrder[i] = i
	}
	junkRNG.Shuffle(len(junkOrder), func(i, j int) { junkOrder[i], junkOrder[j] = junkOrder[j], junkOrder[i] })

	for i, li := range leftover {
		lay.Set(li, pool.Junk[junkOrder[i]])
		filled[li] = true
	}

	return lay, nil
}

// RunWithRetry calls Run, bumping the settings seed and retrying on
// ferrors.NoValidPlacement up to s.MaxFillRetries times.
func RunWithRetry(g *world.Graph, s *settings.Settings, pool Pool) (*layout.Layout, uint32, error) {
	attempt := *s
	for retries := 0; ; retries++ {
		lay, err := Run(g, &attempt, pool)
		if err == nil {
			return lay, attempt.Seed, nil
		}
		if !isNoValidPlacement(err) || retries >= attempt.MaxFillRetries {
			return nil, attempt.Seed, err
		}
		attempt.Seed++
	}
}

func isNoValidPlacement(err error) bool {
	for err != nil {
		if err == ferrors.NoValidPlacement {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func allProgressionTokens(pool []item.Item) map[item.Item]int {
	counts := make(map[item.Item]int)
	for _, it := range pool {
		counts[it]++
	}
	return counts
}

// dungeonCandidates computes the reachable empty checks within the given
// candidate pool (one dungeon's checks, or every dungeon's checks under
// ScopeAnyDungeon), seeding Progress with the full unplaced
// progression assumption plus whatever has already been concretely
// placed (via grants).
func dungeonCandidates(g *world.Graph, s *settings.Settings, assumedProgression map[item.Item]int, grants *grantTable, pool []world.LocationInfo, filled map[world.LocationInfo]bool) []world.LocationInfo {
	seed := progress.New(s)
	for it, count := range assumedProgression {
		for i := 0; i < count; i++ {
			addTokens(seed, it, i)
		}
	}
	reached := g.Collect(seed, grants.grant)
	return unfilledReachable(reached, g, pool, filled)
}

func unfilledReachable(reached *progress.Progress, g *world.Graph, pool []world.LocationInfo, filled map[world.LocationInfo]bool) []world.LocationInfo {
	reachableSet := make(map[world.LocationInfo]bool)
	for _, li := range g.ReachableChecks(reached) {
		reachableSet[li] = true
	}
	var out []world.LocationInfo
	for _, li := range pool {
		if !filled[li] && reachableSet[li] {
			out = append(out, li)
		}
	}
	return out
}

// addTokens adds the instance-th token of it to p, if one exists.
func addTokens(p *progress.Progress, it item.Item, instance int) {
	if tok, ok := it.TokenAt(instance); ok {
		p.Add(tok)
	}
}
