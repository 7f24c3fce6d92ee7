package world

import (
	"testing"

	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/progress"
	"github.com/dshills/logicfill/pkg/settings"
	"pgregory.net/rapid"
)

// ReachableChecks is monotone in Progress: granting the graph's own bow
// token can only ever add reachable checks, never remove one, for any
// starting progress state drawn at random.
func TestRapidReachableChecksIsMonotoneInProgress(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := smallGraph(t)
		s := settings.Default()
		p := progress.New(s)

		if rapid.Bool().Draw(t, "startWithOtherToken") {
			p.Add(capability.Flippers)
		}

		before := g.ReachableChecks(p)
		p.Add(capability.Bow01)
		after := g.ReachableChecks(p)

		if len(after) < len(before) {
			t.Fatalf("granting a token shrank reachability: %d before, %d after", len(before), len(after))
		}
		beforeSet := make(map[string]bool, len(before))
		for _, li := range before {
			beforeSet[li.Name] = true
		}
		for _, li := range after {
			delete(beforeSet, li.Name)
		}
		if len(beforeSet) != 0 {
			t.Fatalf("checks present before a grant disappeared after it: %v", beforeSet)
		}
	})
}

// Collect reaches the same fixed point regardless of how many times it is
// re-run against its own output: feeding Collect's result back in as the
// seed changes nothing, since there is nothing left to discover.
func TestRapidCollectIsAFixedPoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := smallGraph(t)
		s := settings.Default()
		seed := progress.New(s)
		if rapid.Bool().Draw(t, "startWithBow") {
			seed.Add(capability.Bow01)
		}

		grant := func(li LocationInfo) []capability.Token {
			if li.Name == "Free Chest" {
				return []capability.Token{capability.Bow01}
			}
			return nil
		}

		once := g.Collect(seed, grant)
		twice := g.Collect(once, grant)

		reachedOnce := g.ReachableChecks(once)
		reachedTwice := g.ReachableChecks(twice)
		if len(reachedOnce) != len(reachedTwice) {
			t.Fatalf("Collect is not a fixed point: %d reachable once, %d reachable twice", len(reachedOnce), len(reachedTwice))
		}
	})
}
