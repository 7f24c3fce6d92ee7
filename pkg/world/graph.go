package world

import (
	"fmt"
	"sort"

	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/ferrors"
	"github.com/dshills/logicfill/pkg/progress"
)

// Graph is a mapping from Subregion identity to LocationNode, built once
// from the static Location Table and then read-only for the life of a
// fill run.
type Graph struct {
	start Subregion
	nodes map[Subregion]LocationNode
	order []Subregion // declaration order, for deterministic traversal
}

// NewGraph returns an empty Graph whose reachability traversal begins at
// start.
func NewGraph(start Subregion) *Graph {
	return &Graph{start: start, nodes: make(map[Subregion]LocationNode)}
}

// Start returns the designated start Subregion.
func (g *Graph) Start() Subregion { return g.start }

// AddNode registers a LocationNode under sr. Nodes must be added in the
// order the Location Table declares them; that order becomes the
// traversal order ReachableChecks and Collect use for determinism.
func (g *Graph) AddNode(sr Subregion, node LocationNode) error {
	if _, exists := g.nodes[sr]; exists {
		return fmt.Errorf("world: duplicate subregion %s: %w", sr, ferrors.InvariantViolation)
	}
	g.nodes[sr] = node
	g.order = append(g.order, sr)
	return nil
}

// Node returns the LocationNode at sr.
func (g *Graph) Node(sr Subregion) (LocationNode, bool) {
	n, ok := g.nodes[sr]
	return n, ok
}

// Subregions returns every Subregion in declaration order, for callers
// that need to walk the graph's topology rather than its Checks (e.g. the
// SVG World Graph renderer).
func (g *Graph) Subregions() []Subregion {
	out := make([]Subregion, len(g.order))
	copy(out, g.order)
	return out
}

// CheckExists is a diagnostic lookup for a named Check within sr.
func (g *Graph) CheckExists(sr Subregion, name string) bool {
	node, ok := g.nodes[sr]
	if !ok {
		return false
	}
	_, ok = node.Check(name)
	return ok
}

// CheckAt returns the Check at LocationInfo li.
func (g *Graph) CheckAt(li LocationInfo) (Check, bool) {
	node, ok := g.nodes[li.Subregion]
	if !ok {
		return Check{}, false
	}
	return node.Check(li.Name)
}

// AllLocations enumerates every Check in the graph regardless of
// reachability, in stable declaration order (subregion order, then
// lexicographic by check name). The fill engine uses this to know the
// full Check pool up front.
func (g *Graph) AllLocations() []LocationInfo {
	var result []LocationInfo
	for _, sr := range g.order {
		node := g.nodes[sr]
		names := make([]string, 0, len(node.Checks))
		for _, c := range node.Checks {
			names = append(names, c.Name)
		}
		sort.Strings(names)
		for _, name := range names {
			result = append(result, LocationInfo{Subregion: sr, Name: name})
		}
	}
	return result
}

// Validate checks the graph-wide invariants the Location Table must
// satisfy: no dangling Path targets, and Check names unique per region
// (not merely per node, since several nodes can share a Region).
func (g *Graph) Validate() error {
	type regionKey struct {
		World  World
		Region string
	}
	seenByRegion := make(map[regionKey]map[string]bool)

	for _, sr := range g.order {
		node := g.nodes[sr]

		rk := regionKey{World: sr.World, Region: sr.Region}
		region := seenByRegion[rk]
		if region == nil {
			region = make(map[string]bool)
			seenByRegion[rk] = region
		}
		for _, c := range node.Checks {
			if region[c.Name] {
				return fmt.Errorf("world: duplicate check name %q in region %q of %s: %w", c.Name, sr.Region, sr.World, ferrors.InvariantViolation)
			}
			region[c.Name] = true
		}

		for _, path := range node.Paths {
			if _, ok := g.nodes[path.Target]; !ok {
				return fmt.Errorf("world: path from %s targets missing subregion %s: %w", sr, path.Target, ferrors.InvariantViolation)
			}
		}
	}

	return nil
}

// ReachableChecks performs a breadth-first traversal from Start under the
// given Progress, returning every LocationInfo whose Check is open. The
// result is returned in stable declaration order so spoiler-log output
// stays deterministic across runs with the same inputs.
func (g *Graph) ReachableChecks(p *progress.Progress) []LocationInfo {
	visitedNodes := map[Subregion]bool{g.start: true}
	queue := []Subregion{g.start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node, ok := g.nodes[current]
		if !ok {
			continue
		}
		for _, path := range node.Paths {
			if visitedNodes[path.Target] {
				continue
			}
			if path.CanTraverse(p) {
				visitedNodes[path.Target] = true
				queue = append(queue, path.Target)
			}
		}
	}

	var result []LocationInfo
	for _, sr := range g.order {
		if !visitedNodes[sr] {
			continue
		}
		node := g.nodes[sr]
		names := make([]string, 0, len(node.Checks))
		byName := make(map[string]Check, len(node.Checks))
		for _, c := range node.Checks {
			names = append(names, c.Name)
			byName[c.Name] = c
		}
		sort.Strings(names)
		for _, name := range names {
			c := byName[name]
			if c.CanAccess(p) {
				result = append(result, LocationInfo{Subregion: sr, Name: name})
			}
		}
	}
	return result
}

// Grant reports which capability tokens a placed Item contributes to
// Progress, for a given LocationInfo. The fill engine supplies this as a
// closure over its Layout so pkg/world never needs to import pkg/item.
type Grant func(LocationInfo) []capability.Token

// Collect is the sphere-expansion closure: starting from seed, repeatedly
// compute reachable checks under the current Progress, add the tokens
// granted by whatever is placed at each reachable check, and stop when a
// full pass adds nothing new.
func (g *Graph) Collect(seed *progress.Progress, grant Grant) *progress.Progress {
	current := seed.Clone()

	for {
		reachable := g.ReachableChecks(current)
		added := false
		for _, li := range reachable {
			for _, tok := range grant(li) {
				if !current.Has(tok) {
					current.Add(tok)
					added = true
				}
			}
		}
		if !added {
			return current
		}
	}
}
