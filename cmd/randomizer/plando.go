package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/item"
	"github.com/dshills/logicfill/pkg/layout"
	"github.com/dshills/logicfill/pkg/locations"
	"github.com/dshills/logicfill/pkg/progress"
	"github.com/dshills/logicfill/pkg/settings"
	"github.com/dshills/logicfill/pkg/world"
	"github.com/dshills/logicfill/pkg/worldexport"
)

// plandoFile is a fully hand-authored placement: every fillable Check in
// the Location Table must appear exactly once. Unlike randomize, plando
// never calls the fill algorithm — it only proves the author's layout is
// beatable and writes it out as a spoiler log.
type plandoFile struct {
	Placements []plandoEntry `yaml:"placements"`
}

type plandoEntry struct {
	World  string `yaml:"world"`
	Region string `yaml:"region"`
	Check  string `yaml:"check"`
	Item   string `yaml:"item"`
}

func parseWorld(name string) (world.World, error) {
	switch name {
	case "Hyrule":
		return world.Hyrule, nil
	case "Lorule":
		return world.Lorule, nil
	case "Dungeons":
		return world.Dungeons, nil
	default:
		return 0, fmt.Errorf("unrecognised world %q", name)
	}
}

// findLocation resolves a (world, region, check) triple to the
// LocationInfo the graph actually declared it under, without requiring
// the plando file to know each Subregion's internal ID.
func findLocation(g *world.Graph, w world.World, region, check string) (world.LocationInfo, bool) {
	for _, sr := range g.Subregions() {
		if sr.World != w || sr.Region != region {
			continue
		}
		node, ok := g.Node(sr)
		if !ok {
			continue
		}
		if _, ok := node.Check(check); ok {
			return world.LocationInfo{Subregion: sr, Name: check}, true
		}
	}
	return world.LocationInfo{}, false
}

func runPlando() error {
	if *plandoPath == "" {
		return fmt.Errorf("plando requires -plando <file.yaml>")
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*plandoPath)
	if err != nil {
		return fmt.Errorf("reading plando file: %w", err)
	}
	var pf plandoFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parsing plando file: %w", err)
	}

	g, pool, err := locations.Build()
	if err != nil {
		return fmt.Errorf("building location table: %w", err)
	}

	lay := layout.New()
	placed := make(map[world.LocationInfo]bool)

	for _, entry := range pf.Placements {
		w, err := parseWorld(entry.World)
		if err != nil {
			return fmt.Errorf("placement for check %q: %w", entry.Check, err)
		}
		li, ok := findLocation(g, w, entry.Region, entry.Check)
		if !ok {
			return fmt.Errorf("no check named %q in %s/%s", entry.Check, entry.World, entry.Region)
		}
		it, ok := item.FromDisplayName(entry.Item)
		if !ok {
			return fmt.Errorf("placement for check %q: unrecognised item %q", entry.Check, entry.Item)
		}
		lay.Set(li, it)
		placed[li] = true
	}

	all := g.AllLocations()
	for _, li := range all {
		c, ok := g.CheckAt(li)
		if ok && c.Quest != nil {
			questItem, ok := item.QuestItemFor(*c.Quest)
			if !ok {
				return fmt.Errorf("check %s has an unknown quest token", li)
			}
			lay.Set(li, questItem)
			placed[li] = true
			continue
		}
		if !placed[li] {
			return fmt.Errorf("plando file does not place an item at %s", li)
		}
	}

	// Each LocationInfo gets a fixed token assigned up front, by
	// declaration order, so the Nth copy of a repeated item (e.g. the
	// second small key in a multi-key dungeon) grants its own distinct
	// instance token instead of colliding with the first. Small and big
	// keys grant the key-ring tokens of the dungeon whose Check holds them.
	grants := make(map[world.LocationInfo][]capability.Token)
	placedCount := make(map[item.Item]int)
	smallKeys := make(map[string]int)
	for _, li := range all {
		it, ok := lay.Get(li)
		if !ok {
			continue
		}
		if c, ok := g.CheckAt(li); ok && c.Quest != nil {
			grants[li] = []capability.Token{*c.Quest}
			continue
		}
		if d, ok := li.Subregion.Dungeon(); ok && (it == item.SmallKey || it == item.BigKey) {
			if ring, ok := pool.KeyRings[d]; ok {
				if it == item.BigKey {
					grants[li] = []capability.Token{ring.Big}
				} else if n := smallKeys[d]; n < len(ring.Small) {
					grants[li] = []capability.Token{ring.Small[n]}
					smallKeys[d]++
				}
			}
			continue
		}
		if tok, ok := it.TokenAt(placedCount[it]); ok {
			grants[li] = []capability.Token{tok}
		}
		placedCount[it]++
	}
	grant := func(li world.LocationInfo) []capability.Token {
		return grants[li]
	}

	reached := g.Collect(progress.New(s), grant)
	reachable := g.ReachableChecks(reached)
	if len(reachable) != len(all) {
		return fmt.Errorf("plando layout is not beatable: only %d of %d checks are reachable once everything placed is collected", len(reachable), len(all))
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	spoiler := &layout.Spoiler{Seed: s.Seed, Settings: s, Layout: lay}
	path := fmt.Sprintf("%s/plando_spoiler.json", *outputDir)
	if err := worldexport.SaveJSONToFile(spoiler, path); err != nil {
		return fmt.Errorf("writing spoiler log: %w", err)
	}

	fmt.Printf("Plando layout verified beatable; spoiler log written to %s\n", path)
	return nil
}
