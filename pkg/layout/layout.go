package layout

import (
	"github.com/dshills/logicfill/pkg/item"
	"github.com/dshills/logicfill/pkg/world"
)

type region struct {
	name   string
	checks map[string]item.Item
}

// Layout is a three-world mapping region -> check-name -> Item. Region
// order within a world is insertion order; check order within a region is
// lexicographic, matching the spoiler log's ordered-map presentation.
type Layout struct {
	worlds       map[world.World][]*region
	regionByName map[world.World]map[string]*region
}

// New returns an empty Layout.
func New() *Layout {
	return &Layout{
		worlds:       make(map[world.World][]*region),
		regionByName: make(map[world.World]map[string]*region),
	}
}

func (l *Layout) regionFor(sr world.Subregion) *region {
	byName, ok := l.regionByName[sr.World]
	if !ok {
		byName = make(map[string]*region)
		l.regionByName[sr.World] = byName
	}
	r, ok := byName[sr.Region]
	if !ok {
		r = &region{name: sr.Region, checks: make(map[string]item.Item)}
		byName[sr.Region] = r
		l.worlds[sr.World] = append(l.worlds[sr.World], r)
	}
	return r
}

// Set records it at li, normalising it first. Overwrites any previous
// item at the same LocationInfo.
func (l *Layout) Set(li world.LocationInfo, it item.Item) {
	l.regionFor(li.Subregion).checks[li.Name] = it.Normalize()
}

// Get returns the item placed at li, if any.
func (l *Layout) Get(li world.LocationInfo) (item.Item, bool) {
	byName, ok := l.regionByName[li.Subregion.World]
	if !ok {
		return item.None, false
	}
	r, ok := byName[li.Subregion.Region]
	if !ok {
		return item.None, false
	}
	it, ok := r.checks[li.Name]
	return it, ok
}

// Count returns the number of Checks with a placed item, across all
// worlds.
func (l *Layout) Count() int {
	n := 0
	for _, regions := range l.worlds {
		for _, r := range regions {
			n += len(r.checks)
		}
	}
	return n
}

// Regions returns the regions of w in insertion order.
func (l *Layout) Regions(w world.World) []string {
	var names []string
	for _, r := range l.worlds[w] {
		names = append(names, r.name)
	}
	return names
}

// Checks returns the placed items within w/region, keyed by check name.
// The map itself is unordered; the spoiler log's JSON encoding writes the
// names in lexicographic order.
func (l *Layout) Checks(w world.World, region string) map[string]item.Item {
	byName, ok := l.regionByName[w]
	if !ok {
		return nil
	}
	r, ok := byName[region]
	if !ok {
		return nil
	}
	return r.checks
}
