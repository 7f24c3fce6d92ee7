package world

import "fmt"

// World partitions the Location Table for Layout serialization and some
// high-level predicates.
type World int

const (
	Hyrule World = iota
	Lorule
	Dungeons
)

func (w World) String() string {
	switch w {
	case Hyrule:
		return "Hyrule"
	case Lorule:
		return "Lorule"
	case Dungeons:
		return "Dungeons"
	default:
		return fmt.Sprintf("World(%d)", int(w))
	}
}

// Subregion is the immutable identity of one LocationNode: a (world,
// region, id) triple. Two Subregion values compare equal iff all three
// fields match, which Go gives for free since every field is comparable.
type Subregion struct {
	World  World
	Region string
	ID     string
}

func (s Subregion) String() string {
	return fmt.Sprintf("%s/%s/%s", s.World, s.Region, s.ID)
}

// Dungeon returns the dungeon name this Subregion belongs to, and whether
// it belongs to one at all. Only Subregions in the Dungeons world do.
func (s Subregion) Dungeon() (name string, ok bool) {
	if s.World != Dungeons {
		return "", false
	}
	return s.Region, true
}

// LocationInfo is the placement key used by Layout: a Subregion plus the
// stable Check name within it.
type LocationInfo struct {
	Subregion Subregion
	Name      string
}

func (li LocationInfo) String() string {
	return fmt.Sprintf("%s/%s", li.Subregion, li.Name)
}
