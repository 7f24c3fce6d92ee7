// Package locations declares the static Location Table: the concrete
// Subregions, Checks, and Paths that make up a playable world, plus the
// per-dungeon key rings and item pools the fill engine draws from. It is
// the one place that ties pkg/world's graph primitives, pkg/item's
// catalog, and pkg/capability's tokens into an actual world a seed can be
// generated against.
package locations
