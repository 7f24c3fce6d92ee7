// Package world implements the World Graph: Subregion identity, the
// LocationNode/Check/Path types the Location Table is built from, and the
// Graph operations (reachable-checks BFS, progress-closure collect,
// diagnostic lookup) the fill engine drives.
package world
