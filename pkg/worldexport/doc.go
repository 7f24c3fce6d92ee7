// Package worldexport renders the randomizer's two output formats: an
// indented JSON spoiler log of a finished fill (written by the randomize
// and plando verbs) and an SVG visualisation of the World Graph (written
// by the graph-dump verb).
package worldexport
