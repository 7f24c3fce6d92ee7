// Package capability defines Token, the closed alphabet of progression
// facts a Progress accumulates. Tokens are distinct from pkg/item.Item:
// several Items grant the same Token (e.g. any bottle grants a Bottle
// token), and some Tokens correspond to in-game events rather than an
// item drop at all (opening a door, reading a sign).
package capability
