// Package fill implements the assumed-fill algorithm: place dungeon items
// per dungeon, then progression items globally, then junk. The dungeon and
// progression steps credit the hypothetical player with every
// not-yet-placed progression item before sampling a reachable empty Check;
// junk fills whatever is left without a reachability check. Crediting the unplaced
// items, rather than excluding them, is what guarantees the resulting
// Layout is beatable: a Check chosen for item X is always reachable
// without X, so X can always be acquired before it is needed.
package fill
