// Package settings defines the configuration profile consumed by both the
// logic tier evaluator and the fill engine: the logic mode, the seed, and
// the per-game toggles each predicate declares it consults.
package settings
