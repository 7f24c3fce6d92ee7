// Package rng provides deterministic random number generation for the fill
// engine.
//
// # Overview
//
// The RNG type ensures reproducible fills by deriving stage-specific seeds
// from a master seed. This lets each fill stage (dungeon items, progression
// items, junk) draw from an independent random sequence while the overall
// fill stays deterministic for a given (seed, settings) pair.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, settingsHash)
//
// where:
//   - masterSeed: the Settings.Seed for the whole fill
//   - stageName: fill stage identifier (e.g., "dungeon_items", "progression_items")
//   - settingsHash: Settings.Hash(), so changing any setting changes every
//     stage's draws even if the seed is unchanged
//
// This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Settings changes result in different sequences (sensitivity)
//
// # Usage
//
//	settingsHash := s.Hash()
//	dungeonRNG := rng.NewRNG(uint64(s.Seed), "dungeon_items", settingsHash)
//	progressionRNG := rng.NewRNG(uint64(s.Seed), "progression_items", settingsHash)
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. The fill engine is single-threaded
// (see the core's concurrency model) so this is never an issue in practice;
// do not share one RNG across goroutines.
package rng
