package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG provides deterministic random number generation for a single fill
// stage. Each stage derives its own seed from the master seed so that
// retrying a fill with a bumped master seed reshuffles every stage, while
// the relative schedule (dungeon order, then progression, then junk)
// stays fixed.
type RNG struct {
	seed      uint64
	stageName string
	source    *rand.Rand
}

// NewRNG creates a stage-specific RNG by deriving a sub-seed from the
// master seed, the stage name, and a hash of the settings profile.
func NewRNG(masterSeed uint64, stageName string, settingsHash []byte) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])

	h.Write([]byte(stageName))
	h.Write(settingsHash)

	hash := h.Sum(nil)
	derivedSeed := binary.BigEndian.Uint64(hash[:8])

	return &RNG{
		seed:      derivedSeed,
		stageName: stageName,
		source:    rand.New(rand.NewSource(int64(derivedSeed))),
	}
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (r *RNG) Uint64() uint64 {
	return r.source.Uint64()
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Shuffle pseudo-randomizes the order of elements in a slice of length n.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// Seed returns the derived seed for this RNG.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// StageName returns the stage name this RNG was created for.
func (r *RNG) StageName() string {
	return r.stageName
}

// Choice uniformly samples one index in [0, n). It panics if n <= 0; the
// fill engine checks for an empty candidate pool before calling this so it
// can surface ferrors.NoValidPlacement instead of panicking.
func (r *RNG) Choice(n int) int {
	return r.Intn(n)
}
