// Package ferrors defines the four error kinds the core surfaces:
// NoValidPlacement, InvariantViolation, PatcherError, and IO. Callers use
// errors.Is against these sentinels; the underlying cause is always
// wrapped with %w so context survives.
package ferrors
