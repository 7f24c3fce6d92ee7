// Package logic implements the tier evaluator: a Logic value bundles one
// optional predicate per difficulty tier, and CanAccess walks the tiers up
// to the configured one, returning true on the first satisfied predicate.
package logic
