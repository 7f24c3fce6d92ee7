package item

import (
	"testing"

	"pgregory.net/rapid"
)

func anyItem(t *rapid.T) Item {
	return Item(rapid.IntRange(0, int(count)-1).Draw(t, "item"))
}

// Normalize is idempotent for every declared Item, matching the universal
// normalisation property: repeated normalisation never changes the result.
func TestRapidNormalizeIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		it := anyItem(t)
		once := it.Normalize()
		twice := once.Normalize()
		if once != twice {
			t.Fatalf("Normalize(%v) = %v, but Normalize(%v) = %v", it, once, once, twice)
		}
	})
}

// DisplayName round-trips through FromDisplayName for every declared Item:
// an item's own display string always resolves to an item with that same
// display string. Several Items share a name (every sword is "Progressive
// Sword"), so the resolved item need not be the original one.
func TestRapidDisplayNameRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		it := anyItem(t)
		name := it.DisplayName()
		got, ok := FromDisplayName(name)
		if !ok {
			t.Fatalf("FromDisplayName(%q) reported not found for item %v", name, it)
		}
		if got.DisplayName() != name {
			t.Fatalf("FromDisplayName(DisplayName(%v)) = %v, whose display name is %q, want %q", it, got, got.DisplayName(), name)
		}
	})
}

// DisplayName never returns the empty string, for any declared Item
// (including None), matching pool-building code that uses the display
// string unconditionally for spoiler logs and plando round-trips.
func TestRapidDisplayNameNeverEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		it := anyItem(t)
		if it.DisplayName() == "" {
			t.Fatalf("DisplayName(%v) is empty", it)
		}
	})
}
