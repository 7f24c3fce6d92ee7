package item

import "testing"

func TestNormalizeIsIdempotent(t *testing.T) {
	for it := Item(0); it < count; it++ {
		once := it.Normalize()
		twice := once.Normalize()
		if once != twice {
			t.Errorf("Normalize(%v) = %v, but Normalize(%v) = %v, not idempotent", it, once, once, twice)
		}
	}
}

func TestNormalizeCollapsesRentals(t *testing.T) {
	cases := map[Item]Item{
		RentalBow:    Bow,
		RentalBombs:  Bombs,
		PackageSword: SwordL2,
		SwordL4:      SwordL2,
		PowerfulGlove: Glove,
		MailRed:      MailBlue,
	}
	for in, want := range cases {
		if got := in.Normalize(); got != want {
			t.Errorf("%v.Normalize() = %v, want %v", in, got, want)
		}
	}
}

func TestTokenAtRespectsNormalization(t *testing.T) {
	tok, ok := RentalBow.TokenAt(0)
	if !ok {
		t.Fatalf("RentalBow.TokenAt(0) returned no token")
	}
	want, _ := Bow.TokenAt(0)
	if tok != want {
		t.Errorf("RentalBow.TokenAt(0) = %v, want %v (Bow's token)", tok, want)
	}

	if _, ok := Bow.TokenAt(2); ok {
		t.Errorf("Bow.TokenAt(2) should be out of range")
	}
}

func TestDisplayNameNeverEmpty(t *testing.T) {
	for it := Item(0); it < count; it++ {
		if it.DisplayName() == "" {
			t.Errorf("Item %d has empty display name", int(it))
		}
	}
}

func TestFromDisplayNameInvertsDisplayName(t *testing.T) {
	got, ok := FromDisplayName(Bow.DisplayName())
	if !ok || got != Bow {
		t.Fatalf("FromDisplayName(%q) = %v, %v; want Bow, true", Bow.DisplayName(), got, ok)
	}

	if _, ok := FromDisplayName("Not A Real Item"); ok {
		t.Fatal("FromDisplayName should reject an unrecognised name")
	}
}

func TestDungeonItemsAreNotProgressionPoolCandidates(t *testing.T) {
	for it := range dungeonItems {
		if _, ok := tokenSequence[it]; ok {
			t.Errorf("dungeon-scoped item %v should not have a global tokenSequence entry", it)
		}
	}
}
