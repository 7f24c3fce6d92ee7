package layout

import (
	"testing"

	"github.com/dshills/logicfill/pkg/item"
	"github.com/dshills/logicfill/pkg/world"
)

func loc(w world.World, region, name string) world.LocationInfo {
	return world.LocationInfo{
		Subregion: world.Subregion{World: w, Region: region, ID: region},
		Name:      name,
	}
}

func TestSetAndGetRoundTrip(t *testing.T) {
	l := New()
	li := loc(world.Hyrule, "Overworld", "Tree Stump")
	if _, ok := l.Get(li); ok {
		t.Fatal("empty layout should not have a value for any LocationInfo")
	}

	l.Set(li, item.Bow)
	got, ok := l.Get(li)
	if !ok || got != item.Bow {
		t.Fatalf("Get(%v) = %v, %v; want Bow, true", li, got, ok)
	}
}

func TestSetNormalizesBeforeStoring(t *testing.T) {
	l := New()
	li := loc(world.Hyrule, "Overworld", "Rental Slot")
	l.Set(li, item.RentalBow)
	got, _ := l.Get(li)
	if got != item.Bow {
		t.Fatalf("Set should normalize RentalBow to Bow before storing, got %v", got)
	}
}

func TestRegionsPreservesInsertionOrder(t *testing.T) {
	l := New()
	l.Set(loc(world.Hyrule, "Kakariko", "A"), item.RupeeG)
	l.Set(loc(world.Hyrule, "Overworld", "B"), item.RupeeG)
	l.Set(loc(world.Hyrule, "LostWoods", "C"), item.RupeeG)

	got := l.Regions(world.Hyrule)
	want := []string{"Kakariko", "Overworld", "LostWoods"}
	if len(got) != len(want) {
		t.Fatalf("Regions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Regions() = %v, want %v", got, want)
		}
	}
}

func TestCountAcrossWorlds(t *testing.T) {
	l := New()
	l.Set(loc(world.Hyrule, "Overworld", "A"), item.RupeeG)
	l.Set(loc(world.Lorule, "Overworld", "A"), item.RupeeB)
	if l.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", l.Count())
	}
}

func TestChecksIsolatedPerWorldAndRegion(t *testing.T) {
	l := New()
	l.Set(loc(world.Hyrule, "Overworld", "Chest"), item.Bow)
	l.Set(loc(world.Lorule, "Overworld", "Chest"), item.Bombs)

	hyruleChecks := l.Checks(world.Hyrule, "Overworld")
	loruleChecks := l.Checks(world.Lorule, "Overworld")

	if hyruleChecks["Chest"] != item.Bow {
		t.Errorf("Hyrule Overworld Chest = %v, want Bow", hyruleChecks["Chest"])
	}
	if loruleChecks["Chest"] != item.Bombs {
		t.Errorf("Lorule Overworld Chest = %v, want Bombs", loruleChecks["Chest"])
	}
}
