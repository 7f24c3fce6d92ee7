package world

import (
	"testing"

	"github.com/dshills/logicfill/pkg/capability"
	"github.com/dshills/logicfill/pkg/logic"
	"github.com/dshills/logicfill/pkg/progress"
	"github.com/dshills/logicfill/pkg/settings"
)

func needBow(p *progress.Progress) bool { return p.HasBow() }

func smallGraph(t *testing.T) *Graph {
	t.Helper()
	start := Subregion{World: Hyrule, Region: "Overworld", ID: "Start"}
	locked := Subregion{World: Hyrule, Region: "Overworld", ID: "Locked"}

	g := NewGraph(start)
	if err := g.AddNode(start, LocationNode{
		Checks: []Check{{Name: "Free Chest", Logic: logic.Free()}},
		Paths:  []Path{{Target: locked, Logic: logic.Logic{Normal: needBow}}},
	}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(locked, LocationNode{
		Checks: []Check{{Name: "Locked Chest", Logic: logic.Free()}},
	}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestReachableChecksRespectsPathGating(t *testing.T) {
	g := smallGraph(t)
	s := settings.Default()
	p := progress.New(s)

	got := g.ReachableChecks(p)
	if len(got) != 1 || got[0].Name != "Free Chest" {
		t.Fatalf("expected only Free Chest reachable with no bow, got %v", got)
	}

	p.Add(capability.Bow01)
	got = g.ReachableChecks(p)
	if len(got) != 2 {
		t.Fatalf("expected both checks reachable once bow is held, got %v", got)
	}
}

func TestCollectExpandsUntilFixedPoint(t *testing.T) {
	g := smallGraph(t)
	s := settings.Default()
	seed := progress.New(s)

	grant := func(li LocationInfo) []capability.Token {
		if li.Name == "Free Chest" {
			return []capability.Token{capability.Bow01}
		}
		return nil
	}

	result := g.Collect(seed, grant)
	if !result.HasBow() {
		t.Fatal("Collect should discover the bow granted by the initially-reachable chest")
	}

	reached := g.ReachableChecks(result)
	if len(reached) != 2 {
		t.Fatalf("after collecting the bow, both checks should be reachable, got %v", reached)
	}
}

func TestAddNodeRejectsDuplicateSubregion(t *testing.T) {
	sr := Subregion{World: Hyrule, Region: "Overworld", ID: "Start"}
	g := NewGraph(sr)
	if err := g.AddNode(sr, LocationNode{}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(sr, LocationNode{}); err == nil {
		t.Fatal("expected an error adding a duplicate subregion")
	}
}

func TestValidateCatchesDanglingPath(t *testing.T) {
	start := Subregion{World: Hyrule, Region: "Overworld", ID: "Start"}
	nowhere := Subregion{World: Hyrule, Region: "Overworld", ID: "Nowhere"}
	g := NewGraph(start)
	if err := g.AddNode(start, LocationNode{Paths: []Path{{Target: nowhere, Logic: logic.Free()}}}); err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err == nil {
		t.Fatal("expected Validate to catch the dangling path target")
	}
}

func TestValidateAllowsSameRegionNameAcrossWorlds(t *testing.T) {
	hyruleStart := Subregion{World: Hyrule, Region: "Overworld", ID: "Start"}
	loruleStart := Subregion{World: Lorule, Region: "Overworld", ID: "Start"}

	g := NewGraph(hyruleStart)
	if err := g.AddNode(hyruleStart, LocationNode{Checks: []Check{{Name: "Chest", Logic: logic.Free()}}}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(loruleStart, LocationNode{Checks: []Check{{Name: "Chest", Logic: logic.Free()}}}); err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("identical check names in same-named regions of different worlds should not collide: %v", err)
	}
}

func TestAllLocationsIsStableOrder(t *testing.T) {
	g := smallGraph(t)
	first := g.AllLocations()
	second := g.AllLocations()
	if len(first) != len(second) {
		t.Fatal("AllLocations should return a stable count")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("AllLocations order changed between calls: %v vs %v", first, second)
		}
	}
}
