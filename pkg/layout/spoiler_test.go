package layout

import (
	"encoding/json"
	"testing"

	"github.com/dshills/logicfill/pkg/item"
	"github.com/dshills/logicfill/pkg/settings"
	"github.com/dshills/logicfill/pkg/world"
)

func TestSpoilerMarshalJSONIsValidAndRoundTrips(t *testing.T) {
	l := New()
	l.Set(loc(world.Hyrule, "Overworld", "Tree Stump"), item.Bow)
	l.Set(loc(world.Hyrule, "Overworld", "Bee Guy"), item.RupeeG)

	s := &Spoiler{Seed: 99, Settings: settings.Default(), Layout: l}
	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("MarshalJSON produced invalid JSON: %v\n%s", err, data)
	}

	if seed, ok := decoded["seed"].(float64); !ok || uint32(seed) != 99 {
		t.Errorf("decoded seed = %v, want 99", decoded["seed"])
	}

	layoutField, ok := decoded["layout"].(map[string]interface{})
	if !ok {
		t.Fatalf("decoded layout is not an object: %v", decoded["layout"])
	}
	hyrule, ok := layoutField[world.Hyrule.String()].(map[string]interface{})
	if !ok {
		t.Fatalf("decoded layout missing Hyrule world: %v", layoutField)
	}
	overworld, ok := hyrule["Overworld"].(map[string]interface{})
	if !ok {
		t.Fatalf("decoded Hyrule missing Overworld region: %v", hyrule)
	}
	if overworld["Tree Stump"] != item.Bow.DisplayName() {
		t.Errorf("Tree Stump = %v, want %v", overworld["Tree Stump"], item.Bow.DisplayName())
	}
}
