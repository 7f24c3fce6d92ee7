package worldexport_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dshills/logicfill/pkg/layout"
	"github.com/dshills/logicfill/pkg/locations"
	"github.com/dshills/logicfill/pkg/settings"
	"github.com/dshills/logicfill/pkg/worldexport"
)

func TestExportJSONProducesValidSpoilerDocument(t *testing.T) {
	s := settings.Default()
	s.Seed = 5
	lay := layout.New()

	spoiler := &layout.Spoiler{Seed: s.Seed, Settings: s, Layout: lay}
	data, err := worldexport.ExportJSON(spoiler)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if !json.Valid(data) {
		t.Fatalf("ExportJSON produced invalid JSON: %s", data)
	}
	if !bytes.Contains(data, []byte(`"seed": 5`)) {
		t.Errorf("expected indented JSON to contain the seed field, got: %s", data)
	}
}

func TestExportSVGProducesWellFormedDocument(t *testing.T) {
	g, _, err := locations.Build()
	if err != nil {
		t.Fatalf("locations.Build: %v", err)
	}

	data, err := worldexport.ExportSVG(g, worldexport.DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) || !bytes.Contains(data, []byte("</svg>")) {
		t.Errorf("ExportSVG output does not look like an SVG document: %s", data[:min(200, len(data))])
	}
}

func TestExportSVGRejectsNilGraph(t *testing.T) {
	if _, err := worldexport.ExportSVG(nil, worldexport.DefaultSVGOptions()); err == nil {
		t.Fatal("expected an error for a nil graph")
	}
}
