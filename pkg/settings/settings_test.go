package settings

import "testing"

func TestTierYAMLRoundTrip(t *testing.T) {
	s := Default()
	s.LogicMode = GlitchAdvanced
	s.Seed = 1234

	data, err := s.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}

	got, err := LoadSettingsFromBytes(data)
	if err != nil {
		t.Fatalf("LoadSettingsFromBytes: %v", err)
	}
	if got.LogicMode != GlitchAdvanced {
		t.Fatalf("LogicMode round-tripped as %v, want GlitchAdvanced", got.LogicMode)
	}
	if got.Seed != 1234 {
		t.Fatalf("Seed round-tripped as %d, want 1234", got.Seed)
	}
}

func TestLoadSettingsFromBytesGeneratesSeedWhenZero(t *testing.T) {
	s, err := LoadSettingsFromBytes([]byte("logicMode: Normal\n"))
	if err != nil {
		t.Fatalf("LoadSettingsFromBytes: %v", err)
	}
	if s.Seed == 0 {
		t.Fatal("expected a non-zero generated seed when the profile omits one")
	}
}

func TestUnmarshalYAMLRejectsUnknownTier(t *testing.T) {
	_, err := LoadSettingsFromBytes([]byte("logicMode: Impossible\n"))
	if err == nil {
		t.Fatal("expected an error for an unrecognised logic tier name")
	}
}

func TestValidateRejectsNegativeMaxFillRetries(t *testing.T) {
	s := Default()
	s.MaxFillRetries = -1
	if err := s.Validate(); err == nil {
		t.Fatal("expected Validate to reject a negative MaxFillRetries")
	}
}

func TestValidateRejectsUnknownDungeonItemScope(t *testing.T) {
	s := Default()
	s.DungeonItemScope = DungeonItemScope("anywhere")
	if err := s.Validate(); err == nil {
		t.Fatal("expected Validate to reject an unrecognised dungeon item scope")
	}
}

func TestHashIsDeterministicAndSeedSensitive(t *testing.T) {
	a := Default()
	a.Seed = 1
	b := Default()
	b.Seed = 1
	if string(a.Hash()) != string(b.Hash()) {
		t.Fatal("identical settings profiles should hash identically")
	}

	c := Default()
	c.Seed = 2
	if string(a.Hash()) == string(c.Hash()) {
		t.Fatal("different seeds should produce different settings hashes")
	}
}
