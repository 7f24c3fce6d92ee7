package settings

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tier is one rung of the logic difficulty stack. Tiers are strictly
// ordered; a predicate that passes at a lower tier also passes at every
// higher tier because Logic.CanAccess consults every tier up to and
// including the configured one.
type Tier int

const (
	Normal Tier = iota
	Hard
	GlitchBasic
	GlitchAdvanced
	GlitchHell
	NoLogic
)

var tierNames = map[Tier]string{
	Normal:          "Normal",
	Hard:            "Hard",
	GlitchBasic:     "GlitchBasic",
	GlitchAdvanced:  "GlitchAdvanced",
	GlitchHell:      "GlitchHell",
	NoLogic:         "NoLogic",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// MarshalYAML/UnmarshalYAML let Tier round-trip as its name in a settings
// profile instead of a bare integer.
func (t Tier) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *Tier) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	for tier, tierName := range tierNames {
		if tierName == name {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("unknown logic tier %q", name)
}

// DungeonItemScope controls how broadly the fill engine may place small
// keys, big keys, and compasses.
type DungeonItemScope string

const (
	// ScopeOwnDungeon confines each dungeon item to its own dungeon's Checks.
	ScopeOwnDungeon DungeonItemScope = "own_dungeon"
	// ScopeAnyDungeon allows dungeon items to land in any dungeon's Checks.
	ScopeAnyDungeon DungeonItemScope = "any_dungeon"
)

// Settings is the configuration profile consumed by the logic tier
// evaluator and the fill engine.
type Settings struct {
	// LogicMode selects the tier stack predicates are evaluated against.
	LogicMode Tier `yaml:"logicMode"`

	// Seed is the master seed for the deterministic fill. Zero
	// auto-generates one from the current time.
	Seed uint32 `yaml:"seed"`

	// SwordClips permits predicates that require clipping through terrain
	// using sword-swing animation cancels.
	SwordClips bool `yaml:"swordClips"`

	// StartWithMerge credits the player with a merge-capable Ravio's
	// Bracelet token from the start of every reachability computation
	// (progress.New), so CanMerge-gated Paths and Checks are reachable
	// without waiting to find a Bracelet in the fill itself.
	StartWithMerge bool `yaml:"startWithMerge"`

	// DungeonItemScope controls how dungeon items may be placed.
	DungeonItemScope DungeonItemScope `yaml:"dungeonItemScope"`

	// NiceBombsCountsMaiamai resolves the has_nice_bombs open question:
	// when true, a Maiamai bomb-bag upgrade also counts toward the
	// "nice bombs" threshold instead of requiring both bomb pickups.
	NiceBombsCountsMaiamai bool `yaml:"niceBombsCountsMaiamai"`

	// MaxFillRetries bounds how many times the driver may bump the seed
	// after a NoValidPlacement failure before giving up.
	MaxFillRetries int `yaml:"maxFillRetries"`
}

// LoadSettings reads and validates a YAML settings profile from disk.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	return LoadSettingsFromBytes(data)
}

// LoadSettingsFromBytes parses and validates a YAML settings profile from
// a byte slice. Useful for testing and programmatic settings generation.
func LoadSettingsFromBytes(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if s.Seed == 0 {
		s.Seed = generateSeed()
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return s, nil
}

// Default returns a Settings value with conservative defaults, matching
// what a freshly-unmarshalled zero-value profile should fall back to.
func Default() *Settings {
	return &Settings{
		LogicMode:        Normal,
		DungeonItemScope: ScopeOwnDungeon,
		MaxFillRetries:   16,
	}
}

// Validate checks all settings constraints, returning the first violation.
func (s *Settings) Validate() error {
	if s.LogicMode < Normal || s.LogicMode > NoLogic {
		return fmt.Errorf("logicMode: unrecognised tier %d", int(s.LogicMode))
	}
	if s.DungeonItemScope != ScopeOwnDungeon && s.DungeonItemScope != ScopeAnyDungeon {
		return fmt.Errorf("dungeonItemScope: unrecognised scope %q", s.DungeonItemScope)
	}
	if s.MaxFillRetries < 0 {
		return errors.New("maxFillRetries must be >= 0")
	}
	return nil
}

// ToYAML serializes the settings profile to YAML bytes.
func (s *Settings) ToYAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// Hash computes a deterministic hash of the settings profile, used to
// derive the per-stage PRNG seeds (pkg/rng).
func (s *Settings) Hash() []byte {
	data, err := s.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], s.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}

	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// generateSeed creates a seed from the current time when none is supplied.
func generateSeed() uint32 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint32(uint64(now) & 0xffffffff)
	if seed == 0 {
		seed = 1
	}
	return seed
}
