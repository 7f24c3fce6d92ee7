package layout

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dshills/logicfill/pkg/settings"
	"github.com/dshills/logicfill/pkg/world"
)

// Spoiler bundles the seed, settings, and resulting Layout, the unit
// serialized to the spoiler log.
type Spoiler struct {
	Seed     uint32
	Settings *settings.Settings
	Layout   *Layout
}

// MarshalJSON writes the spoiler document by hand rather than deferring to
// struct tags: region order inside each world must be insertion order,
// which a plain map cannot preserve through encoding/json's alphabetical
// key sort. Check order within a region is lexicographic, which a map
// gives for free.
func (s *Spoiler) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	fmt.Fprintf(&buf, "%q:%d,", "seed", s.Seed)

	buf.WriteString(`"settings":`)
	settingsJSON, err := json.Marshal(s.Settings)
	if err != nil {
		return nil, fmt.Errorf("layout: marshalling settings: %w", err)
	}
	buf.Write(settingsJSON)
	buf.WriteByte(',')

	buf.WriteString(`"layout":{`)
	worlds := []world.World{world.Hyrule, world.Lorule, world.Dungeons}
	for i, w := range worlds {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:{", w.String())

		regions := s.Layout.Regions(w)
		for j, region := range regions {
			if j > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%q:", region)

			names := make(map[string]string)
			for checkName, it := range s.Layout.Checks(w, region) {
				names[checkName] = it.DisplayName()
			}
			checksJSON, err := json.Marshal(names)
			if err != nil {
				return nil, fmt.Errorf("layout: marshalling region %q: %w", region, err)
			}
			buf.Write(checksJSON)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
