package grind

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type rawGrinder struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Numeric  bool              `json:"numeric"`
	Settings []json.RawMessage `json:"settings"`
}

// UnmarshalJSON decodes settings according to the grinder's numeric flag:
// bare numbers for numeric grinders, {"value", "display"} objects for text
// grinders, null for absent positions.
func (g *Grinder) UnmarshalJSON(b []byte) error {
	var raw rawGrinder
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	settings := make([]Setting, len(raw.Settings))
	for i, s := range raw.Settings {
		s = bytes.TrimSpace(s)
		if len(s) == 0 || bytes.Equal(s, []byte("null")) {
			continue
		}

		if raw.Numeric {
			var n float64
			if err := json.Unmarshal(s, &n); err != nil {
				return fmt.Errorf("grinder %q: setting %d: %w", raw.ID, i, err)
			}
			settings[i] = Number(n)
			continue
		}

		var l Label
		if err := json.Unmarshal(s, &l); err != nil {
			return fmt.Errorf("grinder %q: setting %d: %w", raw.ID, i, err)
		}
		settings[i] = l
	}

	*g = Grinder{
		ID:       raw.ID,
		Name:     raw.Name,
		Numeric:  raw.Numeric,
		Settings: settings,
	}
	return nil
}
