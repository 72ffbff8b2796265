package grind

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Setting is a present calibration point of a grinder. It is either a Number
// (numeric grinders) or a Label (text-scale grinders). Absent positions are
// represented by a nil Setting.
type Setting interface {
	// Numeric returns the underlying coarseness value.
	Numeric() float64
	// String returns the value as shown to a user.
	String() string

	isSetting()
}

// Number is a setting of a numeric grinder.
type Number float64

func (n Number) Numeric() float64 { return float64(n) }
func (n Number) String() string   { return FormatNumber(float64(n)) }
func (Number) isSetting()         {}

// Label is a setting of a text-scale grinder.
type Label struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

func (l Label) Numeric() float64 { return l.Value }
func (l Label) String() string   { return l.Display }
func (Label) isSetting()         {}

// Grinder maps click positions (the index into Settings) to coarseness.
type Grinder struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Numeric  bool      `json:"numeric"`
	Settings []Setting `json:"settings"`
}

// Range is the usable span of a grinder.
type Range struct {
	Min     float64      `json:"min"`
	Max     float64      `json:"max"`
	Display RangeDisplay `json:"display"`
}

type RangeDisplay struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// ValidIndices returns the positions that carry calibration data, ascending.
func ValidIndices(g *Grinder) []int {
	indices := make([]int, 0, len(g.Settings))
	for i, s := range g.Settings {
		if s != nil {
			indices = append(indices, i)
		}
	}
	return indices
}

// SettingValue returns the underlying value at a valid index. It panics when
// the position is absent.
func SettingValue(g *Grinder, idx int) float64 {
	s := g.Settings[idx]
	if s == nil {
		panic(fmt.Sprintf("grind: setting %d of grinder %q is absent", idx, g.ID))
	}
	return s.Numeric()
}

// DisplayValue returns the user-facing value at idx, or "" when the position
// is absent.
func DisplayValue(g *Grinder, idx int) string {
	if idx < 0 || idx >= len(g.Settings) || g.Settings[idx] == nil {
		return ""
	}
	return g.Settings[idx].String()
}

// GetRange returns the values at the first and last valid positions. It
// reports false when the grinder has no calibration data at all.
func GetRange(g *Grinder) (Range, bool) {
	indices := ValidIndices(g)
	if len(indices) == 0 {
		return Range{}, false
	}

	first := indices[0]
	last := indices[len(indices)-1]

	return Range{
		Min: SettingValue(g, first),
		Max: SettingValue(g, last),
		Display: RangeDisplay{
			Min: DisplayValue(g, first),
			Max: DisplayValue(g, last),
		},
	}, true
}

// FormatNumber renders a number in its shortest round-trip form: 30, 2.5.
// Magnitudes of 1e21 and above, or below 1e-6, use exponent form with an
// unpadded exponent (1e+21, 1.5e-7), the way JavaScript prints numbers.
func FormatNumber(v float64) string {
	if v == 0 {
		// drop the sign of negative zero
		v = 0
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if abs := math.Abs(v); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
