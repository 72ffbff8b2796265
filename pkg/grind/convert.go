package grind

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalNumeral excludes the hex, underscore and inf/nan forms strconv also
// accepts.
var decimalNumeral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Result is the outcome of a successful conversion.
type Result struct {
	// Value is the canonical numeric form of the converted setting.
	Value string `json:"value"`
	// Display is what to show a user. Equal to Value for numeric targets,
	// the label for text targets.
	Display string `json:"display"`
	Min     string `json:"min"`
	Max     string `json:"max"`
	// Exact is false when the input was outside the source range and had to
	// be clamped.
	Exact bool `json:"exact"`
}

// ParseDecimal parses a decimal numeral that uses either '.' or ',' as the
// fractional separator. It returns NaN when s is not a finite numeral.
func ParseDecimal(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if !decimalNumeral.MatchString(s) {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// Overlap returns the positions valid in both grinders, ascending.
func Overlap(source, target *Grinder) []int {
	return intersect(ValidIndices(source), ValidIndices(target))
}

// intersect merges two ascending index lists.
func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// Convert maps inputValue on the source grinder's scale to the target's.
//
// It reports false when either grinder has fewer than two calibration points
// or when they share fewer than two positions.
func Convert(source, target *Grinder, inputValue float64) (Result, bool) {
	sourceIndices := ValidIndices(source)
	targetIndices := ValidIndices(target)

	if len(sourceIndices) < 2 || len(targetIndices) < 2 {
		return Result{}, false
	}

	overlap := intersect(sourceIndices, targetIndices)
	if len(overlap) < 2 {
		return Result{}, false
	}

	sourceValues := make([]float64, len(overlap))
	targetValues := make([]float64, len(overlap))
	for i, idx := range overlap {
		sourceValues[i] = SettingValue(source, idx)
		targetValues[i] = SettingValue(target, idx)
	}

	last := len(overlap) - 1
	sourceMin, sourceMax := sourceValues[0], sourceValues[last]
	targetMin, targetMax := targetValues[0], targetValues[last]

	clamped := math.Max(sourceMin, math.Min(sourceMax, inputValue))

	// first segment whose upper bound reaches the input, else the last one
	lower := 0
	for i := 0; i < last; i++ {
		lower = i
		if sourceValues[i+1] >= clamped {
			break
		}
	}
	upper := min(lower+1, last)

	var result float64
	if lower == upper || sourceValues[lower] == sourceValues[upper] {
		result = targetValues[lower]
	} else {
		fraction := (clamped - sourceValues[lower]) / (sourceValues[upper] - sourceValues[lower])
		result = targetValues[lower] + fraction*(targetValues[upper]-targetValues[lower])
	}

	result = math.Max(targetMin, math.Min(targetMax, result))

	exact := clamped == inputValue

	if target.Numeric {
		rounded := roundHalfUp(result, 1)
		return Result{
			Value:   FormatNumber(rounded),
			Display: FormatNumber(rounded),
			Min:     FormatNumber(targetMin),
			Max:     FormatNumber(targetMax),
			Exact:   exact,
		}, true
	}

	closest := target.Settings[overlap[0]]
	closestDist := math.Abs(result - closest.Numeric())
	for _, idx := range overlap[1:] {
		s := target.Settings[idx]
		// strict comparison: the first candidate wins a tie
		if dist := math.Abs(result - s.Numeric()); dist < closestDist {
			closest = s
			closestDist = dist
		}
	}

	return Result{
		Value:   FormatNumber(closest.Numeric()),
		Display: closest.String(),
		Min:     DisplayValue(target, overlap[0]),
		Max:     DisplayValue(target, overlap[last]),
		Exact:   exact,
	}, true
}

// roundHalfUp rounds half toward positive infinity, so -2.25 becomes -2.2.
func roundHalfUp(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(v*p+0.5) / p
}
