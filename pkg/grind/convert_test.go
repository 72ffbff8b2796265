package grind

import (
	"math"
	"reflect"
	"strconv"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "dot decimal", input: "3.5", want: 3.5},
		{name: "comma decimal", input: "3,5", want: 3.5},
		{name: "integer", input: "7", want: 7},
		{name: "surrounding spaces", input: " 2,25 ", want: 2.25},
		{name: "negative", input: "-1,5", want: -1.5},
		{name: "leading separator", input: ",5", want: 0.5},
		{name: "trailing separator", input: "4.", want: 4},
		{name: "exponent", input: "1e2", want: 100},
		{name: "explicit plus", input: "+2", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDecimal(tt.input); got != tt.want {
				t.Errorf("ParseDecimal(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDecimal_Invalid(t *testing.T) {
	for _, input := range []string{"abc", "", "   ", "1,2,3", "inf", "NaN", "3.5 clicks", "0x1p3", "0X1P-2", "1_0", "0x10", "."} {
		if got := ParseDecimal(input); !math.IsNaN(got) {
			t.Errorf("ParseDecimal(%q) = %v, want NaN", input, got)
		}
	}
}

func TestParseDecimal_SeparatorNeutral(t *testing.T) {
	for _, pair := range [][2]string{{"0,1", "0.1"}, {"12,75", "12.75"}, {"100,0", "100.0"}} {
		if a, b := ParseDecimal(pair[0]), ParseDecimal(pair[1]); a != b {
			t.Errorf("ParseDecimal(%q) = %v, ParseDecimal(%q) = %v", pair[0], a, pair[1], b)
		}
	}
}

func TestValidIndices(t *testing.T) {
	tests := []struct {
		name    string
		grinder *Grinder
		want    []int
	}{
		{name: "all present", grinder: numericGrinder, want: []int{0, 1, 2, 3, 4}},
		{name: "gaps at both ends", grinder: textGrinder, want: []int{1, 2, 3}},
		{name: "all absent", grinder: emptyGrinder, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidIndices(tt.grinder); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidIndices() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettingValue_AbsentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("SettingValue() on an absent position did not panic")
		}
	}()
	SettingValue(textGrinder, 0)
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		name    string
		grinder *Grinder
		idx     int
		want    string
	}{
		{name: "numeric", grinder: numericGrinder, idx: 2, want: "3"},
		{name: "text", grinder: textGrinder, idx: 2, want: "Medium"},
		{name: "absent", grinder: textGrinder, idx: 0, want: ""},
		{name: "past the end", grinder: textGrinder, idx: 9, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayValue(tt.grinder, tt.idx); got != tt.want {
				t.Errorf("DisplayValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetRange(t *testing.T) {
	tests := []struct {
		name    string
		grinder *Grinder
		want    Range
		wantOK  bool
	}{
		{
			name:    "numeric grinder",
			grinder: numericGrinder,
			want:    Range{Min: 1, Max: 5, Display: RangeDisplay{Min: "1", Max: "5"}},
			wantOK:  true,
		},
		{
			name:    "text grinder",
			grinder: textGrinder,
			want:    Range{Min: 5, Max: 15, Display: RangeDisplay{Min: "Fine", Max: "Coarse"}},
			wantOK:  true,
		},
		{
			name:    "single point",
			grinder: singleGrinder,
			want:    Range{Min: 3, Max: 3, Display: RangeDisplay{Min: "3", Max: "3"}},
			wantOK:  true,
		},
		{
			name:    "all absent",
			grinder: emptyGrinder,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetRange(tt.grinder)
			if ok != tt.wantOK {
				t.Fatalf("GetRange() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("GetRange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		source *Grinder
		target *Grinder
		input  float64
		want   Result
	}{
		{
			name:   "numeric to numeric on a calibration point",
			source: numericGrinder,
			target: numericGrinder2,
			input:  3,
			want:   Result{Value: "30", Display: "30", Min: "10", Max: "50", Exact: true},
		},
		{
			name:   "interpolates between points",
			source: numericGrinder,
			target: numericGrinder2,
			input:  2.5,
			want:   Result{Value: "25", Display: "25", Min: "10", Max: "50", Exact: true},
		},
		{
			name:   "clamps below range",
			source: numericGrinder,
			target: numericGrinder2,
			input:  0,
			want:   Result{Value: "10", Display: "10", Min: "10", Max: "50", Exact: false},
		},
		{
			name:   "clamps above range",
			source: numericGrinder,
			target: numericGrinder2,
			input:  10,
			want:   Result{Value: "50", Display: "50", Min: "10", Max: "50", Exact: false},
		},
		{
			name:   "exact lower boundary",
			source: numericGrinder,
			target: numericGrinder2,
			input:  1,
			want:   Result{Value: "10", Display: "10", Min: "10", Max: "50", Exact: true},
		},
		{
			name:   "exact upper boundary",
			source: numericGrinder,
			target: numericGrinder2,
			input:  5,
			want:   Result{Value: "50", Display: "50", Min: "10", Max: "50", Exact: true},
		},
		{
			name:   "numeric to text snaps to nearest label",
			source: numericGrinder,
			target: textGrinder,
			input:  2,
			want:   Result{Value: "5", Display: "Fine", Min: "Fine", Max: "Coarse", Exact: true},
		},
		{
			name:   "numeric to text in the middle",
			source: numericGrinder,
			target: textGrinder,
			input:  3.4,
			want:   Result{Value: "10", Display: "Medium", Min: "Fine", Max: "Coarse", Exact: true},
		},
		{
			name:   "numeric to text clamps to the overlap",
			source: numericGrinder,
			target: textGrinder,
			input:  1,
			want:   Result{Value: "5", Display: "Fine", Min: "Fine", Max: "Coarse", Exact: false},
		},
		{
			name:   "text to numeric",
			source: textGrinder,
			target: numericGrinder2,
			input:  7.5,
			want:   Result{Value: "25", Display: "25", Min: "20", Max: "40", Exact: true},
		},
		{
			name:   "text to text on a calibration point",
			source: textGrinder,
			target: textGrinder2,
			input:  10,
			want:   Result{Value: "2", Display: "Drip", Min: "Espresso", Max: "Filter", Exact: true},
		},
		{
			name:   "text to text tie keeps the lower label",
			source: textGrinder,
			target: textGrinder2,
			input:  12.5,
			want:   Result{Value: "2", Display: "Drip", Min: "Espresso", Max: "Filter", Exact: true},
		},
		{
			name:   "text to text clamps to the overlap",
			source: textGrinder,
			target: textGrinder2,
			input:  20,
			want:   Result{Value: "3", Display: "Filter", Min: "Espresso", Max: "Filter", Exact: false},
		},
		{
			name: "rounds to one decimal",
			source: &Grinder{
				ID: "s", Numeric: true,
				Settings: []Setting{Number(0), Number(3)},
			},
			target: &Grinder{
				ID: "t", Numeric: true,
				Settings: []Setting{Number(0), Number(1)},
			},
			input: 2,
			want:  Result{Value: "0.7", Display: "0.7", Min: "0", Max: "1", Exact: true},
		},
		{
			name: "flat source segment",
			source: &Grinder{
				ID: "flat", Numeric: true,
				Settings: []Setting{Number(5), Number(5)},
			},
			target: &Grinder{
				ID: "target", Numeric: true,
				Settings: []Setting{Number(10), Number(20)},
			},
			input: 5,
			want:  Result{Value: "10", Display: "10", Min: "10", Max: "20", Exact: true},
		},
		{
			name: "tie goes to the first label",
			source: &Grinder{
				ID: "s", Numeric: true,
				Settings: []Setting{Number(0), Number(10)},
			},
			target: &Grinder{
				ID: "t",
				Settings: []Setting{
					Label{Value: 0, Display: "A"},
					Label{Value: 10, Display: "B"},
				},
			},
			input: 5,
			want:  Result{Value: "0", Display: "A", Min: "A", Max: "B", Exact: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Convert(tt.source, tt.target, tt.input)
			if !ok {
				t.Fatalf("Convert() returned no result")
			}
			if got != tt.want {
				t.Errorf("Convert() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConvert_NoResult(t *testing.T) {
	tests := []struct {
		name   string
		source *Grinder
		target *Grinder
	}{
		{name: "no overlap", source: numericGrinder, target: noOverlapGrinder},
		{name: "empty source", source: emptyGrinder, target: numericGrinder},
		{name: "empty target", source: numericGrinder, target: emptyGrinder},
		{name: "single point source", source: singleGrinder, target: numericGrinder},
		{
			name:   "one shared position",
			source: numericGrinder,
			target: &Grinder{ID: "t", Numeric: true, Settings: []Setting{nil, nil, nil, nil, Number(1), Number(2)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := Convert(tt.source, tt.target, 3); ok {
				t.Errorf("Convert() = %+v, want no result", got)
			}
		})
	}
}

func TestConvert_ClampingMatchesBoundary(t *testing.T) {
	atMin, _ := Convert(numericGrinder, textGrinder, 2)
	below, _ := Convert(numericGrinder, textGrinder, -3)
	if below.Value != atMin.Value || below.Exact {
		t.Errorf("Convert(-3) = %+v, want value %q with exact=false", below, atMin.Value)
	}

	atMax, _ := Convert(numericGrinder, textGrinder, 4)
	above, _ := Convert(numericGrinder, textGrinder, 42)
	if above.Value != atMax.Value || above.Exact {
		t.Errorf("Convert(42) = %+v, want value %q with exact=false", above, atMax.Value)
	}
}

func TestConvert_Monotonic(t *testing.T) {
	prev := math.Inf(-1)
	for i := 0; i <= 60; i++ {
		v := float64(i) / 10
		r, ok := Convert(numericGrinder, numericGrinder2, v)
		if !ok {
			t.Fatalf("Convert(%v) returned no result", v)
		}
		got, err := strconv.ParseFloat(r.Value, 64)
		if err != nil {
			t.Fatalf("Convert(%v).Value = %q is not a number", v, r.Value)
		}
		if got < prev {
			t.Errorf("Convert(%v) = %v, smaller than previous %v", v, got, prev)
		}
		prev = got
	}
}

func TestOverlap(t *testing.T) {
	if got, want := Overlap(numericGrinder, textGrinder), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Overlap() = %v, want %v", got, want)
	}
	if got := Overlap(numericGrinder, noOverlapGrinder); len(got) != 0 {
		t.Errorf("Overlap() = %v, want empty", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 30, want: "30"},
		{in: 2.5, want: "2.5"},
		{in: 0.1, want: "0.1"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: -1.5, want: "-1.5"},
		{in: 123456, want: "123456"},
		{in: 0.000001, want: "0.000001"},
		{in: 1e21, want: "1e+21"},
		{in: -2.5e22, want: "-2.5e+22"},
		{in: 1e-7, want: "1e-7"},
		{in: 1.5e-7, want: "1.5e-7"},
		{in: 1e-100, want: "1e-100"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
