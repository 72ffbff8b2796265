package grind

import (
	"math"
	"strings"
)

// Status classifies what a caller should show for a conversion attempt.
type Status string

const (
	// StatusPending means there is nothing to convert yet: a grinder is not
	// chosen, or the input is empty or not a numeral.
	StatusPending Status = "pending"
	// StatusInsufficient means one of the grinders has fewer than two
	// calibration points.
	StatusInsufficient Status = "insufficient"
	// StatusIncompatible means both grinders are usable on their own, but
	// their calibration ranges share fewer than two positions.
	StatusIncompatible Status = "incompatible"
	StatusConverted    Status = "converted"
)

// Outcome is the classified result of Evaluate. Result is set only when
// Status is StatusConverted.
type Outcome struct {
	Status Status  `json:"status"`
	Result *Result `json:"result,omitempty"`
}

// MessageKey returns the translation key of the note that goes with the
// outcome, or "" when the outcome needs no note.
func (o Outcome) MessageKey() string {
	switch o.Status {
	case StatusPending:
		return "result.pending"
	case StatusInsufficient:
		return "errors.insufficient"
	case StatusIncompatible:
		return "errors.overlap"
	case StatusConverted:
		if o.Result != nil && !o.Result.Exact {
			return "errors.range"
		}
	}
	return ""
}

// Evaluate converts a raw, user-typed input between two possibly unselected
// grinders.
func Evaluate(source, target *Grinder, input string) Outcome {
	if source == nil || target == nil || strings.TrimSpace(input) == "" {
		return Outcome{Status: StatusPending}
	}

	v := ParseDecimal(input)
	if math.IsNaN(v) {
		return Outcome{Status: StatusPending}
	}

	r, ok := Convert(source, target, v)
	if !ok {
		if len(ValidIndices(source)) < 2 || len(ValidIndices(target)) < 2 {
			return Outcome{Status: StatusInsufficient}
		}
		return Outcome{Status: StatusIncompatible}
	}

	return Outcome{Status: StatusConverted, Result: &r}
}

// Request is the state of a conversion form.
type Request struct {
	Source *Grinder
	Target *Grinder
	Input  string
}

func (r Request) Evaluate() Outcome {
	return Evaluate(r.Source, r.Target, r.Input)
}

// Swapped exchanges source and target. The previous result becomes the new
// input, so converting again goes back the other way.
func (r Request) Swapped(o Outcome) Request {
	input := ""
	if o.Result != nil {
		input = o.Result.Value
	}
	return Request{
		Source: r.Target,
		Target: r.Source,
		Input:  input,
	}
}
