package types

import "github.com/tab/holy-grind/pkg/grind"

// ConvertResponse is a classified conversion with the note to show for it.
type ConvertResponse struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Input  string       `json:"input"`
	Status grind.Status `json:"status"`
	// Result is set when Status is converted.
	Result *grind.Result `json:"result,omitempty"`
	// SourceRange is the range the input can take, when the source grinder
	// has any calibration data.
	SourceRange *grind.Range `json:"sourceRange,omitempty"`
	// Message is the localized note for the status, empty for an exact
	// conversion.
	Message string `json:"message,omitempty"`
	Lang    string `json:"lang"`
}
