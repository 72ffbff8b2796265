// Package grind converts grind settings between coffee grinders. It contains:
//
//   - Grinder and Setting: a grinder's calibration table, one entry per click
//   - Convert: piecewise-linear interpolation over the positions both
//     grinders have data for, with clamping and snapping to text labels
//   - Evaluate: the classification a form or CLI needs to decide what to show
//     (pending input, insufficient data, incompatible scales, a result)
//
// Everything in this package is pure. Nothing is cached or mutated, so all
// functions are safe for concurrent use.
package grind
