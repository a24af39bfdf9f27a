// Package swatch converts color and gradient values between their canonical
// text form and a structured model that editing controls can change field by
// field.
//
// # Canonical Text
//
// A color is stored as "#rrggbb" or "rgba(r, g, b, a)". A gradient is stored as
// one of:
//
//	linear-gradient(45deg, #1946f5, #6a2c9a)
//	radial-gradient(circle, #1946f5, #6a2c9a, #e9407a)
//	conic-gradient(from 90deg, rgba(25, 70, 245, 0.5), rgba(106, 44, 154, 0.5))
//
// # Total Codecs
//
// [ParseColor] and [ParseGradient] accept any string. Input that cannot be
// recognized maps to a default (solid black, or a 90° linear gradient between
// the palette's primary and secondary colors) instead of an error:
//
//	g := swatch.ParseGradient("linear-gradient(to left, #fff, #000)")
//	// g.Degree == 270, g.Colors == []string{"#ffffff", "#000000"}
//	s := swatch.ComposeGradient(g.Type, g.Degree, g.Colors, g.Opacity)
//	// s == "linear-gradient(270deg, #ffffff, #000000)"
//
// Composing a parsed value and parsing it again yields the same fields, so
// re-saving a value that was not edited never changes it after the first save.
//
// # Editing Sessions
//
// [GradientEditor] and [ColorPicker] hold the structured fields of one stored
// value. Every mutation recomposes the complete string and hands it to the
// session's change callback. When the stored value changes, [GradientEditor.Sync]
// and [ColorPicker.Sync] discard the local fields and parse the new value.
//
// Sessions are owned by a single caller and are not safe for concurrent use.
package swatch
