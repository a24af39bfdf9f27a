package fields

import (
	"strings"

	"github.com/opd-ai/swatch/pkg/swatch"
)

// Sink stores a field value by its document key.
type Sink interface {
	Set(key, value string)
}

// Change records one field rewritten by Normalize.
type Change struct {
	Field  FieldID
	Before string
	After  string
}

// Report summarizes a Normalize run.
type Report struct {
	Changed   []Change
	Unset     []FieldID
	Unchanged int
}

// Normalize rewrites every stored field of src into its canonical text and
// writes the changed ones to dst. Unset fields are reported and left alone.
// Running it on its own output changes nothing.
func Normalize(schema *Schema, codec *swatch.GradientCodec, src Source, dst Sink) Report {
	var report Report
	for _, spec := range schema.Specs() {
		key := spec.ID.String()
		value, ok := src.Get(key)
		if !ok || strings.TrimSpace(value) == "" {
			report.Unset = append(report.Unset, spec.ID)
			continue
		}

		canonical := Canonical(codec, spec.Kind, value)
		if canonical == value {
			report.Unchanged++
			continue
		}
		if dst != nil {
			dst.Set(key, canonical)
		}
		report.Changed = append(report.Changed, Change{Field: spec.ID, Before: value, After: canonical})
	}
	return report
}
