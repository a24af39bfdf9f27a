package swatch

import "strings"

// Brand colors used whenever a stored value is absent or unparseable.
const (
	// BrandPrimary is the first stop of the default gradient.
	BrandPrimary = "#1946f5"
	// BrandSecondary is the second stop of the default gradient.
	BrandSecondary = "#6a2c9a"
	// BrandAccent seeds the third stop when an editor enables one.
	BrandAccent = "#e9407a"
)

// Palette holds the brand fallback colors and the preset swatches offered by
// color pickers.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
	// Presets are color literals; a preset may carry its own opacity.
	Presets []string
}

// DefaultPalette returns the built-in brand palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   BrandPrimary,
		Secondary: BrandSecondary,
		Accent:    BrandAccent,
		Presets: []string{
			BrandPrimary,
			BrandSecondary,
			BrandAccent,
			"#0b1026",
			"#ffffff",
			"#000000",
			"rgba(255, 255, 255, 0.08)",
			"rgba(0, 0, 0, 0.5)",
		},
	}
}

// normalized returns a copy of p whose brand colors are canonical 6-digit hex.
// Empty or unrecognizable entries fall back to the built-in brand colors.
func (p Palette) normalized() Palette {
	out := Palette{
		Primary:   normalizeBrand(p.Primary, BrandPrimary),
		Secondary: normalizeBrand(p.Secondary, BrandSecondary),
		Accent:    normalizeBrand(p.Accent, BrandAccent),
	}
	if len(p.Presets) > 0 {
		out.Presets = make([]string, len(p.Presets))
		copy(out.Presets, p.Presets)
	} else {
		out.Presets = DefaultPalette().Presets
	}
	return out
}

func normalizeBrand(value, fallback string) string {
	if !IsColorLiteral(value) {
		return fallback
	}
	return ParseColor(value).Hex
}

// IsColorLiteral reports whether s is one of the color shapes ParseColor
// recognizes.
func IsColorLiteral(s string) bool {
	s = strings.TrimSpace(s)
	return rgbaFuncPattern.MatchString(s) || rgbFuncPattern.MatchString(s) || hexPattern.MatchString(s)
}
