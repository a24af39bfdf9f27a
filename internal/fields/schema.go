package fields

import (
	"fmt"

	"github.com/opd-ai/swatch/pkg/swatch"
)

// Spec describes one field: how its value is edited and what an unset value
// is shown as.
type Spec struct {
	ID      FieldID
	Kind    Kind
	Section Section
	Default string
}

// Schema maps every field to its Spec.
type Schema struct {
	specs [fieldCount]Spec
}

// DefaultSchema returns the built-in field defaults for palette p.
func DefaultSchema(p swatch.Palette) *Schema {
	codec := swatch.NewGradientCodec(p)
	brand := codec.Palette()
	brandGradient := codec.Normalize("")
	reversed := codec.Compose(swatch.LinearGradient, 135, []string{brand.Secondary, brand.Primary}, 1)

	defaults := [fieldCount]string{
		HeroBackground:             brandGradient,
		HeroTitleColor:             "#ffffff",
		HeroSubtitleColor:          "rgba(255, 255, 255, 0.8)",
		HeroButtonBackground:       codec.Compose(swatch.LinearGradient, 90, []string{brand.Accent, brand.Secondary}, 1),
		HeroButtonTextColor:        "#ffffff",
		FeaturesBackground:         "linear-gradient(180deg, #ffffff, #f4f6fb)",
		FeaturesTitleColor:         "#0b1026",
		FeaturesCardColor:          "rgba(255, 255, 255, 0.08)",
		FeaturesIconColor:          brand.Primary,
		PricingBackground:          reversed,
		PricingHighlightBackground: codec.Compose(swatch.RadialGradient, 0, []string{brand.Accent, brand.Primary}, 1),
		PricingTextColor:           "#ffffff",
		TestimonialsBackground:     "linear-gradient(90deg, #0b1026, #1b2150)",
		TestimonialsQuoteColor:     "rgba(255, 255, 255, 0.9)",
		FooterBackground:           "linear-gradient(180deg, #0b1026, #000000)",
		FooterTextColor:            "rgba(255, 255, 255, 0.6)",
	}

	s := &Schema{}
	for id := FieldID(0); id < fieldCount; id++ {
		s.specs[id] = Spec{
			ID:      id,
			Kind:    id.Kind(),
			Section: id.Section(),
			Default: defaults[id],
		}
	}
	return s
}

// WithDefaults returns a copy of s whose defaults are replaced by overrides.
// Each override is canonicalized through its field's codec.
func (s *Schema) WithDefaults(codec *swatch.GradientCodec, overrides map[FieldID]string) (*Schema, error) {
	out := &Schema{specs: s.specs}
	for id, value := range overrides {
		if !id.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrUnknownField, id)
		}
		out.specs[id].Default = Canonical(codec, id.Kind(), value)
	}
	return out, nil
}

// Spec returns the spec of id. It panics if id is not a declared field.
func (s *Schema) Spec(id FieldID) Spec {
	return s.specs[id]
}

// Specs returns every spec in declaration order.
func (s *Schema) Specs() []Spec {
	out := make([]Spec, fieldCount)
	copy(out, s.specs[:])
	return out
}

// Canonical returns the canonical text of value for a field of kind k.
func Canonical(codec *swatch.GradientCodec, k Kind, value string) string {
	if k == KindGradient {
		return codec.Normalize(value)
	}
	return swatch.ParseColor(value).String()
}
