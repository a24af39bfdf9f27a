// Package fields declares every editable color and gradient field of the
// marketing page once, and hosts one editing session per field for any
// content-section editor.
package fields

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a key does not name a field.
var ErrUnknownField = errors.New("unknown field")

// FieldID identifies one editable field. The set is closed: keys coming from
// documents or configuration resolve through ParseFieldID.
type FieldID int

const (
	HeroBackground FieldID = iota
	HeroTitleColor
	HeroSubtitleColor
	HeroButtonBackground
	HeroButtonTextColor
	FeaturesBackground
	FeaturesTitleColor
	FeaturesCardColor
	FeaturesIconColor
	PricingBackground
	PricingHighlightBackground
	PricingTextColor
	TestimonialsBackground
	TestimonialsQuoteColor
	FooterBackground
	FooterTextColor

	fieldCount
)

// Section groups the fields shown by one content-section editor.
type Section string

// Page sections.
const (
	SectionHero         Section = "hero"
	SectionFeatures     Section = "features"
	SectionPricing      Section = "pricing"
	SectionTestimonials Section = "testimonials"
	SectionFooter       Section = "footer"
)

// Kind specifies which codec a field's value goes through.
type Kind int

const (
	// KindColor fields hold a single color literal.
	KindColor Kind = iota
	// KindGradient fields hold a gradient literal.
	KindGradient
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindGradient:
		return "gradient"
	default:
		return "color"
	}
}

// ParseKind parses "color" or "gradient".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "color":
		return KindColor, nil
	case "gradient":
		return KindGradient, nil
	default:
		return KindColor, fmt.Errorf("unknown field kind: %q", s)
	}
}

type fieldInfo struct {
	key     string
	section Section
	kind    Kind
}

var fieldTable = [fieldCount]fieldInfo{
	HeroBackground:             {"hero_background", SectionHero, KindGradient},
	HeroTitleColor:             {"hero_title_color", SectionHero, KindColor},
	HeroSubtitleColor:          {"hero_subtitle_color", SectionHero, KindColor},
	HeroButtonBackground:       {"hero_button_background", SectionHero, KindGradient},
	HeroButtonTextColor:        {"hero_button_text_color", SectionHero, KindColor},
	FeaturesBackground:         {"features_background", SectionFeatures, KindGradient},
	FeaturesTitleColor:         {"features_title_color", SectionFeatures, KindColor},
	FeaturesCardColor:          {"features_card_color", SectionFeatures, KindColor},
	FeaturesIconColor:          {"features_icon_color", SectionFeatures, KindColor},
	PricingBackground:          {"pricing_background", SectionPricing, KindGradient},
	PricingHighlightBackground: {"pricing_highlight_background", SectionPricing, KindGradient},
	PricingTextColor:           {"pricing_text_color", SectionPricing, KindColor},
	TestimonialsBackground:     {"testimonials_background", SectionTestimonials, KindGradient},
	TestimonialsQuoteColor:     {"testimonials_quote_color", SectionTestimonials, KindColor},
	FooterBackground:           {"footer_background", SectionFooter, KindGradient},
	FooterTextColor:            {"footer_text_color", SectionFooter, KindColor},
}

var fieldsByKey = func() map[string]FieldID {
	m := make(map[string]FieldID, fieldCount)
	for id := FieldID(0); id < fieldCount; id++ {
		m[fieldTable[id].key] = id
	}
	return m
}()

// All returns every field in declaration order.
func All() []FieldID {
	ids := make([]FieldID, fieldCount)
	for i := range ids {
		ids[i] = FieldID(i)
	}
	return ids
}

// Valid reports whether id is a declared field.
func (id FieldID) Valid() bool {
	return id >= 0 && id < fieldCount
}

// String returns the field's document key.
func (id FieldID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("field(%d)", int(id))
	}
	return fieldTable[id].key
}

// Section returns the section the field belongs to.
func (id FieldID) Section() Section {
	if !id.Valid() {
		return ""
	}
	return fieldTable[id].section
}

// Kind returns the field's value kind.
func (id FieldID) Kind() Kind {
	if !id.Valid() {
		return KindColor
	}
	return fieldTable[id].kind
}

// ParseFieldID resolves a document key such as "hero_background".
func ParseFieldID(key string) (FieldID, error) {
	if id, ok := fieldsByKey[strings.TrimSpace(key)]; ok {
		return id, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownField, key)
}

// InSection returns the fields of one section in declaration order.
func InSection(s Section) []FieldID {
	var ids []FieldID
	for id := FieldID(0); id < fieldCount; id++ {
		if fieldTable[id].section == s {
			ids = append(ids, id)
		}
	}
	return ids
}
