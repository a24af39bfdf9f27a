package swatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSamplingUnsupported is returned by ColorPicker.Sample when the session
// has no ScreenSampler.
var ErrSamplingUnsupported = errors.New("screen sampling is not supported")

// maxHexDigits is the longest manual hex entry.
const maxHexDigits = 6

// ColorPicker is an editing session bound to one externally owned color
// string. It layers presets, manual hex entry, screen sampling and an opacity
// control over ParseColor and ComposeColor.
type ColorPicker struct {
	value    string
	hex      string
	opacity  float64
	input    string
	onChange func(string)
	opts     *sessionOptions
}

// NewColorPicker creates a session seeded from value.
// onChange may be nil.
func NewColorPicker(value string, onChange func(string), opts ...Option) *ColorPicker {
	p := &ColorPicker{
		onChange: onChange,
		opts:     applyOptions(opts),
	}
	p.reset(value)
	return p
}

// Sync binds the session to value, re-parsing it when it differs from the
// bound one.
func (p *ColorPicker) Sync(value string) {
	if value == p.value {
		return
	}
	p.reset(value)
}

func (p *ColorPicker) reset(value string) {
	c := ParseColor(value)
	p.value = value
	p.hex = c.Hex
	p.opacity = c.Opacity
	p.input = c.Hex
	p.opts.logger.Debug("color picker seeded", p.opts.logArgs("value", value)...)
}

// Value returns the external value the session is bound to.
func (p *ColorPicker) Value() string { return p.value }

// Hex returns the current "#rrggbb" color.
func (p *ColorPicker) Hex() string { return p.hex }

// Opacity returns the current opacity.
func (p *ColorPicker) Opacity() float64 { return p.opacity }

// Input returns the text shown in the manual hex field.
func (p *ColorPicker) Input() string { return p.input }

// Composed returns the canonical string for the current color.
func (p *ColorPicker) Composed() string {
	return ComposeColor(p.hex, p.opacity)
}

// Presets returns the palette's preset swatches.
func (p *ColorPicker) Presets() []string {
	return append([]string(nil), p.opts.codec.palette.Presets...)
}

// SelectPreset applies a preset color. The session keeps its opacity unless
// the preset itself is translucent.
func (p *ColorPicker) SelectPreset(preset string) {
	c := ParseColor(preset)
	opacity := p.opacity
	if c.Opacity < 1 {
		opacity = c.Opacity
	}
	p.input = c.Hex
	p.set(c.Hex, opacity, "preset")
}

// SetHex applies a color chosen by a continuous control such as a spectrum.
// The current opacity is kept.
func (p *ColorPicker) SetHex(hex string) {
	c := ParseColor(hex)
	p.input = c.Hex
	p.set(c.Hex, p.opacity, "hex")
}

// SetOpacity changes the opacity, clamped into [0, 1].
func (p *ColorPicker) SetOpacity(o float64) {
	p.set(p.hex, clampUnit(o), "opacity")
}

// Sample reads a pixel through the session's ScreenSampler and applies it at
// the current opacity.
func (p *ColorPicker) Sample(ctx context.Context) error {
	if p.opts.sampler == nil {
		return ErrSamplingUnsupported
	}
	sampled, err := p.opts.sampler.Sample(ctx)
	if err != nil {
		return fmt.Errorf("failed to sample screen: %w", err)
	}
	r, g, b, _ := sampled.RGBA()
	hex := channelsToHex(int(r>>8), int(g>>8), int(b>>8))
	p.input = hex
	p.set(hex, p.opacity, "sample")
	return nil
}

// TypeHex updates the manual hex field with text. The color changes only
// once the field holds exactly 3 or 6 hex digits.
func (p *ColorPicker) TypeHex(text string) {
	p.input = text
	digits := hexInputDigits(text)
	if len(digits) == 3 || len(digits) == maxHexDigits {
		p.set("#"+expandHex(digits), p.opacity, "manual")
	}
}

// Blur completes the manual hex field when it loses focus. An empty field
// resets to black; a partial one is right-padded with its last digit.
func (p *ColorPicker) Blur() {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p.input), "#"))
	digits := hexInputDigits(p.input)

	switch {
	case raw == "":
		p.input = DefaultHex
		p.set(DefaultHex, p.opacity, "blur")
	case len(digits) == 3 || len(digits) == maxHexDigits:
		p.input = "#" + digits
	default:
		hex := "#" + padHexDigits(digits)
		p.input = hex
		p.set(hex, p.opacity, "blur")
	}
}

func (p *ColorPicker) set(hex string, opacity float64, source string) {
	p.hex = hex
	p.opacity = opacity
	value := p.Composed()
	p.opts.logger.Debug("color changed", p.opts.logArgs("source", source, "value", value)...)
	if p.onChange != nil {
		p.onChange(value)
	}
}

// hexInputDigits returns the first six hex digits of text, lowercased.
func hexInputDigits(text string) string {
	var b strings.Builder
	for i := 0; i < len(text) && b.Len() < maxHexDigits; i++ {
		if isHexDigit(text[i]) {
			b.WriteByte(text[i])
		}
	}
	return strings.ToLower(b.String())
}

// padHexDigits right-pads digits to six with its last digit, or '0' when
// there is none.
func padHexDigits(digits string) string {
	fill := byte('0')
	if digits != "" {
		fill = digits[len(digits)-1]
	}
	return digits + strings.Repeat(string(fill), maxHexDigits-len(digits))
}
