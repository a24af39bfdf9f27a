package swatch

import (
	"context"
	"errors"
	"image/color"
	"testing"
)

type fakeSampler struct {
	c   color.Color
	err error
}

func (f fakeSampler) Sample(ctx context.Context) (color.Color, error) {
	return f.c, f.err
}

func TestColorPickerSeed(t *testing.T) {
	tests := []struct {
		value   string
		hex     string
		opacity float64
	}{
		{"rgba(255, 255, 255, 0.08)", "#ffffff", 0.08},
		{"#FFF", "#ffffff", 1},
		{"", DefaultHex, 1},
		{"nonsense", DefaultHex, 1},
	}

	for _, tt := range tests {
		p := NewColorPicker(tt.value, nil)
		if p.Hex() != tt.hex || p.Opacity() != tt.opacity {
			t.Errorf("NewColorPicker(%q) = %s/%v, want %s/%v", tt.value, p.Hex(), p.Opacity(), tt.hex, tt.opacity)
		}
		if p.Input() != tt.hex {
			t.Errorf("NewColorPicker(%q).Input() = %q", tt.value, p.Input())
		}
	}
}

func TestColorPickerPresetKeepsOpacity(t *testing.T) {
	rec := &recorder{}
	p := NewColorPicker("rgba(0, 0, 0, 0.4)", rec.onChange)

	p.SelectPreset("#ffffff")
	if got := rec.last(t); got != "rgba(255, 255, 255, 0.4)" {
		t.Errorf("opaque preset: %q", got)
	}

	p.SelectPreset("rgba(255, 0, 0, 0.08)")
	if got := rec.last(t); got != "rgba(255, 0, 0, 0.08)" {
		t.Errorf("translucent preset: %q", got)
	}
	if p.Opacity() != 0.08 {
		t.Errorf("Opacity() = %v", p.Opacity())
	}
}

func TestColorPickerOpacity(t *testing.T) {
	rec := &recorder{}
	p := NewColorPicker("#1946f5", rec.onChange)

	p.SetOpacity(0.5)
	if got := rec.last(t); got != "rgba(25, 70, 245, 0.5)" {
		t.Errorf("SetOpacity(0.5): %q", got)
	}
	p.SetOpacity(1)
	if got := rec.last(t); got != "#1946f5" {
		t.Errorf("SetOpacity(1): %q", got)
	}
	p.SetOpacity(7)
	if p.Opacity() != 1 {
		t.Errorf("SetOpacity(7) -> %v", p.Opacity())
	}
}

func TestColorPickerSetHex(t *testing.T) {
	rec := &recorder{}
	p := NewColorPicker("rgba(0, 0, 0, 0.5)", rec.onChange)

	p.SetHex("#ABC")
	if got := rec.last(t); got != "rgba(170, 187, 204, 0.5)" {
		t.Errorf("SetHex: %q", got)
	}
	if p.Input() != "#aabbcc" {
		t.Errorf("Input() = %q", p.Input())
	}
}

func TestColorPickerSample(t *testing.T) {
	rec := &recorder{}
	p := NewColorPicker("rgba(0, 0, 0, 0.3)", rec.onChange,
		WithSampler(fakeSampler{c: color.RGBA{R: 0x19, G: 0x46, B: 0xf5, A: 0xff}}))

	if err := p.Sample(context.Background()); err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if got := rec.last(t); got != "rgba(25, 70, 245, 0.3)" {
		t.Errorf("sampled value: %q", got)
	}
	if p.Hex() != "#1946f5" {
		t.Errorf("Hex() = %q", p.Hex())
	}
}

func TestColorPickerSampleErrors(t *testing.T) {
	p := NewColorPicker("#000000", nil)
	if err := p.Sample(context.Background()); !errors.Is(err, ErrSamplingUnsupported) {
		t.Errorf("Sample without sampler = %v, want ErrSamplingUnsupported", err)
	}

	boom := errors.New("no display")
	p = NewColorPicker("#000000", nil, WithSampler(fakeSampler{err: boom}))
	if err := p.Sample(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Sample = %v, want wrapped %v", err, boom)
	}
	if p.Hex() != "#000000" {
		t.Errorf("failed sample changed color to %q", p.Hex())
	}
}

func TestColorPickerManualEntry(t *testing.T) {
	rec := &recorder{}
	p := NewColorPicker("rgba(0, 0, 0, 0.5)", rec.onChange)

	for _, partial := range []string{"#", "#f", "#ff"} {
		p.TypeHex(partial)
		if p.Input() != partial {
			t.Errorf("Input() = %q, want %q", p.Input(), partial)
		}
	}
	if len(rec.values) != 0 {
		t.Fatalf("partial entry emitted %v", rec.values)
	}

	p.TypeHex("#ff0")
	if got := rec.last(t); got != "rgba(255, 255, 0, 0.5)" {
		t.Errorf("3 digits: %q", got)
	}

	p.TypeHex("#ff00")
	p.TypeHex("#ff000")
	if len(rec.values) != 1 {
		t.Errorf("4-5 digits emitted: %v", rec.values)
	}

	p.TypeHex("#FF0000")
	if got := rec.last(t); got != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("6 digits: %q", got)
	}
}

func TestColorPickerBlur(t *testing.T) {
	tests := []struct {
		name     string
		typed    string
		emits    bool
		expected string
		input    string
	}{
		{"empty resets to black", "", true, "#000000", "#000000"},
		{"hash only resets to black", "#", true, "#000000", "#000000"},
		{"one digit", "#a", true, "#aaaaaa", "#aaaaaa"},
		{"two digits", "#ab", true, "#abbbbb", "#abbbbb"},
		{"four digits", "#abcd", true, "#abcddd", "#abcddd"},
		{"five digits", "#12345", true, "#123455", "#123455"},
		{"no valid digits", "#zz", true, "#000000", "#000000"},
		{"complete entry is left alone", "#abc", false, "", "#abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			p := NewColorPicker("#ffffff", rec.onChange)
			p.TypeHex(tt.typed)
			emitted := len(rec.values)

			p.Blur()
			if tt.emits {
				if len(rec.values) != emitted+1 {
					t.Fatalf("Blur did not emit")
				}
				if got := rec.last(t); got != tt.expected {
					t.Errorf("Blur emitted %q, want %q", got, tt.expected)
				}
			} else if len(rec.values) != emitted {
				t.Errorf("Blur emitted %v", rec.values[emitted:])
			}
			if p.Input() != tt.input {
				t.Errorf("Input() = %q, want %q", p.Input(), tt.input)
			}
		})
	}
}

func TestColorPickerSync(t *testing.T) {
	p := NewColorPicker("#ffffff", nil)
	p.TypeHex("#12")

	p.Sync("#ffffff")
	if p.Input() != "#12" {
		t.Errorf("Sync with unchanged value reset input to %q", p.Input())
	}

	p.Sync("rgba(1, 2, 3, 0.5)")
	if p.Hex() != "#010203" || p.Opacity() != 0.5 || p.Input() != "#010203" {
		t.Errorf("after Sync: %s %v %q", p.Hex(), p.Opacity(), p.Input())
	}
}

func TestColorPickerPresets(t *testing.T) {
	p := NewColorPicker("", nil, WithPalette(Palette{Presets: []string{"#111111", "#222222"}}))
	presets := p.Presets()
	if len(presets) != 2 || presets[0] != "#111111" {
		t.Errorf("Presets() = %v", presets)
	}
	presets[0] = "#999999"
	if p.Presets()[0] != "#111111" {
		t.Error("Presets() exposed internal slice")
	}
}
