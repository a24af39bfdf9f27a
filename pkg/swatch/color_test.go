package swatch

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
	}{
		{"rgba", "rgba(255, 255, 255, 0.08)", Color{"#ffffff", 0.08}},
		{"rgba no spaces", "rgba(10,20,30,0.5)", Color{"#0a141e", 0.5}},
		{"rgba uppercase", "RGBA(255, 0, 0, .25)", Color{"#ff0000", 0.25}},
		{"rgba integer alpha", "rgba(0, 0, 255, 1)", Color{"#0000ff", 1}},
		{"rgba alpha above one", "rgba(0, 0, 255, 3)", Color{"#0000ff", 1}},
		{"rgba channel clamped", "rgba(300, 999, 256, 0.5)", Color{"#ffffff", 0.5}},
		{"rgba huge channel", "rgba(99999999999999999999999, 0, 0, 0.5)", Color{"#ff0000", 0.5}},
		{"rgba fractional channels truncated", "rgba(10.5, 20.9, 30., 0.5)", Color{"#0a141e", 0.5}},
		{"rgb", "rgb(25, 70, 245)", Color{"#1946f5", 1}},
		{"rgb with spaces", "  rgb( 1 , 2 , 3 )  ", Color{"#010203", 1}},
		{"hex 6", "#1946f5", Color{"#1946f5", 1}},
		{"hex 6 uppercase", "#1946F5", Color{"#1946f5", 1}},
		{"hex 3", "#abc", Color{"#aabbcc", 1}},
		{"hex 3 uppercase", "#FFF", Color{"#ffffff", 1}},
		{"empty", "", Color{DefaultHex, 1}},
		{"garbage", "not a color", Color{DefaultHex, 1}},
		{"named color", "red", Color{DefaultHex, 1}},
		{"hex without hash", "ffffff", Color{DefaultHex, 1}},
		{"hex 4", "#abcd", Color{DefaultHex, 1}},
		{"hex 8", "#ffffff80", Color{DefaultHex, 1}},
		{"rgba missing alpha", "rgba(1, 2, 3)", Color{DefaultHex, 1}},
		{"rgb with alpha", "rgb(1, 2, 3, 0.5)", Color{DefaultHex, 1}},
		{"negative channel", "rgb(-1, 2, 3)", Color{DefaultHex, 1}},
		{"gradient", "linear-gradient(90deg, #fff, #000)", Color{DefaultHex, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColor(tt.input)
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseColorHexExpansion(t *testing.T) {
	short := ParseColor("#abc")
	long := ParseColor("#aabbcc")
	if short != long {
		t.Errorf("ParseColor(#abc) = %+v, ParseColor(#aabbcc) = %+v", short, long)
	}
}

func TestComposeColor(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		opacity  float64
		expected string
	}{
		{"opaque returns hex unchanged", "#ffffff", 1, "#ffffff"},
		{"opaque keeps caller casing", "#FFF", 1, "#FFF"},
		{"above one is opaque", "#123456", 1.5, "#123456"},
		{"translucent", "#ffffff", 0.08, "rgba(255, 255, 255, 0.08)"},
		{"half", "#ff0000", 0.5, "rgba(255, 0, 0, 0.5)"},
		{"short hex expanded", "#f00", 0.5, "rgba(255, 0, 0, 0.5)"},
		{"hex without hash", "00ff00", 0.25, "rgba(0, 255, 0, 0.25)"},
		{"zero", "#0000ff", 0, "rgba(0, 0, 255, 0)"},
		{"negative becomes zero", "#0000ff", -0.5, "rgba(0, 0, 255, 0)"},
		{"nan becomes zero", "#0000ff", math.NaN(), "rgba(0, 0, 255, 0)"},
		{"precision preserved", "#000000", 0.123456789, "rgba(0, 0, 0, 0.123456789)"},
		{"unrecognized hex is black", "#zzzzzz", 0.5, "rgba(0, 0, 0, 0.5)"},
		{"rgb literal decoded", "rgb(1, 2, 3)", 0.5, "rgba(1, 2, 3, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeColor(tt.hex, tt.opacity)
			if got != tt.expected {
				t.Errorf("ComposeColor(%q, %v) = %q, want %q", tt.hex, tt.opacity, got, tt.expected)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	hexes := []string{"#000000", "#ffffff", "#1946f5", "#0a141e", "#e9407a"}
	opacities := []float64{0, 0.08, 0.1, 0.5, 1.0 / 3.0, 0.99, 1}

	for _, hex := range hexes {
		for _, op := range opacities {
			composed := ComposeColor(hex, op)
			got := ParseColor(composed)
			if got.Hex != hex || got.Opacity != op {
				t.Errorf("ParseColor(ComposeColor(%q, %v)) = %+v via %q", hex, op, got, composed)
			}
			if again := ParseColor(got.String()).String(); again != composed {
				t.Errorf("compose not idempotent: %q then %q", composed, again)
			}
		}
	}
}

func TestIsColorLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"#fff", true},
		{"#1946f5", true},
		{"rgb(1, 2, 3)", true},
		{"rgba(1, 2, 3, 0.5)", true},
		{" #ABC ", true},
		{"", false},
		{"#ffff", false},
		{"blue", false},
	}

	for _, tt := range tests {
		if got := IsColorLiteral(tt.input); got != tt.want {
			t.Errorf("IsColorLiteral(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
