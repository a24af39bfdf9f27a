package swatch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultHex is the color every unrecognized color literal parses to.
const DefaultHex = "#000000"

// Color is the structured form of a single color value.
type Color struct {
	// Hex is always "#rrggbb", lowercase.
	Hex string
	// Opacity is in [0, 1].
	Opacity float64
}

var (
	rgbaFuncPattern = regexp.MustCompile(`(?i)^rgba\(\s*(\d+(?:\.\d*)?)\s*,\s*(\d+(?:\.\d*)?)\s*,\s*(\d+(?:\.\d*)?)\s*,\s*(\d+(?:\.\d*)?|\.\d+)\s*\)$`)
	rgbFuncPattern  = regexp.MustCompile(`(?i)^rgb\(\s*(\d+(?:\.\d*)?)\s*,\s*(\d+(?:\.\d*)?)\s*,\s*(\d+(?:\.\d*)?)\s*\)$`)
	hexPattern      = regexp.MustCompile(`(?i)^#([0-9a-f]{3}|[0-9a-f]{6})$`)
)

// ParseColor parses a single color literal.
// Supported formats, tried in order:
//   - RGBA function: "rgba(255, 0, 0, 0.5)"
//   - RGB function: "rgb(255, 0, 0)"
//   - Hex formats: "#RGB", "#RRGGBB"
//
// Anything else yields {#000000, 1}.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)

	if m := rgbaFuncPattern.FindStringSubmatch(s); m != nil {
		return Color{
			Hex:     channelsToHex(parseChannel(m[1]), parseChannel(m[2]), parseChannel(m[3])),
			Opacity: parseAlpha(m[4]),
		}
	}
	if m := rgbFuncPattern.FindStringSubmatch(s); m != nil {
		return Color{
			Hex:     channelsToHex(parseChannel(m[1]), parseChannel(m[2]), parseChannel(m[3])),
			Opacity: 1,
		}
	}
	if m := hexPattern.FindStringSubmatch(s); m != nil {
		return Color{Hex: "#" + expandHex(strings.ToLower(m[1])), Opacity: 1}
	}

	return Color{Hex: DefaultHex, Opacity: 1}
}

// ComposeColor returns the canonical text for hex at the given opacity.
// At full opacity the hex string is returned unchanged; otherwise the result
// is "rgba(r, g, b, a)" with a formatted as the shortest decimal that parses
// back to the same float.
func ComposeColor(hex string, opacity float64) string {
	if opacity >= 1 {
		return hex
	}
	r, g, b := hexChannels(hex)
	return formatRGBA(r, g, b, opacity)
}

// String returns the canonical text for c.
func (c Color) String() string {
	return ComposeColor(c.Hex, c.Opacity)
}

func formatRGBA(r, g, b uint8, opacity float64) string {
	if math.IsNaN(opacity) || opacity < 0 {
		opacity = 0
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(opacity, 'f', -1, 64))
}

// hexChannels decodes a hex color (with or without '#', 3 or 6 digits).
// Other color literals are decoded through ParseColor, which makes anything
// unrecognizable black.
func hexChannels(hex string) (r, g, b uint8) {
	digits := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	if !isHexDigits(digits) || (len(digits) != 3 && len(digits) != 6) {
		digits = strings.TrimPrefix(ParseColor(hex).Hex, "#")
	}
	digits = expandHex(digits)
	return parseHexByte(digits[0:2]), parseHexByte(digits[2:4]), parseHexByte(digits[4:6])
}

// expandHex doubles each nibble of a 3-digit hex string. Other lengths are
// returned unchanged.
func expandHex(digits string) string {
	if len(digits) != 3 {
		return digits
	}
	return string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
}

// channelsToHex encodes clamped channels as "#rrggbb".
func channelsToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// parseChannel reads a decimal channel. Values too large for an int are
// treated as 255.
func parseChannel(s string) int {
	// Fractional channels are truncated.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 255
	}
	return v
}

// parseAlpha reads a float alpha clamped into [0, 1].
func parseAlpha(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return clampUnit(v)
}

// parseHexByte parses a two-character hex string to a byte.
func parseHexByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// isHexDigit checks if a byte is a valid hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}
