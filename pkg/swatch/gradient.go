package swatch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDegree is the angle used when none can be read from a gradient.
const DefaultDegree = 90

// maxStops is the largest number of color stops a gradient keeps.
const maxStops = 3

// GradientType specifies the shape of a gradient.
type GradientType int

const (
	// LinearGradient renders along an angle. It is the zero value.
	LinearGradient GradientType = iota
	// RadialGradient renders from the center outward; it has no angle.
	RadialGradient
	// ConicGradient sweeps around the center starting at an angle.
	ConicGradient
)

// String returns the string representation of a GradientType.
func (t GradientType) String() string {
	switch t {
	case RadialGradient:
		return "radial"
	case ConicGradient:
		return "conic"
	default:
		return "linear"
	}
}

// ParseGradientType parses "linear", "radial" or "conic".
func ParseGradientType(s string) (GradientType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return LinearGradient, nil
	case "radial":
		return RadialGradient, nil
	case "conic":
		return ConicGradient, nil
	default:
		return LinearGradient, fmt.Errorf("unknown gradient type: %q", s)
	}
}

// Gradient is the structured form of a gradient value.
type Gradient struct {
	Type GradientType
	// Degree is in [1, 360]. Radial gradients carry DefaultDegree.
	Degree int
	// Colors holds 2 or 3 "#rrggbb" stops.
	Colors []string
	// Opacity is applied to every stop when composing.
	Opacity float64
}

var (
	// An angle is an unsigned integer directly followed by "deg". The leading
	// class keeps "-45deg" and "12.5deg" from matching their integer tails.
	degreePattern     = regexp.MustCompile(`(?:^|[^\d.+-])(\d+)deg`)
	conicFromPattern  = regexp.MustCompile(`from\s+(\d+)deg`)
	directionPattern  = regexp.MustCompile(`\b(right|left|top|bottom)\b`)
	colorStopPattern  = regexp.MustCompile(`#[0-9a-f]{3,8}|rgba?\([^)]*\)`)
	directionDegrees  = map[string]int{"right": 90, "left": 270, "top": 0, "bottom": 180}
	defaultCodec      = NewGradientCodec(DefaultPalette())
	rgbaLiteralPrefix = "rgba("
)

// GradientCodec parses and composes gradients against a brand palette.
// It is immutable and safe for concurrent use.
type GradientCodec struct {
	palette Palette
}

// NewGradientCodec creates a codec whose fallbacks come from p. Empty or
// unrecognizable brand colors in p are replaced by the built-in ones.
func NewGradientCodec(p Palette) *GradientCodec {
	return &GradientCodec{palette: p.normalized()}
}

// Palette returns the codec's normalized palette.
func (c *GradientCodec) Palette() Palette {
	p := c.palette
	p.Presets = append([]string(nil), c.palette.Presets...)
	return p
}

// Default returns the gradient every unrecognizable value parses to.
func (c *GradientCodec) Default() Gradient {
	return Gradient{
		Type:    LinearGradient,
		Degree:  DefaultDegree,
		Colors:  c.defaultColors(),
		Opacity: 1,
	}
}

func (c *GradientCodec) defaultColors() []string {
	return []string{c.palette.Primary, c.palette.Secondary}
}

// Parse reads a gradient literal. It never fails: whatever cannot be read
// falls back to the codec's defaults.
func (c *GradientCodec) Parse(s string) Gradient {
	g := c.Default()
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return g
	}

	switch {
	case strings.Contains(lower, "radial-gradient"):
		g.Type = RadialGradient
	case strings.Contains(lower, "conic-gradient"):
		g.Type = ConicGradient
		if d, ok := matchDegree(conicFromPattern, lower); ok {
			g.Degree = d
		}
	case strings.Contains(lower, "linear-gradient"):
		g.Type = LinearGradient
		if d, ok := matchDegree(degreePattern, lower); ok {
			g.Degree = d
		} else if m := directionPattern.FindStringSubmatch(lower); m != nil {
			g.Degree = NormalizeDegree(directionDegrees[m[1]])
		}
	}

	stops := colorStopPattern.FindAllString(lower, maxStops)
	if len(stops) < 2 {
		return g
	}

	g.Colors = make([]string, len(stops))
	for i, stop := range stops {
		g.Colors[i] = stopHex(stop)
	}
	if strings.HasPrefix(stops[0], rgbaLiteralPrefix) {
		g.Opacity = ParseColor(stops[0]).Opacity
	}
	return g
}

// Compose returns the canonical text for a gradient. Empty entries in colors
// are dropped; entries that are already rgba(...) literals are emitted as
// given, the rest are composed at opacity. Fewer than two usable colors
// compose the palette's default pair.
func (c *GradientCodec) Compose(t GradientType, degree int, colors []string, opacity float64) string {
	stops := make([]string, 0, len(colors))
	for _, col := range colors {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(col), rgbaLiteralPrefix) {
			stops = append(stops, col)
			continue
		}
		stops = append(stops, ComposeColor(col, opacity))
	}
	if len(stops) < 2 {
		stops = stops[:0]
		for _, col := range c.defaultColors() {
			stops = append(stops, ComposeColor(col, opacity))
		}
	}

	joined := strings.Join(stops, ", ")
	switch t {
	case RadialGradient:
		return "radial-gradient(circle, " + joined + ")"
	case ConicGradient:
		return fmt.Sprintf("conic-gradient(from %ddeg, %s)", NormalizeDegree(degree), joined)
	default:
		return fmt.Sprintf("linear-gradient(%ddeg, %s)", NormalizeDegree(degree), joined)
	}
}

// Normalize parses s and composes the result, producing the canonical text
// for any input.
func (c *GradientCodec) Normalize(s string) string {
	g := c.Parse(s)
	return c.Compose(g.Type, g.Degree, g.Colors, g.Opacity)
}

// ParseGradient parses a gradient literal against the default palette.
func ParseGradient(s string) Gradient {
	return defaultCodec.Parse(s)
}

// ComposeGradient composes a gradient against the default palette.
func ComposeGradient(t GradientType, degree int, colors []string, opacity float64) string {
	return defaultCodec.Compose(t, degree, colors, opacity)
}

// String returns the canonical text for g using the default palette.
func (g Gradient) String() string {
	return ComposeGradient(g.Type, g.Degree, g.Colors, g.Opacity)
}

// NormalizeDegree wraps an angle into [1, 360]; 0 becomes 360.
func NormalizeDegree(d int) int {
	d %= 360
	if d <= 0 {
		d += 360
	}
	return d
}

func matchDegree(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	d, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return NormalizeDegree(d), true
}

// stopHex normalizes one matched stop to "#rrggbb". Hex runs longer than six
// digits keep their first six; shorter ones expand their first three.
func stopHex(stop string) string {
	if !strings.HasPrefix(stop, "#") {
		return ParseColor(stop).Hex
	}
	digits := stop[1:]
	if len(digits) >= 6 {
		return "#" + digits[:6]
	}
	return "#" + expandHex(digits[:3])
}
