// Package render rasterizes stored color and gradient values into images for
// previews, and samples screen pixels for the color picker.
package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/opd-ai/swatch/pkg/swatch"
)

// stop is one decoded gradient color at a position in [0, 1].
type stop struct {
	position float64
	color    colorful.Color
	alpha    float64
}

// decodeStop converts a stored stop (hex or rgba) into a colorful.Color and
// the alpha it carries.
func decodeStop(value string) (colorful.Color, float64) {
	parsed := swatch.ParseColor(value)
	c, err := colorful.Hex(parsed.Hex)
	if err != nil {
		// ParseColor only produces #rrggbb.
		return colorful.Color{}, parsed.Opacity
	}
	return c, parsed.Opacity
}

// evenStops spaces colors evenly from 0 to 1. rgba stops keep their own
// alpha and the rest take opacity, as the gradient text is composed.
func evenStops(colors []string, opacity float64) []stop {
	stops := make([]stop, len(colors))
	for i, value := range colors {
		c, a := decodeStop(value)
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(value)), "rgba(") {
			a = opacity
		}
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = stop{position: pos, color: c, alpha: a}
	}
	return stops
}

// colorAt interpolates between the two stops around t in sRGB.
func colorAt(stops []stop, t float64) color.NRGBA {
	switch {
	case len(stops) == 0:
		return color.NRGBA{}
	case len(stops) == 1 || t <= stops[0].position:
		return toNRGBA(stops[0].color, stops[0].alpha)
	case t >= stops[len(stops)-1].position:
		last := stops[len(stops)-1]
		return toNRGBA(last.color, last.alpha)
	}

	i := 1
	for ; i < len(stops)-1; i++ {
		if stops[i].position >= t {
			break
		}
	}
	from, to := stops[i-1], stops[i]
	ratio := (t - from.position) / (to.position - from.position)
	return toNRGBA(from.color.BlendRgb(to.color, ratio), from.alpha+(to.alpha-from.alpha)*ratio)
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Solid returns a w×h image filled with c at its opacity.
func Solid(c swatch.Color, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill, _ := decodeStop(c.Hex)
	px := toNRGBA(fill, c.Opacity)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}

// Rasterize returns a w×h image of g.
// Linear gradients follow the CSS angle convention (0deg points up, angles
// turn clockwise) with the gradient line spanning the corners. Radial
// gradients are circles reaching the farthest corner. Conic gradients start
// at the from angle and sweep clockwise.
func Rasterize(g swatch.Gradient, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	stops := evenStops(g.Colors, g.Opacity)
	position := positionFunc(g, float64(w), float64(h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Sample at the pixel centre, relative to the image centre.
			px := float64(x) + 0.5 - float64(w)/2
			py := float64(y) + 0.5 - float64(h)/2
			img.SetNRGBA(x, y, colorAt(stops, position(px, py)))
		}
	}
	return img
}

// positionFunc maps a point relative to the image centre onto the gradient
// line, 0 at the first stop and 1 at the last.
func positionFunc(g swatch.Gradient, w, h float64) func(px, py float64) float64 {
	theta := float64(g.Degree) * math.Pi / 180

	switch g.Type {
	case swatch.RadialGradient:
		radius := math.Hypot(w/2, h/2)
		return func(px, py float64) float64 {
			return math.Hypot(px, py) / radius
		}
	case swatch.ConicGradient:
		return func(px, py float64) float64 {
			// atan2(x, -y) is the clockwise angle from straight up.
			angle := math.Atan2(px, -py) - theta
			turn := math.Mod(angle, 2*math.Pi)
			if turn < 0 {
				turn += 2 * math.Pi
			}
			return turn / (2 * math.Pi)
		}
	default:
		dx, dy := math.Sin(theta), -math.Cos(theta)
		length := math.Abs(w*dx) + math.Abs(h*dy)
		return func(px, py float64) float64 {
			return (px*dx+py*dy)/length + 0.5
		}
	}
}
