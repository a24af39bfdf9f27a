package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/opd-ai/swatch/internal/fields"
	"github.com/opd-ai/swatch/pkg/swatch"
)

const (
	// checkerSize is the edge of one transparency checkerboard cell.
	checkerSize = 8
	// labelHeight is the height of the caption band under the swatch.
	labelHeight = 20
	// labelFontSize is the caption size in points at 72 DPI.
	labelFontSize = 11
)

var (
	checkerLight = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	checkerDark  = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	labelBand    = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	labelText    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// PreviewOptions controls preview rendering.
type PreviewOptions struct {
	Width  int
	Height int
	// Label adds a caption band with the canonical value.
	Label bool
	// Codec parses gradient values. Nil uses the built-in palette.
	Codec *swatch.GradientCodec
}

// Preview renders value as a swatch over a transparency checkerboard and
// returns the canonical value it drew.
func Preview(value string, kind fields.Kind, opts PreviewOptions) (*image.RGBA, string, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, "", fmt.Errorf("invalid preview size %dx%d", opts.Width, opts.Height)
	}
	codec := opts.Codec
	if codec == nil {
		codec = swatch.NewGradientCodec(swatch.DefaultPalette())
	}

	var (
		layer     *image.NRGBA
		canonical string
	)
	switch kind {
	case fields.KindGradient:
		g := codec.Parse(value)
		canonical = codec.Compose(g.Type, g.Degree, g.Colors, g.Opacity)
		layer = Rasterize(g, opts.Width, opts.Height)
	default:
		c := swatch.ParseColor(value)
		canonical = c.String()
		layer = Solid(c, opts.Width, opts.Height)
	}

	height := opts.Height
	if opts.Label {
		height += labelHeight
	}
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, height))
	drawCheckerboard(dst, layer.Bounds())
	draw.Draw(dst, layer.Bounds(), layer, image.Point{}, draw.Over)

	if opts.Label {
		band := image.Rect(0, opts.Height, opts.Width, height)
		draw.Draw(dst, band, image.NewUniform(labelBand), image.Point{}, draw.Src)
		if err := drawLabel(dst, band, canonical); err != nil {
			return nil, "", err
		}
	}
	return dst, canonical, nil
}

func drawCheckerboard(dst *image.RGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if (x/checkerSize+y/checkerSize)%2 == 0 {
				dst.SetRGBA(x, y, checkerLight)
			} else {
				dst.SetRGBA(x, y, checkerDark)
			}
		}
	}
}

var (
	labelFaceOnce sync.Once
	labelFace     font.Face
	labelFaceErr  error
)

// loadLabelFace parses the embedded Go Mono font once.
func loadLabelFace() (font.Face, error) {
	labelFaceOnce.Do(func() {
		f, err := opentype.Parse(gomono.TTF)
		if err != nil {
			labelFaceErr = fmt.Errorf("failed to parse label font: %w", err)
			return
		}
		labelFace, labelFaceErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    labelFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if labelFaceErr != nil {
			labelFaceErr = fmt.Errorf("failed to create label face: %w", labelFaceErr)
		}
	})
	return labelFace, labelFaceErr
}

// drawLabel writes text into band, left aligned and vertically centred.
func drawLabel(dst *image.RGBA, band image.Rectangle, text string) error {
	face, err := loadLabelFace()
	if err != nil {
		return err
	}

	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	baseline := band.Min.Y + (band.Dy()-textHeight)/2 + metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelText),
		Face: face,
		Dot:  fixed.P(band.Min.X+4, baseline),
	}
	d.DrawString(text)
	return nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
