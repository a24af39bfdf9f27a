//go:build linux

package render

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11Sampler reads the root window pixel under the X11 pointer.
type X11Sampler struct {
	// Display is the X display to connect to. Empty uses $DISPLAY.
	Display string
}

// NewX11Sampler returns a sampler for the default display.
func NewX11Sampler() *X11Sampler {
	return &X11Sampler{}
}

// Sample returns the color of the pixel under the pointer.
func (s *X11Sampler) Sample(ctx context.Context) (color.Color, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conn, err := xgb.NewConnDisplay(s.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	defer conn.Close()

	screen, err := defaultScreen(conn)
	if err != nil {
		return nil, err
	}

	pointer, err := xproto.QueryPointer(conn, screen.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query pointer: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := captureRegion(conn, screen, int(pointer.RootX), int(pointer.RootY), 1, 1)
	if err != nil {
		return nil, err
	}
	return img.RGBAAt(0, 0), nil
}

func defaultScreen(conn *xgb.Conn) (*xproto.ScreenInfo, error) {
	setup := xproto.Setup(conn)
	if len(setup.Roots) == 0 {
		return nil, fmt.Errorf("no screens found")
	}
	return &setup.Roots[0], nil
}

func captureRegion(conn *xgb.Conn, screen *xproto.ScreenInfo, x, y, width, height int) (*image.RGBA, error) {
	if x < 0 {
		width += x
		x = 0
	}
	if y < 0 {
		height += y
		y = 0
	}
	if sw := int(screen.WidthInPixels); x+width > sw {
		width = sw - x
	}
	if sh := int(screen.HeightInPixels); y+height > sh {
		height = sh - y
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture dimensions: %dx%d at (%d,%d)", width, height, x, y)
	}

	reply, err := xproto.GetImage(
		conn,
		xproto.ImageFormatZPixmap,
		xproto.Drawable(screen.Root),
		int16(x), int16(y),
		uint16(width), uint16(height),
		0xFFFFFFFF, // All planes
	).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to capture screen region: %w", err)
	}

	switch reply.Depth {
	case 24, 32:
		return decodeBGRX(reply.Data, width, height), nil
	default:
		return nil, fmt.Errorf("unsupported color depth: %d", reply.Depth)
	}
}

// decodeBGRX converts 4-byte BGRX pixel data into an opaque RGBA image.
func decodeBGRX(data []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			idx := (py*width + px) * 4
			if idx+3 >= len(data) {
				return img
			}
			img.SetRGBA(px, py, color.RGBA{R: data[idx+2], G: data[idx+1], B: data[idx], A: 255})
		}
	}
	return img
}
