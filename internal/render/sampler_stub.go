//go:build !linux

package render

import (
	"context"
	"image/color"

	"github.com/opd-ai/swatch/pkg/swatch"
)

// X11Sampler is not available on non-Linux platforms.
type X11Sampler struct {
	Display string
}

// NewX11Sampler returns a sampler that always fails.
func NewX11Sampler() *X11Sampler {
	return &X11Sampler{}
}

// Sample always returns swatch.ErrSamplingUnsupported.
func (s *X11Sampler) Sample(ctx context.Context) (color.Color, error) {
	return nil, swatch.ErrSamplingUnsupported
}
