package swatch

import (
	"context"
	"image/color"
)

// ScreenSampler reads the color of one on-screen pixel chosen by the host,
// typically the pixel under the pointer.
type ScreenSampler interface {
	Sample(ctx context.Context) (color.Color, error)
}

// Option configures a GradientEditor or ColorPicker.
type Option func(*sessionOptions)

type sessionOptions struct {
	codec   *GradientCodec
	logger  Logger
	sampler ScreenSampler
	id      string
}

func defaultSessionOptions() *sessionOptions {
	return &sessionOptions{
		codec:  defaultCodec,
		logger: NopLogger(),
	}
}

func applyOptions(opts []Option) *sessionOptions {
	o := defaultSessionOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithPalette sets the brand palette used for fallbacks, the third-stop seed
// and color presets.
func WithPalette(p Palette) Option {
	return func(o *sessionOptions) {
		o.codec = NewGradientCodec(p)
	}
}

// WithCodec shares an existing codec between sessions.
func WithCodec(c *GradientCodec) Option {
	return func(o *sessionOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithLogger sets the session logger. Emitted values are logged at debug level.
func WithLogger(l Logger) Option {
	return func(o *sessionOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSampler enables ColorPicker.Sample.
func WithSampler(s ScreenSampler) Option {
	return func(o *sessionOptions) {
		o.sampler = s
	}
}

// WithSessionID tags every log record of the session with id.
func WithSessionID(id string) Option {
	return func(o *sessionOptions) {
		o.id = id
	}
}

func (o *sessionOptions) logArgs(args ...any) []any {
	if o.id == "" {
		return args
	}
	return append([]any{"session", o.id}, args...)
}
