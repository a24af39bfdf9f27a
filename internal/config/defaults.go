package config

import (
	"time"

	"github.com/opd-ai/swatch/pkg/swatch"
)

// Default values for configuration options.
const (
	// DefaultPreviewWidth is the default preview width in pixels.
	DefaultPreviewWidth = 320
	// DefaultPreviewHeight is the default preview height in pixels.
	DefaultPreviewHeight = 160
	// DefaultDebounce is the default watcher quiet period.
	DefaultDebounce = 500 * time.Millisecond
)

// DefaultConfig returns a Config with the built-in palette and no field
// overrides.
func DefaultConfig() Config {
	return Config{
		Palette: swatch.DefaultPalette(),
		Preview: PreviewConfig{
			Width:  DefaultPreviewWidth,
			Height: DefaultPreviewHeight,
			Label:  true,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}
