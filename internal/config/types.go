// Package config provides configuration loading for swatch.
// Configuration is a Lua file that fills the global swatch table.
package config

import (
	"time"

	"github.com/opd-ai/swatch/internal/fields"
	"github.com/opd-ai/swatch/pkg/swatch"
)

// Config holds all settings read from a configuration file.
type Config struct {
	// Palette supplies the brand colors and presets used by the codec and
	// the color picker.
	Palette swatch.Palette
	// Fields overrides schema defaults for individual fields.
	Fields map[fields.FieldID]string
	// Preview controls PNG preview rendering.
	Preview PreviewConfig
	// Watch controls document watching.
	Watch WatchConfig
}

// PreviewConfig holds preview image settings.
type PreviewConfig struct {
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
	// Label draws the value text under the swatch when true.
	Label bool
}

// WatchConfig holds document watcher settings.
type WatchConfig struct {
	// Debounce is the quiet period after a write before a document is
	// reprocessed.
	Debounce time.Duration
}

// Codec returns a gradient codec bound to the configured palette.
func (c *Config) Codec() *swatch.GradientCodec {
	return swatch.NewGradientCodec(c.Palette)
}

// Schema returns the field schema with the configured overrides applied.
func (c *Config) Schema() (*fields.Schema, error) {
	base := fields.DefaultSchema(c.Palette)
	if len(c.Fields) == 0 {
		return base, nil
	}
	return base.WithDefaults(c.Codec(), c.Fields)
}
