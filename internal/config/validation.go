package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opd-ai/swatch/internal/fields"
	"github.com/opd-ai/swatch/pkg/swatch"
)

// MaxPreviewSize is the largest accepted preview edge in pixels.
const MaxPreviewSize = 8192

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a configuration validation.
type ValidationResult struct {
	// Errors contains all validation errors found.
	Errors []ValidationError
	// Warnings contains non-fatal issues such as values the codec will
	// silently rewrite.
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error if there are errors, nil otherwise.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Validate checks cfg and returns every problem found.
func Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}
	validatePalette(&cfg.Palette, result)
	validateFields(cfg, result)
	validatePreview(&cfg.Preview, result)

	if cfg.Watch.Debounce < 0 {
		result.AddError("watch.debounce", fmt.Sprintf("must be non-negative, got %v", cfg.Watch.Debounce))
	}
	return result
}

func validatePalette(p *swatch.Palette, result *ValidationResult) {
	brand := []struct {
		field string
		value string
	}{
		{"palette.primary", p.Primary},
		{"palette.secondary", p.Secondary},
		{"palette.accent", p.Accent},
	}
	for _, b := range brand {
		if !swatch.IsColorLiteral(b.value) {
			result.AddError(b.field, fmt.Sprintf("not a color: %q", b.value))
		}
	}

	for i, preset := range p.Presets {
		if !swatch.IsColorLiteral(preset) {
			result.AddError(fmt.Sprintf("palette.presets[%d]", i+1), fmt.Sprintf("not a color: %q", preset))
		}
	}
}

// validateFields warns about overrides the codec would replace with a
// default, which usually means a typo in the config.
func validateFields(cfg *Config, result *ValidationResult) {
	for id, value := range cfg.Fields {
		name := "fields." + id.String()
		if !id.Valid() {
			result.AddError(name, "unknown field")
			continue
		}
		if strings.TrimSpace(value) == "" {
			result.AddError(name, "empty value")
			continue
		}
		if id.Kind() == fields.KindColor && !swatch.IsColorLiteral(value) {
			result.AddWarning(name, fmt.Sprintf("%q is not a color and will become %s", value, swatch.DefaultHex))
		}
	}
}

func validatePreview(pc *PreviewConfig, result *ValidationResult) {
	if pc.Width <= 0 || pc.Width > MaxPreviewSize {
		result.AddError("preview.width", fmt.Sprintf("must be in 1..%d, got %d", MaxPreviewSize, pc.Width))
	}
	if pc.Height <= 0 || pc.Height > MaxPreviewSize {
		result.AddError("preview.height", fmt.Sprintf("must be in 1..%d, got %d", MaxPreviewSize, pc.Height))
	}
}

// ValidateConfig validates cfg and returns nil when it is usable.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return Validate(cfg).Error()
}
