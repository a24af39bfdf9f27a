package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches environment variable references in configuration values.
// Supports formats:
//   - ${VAR_NAME} - standard shell-like format
//   - ${VAR_NAME:-default} - with default value if unset or empty
//   - $VAR_NAME - simple format (word characters only)
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([a-zA-Z_][a-zA-Z0-9_]*)`)

// ExpandEnv expands environment variable references in s.
// Unset variables without a default expand to the empty string.
func ExpandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if strings.HasPrefix(match, "${") && strings.HasSuffix(match, "}") {
			inner := match[2 : len(match)-1]

			if idx := strings.Index(inner, ":-"); idx >= 0 {
				if val := os.Getenv(inner[:idx]); val != "" {
					return val
				}
				return inner[idx+2:]
			}
			return os.Getenv(inner)
		}
		return os.Getenv(match[1:])
	})
}

// ExpandEnvConfig expands environment variables in place in the palette
// colors, the presets, and the field overrides.
func ExpandEnvConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Palette.Primary = ExpandEnv(cfg.Palette.Primary)
	cfg.Palette.Secondary = ExpandEnv(cfg.Palette.Secondary)
	cfg.Palette.Accent = ExpandEnv(cfg.Palette.Accent)
	for i, preset := range cfg.Palette.Presets {
		cfg.Palette.Presets[i] = ExpandEnv(preset)
	}
	for id, value := range cfg.Fields {
		cfg.Fields[id] = ExpandEnv(value)
	}
}
