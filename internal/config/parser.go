package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Parser loads, expands, and validates configuration files.
type Parser struct {
	luaParser *LuaConfigParser
}

// NewParser creates a new Parser.
func NewParser() (*Parser, error) {
	luaParser, err := NewLuaConfigParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create Lua parser: %w", err)
	}
	return &Parser{luaParser: luaParser}, nil
}

// ParseFile reads and parses a configuration file.
func (p *Parser) ParseFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return p.Parse(content)
}

// Parse runs the Lua configuration, expands environment references in its
// string values, and validates the result.
func (p *Parser) Parse(content []byte) (*Config, error) {
	cfg, err := p.luaParser.Parse(content)
	if err != nil {
		return nil, err
	}
	ExpandEnvConfig(cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseFromFS reads and parses a configuration file from a filesystem.
func (p *Parser) ParseFromFS(fsys fs.FS, path string) (*Config, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS %s: %w", path, err)
	}
	return p.Parse(content)
}

// ParseReader parses configuration from an io.Reader.
func (p *Parser) ParseReader(r io.Reader) (*Config, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return p.Parse(content)
}

// Close releases resources associated with the parser.
func (p *Parser) Close() error {
	if p.luaParser != nil {
		return p.luaParser.Close()
	}
	return nil
}

// Load parses the file at path, or returns the defaults when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		return &cfg, nil
	}

	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ParseFile(path)
}
