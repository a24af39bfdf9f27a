package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/swatch/internal/fields"
)

// LuaConfigParser parses Lua configuration files.
// It runs the file in a Golua runtime and reads the swatch global table.
type LuaConfigParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaConfigParser creates a LuaConfigParser whose print output is
// discarded.
func NewLuaConfigParser() (*LuaConfigParser, error) {
	return NewLuaConfigParserWithOutput(io.Discard)
}

// NewLuaConfigParserWithOutput creates a LuaConfigParser that writes Lua
// print output to stdout.
func NewLuaConfigParserWithOutput(stdout io.Writer) (*LuaConfigParser, error) {
	if stdout == nil {
		stdout = os.Stdout
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &LuaConfigParser{
		runtime: runtime,
		cleanup: cleanup,
	}, nil
}

// Parse executes content and extracts the configuration from the swatch
// table. Missing sections keep their defaults.
func (p *LuaConfigParser) Parse(content []byte) (*Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.initSwatchGlobal()

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"config",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua configuration: %w", err)
	}

	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    10_000_000,
			Memory: 50 * 1024 * 1024, // 50 MB
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()

	thread := p.runtime.MainThread()
	if _, err := rt.Call1(thread, rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("failed to execute Lua configuration: %w", err)
	}

	return p.extractConfig()
}

// initSwatchGlobal installs a fresh swatch table with empty sections so
// scripts can assign individual keys.
func (p *LuaConfigParser) initSwatchGlobal() {
	swatchTable := rt.NewTable()
	for _, section := range []string{"palette", "fields", "preview", "watch"} {
		swatchTable.Set(rt.StringValue(section), rt.TableValue(rt.NewTable()))
	}
	p.runtime.GlobalEnv().Set(rt.StringValue("swatch"), rt.TableValue(swatchTable))
}

func (p *LuaConfigParser) extractConfig() (*Config, error) {
	cfg := DefaultConfig()

	swatchVal := p.runtime.GlobalEnv().Get(rt.StringValue("swatch"))
	if swatchVal == rt.NilValue {
		return &cfg, nil
	}
	swatchTable, ok := swatchVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("swatch is not a table")
	}

	if t, err := sectionTable(swatchTable, "palette"); err != nil {
		return nil, err
	} else if t != nil {
		if err := extractPalette(&cfg, t); err != nil {
			return nil, err
		}
	}
	if t, err := sectionTable(swatchTable, "fields"); err != nil {
		return nil, err
	} else if t != nil {
		if err := extractFields(&cfg, t); err != nil {
			return nil, err
		}
	}
	if t, err := sectionTable(swatchTable, "preview"); err != nil {
		return nil, err
	} else if t != nil {
		extractPreview(&cfg, t)
	}
	if t, err := sectionTable(swatchTable, "watch"); err != nil {
		return nil, err
	} else if t != nil {
		if val := getTableFloat(t, "debounce"); val != nil {
			cfg.Watch.Debounce = time.Duration(*val * float64(time.Second))
		}
	}

	return &cfg, nil
}

// sectionTable returns swatch[name], nil when unset, or an error when it is
// not a table.
func sectionTable(table *rt.Table, name string) (*rt.Table, error) {
	val := table.Get(rt.StringValue(name))
	if val == rt.NilValue {
		return nil, nil
	}
	t, ok := val.TryTable()
	if !ok {
		return nil, fmt.Errorf("swatch.%s is not a table", name)
	}
	return t, nil
}

func extractPalette(cfg *Config, table *rt.Table) error {
	brand := []struct {
		key    string
		target *string
	}{
		{"primary", &cfg.Palette.Primary},
		{"secondary", &cfg.Palette.Secondary},
		{"accent", &cfg.Palette.Accent},
	}
	for _, b := range brand {
		if val := getTableString(table, b.key); val != nil {
			*b.target = *val
		}
	}

	presetsVal := table.Get(rt.StringValue("presets"))
	if presetsVal == rt.NilValue {
		return nil
	}
	presets, ok := presetsVal.TryTable()
	if !ok {
		return fmt.Errorf("swatch.palette.presets is not a table")
	}

	var list []string
	for i := int64(1); ; i++ {
		val := presets.Get(rt.IntValue(i))
		if val == rt.NilValue {
			break
		}
		s, ok := val.TryString()
		if !ok {
			return fmt.Errorf("swatch.palette.presets[%d] is not a string", i)
		}
		list = append(list, s)
	}
	cfg.Palette.Presets = list
	return nil
}

func extractFields(cfg *Config, table *rt.Table) error {
	overrides := make(map[fields.FieldID]string)

	var k rt.Value
	for {
		next, val, ok := table.Next(k)
		if !ok || next == rt.NilValue {
			break
		}
		k = next

		key, ok := next.TryString()
		if !ok {
			return fmt.Errorf("swatch.fields has a non-string key")
		}
		id, err := fields.ParseFieldID(key)
		if err != nil {
			return fmt.Errorf("swatch.fields: %w", err)
		}
		value, ok := val.TryString()
		if !ok {
			return fmt.Errorf("swatch.fields.%s is not a string", key)
		}
		overrides[id] = value
	}

	if len(overrides) > 0 {
		cfg.Fields = overrides
	}
	return nil
}

func extractPreview(cfg *Config, table *rt.Table) {
	if val := getTableInt(table, "width"); val != nil {
		cfg.Preview.Width = *val
	}
	if val := getTableInt(table, "height"); val != nil {
		cfg.Preview.Height = *val
	}
	if val := getTableBool(table, "label"); val != nil {
		cfg.Preview.Label = *val
	}
}

// Close releases resources associated with the parser's Lua runtime.
func (p *LuaConfigParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// getTableBool retrieves a boolean value from a Lua table.
// Returns nil if the key doesn't exist or is not a boolean.
func getTableBool(table *rt.Table, key string) *bool {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if b, ok := val.TryBool(); ok {
		return &b
	}

	// "yes"/"true" strings, as written by hand-edited configs
	if s, ok := val.TryString(); ok {
		b := parseBool(s)
		return &b
	}

	return nil
}

// getTableString retrieves a string value from a Lua table.
// Returns nil if the key doesn't exist or is not a string.
func getTableString(table *rt.Table, key string) *string {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if s, ok := val.TryString(); ok {
		return &s
	}

	return nil
}

// getTableFloat retrieves a float64 value from a Lua table.
func getTableFloat(table *rt.Table, key string) *float64 {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryFloat(); ok {
		return &n
	}
	if n, ok := val.TryInt(); ok {
		f := float64(n)
		return &f
	}

	return nil
}

// getTableInt retrieves an int value from a Lua table, truncating floats.
func getTableInt(table *rt.Table, key string) *int {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if n, ok := val.TryInt(); ok {
		i := int(n)
		return &i
	}
	if f, ok := val.TryFloat(); ok {
		i := int(f)
		return &i
	}

	return nil
}

// parseBool interprets yes/true/1 as true, case-insensitively.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}
