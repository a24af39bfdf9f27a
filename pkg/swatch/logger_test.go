package swatch

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := TextLogger(&buf, slog.LevelDebug)

	tests := []struct {
		name string
		log  func(msg string, args ...any)
	}{
		{"debug", adapter.Debug},
		{"info", adapter.Info},
		{"warn", adapter.Warn},
		{"error", adapter.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log(tt.name+" message", "key", "value")
			if !strings.Contains(buf.String(), tt.name+" message") {
				t.Errorf("%s did not log message, got: %s", tt.name, buf.String())
			}
			if !strings.Contains(buf.String(), "key=value") {
				t.Errorf("%s did not log key-value pair, got: %s", tt.name, buf.String())
			}
		})
	}
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	adapter := TextLogger(&buf, slog.LevelInfo).With("field", "hero_background")
	adapter.Info("saved")
	if !strings.Contains(buf.String(), "field=hero_background") {
		t.Errorf("With() args missing, got: %s", buf.String())
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := JSONLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %s", buf.String())
	}

	logger.Info("visible", "count", 3)
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON record %q: %v", buf.String(), err)
	}
	if record["msg"] != "visible" || record["count"] != float64(3) {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestNewSlogAdapterNil(t *testing.T) {
	if NewSlogAdapter(nil).logger == nil {
		t.Error("NewSlogAdapter(nil) has no logger")
	}
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	l.Debug("a")
	l.Info("b", "k", 1)
	l.Warn("c")
	l.Error("d")
}
