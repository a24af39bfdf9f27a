package fields

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/opd-ai/swatch/pkg/swatch"
)

// mapSource is an in-memory Source and Sink.
type mapSource map[string]string

func (m mapSource) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapSource) Set(key, value string) {
	m[key] = value
}

type emitted struct {
	id    FieldID
	value string
}

func TestRegistryBindSeedsSessions(t *testing.T) {
	schema := DefaultSchema(swatch.DefaultPalette())
	r := NewRegistry(schema, nil)

	r.Bind(mapSource{
		"hero_background":   "radial-gradient(circle, #ff0000, #00ff00, #0000ff)",
		"hero_title_color":  "rgba(255, 255, 255, 0.5)",
		"footer_text_color": "",
	})

	ed, err := r.Gradient(HeroBackground)
	if err != nil {
		t.Fatalf("Gradient(HeroBackground) failed: %v", err)
	}
	if s := ed.State(); s.Type != swatch.RadialGradient || !s.HasThreeColors {
		t.Errorf("hero background state = %+v", s)
	}

	p, err := r.Color(HeroTitleColor)
	if err != nil {
		t.Fatalf("Color(HeroTitleColor) failed: %v", err)
	}
	if p.Hex() != "#ffffff" || p.Opacity() != 0.5 {
		t.Errorf("hero title = %s/%v", p.Hex(), p.Opacity())
	}

	// Unset and empty fields are seeded from the schema default.
	footer, _ := r.Color(FooterTextColor)
	if footer.Value() != schema.Spec(FooterTextColor).Default {
		t.Errorf("footer text seeded with %q", footer.Value())
	}
	if !r.Unset(FooterTextColor) || !r.Unset(PricingBackground) || r.Unset(HeroBackground) {
		t.Error("Unset() mismatch")
	}
}

func TestRegistryRoutesChanges(t *testing.T) {
	var got []emitted
	r := NewRegistry(DefaultSchema(swatch.DefaultPalette()), func(id FieldID, v string) {
		got = append(got, emitted{id, v})
	})
	r.Bind(mapSource{})

	ed, _ := r.Gradient(FooterBackground)
	ed.SetDegree(45)
	p, _ := r.Color(HeroTitleColor)
	p.SetOpacity(0.5)

	if len(got) != 2 {
		t.Fatalf("expected 2 changes, got %v", got)
	}
	if got[0].id != FooterBackground || got[0].value != "linear-gradient(45deg, #0b1026, #000000)" {
		t.Errorf("first change = %+v", got[0])
	}
	if got[1].id != HeroTitleColor || got[1].value != "rgba(255, 255, 255, 0.5)" {
		t.Errorf("second change = %+v", got[1])
	}
}

func TestRegistryRebindResyncs(t *testing.T) {
	r := NewRegistry(DefaultSchema(swatch.DefaultPalette()), nil)
	r.Bind(mapSource{"hero_background": "linear-gradient(90deg, #111111, #222222)"})

	first, _ := r.Gradient(HeroBackground)
	first.SetDegree(10)

	r.Bind(mapSource{"hero_background": "conic-gradient(from 30deg, #333333, #444444)"})
	second, _ := r.Gradient(HeroBackground)
	if first != second {
		t.Error("Bind replaced the session instead of syncing it")
	}
	if s := second.State(); s.Type != swatch.ConicGradient || s.Degree != 30 {
		t.Errorf("state after rebind = %+v", s)
	}
}

func TestRegistryKindMismatch(t *testing.T) {
	r := NewRegistry(DefaultSchema(swatch.DefaultPalette()), nil)
	r.Bind(mapSource{})

	if _, err := r.Color(HeroBackground); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Color(gradient field) error = %v", err)
	}
	if _, err := r.Gradient(HeroTitleColor); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Gradient(color field) error = %v", err)
	}
	if _, err := r.Gradient(FieldID(100)); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Gradient(invalid) error = %v", err)
	}
}

func TestRegistryUnboundField(t *testing.T) {
	r := NewRegistry(DefaultSchema(swatch.DefaultPalette()), nil)
	if _, err := r.Gradient(HeroBackground); err == nil {
		t.Error("expected error before Bind")
	}
}

func TestRegistryLogsFieldKey(t *testing.T) {
	var buf bytes.Buffer
	logger := swatch.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	r := NewRegistry(DefaultSchema(swatch.DefaultPalette()), nil, WithLogger(logger))
	r.Bind(mapSource{})

	ed, _ := r.Gradient(PricingBackground)
	buf.Reset()
	ed.SetOpacity(0.5)

	out := buf.String()
	if !strings.Contains(out, "field_key=pricing_background") {
		t.Errorf("missing field key: %s", out)
	}
	if !strings.Contains(out, "session=") {
		t.Errorf("missing session id: %s", out)
	}
}

func TestRegistrySection(t *testing.T) {
	r := NewRegistry(DefaultSchema(swatch.DefaultPalette()), nil)
	specs := r.Section(SectionFooter)
	if len(specs) != 2 || specs[0].ID != FooterBackground || specs[1].Kind != KindColor {
		t.Errorf("Section(footer) = %+v", specs)
	}
}
