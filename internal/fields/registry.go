package fields

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/opd-ai/swatch/pkg/swatch"
)

// ErrKindMismatch is returned when a color session is requested for a
// gradient field or the reverse.
var ErrKindMismatch = errors.New("field kind mismatch")

// Source provides the stored value of a field by its document key.
// ok is false when the field is absent or null.
type Source interface {
	Get(key string) (value string, ok bool)
}

// ChangeFunc receives every value a session recomposes.
type ChangeFunc func(id FieldID, value string)

// Registry hosts one editing session per field of a schema. Sessions never
// share state; each is re-seeded whenever Bind sees its field's value change.
type Registry struct {
	schema    *Schema
	codec     *swatch.GradientCodec
	logger    swatch.Logger
	sampler   swatch.ScreenSampler
	onChange  ChangeFunc
	gradients map[FieldID]*swatch.GradientEditor
	colors    map[FieldID]*swatch.ColorPicker
	stored    map[FieldID]bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithCodec sets the gradient codec shared by every session.
func WithCodec(c *swatch.GradientCodec) RegistryOption {
	return func(r *Registry) {
		if c != nil {
			r.codec = c
		}
	}
}

// WithLogger sets the logger; records carry the field key and a session id.
func WithLogger(l swatch.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSampler enables screen sampling on color sessions.
func WithSampler(s swatch.ScreenSampler) RegistryOption {
	return func(r *Registry) {
		r.sampler = s
	}
}

// NewRegistry creates an empty registry. Sessions are created by Bind.
func NewRegistry(schema *Schema, onChange ChangeFunc, opts ...RegistryOption) *Registry {
	r := &Registry{
		schema:    schema,
		codec:     swatch.NewGradientCodec(swatch.DefaultPalette()),
		logger:    swatch.NopLogger(),
		onChange:  onChange,
		gradients: make(map[FieldID]*swatch.GradientEditor),
		colors:    make(map[FieldID]*swatch.ColorPicker),
		stored:    make(map[FieldID]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bind seeds or re-syncs every session from src. Unset fields are seeded
// from their schema default.
func (r *Registry) Bind(src Source) {
	for _, spec := range r.schema.Specs() {
		value, ok := src.Get(spec.ID.String())
		ok = ok && strings.TrimSpace(value) != ""
		r.stored[spec.ID] = ok
		if !ok {
			value = spec.Default
		}
		r.bind(spec, value)
	}
}

func (r *Registry) bind(spec Spec, value string) {
	switch spec.Kind {
	case KindGradient:
		if ed, ok := r.gradients[spec.ID]; ok {
			ed.Sync(value)
			return
		}
		r.gradients[spec.ID] = swatch.NewGradientEditor(value, r.emitter(spec.ID), r.sessionOptions(spec.ID)...)
	default:
		if p, ok := r.colors[spec.ID]; ok {
			p.Sync(value)
			return
		}
		r.colors[spec.ID] = swatch.NewColorPicker(value, r.emitter(spec.ID), r.sessionOptions(spec.ID)...)
	}
}

func (r *Registry) sessionOptions(id FieldID) []swatch.Option {
	return []swatch.Option{
		swatch.WithCodec(r.codec),
		swatch.WithLogger(fieldLogger{Logger: r.logger, field: id.String()}),
		swatch.WithSessionID(uuid.NewString()),
		swatch.WithSampler(r.sampler),
	}
}

func (r *Registry) emitter(id FieldID) func(string) {
	return func(value string) {
		if r.onChange != nil {
			r.onChange(id, value)
		}
	}
}

// Gradient returns the gradient session of id.
func (r *Registry) Gradient(id FieldID) (*swatch.GradientEditor, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownField, id)
	}
	if id.Kind() != KindGradient {
		return nil, fmt.Errorf("%w: %s is a %s field", ErrKindMismatch, id, id.Kind())
	}
	ed, ok := r.gradients[id]
	if !ok {
		return nil, fmt.Errorf("field %s is not bound", id)
	}
	return ed, nil
}

// Color returns the color session of id.
func (r *Registry) Color(id FieldID) (*swatch.ColorPicker, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownField, id)
	}
	if id.Kind() != KindColor {
		return nil, fmt.Errorf("%w: %s is a %s field", ErrKindMismatch, id, id.Kind())
	}
	p, ok := r.colors[id]
	if !ok {
		return nil, fmt.Errorf("field %s is not bound", id)
	}
	return p, nil
}

// Unset reports whether id had no stored value at the last Bind.
func (r *Registry) Unset(id FieldID) bool {
	return !r.stored[id]
}

// Section returns the specs shown by one section editor.
func (r *Registry) Section(s Section) []Spec {
	ids := InSection(s)
	specs := make([]Spec, len(ids))
	for i, id := range ids {
		specs[i] = r.schema.Spec(id)
	}
	return specs
}

// fieldLogger prefixes every record with the field key.
type fieldLogger struct {
	swatch.Logger
	field string
}

func (l fieldLogger) Debug(msg string, args ...any) {
	l.Logger.Debug(msg, append([]any{"field_key", l.field}, args...)...)
}

func (l fieldLogger) Info(msg string, args ...any) {
	l.Logger.Info(msg, append([]any{"field_key", l.field}, args...)...)
}

func (l fieldLogger) Warn(msg string, args ...any) {
	l.Logger.Warn(msg, append([]any{"field_key", l.field}, args...)...)
}

func (l fieldLogger) Error(msg string, args ...any) {
	l.Logger.Error(msg, append([]any{"field_key", l.field}, args...)...)
}
