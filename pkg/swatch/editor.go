package swatch

import "strings"

// GradientState is the editable view of one gradient value.
type GradientState struct {
	Type           GradientType
	Degree         int
	Colors         []string
	Opacity        float64
	HasThreeColors bool
}

// GradientEditor is an editing session bound to one externally owned
// gradient string. The owner receives every recomposed value through the
// change callback and decides whether to store it; storing it and calling
// Sync re-seeds the session.
type GradientEditor struct {
	value    string
	state    GradientState
	onChange func(string)
	opts     *sessionOptions
}

// NewGradientEditor creates a session seeded from value.
// onChange may be nil.
func NewGradientEditor(value string, onChange func(string), opts ...Option) *GradientEditor {
	e := &GradientEditor{
		onChange: onChange,
		opts:     applyOptions(opts),
	}
	e.reset(value)
	return e
}

// Sync binds the session to value. When value differs from the bound one the
// local state is discarded and parsed again from value.
func (e *GradientEditor) Sync(value string) {
	if value == e.value {
		return
	}
	e.reset(value)
}

func (e *GradientEditor) reset(value string) {
	g := e.opts.codec.Parse(value)
	e.value = value
	e.state = GradientState{
		Type:           g.Type,
		Degree:         g.Degree,
		Colors:         g.Colors,
		Opacity:        g.Opacity,
		HasThreeColors: len(g.Colors) == maxStops,
	}
	e.opts.logger.Debug("gradient editor seeded", e.opts.logArgs("value", value, "type", g.Type.String())...)
}

// Value returns the external value the session is bound to.
func (e *GradientEditor) Value() string {
	return e.value
}

// State returns a copy of the current editing state.
func (e *GradientEditor) State() GradientState {
	s := e.state
	s.Colors = append([]string(nil), e.state.Colors...)
	return s
}

// Composed returns the canonical string for the current state.
func (e *GradientEditor) Composed() string {
	return e.opts.codec.Compose(e.state.Type, e.state.Degree, e.state.Colors, e.state.Opacity)
}

// SetType changes the gradient shape.
func (e *GradientEditor) SetType(t GradientType) {
	e.state.Type = t
	e.emit("type")
}

// SetDegree changes the angle, wrapped into [1, 360].
func (e *GradientEditor) SetDegree(d int) {
	e.state.Degree = NormalizeDegree(d)
	e.emit("degree")
}

// SetColor replaces stop i. Indexes outside the current stops and blank
// colors are ignored.
func (e *GradientEditor) SetColor(i int, hex string) {
	if i < 0 || i >= len(e.state.Colors) {
		e.opts.logger.Debug("gradient stop out of range", e.opts.logArgs("index", i, "stops", len(e.state.Colors))...)
		return
	}
	if strings.TrimSpace(hex) == "" {
		e.opts.logger.Debug("blank gradient stop ignored", e.opts.logArgs("index", i)...)
		return
	}
	colors := append([]string(nil), e.state.Colors...)
	colors[i] = hex
	e.state.Colors = colors
	e.emit("color")
}

// SetOpacity changes the scalar opacity, clamped into [0, 1].
func (e *GradientEditor) SetOpacity(o float64) {
	e.state.Opacity = clampUnit(o)
	e.emit("opacity")
}

// SetThreeColors toggles the third stop. Enabling seeds it with the palette
// accent; disabling drops it for good.
func (e *GradientEditor) SetThreeColors(enabled bool) {
	if enabled == e.state.HasThreeColors {
		return
	}
	e.state.HasThreeColors = enabled
	if enabled {
		e.state.Colors = append(append([]string(nil), e.state.Colors[:2]...), e.opts.codec.palette.Accent)
	} else {
		e.state.Colors = append([]string(nil), e.state.Colors[:2]...)
	}
	e.emit("three_colors")
}

func (e *GradientEditor) emit(field string) {
	value := e.Composed()
	e.opts.logger.Debug("gradient changed", e.opts.logArgs("field", field, "value", value)...)
	if e.onChange != nil {
		e.onChange(value)
	}
}
