package param

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

var (
	// ErrInvalidParameter is returned when a descriptor violates min <= default <= max.
	ErrInvalidParameter = errors.New("invalid parameter descriptor")
	// ErrDuplicateParameter is returned when two descriptors share an id.
	ErrDuplicateParameter = errors.New("duplicate parameter id")
)

// Parameter describes one float control and holds its current plain value.
// The descriptor fields are fixed once the parameter is registered.
type Parameter struct {
	ID           string
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64

	// Plain value bits, written by the control side and read by the processing side
	value atomic.Uint64

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Validate checks the descriptor invariants.
func (p *Parameter) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidParameter)
	}
	if math.IsNaN(p.Min) || math.IsNaN(p.Max) || math.IsNaN(p.DefaultValue) {
		return fmt.Errorf("%w: %s has NaN bounds or default", ErrInvalidParameter, p.ID)
	}
	if p.Min > p.Max {
		return fmt.Errorf("%w: %s min %g > max %g", ErrInvalidParameter, p.ID, p.Min, p.Max)
	}
	if p.DefaultValue < p.Min || p.DefaultValue > p.Max {
		return fmt.Errorf("%w: %s default %g outside [%g, %g]",
			ErrInvalidParameter, p.ID, p.DefaultValue, p.Min, p.Max)
	}
	return nil
}

// Value returns the current plain value.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetValue stores value clamped to [Min, Max] and returns what was stored.
// NaN is ignored and the current value is returned.
func (p *Parameter) SetValue(value float64) float64 {
	if math.IsNaN(value) {
		return p.Value()
	}
	clamped := p.Clamp(value)
	p.value.Store(math.Float64bits(clamped))
	return clamped
}

// Clone returns a copy of the descriptor with its own value storage, set to
// the default.
func (p *Parameter) Clone() *Parameter {
	c := &Parameter{
		ID:           p.ID,
		Name:         p.Name,
		ShortName:    p.ShortName,
		Unit:         p.Unit,
		Min:          p.Min,
		Max:          p.Max,
		DefaultValue: p.DefaultValue,
		formatFunc:   p.formatFunc,
		parseFunc:    p.parseFunc,
	}
	c.ResetToDefault()
	return c
}

// ResetToDefault restores the default value.
func (p *Parameter) ResetToDefault() {
	p.value.Store(math.Float64bits(p.DefaultValue))
}

// Clamp limits value to the parameter range.
func (p *Parameter) Clamp(value float64) float64 {
	if value < p.Min {
		return p.Min
	}
	if value > p.Max {
		return p.Max
	}
	return value
}

// NormalizedValue returns the current value mapped to 0-1.
func (p *Parameter) NormalizedValue() float64 {
	return p.Normalize(p.Value())
}

// SetNormalized sets the value from a normalized 0-1 position.
func (p *Parameter) SetNormalized(normalized float64) float64 {
	if math.IsNaN(normalized) {
		return p.Value()
	}
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	return p.SetValue(p.Denormalize(normalized))
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	normalized := (plain - p.Min) / (p.Max - p.Min)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// Denormalize converts normalized (0-1) to plain value
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + normalized*(p.Max-p.Min)
}

// SetFormatter sets custom value formatting
func (p *Parameter) SetFormatter(format func(float64) string, parse func(string) (float64, error)) {
	p.formatFunc = format
	p.parseFunc = parse
}

// Format returns the plain value as display text.
func (p *Parameter) Format(plain float64) string {
	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}
	if p.Unit != "" {
		return fmt.Sprintf("%.2f %s", plain, p.Unit)
	}
	return fmt.Sprintf("%.2f", plain)
}

// Parse converts display text back to a plain value. The result is not clamped.
func (p *Parameter) Parse(str string) (float64, error) {
	if p.parseFunc != nil {
		return p.parseFunc(str)
	}
	return strconv.ParseFloat(str, 64)
}

// String implements fmt.Stringer.
func (p *Parameter) String() string {
	return fmt.Sprintf("%s (%s) = %s", p.ID, p.Name, p.Format(p.Value()))
}
