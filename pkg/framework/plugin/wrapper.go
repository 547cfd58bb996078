package plugin

import (
	"fmt"
	"math"
	"reflect"

	"github.com/justyntemme/dspwrap/pkg/framework/param"
)

// Wrapper drives one unit through an indexed list of float parameters.
//
// A Wrapper is not safe for concurrent use; callers serialize Prepare,
// parameter writes and ProcessBlock on one instance.
type Wrapper[U Unit] struct {
	info       Info
	unit       U
	params     *param.Registry
	dispatcher Dispatcher[U]

	spec     ProcessSpec
	prepared bool

	onDispatch func(index int, p *param.Parameter, value float64)
}

var _ Processor = (*Wrapper[Unit])(nil)

// New builds an adapter around unit. It fails with a *ConfigError when unit
// is nil, a parameter descriptor is invalid, two parameters share an id, or
// a dispatch table refers to an index outside params. dispatcher may be nil
// for units without controllable state.
func New[U Unit](info Info, unit U, params []*param.Parameter, dispatcher Dispatcher[U]) (*Wrapper[U], error) {
	if isNil(unit) {
		return nil, &ConfigError{Processor: info.label(), Err: ErrNilUnit}
	}

	registry, err := param.NewRegistry(params...)
	if err != nil {
		return nil, &ConfigError{Processor: info.label(), Err: err}
	}

	if table, ok := dispatcher.(*DispatchTable[U]); ok && table != nil {
		if err := table.validate(registry.Count()); err != nil {
			return nil, &ConfigError{Processor: info.label(), Err: err}
		}
	}

	return &Wrapper[U]{
		info:       info,
		unit:       unit,
		params:     registry,
		dispatcher: dispatcher,
	}, nil
}

// Info implements Processor.
func (w *Wrapper[U]) Info() Info {
	return w.info
}

// Unit returns the wrapped unit for inspection. Mutating it outside the
// dispatcher bypasses the parameter values.
func (w *Wrapper[U]) Unit() U {
	return w.unit
}

// Spec returns the spec of the last successful Prepare.
func (w *Wrapper[U]) Spec() ProcessSpec {
	return w.spec
}

// IsPrepared reports whether ProcessBlock may be called.
func (w *Wrapper[U]) IsPrepared() bool {
	return w.prepared
}

// OnDispatch installs a callback invoked before every dispatch in ProcessBlock.
func (w *Wrapper[U]) OnDispatch(fn func(index int, p *param.Parameter, value float64)) {
	w.onDispatch = fn
}

// Prepare implements Processor. Errors from the unit are returned unchanged.
func (w *Wrapper[U]) Prepare(sampleRate float64, maxBlockSize int) error {
	spec := ProcessSpec{
		SampleRate:       sampleRate,
		MaximumBlockSize: maxBlockSize,
		NumChannels:      MonoChannels,
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	w.prepared = false
	if err := w.unit.Prepare(spec); err != nil {
		return err
	}

	w.spec = spec
	w.prepared = true
	return nil
}

// Release implements Processor.
func (w *Wrapper[U]) Release() {
	if r, ok := any(w.unit).(Releaser); ok {
		r.Release()
	}
	w.prepared = false
}

// Reset implements Processor.
func (w *Wrapper[U]) Reset() {
	w.unit.Reset()
}

// ParameterCount implements Processor.
func (w *Wrapper[U]) ParameterCount() int {
	return w.params.Count()
}

// Parameter implements Processor.
func (w *Wrapper[U]) Parameter(index int) *param.Parameter {
	return w.params.GetByIndex(index)
}

// Parameters returns all parameters in index order.
func (w *Wrapper[U]) Parameters() []*param.Parameter {
	return w.params.All()
}

// ParameterIndex implements Processor.
func (w *Wrapper[U]) ParameterIndex(id string) int {
	return w.params.IndexOf(id)
}

// ParameterValue implements Processor.
func (w *Wrapper[U]) ParameterValue(index int) (float64, error) {
	p, err := w.param(index)
	if err != nil {
		return 0, err
	}
	return p.Value(), nil
}

// SetParameterValue implements Processor.
func (w *Wrapper[U]) SetParameterValue(index int, value float64) error {
	p, err := w.param(index)
	if err != nil {
		return err
	}
	if math.IsNaN(value) {
		return fmt.Errorf("%w: NaN for %s", ErrInvalidValue, p.ID)
	}
	p.SetValue(value)
	return nil
}

// SetParameterNormalized implements Processor.
func (w *Wrapper[U]) SetParameterNormalized(index int, normalized float64) error {
	p, err := w.param(index)
	if err != nil {
		return err
	}
	if math.IsNaN(normalized) {
		return fmt.Errorf("%w: NaN for %s", ErrInvalidValue, p.ID)
	}
	p.SetNormalized(normalized)
	return nil
}

// FormatParameter returns the display text of the current value at index.
func (w *Wrapper[U]) FormatParameter(index int) (string, error) {
	p, err := w.param(index)
	if err != nil {
		return "", err
	}
	return p.Format(p.Value()), nil
}

// ResetParameters restores every parameter to its default value.
func (w *Wrapper[U]) ResetParameters() {
	w.params.ResetAll()
}

// ProcessBlock implements Processor. Setter errors stop the call before the
// unit processes and are returned unchanged.
func (w *Wrapper[U]) ProcessBlock(block []float32) error {
	if !w.prepared {
		return ErrNotPrepared
	}
	if len(block) > w.spec.MaximumBlockSize {
		return fmt.Errorf("%w: %d > %d", ErrBlockTooLarge, len(block), w.spec.MaximumBlockSize)
	}

	if err := w.dispatchAll(); err != nil {
		return err
	}

	w.unit.Process(block)
	return nil
}

// LatencySamples implements Processor.
func (w *Wrapper[U]) LatencySamples() int {
	if l, ok := any(w.unit).(LatencyReporter); ok {
		return l.LatencySamples()
	}
	return 0
}

// TailSamples implements Processor.
func (w *Wrapper[U]) TailSamples() int {
	return 0
}

func (w *Wrapper[U]) dispatchAll() error {
	if w.dispatcher == nil && w.onDispatch == nil {
		return nil
	}

	for i := 0; i < w.params.Count(); i++ {
		p := w.params.GetByIndex(i)
		value := p.Value()

		if w.onDispatch != nil {
			w.onDispatch(i, p, value)
		}
		if w.dispatcher == nil {
			continue
		}
		if err := w.dispatcher.Dispatch(w.unit, i, value); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wrapper[U]) param(index int) (*param.Parameter, error) {
	p := w.params.GetByIndex(index)
	if p == nil {
		return nil, &IndexError{Index: index, Count: w.params.Count()}
	}
	return p, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
