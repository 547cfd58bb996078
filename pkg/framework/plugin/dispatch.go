package plugin

import (
	"fmt"
	"sort"
)

// Dispatcher turns the current value of parameter index into a mutation of u.
type Dispatcher[U Unit] interface {
	Dispatch(u U, index int, value float64) error
}

// DispatchFunc adapts a plain function to a Dispatcher.
type DispatchFunc[U Unit] func(u U, index int, value float64) error

// Dispatch implements Dispatcher.
func (f DispatchFunc[U]) Dispatch(u U, index int, value float64) error {
	return f(u, index, value)
}

// Setter applies one parameter value to a unit.
type Setter[U Unit] func(u U, value float64) error

// DispatchEntry binds a parameter index to a named setter.
type DispatchEntry[U Unit] struct {
	Index  int
	Name   string
	Setter Setter[U]
}

// DispatchTable maps parameter indices to setters. Indices without an entry
// dispatch to nothing.
type DispatchTable[U Unit] struct {
	entries []DispatchEntry[U]
	byIndex map[int]Setter[U]
	err     error
}

// NewDispatchTable creates an empty table.
func NewDispatchTable[U Unit]() *DispatchTable[U] {
	return &DispatchTable[U]{byIndex: make(map[int]Setter[U])}
}

// On registers setter for index. Registering the same index twice or a nil
// setter is recorded and reported when the table is attached to an adapter.
func (t *DispatchTable[U]) On(index int, name string, setter Setter[U]) *DispatchTable[U] {
	if t.err != nil {
		return t
	}
	if setter == nil {
		t.err = fmt.Errorf("%w: nil setter for %q at index %d", ErrDispatchIndex, name, index)
		return t
	}
	if _, exists := t.byIndex[index]; exists {
		t.err = fmt.Errorf("%w: index %d bound twice (%q)", ErrDispatchIndex, index, name)
		return t
	}
	t.byIndex[index] = setter
	t.entries = append(t.entries, DispatchEntry[U]{Index: index, Name: name, Setter: setter})
	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].Index < t.entries[j].Index })
	return t
}

// Entries returns the table in ascending index order.
func (t *DispatchTable[U]) Entries() []DispatchEntry[U] {
	out := make([]DispatchEntry[U], len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of bound indices.
func (t *DispatchTable[U]) Len() int {
	return len(t.entries)
}

// Dispatch implements Dispatcher.
func (t *DispatchTable[U]) Dispatch(u U, index int, value float64) error {
	setter, ok := t.byIndex[index]
	if !ok {
		return nil
	}
	return setter(u, value)
}

// validate checks the table against a parameter count.
func (t *DispatchTable[U]) validate(count int) error {
	if t.err != nil {
		return t.err
	}
	for _, e := range t.entries {
		if e.Index < 0 || e.Index >= count {
			return fmt.Errorf("%w: %q at index %d (have %d parameters)", ErrDispatchIndex, e.Name, e.Index, count)
		}
	}
	return nil
}
