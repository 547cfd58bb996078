package param

import (
	"fmt"
)

// Registry holds an ordered, fixed list of parameters.
// Index i refers to the same parameter for the registry's lifetime.
type Registry struct {
	params []*Parameter
	byID   map[string]int
}

// NewRegistry validates params and registers a copy of each, in order, set
// to its default. The registry never shares value storage with the caller.
// It fails on a nil parameter, an invalid descriptor or a repeated id.
func NewRegistry(params ...*Parameter) (*Registry, error) {
	r := &Registry{
		params: make([]*Parameter, 0, len(params)),
		byID:   make(map[string]int, len(params)),
	}

	for i, p := range params {
		if p == nil {
			return nil, fmt.Errorf("%w: parameter %d is nil", ErrInvalidParameter, i)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if prev, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %q at index %d and %d", ErrDuplicateParameter, p.ID, prev, i)
		}
		r.byID[p.ID] = i
		r.params = append(r.params, p.Clone())
	}

	return r, nil
}

// Get retrieves a parameter by ID
func (r *Registry) Get(id string) *Parameter {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return r.params[i]
}

// IndexOf returns the index of id, or -1.
func (r *Registry) IndexOf(id string) int {
	i, ok := r.byID[id]
	if !ok {
		return -1
	}
	return i
}

// GetByIndex retrieves a parameter by index, or nil when out of range.
func (r *Registry) GetByIndex(index int) *Parameter {
	if index < 0 || index >= len(r.params) {
		return nil
	}
	return r.params[index]
}

// Count returns the number of parameters
func (r *Registry) Count() int {
	return len(r.params)
}

// All returns all parameters in order
func (r *Registry) All() []*Parameter {
	result := make([]*Parameter, len(r.params))
	copy(result, r.params)
	return result
}

// ResetAll restores every parameter to its default value.
func (r *Registry) ResetAll() {
	for _, p := range r.params {
		p.ResetToDefault()
	}
}
