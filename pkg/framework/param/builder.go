package param

// Builder provides a fluent API for creating parameters
type Builder struct {
	param *Parameter
}

// New creates a new parameter builder
func New(id, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:        id,
			Name:      name,
			ShortName: name,
			Min:       0,
			Max:       1,
		},
	}
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Range sets the min and max values
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Default sets the default value in plain units.
// It is not clamped here; out-of-range defaults are rejected at registration.
func (b *Builder) Default(value float64) *Builder {
	b.param.DefaultValue = value
	return b
}

// Unit sets the unit string
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Formatter sets custom value formatting and parsing
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter holding its default value.
func (b *Builder) Build() *Parameter {
	b.param.ResetToDefault()
	return b.param
}

// Descriptor is the plain-data form of a parameter declaration.
type Descriptor struct {
	ID      string
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// Build turns the descriptor into a parameter holding its default value.
func (d Descriptor) Build() *Parameter {
	return New(d.ID, d.Name).Range(d.Min, d.Max).Default(d.Default).Build()
}

// FromDescriptors builds one parameter per descriptor, in order.
func FromDescriptors(descs ...Descriptor) []*Parameter {
	params := make([]*Parameter, len(descs))
	for i, d := range descs {
		params[i] = d.Build()
	}
	return params
}
