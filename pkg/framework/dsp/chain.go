// Package dsp provides the processing units driven by plugin adapters and a
// serial chain for running several adapters over one buffer.
package dsp

import (
	"errors"
	"fmt"
)

// BlockProcessor is anything that transforms a block in place and may fail.
// Adapters built with plugin.New satisfy it.
type BlockProcessor interface {
	// ProcessBlock processes audio in-place
	ProcessBlock(block []float32) error

	// Reset resets the processor state
	Reset()
}

// BlockFunc allows using a function as a BlockProcessor.
type BlockFunc func([]float32) error

func (f BlockFunc) ProcessBlock(block []float32) error {
	return f(block)
}

func (f BlockFunc) Reset() {
	// No-op for function processors
}

// Chain represents a serial chain of block processors.
type Chain struct {
	stages []namedProcessor
	name   string
	bypass bool
}

// NewChain creates a new chain.
func NewChain(name string) *Chain {
	return &Chain{
		name:   name,
		stages: make([]namedProcessor, 0),
	}
}

// Name returns the chain name.
func (c *Chain) Name() string {
	return c.name
}

// Add appends a processor under name.
func (c *Chain) Add(name string, processor BlockProcessor) *Chain {
	c.stages = append(c.stages, namedProcessor{name: name, proc: processor})
	return c
}

// AddFunc appends a processing function under name.
func (c *Chain) AddFunc(name string, process func([]float32) error) *Chain {
	return c.Add(name, BlockFunc(process))
}

// ProcessBlock runs block through every stage in order. The first failing
// stage stops the chain; its error is wrapped with the stage name.
func (c *Chain) ProcessBlock(block []float32) error {
	if c.bypass {
		return nil
	}

	for _, s := range c.stages {
		if err := s.proc.ProcessBlock(block); err != nil {
			return &StageError{Chain: c.name, Stage: s.name, Err: err}
		}
	}
	return nil
}

// Reset resets all processors in the chain.
func (c *Chain) Reset() {
	for _, s := range c.stages {
		s.proc.Reset()
	}
}

// SetBypass sets the bypass state of the chain.
func (c *Chain) SetBypass(bypass bool) {
	c.bypass = bypass
}

// IsBypassed reports the bypass state.
func (c *Chain) IsBypassed() bool {
	return c.bypass
}

// IsEmpty returns true if the chain has no processors.
func (c *Chain) IsEmpty() bool {
	return len(c.stages) == 0
}

// Count returns the number of processors in the chain.
func (c *Chain) Count() int {
	return len(c.stages)
}

// Names returns the stage names in processing order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.name
	}
	return names
}

// namedProcessor wraps a processor with a name for error reports.
type namedProcessor struct {
	name string
	proc BlockProcessor
}

// StageError identifies the chain stage that failed.
type StageError struct {
	Chain string
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("chain %q: stage %q: %v", e.Chain, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Builder provides a fluent API for building chains.
type Builder struct {
	chain  *Chain
	errors []error
}

// NewBuilder creates a new chain builder.
func NewBuilder(name string) *Builder {
	return &Builder{
		chain:  NewChain(name),
		errors: make([]error, 0),
	}
}

// WithProcessor adds a processor to the chain.
func (b *Builder) WithProcessor(name string, processor BlockProcessor) *Builder {
	if processor == nil {
		b.errors = append(b.errors, fmt.Errorf("processor %q cannot be nil", name))
		return b
	}
	b.chain.Add(name, processor)
	return b
}

// WithFunc adds a processing function to the chain.
func (b *Builder) WithFunc(name string, process func([]float32) error) *Builder {
	if process == nil {
		b.errors = append(b.errors, fmt.Errorf("process function %q cannot be nil", name))
		return b
	}
	b.chain.AddFunc(name, process)
	return b
}

// Build builds the chain and returns any errors.
func (b *Builder) Build() (*Chain, error) {
	if len(b.errors) > 0 {
		return nil, fmt.Errorf("chain build errors: %w", errors.Join(b.errors...))
	}
	if b.chain.IsEmpty() {
		return nil, fmt.Errorf("chain is empty")
	}
	return b.chain, nil
}
