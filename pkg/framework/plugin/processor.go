// Package plugin adapts processing units to an indexed parameter surface.
//
// A Wrapper owns one unit, an ordered list of parameters and a dispatcher.
// Hosts only ever talk to the Processor surface: prepare, read and write
// parameters by index, process blocks.
package plugin

import (
	"github.com/justyntemme/dspwrap/pkg/framework/param"
)

// Processor is the host-facing surface shared by every adapter regardless of
// the unit it wraps.
type Processor interface {
	// Info returns processor metadata
	Info() Info

	// Prepare must be called before the first ProcessBlock and again
	// whenever the sample rate or maximum block size changes.
	Prepare(sampleRate float64, maxBlockSize int) error

	// Release drops unit resources; Prepare must be called again afterwards.
	Release()

	// Reset clears unit state without touching parameter values.
	Reset()

	// ParameterCount returns the fixed number of parameters
	ParameterCount() int

	// Parameter returns the parameter at index, or nil when out of range.
	Parameter(index int) *param.Parameter

	// ParameterIndex returns the index of id, or -1.
	ParameterIndex(id string) int

	// ParameterValue returns the current plain value at index.
	ParameterValue(index int) (float64, error)

	// SetParameterValue stores value clamped to the parameter's range.
	SetParameterValue(index int, value float64) error

	// SetParameterNormalized stores a 0-1 position mapped onto the range.
	SetParameterNormalized(index int, normalized float64) error

	// ProcessBlock applies every parameter to the unit in index order, then
	// lets the unit transform block in place.
	ProcessBlock(block []float32) error

	// LatencySamples returns the processing latency in samples
	LatencySamples() int

	// TailSamples returns the tail length in samples
	TailSamples() int
}
