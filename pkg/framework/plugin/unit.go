package plugin

import (
	"fmt"
	"math"
)

// MonoChannels is the only channel layout adapters prepare their units for.
const MonoChannels = 1

// ProcessSpec is handed to a unit when it is prepared.
type ProcessSpec struct {
	SampleRate       float64
	MaximumBlockSize int
	NumChannels      int
}

// Validate checks that the spec can be used to prepare a unit.
func (s ProcessSpec) Validate() error {
	if s.SampleRate <= 0 || math.IsNaN(s.SampleRate) || math.IsInf(s.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be positive and finite: %g", ErrInvalidSpec, s.SampleRate)
	}
	if s.MaximumBlockSize <= 0 {
		return fmt.Errorf("%w: maximum block size must be positive: %d", ErrInvalidSpec, s.MaximumBlockSize)
	}
	if s.NumChannels != MonoChannels {
		return fmt.Errorf("%w: only mono is supported, got %d channels", ErrInvalidSpec, s.NumChannels)
	}
	return nil
}

// Unit is the processing primitive an adapter drives. Units know nothing
// about parameters; their setters are only reached through a Dispatcher.
type Unit interface {
	// Prepare allocates state for the given spec. It may be called again
	// when the sample rate or maximum block size changes.
	Prepare(spec ProcessSpec) error

	// Process transforms block in place. len(block) never exceeds the
	// prepared maximum block size.
	Process(block []float32)

	// Reset clears internal state such as delay buffers and envelopes.
	Reset()
}

// Releaser is implemented by units holding resources that can be dropped
// between processing sessions.
type Releaser interface {
	Release()
}

// LatencyReporter is implemented by units that delay their output.
type LatencyReporter interface {
	LatencySamples() int
}
