package dsp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/delay"

	"github.com/justyntemme/dspwrap/pkg/framework/plugin"
)

// The Hermite read needs one sample behind and two ahead of the read
// position, and a zero-sample delay reads the sample just written.
const delayHeadroom = 4

// DelayLine is a mono fractional delay. Its output is the input delayed by
// the current delay time, with no dry signal mixed in.
type DelayLine struct {
	maxDelay int
	delay    float64
	line     *delay.Line
}

// NewDelayLine creates a delay line able to hold maxDelaySamples of history.
func NewDelayLine(maxDelaySamples int) (*DelayLine, error) {
	if maxDelaySamples <= 0 {
		return nil, fmt.Errorf("dsp: delay line capacity must be positive: %d", maxDelaySamples)
	}
	return &DelayLine{maxDelay: maxDelaySamples}, nil
}

// MaxDelay returns the capacity in samples.
func (d *DelayLine) MaxDelay() int {
	return d.maxDelay
}

// Delay returns the current delay in samples.
func (d *DelayLine) Delay() float64 {
	return d.delay
}

// SetDelay sets the delay time in samples, clamped to [0, MaxDelay].
func (d *DelayLine) SetDelay(samples float64) error {
	if math.IsNaN(samples) {
		return fmt.Errorf("dsp: delay time must be a number")
	}
	d.delay = core.Clamp(samples, 0, float64(d.maxDelay))
	return nil
}

// Prepare allocates the delay buffer. The buffer size depends only on the
// capacity, so repeated calls keep existing history.
func (d *DelayLine) Prepare(spec plugin.ProcessSpec) error {
	if d.line != nil {
		return nil
	}
	line, err := delay.New(d.maxDelay + delayHeadroom)
	if err != nil {
		return fmt.Errorf("dsp: delay line: %w", err)
	}
	d.line = line
	return nil
}

// Process implements plugin.Unit.
func (d *DelayLine) Process(block []float32) {
	if d.line == nil {
		return
	}
	pos := d.delay + 1
	for i, x := range block {
		d.line.Write(float64(x))
		block[i] = float32(d.line.ReadFractional(pos))
	}
}

// Reset clears the delay history.
func (d *DelayLine) Reset() {
	if d.line != nil {
		d.line.Reset()
	}
}

// Release drops the delay buffer.
func (d *DelayLine) Release() {
	d.line = nil
}
