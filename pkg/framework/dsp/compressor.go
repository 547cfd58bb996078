package dsp

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/effects/dynamics"

	"github.com/justyntemme/dspwrap/pkg/framework/plugin"
)

// Accepted windows of the underlying compressor.
const (
	minCompressorRatio     = 1.0
	maxCompressorRatio     = 100.0
	minCompressorAttackMs  = 0.1
	maxCompressorAttackMs  = 1000.0
	minCompressorReleaseMs = 1.0
	maxCompressorReleaseMs = 5000.0

	// Rate used until the first Prepare.
	initialSampleRate = 44100.0
)

// Compressor is a mono feed-forward soft-knee compressor with no makeup gain.
type Compressor struct {
	comp *dynamics.Compressor
	buf  []float64
}

// NewCompressor creates a compressor with the primitive's default settings
// and automatic makeup gain disabled.
func NewCompressor() (*Compressor, error) {
	comp, err := dynamics.NewCompressor(initialSampleRate)
	if err != nil {
		return nil, fmt.Errorf("dsp: compressor: %w", err)
	}
	if err := comp.SetAutoMakeup(false); err != nil {
		return nil, fmt.Errorf("dsp: compressor: %w", err)
	}
	return &Compressor{comp: comp}, nil
}

// SetThreshold sets the threshold in dB.
func (c *Compressor) SetThreshold(dB float64) error {
	if err := c.comp.SetThreshold(dB); err != nil {
		return fmt.Errorf("dsp: compressor threshold: %w", err)
	}
	return nil
}

// SetRatio sets the compression ratio, clamped to [1, 100].
func (c *Compressor) SetRatio(ratio float64) error {
	if err := c.comp.SetRatio(core.Clamp(ratio, minCompressorRatio, maxCompressorRatio)); err != nil {
		return fmt.Errorf("dsp: compressor ratio: %w", err)
	}
	return nil
}

// SetAttack sets the attack time in ms, clamped to [0.1, 1000].
func (c *Compressor) SetAttack(ms float64) error {
	if err := c.comp.SetAttack(core.Clamp(ms, minCompressorAttackMs, maxCompressorAttackMs)); err != nil {
		return fmt.Errorf("dsp: compressor attack: %w", err)
	}
	return nil
}

// SetRelease sets the release time in ms, clamped to [1, 5000].
func (c *Compressor) SetRelease(ms float64) error {
	if err := c.comp.SetRelease(core.Clamp(ms, minCompressorReleaseMs, maxCompressorReleaseMs)); err != nil {
		return fmt.Errorf("dsp: compressor release: %w", err)
	}
	return nil
}

// Threshold returns the threshold in dB.
func (c *Compressor) Threshold() float64 { return c.comp.Threshold() }

// Ratio returns the compression ratio.
func (c *Compressor) Ratio() float64 { return c.comp.Ratio() }

// AttackMs returns the attack time in ms.
func (c *Compressor) AttackMs() float64 { return c.comp.Attack() }

// ReleaseMs returns the release time in ms.
func (c *Compressor) ReleaseMs() float64 { return c.comp.Release() }

// GainReduction returns the smallest linear gain applied since the last
// Reset; 1 means no reduction.
func (c *Compressor) GainReduction() float64 {
	return c.comp.GetMetrics().GainReduction
}

// Prepare implements plugin.Unit. Settings made before Prepare are kept.
func (c *Compressor) Prepare(spec plugin.ProcessSpec) error {
	if err := c.comp.SetSampleRate(spec.SampleRate); err != nil {
		return fmt.Errorf("dsp: compressor: %w", err)
	}
	c.buf = make([]float64, 0, spec.MaximumBlockSize)
	c.comp.Reset()
	return nil
}

// Process implements plugin.Unit.
func (c *Compressor) Process(block []float32) {
	c.buf = Widen(c.buf, block)
	c.comp.ProcessInPlace(c.buf)
	Narrow(block, c.buf)
}

// Reset clears the envelope follower.
func (c *Compressor) Reset() {
	c.comp.Reset()
}
