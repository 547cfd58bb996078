package dsp

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dsp/dsp/core"

	"github.com/justyntemme/dspwrap/pkg/dsp/pan"
	"github.com/justyntemme/dspwrap/pkg/framework/param"
	"github.com/justyntemme/dspwrap/pkg/framework/plugin"
)

// DefaultPanRampMs is the time a pan change takes to settle.
const DefaultPanRampMs = 20.0

// Panner places a mono signal in the stereo field. The processed block
// holds the left channel; the right channel of the most recent block is
// available from Right.
type Panner struct {
	law      pan.Law
	rampMs   float64
	smoother *param.Smoother
	prepared bool

	in       []float64
	position []float64
	gainL    []float64
	gainR    []float64
	outL     []float64
	outR     []float64
	right    []float32
}

// NewPanner creates a centered panner using law.
func NewPanner(law pan.Law) *Panner {
	p := &Panner{
		law:      law,
		rampMs:   DefaultPanRampMs,
		smoother: param.NewSmoother(0),
	}
	p.smoother.Reset(0)
	return p
}

// Law returns the pan law in use.
func (p *Panner) Law() pan.Law {
	return p.law
}

// Pan returns the position the panner is moving towards.
func (p *Panner) Pan() float64 {
	return p.smoother.Target()
}

// SetPan sets the position, -1 hard left to 1 hard right. Before Prepare the
// position is applied immediately, afterwards it ramps.
func (p *Panner) SetPan(position float64) error {
	if math.IsNaN(position) {
		return fmt.Errorf("dsp: pan position must be a number")
	}
	position = core.Clamp(position, -1, 1)
	if !p.prepared {
		p.smoother.Reset(position)
		return nil
	}
	p.smoother.SetTarget(position)
	return nil
}

// SetRampTime changes how long a pan change takes to settle.
func (p *Panner) SetRampTime(ms float64) {
	p.rampMs = ms
}

// Prepare implements plugin.Unit.
func (p *Panner) Prepare(spec plugin.ProcessSpec) error {
	n := spec.MaximumBlockSize
	p.in = make([]float64, n)
	p.position = make([]float64, n)
	p.gainL = make([]float64, n)
	p.gainR = make([]float64, n)
	p.outL = make([]float64, n)
	p.outR = make([]float64, n)
	p.right = make([]float32, 0, n)

	p.smoother.SetRampTime(spec.SampleRate, p.rampMs)
	p.prepared = true
	return nil
}

// Process implements plugin.Unit.
func (p *Panner) Process(block []float32) {
	n := len(block)
	if !p.prepared || n > cap(p.in) {
		return
	}

	in := Widen(p.in, block)
	position := p.position[:n]
	gainL, gainR := p.gainL[:n], p.gainR[:n]
	outL, outR := p.outL[:n], p.outR[:n]

	p.smoother.Fill(position)
	for i, pos := range position {
		gainL[i], gainR[i] = pan.MonoToStereo(pos, p.law)
	}

	vecmath.MulBlock(outL, in, gainL)
	vecmath.MulBlock(outR, in, gainR)

	Narrow(block, outL)
	p.right = p.right[:n]
	Narrow(p.right, outR)
}

// Right returns the right channel of the last processed block. The slice is
// reused by the next Process call.
func (p *Panner) Right() []float32 {
	return p.right
}

// Reset jumps to the target position and clears the right channel.
func (p *Panner) Reset() {
	p.smoother.Reset(p.smoother.Target())
	for i := range p.right {
		p.right[i] = 0
	}
}

// Release drops the block buffers.
func (p *Panner) Release() {
	p.in, p.position, p.gainL, p.gainR, p.outL, p.outR, p.right = nil, nil, nil, nil, nil, nil, nil
	p.prepared = false
}
