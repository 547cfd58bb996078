package param

import (
	"math"
)

// Smoother ramps a control value linearly towards its target so gain changes
// do not produce zipper noise. A ramp of zero samples jumps on the next
// sample.
type Smoother struct {
	current float64
	target  float64
	step    float64
	samples float64
	active  bool
}

// Targets closer than this to the current target are ignored.
const smoothThreshold = 1e-6

// NewSmoother creates a smoother that reaches each new target in
// rampSamples samples.
func NewSmoother(rampSamples float64) *Smoother {
	return &Smoother{samples: rampSamples}
}

// SetTarget starts a ramp from the current value to target.
func (s *Smoother) SetTarget(target float64) {
	if math.Abs(target-s.target) < smoothThreshold {
		return
	}
	s.target = target
	s.active = true

	delta := target - s.current
	if s.samples >= 1 {
		s.step = delta / s.samples
	} else {
		s.step = delta
	}
}

// Next advances the ramp by one sample and returns the value.
func (s *Smoother) Next() float64 {
	if !s.active {
		return s.current
	}
	s.current += s.step
	if (s.step >= 0 && s.current >= s.target) || (s.step < 0 && s.current <= s.target) {
		s.current = s.target
		s.active = false
	}
	return s.current
}

// Fill writes the next len(dst) values into dst.
func (s *Smoother) Fill(dst []float64) {
	if !s.active {
		for i := range dst {
			dst[i] = s.current
		}
		return
	}
	for i := range dst {
		dst[i] = s.Next()
	}
}

// IsSmoothing reports whether a ramp is in progress.
func (s *Smoother) IsSmoothing() bool { return s.active }

// Current returns the last value produced.
func (s *Smoother) Current() float64 { return s.current }

// Target returns the value being approached.
func (s *Smoother) Target() float64 { return s.target }

// Reset jumps to value without ramping.
func (s *Smoother) Reset(value float64) {
	s.current, s.target = value, value
	s.step = 0
	s.active = false
}

// SetRampTime sets the ramp length from a duration at sampleRate. It applies
// to the next SetTarget.
func (s *Smoother) SetRampTime(sampleRate, timeMs float64) {
	s.samples = math.Max(0, sampleRate*timeMs/1000)
}
