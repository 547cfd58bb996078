package debug

import (
	"errors"
	"fmt"
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dsp/dsp/window"
)

// ErrShortSignal is returned when a signal is too short to analyze.
var ErrShortSignal = errors.New("signal too short for spectral analysis")

// Peak is the strongest bin of a magnitude spectrum.
type Peak struct {
	Frequency float64
	Magnitude float64
	Bin       int
}

// SpectralPeak finds the dominant frequency in signal. The signal is
// truncated to the largest power of two that fits, Hann windowed and
// transformed. The DC bin is ignored.
func SpectralPeak(signal []float32, sampleRate float64) (Peak, error) {
	if len(signal) < 4 {
		return Peak{}, ErrShortSignal
	}
	if sampleRate <= 0 {
		return Peak{}, fmt.Errorf("spectral peak: sample rate must be positive: %g", sampleRate)
	}

	n := 1 << (bits.Len(uint(len(signal))) - 1)

	frame := make([]float64, n)
	for i := range frame {
		frame[i] = float64(signal[i])
	}
	window.Apply(window.TypeHann, frame)

	in := make([]complex128, n)
	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Peak{}, fmt.Errorf("spectral peak: %w", err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Peak{}, fmt.Errorf("spectral peak: %w", err)
	}

	half := n/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	peak := Peak{Bin: 1, Magnitude: mag[1]}
	for k := 2; k < half; k++ {
		if mag[k] > peak.Magnitude {
			peak.Bin = k
			peak.Magnitude = mag[k]
		}
	}
	peak.Frequency = float64(peak.Bin) * sampleRate / float64(n)

	return peak, nil
}
