package debug

import (
	"fmt"
	"math"
)

// AudioAnalyzer computes level statistics for blocks of samples.
type AudioAnalyzer struct {
	clippingThreshold float32
	dcThreshold       float32
	silenceThreshold  float32
}

// NewAudioAnalyzer creates a new audio analyzer with default settings.
func NewAudioAnalyzer() *AudioAnalyzer {
	return &AudioAnalyzer{
		clippingThreshold: 0.99,
		dcThreshold:       0.01,
		silenceThreshold:  0.0001,
	}
}

// SetSilenceThreshold sets the RMS level below which a block counts as silent.
func (a *AudioAnalyzer) SetSilenceThreshold(rms float32) {
	a.silenceThreshold = rms
}

// AnalysisResult contains the results of audio buffer analysis.
type AnalysisResult struct {
	Samples        int
	Peak           float32
	RMS            float32
	DC             float32
	Clipping       bool
	ClippedSamples int
	Silent         bool
	HasNaN         bool
	NaNCount       int
	HasInf         bool
	ZeroCrossings  int
}

// PeakDB returns the peak level in dBFS, or -Inf for silence.
func (r AnalysisResult) PeakDB() float64 {
	if r.Peak == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(r.Peak))
}

// Analyze computes statistics over buffer. NaN samples are counted and
// otherwise skipped.
func (a *AudioAnalyzer) Analyze(buffer []float32) AnalysisResult {
	result := AnalysisResult{Samples: len(buffer)}

	if len(buffer) == 0 {
		return result
	}

	var sum, sumSquares float64
	var lastSample float32
	valid := 0

	for _, sample := range buffer {
		s := float64(sample)
		if math.IsNaN(s) {
			result.HasNaN = true
			result.NaNCount++
			continue
		}
		if math.IsInf(s, 0) {
			result.HasInf = true
		}

		absSample := sample
		if absSample < 0 {
			absSample = -absSample
		}
		if absSample > result.Peak {
			result.Peak = absSample
		}
		if absSample >= a.clippingThreshold {
			result.Clipping = true
			result.ClippedSamples++
		}

		sum += s
		sumSquares += s * s

		if valid > 0 && (lastSample < 0) != (sample < 0) {
			result.ZeroCrossings++
		}
		lastSample = sample
		valid++
	}

	if valid > 0 {
		result.RMS = float32(math.Sqrt(sumSquares / float64(valid)))
		result.DC = float32(sum / float64(valid))
	}
	result.Silent = result.RMS < a.silenceThreshold

	return result
}

// Check returns a description of every problem found in buffer.
func (a *AudioAnalyzer) Check(buffer []float32, name string) []string {
	var issues []string

	result := a.Analyze(buffer)

	if result.HasNaN {
		issues = append(issues, fmt.Sprintf("%s: contains %d NaN values", name, result.NaNCount))
	}
	if result.HasInf {
		issues = append(issues, fmt.Sprintf("%s: contains infinite values", name))
	}
	if result.Clipping {
		issues = append(issues, fmt.Sprintf("%s: clipping detected (%d samples)", name, result.ClippedSamples))
	}
	if math.Abs(float64(result.DC)) > float64(a.dcThreshold) {
		issues = append(issues, fmt.Sprintf("%s: DC offset detected (%.3f)", name, result.DC))
	}
	if result.Peak > 1.0 {
		issues = append(issues, fmt.Sprintf("%s: peak exceeds 1.0 (%.3f)", name, result.Peak))
	}

	return issues
}

// CompareBuffers compares two audio buffers and reports differences.
// It returns an empty string when they match within tolerance.
func CompareBuffers(a, b []float32, tolerance float32) string {
	if len(a) != len(b) {
		return fmt.Sprintf("buffer length mismatch: %d vs %d", len(a), len(b))
	}

	var maxDiff float32
	var maxDiffIndex int
	var diffCount int

	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			diffCount++
			if diff > maxDiff {
				maxDiff = diff
				maxDiffIndex = i
			}
		}
	}

	if diffCount == 0 {
		return ""
	}

	return fmt.Sprintf("%d / %d samples differ, max %.6f at sample %d (tolerance %.6f)",
		diffCount, len(a), maxDiff, maxDiffIndex, tolerance)
}

var defaultAnalyzer = NewAudioAnalyzer()

// AnalyzeBuffer performs analysis on a buffer using the default analyzer.
func AnalyzeBuffer(buffer []float32) AnalysisResult {
	return defaultAnalyzer.Analyze(buffer)
}

// CheckAudioBuffer logs every problem found in buffer as a warning.
func CheckAudioBuffer(buffer []float32, name string) {
	for _, issue := range defaultAnalyzer.Check(buffer, name) {
		Warn("%s", issue)
	}
}

// LogBufferStats logs statistics about an audio buffer.
func LogBufferStats(buffer []float32, name string) {
	result := defaultAnalyzer.Analyze(buffer)

	Info("%s: %d samples, peak %.3f (%.1f dBFS), rms %.3f, dc %.6f",
		name, result.Samples, result.Peak, result.PeakDB(), result.RMS, result.DC)

	if result.Clipping {
		Warn("%s: clipping in %d samples", name, result.ClippedSamples)
	}
	if result.Silent {
		Info("%s: silent", name)
	}
	if result.HasNaN {
		Error("%s: %d NaN values", name, result.NaNCount)
	}
}
