package param

import (
	"fmt"
	"strings"
)

// Common parameter helpers

// TimeParameter creates a time parameter in milliseconds
func TimeParameter(id, name string, minMs, maxMs, defaultMs float64) *Builder {
	return New(id, name).
		Range(minMs, maxMs).
		Default(defaultMs).
		Unit("ms").
		Formatter(TimeFormatter, TimeParser)
}

// SamplesParameter creates a time parameter expressed in samples
func SamplesParameter(id, name string, minSamples, maxSamples, defaultSamples float64) *Builder {
	return New(id, name).
		Range(minSamples, maxSamples).
		Default(defaultSamples).
		Unit("smp").
		Formatter(func(v float64) string {
			return fmt.Sprintf("%.0f smp", v)
		}, func(s string) (float64, error) {
			s = strings.TrimSpace(strings.ToLower(s))
			s = strings.TrimSuffix(s, "samples")
			s = strings.TrimSuffix(s, "smp")
			return parseFloat(strings.TrimSpace(s))
		})
}

// ThresholdParameter creates a threshold parameter (typically for dynamics)
func ThresholdParameter(id, name string, minDB, maxDB, defaultDB float64) *Builder {
	return New(id, name).
		Range(minDB, maxDB).
		Default(defaultDB).
		Unit("dB").
		Formatter(DecibelFormatter, DecibelParser)
}

// RatioParameter creates a compression/expansion ratio parameter
func RatioParameter(id, name string, minRatio, maxRatio, defaultRatio float64) *Builder {
	return New(id, name).
		Range(minRatio, maxRatio).
		Default(defaultRatio).
		Formatter(RatioFormatter, RatioParser)
}

// PanParameter creates a pan position parameter in [-1, 1]
func PanParameter(id, name string) *Builder {
	return New(id, name).
		Range(-1, 1).
		Default(0).
		Formatter(PanFormatter, PanParser)
}
