// Package pan provides stereo panning laws.
package pan

import (
	"fmt"
	"math"
	"strings"
)

// Law represents different panning laws
type Law int

const (
	// UnityCenter keeps both channels at unity in the center and attenuates
	// the opposite side linearly.
	UnityCenter Law = iota
	// Linear uses linear panning (constant power not maintained)
	Linear
	// ConstantPower uses sine/cosine panning (maintains constant power)
	ConstantPower
	// Balanced uses -4.5dB center compensation
	Balanced
)

// String returns the law name.
func (l Law) String() string {
	switch l {
	case UnityCenter:
		return "unity"
	case Linear:
		return "linear"
	case ConstantPower:
		return "constant-power"
	case Balanced:
		return "balanced"
	default:
		return fmt.Sprintf("Law(%d)", int(l))
	}
}

// ParseLaw parses a law name as produced by String.
func ParseLaw(s string) (Law, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unity", "":
		return UnityCenter, nil
	case "linear":
		return Linear, nil
	case "constant-power", "sin3db":
		return ConstantPower, nil
	case "balanced", "sin4.5db":
		return Balanced, nil
	default:
		return UnityCenter, fmt.Errorf("unknown pan law %q", s)
	}
}

// MonoToStereo returns left and right gains for a mono source.
// pan: -1.0 = hard left, 0.0 = center, 1.0 = hard right. Values outside
// [-1, 1] are clamped.
func MonoToStereo(pan float64, law Law) (left, right float64) {
	if pan < -1 {
		pan = -1
	} else if pan > 1 {
		pan = 1
	}

	switch law {
	case UnityCenter:
		return unityCenterPan(pan)
	case Linear:
		return linearPan(pan)
	case ConstantPower:
		return constantPowerPan(pan)
	case Balanced:
		return balancedPan(pan)
	default:
		return constantPowerPan(pan)
	}
}

func unityCenterPan(pan float64) (left, right float64) {
	normalized := (pan + 1) * 0.5
	left = math.Min(0.5, 1-normalized) * 2
	right = math.Min(0.5, normalized) * 2
	return
}

// linearPan implements simple linear panning.
func linearPan(pan float64) (left, right float64) {
	left = (1.0 - pan) * 0.5
	right = (1.0 + pan) * 0.5
	return
}

// constantPowerPan implements equal power panning using sine/cosine.
func constantPowerPan(pan float64) (left, right float64) {
	// Map pan from [-1, 1] to [0, pi/2]
	angle := (pan + 1.0) * math.Pi / 4.0
	left = math.Cos(angle)
	right = math.Sin(angle)
	return
}

// balancedPan implements panning with -4.5dB center compensation.
func balancedPan(pan float64) (left, right float64) {
	left, right = constantPowerPan(pan)

	// Constant power sits at -3dB in the center; pull it down to -4.5dB and
	// fade the compensation out towards the edges.
	const centerComp = 0.595 / 0.707
	compensation := centerComp + (1-centerComp)*pan*pan

	left *= compensation
	right *= compensation
	return
}
