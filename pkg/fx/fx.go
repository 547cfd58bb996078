// Package fx builds ready-to-prepare adapters for the delay line, panner and
// compressor units.
package fx

import (
	"fmt"
	"strings"

	"github.com/justyntemme/dspwrap/pkg/dsp/pan"
	"github.com/justyntemme/dspwrap/pkg/framework/debug"
	"github.com/justyntemme/dspwrap/pkg/framework/dsp"
	"github.com/justyntemme/dspwrap/pkg/framework/param"
	"github.com/justyntemme/dspwrap/pkg/framework/plugin"
)

// Parameter ids.
const (
	ParamDelayTime = "DELAYTIME"
	ParamPan       = "PAN"
	ParamThreshold = "THRESHOLD"
	ParamRatio     = "RATIO"
	ParamAttack    = "ATTACK"
	ParamRelease   = "RELEASE"
)

// DefaultMaxDelaySamples is one second at 44.1 kHz.
const DefaultMaxDelaySamples = 44100

// Vendor is reported in every adapter's Info.
const Vendor = "dspwrap"

// NewDelay builds a delay adapter holding up to maxDelaySamples of history.
// It exposes DELAYTIME in samples, from 10 up to maxDelaySamples, defaulting
// to half the capacity.
func NewDelay(maxDelaySamples int) (*plugin.Wrapper[*dsp.DelayLine], error) {
	unit, err := dsp.NewDelayLine(maxDelaySamples)
	if err != nil {
		return nil, &plugin.ConfigError{Processor: "Delay", Err: err}
	}

	capacity := float64(maxDelaySamples)
	params := []*param.Parameter{
		param.SamplesParameter(ParamDelayTime, "Delay", 10, capacity, capacity/2).Build(),
	}

	table := plugin.NewDispatchTable[*dsp.DelayLine]().
		On(0, "delay", (*dsp.DelayLine).SetDelay)

	return plugin.New(plugin.Info{
		ID:       "dspwrap.delay",
		Name:     "Delay",
		Version:  "1.0.0",
		Vendor:   Vendor,
		Category: "Fx|Delay",
	}, unit, params, table)
}

// NewPanner builds a panner adapter exposing PAN from -1 to 1.
func NewPanner(law pan.Law) (*plugin.Wrapper[*dsp.Panner], error) {
	params := []*param.Parameter{
		param.PanParameter(ParamPan, "Pan").Build(),
	}

	table := plugin.NewDispatchTable[*dsp.Panner]().
		On(0, "pan", (*dsp.Panner).SetPan)

	return plugin.New(plugin.Info{
		ID:       "dspwrap.panner",
		Name:     "Panner",
		Version:  "1.0.0",
		Vendor:   Vendor,
		Category: "Fx|Spatial",
	}, dsp.NewPanner(law), params, table)
}

// NewCompressor builds a compressor adapter exposing THRESHOLD, RATIO,
// ATTACK and RELEASE, dispatched in that order.
func NewCompressor() (*plugin.Wrapper[*dsp.Compressor], error) {
	unit, err := dsp.NewCompressor()
	if err != nil {
		return nil, &plugin.ConfigError{Processor: "Compressor", Err: err}
	}

	params := []*param.Parameter{
		param.ThresholdParameter(ParamThreshold, "Threshold", -60, 0, -12).Build(),
		param.RatioParameter(ParamRatio, "Ratio", 1, 16, 2).Build(),
		param.TimeParameter(ParamAttack, "Attack", 0.1, 100, 20).Build(),
		param.TimeParameter(ParamRelease, "Release", 0.1, 100, 20).Build(),
	}

	table := plugin.NewDispatchTable[*dsp.Compressor]().
		On(0, "threshold", (*dsp.Compressor).SetThreshold).
		On(1, "ratio", (*dsp.Compressor).SetRatio).
		On(2, "attack", (*dsp.Compressor).SetAttack).
		On(3, "release", (*dsp.Compressor).SetRelease)

	return plugin.New(plugin.Info{
		ID:       "dspwrap.compressor",
		Name:     "Compressor",
		Version:  "1.0.0",
		Vendor:   Vendor,
		Category: "Fx|Dynamics",
	}, unit, params, table)
}

// Kind names one of the unit kinds Build knows.
type Kind int

const (
	KindDelay Kind = iota
	KindPanner
	KindCompressor
)

// Kinds lists every kind.
var Kinds = []Kind{KindDelay, KindPanner, KindCompressor}

func (k Kind) String() string {
	switch k {
	case KindDelay:
		return "delay"
	case KindPanner:
		return "panner"
	case KindCompressor:
		return "compressor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a kind name as produced by String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delay":
		return KindDelay, nil
	case "panner", "pan":
		return KindPanner, nil
	case "compressor", "comp":
		return KindCompressor, nil
	default:
		return 0, fmt.Errorf("unknown processor kind %q", s)
	}
}

// Config carries the per-kind construction options for Build.
type Config struct {
	MaxDelaySamples int
	PanLaw          pan.Law
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		MaxDelaySamples: DefaultMaxDelaySamples,
		PanLaw:          pan.UnityCenter,
	}
}

// Build creates the adapter for kind.
func Build(kind Kind, cfg Config) (plugin.Processor, error) {
	var (
		p   plugin.Processor
		err error
	)
	switch kind {
	case KindDelay:
		p, err = NewDelay(cfg.MaxDelaySamples)
	case KindPanner:
		p, err = NewPanner(cfg.PanLaw)
	case KindCompressor:
		p, err = NewCompressor()
	default:
		return nil, fmt.Errorf("fx: unknown processor kind %d", int(kind))
	}
	if err != nil {
		return nil, err
	}

	debug.Debug("fx: built %s with %d parameters", p.Info(), p.ParameterCount())
	return p, nil
}
