package debug

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Profiler collects timing statistics for named sections.
type Profiler struct {
	mu           sync.RWMutex
	measurements map[string]*Measurement
	enabled      atomic.Bool
	maxSamples   int
}

// Measurement holds timing statistics for a profiled section.
type Measurement struct {
	Name      string
	Count     uint64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
	LastTime  time.Duration

	samples     []time.Duration
	sampleIndex int
}

// DefaultProfiler is the global profiler instance.
var DefaultProfiler = NewProfiler(1000)

// NewProfiler creates a profiler keeping the last maxSamples timings of
// each section for percentiles.
func NewProfiler(maxSamples int) *Profiler {
	if maxSamples < 1 {
		maxSamples = 1
	}
	p := &Profiler{
		measurements: make(map[string]*Measurement),
		maxSamples:   maxSamples,
	}
	p.enabled.Store(true)
	return p
}

// SetEnabled enables or disables profiling.
func (p *Profiler) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

// IsEnabled returns whether profiling is enabled.
func (p *Profiler) IsEnabled() bool {
	return p.enabled.Load()
}

// Start begins timing a named section. Call the returned func to stop.
func (p *Profiler) Start(name string) func() {
	if !p.enabled.Load() {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.Record(name, time.Since(start))
	}
}

// Time measures the execution time of fn.
func (p *Profiler) Time(name string, fn func()) {
	stop := p.Start(name)
	defer stop()
	fn()
}

// TimeErr measures fn and passes its error through.
func (p *Profiler) TimeErr(name string, fn func() error) error {
	stop := p.Start(name)
	defer stop()
	return fn()
}

// Record stores one timing for name.
func (p *Profiler) Record(name string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, exists := p.measurements[name]
	if !exists {
		m = &Measurement{
			Name:    name,
			MinTime: elapsed,
			MaxTime: elapsed,
			samples: make([]time.Duration, 0, p.maxSamples),
		}
		p.measurements[name] = m
	}

	m.Count++
	m.TotalTime += elapsed
	m.LastTime = elapsed
	if elapsed < m.MinTime {
		m.MinTime = elapsed
	}
	if elapsed > m.MaxTime {
		m.MaxTime = elapsed
	}

	if len(m.samples) < p.maxSamples {
		m.samples = append(m.samples, elapsed)
	} else {
		m.samples[m.sampleIndex] = elapsed
	}
	m.sampleIndex = (m.sampleIndex + 1) % p.maxSamples
}

// Measurement returns a copy of the statistics for name.
func (p *Profiler) Measurement(name string) (Measurement, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, exists := p.measurements[name]
	if !exists {
		return Measurement{}, false
	}
	return m.clone(), true
}

// Measurements returns copies of all statistics sorted by name.
func (p *Profiler) Measurements() []Measurement {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]Measurement, 0, len(p.measurements))
	for _, m := range p.measurements {
		result = append(result, m.clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Reset clears all measurements.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.measurements = make(map[string]*Measurement)
}

// Report generates a performance report.
func (p *Profiler) Report() string {
	measurements := p.Measurements()
	if len(measurements) == 0 {
		return "No measurements recorded"
	}

	var sb strings.Builder
	sb.WriteString("Performance Report:\n")
	for _, m := range measurements {
		fmt.Fprintf(&sb, "  %-12s count %6d  avg %10v  min %10v  max %10v  p99 %10v\n",
			m.Name, m.Count, m.Average(), m.MinTime, m.MaxTime, m.Percentile(99))
	}
	return sb.String()
}

func (m *Measurement) clone() Measurement {
	c := *m
	c.samples = append([]time.Duration(nil), m.samples...)
	return c
}

// Average returns the average time for this measurement.
func (m Measurement) Average() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.TotalTime / time.Duration(m.Count)
}

// Percentile returns the p-th percentile (0-100) of the retained timings.
func (m Measurement) Percentile(p float64) time.Duration {
	if len(m.samples) == 0 {
		return 0
	}

	sorted := append([]time.Duration(nil), m.samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	index := int(float64(len(sorted)-1) * p / 100.0)
	return sorted[index]
}

// Start begins timing a named section using the default profiler.
func Start(name string) func() {
	return DefaultProfiler.Start(name)
}

// Time measures the execution time of a function using the default profiler.
func Time(name string, fn func()) {
	DefaultProfiler.Time(name, fn)
}

// ProfilingReport returns a performance report from the default profiler.
func ProfilingReport() string {
	return DefaultProfiler.Report()
}

// BlockProfiler relates section timings to the real-time budget of one block.
type BlockProfiler struct {
	*Profiler
	blockSize  int
	sampleRate float64
}

// NewBlockProfiler creates a profiler for blocks of blockSize at sampleRate.
func NewBlockProfiler(sampleRate float64, blockSize int) *BlockProfiler {
	return &BlockProfiler{
		Profiler:   NewProfiler(1000),
		sampleRate: sampleRate,
		blockSize:  blockSize,
	}
}

// Budget returns the wall time one block represents.
func (b *BlockProfiler) Budget() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.blockSize) / b.sampleRate * float64(time.Second))
}

// Load returns the average time of name as a percentage of Budget.
func (b *BlockProfiler) Load(name string) float64 {
	m, ok := b.Measurement(name)
	budget := b.Budget()
	if !ok || m.Count == 0 || budget == 0 {
		return 0
	}
	return float64(m.Average()) / float64(budget) * 100.0
}

// BlockReport adds the per-section load to Report.
func (b *BlockProfiler) BlockReport() string {
	var sb strings.Builder
	sb.WriteString(b.Report())
	fmt.Fprintf(&sb, "Block budget: %v (%d samples at %.0f Hz)\n", b.Budget(), b.blockSize, b.sampleRate)
	for _, m := range b.Measurements() {
		fmt.Fprintf(&sb, "  %-12s load %.2f%%\n", m.Name, b.Load(m.Name))
	}
	return sb.String()
}
