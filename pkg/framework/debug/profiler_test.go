package debug

import (
	"strings"
	"testing"
	"time"
)

func TestProfiler(t *testing.T) {
	t.Run("Record", func(t *testing.T) {
		p := NewProfiler(10)

		p.Record("block", 2*time.Millisecond)
		p.Record("block", 4*time.Millisecond)
		p.Record("block", 3*time.Millisecond)

		m, ok := p.Measurement("block")
		if !ok {
			t.Fatal("measurement missing")
		}
		if m.Count != 3 || m.TotalTime != 9*time.Millisecond {
			t.Errorf("count %d total %v", m.Count, m.TotalTime)
		}
		if m.MinTime != 2*time.Millisecond || m.MaxTime != 4*time.Millisecond {
			t.Errorf("min %v max %v", m.MinTime, m.MaxTime)
		}
		if m.LastTime != 3*time.Millisecond {
			t.Errorf("last %v", m.LastTime)
		}
		if m.Average() != 3*time.Millisecond {
			t.Errorf("average %v", m.Average())
		}
		if got := m.Percentile(50); got != 3*time.Millisecond {
			t.Errorf("p50 = %v, want 3ms", got)
		}
		if got := m.Percentile(100); got != 4*time.Millisecond {
			t.Errorf("p100 = %v, want 4ms", got)
		}
	})

	t.Run("RetainsLastSamples", func(t *testing.T) {
		p := NewProfiler(2)
		p.Record("x", 10*time.Millisecond)
		p.Record("x", 1*time.Millisecond)
		p.Record("x", 2*time.Millisecond)

		m, _ := p.Measurement("x")
		// 10ms was overwritten; only 1ms and 2ms remain
		if got := m.Percentile(100); got != 2*time.Millisecond {
			t.Errorf("p100 = %v, want 2ms", got)
		}
		if m.MaxTime != 10*time.Millisecond {
			t.Errorf("max %v should keep the overall maximum", m.MaxTime)
		}
	})

	t.Run("StartStop", func(t *testing.T) {
		p := NewProfiler(10)
		stop := p.Start("sleep")
		time.Sleep(time.Millisecond)
		stop()

		m, ok := p.Measurement("sleep")
		if !ok || m.Count != 1 || m.LastTime < time.Millisecond {
			t.Errorf("measurement = %+v, ok %v", m, ok)
		}
	})

	t.Run("TimeErr", func(t *testing.T) {
		p := NewProfiler(10)
		want := errTest("stage failed")
		if err := p.TimeErr("stage", func() error { return want }); err != want {
			t.Errorf("TimeErr() = %v", err)
		}
		if _, ok := p.Measurement("stage"); !ok {
			t.Error("failed call should still be timed")
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		p := NewProfiler(10)
		p.SetEnabled(false)
		p.Time("off", func() {})

		if _, ok := p.Measurement("off"); ok {
			t.Error("disabled profiler recorded a measurement")
		}
		if p.IsEnabled() {
			t.Error("IsEnabled() should be false")
		}
	})

	t.Run("ReportSorted", func(t *testing.T) {
		p := NewProfiler(10)
		p.Record("zeta", time.Microsecond)
		p.Record("alpha", time.Microsecond)

		report := p.Report()
		if strings.Index(report, "alpha") > strings.Index(report, "zeta") {
			t.Errorf("report not sorted:\n%s", report)
		}

		p.Reset()
		if p.Report() != "No measurements recorded" {
			t.Error("Reset() should clear measurements")
		}
	})
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestBlockProfiler(t *testing.T) {
	bp := NewBlockProfiler(48000, 480)

	if bp.Budget() != 10*time.Millisecond {
		t.Fatalf("Budget() = %v, want 10ms", bp.Budget())
	}

	bp.Record("compressor", time.Millisecond)
	bp.Record("compressor", 3*time.Millisecond)

	if load := bp.Load("compressor"); load < 19.99 || load > 20.01 {
		t.Errorf("Load() = %f, want 20", load)
	}
	if bp.Load("missing") != 0 {
		t.Error("unknown section should have no load")
	}

	report := bp.BlockReport()
	if !strings.Contains(report, "compressor") || !strings.Contains(report, "20.00%") {
		t.Errorf("BlockReport() =\n%s", report)
	}
}

func TestGlobalProfiler(t *testing.T) {
	DefaultProfiler.Reset()
	defer DefaultProfiler.Reset()

	Time("global", func() {})
	stop := Start("global")
	stop()

	m, ok := DefaultProfiler.Measurement("global")
	if !ok || m.Count != 2 {
		t.Errorf("global measurement = %+v", m)
	}
	if !strings.Contains(ProfilingReport(), "global") {
		t.Error("report should list the section")
	}
}

func BenchmarkProfiler(b *testing.B) {
	p := NewProfiler(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stop := p.Start("bench")
		stop()
	}
}
