package param

import (
	"math"
	"testing"
)

func TestSmoother(t *testing.T) {
	t.Run("Ramp", func(t *testing.T) {
		smoother := NewSmoother(10) // 10 samples
		smoother.Reset(0.0)
		smoother.SetTarget(1.0)

		// Should take 10 samples to reach target
		for i := 0; i < 10; i++ {
			value := smoother.Next()
			expected := float64(i+1) * 0.1
			if math.Abs(value-expected) > 0.001 {
				t.Errorf("Sample %d: expected %f, got %f", i, expected, value)
			}
		}

		if smoother.Next() != 1.0 {
			t.Error("Should stay at target after reaching it")
		}
		if smoother.IsSmoothing() {
			t.Error("Should not be smoothing after reaching target")
		}
	})

	t.Run("RampDown", func(t *testing.T) {
		smoother := NewSmoother(4)
		smoother.Reset(1.0)
		smoother.SetTarget(0.0)

		expected := []float64{0.75, 0.5, 0.25, 0}
		for i, want := range expected {
			if got := smoother.Next(); math.Abs(got-want) > 1e-9 {
				t.Errorf("Sample %d: expected %f, got %f", i, want, got)
			}
		}
	})

	t.Run("RetargetMidRamp", func(t *testing.T) {
		smoother := NewSmoother(4)
		smoother.Reset(0)
		smoother.SetTarget(1)
		smoother.Next()
		smoother.Next() // 0.5

		smoother.SetTarget(0)
		if got := smoother.Next(); math.Abs(got-0.375) > 1e-9 {
			t.Errorf("Next() = %f, want 0.375", got)
		}
		if smoother.Target() != 0 || !smoother.IsSmoothing() {
			t.Errorf("Target() = %f, IsSmoothing() = %v", smoother.Target(), smoother.IsSmoothing())
		}
	})

	t.Run("Fill", func(t *testing.T) {
		smoother := NewSmoother(5)
		smoother.Reset(0.0)
		smoother.SetTarget(1.0)

		ramp := make([]float64, 7)
		smoother.Fill(ramp)

		expected := []float64{0.2, 0.4, 0.6, 0.8, 1.0, 1.0, 1.0}
		for i, v := range ramp {
			if math.Abs(v-expected[i]) > 0.001 {
				t.Errorf("Sample %d: expected %f, got %f", i, expected[i], v)
			}
		}
	})

	t.Run("FillSteady", func(t *testing.T) {
		smoother := NewSmoother(5)
		smoother.Reset(0.3)

		out := make([]float64, 4)
		smoother.Fill(out)
		for i, v := range out {
			if v != 0.3 {
				t.Errorf("Sample %d: expected 0.3, got %f", i, v)
			}
		}
	})

	t.Run("RampTime", func(t *testing.T) {
		smoother := NewSmoother(0)
		smoother.SetRampTime(1000, 10) // 10 samples
		smoother.Reset(0)
		smoother.SetTarget(1)

		n := 0
		for smoother.IsSmoothing() && n < 100 {
			smoother.Next()
			n++
		}
		if n != 10 {
			t.Errorf("ramp took %d samples, want 10", n)
		}
	})

	t.Run("ZeroRateJumps", func(t *testing.T) {
		smoother := NewSmoother(0)
		smoother.Reset(0)
		smoother.SetTarget(0.5)

		if got := smoother.Next(); got != 0.5 {
			t.Errorf("Next() = %f, want 0.5", got)
		}
	})
}
