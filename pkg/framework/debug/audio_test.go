package debug

import (
	"math"
	"strings"
	"testing"
)

func sine(n int, freq, sampleRate, amp float64) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(amp * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
	}
	return buf
}

func TestAudioAnalyzer(t *testing.T) {
	t.Run("BasicAnalysis", func(t *testing.T) {
		analyzer := NewAudioAnalyzer()

		// Sine wave at 440Hz, 48kHz sample rate
		result := analyzer.Analyze(sine(1000, 440, 48000, 0.5))

		if result.Peak < 0.49 || result.Peak > 0.51 {
			t.Errorf("Peak incorrect: %f", result.Peak)
		}

		// Sine wave RMS = peak / sqrt(2)
		expectedRMS := 0.5 / math.Sqrt(2)
		if math.Abs(float64(result.RMS)-expectedRMS) > 0.01 {
			t.Errorf("RMS incorrect: %f, expected ~%f", result.RMS, expectedRMS)
		}
		if result.ZeroCrossings == 0 {
			t.Error("No zero crossings detected")
		}
		if result.Silent {
			t.Error("Should not be silent")
		}
		if result.Samples != 1000 {
			t.Errorf("Samples = %d", result.Samples)
		}
	})

	t.Run("Clipping", func(t *testing.T) {
		analyzer := NewAudioAnalyzer()

		result := analyzer.Analyze([]float32{0.5, 0.99, 1.0, -0.99, -1.0, 0.5})

		if !result.Clipping {
			t.Error("Should detect clipping")
		}
		if result.ClippedSamples != 4 { // ±0.99 and ±1.0
			t.Errorf("Wrong clipped sample count: %d", result.ClippedSamples)
		}
	})

	t.Run("DCOffset", func(t *testing.T) {
		analyzer := NewAudioAnalyzer()

		buffer := make([]float32, 100)
		for i := range buffer {
			buffer[i] = 0.1
		}
		result := analyzer.Analyze(buffer)

		if math.Abs(float64(result.DC)-0.1) > 1e-6 {
			t.Errorf("DC = %f, want 0.1", result.DC)
		}
		if issues := analyzer.Check(buffer, "dc"); len(issues) != 1 || !strings.Contains(issues[0], "DC offset") {
			t.Errorf("Check() = %v", issues)
		}
	})

	t.Run("Silence", func(t *testing.T) {
		analyzer := NewAudioAnalyzer()

		result := analyzer.Analyze(make([]float32, 512))
		if !result.Silent {
			t.Error("Should detect silence")
		}
		if !math.IsInf(result.PeakDB(), -1) {
			t.Errorf("PeakDB() = %f, want -Inf", result.PeakDB())
		}
		if issues := analyzer.Check(make([]float32, 512), "silence"); len(issues) != 0 {
			t.Errorf("silence should have no issues: %v", issues)
		}
	})

	t.Run("NaNAndInf", func(t *testing.T) {
		analyzer := NewAudioAnalyzer()

		buffer := []float32{0.1, float32(math.NaN()), 0.2, float32(math.NaN()), float32(math.Inf(1))}
		result := analyzer.Analyze(buffer)

		if !result.HasNaN || result.NaNCount != 2 {
			t.Errorf("NaN detection: has=%v count=%d", result.HasNaN, result.NaNCount)
		}
		if !result.HasInf {
			t.Error("Should detect Inf")
		}

		issues := analyzer.Check(buffer, "bad")
		joined := strings.Join(issues, "\n")
		if !strings.Contains(joined, "2 NaN") || !strings.Contains(joined, "infinite") {
			t.Errorf("Check() = %v", issues)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		result := NewAudioAnalyzer().Analyze(nil)
		if result.Samples != 0 || result.Peak != 0 {
			t.Errorf("empty result = %+v", result)
		}
	})
}

func TestCompareBuffers(t *testing.T) {
	a := []float32{1, 2, 3, 4}

	if diff := CompareBuffers(a, []float32{1, 2, 3, 4.0001}, 0.001); diff != "" {
		t.Errorf("within tolerance: %q", diff)
	}

	diff := CompareBuffers(a, []float32{1, 2.5, 3, 4}, 0.001)
	if !strings.Contains(diff, "1 / 4") || !strings.Contains(diff, "sample 1") {
		t.Errorf("difference report = %q", diff)
	}

	if diff := CompareBuffers(a, a[:2], 0); !strings.Contains(diff, "mismatch") {
		t.Errorf("length mismatch report = %q", diff)
	}
}

func BenchmarkAnalyzer(b *testing.B) {
	analyzer := NewAudioAnalyzer()
	buffer := sine(512, 440, 48000, 0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = analyzer.Analyze(buffer)
	}
}
