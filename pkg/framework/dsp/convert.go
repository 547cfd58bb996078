package dsp

import (
	"github.com/cwbudde/algo-dsp/dsp/core"
)

// Widen copies src into dst as float64, growing dst only when its capacity
// is too small. It returns the resized dst.
func Widen(dst []float64, src []float32) []float64 {
	dst = core.EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

// Narrow copies src into dst as float32. Only min(len(dst), len(src))
// samples are written.
func Narrow(dst []float32, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = float32(src[i])
	}
	return n
}
