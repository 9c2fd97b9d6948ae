package util

import (
	"github.com/matt-g-everett/tweentx/ease"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// NormalizedTime maps elapsed seconds onto [0,1] for a tween of the given duration.
func NormalizedTime(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(elapsed / duration)
}

func MillisecondsToSeconds(ms float64) float64 {
	return ms / 1000.0
}

// GenerateLut samples fn into a table that rises over the first half and
// falls back over the second.
func GenerateLut(length int, fn ease.Func) []float64 {
	if fn == nil {
		fn = ease.InOutQuad
	}
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}
	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = fn(value)
		lut[j] = fn(value)
	}
	return lut
}
