package util

import (
	"testing"

	"github.com/matt-g-everett/tweentx/ease"
)

func TestNormalizedTime(t *testing.T) {
	tests := []struct {
		elapsed, duration, want float64
	}{
		{0, 2, 0},
		{1, 2, 0.5},
		{2, 2, 1},
		{3, 2, 1},
		{-1, 2, 0},
		{1, 0, 1},
	}
	for _, tt := range tests {
		if got := NormalizedTime(tt.elapsed, tt.duration); got != tt.want {
			t.Errorf("NormalizedTime(%v, %v) = %v, want %v", tt.elapsed, tt.duration, got, tt.want)
		}
	}
}

func TestMillisecondsToSeconds(t *testing.T) {
	if got := MillisecondsToSeconds(250); got != 0.25 {
		t.Errorf("MillisecondsToSeconds(250) = %v", got)
	}
}

func TestGenerateLutSymmetric(t *testing.T) {
	lut := GenerateLut(10, ease.Linear)
	if len(lut) != 10 {
		t.Fatalf("len = %d", len(lut))
	}
	for i, j := 0, len(lut)-1; i < j; i, j = i+1, j-1 {
		if lut[i] != lut[j] {
			t.Errorf("lut[%d]=%v lut[%d]=%v", i, lut[i], j, lut[j])
		}
	}
	if lut[0] != 0 {
		t.Errorf("lut[0] = %v, want 0", lut[0])
	}
	if lut[4] <= lut[1] {
		t.Errorf("lut should rise towards the middle: %v", lut)
	}
}
