package ease

import (
	"errors"
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	for name, f := range byName {
		if got := f(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := f(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestMidpoints(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		want float64
	}{
		{"linear", Linear, 0.5},
		{"inQuad", InQuad, 0.25},
		{"outQuad", OutQuad, 0.75},
		{"inOutQuad", InOutQuad, 0.5},
	}
	for _, tt := range tests {
		if got := tt.f(0.5); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s(0.5) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestByName(t *testing.T) {
	f, err := ByName("inQuad")
	if err != nil {
		t.Fatalf("ByName(inQuad): %v", err)
	}
	if got := f(0.5); got != 0.25 {
		t.Errorf("inQuad(0.5) = %v, want 0.25", got)
	}

	f, err = ByName("")
	if err != nil || f(0.3) != 0.3 {
		t.Errorf("empty name should resolve to linear")
	}

	if _, err := ByName("bounce"); !errors.Is(err, ErrUnknown) {
		t.Errorf("ByName(bounce) error = %v, want ErrUnknown", err)
	}
}
