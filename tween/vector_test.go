package tween

import "testing"

func TestVector3(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{3, 6, 9}

	if got := a.Lerp(b, 0.5); got != (Vector3{2, 4, 6}) {
		t.Errorf("Lerp = %v", got)
	}
	if got := b.Sub(a); got != (Vector3{2, 4, 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Add(a).Scale(0.5); got != a {
		t.Errorf("Add/Scale = %v", got)
	}
	if d := Zero.Distance(Vector3{3, 4, 0}); d != 5 {
		t.Errorf("Distance = %v", d)
	}
	if !a.ApproxEqual(Vector3{1.0001, 2, 3}, 1e-3) || a.ApproxEqual(b, 1e-3) {
		t.Errorf("ApproxEqual wrong")
	}
	if !a.Equal(Vector3{1, 2, 3}) {
		t.Errorf("Equal wrong")
	}
}
