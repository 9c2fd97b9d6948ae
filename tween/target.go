package tween

import "github.com/lucasb-eyer/go-colorful"

// A Positioner exposes a settable position.
type Positioner interface {
	Position() Vector3
	SetPosition(Vector3)
}

// A Scaler exposes a settable scale.
type Scaler interface {
	Scale() Vector3
	SetScale(Vector3)
}

// A Colorer exposes a settable colour.
type Colorer interface {
	Color() colorful.Color
	SetColor(colorful.Color)
}

// A Readier can report that it is temporarily unable to take updates,
// for example while its scene object is detached. Targets that do not
// implement it are always ready.
type Readier interface {
	Ready() bool
}

func targetReady(target interface{}) bool {
	if target == nil {
		return false
	}
	if r, ok := target.(Readier); ok {
		return r.Ready()
	}
	return true
}
