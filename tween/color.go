package tween

import "github.com/lucasb-eyer/go-colorful"

type colorBinding struct {
	target Colorer
}

func (b colorBinding) Ready() bool {
	return targetReady(b.target)
}

func (b colorBinding) Apply(c colorful.Color, _ float64) {
	b.target.SetColor(c)
}

// LerpColor blends two colours channel by channel in RGB space.
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}

// NewColor creates a tween that animates target's colour from start to end.
func NewColor(target Colorer, start, end colorful.Color, duration float64, opts ...Option) (*Tween[colorful.Color], error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	return New[colorful.Color](colorBinding{target}, LerpColor, start, end, duration, opts...)
}
