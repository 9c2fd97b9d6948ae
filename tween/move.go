package tween

type moveBinding struct {
	target Positioner
}

func (b moveBinding) Ready() bool {
	return targetReady(b.target)
}

func (b moveBinding) Apply(v Vector3, _ float64) {
	b.target.SetPosition(v)
}

// LerpVector3 interpolates two vectors component-wise.
func LerpVector3(a, b Vector3, t float64) Vector3 {
	return a.Lerp(b, t)
}

// NewMove creates a tween that animates target's position from start to end.
func NewMove(target Positioner, start, end Vector3, duration float64, opts ...Option) (*Tween[Vector3], error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	return New[Vector3](moveBinding{target}, LerpVector3, start, end, duration, opts...)
}
