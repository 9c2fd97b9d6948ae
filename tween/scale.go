package tween

type scaleBinding struct {
	target Scaler
}

func (b scaleBinding) Ready() bool {
	return targetReady(b.target)
}

func (b scaleBinding) Apply(v Vector3, _ float64) {
	b.target.SetScale(v)
}

// NewScale creates a tween that animates target's scale from start to end.
func NewScale(target Scaler, start, end Vector3, duration float64, opts ...Option) (*Tween[Vector3], error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	return New[Vector3](scaleBinding{target}, LerpVector3, start, end, duration, opts...)
}
