package remote

import (
	"github.com/matt-g-everett/tweentx/ease"
	"github.com/matt-g-everett/tweentx/tween"
	"github.com/matt-g-everett/tweentx/util"
)

// smoothBinding writes a position that trails the interpolated one by the
// smoothing factor, which softens turns between consecutive segments. The
// last frame lands exactly on the segment end.
type smoothBinding struct {
	target    tween.Positioner
	smoothing float64
}

func (b smoothBinding) Ready() bool {
	if b.target == nil {
		return false
	}
	if r, ok := b.target.(tween.Readier); ok {
		return r.Ready()
	}
	return true
}

func (b smoothBinding) Apply(v tween.Vector3, progress float64) {
	if progress >= 1 || b.smoothing == 0 {
		b.target.SetPosition(v)
		return
	}
	b.target.SetPosition(v.Lerp(b.target.Position(), b.smoothing))
}

// newSegment creates a linear move between two accepted samples.
func newSegment(target tween.Positioner, from, to Sample, smoothing float64, onComplete func(tween.Tweener)) (*tween.Tween[tween.Vector3], error) {
	if target == nil {
		return nil, tween.ErrNilTarget
	}
	b := smoothBinding{target: target, smoothing: util.Clamp(smoothing, 0, 0.99)}
	return tween.New[tween.Vector3](b, tween.LerpVector3, from.Position, to.Position, to.Time-from.Time,
		tween.WithEasing(ease.Linear),
		tween.WithOnComplete(onComplete))
}
