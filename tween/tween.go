package tween

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/matt-g-everett/tweentx/ease"
	"github.com/matt-g-everett/tweentx/util"
)

var (
	ErrNilTarget       = errors.New("tween target is nil")
	ErrInvalidDuration = errors.New("tween duration must be positive")
)

// A Tweener is a value animation that can be driven frame by frame.
type Tweener interface {
	Start()
	Update(deltaTime float64) Event
	Pause()
	Resume()
	Cancel()
	JumpToTime(time float64)
	Chain(tweens ...Tweener)
	Next() Tweener
	SetNext(Tweener)
	IsComplete() bool
	IsPaused() bool
	Elapsed() float64
	Duration() float64
}

// Event describes what a single Update did. A zero Event means the
// update was skipped.
type Event struct {
	Tween     Tweener
	Completed bool
	// Next is the chained successor that was started by this completion.
	Next Tweener
}

// A Binding writes interpolated values into the object being animated.
type Binding[T any] interface {
	Ready() bool
	// Apply receives the interpolated value and the un-eased normalized
	// time it was computed at.
	Apply(value T, progress float64)
}

// LerpFunc interpolates linearly between a and b.
type LerpFunc[T any] func(a, b T, t float64) T

type options struct {
	easing     ease.Func
	onComplete func(Tweener)
}

// An Option configures a tween at construction.
type Option func(*options)

// WithEasing sets the easing curve. The default is ease.Linear.
func WithEasing(f ease.Func) Option {
	return func(o *options) {
		if f != nil {
			o.easing = f
		}
	}
}

// WithOnComplete registers a handler fired once per run when the tween
// finishes or is cancelled.
func WithOnComplete(f func(Tweener)) Option {
	return func(o *options) {
		o.onComplete = f
	}
}

// Tween is the state machine shared by every tween variant.
type Tween[T any] struct {
	mu sync.Mutex

	start    T
	end      T
	duration float64
	elapsed  float64
	started  bool
	paused   bool
	fired    bool

	easing     ease.Func
	onComplete func(Tweener)
	next       Tweener

	lerp    LerpFunc[T]
	binding Binding[T]
}

// New creates a pending tween. It must be started, directly or by a
// Scheduler, before updates advance it.
func New[T any](binding Binding[T], lerp LerpFunc[T], start, end T, duration float64, opts ...Option) (*Tween[T], error) {
	if binding == nil || lerp == nil {
		return nil, ErrNilTarget
	}
	if !(duration > 0) || math.IsInf(duration, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}

	o := options{easing: ease.Linear}
	for _, opt := range opts {
		opt(&o)
	}

	tw := new(Tween[T])
	tw.binding = binding
	tw.lerp = lerp
	tw.start = start
	tw.end = end
	tw.duration = duration
	tw.easing = o.easing
	tw.onComplete = o.onComplete
	return tw, nil
}

// Start rewinds the tween and arms it for a new run. The chained
// successor is left in place.
func (tw *Tween[T]) Start() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.elapsed = 0
	tw.paused = false
	tw.started = true
	tw.fired = false
}

// Update advances the tween by deltaTime seconds. When this call finishes
// the tween, the completion handler runs and then the successor is
// started, both before Update returns.
func (tw *Tween[T]) Update(deltaTime float64) Event {
	if !(deltaTime > 0) {
		return Event{}
	}

	tw.mu.Lock()
	if !tw.started || tw.paused || tw.completeLocked() || !tw.binding.Ready() {
		tw.mu.Unlock()
		return Event{}
	}

	tw.elapsed += deltaTime
	tw.applyLocked()
	if !tw.completeLocked() {
		tw.mu.Unlock()
		return Event{Tween: tw}
	}

	handler := tw.takeHandlerLocked()
	next := tw.next
	tw.mu.Unlock()

	// Handlers run unlocked so they may restart this tween or register others.
	if handler != nil {
		handler(tw)
	}
	if next != nil {
		next.Start()
	}
	return Event{Tween: tw, Completed: true, Next: next}
}

func (tw *Tween[T]) Pause() {
	tw.mu.Lock()
	tw.paused = true
	tw.mu.Unlock()
}

func (tw *Tween[T]) Resume() {
	tw.mu.Lock()
	tw.paused = false
	tw.mu.Unlock()
}

// Cancel finishes the tween immediately at its end value and fires the
// completion handler. The chained successor is not started: cancelling
// aborts the remainder of a sequence.
func (tw *Tween[T]) Cancel() {
	tw.mu.Lock()
	tw.elapsed = tw.duration
	if tw.binding.Ready() {
		tw.applyLocked()
	}
	handler := tw.takeHandlerLocked()
	tw.mu.Unlock()

	if handler != nil {
		handler(tw)
	}
}

// JumpToTime seeks to an absolute time, clamped to the duration, and
// applies the value there. Seeking never completes the tween's run.
func (tw *Tween[T]) JumpToTime(time float64) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if math.IsNaN(time) {
		time = 0
	}
	tw.elapsed = util.Clamp(time, 0, tw.duration)
	if tw.binding.Ready() {
		tw.applyLocked()
	}
}

// Chain appends tweens to the end of this tween's sequence, each one
// becoming the successor of the one before.
func (tw *Tween[T]) Chain(tweens ...Tweener) {
	if len(tweens) == 0 {
		return
	}

	var current Tweener = tw
	seen := map[Tweener]bool{current: true}
	for n := current.Next(); n != nil && !seen[n]; n = current.Next() {
		seen[n] = true
		current = n
	}

	for _, n := range tweens {
		if n == nil {
			continue
		}
		current.SetNext(n)
		current = n
	}
}

func (tw *Tween[T]) Next() Tweener {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.next
}

func (tw *Tween[T]) SetNext(n Tweener) {
	tw.mu.Lock()
	tw.next = n
	tw.mu.Unlock()
}

func (tw *Tween[T]) IsComplete() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.completeLocked()
}

func (tw *Tween[T]) IsPaused() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.paused
}

func (tw *Tween[T]) Elapsed() float64 {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.elapsed
}

func (tw *Tween[T]) Duration() float64 {
	return tw.duration
}

// Value returns the eased value at the current elapsed time.
func (tw *Tween[T]) Value() T {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	v, _ := tw.valueLocked()
	return v
}

func (tw *Tween[T]) completeLocked() bool {
	return tw.elapsed >= tw.duration
}

func (tw *Tween[T]) valueLocked() (T, float64) {
	progress := util.NormalizedTime(tw.elapsed, tw.duration)
	if progress >= 1 {
		return tw.end, progress
	}
	return tw.lerp(tw.start, tw.end, tw.easing(progress)), progress
}

func (tw *Tween[T]) applyLocked() {
	v, progress := tw.valueLocked()
	tw.binding.Apply(v, progress)
}

// takeHandlerLocked returns the completion handler if it has not yet
// fired during this run.
func (tw *Tween[T]) takeHandlerLocked() func(Tweener) {
	if tw.fired {
		return nil
	}
	tw.fired = true
	return tw.onComplete
}
