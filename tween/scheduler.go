package tween

import (
	"context"
	"io"
	"log"
	"sync"
	"time"
)

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger directs scheduler diagnostics to l.
func WithLogger(l *log.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// Scheduler owns a set of live tweens and drives them once per frame.
// The drive loop runs only while there is something to animate.
type Scheduler struct {
	source TickSource
	logger *log.Logger

	mu      sync.Mutex
	tweens  []Tweener
	index   map[Tweener]struct{}
	running bool
	done    chan struct{}
}

// NewScheduler creates a Scheduler fed by source.
func NewScheduler(source TickSource, opts ...SchedulerOption) *Scheduler {
	s := new(Scheduler)
	s.source = source
	s.logger = log.New(io.Discard, "", 0)
	s.index = make(map[Tweener]struct{})
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add starts t and registers it, starting the drive loop if it is idle.
// Registration is what starts a tween; callers need not call Start.
func (s *Scheduler) Add(t Tweener) {
	if t == nil {
		return
	}
	t.Start()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(t)
	s.ensureRunningLocked()
}

// Tick runs one frame: every registered tween is updated by deltaTime,
// finished tweens are dropped and started successors are taken on.
// Tweens added while the frame runs are first updated on the next frame.
func (s *Scheduler) Tick(deltaTime float64) {
	s.mu.Lock()
	snapshot := make([]Tweener, len(s.tweens))
	copy(snapshot, s.tweens)
	s.mu.Unlock()

	for _, t := range snapshot {
		ev := t.Update(deltaTime)
		if ev.Next != nil {
			s.adopt(ev.Next)
		}
		if t.IsComplete() {
			s.remove(t)
		}
	}
}

// Clear forgets every registered tween without cancelling any of them.
func (s *Scheduler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tweens = nil
	s.index = make(map[Tweener]struct{})
}

// Len returns the number of registered tweens.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tweens)
}

// Running reports whether the drive loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Wait blocks until the drive loop has run out of tweens and exited.
func (s *Scheduler) Wait(ctx context.Context) error {
	s.mu.Lock()
	running, done := s.running, s.done
	s.mu.Unlock()
	if !running {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) adopt(t Tweener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(t)
	s.ensureRunningLocked()
}

func (s *Scheduler) insertLocked(t Tweener) {
	if _, ok := s.index[t]; ok {
		return
	}
	s.index[t] = struct{}{}
	s.tweens = append(s.tweens, t)
}

func (s *Scheduler) remove(t Tweener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[t]; !ok {
		return
	}
	delete(s.index, t)
	for i, other := range s.tweens {
		if other == t {
			s.tweens = append(s.tweens[:i], s.tweens[i+1:]...)
			break
		}
	}
}

func (s *Scheduler) ensureRunningLocked() {
	if s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})
	ticks, stop := s.source.Ticks()
	go s.run(s.source.Now(), ticks, stop, s.done)
}

func (s *Scheduler) run(last time.Time, ticks <-chan time.Time, stop func(), done chan struct{}) {
	defer close(done)
	defer stop()
	s.logger.Println("Drive loop started")

	acker, _ := s.source.(frameAcker)
	for {
		now, ok := <-ticks
		if !ok {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
			s.logger.Println("Tick source closed")
			return
		}

		delta := now.Sub(last).Seconds()
		last = now
		if delta < 0 {
			delta = 0
		}
		s.Tick(delta)

		s.mu.Lock()
		idle := len(s.tweens) == 0
		if idle {
			s.running = false
		}
		s.mu.Unlock()

		if acker != nil {
			acker.frameDone()
		}
		if idle {
			s.logger.Println("Drive loop idle")
			return
		}
	}
}
