// Package remote reconciles a stream of remote position samples into
// local motion. Samples may arrive late or out of order; a Session drops
// the stale ones and animates the target through the rest in timestamp
// order, so the target never moves backwards in time.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"sync"

	"github.com/matt-g-everett/tweentx/tween"
)

// DefaultSmoothing is the smoothing factor used by NewSession callers
// that have no preference.
const DefaultSmoothing = 0.1

// minSegment is the duration given to a move between two samples that
// carry the same timestamp.
const minSegment = 0.001

var (
	ErrNilScheduler = errors.New("remote session needs a scheduler")
	ErrNilService   = errors.New("remote session needs a service")
)

// Session tracks one remote object.
type Session struct {
	target    tween.Positioner
	scheduler *tween.Scheduler
	service   Service
	smoothing float64
	logger    *log.Logger

	mu        sync.Mutex
	queue     []Sample
	watermark float64
	accepted  bool
	anchor    Sample
	anchored  bool
	active    tween.Tweener
	pending   []tween.Tweener
	inFlight  int
	draining  bool
	settled   chan struct{}
}

// NewSession creates a session moving target. smoothing in [0,1) sets how
// far each frame trails the interpolated position.
func NewSession(target tween.Positioner, scheduler *tween.Scheduler, service Service, smoothing float64) (*Session, error) {
	if target == nil {
		return nil, tween.ErrNilTarget
	}
	if scheduler == nil {
		return nil, ErrNilScheduler
	}
	if service == nil {
		return nil, ErrNilService
	}

	s := new(Session)
	s.target = target
	s.scheduler = scheduler
	s.service = service
	s.smoothing = smoothing
	s.logger = log.New(io.Discard, "", 0)
	return s, nil
}

// SetLogger directs session diagnostics to l.
func (s *Session) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Listen subscribes the session to updates for objectID.
func (s *Session) Listen(objectID string) error {
	if err := s.service.Listen(objectID, s.OnServerUpdate); err != nil {
		return fmt.Errorf("listen to %s: %w", objectID, err)
	}
	return nil
}

// OnServerUpdate accepts a sample unless it is older than the newest
// sample accepted so far.
func (s *Session) OnServerUpdate(sample Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accepted && sample.Time < s.watermark {
		s.logger.Printf("Dropped stale sample at %.3fs (watermark %.3fs)", sample.Time, s.watermark)
		return
	}
	s.accepted = true
	s.watermark = sample.Time
	s.queue = append(s.queue, sample)
}

// Drain turns every queued sample into motion and returns once the queue
// is empty and the target has finished moving. If a drain is already in
// progress it returns nil immediately. Ending ctx stops the wait, not the
// motion.
func (s *Session) Drain(ctx context.Context) error {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return nil
	}
	s.draining = true
	s.settled = nil
	s.mu.Unlock()

	for {
		s.consume()

		s.mu.Lock()
		if s.inFlight == 0 {
			if len(s.queue) == 0 {
				s.draining = false
				s.mu.Unlock()
				return nil
			}
			s.mu.Unlock()
			continue
		}
		if s.settled == nil {
			s.settled = make(chan struct{})
		}
		settled := s.settled
		s.mu.Unlock()

		select {
		case <-settled:
		case <-ctx.Done():
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
			return ctx.Err()
		}
	}
}

// Watermark returns the newest accepted timestamp.
func (s *Session) Watermark() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watermark
}

// Queued returns the number of accepted samples not yet animated.
func (s *Session) Queued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// InFlight returns the number of segments started or waiting to start.
func (s *Session) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

func (s *Session) consume() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		next := s.queue[0]
		s.queue = s.queue[1:]

		if !s.anchored {
			// The first sample places the target; there is nothing to move from.
			s.anchor, s.anchored = next, true
			s.mu.Unlock()
			s.target.SetPosition(next.Position)
			continue
		}

		prev := s.anchor
		s.anchor = next
		if prev.Position == next.Position {
			s.mu.Unlock()
			continue
		}
		if next.Time-prev.Time < minSegment {
			next.Time = prev.Time + minSegment
		}

		seg, err := newSegment(s.target, prev, next, s.smoothing, s.segmentDone)
		if err != nil {
			s.mu.Unlock()
			s.logger.Printf("Skipped segment %v -> %v: %v", prev.Position, next.Position, err)
			continue
		}
		s.inFlight++
		start := s.active == nil
		if start {
			s.active = seg
		} else {
			s.pending = append(s.pending, seg)
		}
		s.mu.Unlock()

		if start {
			s.scheduler.Add(seg)
		}
		runtime.Gosched()
	}
}

// segmentDone runs on the scheduler's frame when a segment finishes and
// hands over to the next queued segment.
func (s *Session) segmentDone(tween.Tweener) {
	s.mu.Lock()
	s.inFlight--
	var next tween.Tweener
	if len(s.pending) > 0 {
		next = s.pending[0]
		s.pending = s.pending[1:]
	}
	s.active = next

	var settled chan struct{}
	if s.inFlight == 0 && s.settled != nil {
		settled = s.settled
		s.settled = nil
	}
	s.mu.Unlock()

	if next != nil {
		s.scheduler.Add(next)
	}
	if settled != nil {
		close(settled)
	}
}
