package tween

import (
	"sync"
	"time"
)

// A TickSource supplies the frame ticks that drive a Scheduler. Each tick
// carries the time it fires at; the scheduler derives frame deltas from
// successive ticks.
type TickSource interface {
	Now() time.Time
	// Ticks starts delivering ticks and returns the channel together with
	// a function that stops delivery.
	Ticks() (<-chan time.Time, func())
}

// FrameTicker ticks at a fixed rate in frames per second using the wall clock.
type FrameTicker struct {
	Rate float64
}

func (f FrameTicker) Now() time.Time {
	return time.Now()
}

func (f FrameTicker) Ticks() (<-chan time.Time, func()) {
	rate := f.Rate
	if rate <= 0 {
		rate = 30
	}
	t := time.NewTicker(time.Duration(float64(time.Second) / rate))
	return t.C, t.Stop
}

// ManualTicks is a TickSource advanced explicitly, for hosts that own
// their frame loop and for tests.
type ManualTicks struct {
	mu  sync.Mutex
	now time.Time
	c   chan time.Time
	ack chan struct{}
}

func NewManualTicks() *ManualTicks {
	m := new(ManualTicks)
	m.now = time.Unix(0, 0)
	m.c = make(chan time.Time)
	m.ack = make(chan struct{})
	return m
}

func (m *ManualTicks) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualTicks) Ticks() (<-chan time.Time, func()) {
	return m.c, func() {}
}

// Advance moves the clock forward by d and delivers one tick. It returns
// once the scheduler has finished the frame, or false if no drive loop
// picked the tick up within a second.
func (m *ManualTicks) Advance(d time.Duration) bool {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	m.mu.Unlock()

	select {
	case m.c <- now:
	case <-time.After(time.Second):
		return false
	}
	<-m.ack
	return true
}

func (m *ManualTicks) frameDone() {
	m.ack <- struct{}{}
}

type frameAcker interface {
	frameDone()
}
