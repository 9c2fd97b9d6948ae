package tween

import (
	"context"
	"sync"
	"testing"
	"time"
)

func waitIdle(t *testing.T, s *Scheduler) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Wait(ctx); err != nil {
		t.Fatalf("scheduler did not go idle: %v", err)
	}
}

func TestSchedulerStartsOnAdd(t *testing.T) {
	ticks := NewManualTicks()
	s := NewScheduler(ticks)
	n := newFakeNode()
	tw := mustMove(t, n)

	s.Add(tw)
	if !s.Running() || s.Len() != 1 {
		t.Fatalf("running=%v len=%d", s.Running(), s.Len())
	}

	if !ticks.Advance(time.Second) {
		t.Fatalf("tick not consumed")
	}
	if got := n.Position(); got != (Vector3{5, 0, 0}) {
		t.Errorf("position after 1s = %v", got)
	}

	ticks.Advance(time.Second)
	waitIdle(t, s)
	if got := n.Position(); got != tenX {
		t.Errorf("position after 2s = %v", got)
	}
	if s.Len() != 0 || s.Running() {
		t.Errorf("completed tween not evicted: len=%d running=%v", s.Len(), s.Running())
	}
}

func TestSchedulerRestartsAfterIdle(t *testing.T) {
	ticks := NewManualTicks()
	s := NewScheduler(ticks)
	n := newFakeNode()

	first, _ := NewMove(n, Zero, tenX, 1)
	s.Add(first)
	ticks.Advance(time.Second)
	waitIdle(t, s)

	second, _ := NewMove(n, tenX, Zero, 1)
	s.Add(second)
	if !s.Running() {
		t.Fatalf("loop not restarted")
	}
	ticks.Advance(time.Second)
	waitIdle(t, s)
	if got := n.Position(); got != Zero {
		t.Errorf("position = %v", got)
	}
}

func TestSchedulerAddIdempotent(t *testing.T) {
	s := NewScheduler(NewManualTicks())
	tw := mustMove(t, newFakeNode())
	s.Add(tw)
	s.Add(tw)
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
	s.Clear()
}

func TestSchedulerAdoptsSuccessor(t *testing.T) {
	ticks := NewManualTicks()
	s := NewScheduler(ticks)
	n := newFakeNode()

	move, _ := NewMove(n, Zero, tenX, 1)
	scale, _ := NewScale(n, One, Vector3{3, 3, 3}, 1)
	move.Chain(scale)
	s.Add(move)

	ticks.Advance(time.Second)
	if got := n.Position(); got != tenX {
		t.Fatalf("position = %v", got)
	}
	if s.Len() != 1 {
		t.Fatalf("successor not adopted: len=%d", s.Len())
	}
	if got := n.Scale(); got != One {
		t.Errorf("successor progressed in predecessor's frame: %v", got)
	}

	ticks.Advance(500 * time.Millisecond)
	if got := n.Scale(); got != (Vector3{2, 2, 2}) {
		t.Errorf("scale = %v", got)
	}
	ticks.Advance(500 * time.Millisecond)
	waitIdle(t, s)
	if got := n.Scale(); got != (Vector3{3, 3, 3}) {
		t.Errorf("scale = %v", got)
	}
}

func TestSchedulerEvictsCancelled(t *testing.T) {
	ticks := NewManualTicks()
	s := NewScheduler(ticks)
	tw := mustMove(t, newFakeNode())
	s.Add(tw)

	tw.Cancel()
	ticks.Advance(10 * time.Millisecond)
	waitIdle(t, s)
	if s.Len() != 0 {
		t.Errorf("cancelled tween still registered")
	}
}

func TestSchedulerPausedTweenStays(t *testing.T) {
	ticks := NewManualTicks()
	s := NewScheduler(ticks)
	n := newFakeNode()
	tw := mustMove(t, n)
	s.Add(tw)
	tw.Pause()

	ticks.Advance(5 * time.Second)
	if s.Len() != 1 || n.setCount() != 0 {
		t.Errorf("paused tween touched: len=%d sets=%d", s.Len(), n.setCount())
	}

	tw.Resume()
	ticks.Advance(2 * time.Second)
	waitIdle(t, s)
	if got := n.Position(); got != tenX {
		t.Errorf("position = %v", got)
	}
}

func TestSchedulerClear(t *testing.T) {
	ticks := NewManualTicks()
	s := NewScheduler(ticks)
	n := newFakeNode()
	completed := false
	tw := mustMove(t, n, WithOnComplete(func(Tweener) { completed = true }))
	s.Add(tw)

	s.Clear()
	ticks.Advance(time.Second)
	waitIdle(t, s)
	if completed || tw.IsComplete() {
		t.Errorf("clear cancelled the tween")
	}
	if n.setCount() != 0 {
		t.Errorf("cleared tween was still driven")
	}
}

func TestSchedulerAddFromCompletionHandler(t *testing.T) {
	ticks := NewManualTicks()
	s := NewScheduler(ticks)
	n := newFakeNode()

	follow, _ := NewScale(n, One, Vector3{2, 2, 2}, 1)
	first, _ := NewMove(n, Zero, tenX, 1, WithOnComplete(func(Tweener) { s.Add(follow) }))
	s.Add(first)

	ticks.Advance(time.Second)
	if s.Len() != 1 {
		t.Fatalf("len = %d", s.Len())
	}
	ticks.Advance(time.Second)
	waitIdle(t, s)
	if got := n.Scale(); got != (Vector3{2, 2, 2}) {
		t.Errorf("scale = %v", got)
	}
}

func TestSchedulerConcurrentAdd(t *testing.T) {
	ticks := NewManualTicks()
	s := NewScheduler(ticks)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tw, _ := NewMove(newFakeNode(), Zero, tenX, 1)
			s.Add(tw)
		}()
	}
	wg.Wait()
	if s.Len() != 20 {
		t.Fatalf("len = %d", s.Len())
	}

	ticks.Advance(time.Second)
	waitIdle(t, s)
}

func TestTickDirect(t *testing.T) {
	s := NewScheduler(NewManualTicks())
	n := newFakeNode()
	tw := mustMove(t, n)
	s.Add(tw)

	s.Tick(1)
	if got := n.Position(); got != (Vector3{5, 0, 0}) {
		t.Errorf("position = %v", got)
	}
	s.Clear()
}
