package mover

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time      { return c.t }
func (c *fakeClock) Add(d time.Duration) { c.t = c.t.Add(d) }

func TestAnimator_TicksEveryInterval(t *testing.T) {
	clock := newFakeClock()
	a := NewAnimatorWithClock(50*time.Millisecond, clock.Now)

	ticks := 0
	a.Start(func() { ticks++ })

	clock.Add(49 * time.Millisecond)
	a.Advance()
	if ticks != 0 {
		t.Fatalf("ticks before interval = %d, want 0", ticks)
	}

	clock.Add(time.Millisecond)
	a.Advance()
	if ticks != 1 {
		t.Fatalf("ticks at interval = %d, want 1", ticks)
	}

	for i := 0; i < 4; i++ {
		clock.Add(50 * time.Millisecond)
		a.Advance()
	}
	if ticks != 5 {
		t.Errorf("ticks after 5 intervals = %d, want 5", ticks)
	}
}

func TestAnimator_StartTwiceKeepsOneSchedule(t *testing.T) {
	clock := newFakeClock()
	a := NewAnimatorWithClock(50*time.Millisecond, clock.Now)

	first, second := 0, 0
	a.Start(func() { first++ })
	clock.Add(20 * time.Millisecond)
	a.Start(func() { second++ })

	clock.Add(30 * time.Millisecond)
	a.Advance()
	a.Advance()

	if first != 1 {
		t.Errorf("first tick count = %d, want 1", first)
	}
	if second != 0 {
		t.Errorf("second tick count = %d, want 0", second)
	}
}

func TestAnimator_StopIsIdempotent(t *testing.T) {
	clock := newFakeClock()
	a := NewAnimatorWithClock(50*time.Millisecond, clock.Now)

	a.Stop()
	if a.Running() {
		t.Fatal("Running() after Stop on idle animator = true")
	}

	ticks := 0
	a.Start(func() { ticks++ })
	a.Stop()
	a.Stop()

	clock.Add(time.Second)
	if a.Advance() {
		t.Error("Advance() after Stop fired a tick")
	}
	if ticks != 0 || a.Running() {
		t.Errorf("ticks = %d running = %v, want 0 false", ticks, a.Running())
	}
}

func TestAnimator_StopFromTick(t *testing.T) {
	clock := newFakeClock()
	a := NewAnimatorWithClock(50*time.Millisecond, clock.Now)

	ticks := 0
	a.Start(func() {
		ticks++
		if ticks == 3 {
			a.Stop()
		}
	})

	for i := 0; i < 10; i++ {
		clock.Add(50 * time.Millisecond)
		a.Advance()
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}

	a.Start(func() { ticks += 10 })
	clock.Add(50 * time.Millisecond)
	a.Advance()
	if ticks != 13 {
		t.Errorf("ticks after restart = %d, want 13", ticks)
	}
}

func TestAnimator_LagDoesNotBurst(t *testing.T) {
	clock := newFakeClock()
	a := NewAnimatorWithClock(50*time.Millisecond, clock.Now)

	ticks := 0
	a.Start(func() { ticks++ })

	clock.Add(time.Second)
	for a.Advance() {
	}
	if ticks != 1 {
		t.Errorf("ticks after long stall = %d, want 1", ticks)
	}

	clock.Add(50 * time.Millisecond)
	a.Advance()
	if ticks != 2 {
		t.Errorf("ticks one interval after stall = %d, want 2", ticks)
	}
}
