package mover

import "time"

// Animator fires a tick at a fixed period while running. It owns no
// goroutine or OS timer: the frame loop calls Advance and the animator
// compares the clock against its single scheduled fire time.
type Animator struct {
	interval time.Duration
	now      func() time.Time

	running bool
	next    time.Time
	tick    func()
}

func NewAnimator(interval time.Duration) *Animator {
	return NewAnimatorWithClock(interval, time.Now)
}

// NewAnimatorWithClock is NewAnimator with an injected clock.
func NewAnimatorWithClock(interval time.Duration, now func() time.Time) *Animator {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Animator{interval: interval, now: now}
}

func (a *Animator) Running() bool { return a.running }

// Start schedules tick every interval. Calling Start while running keeps
// the existing schedule and tick.
func (a *Animator) Start(tick func()) {
	if a.running {
		return
	}
	a.running = true
	a.tick = tick
	a.next = a.now().Add(a.interval)
}

// Stop cancels the schedule. Safe to call when not running.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.tick = nil
	a.next = time.Time{}
}

// Advance fires at most one tick if the scheduled time has passed. A
// schedule that fell behind by more than one period is re-anchored to now
// instead of bursting missed ticks.
func (a *Animator) Advance() bool {
	if !a.running {
		return false
	}
	t := a.now()
	if t.Before(a.next) {
		return false
	}
	a.next = a.next.Add(a.interval)
	if a.next.Before(t) {
		a.next = t.Add(a.interval)
	}
	a.tick()
	return true
}
