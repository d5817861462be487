package timer

import "testing"

// fakeClock is a scripted clock for deterministic timer tests.
type fakeClock struct {
	times []uint64
	next  int
	hz    uint64
}

func (c *fakeClock) GetTime() uint64 {
	v := c.times[c.next]
	if c.next < len(c.times)-1 {
		c.next++
	}
	return v
}

func (c *fakeClock) Hz() uint64 {
	return c.hz
}

// TestClockTimer checks interval arithmetic and restart behavior.
func TestClockTimer(t *testing.T) {
	clock := &fakeClock{times: []uint64{100, 250, 900, 900}, hz: 1000}
	timer := NewClockTimer(clock)

	if timer.Hz() != 1000 {
		t.Fatalf("the timer must report the clock frequency")
	}

	if got := timer.Finish(); got != 150 {
		t.Fatalf("the first interval must be 150 ticks; got %d", got)
	}

	// Finish restarts the interval, so the next reading is relative
	// to the previous one.
	if got := timer.Finish(); got != 650 {
		t.Fatalf("the second interval must be 650 ticks; got %d", got)
	}

	if got := timer.Finish(); got != 0 {
		t.Fatalf("an idle interval must be 0 ticks; got %d", got)
	}
}

// TestClockTimerRange checks that out-of-range intervals are rejected.
func TestClockTimerRange(t *testing.T) {
	clock := &fakeClock{times: []uint64{0, ^uint64(0)}, hz: 1}
	timer := NewClockTimer(clock)

	defer func() {
		if recover() == nil {
			t.Fatalf("an interval beyond the signed range must panic")
		}
	}()
	timer.Finish()
}

// TestDurationTimer sanity-checks the wall-clock timer.
func TestDurationTimer(t *testing.T) {
	timer := NewDurationTimer()

	if timer.Hz() != 1_000_000_000 {
		t.Fatalf("the duration timer must tick in nanoseconds")
	}

	if got := timer.Finish(); got < 0 {
		t.Fatalf("elapsed time must not be negative; got %d", got)
	}
}
