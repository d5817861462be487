// Package timer provides the elapsed-time sources consumed by the
// time statistics. A timer is read exactly once per recorded event.
package timer

import (
	"fmt"
	"math"
	"time"
)

// Timer measures elapsed intervals in ticks of a fixed frequency.
type Timer interface {
	// Start starts or restarts the interval.
	Start()

	// Finish returns the ticks elapsed since the last Start or
	// Finish call and starts the next interval.
	Finish() int64

	// Hz returns the tick frequency.
	Hz() uint64
}

// DurationTimer measures wall-clock time in nanoseconds.
type DurationTimer struct {
	start time.Time
}

// NewDurationTimer creates a started wall-clock timer.
func NewDurationTimer() *DurationTimer {
	return &DurationTimer{start: time.Now()}
}

func (t *DurationTimer) Start() {
	t.start = time.Now()
}

func (t *DurationTimer) Finish() int64 {
	now := time.Now()
	elapsed := now.Sub(t.start).Nanoseconds()
	t.start = now
	return elapsed
}

func (t *DurationTimer) Hz() uint64 {
	return 1_000_000_000
}

// SimpleClock abstracts an external monotonic clock so applications
// can supply cycle counters or simulated time.
type SimpleClock interface {
	// GetTime returns the current clock value in ticks.
	GetTime() uint64

	// Hz returns the tick frequency.
	Hz() uint64
}

// ClockTimer adapts a SimpleClock to the Timer interface.
type ClockTimer struct {
	start uint64
	clock SimpleClock
}

// NewClockTimer creates a started timer over the given clock.
func NewClockTimer(clock SimpleClock) *ClockTimer {
	return &ClockTimer{start: clock.GetTime(), clock: clock}
}

func (t *ClockTimer) Start() {
	t.start = t.clock.GetTime()
}

func (t *ClockTimer) Finish() int64 {
	now := t.clock.GetTime()
	elapsed := now - t.start
	t.start = now

	// Clock values outside the signed range cannot be recorded.
	if elapsed > math.MaxInt64 {
		panic(fmt.Sprintf("timer: the elapsed time %d exceeds the representable signed range", elapsed))
	}

	return int64(elapsed)
}

func (t *ClockTimer) Hz() uint64 {
	return t.clock.Hz()
}
