package stats

import (
	"testing"
)

// scriptedTimer hands out a fixed sequence of intervals.
type scriptedTimer struct {
	intervals []int64
	next      int
	hz        uint64
}

func (t *scriptedTimer) Start() {}

func (t *scriptedTimer) Finish() int64 {
	v := t.intervals[t.next]
	if t.next < len(t.intervals)-1 {
		t.next++
	}
	return v
}

func (t *scriptedTimer) Hz() uint64 {
	return t.hz
}

func TestRunningTimeEvents(t *testing.T) {
	clock := &scriptedTimer{intervals: []int64{100, 200, 300}, hz: 1000}
	r := NewRunningTime("events", clock)

	if r.Hz() != 1000 {
		t.Fatalf("the accumulator must report the timer frequency")
	}

	r.RecordEvent()

	if got := r.RecordEventReport(); got != 200 {
		t.Fatalf("the reported interval must be 200; got %d", got)
	}

	r.RecordEvent()

	if r.Count() != 3 {
		t.Fatalf("three events must be recorded; got %d", r.Count())
	}

	assertAlmostEqual(t, "mean interval", r.Mean(), 200.0)

	if r.MinInt() != 100 || r.MaxInt() != 300 {
		t.Errorf("the extremes must be 100 and 300; got %d and %d",
			r.MinInt(), r.MaxInt())
	}
}

func TestRunningTimeIntervals(t *testing.T) {
	clock := &scriptedTimer{intervals: []int64{50}, hz: 1000}
	r := NewRunningTime("intervals", &scriptedTimer{intervals: []int64{0}, hz: 1000})

	r.RecordTime(150)
	r.RecordInterval(clock)

	if r.Count() != 2 {
		t.Fatalf("two intervals must be recorded; got %d", r.Count())
	}

	assertAlmostEqual(t, "mean interval", r.Mean(), 100.0)
}

func TestRunningTimeRejections(t *testing.T) {
	r := NewRunningTime("rejections", &scriptedTimer{intervals: []int64{0}, hz: 1})

	mustPanic(t, "negative interval", func() { r.RecordTime(-1) })
	mustPanic(t, "RecordInt", func() { r.RecordInt(1) })
	mustPanic(t, "RecordFloat", func() { r.RecordFloat(1.0) })
}

func TestRunningTimeExport(t *testing.T) {
	clock := &scriptedTimer{intervals: []int64{10, 20, 30}, hz: 1_000_000}
	r := NewRunningTime("source", clock)

	r.RecordEvent()
	r.RecordEvent()
	r.RecordEvent()

	export := r.ExportData()
	copied := NewTimeFromExport("copy", &export, clock)

	if copied.Count() != 3 || copied.Hz() != 1_000_000 {
		t.Fatalf("the copy must keep the count and the frequency")
	}

	assertAlmostEqual(t, "copied mean", copied.Mean(), r.Mean())
}
