package stats

import (
	"github.com/statkit/statkit/output"
	"github.com/statkit/statkit/timer"
)

// RunningTime accumulates elapsed intervals measured in ticks. It is
// an integer accumulator paired with a timer, so events can be
// recorded without the caller reading the clock.
type RunningTime struct {
	integer *RunningInteger
	timer   timer.Timer
	hz      uint64
}

var _ Statistic = (*RunningTime)(nil)

// NewRunningTime creates an empty time accumulator around the given
// timer.
func NewRunningTime(name string, t timer.Timer) *RunningTime {
	return &RunningTime{
		integer: NewRunningInteger(name),
		timer:   t,
		hz:      t.Hz(),
	}
}

// NewTimeFromExport reconstitutes an accumulator from a merged
// snapshot of time accumulators sharing the timer's frequency.
func NewTimeFromExport(name string, export *Export, t timer.Timer) *RunningTime {
	return &RunningTime{
		integer: NewIntegerFromExport(name, export),
		timer:   t,
		hz:      t.Hz(),
	}
}

// ExportData snapshots the accumulator for merging.
func (r *RunningTime) ExportData() Export {
	return r.integer.ExportData()
}

// Hz returns the tick frequency of the underlying timer.
func (r *RunningTime) Hz() uint64 {
	return r.hz
}

// RecordEvent reads the accumulator's timer once and records the
// interval.
func (r *RunningTime) RecordEvent() {
	r.integer.RecordInt(r.timer.Finish())
}

// RecordEventReport records an event and returns the ticks recorded.
func (r *RunningTime) RecordEventReport() int64 {
	ticks := r.timer.Finish()
	r.integer.RecordInt(ticks)
	return ticks
}

// RecordTime records an interval measured by the caller.
func (r *RunningTime) RecordTime(ticks int64) {
	if ticks < 0 {
		panic("RunningTime.RecordTime: intervals must not be negative")
	}
	r.integer.RecordInt(ticks)
}

// RecordInterval reads the given timer once and records the interval.
func (r *RunningTime) RecordInterval(t timer.Timer) {
	r.RecordTime(t.Finish())
}

func (r *RunningTime) RecordInt(sample int64) {
	panic("RunningTime.RecordInt: time statistics take timer intervals")
}

func (r *RunningTime) RecordFloat(sample float64) {
	panic("RunningTime.RecordFloat: time statistics take timer intervals")
}

func (r *RunningTime) Name() string {
	return r.integer.Name()
}

func (r *RunningTime) Title() string {
	return r.integer.Title()
}

func (r *RunningTime) SetTitle(title string) {
	r.integer.SetTitle(title)
}

func (r *RunningTime) Class() string {
	return "time"
}

func (r *RunningTime) Count() uint64 {
	return r.integer.Count()
}

func (r *RunningTime) Mean() float64 {
	return r.integer.Mean()
}

func (r *RunningTime) Variance() float64 {
	return r.integer.Variance()
}

func (r *RunningTime) StdDev() float64 {
	return r.integer.StdDev()
}

func (r *RunningTime) Skewness() float64 {
	return r.integer.Skewness()
}

func (r *RunningTime) Kurtosis() float64 {
	return r.integer.Kurtosis()
}

func (r *RunningTime) LogMode() int {
	return r.integer.LogMode()
}

func (r *RunningTime) MinInt() int64 {
	return r.integer.MinInt()
}

func (r *RunningTime) MaxInt() int64 {
	return r.integer.MaxInt()
}

func (r *RunningTime) MinFloat() float64 {
	return r.integer.MinFloat()
}

func (r *RunningTime) MaxFloat() float64 {
	return r.integer.MaxFloat()
}

func (r *RunningTime) Clear() {
	r.integer.Clear()
}

func (r *RunningTime) Print(p output.Printer) {
	r.PrintTitled(p, r.Title())
}

func (r *RunningTime) PrintTitled(p output.Printer, title string) {
	printable := r.integer.printable()
	printable.TicksPerSecond = r.hz
	printable.Print(p, title)
	r.integer.histogram.Print(p)
}

func (r *RunningTime) ToLogHistogram() *LogHistogram {
	return r.integer.ToLogHistogram()
}

func (r *RunningTime) ToFloatHistogram() *FloatHistogram {
	return nil
}
