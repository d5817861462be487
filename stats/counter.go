package stats

import (
	"fmt"

	"github.com/statkit/statkit/output"
	"github.com/statkit/statkit/timer"
)

// Counter is a plain event counter wearing the Statistic interface so
// it can live in the same collections as the accumulators. It keeps no
// moments and no histogram.
type Counter struct {
	name  string
	title string
	count uint64
}

var _ Statistic = (*Counter)(nil)

// NewCounter creates a counter at zero.
func NewCounter(name string) *Counter {
	return &Counter{name: name, title: name}
}

// RecordInt adds the sample to the count.
func (c *Counter) RecordInt(sample int64) {
	c.count += uint64(sample)
}

// RecordEvent adds one.
func (c *Counter) RecordEvent() {
	c.count++
}

func (c *Counter) RecordEventReport() int64 {
	panic("Counter.RecordEventReport: counters do not report values")
}

func (c *Counter) RecordFloat(sample float64) {
	panic("Counter.RecordFloat: counters take integer increments")
}

func (c *Counter) RecordTime(ticks int64) {
	panic("Counter.RecordTime: counters have no timer")
}

func (c *Counter) RecordInterval(t timer.Timer) {
	panic("Counter.RecordInterval: counters have no timer")
}

func (c *Counter) Name() string {
	return c.name
}

func (c *Counter) Title() string {
	return c.title
}

func (c *Counter) SetTitle(title string) {
	c.title = title
}

func (c *Counter) Class() string {
	return "counter"
}

func (c *Counter) Count() uint64 {
	return c.count
}

func (c *Counter) Mean() float64 {
	return 0.0
}

func (c *Counter) Variance() float64 {
	return 0.0
}

func (c *Counter) StdDev() float64 {
	return 0.0
}

func (c *Counter) Skewness() float64 {
	return 0.0
}

func (c *Counter) Kurtosis() float64 {
	return 0.0
}

func (c *Counter) LogMode() int {
	return 0
}

func (c *Counter) MinInt() int64 {
	return 0
}

func (c *Counter) MaxInt() int64 {
	return 0
}

func (c *Counter) MinFloat() float64 {
	return 0.0
}

func (c *Counter) MaxFloat() float64 {
	return 0.0
}

func (c *Counter) Clear() {
	c.count = 0
}

func (c *Counter) Print(p output.Printer) {
	c.PrintTitled(p, c.title)
}

func (c *Counter) PrintTitled(p output.Printer, title string) {
	p.Print(title)
	p.Print(fmt.Sprintf("    Count     %14s", output.CommasU64(c.count)))
}

func (c *Counter) ToLogHistogram() *LogHistogram {
	return nil
}

func (c *Counter) ToFloatHistogram() *FloatHistogram {
	return nil
}
