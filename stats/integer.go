package stats

import (
	"math"

	"github.com/statkit/statkit/output"
	"github.com/statkit/statkit/timer"
)

// RunningInteger accumulates integer samples in a single pass. It
// keeps the count, the extremes, the first four central moments in
// Welford style, and a pseudo-log histogram.
type RunningInteger struct {
	name  string
	title string

	count uint64

	mean    float64
	moment2 float64
	moment3 float64
	moment4 float64

	minInt int64
	maxInt int64

	histogram *LogHistogram
}

var _ Statistic = (*RunningInteger)(nil)

// NewRunningInteger creates an empty integer accumulator.
func NewRunningInteger(name string) *RunningInteger {
	return &RunningInteger{
		name:      name,
		title:     name,
		histogram: NewLogHistogram(),
	}
}

// NewIntegerFromExport reconstitutes an accumulator from a merged
// snapshot. The export must come from integer accumulators.
func NewIntegerFromExport(name string, export *Export) *RunningInteger {
	if export.LogHist == nil {
		panic("statistics: the export does not carry an integer histogram")
	}

	return &RunningInteger{
		name:      name,
		title:     name,
		count:     export.Count,
		mean:      export.Mean,
		moment2:   export.Moment2,
		moment3:   export.Moment3,
		moment4:   export.Moment4,
		minInt:    export.MinInt,
		maxInt:    export.MaxInt,
		histogram: export.LogHist,
	}
}

// ExportData snapshots the accumulator for merging.
func (r *RunningInteger) ExportData() Export {
	histogram := *r.histogram

	return Export{
		Count:   r.count,
		Mean:    r.mean,
		Moment2: r.moment2,
		Moment3: r.moment3,
		Moment4: r.moment4,
		MinInt:  r.minInt,
		MaxInt:  r.maxInt,
		LogHist: &histogram,
	}
}

// RecordInt records one sample.
func (r *RunningInteger) RecordInt(sample int64) {
	value := float64(sample)
	r.count++

	if r.count == 1 {
		r.mean = value
		r.moment2 = 0.0
		r.moment3 = 0.0
		r.moment4 = 0.0
		r.minInt = sample
		r.maxInt = sample
	} else {
		distance := value - r.mean
		r.mean += distance / float64(r.count)

		distance2 := value - r.mean
		square := distance * distance2

		r.moment2 += square
		r.moment3 += square * math.Sqrt(math.Abs(square)) * sign(square)
		r.moment4 += square * square

		r.minInt = minI64(r.minInt, sample)
		r.maxInt = maxI64(r.maxInt, sample)
	}

	r.histogram.Record(sample)
}

func sign(value float64) float64 {
	if value < 0.0 {
		return -1.0
	}
	return 1.0
}

func (r *RunningInteger) RecordFloat(sample float64) {
	panic("RunningInteger.RecordFloat: integer statistics take integer samples")
}

func (r *RunningInteger) RecordEvent() {
	panic("RunningInteger.RecordEvent: integer statistics have no timer")
}

func (r *RunningInteger) RecordEventReport() int64 {
	panic("RunningInteger.RecordEventReport: integer statistics have no timer")
}

func (r *RunningInteger) RecordTime(ticks int64) {
	panic("RunningInteger.RecordTime: integer statistics have no timer")
}

func (r *RunningInteger) RecordInterval(t timer.Timer) {
	panic("RunningInteger.RecordInterval: integer statistics have no timer")
}

func (r *RunningInteger) Name() string {
	return r.name
}

func (r *RunningInteger) Title() string {
	return r.title
}

func (r *RunningInteger) SetTitle(title string) {
	r.title = title
}

func (r *RunningInteger) Class() string {
	return "integer"
}

func (r *RunningInteger) Count() uint64 {
	return r.count
}

func (r *RunningInteger) Mean() float64 {
	if r.count == 0 {
		return 0.0
	}
	return r.mean
}

func (r *RunningInteger) Variance() float64 {
	return computeVariance(r.count, r.moment2)
}

func (r *RunningInteger) StdDev() float64 {
	return math.Sqrt(r.Variance())
}

func (r *RunningInteger) Skewness() float64 {
	return computeSkewness(r.count, r.moment2, r.moment3)
}

func (r *RunningInteger) Kurtosis() float64 {
	return computeKurtosis(r.count, r.moment2, r.moment4)
}

func (r *RunningInteger) LogMode() int {
	return r.histogram.LogMode()
}

func (r *RunningInteger) MinInt() int64 {
	if r.count == 0 {
		return 0
	}
	return r.minInt
}

func (r *RunningInteger) MaxInt() int64 {
	if r.count == 0 {
		return 0
	}
	return r.maxInt
}

func (r *RunningInteger) MinFloat() float64 {
	return float64(r.MinInt())
}

func (r *RunningInteger) MaxFloat() float64 {
	return float64(r.MaxInt())
}

// Clear resets the accumulator in place.
func (r *RunningInteger) Clear() {
	r.count = 0
	r.mean = 0.0
	r.moment2 = 0.0
	r.moment3 = 0.0
	r.moment4 = 0.0
	r.minInt = 0
	r.maxInt = 0
	r.histogram.Clear()
}

func (r *RunningInteger) Print(p output.Printer) {
	r.PrintTitled(p, r.title)
}

func (r *RunningInteger) PrintTitled(p output.Printer, title string) {
	r.printable().Print(p, title)
	r.histogram.Print(p)
}

func (r *RunningInteger) printable() *output.Printable {
	return &output.Printable{
		N:        r.count,
		MinInt:   r.MinInt(),
		MaxInt:   r.MaxInt(),
		LogMode:  r.LogMode(),
		Mean:     r.Mean(),
		Variance: r.Variance(),
		Skewness: r.Skewness(),
		Kurtosis: r.Kurtosis(),
	}
}

func (r *RunningInteger) ToLogHistogram() *LogHistogram {
	return r.histogram
}

func (r *RunningInteger) ToFloatHistogram() *FloatHistogram {
	return nil
}
