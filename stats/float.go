package stats

import (
	"math"

	"github.com/statkit/statkit/output"
	"github.com/statkit/statkit/timer"
)

// RunningFloat accumulates floating-point samples in a single pass.
// NaN and infinite samples are tallied in the histogram but excluded
// from the count, the moments, and the extremes.
type RunningFloat struct {
	name  string
	title string

	count uint64

	mean    float64
	moment2 float64
	moment3 float64
	moment4 float64

	minFloat float64
	maxFloat float64

	histogram *FloatHistogram
}

var _ Statistic = (*RunningFloat)(nil)

// NewRunningFloat creates an empty float accumulator.
func NewRunningFloat(name string) *RunningFloat {
	return &RunningFloat{
		name:      name,
		title:     name,
		histogram: NewFloatHistogram(),
	}
}

// NewFloatFromExport reconstitutes an accumulator from a merged
// snapshot. The export must come from float accumulators.
func NewFloatFromExport(name string, export *Export) *RunningFloat {
	if export.FloatHist == nil {
		panic("statistics: the export does not carry a float histogram")
	}

	return &RunningFloat{
		name:      name,
		title:     name,
		count:     export.Count,
		mean:      export.Mean,
		moment2:   export.Moment2,
		moment3:   export.Moment3,
		moment4:   export.Moment4,
		minFloat:  export.MinFloat,
		maxFloat:  export.MaxFloat,
		histogram: export.FloatHist,
	}
}

// ExportData snapshots the accumulator for merging.
func (r *RunningFloat) ExportData() Export {
	histogram := *r.histogram

	return Export{
		Count:      r.count,
		Nans:       r.histogram.Nans,
		Infinities: r.histogram.Infinities,
		Mean:       r.mean,
		Moment2:    r.moment2,
		Moment3:    r.moment3,
		Moment4:    r.moment4,
		MinFloat:   r.minFloat,
		MaxFloat:   r.maxFloat,
		FloatHist:  &histogram,
	}
}

// RecordFloat records one sample.
func (r *RunningFloat) RecordFloat(sample float64) {
	// Non-finite samples go into the histogram counters only; feeding
	// them to the moment recurrence would poison every later query.
	if math.IsNaN(sample) || math.IsInf(sample, 0) {
		r.histogram.Record(sample)
		return
	}

	r.count++

	if r.count == 1 {
		r.mean = sample
		r.moment2 = 0.0
		r.moment3 = 0.0
		r.moment4 = 0.0
		r.minFloat = sample
		r.maxFloat = sample
	} else {
		distance := sample - r.mean
		r.mean += distance / float64(r.count)

		distance2 := sample - r.mean
		square := distance * distance2

		r.moment2 += square
		r.moment3 += square * math.Sqrt(math.Abs(square)) * sign(square)
		r.moment4 += square * square

		r.minFloat = minF64(r.minFloat, sample)
		r.maxFloat = maxF64(r.maxFloat, sample)
	}

	r.histogram.Record(sample)
}

func (r *RunningFloat) RecordInt(sample int64) {
	panic("RunningFloat.RecordInt: float statistics take float samples")
}

func (r *RunningFloat) RecordEvent() {
	panic("RunningFloat.RecordEvent: float statistics have no timer")
}

func (r *RunningFloat) RecordEventReport() int64 {
	panic("RunningFloat.RecordEventReport: float statistics have no timer")
}

func (r *RunningFloat) RecordTime(ticks int64) {
	panic("RunningFloat.RecordTime: float statistics have no timer")
}

func (r *RunningFloat) RecordInterval(t timer.Timer) {
	panic("RunningFloat.RecordInterval: float statistics have no timer")
}

func (r *RunningFloat) Name() string {
	return r.name
}

func (r *RunningFloat) Title() string {
	return r.title
}

func (r *RunningFloat) SetTitle(title string) {
	r.title = title
}

func (r *RunningFloat) Class() string {
	return "float"
}

func (r *RunningFloat) Count() uint64 {
	return r.count
}

// Nans returns the number of NaN samples seen.
func (r *RunningFloat) Nans() uint64 {
	return r.histogram.Nans
}

// Infinities returns the number of infinite samples seen.
func (r *RunningFloat) Infinities() uint64 {
	return r.histogram.Infinities
}

func (r *RunningFloat) Mean() float64 {
	if r.count == 0 {
		return 0.0
	}
	return r.mean
}

func (r *RunningFloat) Variance() float64 {
	return computeVariance(r.count, r.moment2)
}

func (r *RunningFloat) StdDev() float64 {
	return math.Sqrt(r.Variance())
}

func (r *RunningFloat) Skewness() float64 {
	return computeSkewness(r.count, r.moment2, r.moment3)
}

func (r *RunningFloat) Kurtosis() float64 {
	return computeKurtosis(r.count, r.moment2, r.moment4)
}

func (r *RunningFloat) LogMode() int {
	return r.histogram.LogMode()
}

func (r *RunningFloat) MinInt() int64 {
	return int64(r.MinFloat())
}

func (r *RunningFloat) MaxInt() int64 {
	return int64(r.MaxFloat())
}

func (r *RunningFloat) MinFloat() float64 {
	if r.count == 0 {
		return 0.0
	}
	return r.minFloat
}

func (r *RunningFloat) MaxFloat() float64 {
	if r.count == 0 {
		return 0.0
	}
	return r.maxFloat
}

// Clear resets the accumulator in place.
func (r *RunningFloat) Clear() {
	r.count = 0
	r.mean = 0.0
	r.moment2 = 0.0
	r.moment3 = 0.0
	r.moment4 = 0.0
	r.minFloat = 0.0
	r.maxFloat = 0.0
	r.histogram.Clear()
}

func (r *RunningFloat) Print(p output.Printer) {
	r.PrintTitled(p, r.title)
}

func (r *RunningFloat) PrintTitled(p output.Printer, title string) {
	r.printable().Print(p, title)
	r.histogram.Print(p)
}

func (r *RunningFloat) printable() *output.Printable {
	return &output.Printable{
		N:          r.count,
		Nans:       r.histogram.Nans,
		Infinities: r.histogram.Infinities,
		MinFloat:   r.MinFloat(),
		MaxFloat:   r.MaxFloat(),
		LogMode:    r.LogMode(),
		Mean:       r.Mean(),
		Variance:   r.Variance(),
		Skewness:   r.Skewness(),
		Kurtosis:   r.Kurtosis(),
		Float:      true,
	}
}

func (r *RunningFloat) ToLogHistogram() *LogHistogram {
	return nil
}

func (r *RunningFloat) ToFloatHistogram() *FloatHistogram {
	return r.histogram
}
