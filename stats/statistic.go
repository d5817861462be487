// Package stats provides online statistics accumulators. Each
// accumulator ingests scalar samples of one kind (integer, float, or
// elapsed time) and maintains count, extremes, the first four central
// moments, and a log-scale histogram without retaining the samples.
//
// Accumulators are not safe for concurrent use; the caller serializes
// access, which keeps the recording path free of locks and I/O.
package stats

import (
	"github.com/statkit/statkit/output"
	"github.com/statkit/statkit/timer"
)

// Statistic is the kind-agnostic surface of an accumulator. A given
// kind supports only its matching recording calls; the rest panic, as
// silently coercing a sample would corrupt the moment computation.
type Statistic interface {
	// RecordInt records an integer sample.
	RecordInt(sample int64)

	// RecordFloat records a floating-point sample.
	RecordFloat(sample float64)

	// RecordEvent records an event, reading the accumulator's own
	// elapsed-time source once.
	RecordEvent()

	// RecordEventReport records an event and returns the tick value
	// recorded.
	RecordEventReport() int64

	// RecordTime records an elapsed interval in ticks.
	RecordTime(ticks int64)

	// RecordInterval reads the given timer once and records the
	// elapsed interval.
	RecordInterval(t timer.Timer)

	// Name returns the name given at creation.
	Name() string

	// Title returns the title used when printing.
	Title() string

	// SetTitle replaces the printing title.
	SetTitle(title string)

	// Class identifies the statistic kind ("integer", "float",
	// "time", or "counter").
	Class() string

	// Count returns the number of samples recorded.
	Count() uint64

	// Mean returns the sample mean, or 0 before any sample.
	Mean() float64

	// Variance returns the bias-corrected sample variance, or 0 for
	// fewer than two samples.
	Variance() float64

	// StdDev returns the sample standard deviation.
	StdDev() float64

	// Skewness returns the bias-corrected sample skewness, or 0 for
	// fewer than three samples or zero variance.
	Skewness() float64

	// Kurtosis returns the bias-corrected sample excess kurtosis, or
	// 0 for fewer than four samples or zero variance.
	Kurtosis() float64

	// LogMode returns the most common histogram bucket.
	LogMode() int

	// MinInt and MaxInt return the integer extremes, or 0 before any
	// sample. MinFloat and MaxFloat are the float equivalents.
	MinInt() int64
	MaxInt() int64
	MinFloat() float64
	MaxFloat() float64

	// Clear resets the accumulator to its created state in place.
	Clear()

	// Print renders the summary under the statistic's own title;
	// PrintTitled overrides the title.
	Print(p output.Printer)
	PrintTitled(p output.Printer, title string)

	// ToLogHistogram and ToFloatHistogram return the underlying
	// histogram handle, or nil for the other kind. The handles are
	// read-only for callers.
	ToLogHistogram() *LogHistogram
	ToFloatHistogram() *FloatHistogram
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minF64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
