package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// TestRunningFloatMoments cross-checks the recurrences against the
// two-pass oracle on a fixed sample set.
func TestRunningFloatMoments(t *testing.T) {
	r := NewRunningFloat("moments")
	values := make([]float64, 0, 500)

	x := 0.5
	for i := 0; i < 500; i++ {
		// A deterministic pseudo-random walk; the values do not matter,
		// only that the oracle sees the same ones.
		x = 3.79*x*(1.0-x) + 0.01
		r.RecordFloat(x)
		values = append(values, x)
	}

	assertAlmostEqual(t, "mean vs oracle", r.Mean(), stat.Mean(values, nil))
	assertAlmostEqual(t, "variance vs oracle", r.Variance(), stat.Variance(values, nil))

	if r.Count() != 500 {
		t.Fatalf("the count must be 500; got %d", r.Count())
	}
}

// TestRunningFloatNonFinite checks that NaN and infinite samples are
// isolated from the summary statistics.
func TestRunningFloatNonFinite(t *testing.T) {
	r := NewRunningFloat("nonfinite")

	r.RecordFloat(1.0)
	r.RecordFloat(math.NaN())
	r.RecordFloat(math.Inf(1))
	r.RecordFloat(math.Inf(-1))
	r.RecordFloat(3.0)

	if r.Count() != 2 {
		t.Fatalf("non-finite samples must not be counted; got %d", r.Count())
	}

	if r.Nans() != 1 || r.Infinities() != 2 {
		t.Errorf("non-finite tallies are wrong: NaNs %d, infinities %d",
			r.Nans(), r.Infinities())
	}

	assertAlmostEqual(t, "mean", r.Mean(), 2.0)

	if r.MinFloat() != 1.0 || r.MaxFloat() != 3.0 {
		t.Errorf("the extremes must ignore infinities; got %e and %e",
			r.MinFloat(), r.MaxFloat())
	}
}

func TestRunningFloatEmptyAndClear(t *testing.T) {
	r := NewRunningFloat("empty")

	if r.Mean() != 0.0 || r.MinFloat() != 0.0 || r.MaxFloat() != 0.0 {
		t.Errorf("an empty accumulator must report zeros")
	}

	r.RecordFloat(-2.5)
	r.RecordFloat(math.NaN())
	r.Clear()

	if r.Count() != 0 || r.Nans() != 0 || r.Mean() != 0.0 {
		t.Errorf("clearing must empty the accumulator and the histogram")
	}
}

func TestRunningFloatExport(t *testing.T) {
	r := NewRunningFloat("source")

	for i := 1; i <= 100; i++ {
		r.RecordFloat(1.0 / float64(i))
	}

	export := r.ExportData()
	copied := NewFloatFromExport("copy", &export)

	assertAlmostEqual(t, "copied mean", copied.Mean(), r.Mean())
	assertAlmostEqual(t, "copied variance", copied.Variance(), r.Variance())

	if copied.MinFloat() != r.MinFloat() || copied.MaxFloat() != r.MaxFloat() {
		t.Errorf("the copy must keep the extremes")
	}
}

func TestRunningFloatKindPanics(t *testing.T) {
	r := NewRunningFloat("panics")

	mustPanic(t, "RecordInt", func() { r.RecordInt(1) })
	mustPanic(t, "RecordEvent", func() { r.RecordEvent() })
	mustPanic(t, "RecordTime", func() { r.RecordTime(1) })
}
