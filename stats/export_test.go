package stats

import (
	"testing"

	"gonum.org/v1/gonum/stat"
)

// TestSumExportsRegression merges two degenerate groups whose pooled
// variance is large even though each group's own variance is zero.
// Naive addition of central moments gets this wrong.
func TestSumExportsRegression(t *testing.T) {
	const n = 50

	low := NewRunningInteger("low")
	high := NewRunningInteger("high")

	for i := 0; i < n; i++ {
		low.RecordInt(0)
		high.RecordInt(100)
	}

	merged := SumExports([]Export{low.ExportData(), high.ExportData()})

	if merged.Count != 2*n {
		t.Fatalf("the merged count must be %d; got %d", 2*n, merged.Count)
	}

	assertAlmostEqual(t, "pooled mean", merged.Mean, 50.0)

	pooled := NewIntegerFromExport("pooled", &merged)

	// Sample variance of n zeros and n hundreds.
	want := 5000.0 * n / (2.0*n - 1.0)
	assertAlmostEqual(t, "pooled variance", pooled.Variance(), want)

	if pooled.MinInt() != 0 || pooled.MaxInt() != 100 {
		t.Errorf("the pooled extremes must be 0 and 100; got %d and %d",
			pooled.MinInt(), pooled.MaxInt())
	}
}

// TestSumExportsMatchesDirect splits one sample stream across three
// accumulators and checks that the merged result matches recording
// everything into one.
func TestSumExportsMatchesDirect(t *testing.T) {
	parts := []*RunningInteger{
		NewRunningInteger("a"),
		NewRunningInteger("b"),
		NewRunningInteger("c"),
	}
	values := make([]float64, 0, 300)

	for i := int64(0); i < 300; i++ {
		sample := (i*i*7)%1000 - 500
		parts[i%3].RecordInt(sample)
		values = append(values, float64(sample))
	}

	exports := make([]Export, 0, len(parts))
	for _, part := range parts {
		exports = append(exports, part.ExportData())
	}

	merged := SumExports(exports)
	pooled := NewIntegerFromExport("pooled", &merged)

	if pooled.Count() != 300 {
		t.Fatalf("the pooled count must be 300; got %d", pooled.Count())
	}

	assertAlmostEqual(t, "pooled mean vs oracle", pooled.Mean(), stat.Mean(values, nil))
	assertAlmostEqual(t, "pooled variance vs oracle", pooled.Variance(), stat.Variance(values, nil))

	if pooled.ToLogHistogram() == nil {
		t.Fatalf("the pooled statistic must carry the merged histogram")
	}

	total := uint64(0)
	hist := pooled.ToLogHistogram()
	for i := range hist.Negative {
		total += hist.Negative[i] + hist.Positive[i]
	}

	if total != 300 {
		t.Errorf("the merged histogram must hold 300 samples; got %d", total)
	}
}

// TestSumExportsEmptyGroups checks that groups with no samples do not
// disturb the pooled extremes.
func TestSumExportsEmptyGroups(t *testing.T) {
	empty := NewRunningInteger("empty")
	filled := NewRunningInteger("filled")

	filled.RecordInt(7)
	filled.RecordInt(9)

	merged := SumExports([]Export{empty.ExportData(), filled.ExportData()})

	if merged.Count != 2 {
		t.Fatalf("the merged count must be 2; got %d", merged.Count)
	}

	if merged.MinInt != 7 || merged.MaxInt != 9 {
		t.Errorf("empty groups must not contribute extremes; got %d and %d",
			merged.MinInt, merged.MaxInt)
	}

	assertAlmostEqual(t, "merged mean", merged.Mean, 8.0)
}

func TestSumExportsFloat(t *testing.T) {
	a := NewRunningFloat("a")
	b := NewRunningFloat("b")
	values := make([]float64, 0, 40)

	for i := 1; i <= 20; i++ {
		x := float64(i) * 0.25
		y := float64(i) * -0.5
		a.RecordFloat(x)
		b.RecordFloat(y)
		values = append(values, x, y)
	}

	merged := SumExports([]Export{a.ExportData(), b.ExportData()})
	pooled := NewFloatFromExport("pooled", &merged)

	assertAlmostEqual(t, "pooled mean vs oracle", pooled.Mean(), stat.Mean(values, nil))
	assertAlmostEqual(t, "pooled variance vs oracle", pooled.Variance(), stat.Variance(values, nil))

	if pooled.MinFloat() != -10.0 || pooled.MaxFloat() != 5.0 {
		t.Errorf("the pooled extremes must be -10 and 5; got %e and %e",
			pooled.MinFloat(), pooled.MaxFloat())
	}
}
