package stats

import (
	"math"
	"testing"
)

// TestPseudoLogIndex pins the bucket mapping on hand-computed cases.
func TestPseudoLogIndex(t *testing.T) {
	cases := []struct {
		value  int64
		bucket int
	}{
		{0, 0},
		{1, 0},
		{-1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{-4, 2},
		{-3, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{math.MaxInt64, 63},
		{math.MinInt64, 63},
		{math.MinInt64 + 1, 63},
	}

	for _, c := range cases {
		if got := PseudoLogIndex(c.value); got != c.bucket {
			t.Errorf("pseudo-log of %d must be %d; got %d", c.value, c.bucket, got)
		}
	}
}

func TestLogHistogramRecord(t *testing.T) {
	h := NewLogHistogram()

	h.Record(0)
	h.Record(1)
	h.Record(-1)
	h.Record(100)
	h.Record(-100)

	if h.Positive[0] != 2 {
		t.Errorf("bucket +0 must hold 2 samples; got %d", h.Positive[0])
	}

	if h.Negative[0] != 1 {
		t.Errorf("bucket -0 must hold 1 sample; got %d", h.Negative[0])
	}

	if h.Positive[7] != 1 || h.Negative[7] != 1 {
		t.Errorf("100 must land in bucket 7 on both sides; got +%d -%d",
			h.Positive[7], h.Negative[7])
	}
}

func TestLogHistogramMode(t *testing.T) {
	h := NewLogHistogram()

	if h.LogMode() != 0 {
		t.Fatalf("the mode of an empty histogram must be 0")
	}

	for i := 0; i < 3; i++ {
		h.Record(1000)
	}
	h.Record(-1000)

	if got := h.LogMode(); got != 10 {
		t.Fatalf("the mode must be 10; got %d", got)
	}

	for i := 0; i < 5; i++ {
		h.Record(-1000)
	}

	if got := h.LogMode(); got != -10 {
		t.Fatalf("the mode must flip to -10; got %d", got)
	}
}

func TestLogHistogramAddClear(t *testing.T) {
	a := NewLogHistogram()
	b := NewLogHistogram()

	for i := int64(1); i <= 64; i++ {
		a.Record(i)
		b.Record(-i)
	}

	a.Add(b)

	total := uint64(0)
	for i := range a.Negative {
		total += a.Negative[i] + a.Positive[i]
	}

	if total != 128 {
		t.Fatalf("the merged histogram must hold 128 samples; got %d", total)
	}

	a.Clear()

	if !a.Equals(NewLogHistogram()) {
		t.Fatalf("a cleared histogram must equal an empty one")
	}
}
