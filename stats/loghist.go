package stats

import (
	"fmt"
	"math"

	"github.com/statkit/statkit/output"
)

// logHistogramBuckets is the bucket count of one sign array; one
// bucket per possible pseudo-log of an int64.
const logHistogramBuckets = 64

// PseudoLogIndex returns the histogram bucket for an integer sample.
// The pseudo-log of a positive value is its base-2 log rounded up to
// an integer; the pseudo-log of 0 is 0; MinInt64 maps to the last
// bucket. The sign is ignored here, as callers keep separate arrays
// for negative and positive values.
func PseudoLogIndex(value int64) int {
	if value == math.MinInt64 {
		return logHistogramBuckets - 1
	}

	var absolute uint64
	if value < 0 {
		absolute = uint64(-value)
	} else {
		absolute = uint64(value)
	}

	place := uint64(1)
	log := 0

	for place < absolute && log < logHistogramBuckets-1 {
		place *= 2
		log++
	}

	return log
}

// LogHistogram counts integer samples in signed pseudo-log buckets.
type LogHistogram struct {
	Negative [logHistogramBuckets]uint64
	Positive [logHistogramBuckets]uint64
}

// NewLogHistogram creates an empty histogram.
func NewLogHistogram() *LogHistogram {
	return &LogHistogram{}
}

// Record counts one sample in its bucket.
func (h *LogHistogram) Record(sample int64) {
	if sample < 0 {
		h.Negative[PseudoLogIndex(sample)]++
	} else {
		h.Positive[PseudoLogIndex(sample)]++
	}
}

// LogMode returns the signed pseudo-log of the most common bucket.
func (h *LogHistogram) LogMode() int {
	mode := 0
	max := uint64(0)

	for i, count := range h.Negative {
		if count > max {
			mode = -i
			max = count
		}
	}

	for i, count := range h.Positive {
		if count > max {
			mode = i
			max = count
		}
	}

	return mode
}

// Add sums another histogram into this one elementwise.
func (h *LogHistogram) Add(addend *LogHistogram) {
	for i := range h.Negative {
		h.Negative[i] += addend.Negative[i]
	}
	for i := range h.Positive {
		h.Positive[i] += addend.Positive[i]
	}
}

// Equals reports whether both histograms hold identical counts.
func (h *LogHistogram) Equals(other *LogHistogram) bool {
	return *h == *other
}

// Clear resets all buckets.
func (h *LogHistogram) Clear() {
	*h = LogHistogram{}
}

// Print renders the non-empty rows of the histogram, negative buckets
// first, four buckets per row.
func (h *LogHistogram) Print(p output.Printer) {
	p.Print("  Log Histogram")
	h.printNegative(p)
	p.Print("  -----------------------")
	h.printPositive(p)
}

func (h *LogHistogram) printNegative(p output.Printer) {
	// Find the non-zero bucket with the highest index; rows above it
	// are all zero and are skipped.
	i := len(h.Negative) - 1
	for i > 0 && h.Negative[i] == 0 {
		i--
	}

	if i == 0 && h.Negative[0] == 0 {
		return
	}

	start := (i/4)*4 + 3
	for row := start; row >= 3; row -= 4 {
		p.Print(fmt.Sprintf("  %4d:    %14s    %14s    %14s    %14s",
			-(row - 3),
			output.CommasU64(h.Negative[row-3]),
			output.CommasU64(h.Negative[row-2]),
			output.CommasU64(h.Negative[row-1]),
			output.CommasU64(h.Negative[row]),
		))
	}
}

func (h *LogHistogram) printPositive(p output.Printer) {
	last := len(h.Positive) - 1
	for last > 0 && h.Positive[last] == 0 {
		last--
	}

	for i := 0; i <= last; i += 4 {
		p.Print(fmt.Sprintf("  %4d:    %14s    %14s    %14s    %14s",
			i,
			output.CommasU64(h.Positive[i]),
			output.CommasU64(h.Positive[i+1]),
			output.CommasU64(h.Positive[i+2]),
			output.CommasU64(h.Positive[i+3]),
		))
	}
}
