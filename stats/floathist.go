package stats

import (
	"fmt"
	"math"

	"github.com/statkit/statkit/output"
)

// floatHistogramBuckets is the bucket count for float samples. Each
// bucket covers floatExponentsPerBucket consecutive biased exponents,
// so the 2048 possible exponents map onto 128 buckets.
const (
	floatHistogramBuckets   = 128
	floatExponentsPerBucket = 16
)

// biasedExponent extracts the biased IEEE-754 exponent of a finite
// sample. Zero and subnormals land in the lowest bucket range.
func biasedExponent(sample float64) int {
	bits := math.Float64bits(sample)
	return int((bits >> 52) & 0x7ff)
}

// floatBucketIndex maps a finite sample to its histogram bucket.
func floatBucketIndex(sample float64) int {
	return biasedExponent(sample) / floatExponentsPerBucket
}

// FloatHistogram counts float samples in buckets keyed by the binary
// exponent. NaN samples are counted separately and are excluded from
// the sample count; infinities land in the top bucket.
type FloatHistogram struct {
	Buckets    [floatHistogramBuckets]uint64
	Nans       uint64
	Infinities uint64
	Samples    uint64
}

// NewFloatHistogram creates an empty histogram.
func NewFloatHistogram() *FloatHistogram {
	return &FloatHistogram{}
}

// Record counts one sample in its bucket.
func (h *FloatHistogram) Record(sample float64) {
	if math.IsNaN(sample) {
		h.Nans++
		return
	}

	h.Samples++

	if math.IsInf(sample, 0) {
		h.Infinities++
		h.Buckets[floatHistogramBuckets-1]++
		return
	}

	h.Buckets[floatBucketIndex(sample)]++
}

// LogMode returns the approximate base-2 log of the most common
// bucket's smallest exponent.
func (h *FloatHistogram) LogMode() int {
	return h.modeBucket()*floatExponentsPerBucket - 1023
}

// ModeValue returns the approximate sample value of the most common
// bucket.
func (h *FloatHistogram) ModeValue() float64 {
	return math.Pow(2.0, float64(h.LogMode()))
}

func (h *FloatHistogram) modeBucket() int {
	mode := 0
	max := uint64(0)

	for i, count := range h.Buckets {
		if count > max {
			mode = i
			max = count
		}
	}

	return mode
}

// Add sums another histogram into this one elementwise.
func (h *FloatHistogram) Add(addend *FloatHistogram) {
	for i := range h.Buckets {
		h.Buckets[i] += addend.Buckets[i]
	}

	h.Nans += addend.Nans
	h.Infinities += addend.Infinities
	h.Samples += addend.Samples
}

// Equals reports whether both histograms hold identical counts.
func (h *FloatHistogram) Equals(other *FloatHistogram) bool {
	return *h == *other
}

// Clear resets all buckets and counters.
func (h *FloatHistogram) Clear() {
	*h = FloatHistogram{}
}

// Print renders the non-empty rows of the histogram, four buckets per
// row, labeled with the base-2 log of each row's first bucket.
func (h *FloatHistogram) Print(p output.Printer) {
	p.Print("  Float Histogram:  (size, unbiased exponent)")

	rows := 0
	for i := 0; i < len(h.Buckets); i += 4 {
		if h.Buckets[i]|h.Buckets[i+1]|h.Buckets[i+2]|h.Buckets[i+3] == 0 {
			continue
		}

		p.Print(fmt.Sprintf("  2^%5d:    %14s    %14s    %14s    %14s",
			i*floatExponentsPerBucket-1023,
			output.CommasU64(h.Buckets[i]),
			output.CommasU64(h.Buckets[i+1]),
			output.CommasU64(h.Buckets[i+2]),
			output.CommasU64(h.Buckets[i+3]),
		))
		rows++
	}

	if rows == 0 {
		p.Print("    all buckets are empty")
	}
}
