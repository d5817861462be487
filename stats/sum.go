package stats

import (
	"math"
	"sort"
)

// kbkSum performs a Kahan-Babushka-Klein summation. The running
// corrections recover bits lost to cancellation when addends differ
// widely in magnitude; see the Wikipedia page on Kahan summation.
func kbkSum(input []float64) float64 {
	sum := 0.0
	cs := 0.0
	ccs := 0.0

	for _, addend := range input {
		t := sum + addend

		var c float64
		if math.Abs(sum) >= math.Abs(addend) {
			c = (sum - t) + addend
		} else {
			c = (addend - t) + sum
		}

		sum = t
		t = cs + c

		var cc float64
		if math.Abs(cs) >= math.Abs(c) {
			cc = (cs - t) + c
		} else {
			cc = (c - t) + cs
		}

		cs = t
		ccs += cc
	}

	return sum + cs + ccs
}

// kbkSumSort sorts the addends by magnitude before summing, which
// further improves accuracy. The input slice is reordered.
func kbkSumSort(input []float64) float64 {
	sort.Slice(input, func(i, j int) bool {
		return math.Abs(input[i]) < math.Abs(input[j])
	})

	return kbkSum(input)
}
