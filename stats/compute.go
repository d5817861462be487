package stats

import "math"

// The estimator corrections below are the standard bias-corrected
// sample formulas; see brownmath.com for the derivations.

// computeVariance returns the bias-corrected sample variance.
func computeVariance(count uint64, moment2 float64) float64 {
	if count < 2 {
		return 0.0
	}

	n := float64(count)
	return moment2 / (n - 1.0)
}

// computeSkewness returns the bias-corrected sample skewness.
func computeSkewness(count uint64, moment2 float64, moment3 float64) float64 {
	if count < 3 || moment2 <= 0.0 {
		return 0.0
	}

	n := float64(count)
	m2 := moment2 / n
	m3 := moment3 / n

	skewness := m3 / math.Pow(m2, 1.5)
	correction := math.Sqrt(n*(n-1.0)) / (n - 2.0)

	return skewness * correction
}

// computeKurtosis returns the bias-corrected sample excess kurtosis.
func computeKurtosis(count uint64, moment2 float64, moment4 float64) float64 {
	if count < 4 || moment2 <= 0.0 || moment4 <= 0.0 {
		return 0.0
	}

	n := float64(count)
	kurtosis := moment4/(moment2*moment2/n) - 3.0
	correction := (n - 1.0) / ((n - 2.0) * (n - 3.0))

	return correction * ((n+1.0)*kurtosis + 6.0)
}

// powerSums holds the raw power sums Σx, Σx², Σx³, Σx⁴ of one group
// of samples. Per-group central moments cannot be summed directly, so
// a merge decenters each group to power sums, sums those, and
// recenters around the pooled mean.
type powerSums struct {
	n       float64
	sum     float64
	squares float64
	cubes   float64
	quads   float64
}

// recoverPowerSums converts the central moments of one group back to
// its raw power sums. The identities come from the binomial expansion
// of Σ(x-mean)^k.
func recoverPowerSums(n float64, mean float64, moment2 float64, moment3 float64, moment4 float64) powerSums {
	sum := n * mean

	mean2 := mean * mean
	mean3 := mean2 * mean
	mean4 := mean2 * mean2

	squares := moment2 + 2.0*mean*sum - n*mean2

	cubes := moment3 +
		3.0*mean*squares -
		3.0*mean2*sum +
		n*mean3

	quads := moment4 +
		4.0*mean*cubes -
		6.0*mean2*squares +
		4.0*mean3*sum -
		n*mean4

	return powerSums{n: n, sum: sum, squares: squares, cubes: cubes, quads: quads}
}

// pooledMoments recomputes the mean and central moments of the pooled
// sample set from combined power sums.
func pooledMoments(p powerSums) (mean, moment2, moment3, moment4 float64) {
	if p.n == 0 {
		return 0.0, 0.0, 0.0, 0.0
	}

	mean = p.sum / p.n

	mean2 := mean * mean
	mean3 := mean2 * mean
	mean4 := mean2 * mean2

	moment2 = p.squares -
		2.0*mean*p.sum +
		p.n*mean2

	moment3 = p.cubes -
		3.0*mean*p.squares +
		3.0*mean2*p.sum -
		p.n*mean3

	moment4 = p.quads -
		4.0*mean*p.cubes +
		6.0*mean2*p.squares -
		4.0*mean3*p.sum +
		p.n*mean4

	return mean, moment2, moment3, moment4
}
