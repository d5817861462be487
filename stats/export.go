package stats

// Export is the kind-neutral snapshot of one accumulator, used to
// merge accumulators into a pooled one. The moments are central
// moments around Mean, not the derived estimators.
type Export struct {
	Count      uint64
	Nans       uint64
	Infinities uint64

	Mean    float64
	Moment2 float64
	Moment3 float64
	Moment4 float64

	MinInt int64
	MaxInt int64

	MinFloat float64
	MaxFloat float64

	LogHist   *LogHistogram
	FloatHist *FloatHistogram
}

// SumExports merges the snapshots of several accumulators into one.
// Per-group central moments are not additive, so each group is
// decentered into raw power sums, the power sums are combined with a
// compensated sum, and the pooled moments are recomputed around the
// pooled mean.
func SumExports(exports []Export) Export {
	merged := Export{}

	sums := make([]float64, 0, len(exports))
	squares := make([]float64, 0, len(exports))
	cubes := make([]float64, 0, len(exports))
	quads := make([]float64, 0, len(exports))

	first := true

	for i := range exports {
		export := &exports[i]

		merged.Count += export.Count
		merged.Nans += export.Nans
		merged.Infinities += export.Infinities

		if export.LogHist != nil {
			if merged.LogHist == nil {
				merged.LogHist = NewLogHistogram()
			}
			merged.LogHist.Add(export.LogHist)
		}

		if export.FloatHist != nil {
			if merged.FloatHist == nil {
				merged.FloatHist = NewFloatHistogram()
			}
			merged.FloatHist.Add(export.FloatHist)
		}

		// Groups with no samples contribute nothing to the moments or
		// the extremes.
		if export.Count == 0 {
			continue
		}

		group := recoverPowerSums(
			float64(export.Count),
			export.Mean,
			export.Moment2,
			export.Moment3,
			export.Moment4,
		)

		sums = append(sums, group.sum)
		squares = append(squares, group.squares)
		cubes = append(cubes, group.cubes)
		quads = append(quads, group.quads)

		if first {
			merged.MinInt = export.MinInt
			merged.MaxInt = export.MaxInt
			merged.MinFloat = export.MinFloat
			merged.MaxFloat = export.MaxFloat
			first = false
		} else {
			merged.MinInt = minI64(merged.MinInt, export.MinInt)
			merged.MaxInt = maxI64(merged.MaxInt, export.MaxInt)
			merged.MinFloat = minF64(merged.MinFloat, export.MinFloat)
			merged.MaxFloat = maxF64(merged.MaxFloat, export.MaxFloat)
		}
	}

	pooled := powerSums{
		n:       float64(merged.Count),
		sum:     kbkSumSort(sums),
		squares: kbkSumSort(squares),
		cubes:   kbkSumSort(cubes),
		quads:   kbkSumSort(quads),
	}

	merged.Mean, merged.Moment2, merged.Moment3, merged.Moment4 = pooledMoments(pooled)
	return merged
}
