// Package median implements a private median measurement: a single
// selection over a fixed candidate set scored by closeness to the true
// rank, picked via the exponential-mechanism variant of
// report_noisy_top_k.
package median

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/measurements"
	"vsis-dpcore/metric"
	"vsis-dpcore/samplers"
)

// PrivateMedian returns a measurement over a dataset of float64 values
// that releases one of the supplied candidates, chosen via the
// exponential mechanism scored by how close each candidate's rank is to
// the dataset's midpoint. Each record can move any one candidate's rank
// by at most one position, so the measurement's privacy map is
// identical to the underlying top-1 selection's map under change-one
// sensitivity 1.
func PrivateMedian(src samplers.Source, candidates []float64, scale arith.Rat) (*core.Measurement[[]float64, float64], error) {
	if len(candidates) == 0 {
		return nil, errs.NewMakeMeasurement("private_median: candidates must be non-empty")
	}
	selector, err := measurements.ReportNoisyTopK(src, 1, scale, measurements.Max, measurements.ExponentialVariant, true)
	if err != nil {
		return nil, err
	}

	in := domain.NewVectorDomain(domain.NewAtomDomain[float64]())
	fn := core.NewFunction(func(data []float64) (float64, error) {
		utilities := make([]float64, len(candidates))
		for i, c := range candidates {
			utilities[i] = -rankGap(data, c)
		}
		selected, err := selector.Invoke(utilities)
		if err != nil {
			return 0, err
		}
		return candidates[selected[0]], nil
	})

	return core.NewMeasurement[[]float64, float64](
		in, metric.ChangeOneDistance{}, selector.OutputMeasure, fn, selector.Privacy,
	)
}

// rankGap scores candidate c by the absolute distance between the count
// of data points at or below c and the dataset midpoint - zero exactly
// at the true median, growing on either side.
func rankGap(data []float64, c float64) float64 {
	below := 0
	for _, x := range data {
		if x <= c {
			below++
		}
	}
	mid := float64(len(data)) / 2
	gap := float64(below) - mid
	if gap < 0 {
		gap = -gap
	}
	return gap
}
