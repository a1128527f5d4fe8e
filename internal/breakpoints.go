package internal

import (
	"fmt"
	"math"
	"sort"
	"time"

	"famafrench/internal/domain"
)

// quantile interpolates linearly between order statistics: target
// index p*(n-1). This is the convention published breakpoint tables
// follow; gonum's stat.Quantile interpolates the empirical CDF
// (index p*n) and lands every cutoff one half-step low.
func quantile(p float64, sorted []float64) float64 {
	h := p * float64(len(sorted)-1)
	i := int(math.Floor(h))
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// ComputeBreakpoints calculates the interior percentile cutoffs of one
// sort dimension for every period in the panel. Cutoffs come from the
// NYSE reference subset with a non-missing characteristic, with linear
// interpolation between order statistics.
func ComputeBreakpoints(obs []domain.Observation, dim domain.SortDimension) (map[time.Time]domain.Breakpoints, error) {
	nyseValues := map[time.Time][]float64{}
	for _, o := range obs {
		if !o.NYSE {
			continue
		}
		v := o.CharacValue(dim.Charac)
		if v == nil {
			continue
		}
		nyseValues[o.Date] = append(nyseValues[o.Date], *v)
	}

	out := map[time.Time]domain.Breakpoints{}
	for date, values := range nyseValues {
		if len(values) < dim.NumBuckets() {
			// not enough reference firms to cut this period
			continue
		}
		sort.Float64s(values)

		cuts := make(domain.Breakpoints, len(dim.Percentiles))
		for i, p := range dim.Percentiles {
			cuts[i] = quantile(p, values)
		}
		out[date] = cuts
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no period had enough NYSE observations to compute %s breakpoints", dim.Charac)
	}
	return out, nil
}
