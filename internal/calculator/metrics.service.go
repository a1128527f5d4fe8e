package calculator

import (
	"fmt"
	"time"

	"famafrench/internal/domain"

	"github.com/montanaflynn/stats"
	gstat "gonum.org/v1/gonum/stat"
)

// DefaultPercentiles matches the standard summary table layout.
var DefaultPercentiles = []float64{1, 10, 25, 50, 75, 90, 99}

// SeriesStats is the descriptive summary of one return series.
type SeriesStats struct {
	Count       int
	Mean        float64
	Std         float64
	Min         float64
	Max         float64
	Skew        float64
	Kurtosis    float64
	Percentiles map[float64]float64
	StartDate   time.Time
	EndDate     time.Time
}

// ComputeSeriesStats summarizes a series over its full range.
// Percentiles are given in percent (e.g. 25 for the lower quartile).
func ComputeSeriesStats(series domain.Series, percentiles []float64) (*SeriesStats, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("cannot compute statistics of an empty series")
	}
	if percentiles == nil {
		percentiles = DefaultPercentiles
	}

	dates := series.SortedDates()
	values := series.Values()

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, err
	}

	out := &SeriesStats{
		Count:       len(values),
		Mean:        mean,
		Min:         min,
		Max:         max,
		Percentiles: map[float64]float64{},
		StartDate:   dates[0],
		EndDate:     dates[len(dates)-1],
	}

	if len(values) > 1 {
		std, err := stats.StandardDeviationSample(values)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stdev: %w", err)
		}
		out.Std = std
		out.Skew = gstat.Skew(values, nil)
		out.Kurtosis = gstat.ExKurtosis(values, nil)
	}

	for _, p := range percentiles {
		v, err := stats.Percentile(values, p)
		if err != nil {
			return nil, fmt.Errorf("failed to compute percentile %v: %w", p, err)
		}
		out.Percentiles[p] = v
	}

	return out, nil
}

// ComparisonResult relates a constructed series to a published
// reference series over their overlapping window.
type ComparisonResult struct {
	Correlation   float64
	Count         int
	MeanBuilt     float64
	MeanReference float64
	StdBuilt      float64
	StdReference  float64
	StartDate     time.Time
	EndDate       time.Time
}

// Compare aligns the two series on shared dates inside [start, end]
// and reports the Pearson correlation alongside each leg's mean and
// standard deviation.
func Compare(built, reference domain.Series, start, end time.Time) (*ComparisonResult, error) {
	builtWindow := built.Window(start, end)
	refWindow := reference.Window(start, end)

	dates := domain.Aligned(builtWindow, refWindow)
	if len(dates) < 2 {
		return nil, fmt.Errorf("series overlap on %d dates, need at least 2", len(dates))
	}

	x := make([]float64, len(dates))
	y := make([]float64, len(dates))
	for i, d := range dates {
		x[i] = builtWindow[d]
		y[i] = refWindow[d]
	}

	meanBuilt, err := stats.Mean(x)
	if err != nil {
		return nil, err
	}
	meanRef, err := stats.Mean(y)
	if err != nil {
		return nil, err
	}
	stdBuilt, err := stats.StandardDeviationSample(x)
	if err != nil {
		return nil, err
	}
	stdRef, err := stats.StandardDeviationSample(y)
	if err != nil {
		return nil, err
	}

	return &ComparisonResult{
		Correlation:   gstat.Correlation(x, y, nil),
		Count:         len(dates),
		MeanBuilt:     meanBuilt,
		MeanReference: meanRef,
		StdBuilt:      stdBuilt,
		StdReference:  stdRef,
		StartDate:     dates[0],
		EndDate:       dates[len(dates)-1],
	}, nil
}
