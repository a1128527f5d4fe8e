package calculator

import (
	"testing"

	"famafrench/internal/domain"
	"famafrench/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_ComputeSeriesStats(t *testing.T) {
	t.Run("summary of a short series", func(t *testing.T) {
		series := domain.Series{
			util.NewDate(1990, 1, 1): 0.01,
			util.NewDate(1990, 2, 1): 0.03,
			util.NewDate(1990, 3, 1): -0.02,
			util.NewDate(1990, 4, 1): 0.02,
		}

		stats, err := ComputeSeriesStats(series, []float64{50})
		require.NoError(t, err)

		require.Equal(t, 4, stats.Count)
		require.InDelta(t, 0.01, stats.Mean, 1e-12)
		require.InDelta(t, -0.02, stats.Min, 1e-12)
		require.InDelta(t, 0.03, stats.Max, 1e-12)
		require.Greater(t, stats.Std, 0.0)
		require.Equal(t, util.NewDate(1990, 1, 1), stats.StartDate)
		require.Equal(t, util.NewDate(1990, 4, 1), stats.EndDate)
		require.Contains(t, stats.Percentiles, 50.0)
	})

	t.Run("single observation has no dispersion stats", func(t *testing.T) {
		series := domain.Series{util.NewDate(1990, 1, 1): 0.01}

		stats, err := ComputeSeriesStats(series, []float64{50})
		require.NoError(t, err)
		require.Equal(t, 1, stats.Count)
		require.Zero(t, stats.Std)
		require.Zero(t, stats.Skew)
	})

	t.Run("empty series errors", func(t *testing.T) {
		_, err := ComputeSeriesStats(domain.Series{}, nil)
		require.Error(t, err)
	})
}

func Test_Compare(t *testing.T) {
	start := util.NewDate(1990, 1, 1)
	end := util.NewDate(1990, 12, 1)

	t.Run("identical series correlate perfectly", func(t *testing.T) {
		series := domain.Series{}
		for m := 0; m < 12; m++ {
			series[start.AddDate(0, m, 0)] = float64(m%3)*0.01 - 0.01
		}

		result, err := Compare(series, series, start, end)
		require.NoError(t, err)
		require.Equal(t, 12, result.Count)
		require.InDelta(t, 1.0, result.Correlation, 1e-9)
		require.InDelta(t, result.MeanBuilt, result.MeanReference, 1e-12)
		require.Equal(t, start, result.StartDate)
		require.Equal(t, end, result.EndDate)
	})

	t.Run("only overlapping dates inside the window count", func(t *testing.T) {
		built := domain.Series{
			start:                  0.01,
			start.AddDate(0, 1, 0): 0.02,
			start.AddDate(0, 2, 0): 0.03,
			// outside the window
			start.AddDate(-1, 0, 0): 0.50,
		}
		reference := domain.Series{
			start:                  0.02,
			start.AddDate(0, 1, 0): 0.01,
			start.AddDate(0, 2, 0): 0.04,
			start.AddDate(0, 5, 0): 0.09,
		}

		result, err := Compare(built, reference, start, end)
		require.NoError(t, err)
		require.Equal(t, 3, result.Count)
	})

	t.Run("insufficient overlap errors", func(t *testing.T) {
		built := domain.Series{start: 0.01}
		reference := domain.Series{start: 0.02}

		_, err := Compare(built, reference, start, end)
		require.Error(t, err)
	})
}
