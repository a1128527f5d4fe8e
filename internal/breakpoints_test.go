package internal

import (
	"testing"
	"time"

	"famafrench/internal/domain"
	"famafrench/internal/util"

	"github.com/stretchr/testify/require"
)

func testObs(permno int32, date time.Time, ret float64, me float64, nyse bool) domain.Observation {
	return domain.Observation{
		Permno: permno,
		Date:   date,
		Ret:    &ret,
		Weight: &me,
		NYSE:   nyse,
		Characs: map[domain.Charac]*float64{
			domain.CharacME: &me,
		},
	}
}

func Test_ComputeBreakpoints(t *testing.T) {
	date := util.NewDate(1990, 6, 1)

	t.Run("median of nyse firms only", func(t *testing.T) {
		obs := []domain.Observation{
			testObs(1, date, 0.01, 100, true),
			testObs(2, date, 0.01, 200, true),
			testObs(3, date, 0.01, 300, true),
			// nasdaq giant must not move the cutoff
			testObs(4, date, 0.01, 9000, false),
		}

		bps, err := ComputeBreakpoints(obs, domain.SortDimension{
			Charac:      domain.CharacME,
			Percentiles: []float64{0.5},
		})

		require.NoError(t, err)
		require.Len(t, bps[date], 1)
		require.InDelta(t, 200.0, bps[date][0], 1e-9)
	})

	t.Run("interpolates between order statistics", func(t *testing.T) {
		// median of four firms falls halfway between the middle pair:
		// index 0.5*(n-1) = 1.5, not the empirical-CDF index 0.5*n
		obs := []domain.Observation{
			testObs(1, date, 0.01, 100, true),
			testObs(2, date, 0.01, 200, true),
			testObs(3, date, 0.01, 300, true),
			testObs(4, date, 0.01, 400, true),
		}

		bps, err := ComputeBreakpoints(obs, domain.SortDimension{
			Charac:      domain.CharacME,
			Percentiles: []float64{0.5},
		})

		require.NoError(t, err)
		require.InDelta(t, 250.0, bps[date][0], 1e-9)
	})

	t.Run("quartile cutoffs interpolate the same way", func(t *testing.T) {
		obs := []domain.Observation{
			testObs(1, date, 0.01, 100, true),
			testObs(2, date, 0.01, 200, true),
			testObs(3, date, 0.01, 300, true),
		}

		bps, err := ComputeBreakpoints(obs, domain.SortDimension{
			Charac:      domain.CharacME,
			Percentiles: []float64{0.25, 0.75},
		})

		require.NoError(t, err)
		require.InDelta(t, 150.0, bps[date][0], 1e-9)
		require.InDelta(t, 250.0, bps[date][1], 1e-9)
	})

	t.Run("missing characteristics are excluded", func(t *testing.T) {
		withMissing := testObs(5, date, 0.01, 0, true)
		withMissing.Characs[domain.CharacME] = nil
		obs := []domain.Observation{
			testObs(1, date, 0.01, 100, true),
			testObs(2, date, 0.01, 300, true),
			withMissing,
		}

		bps, err := ComputeBreakpoints(obs, domain.SortDimension{
			Charac:      domain.CharacME,
			Percentiles: []float64{0.5},
		})

		require.NoError(t, err)
		require.InDelta(t, 200.0, bps[date][0], 1e-9)
	})

	t.Run("periods without enough nyse firms are skipped", func(t *testing.T) {
		thin := util.NewDate(1990, 7, 1)
		obs := []domain.Observation{
			testObs(1, date, 0.01, 100, true),
			testObs(2, date, 0.01, 200, true),
			testObs(3, date, 0.01, 300, true),
			testObs(1, thin, 0.01, 100, false),
			testObs(2, thin, 0.01, 200, false),
		}

		bps, err := ComputeBreakpoints(obs, domain.SortDimension{
			Charac:      domain.CharacME,
			Percentiles: []float64{0.3, 0.7},
		})

		require.NoError(t, err)
		require.Contains(t, bps, date)
		require.NotContains(t, bps, thin)
	})

	t.Run("errors when no period can be cut", func(t *testing.T) {
		obs := []domain.Observation{
			testObs(1, date, 0.01, 100, false),
		}

		_, err := ComputeBreakpoints(obs, domain.SortDimension{
			Charac:      domain.CharacME,
			Percentiles: []float64{0.5},
		})

		require.Error(t, err)
	})
}
