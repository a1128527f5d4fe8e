package internal

import (
	"testing"
	"time"

	"famafrench/internal/domain"
	"famafrench/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_AggregatePortfolios(t *testing.T) {
	date := util.NewDate(1990, 6, 1)
	univariate := domain.SortSpec{Dims: []domain.SortDimension{
		{Charac: domain.CharacME, Percentiles: []float64{0.5}},
	}}
	small := domain.Bucket{Primary: 1}

	assign := func(o domain.Observation, b domain.Bucket) AssignedObservation {
		return AssignedObservation{Observation: o, Bucket: b}
	}

	t.Run("value weighting uses lagged market equity", func(t *testing.T) {
		assigned := []AssignedObservation{
			assign(testObs(1, date, 0.10, 100, true), small),
			assign(testObs(2, date, -0.02, 300, true), small),
		}

		set, err := AggregatePortfolios(assigned, univariate, domain.ValueWeighted, domain.Monthly)
		require.NoError(t, err)

		// (100*0.10 + 300*-0.02) / 400
		require.InDelta(t, 0.01, set.Returns[small][date], 1e-12)
		require.Equal(t, 2, set.NumFirms[small][date])
	})

	t.Run("equal weighting ignores market equity", func(t *testing.T) {
		assigned := []AssignedObservation{
			assign(testObs(1, date, 0.10, 100, true), small),
			assign(testObs(2, date, -0.02, 300, true), small),
		}

		set, err := AggregatePortfolios(assigned, domain.SortSpec{}, domain.EqualWeighted, domain.Monthly)
		require.NoError(t, err)
		require.InDelta(t, 0.04, set.Returns[small][date], 1e-12)
	})

	t.Run("missing return or weight drops the firm", func(t *testing.T) {
		noRet := testObs(3, date, 0, 500, true)
		noRet.Ret = nil
		noWeight := testObs(4, date, 0.50, 0, true)
		noWeight.Weight = nil

		assigned := []AssignedObservation{
			assign(testObs(1, date, 0.10, 100, true), small),
			assign(noRet, small),
			assign(noWeight, small),
		}

		set, err := AggregatePortfolios(assigned, univariate, domain.ValueWeighted, domain.Monthly)
		require.NoError(t, err)
		require.InDelta(t, 0.10, set.Returns[small][date], 1e-12)
		require.Equal(t, 1, set.NumFirms[small][date])
	})

	t.Run("characteristics average with the portfolio weights", func(t *testing.T) {
		assigned := []AssignedObservation{
			assign(testObs(1, date, 0.01, 100, true), small),
			assign(testObs(2, date, 0.01, 300, true), small),
		}

		set, err := AggregatePortfolios(assigned, univariate, domain.ValueWeighted, domain.Monthly)
		require.NoError(t, err)

		// testObs sets CharacME to the weight itself
		// (100*100 + 300*300) / 400
		require.InDelta(t, 250.0, set.Characs[domain.CharacME][small][date], 1e-9)
	})

	t.Run("unknown weighting errors", func(t *testing.T) {
		_, err := AggregatePortfolios(nil, univariate, domain.Weighting("XX"), domain.Monthly)
		require.Error(t, err)
	})
}

func Test_SortPortfolios(t *testing.T) {
	univariate := domain.SortSpec{Dims: []domain.SortDimension{
		{Charac: domain.CharacME, Percentiles: []float64{0.5}},
	}}

	t.Run("derived frequency compounds bucket returns", func(t *testing.T) {
		months := []time.Time{
			util.NewDate(1990, 1, 1),
			util.NewDate(1990, 2, 1),
			util.NewDate(1990, 3, 1),
		}

		obs := []domain.Observation{}
		for _, m := range months {
			obs = append(obs,
				testObs(1, m, 0.10, 100, true),
				testObs(2, m, 0.10, 300, true),
			)
		}

		set, err := SortPortfolios(obs, univariate, domain.ValueWeighted, domain.Quarterly)
		require.NoError(t, err)

		q1 := util.NewDate(1990, 1, 1)
		require.NotEmpty(t, set.Returns)
		for _, series := range set.Returns {
			require.InDelta(t, 1.1*1.1*1.1-1.0, series[q1], 1e-12)
		}
	})

	t.Run("native frequency passes through", func(t *testing.T) {
		jun := util.NewDate(1990, 6, 1)
		obs := []domain.Observation{
			testObs(1, jun, 0.05, 100, true),
			testObs(2, jun, 0.05, 300, true),
		}

		set, err := SortPortfolios(obs, univariate, domain.ValueWeighted, domain.Monthly)
		require.NoError(t, err)
		require.Equal(t, domain.Monthly, set.Freq)
		for _, series := range set.Returns {
			require.InDelta(t, 0.05, series[jun], 1e-12)
		}
	})
}
