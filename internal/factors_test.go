package internal

import (
	"testing"
	"time"

	"famafrench/internal/domain"
	"famafrench/internal/util"

	"github.com/stretchr/testify/require"
)

func sixBucketSet(date time.Time, returns map[domain.Bucket]float64) *domain.PortfolioSet {
	set := &domain.PortfolioSet{
		Spec:    Standard2x3(domain.CharacBM),
		Freq:    domain.Monthly,
		Returns: map[domain.Bucket]domain.Series{},
	}
	for bucket, r := range returns {
		set.Returns[bucket] = domain.Series{date: r}
	}
	return set
}

func Test_LongShortFactor(t *testing.T) {
	date := util.NewDate(1990, 7, 1)
	set := sixBucketSet(date, map[domain.Bucket]float64{
		{Primary: 1, Secondary: 1}: 0.01, // small low
		{Primary: 1, Secondary: 2}: 0.02,
		{Primary: 1, Secondary: 3}: 0.05, // small high
		{Primary: 2, Secondary: 1}: -0.01, // big low
		{Primary: 2, Secondary: 2}: 0.00,
		{Primary: 2, Secondary: 3}: 0.03, // big high
	})

	t.Run("long high", func(t *testing.T) {
		hml, err := LongShortFactor(set, true)
		require.NoError(t, err)
		// (0.05+0.03)/2 - (0.01-0.01)/2
		require.InDelta(t, 0.04, hml[date], 1e-12)
	})

	t.Run("long low flips the sign", func(t *testing.T) {
		cma, err := LongShortFactor(set, false)
		require.NoError(t, err)
		require.InDelta(t, -0.04, cma[date], 1e-12)
	})

	t.Run("periods with an empty leg portfolio drop out", func(t *testing.T) {
		aug := util.NewDate(1990, 8, 1)
		withGap := sixBucketSet(date, map[domain.Bucket]float64{
			{Primary: 1, Secondary: 1}: 0.01,
			{Primary: 1, Secondary: 3}: 0.05,
			{Primary: 2, Secondary: 1}: -0.01,
			{Primary: 2, Secondary: 3}: 0.03,
		})
		// august: the small high-BM bucket held no firms
		for bucket, series := range withGap.Returns {
			if bucket != (domain.Bucket{Primary: 1, Secondary: 3}) {
				series[aug] = 0.02
			}
		}

		hml, err := LongShortFactor(withGap, true)
		require.NoError(t, err)
		require.Contains(t, hml, date)
		require.NotContains(t, hml, aug)
	})

	t.Run("rejects non-2x3 sorts", func(t *testing.T) {
		bad := &domain.PortfolioSet{Spec: domain.SortSpec{Dims: []domain.SortDimension{
			{Charac: domain.CharacBM, Percentiles: []float64{0.5}},
		}}}
		_, err := LongShortFactor(bad, true)
		require.Error(t, err)
	})
}

func Test_SizeFactor(t *testing.T) {
	date := util.NewDate(1990, 7, 1)
	set := sixBucketSet(date, map[domain.Bucket]float64{
		{Primary: 1, Secondary: 1}: 0.03,
		{Primary: 1, Secondary: 2}: 0.03,
		{Primary: 1, Secondary: 3}: 0.03,
		{Primary: 2, Secondary: 1}: 0.01,
		{Primary: 2, Secondary: 2}: 0.01,
		{Primary: 2, Secondary: 3}: 0.01,
	})

	t.Run("single sort", func(t *testing.T) {
		smb, err := SizeFactor(set)
		require.NoError(t, err)
		require.InDelta(t, 0.02, smb[date], 1e-12)
	})

	t.Run("five-factor smb averages the component spreads", func(t *testing.T) {
		other := sixBucketSet(date, map[domain.Bucket]float64{
			{Primary: 1, Secondary: 1}: 0.04,
			{Primary: 1, Secondary: 2}: 0.04,
			{Primary: 1, Secondary: 3}: 0.04,
			{Primary: 2, Secondary: 1}: 0.00,
			{Primary: 2, Secondary: 2}: 0.00,
			{Primary: 2, Secondary: 3}: 0.00,
		})

		smb, err := SizeFactor(set, other)
		require.NoError(t, err)
		require.InDelta(t, 0.03, smb[date], 1e-12)
	})

	t.Run("no sorts errors", func(t *testing.T) {
		_, err := SizeFactor()
		require.Error(t, err)
	})
}

func Test_MarketFactor(t *testing.T) {
	jun := util.NewDate(1990, 6, 1)

	obs := []domain.Observation{
		testObs(1, jun, 0.10, 100, true),
		testObs(2, jun, -0.02, 300, true),
	}
	riskFree := domain.Series{jun: 0.004}

	t.Run("value-weighted market over t-bill", func(t *testing.T) {
		mkt, err := MarketFactor(obs, riskFree, domain.Monthly)
		require.NoError(t, err)
		require.InDelta(t, 0.01-0.004, mkt[jun], 1e-12)
	})

	t.Run("zero and missing weights are excluded", func(t *testing.T) {
		noWeight := testObs(3, jun, 5.0, 0, true)
		noWeight.Weight = nil
		withAll := append([]domain.Observation{noWeight}, obs...)

		mkt, err := MarketFactor(withAll, riskFree, domain.Monthly)
		require.NoError(t, err)
		require.InDelta(t, 0.006, mkt[jun], 1e-12)
	})

	t.Run("empty risk-free errors", func(t *testing.T) {
		_, err := MarketFactor(obs, domain.Series{}, domain.Monthly)
		require.Error(t, err)
	})
}

func Test_FactorDefinitions(t *testing.T) {
	second, ok := FactorHML.SecondCharac()
	require.True(t, ok)
	require.Equal(t, domain.CharacBM, second)

	_, ok = FactorMktRF.SecondCharac()
	require.False(t, ok)

	require.True(t, FactorHML.LongHigh())
	require.False(t, FactorCMA.LongHigh())
	require.False(t, FactorSTRev.LongHigh())

	j, k, ok := FactorMOM.PriorWindowJK()
	require.True(t, ok)
	require.Equal(t, 2, j)
	require.Equal(t, 12, k)
}
