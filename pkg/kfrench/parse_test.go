package kfrench

import (
	"testing"

	"famafrench/internal/domain"
	"famafrench/internal/util"

	"github.com/stretchr/testify/require"
)

const sampleFactorsCSV = `This file was created by CMPT_ME_BEME_RETS using the 202312 CRSP database.
The 1-month TBill return is from Ibbotson and Associates Inc.

,Mkt-RF,SMB,HML,RF
192607,    2.96,   -2.56,   -2.43,    0.22
192608,    2.64,   -1.17,    3.82,    0.25
192609,    0.36,   -1.40,    0.13,    0.23
192610,  -99.99,    0.04,    0.70,    0.32

 Annual Factors: January-December

,Mkt-RF,SMB,HML,RF
1927,   29.47,   -2.46,   -3.75,    3.12
1928,   35.39,    4.20,   -6.15,    3.56
`

func Test_Parse(t *testing.T) {
	t.Run("monthly block", func(t *testing.T) {
		series, err := Parse(sampleFactorsCSV, domain.Monthly)
		require.NoError(t, err)

		mkt, ok := series["Mkt-RF"]
		require.True(t, ok)
		require.InDelta(t, 0.0296, mkt[util.NewDate(1926, 7, 1)], 1e-12)
		require.InDelta(t, 0.0264, mkt[util.NewDate(1926, 8, 1)], 1e-12)

		// -99.99 is a missing sentinel, not a value
		require.NotContains(t, mkt, util.NewDate(1926, 10, 1))

		smb := series["SMB"]
		require.InDelta(t, -0.0256, smb[util.NewDate(1926, 7, 1)], 1e-12)
		// the sentinel only hits the column carrying it
		require.InDelta(t, 0.0004, smb[util.NewDate(1926, 10, 1)], 1e-12)

		// annual rows must not leak into the monthly series
		require.Len(t, mkt, 3)
	})

	t.Run("annual block", func(t *testing.T) {
		series, err := Parse(sampleFactorsCSV, domain.Annual)
		require.NoError(t, err)

		mkt := series["Mkt-RF"]
		require.Len(t, mkt, 2)
		require.InDelta(t, 0.2947, mkt[util.NewDate(1927, 1, 1)], 1e-12)
		require.InDelta(t, 0.3539, mkt[util.NewDate(1928, 1, 1)], 1e-12)
	})

	t.Run("quarterly parses the monthly block on monthly keys", func(t *testing.T) {
		series, err := Parse(sampleFactorsCSV, domain.Quarterly)
		require.NoError(t, err)
		require.Contains(t, series["Mkt-RF"], util.NewDate(1926, 7, 1))
	})

	t.Run("no matching block errors", func(t *testing.T) {
		_, err := Parse(sampleFactorsCSV, domain.Daily)
		require.Error(t, err)
	})

	t.Run("invalid frequency errors", func(t *testing.T) {
		_, err := Parse(sampleFactorsCSV, domain.Frequency("X"))
		require.Error(t, err)
	})
}

func Test_FindSeries(t *testing.T) {
	series, err := Parse(sampleFactorsCSV, domain.Monthly)
	require.NoError(t, err)

	_, ok := FindSeries(series, "Mkt-RF")
	require.True(t, ok)

	// tolerate the factor-name capitalization used elsewhere
	_, ok = FindSeries(series, "MKT-RF")
	require.True(t, ok)
	_, ok = FindSeries(series, "smb")
	require.True(t, ok)

	_, ok = FindSeries(series, "RMW")
	require.False(t, ok)
}

func Test_DatasetName(t *testing.T) {
	name, err := DatasetName("3factors", domain.Monthly)
	require.NoError(t, err)
	require.Equal(t, "F-F_Research_Data_Factors", name)

	name, err = DatasetName("5factors", domain.Daily)
	require.NoError(t, err)
	require.Equal(t, "F-F_Research_Data_5_Factors_2x3_daily", name)

	name, err = DatasetName("momentum", domain.Monthly)
	require.NoError(t, err)
	require.Equal(t, "F-F_Momentum_Factor", name)

	_, err = DatasetName("momentum", domain.Weekly)
	require.Error(t, err)
}
