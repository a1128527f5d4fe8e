package panel

import (
	"testing"
	"time"

	"famafrench/internal/domain"
	"famafrench/internal/repository"
	"famafrench/internal/util"

	"github.com/stretchr/testify/require"
)

func ip(v int32) *int32 { return &v }

func stockRow(permno int32, date time.Time, ret float64, exchcd int32) repository.StockFileRow {
	return repository.StockFileRow{
		Permno: permno,
		Date:   date,
		Ret:    fp(ret),
		Prc:    fp(10),
		Shrout: fp(1000),
		Exchcd: ip(exchcd),
		Shrcd:  ip(10),
	}
}

func Test_AdjustForDelistings(t *testing.T) {
	date := util.NewDate(1995, 8, 15)
	period := domain.Monthly.Key(date)

	t.Run("compounds return with delisting return", func(t *testing.T) {
		rows := []repository.StockFileRow{stockRow(1, date, 0.05, 1)}
		delists := []repository.Delisting{
			{Permno: 1, Date: date, Code: ip(100), Ret: fp(-0.20)},
		}

		out := AdjustForDelistings(rows, delists, domain.Monthly)
		require.Len(t, out, 1)
		require.Equal(t, period, out[0].Date)
		require.InDelta(t, 1.05*0.80-1.0, *out[0].Ret, 1e-12)
	})

	t.Run("delisting return stands alone when return is missing", func(t *testing.T) {
		row := stockRow(1, date, 0, 1)
		row.Ret = nil
		delists := []repository.Delisting{
			{Permno: 1, Date: date, Code: ip(100), Ret: fp(-0.20)},
		}

		out := AdjustForDelistings([]repository.StockFileRow{row}, delists, domain.Monthly)
		require.NotNil(t, out[0].Ret)
		require.InDelta(t, -0.20, *out[0].Ret, 1e-12)
	})

	t.Run("replacement return for performance delistings", func(t *testing.T) {
		delists := []repository.Delisting{
			{Permno: 1, Date: date, Code: ip(550)},
			{Permno: 2, Date: date, Code: ip(550)},
		}
		rows := []repository.StockFileRow{
			stockRow(1, date, 0.0, 1), // NYSE
			stockRow(2, date, 0.0, 3), // NASDAQ
		}

		out := AdjustForDelistings(rows, delists, domain.Monthly)
		require.InDelta(t, -0.30, *out[0].Ret, 1e-12)
		require.InDelta(t, -0.55, *out[1].Ret, 1e-12)
	})

	t.Run("non-performance delisting without return passes through", func(t *testing.T) {
		rows := []repository.StockFileRow{stockRow(1, date, 0.05, 1)}
		delists := []repository.Delisting{
			{Permno: 1, Date: date, Code: ip(231)},
		}

		out := AdjustForDelistings(rows, delists, domain.Monthly)
		require.InDelta(t, 0.05, *out[0].Ret, 1e-12)
	})

	t.Run("market equity computed from price and shares", func(t *testing.T) {
		out := AdjustForDelistings([]repository.StockFileRow{stockRow(1, date, 0.01, 1)}, nil, domain.Monthly)
		require.NotNil(t, out[0].ME)
		require.InDelta(t, 10.0, *out[0].ME, 1e-9)
		require.Equal(t, domain.ExchangeNYSE, out[0].Exchange)
	})
}

func Test_performanceDelisting(t *testing.T) {
	require.True(t, performanceDelisting(500))
	require.True(t, performanceDelisting(520))
	require.True(t, performanceDelisting(584))
	require.False(t, performanceDelisting(585))
	require.False(t, performanceDelisting(100))
	require.False(t, performanceDelisting(231))
}
