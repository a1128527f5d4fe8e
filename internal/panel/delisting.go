package panel

import (
	"time"

	"famafrench/internal/domain"
	"famafrench/internal/repository"
)

// Standard replacement delisting returns for performance-related
// delistings with a missing delisting return, per Shumway (1997) and
// Shumway and Warther (1999).
const (
	replacementDlRetNYSEAMEX = -0.30
	replacementDlRetNASDAQ   = -0.55
)

// performanceDelisting reports whether the CRSP delisting code marks a
// performance-related delisting (dropped, 500 or 520-584).
func performanceDelisting(code int32) bool {
	return code == 500 || (code >= 520 && code <= 584)
}

func delistingReturn(d repository.Delisting, exch domain.Exchange) *float64 {
	if d.Ret != nil {
		return d.Ret
	}
	if d.Code == nil || !performanceDelisting(*d.Code) {
		return nil
	}
	var r float64
	switch exch {
	case domain.ExchangeNYSE, domain.ExchangeAMEX:
		r = replacementDlRetNYSEAMEX
	case domain.ExchangeNASDAQ:
		r = replacementDlRetNASDAQ
	default:
		return nil
	}
	return &r
}

// AdjustForDelistings merges delisting returns into the stock file.
// In the delisting period the return is compounded with the delisting
// return when both exist; the delisting return stands alone when the
// ordinary return is missing. Exchange and share codes pass through
// from the stock file.
func AdjustForDelistings(rows []repository.StockFileRow, delists []repository.Delisting, freq domain.Frequency) []domain.SecurityPeriod {
	byPermnoPeriod := map[int32]map[time.Time]repository.Delisting{}
	for _, d := range delists {
		key := freq.Key(d.Date)
		if _, ok := byPermnoPeriod[d.Permno]; !ok {
			byPermnoPeriod[d.Permno] = map[time.Time]repository.Delisting{}
		}
		byPermnoPeriod[d.Permno][key] = d
	}

	out := make([]domain.SecurityPeriod, 0, len(rows))
	for _, r := range rows {
		period := freq.Key(r.Date)
		sp := domain.SecurityPeriod{
			Permno: r.Permno,
			Date:   period,
			Ret:    r.Ret,
			ME:     r.MarketEquity(),
		}
		if r.Exchcd != nil {
			sp.Exchange = domain.Exchange(*r.Exchcd)
		}
		if r.Shrcd != nil {
			sp.ShareCode = int16(*r.Shrcd)
		}

		if d, ok := byPermnoPeriod[r.Permno][period]; ok {
			dlret := delistingReturn(d, sp.Exchange)
			switch {
			case dlret != nil && sp.Ret != nil:
				adj := (1.0+*sp.Ret)*(1.0+*dlret) - 1.0
				sp.Ret = &adj
			case dlret != nil:
				sp.Ret = dlret
			}
		}

		out = append(out, sp)
	}
	return out
}
