package panel

import (
	"fmt"
	"sort"
	"time"

	"famafrench/internal/domain"
)

// PriorWindow is a Fama-French prior (j-k) return strategy: stock
// performance measured from period t-k through t-j.
type PriorWindow struct {
	J int
	K int
}

var (
	Momentum          = PriorWindow{J: 2, K: 12}
	ShortTermReversal = PriorWindow{J: 1, K: 1}
	LongTermReversal  = PriorWindow{J: 13, K: 60}
)

// ToDaily maps the standard monthly prior windows onto trading-day
// horizons, following Ken French's daily factor construction. Only the
// three standard windows have a published daily mapping.
func (w PriorWindow) ToDaily() (PriorWindow, error) {
	switch w {
	case Momentum:
		return PriorWindow{J: 21, K: 250}, nil
	case ShortTermReversal:
		return PriorWindow{J: 1, K: 20}, nil
	case LongTermReversal:
		return PriorWindow{J: 251, K: 1250}, nil
	}
	return PriorWindow{}, fmt.Errorf("prior (%d-%d) has no standard daily mapping", w.J, w.K)
}

func (w PriorWindow) Validate() error {
	if w.J < 1 || w.K < w.J {
		return fmt.Errorf("invalid prior window (%d-%d)", w.J, w.K)
	}
	return nil
}

// PriorReturns computes the compounded prior (j-k) return per security
// per period. Monthly windows are calendar-based: every month in the
// window must have a return, otherwise the observation is skipped.
// Daily windows are positional within the security's own trading-day
// sequence.
func PriorReturns(periods []domain.SecurityPeriod, w PriorWindow, freq domain.Frequency) (map[int32]map[time.Time]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if freq == domain.Daily {
		var err error
		w, err = w.ToDaily()
		if err != nil {
			return nil, err
		}
	}

	bySecurity := map[int32][]domain.SecurityPeriod{}
	for _, p := range periods {
		bySecurity[p.Permno] = append(bySecurity[p.Permno], p)
	}

	out := map[int32]map[time.Time]float64{}
	for permno, rows := range bySecurity {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
		var prior map[time.Time]float64
		if freq == domain.Monthly {
			prior = priorByCalendarMonth(rows, w)
		} else {
			prior = priorByPosition(rows, w)
		}
		if len(prior) > 0 {
			out[permno] = prior
		}
	}
	return out, nil
}

func priorByCalendarMonth(rows []domain.SecurityPeriod, w PriorWindow) map[time.Time]float64 {
	retByMonth := map[time.Time]*float64{}
	for _, r := range rows {
		retByMonth[r.Date] = r.Ret
	}

	out := map[time.Time]float64{}
	for _, r := range rows {
		gross := 1.0
		complete := true
		for lag := w.J; lag <= w.K; lag++ {
			m := r.Date.AddDate(0, -lag, 0)
			ret, ok := retByMonth[m]
			if !ok || ret == nil {
				complete = false
				break
			}
			gross *= 1.0 + *ret
		}
		if complete {
			out[r.Date] = gross - 1.0
		}
	}
	return out
}

func priorByPosition(rows []domain.SecurityPeriod, w PriorWindow) map[time.Time]float64 {
	out := map[time.Time]float64{}
	for i := range rows {
		if i-w.K < 0 {
			continue
		}
		gross := 1.0
		complete := true
		for lag := w.J; lag <= w.K; lag++ {
			ret := rows[i-lag].Ret
			if ret == nil {
				complete = false
				break
			}
			gross *= 1.0 + *ret
		}
		if complete {
			out[rows[i].Date] = gross - 1.0
		}
	}
	return out
}
