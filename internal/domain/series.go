package domain

import (
	"sort"
	"time"
)

// Frequency of a return series or panel.
type Frequency string

const (
	Daily     Frequency = "D"
	Weekly    Frequency = "W"
	Monthly   Frequency = "M"
	Quarterly Frequency = "Q"
	Annual    Frequency = "A"
)

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Quarterly, Annual:
		return true
	}
	return false
}

// Native reports whether the frequency maps directly onto a CRSP stock
// file. Weekly, quarterly and annual series are compounded from the
// daily or monthly panels.
func (f Frequency) Native() bool {
	return f == Daily || f == Monthly
}

// Base is the native frequency a derived series compounds from.
func (f Frequency) Base() Frequency {
	if f == Weekly {
		return Daily
	}
	if f == Quarterly || f == Annual {
		return Monthly
	}
	return f
}

// Key normalizes t to the canonical period key at this frequency.
// Monthly keys are the first of the month, quarterly keys the first of
// the quarter, annual keys Jan 1, weekly keys the Monday of the ISO
// week. Daily keys are the date truncated to midnight UTC.
func (f Frequency) Key(t time.Time) time.Time {
	y, m, d := t.Date()
	switch f {
	case Daily:
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case Weekly:
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		q := (int(m) - 1) / 3
		return time.Date(y, time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC)
	case Annual:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// Series is a sparse time series of simple returns (or any scalar)
// keyed by canonical period dates. Missing periods carry no key.
type Series map[time.Time]float64

func (s Series) SortedDates() []time.Time {
	dates := make([]time.Time, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Values returns the series values in date order.
func (s Series) Values() []float64 {
	dates := s.SortedDates()
	out := make([]float64, len(dates))
	for i, d := range dates {
		out[i] = s[d]
	}
	return out
}

// Window restricts the series to [start, end] inclusive.
func (s Series) Window(start, end time.Time) Series {
	out := Series{}
	for d, v := range s {
		if d.Before(start) || d.After(end) {
			continue
		}
		out[d] = v
	}
	return out
}

// Compound rolls the series of simple returns up to the target
// frequency by compounding sub-period returns within each target
// period: prod(1+r) - 1.
func (s Series) Compound(target Frequency) Series {
	out := Series{}
	gross := map[time.Time]float64{}
	for d, r := range s {
		key := target.Key(d)
		g, ok := gross[key]
		if !ok {
			g = 1.0
		}
		gross[key] = g * (1.0 + r)
	}
	for key, g := range gross {
		out[key] = g - 1.0
	}
	return out
}

// Sub returns the pointwise difference a-b over dates present in both.
func (s Series) Sub(other Series) Series {
	out := Series{}
	for d, v := range s {
		if w, ok := other[d]; ok {
			out[d] = v - w
		}
	}
	return out
}

// Mean of two or more series, defined only on dates present in all.
func MeanOf(series ...Series) Series {
	if len(series) == 0 {
		return Series{}
	}
	out := Series{}
	for d, v := range series[0] {
		sum := v
		n := 1
		for _, other := range series[1:] {
			w, ok := other[d]
			if !ok {
				n = 0
				break
			}
			sum += w
			n++
		}
		if n == len(series) {
			out[d] = sum / float64(n)
		}
	}
	return out
}

// Aligned returns the dates present in every given series, in order.
func Aligned(series ...Series) []time.Time {
	if len(series) == 0 {
		return nil
	}
	out := []time.Time{}
	for d := range series[0] {
		inAll := true
		for _, other := range series[1:] {
			if _, ok := other[d]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
