package internal

import (
	"fmt"
	"time"

	"famafrench/internal/domain"

	"github.com/shopspring/decimal"
)

type portfolioAccumulator struct {
	retWeighted decimal.Decimal
	retWeights  decimal.Decimal
	numFirms    int

	characWeighted map[domain.Charac]decimal.Decimal
	characWeights  map[domain.Charac]decimal.Decimal
}

func newPortfolioAccumulator() *portfolioAccumulator {
	return &portfolioAccumulator{
		characWeighted: map[domain.Charac]decimal.Decimal{},
		characWeights:  map[domain.Charac]decimal.Decimal{},
	}
}

// AggregatePortfolios reduces assigned observations to per-bucket,
// per-period portfolios: weighted average return, firm count and
// weighted average characteristics. Value weighting uses lagged market
// equity; a firm needs both a return and a weight to enter a
// value-weighted portfolio. Weighted sums accumulate in decimals so
// bucket totals do not depend on observation order.
func AggregatePortfolios(
	assigned []AssignedObservation,
	spec domain.SortSpec,
	weighting domain.Weighting,
	freq domain.Frequency,
) (*domain.PortfolioSet, error) {
	if weighting != domain.ValueWeighted && weighting != domain.EqualWeighted {
		return nil, fmt.Errorf("unknown weighting %q", weighting)
	}

	accums := map[domain.Bucket]map[time.Time]*portfolioAccumulator{}
	for _, a := range assigned {
		if a.Ret == nil {
			continue
		}
		w := 1.0
		if weighting == domain.ValueWeighted {
			if a.Weight == nil || *a.Weight <= 0 {
				continue
			}
			w = *a.Weight
		}

		if _, ok := accums[a.Bucket]; !ok {
			accums[a.Bucket] = map[time.Time]*portfolioAccumulator{}
		}
		acc, ok := accums[a.Bucket][a.Date]
		if !ok {
			acc = newPortfolioAccumulator()
			accums[a.Bucket][a.Date] = acc
		}

		weight := decimal.NewFromFloat(w)
		acc.retWeighted = acc.retWeighted.Add(weight.Mul(decimal.NewFromFloat(*a.Ret)))
		acc.retWeights = acc.retWeights.Add(weight)
		acc.numFirms++

		for charac, v := range a.Characs {
			if v == nil {
				continue
			}
			acc.characWeighted[charac] = acc.characWeighted[charac].Add(weight.Mul(decimal.NewFromFloat(*v)))
			acc.characWeights[charac] = acc.characWeights[charac].Add(weight)
		}
	}

	out := &domain.PortfolioSet{
		Spec:     spec,
		Freq:     freq,
		Returns:  map[domain.Bucket]domain.Series{},
		NumFirms: map[domain.Bucket]map[time.Time]int{},
		Characs:  map[domain.Charac]map[domain.Bucket]domain.Series{},
	}

	for bucket, byDate := range accums {
		out.Returns[bucket] = domain.Series{}
		out.NumFirms[bucket] = map[time.Time]int{}
		for date, acc := range byDate {
			if acc.retWeights.IsZero() {
				continue
			}
			ret, _ := acc.retWeighted.Div(acc.retWeights).Float64()
			out.Returns[bucket][date] = ret
			out.NumFirms[bucket][date] = acc.numFirms

			for charac, weighted := range acc.characWeighted {
				weights := acc.characWeights[charac]
				if weights.IsZero() {
					continue
				}
				if _, ok := out.Characs[charac]; !ok {
					out.Characs[charac] = map[domain.Bucket]domain.Series{}
				}
				if _, ok := out.Characs[charac][bucket]; !ok {
					out.Characs[charac][bucket] = domain.Series{}
				}
				avg, _ := weighted.Div(weights).Float64()
				out.Characs[charac][bucket][date] = avg
			}
		}
	}

	return out, nil
}

// SortPortfolios is the full engine pass: breakpoints, bucket
// assignment, then aggregation, optionally compounding the bucket
// returns up to a derived frequency.
func SortPortfolios(
	obs []domain.Observation,
	spec domain.SortSpec,
	weighting domain.Weighting,
	freq domain.Frequency,
) (*domain.PortfolioSet, error) {
	assigned, err := AssignBuckets(obs, spec)
	if err != nil {
		return nil, err
	}

	ports, err := AggregatePortfolios(assigned, spec, weighting, freq.Base())
	if err != nil {
		return nil, err
	}

	if freq.Native() {
		return ports, nil
	}

	// derived frequencies compound bucket returns; counts and average
	// characteristics carry the value at the last base period inside
	// each target period
	compounded := &domain.PortfolioSet{
		Spec:     spec,
		Freq:     freq,
		Returns:  map[domain.Bucket]domain.Series{},
		NumFirms: map[domain.Bucket]map[time.Time]int{},
		Characs:  map[domain.Charac]map[domain.Bucket]domain.Series{},
	}
	for bucket, series := range ports.Returns {
		compounded.Returns[bucket] = series.Compound(freq)
	}
	for bucket, byDate := range ports.NumFirms {
		rolled := map[time.Time]int{}
		lastSeen := map[time.Time]time.Time{}
		for date, n := range byDate {
			key := freq.Key(date)
			if prev, ok := lastSeen[key]; !ok || date.After(prev) {
				lastSeen[key] = date
				rolled[key] = n
			}
		}
		compounded.NumFirms[bucket] = rolled
	}
	for charac, byBucket := range ports.Characs {
		compounded.Characs[charac] = map[domain.Bucket]domain.Series{}
		for bucket, series := range byBucket {
			rolled := domain.Series{}
			lastSeen := map[time.Time]time.Time{}
			for date, v := range series {
				key := freq.Key(date)
				if prev, ok := lastSeen[key]; !ok || date.After(prev) {
					lastSeen[key] = date
					rolled[key] = v
				}
			}
			compounded.Characs[charac][bucket] = rolled
		}
	}
	return compounded, nil
}
