package internal

import (
	"fmt"
	"time"

	"famafrench/internal/domain"

	"github.com/shopspring/decimal"
)

// Factor names the long-short factors this package can assemble.
type Factor string

const (
	FactorMktRF Factor = "MKT-RF"
	FactorSMB   Factor = "SMB"
	FactorHML   Factor = "HML"
	FactorRMW   Factor = "RMW"
	FactorCMA   Factor = "CMA"
	FactorMOM   Factor = "MOM"
	FactorSTRev Factor = "ST_Rev"
	FactorLTRev Factor = "LT_Rev"
)

// SecondCharac is the non-size characteristic of the 2x3 sort behind
// the factor. MKT-RF and SMB have no single second characteristic.
func (f Factor) SecondCharac() (domain.Charac, bool) {
	switch f {
	case FactorHML:
		return domain.CharacBM, true
	case FactorRMW:
		return domain.CharacOP, true
	case FactorCMA:
		return domain.CharacINV, true
	case FactorMOM, FactorSTRev, FactorLTRev:
		return domain.CharacPrior, true
	}
	return "", false
}

// LongHigh reports whether the factor goes long the high leg of its
// characteristic. CMA longs conservative (low investment) firms and
// the reversal factors long low prior returns.
func (f Factor) LongHigh() bool {
	switch f {
	case FactorCMA, FactorSTRev, FactorLTRev:
		return false
	}
	return true
}

// PriorWindowJK gives the prior (j-k) months behind a prior-return
// factor.
func (f Factor) PriorWindowJK() (int, int, bool) {
	switch f {
	case FactorMOM:
		return 2, 12, true
	case FactorSTRev:
		return 1, 1, true
	case FactorLTRev:
		return 13, 60, true
	}
	return 0, 0, false
}

// Standard2x3 is the sort spec behind the Fama-French factors: a
// median size split crossed with a 30/70 split on the second
// characteristic.
func Standard2x3(second domain.Charac) domain.SortSpec {
	return domain.SortSpec{
		Dims: []domain.SortDimension{
			{Charac: domain.CharacME, Percentiles: []float64{0.5}},
			{Charac: second, Percentiles: []float64{0.3, 0.7}},
		},
	}
}

func check2x3(set *domain.PortfolioSet) error {
	if len(set.Spec.Dims) != 2 {
		return fmt.Errorf("factor assembly needs a bivariate sort, got %d dims", len(set.Spec.Dims))
	}
	if set.Spec.Dims[0].NumBuckets() != 2 || set.Spec.Dims[1].NumBuckets() != 3 {
		return fmt.Errorf("factor assembly needs a 2x3 sort, got %dx%d",
			set.Spec.Dims[0].NumBuckets(), set.Spec.Dims[1].NumBuckets())
	}
	return nil
}

// LongShortFactor combines the corner portfolios of a 2x3 sort into a
// long-short return: the small and big extreme buckets are averaged on
// each side, then differenced.
func LongShortFactor(set *domain.PortfolioSet, longHigh bool) (domain.Series, error) {
	if err := check2x3(set); err != nil {
		return nil, err
	}

	longIdx, shortIdx := 3, 1
	if !longHigh {
		longIdx, shortIdx = 1, 3
	}

	long := domain.MeanOf(
		set.Returns[domain.Bucket{Primary: 1, Secondary: longIdx}],
		set.Returns[domain.Bucket{Primary: 2, Secondary: longIdx}],
	)
	short := domain.MeanOf(
		set.Returns[domain.Bucket{Primary: 1, Secondary: shortIdx}],
		set.Returns[domain.Bucket{Primary: 2, Secondary: shortIdx}],
	)

	return long.Sub(short), nil
}

// SizeFactor computes SMB: the average small-bucket return minus the
// average big-bucket return of a 2x3 sort. The five-factor SMB passes
// the ME/BM, ME/OP and ME/INV sorts together and averages the three
// component spreads.
func SizeFactor(sets ...*domain.PortfolioSet) (domain.Series, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("size factor needs at least one 2x3 sort")
	}

	components := make([]domain.Series, 0, len(sets))
	for _, set := range sets {
		if err := check2x3(set); err != nil {
			return nil, err
		}
		small := domain.MeanOf(
			set.Returns[domain.Bucket{Primary: 1, Secondary: 1}],
			set.Returns[domain.Bucket{Primary: 1, Secondary: 2}],
			set.Returns[domain.Bucket{Primary: 1, Secondary: 3}],
		)
		big := domain.MeanOf(
			set.Returns[domain.Bucket{Primary: 2, Secondary: 1}],
			set.Returns[domain.Bucket{Primary: 2, Secondary: 2}],
			set.Returns[domain.Bucket{Primary: 2, Secondary: 3}],
		)
		components = append(components, small.Sub(big))
	}

	return domain.MeanOf(components...), nil
}

// MarketReturn is the value-weighted return of the whole eligible
// universe per period.
func MarketReturn(obs []domain.Observation) domain.Series {
	weighted := map[time.Time]decimal.Decimal{}
	weights := map[time.Time]decimal.Decimal{}
	for _, o := range obs {
		if o.Ret == nil || o.Weight == nil || *o.Weight <= 0 {
			continue
		}
		w := decimal.NewFromFloat(*o.Weight)
		weighted[o.Date] = weighted[o.Date].Add(w.Mul(decimal.NewFromFloat(*o.Ret)))
		weights[o.Date] = weights[o.Date].Add(w)
	}

	out := domain.Series{}
	for date, num := range weighted {
		den := weights[date]
		if den.IsZero() {
			continue
		}
		v, _ := num.Div(den).Float64()
		out[date] = v
	}
	return out
}

// MarketFactor is the market premium: value-weighted market return
// minus the one-month T-bill rate. For derived frequencies both legs
// compound before differencing.
func MarketFactor(obs []domain.Observation, riskFree domain.Series, freq domain.Frequency) (domain.Series, error) {
	if len(riskFree) == 0 {
		return nil, fmt.Errorf("market factor needs a risk-free series")
	}

	market := MarketReturn(obs)
	if !freq.Native() {
		market = market.Compound(freq)
		riskFree = riskFree.Compound(freq)
	}
	return market.Sub(riskFree), nil
}
