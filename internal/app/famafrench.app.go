package app

import (
	"context"
	"fmt"
	"time"

	"famafrench/internal"
	"famafrench/internal/calculator"
	"famafrench/internal/domain"
	"famafrench/internal/logger"
	"famafrench/internal/panel"
	"famafrench/internal/repository"
	"famafrench/pkg/kfrench"
)

type PanelBuilder interface {
	Build(ctx context.Context, in panel.BuildInput) ([]domain.Observation, error)
}

type FactorLibrary interface {
	Download(ctx context.Context, name string, freq domain.Frequency) (map[string]domain.Series, error)
}

// FamaFrenchHandler wires the panel builder, sort engine, factor
// assembler and comparison calculator behind the operations the CLI
// exposes.
type FamaFrenchHandler struct {
	Panel    PanelBuilder
	RiskFree repository.RiskFreeRepository
	Library  FactorLibrary
}

type SortInput struct {
	Spec      domain.SortSpec
	Weighting domain.Weighting
	Freq      domain.Frequency
	Start     time.Time
	End       time.Time
	Prior     panel.PriorWindow // required when a dim sorts on PRIOR
}

func (h FamaFrenchHandler) sortedSet(ctx context.Context, in SortInput) (*domain.PortfolioSet, error) {
	if err := in.Spec.Validate(); err != nil {
		return nil, err
	}
	if !in.Freq.Valid() {
		return nil, fmt.Errorf("invalid frequency %q", in.Freq)
	}

	characs := make([]domain.Charac, 0, len(in.Spec.Dims))
	for _, dim := range in.Spec.Dims {
		characs = append(characs, dim.Charac)
	}

	obs, err := h.Panel.Build(ctx, panel.BuildInput{
		Freq:    in.Freq.Base(),
		Start:   in.Start,
		End:     in.End,
		Characs: characs,
		Prior:   in.Prior,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build panel: %w", err)
	}
	if len(obs) == 0 {
		return nil, internal.MissingDataError{
			Err: fmt.Errorf("no eligible observations between %s and %s",
				in.Start.Format(time.DateOnly), in.End.Format(time.DateOnly)),
		}
	}

	return internal.SortPortfolios(obs, in.Spec, in.Weighting, in.Freq)
}

// PortfolioReturns sorts the universe per the spec and returns the
// per-bucket return series, keyed by bucket label.
func (h FamaFrenchHandler) PortfolioReturns(ctx context.Context, in SortInput) (map[string]domain.Series, error) {
	set, err := h.sortedSet(ctx, in)
	if err != nil {
		return nil, err
	}

	out := map[string]domain.Series{}
	for bucket, series := range set.Returns {
		out[bucket.Label(set.Spec)] = series
	}
	return out, nil
}

// NumFirms reports how many firms each bucket holds per period.
func (h FamaFrenchHandler) NumFirms(ctx context.Context, in SortInput) (map[string]map[time.Time]int, error) {
	set, err := h.sortedSet(ctx, in)
	if err != nil {
		return nil, err
	}

	out := map[string]map[time.Time]int{}
	for bucket, counts := range set.NumFirms {
		out[bucket.Label(set.Spec)] = counts
	}
	return out, nil
}

// Characteristics reports each bucket's weighted average value of every
// sorting characteristic per period.
func (h FamaFrenchHandler) Characteristics(ctx context.Context, in SortInput) (map[domain.Charac]map[string]domain.Series, error) {
	set, err := h.sortedSet(ctx, in)
	if err != nil {
		return nil, err
	}

	out := map[domain.Charac]map[string]domain.Series{}
	for charac, byBucket := range set.Characs {
		out[charac] = map[string]domain.Series{}
		for bucket, series := range byBucket {
			out[charac][bucket.Label(set.Spec)] = series
		}
	}
	return out, nil
}

type FactorsInput struct {
	Factors []internal.Factor
	Freq    domain.Frequency
	Start   time.Time
	End     time.Time
}

// Factors assembles the requested factor series. SMB follows the
// requested set: alongside RMW or CMA it averages the size spreads of
// the ME/BM, ME/OP and ME/INV sorts, otherwise it comes from the ME/BM
// sort alone.
func (h FamaFrenchHandler) Factors(ctx context.Context, in FactorsInput) (map[internal.Factor]domain.Series, error) {
	if len(in.Factors) == 0 {
		return nil, fmt.Errorf("no factors requested")
	}
	log := logger.FromContext(ctx)

	fiveFactorSMB := false
	for _, f := range in.Factors {
		if f == internal.FactorRMW || f == internal.FactorCMA {
			fiveFactorSMB = true
		}
	}

	// prior-return factors share the PRIOR characteristic but not the
	// window, so the sort cache keys on both
	type sortKey struct {
		second domain.Charac
		prior  panel.PriorWindow
	}
	sets := map[sortKey]*domain.PortfolioSet{}
	buildSet := func(second domain.Charac, prior panel.PriorWindow) (*domain.PortfolioSet, error) {
		key := sortKey{second: second, prior: prior}
		if set, ok := sets[key]; ok {
			return set, nil
		}
		set, err := h.sortedSet(ctx, SortInput{
			Spec:      internal.Standard2x3(second),
			Weighting: domain.ValueWeighted,
			Freq:      in.Freq,
			Start:     in.Start,
			End:       in.End,
			Prior:     prior,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sort on %s: %w", second, err)
		}
		sets[key] = set
		return set, nil
	}

	out := map[internal.Factor]domain.Series{}
	for _, f := range in.Factors {
		switch f {
		case internal.FactorMktRF:
			series, err := h.marketFactor(ctx, in)
			if err != nil {
				return nil, err
			}
			out[f] = series

		case internal.FactorSMB:
			seconds := []domain.Charac{domain.CharacBM}
			if fiveFactorSMB {
				seconds = []domain.Charac{domain.CharacBM, domain.CharacOP, domain.CharacINV}
			}
			components := make([]*domain.PortfolioSet, 0, len(seconds))
			for _, second := range seconds {
				set, err := buildSet(second, panel.PriorWindow{})
				if err != nil {
					return nil, err
				}
				components = append(components, set)
			}
			series, err := internal.SizeFactor(components...)
			if err != nil {
				return nil, err
			}
			out[f] = series

		default:
			second, ok := f.SecondCharac()
			if !ok {
				return nil, fmt.Errorf("cannot assemble factor %s", f)
			}
			var prior panel.PriorWindow
			if j, k, ok := f.PriorWindowJK(); ok {
				prior = panel.PriorWindow{J: j, K: k}
			}
			set, err := buildSet(second, prior)
			if err != nil {
				return nil, err
			}
			series, err := internal.LongShortFactor(set, f.LongHigh())
			if err != nil {
				return nil, err
			}
			out[f] = series
		}
	}

	log.Infow("factors assembled", "factors", in.Factors, "freq", in.Freq)
	return out, nil
}

// marketFactor builds MKT-RF: the value-weighted return of the whole
// eligible universe over the one-month T-bill rate.
func (h FamaFrenchHandler) marketFactor(ctx context.Context, in FactorsInput) (domain.Series, error) {
	base := in.Freq.Base()
	obs, err := h.Panel.Build(ctx, panel.BuildInput{
		Freq:  base,
		Start: in.Start,
		End:   in.End,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build market panel: %w", err)
	}

	riskFree, err := h.RiskFree.RiskFree(ctx, base, in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load risk-free rate: %w", err)
	}

	return internal.MarketFactor(obs, riskFree, in.Freq)
}

type StatsInput struct {
	FactorsInput
	Percentiles []float64
}

// Stats assembles the requested factors and summarizes each series.
func (h FamaFrenchHandler) Stats(ctx context.Context, in StatsInput) (map[internal.Factor]*calculator.SeriesStats, error) {
	factors, err := h.Factors(ctx, in.FactorsInput)
	if err != nil {
		return nil, err
	}

	out := map[internal.Factor]*calculator.SeriesStats{}
	for f, series := range factors {
		stats, err := calculator.ComputeSeriesStats(series, in.Percentiles)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize %s: %w", f, err)
		}
		out[f] = stats
	}
	return out, nil
}

type CompareInput struct {
	Factor internal.Factor
	Freq   domain.Frequency
	Start  time.Time
	End    time.Time
}

type CompareOutput struct {
	Result    *calculator.ComparisonResult
	Built     domain.Series
	Reference domain.Series
}

// Compare builds a factor and measures it against the published series
// from Ken French's data library over the overlapping window.
func (h FamaFrenchHandler) Compare(ctx context.Context, in CompareInput) (*CompareOutput, error) {
	factors, err := h.Factors(ctx, FactorsInput{
		Factors: []internal.Factor{in.Factor},
		Freq:    in.Freq,
		Start:   in.Start,
		End:     in.End,
	})
	if err != nil {
		return nil, err
	}
	built := factors[in.Factor]

	reference, err := h.referenceSeries(ctx, in.Factor, in.Freq)
	if err != nil {
		return nil, err
	}

	result, err := calculator.Compare(built, reference, in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to compare %s: %w", in.Factor, err)
	}
	return &CompareOutput{Result: result, Built: built, Reference: reference}, nil
}

func libraryDataset(f internal.Factor) string {
	switch f {
	case internal.FactorRMW, internal.FactorCMA:
		return "5factors"
	case internal.FactorMOM:
		return "momentum"
	case internal.FactorSTRev:
		return "st_reversal"
	case internal.FactorLTRev:
		return "lt_reversal"
	}
	return "3factors"
}

func (h FamaFrenchHandler) referenceSeries(ctx context.Context, f internal.Factor, freq domain.Frequency) (domain.Series, error) {
	name, err := kfrench.DatasetName(libraryDataset(f), freq)
	if err != nil {
		return nil, err
	}

	series, err := h.Library.Download(ctx, name, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to download reference series: %w", err)
	}

	reference, ok := kfrench.FindSeries(series, string(f))
	if !ok {
		return nil, internal.MissingDataError{
			Err: fmt.Errorf("library dataset %s has no %s column", name, f),
		}
	}

	// quarterly library data parses as monthly and compounds here
	if freq == domain.Quarterly {
		reference = reference.Compound(domain.Quarterly)
	}
	return reference, nil
}
