package panel

import (
	"context"
	"fmt"
	"sort"
	"time"

	"famafrench/internal/domain"
	"famafrench/internal/logger"
	"famafrench/internal/repository"
)

// Builder assembles the sortable security-period panel: delisting-
// adjusted returns merged with point-in-time characteristics from the
// June formation tables and, for prior-return strategies, rolling
// compounded returns.
type Builder struct {
	CRSP      repository.CRSPRepository
	Compustat repository.CompustatRepository
	CCM       repository.CCMRepository
}

type BuildInput struct {
	Freq    domain.Frequency // native panel frequency, D or M
	Start   time.Time
	End     time.Time
	Characs []domain.Charac
	Prior   PriorWindow // required when Characs includes PRIOR
}

// formation is one permno's characteristic set formed in June of a
// given year, held from July through the following June.
type formation struct {
	ME  *float64 // June market equity
	BM  *float64
	OP  *float64
	INV *float64
}

func (in BuildInput) wantsAnnualCharacs() bool {
	for _, c := range in.Characs {
		switch c {
		case domain.CharacBM, domain.CharacOP, domain.CharacINV:
			return true
		case domain.CharacME:
			if !in.wantsPrior() {
				return true
			}
		}
	}
	return false
}

func (in BuildInput) wantsPrior() bool {
	for _, c := range in.Characs {
		if c == domain.CharacPrior {
			return true
		}
	}
	return false
}

func (b Builder) Build(ctx context.Context, in BuildInput) ([]domain.Observation, error) {
	if !in.Freq.Native() {
		return nil, fmt.Errorf("panel must be built at a native frequency, got %s", in.Freq)
	}
	if in.End.Before(in.Start) {
		return nil, fmt.Errorf("panel window end %v precedes start %v", in.End, in.Start)
	}
	if in.wantsPrior() {
		if err := in.Prior.Validate(); err != nil {
			return nil, err
		}
	}

	log := logger.FromContext(ctx)

	// The monthly stock file backs formation tables and lagged weights
	// regardless of the panel frequency, so it always loads, with
	// enough history for December ME of t-1 and prior-return windows.
	monthlyStart := in.Start.AddDate(-2, -6, 0)
	if in.wantsPrior() {
		priorStart := in.Start.AddDate(0, -(in.Prior.K + 2), 0)
		if priorStart.Before(monthlyStart) {
			monthlyStart = priorStart
		}
	}

	monthlyRows, err := b.CRSP.StockFile(ctx, domain.Monthly, monthlyStart, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly stock file: %w", err)
	}
	monthlyDelists, err := b.CRSP.Delistings(ctx, domain.Monthly)
	if err != nil {
		return nil, fmt.Errorf("failed to load delistings: %w", err)
	}
	monthly := AdjustForDelistings(monthlyRows, monthlyDelists, domain.Monthly)
	meByMonth := marketEquityByMonth(monthly)

	base := monthly
	if in.Freq == domain.Daily {
		dailyStart := in.Start
		if in.wantsPrior() {
			// 1250 trading days is just under five calendar years
			dailyStart = in.Start.AddDate(-5, -1, 0)
		}
		dailyRows, err := b.CRSP.StockFile(ctx, domain.Daily, dailyStart, in.End)
		if err != nil {
			return nil, fmt.Errorf("failed to load daily stock file: %w", err)
		}
		dailyDelists, err := b.CRSP.Delistings(ctx, domain.Daily)
		if err != nil {
			return nil, fmt.Errorf("failed to load daily delistings: %w", err)
		}
		base = AdjustForDelistings(dailyRows, dailyDelists, domain.Daily)
	}

	var formations map[int32]map[int]formation
	if in.wantsAnnualCharacs() {
		formations, err = b.buildFormations(ctx, in, meByMonth)
		if err != nil {
			return nil, err
		}
	}

	var prior map[int32]map[time.Time]float64
	if in.wantsPrior() {
		prior, err = PriorReturns(base, in.Prior, in.Freq)
		if err != nil {
			return nil, fmt.Errorf("failed to compute prior returns: %w", err)
		}
	}

	startKey := in.Freq.Key(in.Start)
	endKey := in.Freq.Key(in.End)

	out := []domain.Observation{}
	for _, sp := range base {
		if sp.Date.Before(startKey) || sp.Date.After(endKey) {
			continue
		}

		obs := domain.Observation{
			Permno:   sp.Permno,
			Date:     sp.Date,
			Ret:      sp.Ret,
			Weight:   laggedME(meByMonth, sp.Permno, sp.Date),
			NYSE:     sp.Exchange == domain.ExchangeNYSE,
			Exchange: sp.Exchange,
			Characs:  map[domain.Charac]*float64{},
		}

		for _, c := range in.Characs {
			switch c {
			case domain.CharacME:
				if in.wantsPrior() {
					// monthly-rebalanced sorts size on lagged ME
					obs.Characs[c] = obs.Weight
				} else if f, ok := formationFor(formations, sp.Permno, sp.Date); ok {
					obs.Characs[c] = f.ME
				}
			case domain.CharacBM:
				if f, ok := formationFor(formations, sp.Permno, sp.Date); ok {
					obs.Characs[c] = f.BM
				}
			case domain.CharacOP:
				if f, ok := formationFor(formations, sp.Permno, sp.Date); ok {
					obs.Characs[c] = f.OP
				}
			case domain.CharacINV:
				if f, ok := formationFor(formations, sp.Permno, sp.Date); ok {
					obs.Characs[c] = f.INV
				}
			case domain.CharacPrior:
				if p, ok := prior[sp.Permno]; ok {
					if v, ok := p[sp.Date]; ok {
						value := v
						obs.Characs[c] = &value
					}
				}
			}
		}

		out = append(out, obs)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Permno < out[j].Permno
	})

	log.Infow("panel built",
		"freq", in.Freq,
		"observations", len(out),
		"characs", in.Characs,
	)
	return out, nil
}

// buildFormations derives the June formation table: per permno and
// formation year t, June ME plus BM, OP and INV from the fiscal year
// ending in calendar t-1.
func (b Builder) buildFormations(
	ctx context.Context,
	in BuildInput,
	meByMonth map[int32]map[time.Time]float64,
) (map[int32]map[int]formation, error) {
	fundaStart := in.Start.AddDate(-3, 0, 0)
	funda, err := b.Compustat.AnnualFundamentals(ctx, fundaStart, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load fundamentals: %w", err)
	}
	links, err := b.CCM.Links(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ccm links: %w", err)
	}
	linksByGvkey := map[string][]repository.SecurityLink{}
	for _, l := range links {
		linksByGvkey[l.Gvkey] = append(linksByGvkey[l.Gvkey], l)
	}

	// fiscal-year characteristics per permno, keyed by the calendar
	// year the fiscal year ends in
	type annual struct {
		BE  *float64
		OP  *float64
		INV *float64
	}
	annualByPermno := map[int32]map[int]annual{}
	for _, fa := range DeriveFirmAnnuals(funda) {
		var permno int32
		found := false
		for _, l := range linksByGvkey[fa.Gvkey] {
			if l.Covers(fa.Datadate) {
				permno = l.Permno
				found = true
				break
			}
		}
		if !found {
			continue
		}
		if _, ok := annualByPermno[permno]; !ok {
			annualByPermno[permno] = map[int]annual{}
		}
		annualByPermno[permno][fa.Datadate.Year()] = annual{BE: fa.BE, OP: fa.OP, INV: fa.INV}
	}

	firstYear := in.Start.Year() - 1
	lastYear := in.End.Year()

	out := map[int32]map[int]formation{}
	for permno, months := range meByMonth {
		for year := firstYear; year <= lastYear; year++ {
			juneME, hasJune := months[monthKey(year, time.June)]
			if !hasJune || juneME <= 0 {
				continue
			}
			f := formation{ME: &juneME}

			if a, ok := annualByPermno[permno][year-1]; ok {
				decME, hasDec := months[monthKey(year-1, time.December)]
				if hasDec && decME > 0 && a.BE != nil && *a.BE > 0 {
					bm := *a.BE / decME
					f.BM = &bm
				}
				f.OP = a.OP
				f.INV = a.INV
			}

			if _, ok := out[permno]; !ok {
				out[permno] = map[int]formation{}
			}
			out[permno][year] = f
		}
	}

	return out, nil
}

// formationFor returns the formation row in effect for a return
// period: June of year t covers July t through June t+1.
func formationFor(formations map[int32]map[int]formation, permno int32, date time.Time) (formation, bool) {
	if formations == nil {
		return formation{}, false
	}
	year := date.Year()
	if date.Month() <= time.June {
		year--
	}
	f, ok := formations[permno][year]
	return f, ok
}

// laggedME is the portfolio weight: market equity at the end of the
// prior calendar month, for monthly and daily observations alike.
func laggedME(meByMonth map[int32]map[time.Time]float64, permno int32, date time.Time) *float64 {
	months, ok := meByMonth[permno]
	if !ok {
		return nil
	}

	prev := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	if me, ok := months[prev]; ok && me > 0 {
		return &me
	}
	return nil
}

func marketEquityByMonth(monthly []domain.SecurityPeriod) map[int32]map[time.Time]float64 {
	out := map[int32]map[time.Time]float64{}
	for _, sp := range monthly {
		if sp.ME == nil {
			continue
		}
		if _, ok := out[sp.Permno]; !ok {
			out[sp.Permno] = map[time.Time]float64{}
		}
		out[sp.Permno][sp.Date] = *sp.ME
	}
	return out
}

func monthKey(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
