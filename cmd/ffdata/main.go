package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"famafrench/internal"
	"famafrench/internal/app"
	"famafrench/internal/domain"
	"famafrench/internal/panel"
	"famafrench/internal/repository"
	"famafrench/internal/wrds"
	"famafrench/pkg/kfrench"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	flagFreq      string
	flagStart     string
	flagEnd       string
	flagWeighting string
	flagOut       string
	flagSorts     []string
	flagPrior     string
	flagMeasure   string
)

func main() {
	root := &cobra.Command{
		Use:           "ffdata",
		Short:         "Construct Fama-French portfolios and factors from CRSP/Compustat",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagFreq, "freq", "M", "frequency: D, W, M, Q or A")
	root.PersistentFlags().StringVar(&flagStart, "start", "1963-07-01", "first date (YYYY-MM-DD)")
	root.PersistentFlags().StringVar(&flagEnd, "end", "", "last date (YYYY-MM-DD), defaults to today")
	root.PersistentFlags().StringVar(&flagOut, "out", "", "write CSV to this file instead of stdout")

	factorsCmd := &cobra.Command{
		Use:   "factors [factor ...]",
		Short: "Assemble factor return series (default MKT-RF SMB HML)",
		RunE:  runFactors,
	}

	portfoliosCmd := &cobra.Command{
		Use:   "portfolios",
		Short: "Sort the universe into portfolios and report per-bucket series",
		RunE:  runPortfolios,
	}
	portfoliosCmd.Flags().StringArrayVar(&flagSorts, "sort", nil,
		`sort dimension as CHARAC:cutoffs, e.g. --sort ME:0.5 --sort BM:0.3,0.7`)
	portfoliosCmd.Flags().StringVar(&flagWeighting, "weighting", "VW", "VW or EW")
	portfoliosCmd.Flags().StringVar(&flagPrior, "prior", "", "prior return window as J-K months, e.g. 2-12")
	portfoliosCmd.Flags().StringVar(&flagMeasure, "measure", "returns", "returns, numfirms or characs")

	compareCmd := &cobra.Command{
		Use:   "compare <factor>",
		Short: "Compare a constructed factor against Ken French's published series",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}

	root.AddCommand(factorsCmd, portfoliosCmd, compareCmd)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newHandler(ctx context.Context) (app.FamaFrenchHandler, func(), error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return app.FamaFrenchHandler{}, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	conn, err := wrds.Connect(ctx, secrets.Wrds.ConnectionParams())
	if err != nil {
		return app.FamaFrenchHandler{}, nil, fmt.Errorf("failed to connect to wrds: %w", err)
	}

	handler := app.FamaFrenchHandler{
		Panel: panel.Builder{
			CRSP:      repository.NewCRSPRepository(conn),
			Compustat: repository.NewCompustatRepository(conn),
			CCM:       repository.NewCCMRepository(conn),
		},
		RiskFree: repository.NewRiskFreeRepository(conn),
		Library:  kfrench.NewClient(),
	}
	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Printf("failed to close wrds connection: %v", err)
		}
	}
	return handler, cleanup, nil
}

func parseWindow() (domain.Frequency, time.Time, time.Time, error) {
	freq := domain.Frequency(strings.ToUpper(flagFreq))
	if !freq.Valid() {
		return "", time.Time{}, time.Time{}, fmt.Errorf("invalid frequency %q", flagFreq)
	}

	start, err := time.Parse(time.DateOnly, flagStart)
	if err != nil {
		return "", time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", flagStart, err)
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	if flagEnd != "" {
		end, err = time.Parse(time.DateOnly, flagEnd)
		if err != nil {
			return "", time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", flagEnd, err)
		}
	}

	return freq, start, end, nil
}

func parseSortSpec() (domain.SortSpec, error) {
	spec := domain.SortSpec{}
	for _, s := range flagSorts {
		parts := strings.SplitN(s, ":", 2)
		if len(parts) != 2 {
			return spec, fmt.Errorf("sort dimension %q is not CHARAC:cutoffs", s)
		}
		dim := domain.SortDimension{Charac: domain.Charac(strings.ToUpper(parts[0]))}
		for _, c := range strings.Split(parts[1], ",") {
			p, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
			if err != nil {
				return spec, fmt.Errorf("sort dimension %q has invalid cutoff %q", s, c)
			}
			dim.Percentiles = append(dim.Percentiles, p)
		}
		spec.Dims = append(spec.Dims, dim)
	}
	return spec, spec.Validate()
}

func parsePrior() (panel.PriorWindow, error) {
	if flagPrior == "" {
		return panel.PriorWindow{}, nil
	}
	parts := strings.SplitN(flagPrior, "-", 2)
	if len(parts) != 2 {
		return panel.PriorWindow{}, fmt.Errorf("prior window %q is not J-K", flagPrior)
	}
	j, err := strconv.Atoi(parts[0])
	if err != nil {
		return panel.PriorWindow{}, fmt.Errorf("invalid prior window %q: %w", flagPrior, err)
	}
	k, err := strconv.Atoi(parts[1])
	if err != nil {
		return panel.PriorWindow{}, fmt.Errorf("invalid prior window %q: %w", flagPrior, err)
	}
	w := panel.PriorWindow{J: j, K: k}
	return w, w.Validate()
}

func runFactors(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	freq, start, end, err := parseWindow()
	if err != nil {
		return err
	}

	factors := []internal.Factor{internal.FactorMktRF, internal.FactorSMB, internal.FactorHML}
	if len(args) > 0 {
		factors = nil
		for _, a := range args {
			factors = append(factors, internal.Factor(strings.ToUpper(a)))
		}
	}

	handler, cleanup, err := newHandler(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := handler.Factors(ctx, app.FactorsInput{
		Factors: factors,
		Freq:    freq,
		Start:   start,
		End:     end,
	})
	if err != nil {
		return err
	}

	byName := map[string]domain.Series{}
	for f, series := range result {
		byName[string(f)] = series
	}
	return writeSeriesCSV(byName)
}

func runPortfolios(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	freq, start, end, err := parseWindow()
	if err != nil {
		return err
	}
	spec, err := parseSortSpec()
	if err != nil {
		return err
	}
	prior, err := parsePrior()
	if err != nil {
		return err
	}

	weighting := domain.Weighting(strings.ToUpper(flagWeighting))
	in := app.SortInput{
		Spec:      spec,
		Weighting: weighting,
		Freq:      freq,
		Start:     start,
		End:       end,
		Prior:     prior,
	}

	handler, cleanup, err := newHandler(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	switch flagMeasure {
	case "returns":
		returns, err := handler.PortfolioReturns(ctx, in)
		if err != nil {
			return err
		}
		return writeSeriesCSV(returns)
	case "numfirms":
		counts, err := handler.NumFirms(ctx, in)
		if err != nil {
			return err
		}
		byName := map[string]domain.Series{}
		for label, byDate := range counts {
			series := domain.Series{}
			for date, n := range byDate {
				series[date] = float64(n)
			}
			byName[label] = series
		}
		return writeSeriesCSV(byName)
	case "characs":
		characs, err := handler.Characteristics(ctx, in)
		if err != nil {
			return err
		}
		byName := map[string]domain.Series{}
		for charac, byLabel := range characs {
			for label, series := range byLabel {
				byName[fmt.Sprintf("%s %s", charac, label)] = series
			}
		}
		return writeSeriesCSV(byName)
	}
	return fmt.Errorf("unknown measure %q", flagMeasure)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	freq, start, end, err := parseWindow()
	if err != nil {
		return err
	}

	handler, cleanup, err := newHandler(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	factor := internal.Factor(strings.ToUpper(args[0]))
	out, err := handler.Compare(ctx, app.CompareInput{
		Factor: factor,
		Freq:   freq,
		Start:  start,
		End:    end,
	})
	if err != nil {
		return err
	}

	r := out.Result
	fmt.Printf("%s vs Ken French library, %s to %s (%d obs)\n",
		factor, r.StartDate.Format(time.DateOnly), r.EndDate.Format(time.DateOnly), r.Count)
	fmt.Printf("  correlation  %.4f\n", r.Correlation)
	fmt.Printf("  mean   built %.6f  published %.6f\n", r.MeanBuilt, r.MeanReference)
	fmt.Printf("  stdev  built %.6f  published %.6f\n", r.StdBuilt, r.StdReference)

	if flagOut == "" {
		return nil
	}
	return writeSeriesCSV(map[string]domain.Series{
		"built":     out.Built,
		"published": out.Reference,
	})
}

type seriesRow struct {
	Date   string  `csv:"date"`
	Series string  `csv:"series"`
	Value  float64 `csv:"value"`
}

// writeSeriesCSV renders named series in long form, sorted by date then
// series name.
func writeSeriesCSV(byName map[string]domain.Series) error {
	rows := []seriesRow{}
	for name, series := range byName {
		for date, v := range series {
			rows = append(rows, seriesRow{
				Date:   date.Format(time.DateOnly),
				Series: name,
				Value:  v,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Series < rows[j].Series
	})

	out := os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", flagOut, err)
		}
		defer f.Close()
		out = f
	}
	return gocsv.Marshal(&rows, out)
}
