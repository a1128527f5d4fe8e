package app

import (
	"context"
	"testing"
	"time"

	"famafrench/internal"
	"famafrench/internal/domain"
	"famafrench/internal/panel"
	"famafrench/internal/util"

	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

type fakePanel struct {
	obs    []domain.Observation
	inputs []panel.BuildInput
}

func (f *fakePanel) Build(_ context.Context, in panel.BuildInput) ([]domain.Observation, error) {
	f.inputs = append(f.inputs, in)
	return f.obs, nil
}

type fakeRiskFree struct {
	series domain.Series
}

func (f fakeRiskFree) RiskFree(_ context.Context, freq domain.Frequency, start, end time.Time) (domain.Series, error) {
	return f.series, nil
}

type fakeLibrary struct {
	series map[string]domain.Series
}

func (f fakeLibrary) Download(_ context.Context, name string, freq domain.Frequency) (map[string]domain.Series, error) {
	return f.series, nil
}

// sixFirmUniverse builds one NYSE firm per 2x3 size/value bucket, with
// identical cross-sections each month so factor returns are constant.
func sixFirmUniverse(months ...time.Time) []domain.Observation {
	firms := []struct {
		permno int32
		me     float64
		bm     float64
		ret    float64
	}{
		{1, 1, 0.1, 0.01},
		{2, 1, 1, 0.02},
		{3, 1, 10, 0.05},
		{4, 100, 0.1, -0.01},
		{5, 100, 1, 0.00},
		{6, 100, 10, 0.03},
	}

	obs := []domain.Observation{}
	for _, m := range months {
		for _, f := range firms {
			obs = append(obs, domain.Observation{
				Permno: f.permno,
				Date:   m,
				Ret:    fp(f.ret),
				Weight: fp(1),
				NYSE:   true,
				Characs: map[domain.Charac]*float64{
					domain.CharacME: fp(f.me),
					domain.CharacBM: fp(f.bm),
				},
			})
		}
	}
	return obs
}

func Test_FamaFrenchHandler_Factors(t *testing.T) {
	jul := util.NewDate(1990, 7, 1)
	aug := util.NewDate(1990, 8, 1)
	fake := &fakePanel{obs: sixFirmUniverse(jul, aug)}

	handler := FamaFrenchHandler{
		Panel:    fake,
		RiskFree: fakeRiskFree{series: domain.Series{jul: 0.004, aug: 0.004}},
	}

	in := FactorsInput{
		Factors: []internal.Factor{internal.FactorMktRF, internal.FactorSMB, internal.FactorHML},
		Freq:    domain.Monthly,
		Start:   jul,
		End:     aug,
	}

	result, err := handler.Factors(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, result, 3)

	// one firm per bucket, so HML = (smallHi+bigHi)/2 - (smallLo+bigLo)/2
	require.InDelta(t, 0.04, result[internal.FactorHML][jul], 1e-9)
	require.InDelta(t, 0.04, result[internal.FactorHML][aug], 1e-9)

	require.InDelta(t, 0.02, result[internal.FactorSMB][jul], 1e-9)

	// equal weights make the market the plain average return
	require.InDelta(t, 0.1/6.0-0.004, result[internal.FactorMktRF][jul], 1e-9)

	// the ME/BM sort is shared between SMB and HML
	sortBuilds := 0
	for _, build := range fake.inputs {
		if len(build.Characs) == 2 {
			sortBuilds++
		}
	}
	require.Equal(t, 1, sortBuilds)
}

func Test_FamaFrenchHandler_PortfolioReturns(t *testing.T) {
	jul := util.NewDate(1990, 7, 1)
	fake := &fakePanel{obs: sixFirmUniverse(jul)}
	handler := FamaFrenchHandler{Panel: fake}

	returns, err := handler.PortfolioReturns(context.Background(), SortInput{
		Spec:      internal.Standard2x3(domain.CharacBM),
		Weighting: domain.ValueWeighted,
		Freq:      domain.Monthly,
		Start:     jul,
		End:       jul,
	})
	require.NoError(t, err)
	require.Len(t, returns, 6)
	require.InDelta(t, 0.05, returns["Small HiBM"][jul], 1e-9)
	require.InDelta(t, -0.01, returns["Big LoBM"][jul], 1e-9)
}

func Test_FamaFrenchHandler_NumFirms(t *testing.T) {
	jul := util.NewDate(1990, 7, 1)
	fake := &fakePanel{obs: sixFirmUniverse(jul)}
	handler := FamaFrenchHandler{Panel: fake}

	counts, err := handler.NumFirms(context.Background(), SortInput{
		Spec:      internal.Standard2x3(domain.CharacBM),
		Weighting: domain.ValueWeighted,
		Freq:      domain.Monthly,
		Start:     jul,
		End:       jul,
	})
	require.NoError(t, err)
	for label, byDate := range counts {
		require.Equal(t, 1, byDate[jul], label)
	}
}

func Test_FamaFrenchHandler_Compare(t *testing.T) {
	jul := util.NewDate(1990, 7, 1)
	aug := util.NewDate(1990, 8, 1)
	fake := &fakePanel{obs: sixFirmUniverse(jul, aug)}

	handler := FamaFrenchHandler{
		Panel: fake,
		Library: fakeLibrary{series: map[string]domain.Series{
			"HML": {jul: 0.041, aug: 0.039},
		}},
	}

	out, err := handler.Compare(context.Background(), CompareInput{
		Factor: internal.FactorHML,
		Freq:   domain.Monthly,
		Start:  jul,
		End:    aug,
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.Result.Count)
	require.InDelta(t, 0.04, out.Built[jul], 1e-9)
	require.InDelta(t, 0.041, out.Reference[jul], 1e-12)
}

func Test_FamaFrenchHandler_Validation(t *testing.T) {
	handler := FamaFrenchHandler{Panel: &fakePanel{}}

	t.Run("empty sort spec", func(t *testing.T) {
		_, err := handler.PortfolioReturns(context.Background(), SortInput{})
		require.Error(t, err)
	})

	t.Run("no factors requested", func(t *testing.T) {
		_, err := handler.Factors(context.Background(), FactorsInput{Freq: domain.Monthly})
		require.Error(t, err)
	})

	t.Run("empty panel is a missing data error", func(t *testing.T) {
		_, err := handler.PortfolioReturns(context.Background(), SortInput{
			Spec:      internal.Standard2x3(domain.CharacBM),
			Weighting: domain.ValueWeighted,
			Freq:      domain.Monthly,
			Start:     util.NewDate(1990, 7, 1),
			End:       util.NewDate(1990, 7, 1),
		})
		require.Error(t, err)
		require.ErrorAs(t, err, &internal.MissingDataError{})
	})
}
