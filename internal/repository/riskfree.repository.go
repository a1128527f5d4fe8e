package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"famafrench/internal/cache"
	ffModel "famafrench/internal/db/models/wrds/ff/model"
	ffTable "famafrench/internal/db/models/wrds/ff/table"
	"famafrench/internal/domain"
	"famafrench/internal/wrds"

	. "github.com/go-jet/jet/v2/postgres"
)

// RiskFreeRepository serves the one-month T-bill rate from the Fama-
// French research tables on WRDS, at the panel's native frequency.
type RiskFreeRepository interface {
	RiskFree(ctx context.Context, freq domain.Frequency, start, end time.Time) (domain.Series, error)
}

type riskFreeRepositoryHandler struct {
	Conn *wrds.Connection
	lru  *cache.LRU[domain.Series]
}

func NewRiskFreeRepository(conn *wrds.Connection) RiskFreeRepository {
	return &riskFreeRepositoryHandler{
		Conn: conn,
		lru:  cache.NewLRU[domain.Series](8),
	}
}

func (h *riskFreeRepositoryHandler) RiskFree(ctx context.Context, freq domain.Frequency, start, end time.Time) (domain.Series, error) {
	if !freq.Native() {
		return nil, fmt.Errorf("risk-free series only exists at native frequencies, got %s", freq)
	}

	cacheKey := fmt.Sprintf("rf/%s/%s/%s", freq, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if series, ok := h.lru.Get(cacheKey); ok {
		return series, nil
	}

	out := domain.Series{}
	if freq == domain.Monthly {
		t := ffTable.FactorsMonthly
		query := t.
			SELECT(t.Date, t.Rf).
			WHERE(t.Date.BETWEEN(DateT(start), DateT(end))).
			ORDER_BY(t.Date.ASC())

		results := []ffModel.FactorsMonthly{}
		err := h.Conn.Query(ctx, "ff risk-free rate", func(db *sql.DB) error {
			return query.QueryContext(ctx, db, &results)
		})
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			if r.Rf != nil {
				out[freq.Key(r.Date)] = *r.Rf
			}
		}
	} else {
		t := ffTable.FactorsDaily
		query := t.
			SELECT(t.Date, t.Rf).
			WHERE(t.Date.BETWEEN(DateT(start), DateT(end))).
			ORDER_BY(t.Date.ASC())

		results := []ffModel.FactorsDaily{}
		err := h.Conn.Query(ctx, "ff risk-free rate", func(db *sql.DB) error {
			return query.QueryContext(ctx, db, &results)
		})
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			if r.Rf != nil {
				out[freq.Key(r.Date)] = *r.Rf
			}
		}
	}

	h.lru.Add(cacheKey, out)
	return out, nil
}
