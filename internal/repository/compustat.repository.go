package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"famafrench/internal/cache"
	compModel "famafrench/internal/db/models/wrds/comp/model"
	compTable "famafrench/internal/db/models/wrds/comp/table"
	"famafrench/internal/wrds"

	. "github.com/go-jet/jet/v2/postgres"
)

type CompustatRepository interface {
	AnnualFundamentals(ctx context.Context, start, end time.Time) ([]compModel.Funda, error)
}

type compustatRepositoryHandler struct {
	Conn *wrds.Connection
	lru  *cache.LRU[[]compModel.Funda]
}

func NewCompustatRepository(conn *wrds.Connection) CompustatRepository {
	return &compustatRepositoryHandler{
		Conn: conn,
		lru:  cache.NewLRU[[]compModel.Funda](4),
	}
}

// AnnualFundamentals pulls the standard industrial/consolidated/
// domestic slice of comp.funda. Book equity inputs need two fiscal
// years of history ahead of the requested window, so callers pass a
// start date already shifted back.
func (h *compustatRepositoryHandler) AnnualFundamentals(ctx context.Context, start, end time.Time) ([]compModel.Funda, error) {
	cacheKey := fmt.Sprintf("funda/%s/%s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	if rows, ok := h.lru.Get(cacheKey); ok {
		return rows, nil
	}

	f := compTable.Funda
	query := f.
		SELECT(
			f.Gvkey, f.Datadate, f.Fyear,
			f.At, f.Lt, f.Seq, f.Ceq,
			f.Pstk, f.Pstkrv, f.Pstkl,
			f.Txditc, f.Txdb, f.Itcb,
			f.Revt, f.Cogs, f.Xsga, f.Xint, f.Sale,
		).
		WHERE(
			f.Indfmt.EQ(String("INDL")).
				AND(f.Datafmt.EQ(String("STD"))).
				AND(f.Popsrc.EQ(String("D"))).
				AND(f.Consol.EQ(String("C"))).
				AND(f.Datadate.BETWEEN(DateT(start), DateT(end))),
		).
		ORDER_BY(f.Gvkey.ASC(), f.Datadate.ASC())

	results := []compModel.Funda{}
	err := h.Conn.Query(ctx, "compustat annual fundamentals", func(db *sql.DB) error {
		return query.QueryContext(ctx, db, &results)
	})
	if err != nil {
		return nil, err
	}

	h.lru.Add(cacheKey, results)
	return results, nil
}
