package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"famafrench/internal/cache"
	crspModel "famafrench/internal/db/models/wrds/crsp/model"
	crspTable "famafrench/internal/db/models/wrds/crsp/table"
	"famafrench/internal/domain"
	"famafrench/internal/wrds"

	. "github.com/go-jet/jet/v2/postgres"
)

// StockFileRow is one security-period row of the CRSP stock file,
// joined against the name history so share and exchange codes are
// point-in-time correct.
type StockFileRow struct {
	Permno int32
	Date   time.Time
	Ret    *float64
	Retx   *float64
	Prc    *float64
	Altprc *float64
	Shrout *float64
	Exchcd *int32
	Shrcd  *int32
}

// Price returns the usable price: the quoted close when available,
// otherwise the alternate price CRSP fills in from bid/ask midpoints.
// CRSP stores bid/ask-derived prices as negatives, so the magnitude is
// taken either way.
func (r StockFileRow) Price() *float64 {
	p := r.Prc
	if p == nil || *p == 0 {
		p = r.Altprc
	}
	if p == nil || *p == 0 {
		return nil
	}
	abs := *p
	if abs < 0 {
		abs = -abs
	}
	return &abs
}

// MarketEquity in $ millions. CRSP shrout is in thousands.
func (r StockFileRow) MarketEquity() *float64 {
	price := r.Price()
	if price == nil || r.Shrout == nil || *r.Shrout <= 0 {
		return nil
	}
	me := *price * *r.Shrout / 1000.0
	return &me
}

// Delisting is one delisting event with its delisting return.
type Delisting struct {
	Permno int32
	Date   time.Time
	Code   *int32
	Ret    *float64
}

type CRSPRepository interface {
	StockFile(ctx context.Context, freq domain.Frequency, start, end time.Time) ([]StockFileRow, error)
	Delistings(ctx context.Context, freq domain.Frequency) ([]Delisting, error)
}

type crspRepositoryHandler struct {
	Conn      *wrds.Connection
	stockLRU  *cache.LRU[[]StockFileRow]
	delistLRU *cache.LRU[[]Delisting]
}

func NewCRSPRepository(conn *wrds.Connection) CRSPRepository {
	return &crspRepositoryHandler{
		Conn:      conn,
		stockLRU:  cache.NewLRU[[]StockFileRow](8),
		delistLRU: cache.NewLRU[[]Delisting](4),
	}
}

func (h *crspRepositoryHandler) StockFile(ctx context.Context, freq domain.Frequency, start, end time.Time) ([]StockFileRow, error) {
	if !freq.Native() {
		return nil, fmt.Errorf("stock file only exists at native frequencies, got %s", freq)
	}

	cacheKey := fmt.Sprintf("stockfile/%s/%s/%s", freq, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if rows, ok := h.stockLRU.Get(cacheKey); ok {
		return rows, nil
	}

	var query SelectStatement
	hasAltprc := freq == domain.Monthly
	names := crspTable.Msenames

	if hasAltprc {
		sf := crspTable.Msf
		query = sf.
			SELECT(
				sf.Permno, sf.Date, sf.Ret, sf.Retx, sf.Prc, sf.Shrout,
				names.Exchcd, names.Shrcd, sf.Altprc,
			).
			FROM(
				sf.INNER_JOIN(names, sf.Permno.EQ(names.Permno).
					AND(sf.Date.BETWEEN(names.Namedt, names.Nameendt))),
			).
			WHERE(
				sf.Date.BETWEEN(DateT(start), DateT(end)).
					AND(names.Exchcd.IN(Int(1), Int(2), Int(3))).
					AND(names.Shrcd.IN(Int(10), Int(11))),
			).
			ORDER_BY(sf.Permno.ASC(), sf.Date.ASC())
	} else {
		sf := crspTable.Dsf
		query = sf.
			SELECT(
				sf.Permno, sf.Date, sf.Ret, sf.Retx, sf.Prc, sf.Shrout,
				names.Exchcd, names.Shrcd,
			).
			FROM(
				sf.INNER_JOIN(names, sf.Permno.EQ(names.Permno).
					AND(sf.Date.BETWEEN(names.Namedt, names.Nameendt))),
			).
			WHERE(
				sf.Date.BETWEEN(DateT(start), DateT(end)).
					AND(names.Exchcd.IN(Int(1), Int(2), Int(3))).
					AND(names.Shrcd.IN(Int(10), Int(11))),
			).
			ORDER_BY(sf.Permno.ASC(), sf.Date.ASC())
	}

	out := []StockFileRow{}
	err := h.Conn.Query(ctx, "crsp stock file", func(db *sql.DB) error {
		q, args := query.Sql()
		rows, err := db.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var r StockFileRow
			dest := []interface{}{&r.Permno, &r.Date, &r.Ret, &r.Retx, &r.Prc, &r.Shrout, &r.Exchcd, &r.Shrcd}
			if hasAltprc {
				dest = append(dest, &r.Altprc)
			}
			if err := rows.Scan(dest...); err != nil {
				return fmt.Errorf("failed to scan stock file row: %w", err)
			}
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	h.stockLRU.Add(cacheKey, out)
	return out, nil
}

func (h *crspRepositoryHandler) Delistings(ctx context.Context, freq domain.Frequency) ([]Delisting, error) {
	cacheKey := fmt.Sprintf("delistings/%s", freq)
	if rows, ok := h.delistLRU.Get(cacheKey); ok {
		return rows, nil
	}

	out := []Delisting{}
	var err error
	if freq == domain.Monthly {
		dl := crspTable.Msedelist
		query := dl.
			SELECT(dl.Permno, dl.Dlstdt, dl.Dlstcd, dl.Dlret).
			WHERE(dl.Dlstcd.GT(Int(199))).
			ORDER_BY(dl.Permno.ASC(), dl.Dlstdt.ASC())

		results := []crspModel.Msedelist{}
		err = h.Conn.Query(ctx, "crsp delistings", func(db *sql.DB) error {
			return query.QueryContext(ctx, db, &results)
		})
		for _, r := range results {
			out = append(out, Delisting{Permno: r.Permno, Date: r.Dlstdt, Code: r.Dlstcd, Ret: r.Dlret})
		}
	} else {
		dl := crspTable.Dsedelist
		query := dl.
			SELECT(dl.Permno, dl.Dlstdt, dl.Dlstcd, dl.Dlret).
			WHERE(dl.Dlstcd.GT(Int(199))).
			ORDER_BY(dl.Permno.ASC(), dl.Dlstdt.ASC())

		results := []crspModel.Dsedelist{}
		err = h.Conn.Query(ctx, "crsp delistings", func(db *sql.DB) error {
			return query.QueryContext(ctx, db, &results)
		})
		for _, r := range results {
			out = append(out, Delisting{Permno: r.Permno, Date: r.Dlstdt, Code: r.Dlstcd, Ret: r.Dlret})
		}
	}
	if err != nil {
		return nil, err
	}

	h.delistLRU.Add(cacheKey, out)
	return out, nil
}
