package repository

import (
	"context"
	"database/sql"
	"time"

	"famafrench/internal/cache"
	crspModel "famafrench/internal/db/models/wrds/crsp/model"
	crspTable "famafrench/internal/db/models/wrds/crsp/table"
	"famafrench/internal/wrds"

	. "github.com/go-jet/jet/v2/postgres"
)

// SecurityLink maps a Compustat gvkey onto a CRSP permno over the
// validity window of the link.
type SecurityLink struct {
	Gvkey   string
	Permno  int32
	LinkDt  time.Time
	LinkEnd *time.Time // nil for still-active links
}

// Covers reports whether the link is valid on the given date.
func (l SecurityLink) Covers(date time.Time) bool {
	if date.Before(l.LinkDt) {
		return false
	}
	return l.LinkEnd == nil || !date.After(*l.LinkEnd)
}

type CCMRepository interface {
	Links(ctx context.Context) ([]SecurityLink, error)
}

type ccmRepositoryHandler struct {
	Conn *wrds.Connection
	lru  *cache.LRU[[]SecurityLink]
}

func NewCCMRepository(conn *wrds.Connection) CCMRepository {
	return &ccmRepositoryHandler{
		Conn: conn,
		lru:  cache.NewLRU[[]SecurityLink](1),
	}
}

// Links pulls usable CRSP/Compustat links: primary issues with LU/LC
// link types, which is the standard research filter.
func (h *ccmRepositoryHandler) Links(ctx context.Context) ([]SecurityLink, error) {
	if links, ok := h.lru.Get("links"); ok {
		return links, nil
	}

	lt := crspTable.CcmxpfLinktable
	query := lt.
		SELECT(lt.Gvkey, lt.Lpermno, lt.Linkdt, lt.Linkenddt).
		WHERE(
			lt.Linktype.IN(String("LU"), String("LC")).
				AND(lt.Linkprim.IN(String("P"), String("C"))).
				AND(lt.Usedflag.EQ(Int(1))).
				AND(lt.Lpermno.IS_NOT_NULL()),
		).
		ORDER_BY(lt.Gvkey.ASC(), lt.Linkdt.ASC())

	results := []crspModel.CcmxpfLinktable{}
	err := h.Conn.Query(ctx, "ccm link table", func(db *sql.DB) error {
		return query.QueryContext(ctx, db, &results)
	})
	if err != nil {
		return nil, err
	}

	out := make([]SecurityLink, 0, len(results))
	for _, r := range results {
		if r.Lpermno == nil {
			continue
		}
		out = append(out, SecurityLink{
			Gvkey:   r.Gvkey,
			Permno:  *r.Lpermno,
			LinkDt:  r.Linkdt,
			LinkEnd: r.Linkenddt,
		})
	}

	h.lru.Add("links", out)
	return out, nil
}
