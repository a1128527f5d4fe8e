package panel

import (
	"time"

	compModel "famafrench/internal/db/models/wrds/comp/model"
)

// FirmAnnual carries the characteristics derived from one fiscal year
// of Compustat fundamentals, before they are matched to a permno and a
// formation date.
type FirmAnnual struct {
	Gvkey    string
	Datadate time.Time
	BE       *float64
	OP       *float64
	INV      *float64
}

// BookEquity follows the Fama-French definition: stockholders' equity,
// plus balance-sheet deferred taxes and investment tax credit, minus
// preferred stock. Each input falls back through the standard chain:
// seq, then ceq+pstk, then at-lt for equity; pstkrv, then pstkl, then
// pstk for preferred.
func BookEquity(f compModel.Funda) *float64 {
	var she *float64
	switch {
	case f.Seq != nil:
		she = f.Seq
	case f.Ceq != nil:
		v := *f.Ceq
		if f.Pstk != nil {
			v += *f.Pstk
		}
		she = &v
	case f.At != nil && f.Lt != nil:
		v := *f.At - *f.Lt
		she = &v
	default:
		return nil
	}

	txditc := 0.0
	if f.Txditc != nil {
		txditc = *f.Txditc
	} else {
		if f.Txdb != nil {
			txditc += *f.Txdb
		}
		if f.Itcb != nil {
			txditc += *f.Itcb
		}
	}

	ps := 0.0
	switch {
	case f.Pstkrv != nil:
		ps = *f.Pstkrv
	case f.Pstkl != nil:
		ps = *f.Pstkl
	case f.Pstk != nil:
		ps = *f.Pstk
	}

	be := *she + txditc - ps
	return &be
}

// OperatingProfitability is revenue minus cost of goods sold, SG&A and
// interest expense, scaled by book equity. Requires revenue, at least
// one of the expense items, and positive book equity.
func OperatingProfitability(f compModel.Funda, be *float64) *float64 {
	if be == nil || *be <= 0 {
		return nil
	}
	revt := f.Revt
	if revt == nil {
		revt = f.Sale
	}
	if revt == nil {
		return nil
	}
	if f.Cogs == nil && f.Xsga == nil && f.Xint == nil {
		return nil
	}

	profit := *revt
	if f.Cogs != nil {
		profit -= *f.Cogs
	}
	if f.Xsga != nil {
		profit -= *f.Xsga
	}
	if f.Xint != nil {
		profit -= *f.Xint
	}

	op := profit / *be
	return &op
}

// Investment is the growth rate of total assets from fiscal year t-2
// to t-1. Requires positive assets in both years.
func Investment(current, previous compModel.Funda) *float64 {
	if current.At == nil || previous.At == nil {
		return nil
	}
	if *current.At <= 0 || *previous.At <= 0 {
		return nil
	}
	inv := *current.At / *previous.At - 1.0
	return &inv
}

// DeriveFirmAnnuals walks the per-gvkey fiscal year sequence and
// produces BE, OP and INV per fiscal year. Rows must be sorted by
// gvkey then datadate, which is how the repository returns them.
func DeriveFirmAnnuals(rows []compModel.Funda) []FirmAnnual {
	out := make([]FirmAnnual, 0, len(rows))
	for i, f := range rows {
		be := BookEquity(f)
		fa := FirmAnnual{
			Gvkey:    f.Gvkey,
			Datadate: f.Datadate,
			BE:       be,
			OP:       OperatingProfitability(f, be),
		}
		// previous fiscal year of the same firm, if adjacent in the
		// slice and exactly one year back
		if i > 0 && rows[i-1].Gvkey == f.Gvkey {
			prev := rows[i-1]
			gap := f.Datadate.Year() - prev.Datadate.Year()
			if gap == 1 {
				fa.INV = Investment(f, prev)
			}
		}
		out = append(out, fa)
	}
	return out
}
