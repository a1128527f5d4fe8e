package model

import (
	"time"
)

type Funda struct {
	Gvkey    string `sql:"primary_key"`
	Datadate time.Time `sql:"primary_key"`
	Fyear    *int32
	Indfmt   *string
	Consol   *string
	Popsrc   *string
	Datafmt  *string
	Tic      *string
	At       *float64
	Lt       *float64
	Seq      *float64
	Ceq      *float64
	Pstk     *float64
	Pstkrv   *float64
	Pstkl    *float64
	Txditc   *float64
	Txdb     *float64
	Itcb     *float64
	Revt     *float64
	Cogs     *float64
	Xsga     *float64
	Xint     *float64
	Sale     *float64
}
