package model

import (
	"time"
)

type Msf struct {
	Cusip    *string
	Permno   int32 `sql:"primary_key"`
	Permco   *int32
	Issuno   *int32
	Hexcd    *int32
	Hsiccd   *int32
	Date     time.Time `sql:"primary_key"`
	Bidlo    *float64
	Askhi    *float64
	Prc      *float64
	Vol      *float64
	Ret      *float64
	Bid      *float64
	Ask      *float64
	Shrout   *float64
	Cfacpr   *float64
	Cfacshr  *float64
	Altprc   *float64
	Spread   *float64
	Altprcdt *time.Time
	Retx     *float64
}
