package model

import (
	"time"
)

type Msenames struct {
	Permno   int32 `sql:"primary_key"`
	Namedt   time.Time `sql:"primary_key"`
	Nameendt *time.Time
	Shrcd    *int32
	Exchcd   *int32
	Siccd    *int32
	Ncusip   *string
	Ticker   *string
	Comnam   *string
	Shrcls   *string
	Permco   *int32
	Hexcd    *int32
	Cusip    *string
}
