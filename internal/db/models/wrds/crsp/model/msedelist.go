package model

import (
	"time"
)

type Msedelist struct {
	Permno int32 `sql:"primary_key"`
	Dlstdt time.Time `sql:"primary_key"`
	Dlstcd *int32
	Nwperm *int32
	Nwcomp *int32
	Nextdt *time.Time
	Dlamt  *float64
	Dlretx *float64
	Dlprc  *float64
	Dlpdt  *time.Time
	Dlret  *float64
}
