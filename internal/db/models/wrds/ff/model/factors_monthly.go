package model

import (
	"time"
)

type FactorsMonthly struct {
	Date  time.Time `sql:"primary_key"`
	Mktrf *float64
	Smb   *float64
	Hml   *float64
	Rmw   *float64
	Cma   *float64
	Rf    *float64
	Umd   *float64
}
