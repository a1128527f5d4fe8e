package model

import (
	"time"
)

type CcmxpfLinktable struct {
	Gvkey     string `sql:"primary_key"`
	Linkprim  *string
	Liid      *string
	Linktype  *string
	Lpermno   *int32
	Lpermco   *int32
	Linkdt    time.Time `sql:"primary_key"`
	Linkenddt *time.Time
	Usedflag  *int32
}
