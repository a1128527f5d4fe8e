package domain

import (
	"time"
)

// CRSP exchange codes. Breakpoints are always computed from the NYSE
// subset, so the code matters beyond filtering.
type Exchange int16

const (
	ExchangeNYSE   Exchange = 1
	ExchangeAMEX   Exchange = 2
	ExchangeNASDAQ Exchange = 3
)

func (e Exchange) InUniverse() bool {
	return e == ExchangeNYSE || e == ExchangeAMEX || e == ExchangeNASDAQ
}

// Ordinary common shares only (CRSP shrcd 10 and 11).
func ShareCodeInUniverse(shrcd int16) bool {
	return shrcd == 10 || shrcd == 11
}

// SecurityPeriod is one security-period row of the return panel, after
// identifier alignment and delisting adjustment. Date is the period key
// for the panel's frequency (see Frequency.Key).
type SecurityPeriod struct {
	Permno    int32
	Date      time.Time
	Ret       *float64 // delisting-adjusted simple return
	ME        *float64 // market equity, $ millions
	Exchange  Exchange
	ShareCode int16
}

// Charac names a sortable firm characteristic.
type Charac string

const (
	CharacME    Charac = "ME"
	CharacBM    Charac = "BM"
	CharacOP    Charac = "OP"
	CharacINV   Charac = "INV"
	CharacPrior Charac = "PRIOR"
)

// Observation is a fully prepared security-period row ready for
// sorting: return, portfolio weight (lagged market equity), and the
// point-in-time characteristic values applicable in this period.
type Observation struct {
	Permno   int32
	Date     time.Time
	Ret      *float64
	Weight   *float64
	NYSE     bool
	Characs  map[Charac]*float64
	Exchange Exchange
}

// CharacValue returns the observation's value for c, or nil when the
// characteristic is missing (missing values are excluded from sorts).
func (o Observation) CharacValue(c Charac) *float64 {
	if o.Characs == nil {
		return nil
	}
	return o.Characs[c]
}
