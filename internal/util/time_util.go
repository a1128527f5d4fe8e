package util

import (
	"time"
)

// NewDate is a test and CLI convenience for midnight-UTC dates.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
