package kfrench

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"famafrench/internal/domain"
)

// The library marks missing observations with -99.99 (and -999 in a
// few older files).
func missingSentinel(v float64) bool {
	return v == -99.99 || v == -999 || v == -9999
}

func dateDigits(freq domain.Frequency) int {
	switch freq {
	case domain.Annual:
		return 4
	case domain.Monthly, domain.Quarterly:
		return 6
	default:
		return 8
	}
}

// Parse extracts the data block matching the requested frequency from
// a library CSV: preamble text, a header row starting with a comma,
// data rows keyed by YYYY / YYYYMM / YYYYMMDD dates, and possibly a
// trailing annual block after the periodic one. Values arrive in
// percent and convert to decimals. Quarterly requests parse the
// monthly block; the caller compounds.
func Parse(contents string, freq domain.Frequency) (map[string]domain.Series, error) {
	if !freq.Valid() {
		return nil, fmt.Errorf("invalid frequency %q", freq)
	}
	wantDigits := dateDigits(freq)
	keyFreq := freq
	if freq == domain.Quarterly {
		keyFreq = domain.Monthly
	}

	out := map[string]domain.Series{}
	var columns []string

	lines := strings.Split(strings.ReplaceAll(contents, "\r\n", "\n"), "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		fields := strings.Split(line, ",")
		first := strings.TrimSpace(fields[0])

		// header rows have an empty date column
		if first == "" && len(fields) > 1 {
			columns = nil
			for _, f := range fields[1:] {
				columns = append(columns, strings.TrimSpace(f))
			}
			continue
		}

		if columns == nil || len(first) != wantDigits || !allDigits(first) {
			continue
		}

		date, err := parseLibraryDate(first, wantDigits)
		if err != nil {
			continue
		}
		key := keyFreq.Key(date)

		for i, col := range columns {
			if col == "" || i+1 >= len(fields) {
				continue
			}
			raw := strings.TrimSpace(fields[i+1])
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || missingSentinel(v) {
				continue
			}
			if _, ok := out[col]; !ok {
				out[col] = domain.Series{}
			}
			out[col][key] = v / 100.0
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no %s data block found", freq)
	}
	return out, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func parseLibraryDate(s string, digits int) (time.Time, error) {
	switch digits {
	case 4:
		return time.Parse("2006", s)
	case 6:
		return time.Parse("200601", s)
	default:
		return time.Parse("20060102", s)
	}
}

// FindSeries looks a factor up among the parsed columns, tolerating
// the library's varying capitalization ("Mom" vs "MOM", "Mkt-RF").
func FindSeries(series map[string]domain.Series, name string) (domain.Series, bool) {
	if s, ok := series[name]; ok {
		return s, true
	}
	normalize := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	want := normalize(name)
	for col, s := range series {
		if normalize(col) == want {
			return s, true
		}
	}
	return nil, false
}
