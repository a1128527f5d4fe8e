package domain

import (
	"fmt"
	"strconv"
	"time"
)

// SortDimension is one leg of a characteristic sort: the characteristic
// and the interior percentile cutoffs, in (0,1). {0.5} is a median
// split, {0.3, 0.7} the standard 30/70 split, four cutoffs make
// quintiles and nine make deciles.
type SortDimension struct {
	Charac      Charac
	Percentiles []float64
}

// NumBuckets is one more than the number of interior cutoffs.
func (d SortDimension) NumBuckets() int {
	return len(d.Percentiles) + 1
}

// SortSpec describes a univariate or independent bivariate sort.
type SortSpec struct {
	Dims []SortDimension
}

func (s SortSpec) Validate() error {
	if len(s.Dims) == 0 || len(s.Dims) > 2 {
		return fmt.Errorf("sort must have 1 or 2 dimensions, got %d", len(s.Dims))
	}
	for _, dim := range s.Dims {
		if len(dim.Percentiles) == 0 {
			return fmt.Errorf("sort on %s has no percentile cutoffs", dim.Charac)
		}
		prev := 0.0
		for _, p := range dim.Percentiles {
			if p <= prev || p >= 1 {
				return fmt.Errorf("sort on %s has invalid cutoffs %v", dim.Charac, dim.Percentiles)
			}
			prev = p
		}
	}
	return nil
}

// Bucket identifies one portfolio of a sort. Indices are 1-based;
// Secondary is 0 for univariate sorts.
type Bucket struct {
	Primary   int
	Secondary int
}

// Label renders the bucket in Ken French's naming convention, e.g.
// "Small HiBM" for the 2x3 size/value sort or "Lo 20" for quintiles.
func (b Bucket) Label(spec SortSpec) string {
	label := dimLabel(spec.Dims[0], b.Primary)
	if len(spec.Dims) == 2 && b.Secondary > 0 {
		label += " " + dimLabel(spec.Dims[1], b.Secondary)
	}
	return label
}

func dimLabel(dim SortDimension, idx int) string {
	n := dim.NumBuckets()
	if dim.Charac == CharacME && n == 2 {
		if idx == 1 {
			return "Small"
		}
		return "Big"
	}
	suffix := string(dim.Charac)
	switch n {
	case 2:
		if idx == 1 {
			return "Lo" + suffix
		}
		return "Hi" + suffix
	case 3:
		switch idx {
		case 1:
			return "Lo" + suffix
		case 3:
			return "Hi" + suffix
		}
		return "Med" + suffix
	default:
		pct := 100 / n
		if idx == 1 {
			return fmt.Sprintf("Lo %d", pct)
		}
		if idx == n {
			return fmt.Sprintf("Hi %d", pct)
		}
		return strconv.Itoa(idx)
	}
}

// Breakpoints are the interior cutoff values of one dimension in one
// period, computed from the NYSE reference subset.
type Breakpoints []float64

// BucketIndex places v among the cutoffs: below the lowest cutoff is
// bucket 1, at or above the highest is bucket len+1.
func (b Breakpoints) BucketIndex(v float64) int {
	idx := 1
	for _, cut := range b {
		if v < cut {
			break
		}
		idx++
	}
	return idx
}

// PortfolioSet is the output of sorting and aggregation: per-bucket
// return series, firm counts and average characteristics.
type PortfolioSet struct {
	Spec     SortSpec
	Freq     Frequency
	Returns  map[Bucket]Series
	NumFirms map[Bucket]map[time.Time]int
	Characs  map[Charac]map[Bucket]Series
}

// Weighting of within-bucket return aggregation.
type Weighting string

const (
	ValueWeighted Weighting = "VW"
	EqualWeighted Weighting = "EW"
)
