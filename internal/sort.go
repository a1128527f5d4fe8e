package internal

import (
	"fmt"

	"famafrench/internal/domain"
)

// AssignedObservation is an observation placed in its sort bucket.
type AssignedObservation struct {
	domain.Observation
	Bucket domain.Bucket
}

// AssignBuckets runs the sort: NYSE breakpoints per period per
// dimension, then every observation with non-missing characteristics
// lands in a bucket. Observations missing any sort characteristic, or
// falling in a period without breakpoints, are excluded.
func AssignBuckets(obs []domain.Observation, spec domain.SortSpec) ([]AssignedObservation, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sort spec: %w", err)
	}

	breakpointsByDim := make([]map[int64]domain.Breakpoints, len(spec.Dims))
	for i, dim := range spec.Dims {
		bps, err := ComputeBreakpoints(obs, dim)
		if err != nil {
			return nil, fmt.Errorf("failed to compute breakpoints for %s: %w", dim.Charac, err)
		}
		// key on unix seconds so equal instants match regardless of
		// the time.Time location field
		byKey := map[int64]domain.Breakpoints{}
		for date, cuts := range bps {
			byKey[date.Unix()] = cuts
		}
		breakpointsByDim[i] = byKey
	}

	out := []AssignedObservation{}
	for _, o := range obs {
		bucket := domain.Bucket{}
		eligible := true
		for i, dim := range spec.Dims {
			v := o.CharacValue(dim.Charac)
			if v == nil {
				eligible = false
				break
			}
			cuts, ok := breakpointsByDim[i][o.Date.Unix()]
			if !ok {
				eligible = false
				break
			}
			idx := cuts.BucketIndex(*v)
			if i == 0 {
				bucket.Primary = idx
			} else {
				bucket.Secondary = idx
			}
		}
		if !eligible {
			continue
		}
		out = append(out, AssignedObservation{Observation: o, Bucket: bucket})
	}

	return out, nil
}
