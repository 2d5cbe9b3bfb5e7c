// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cmp"
	"math"
	"slices"
)

// Group is the aggregate of the values sharing one key.
type Group struct {
	// Name is the group key.
	Name string

	// Count is the number of non-NaN values in the group.
	Count int

	// Mean is the mean of the non-NaN values in the group.
	Mean float64
}

// GroupMeans returns the mean of vals for each distinct key, in order
// of first occurrence of the key. Empty keys are not grouped.
// keys and vals must have the same length.
func GroupMeans(keys []string, vals []float64) []Group {
	var gps []Group
	sums := []float64{}
	idx := map[string]int{}
	for i, k := range keys {
		if k == "" {
			continue
		}
		gi, ok := idx[k]
		if !ok {
			gi = len(gps)
			idx[k] = gi
			gps = append(gps, Group{Name: k})
			sums = append(sums, 0)
		}
		if v := vals[i]; !math.IsNaN(v) {
			gps[gi].Count++
			sums[gi] += v
		}
	}
	for i := range gps {
		if gps[i].Count == 0 {
			gps[i].Mean = math.NaN()
			continue
		}
		gps[i].Mean = sums[i] / float64(gps[i].Count)
	}
	return gps
}

// SortDescending sorts groups by descending Mean, keeping the
// existing order for ties. Groups with a NaN Mean go last.
func SortDescending(gps []Group) {
	slices.SortStableFunc(gps, func(a, b Group) int {
		an, bn := math.IsNaN(a.Mean), math.IsNaN(b.Mean)
		switch {
		case an && bn:
			return 0
		case an:
			return 1
		case bn:
			return -1
		}
		return cmp.Compare(b.Mean, a.Mean)
	})
}
