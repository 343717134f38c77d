// Package view orders, summarizes, and renders the run collection for
// display. Nothing here mutates stored data.
package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/runlog/internal/model"
)

// SortMode selects the display order of the run list.
type SortMode string

const (
	SortDateDesc     SortMode = "date_desc"
	SortDateAsc      SortMode = "date_asc"
	SortPaceBest     SortMode = "pace_best"
	SortDistanceDesc SortMode = "distance_desc"
)

// DefaultSort is the order used when none is chosen.
const DefaultSort = SortDateDesc

// SortModes lists the accepted modes.
var SortModes = []SortMode{SortDateDesc, SortDateAsc, SortPaceBest, SortDistanceDesc}

// ParseSortMode validates s. An empty string selects DefaultSort.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return DefaultSort, nil
	}
	mode := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortModes, mode) {
		return mode, nil
	}
	names := make([]string, len(SortModes))
	for i, m := range SortModes {
		names[i] = string(m)
	}
	return "", fmt.Errorf("unknown sort %q (want one of %s)", s, strings.Join(names, ", "))
}

// Sort returns a copy of records in the given order. Ties keep insertion
// order. Dates compare as YYYY-MM-DD strings.
func Sort(records []model.Record, mode SortMode) []model.Record {
	out := model.CloneAll(records)

	var less func(a, b model.Record) int
	switch mode {
	case SortDateAsc:
		less = func(a, b model.Record) int { return strings.Compare(a.Date, b.Date) }
	case SortPaceBest:
		less = func(a, b model.Record) int { return cmp.Compare(a.PaceSec, b.PaceSec) }
	case SortDistanceDesc:
		less = func(a, b model.Record) int { return cmp.Compare(b.Distance, a.Distance) }
	default:
		less = func(a, b model.Record) int { return strings.Compare(b.Date, a.Date) }
	}
	slices.SortStableFunc(out, less)
	return out
}
