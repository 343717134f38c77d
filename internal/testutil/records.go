// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"github.com/roach88/runlog/internal/model"
)

// Weight returns a pointer to w for building records with a weight.
func Weight(w float64) *float64 { return &w }

// SampleRecords returns three runs in insertion order with ids run-1..run-3.
//
//	run-1  2025-01-05  3.00 mi  25:00  pace 08:20  active    150.4 lbs
//	run-2  2025-01-03  5.00 mi  45:00  pace 09:00  (none)    -
//	run-3  2025-01-09  6.20 mi  49:36  pace 08:00  energetic 149.0 lbs
func SampleRecords() []model.Record {
	return []model.Record{
		model.NewRecord("run-1", "2025-01-05", 3, 1500, model.MoodActive, Weight(150.4)),
		model.NewRecord("run-2", "2025-01-03", 5, 2700, model.MoodNone, nil),
		model.NewRecord("run-3", "2025-01-09", 6.2, 2976, model.MoodEnergetic, Weight(149)),
	}
}
