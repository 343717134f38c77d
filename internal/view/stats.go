package view

import (
	"github.com/roach88/runlog/internal/model"
	"github.com/roach88/runlog/internal/pace"
)

// Summary aggregates a collection.
type Summary struct {
	Count           int     `json:"count"`
	TotalDistance   float64 `json:"totalDistance"`
	TotalTimeSec    int     `json:"totalTimeSec"`
	AvgPaceSec      int     `json:"avgPaceSec"`
	BestPaceSec     int     `json:"bestPaceSec"`
	LongestDistance float64 `json:"longestDistance"`
	AvgSpeedMph     float64 `json:"avgSpeedMph"`
}

// Stats summarizes records. Average pace and speed are computed from the
// totals, not averaged per run. An empty collection yields the zero Summary.
func Stats(records []model.Record) Summary {
	var s Summary
	var distance float64
	for i, r := range records {
		s.Count++
		distance += r.Distance
		s.TotalTimeSec += r.TimeSec
		if i == 0 || r.PaceSec < s.BestPaceSec {
			s.BestPaceSec = r.PaceSec
		}
		if r.Distance > s.LongestDistance {
			s.LongestDistance = r.Distance
		}
	}
	if s.Count == 0 {
		return s
	}
	s.TotalDistance = pace.Round2(distance)
	s.AvgPaceSec = pace.Pace(s.TotalTimeSec, distance)
	s.AvgSpeedMph = pace.Speed(distance, s.TotalTimeSec)
	return s
}
