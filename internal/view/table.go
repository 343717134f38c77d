package view

import (
	"fmt"
	"io"

	"github.com/roach88/runlog/internal/model"
	"github.com/roach88/runlog/internal/pace"
	"github.com/roach88/runlog/internal/timecodec"
)

const rowFormat = "%-10s  %8s  %8s  %9s  %9s  %-9s  %s\n"

// RenderTable writes one line per record in the order given, under a header.
// An empty collection prints a hint instead of an empty table.
func RenderTable(w io.Writer, records []model.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No runs yet.")
		return err
	}

	if _, err := fmt.Fprintf(w, rowFormat, "DATE", "DISTANCE", "TIME", "PACE", "SPEED", "MOOD", "WEIGHT"); err != nil {
		return err
	}
	for _, r := range records {
		mood := MoodLabel(r.Mood)
		if mood == "" {
			mood = "-"
		}
		weight := "-"
		if r.Weight != nil {
			weight = fmt.Sprintf("%.1f lbs", *r.Weight)
		}
		_, err := fmt.Fprintf(w, rowFormat,
			r.Date,
			fmt.Sprintf("%.2f mi", r.Distance),
			timecodec.Format(r.TimeSec),
			pace.Display(r.PaceSec)+" /mi",
			fmt.Sprintf("%.2f mph", r.SpeedMph),
			mood,
			weight,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderStats writes a summary block.
func RenderStats(w io.Writer, s Summary) error {
	if s.Count == 0 {
		_, err := fmt.Fprintln(w, "No runs yet.")
		return err
	}
	_, err := fmt.Fprintf(w,
		"Runs:          %d\n"+
			"Distance:      %.2f mi\n"+
			"Time:          %s\n"+
			"Average pace:  %s /mi\n"+
			"Best pace:     %s /mi\n"+
			"Average speed: %.2f mph\n"+
			"Longest run:   %.2f mi\n",
		s.Count,
		s.TotalDistance,
		timecodec.Format(s.TotalTimeSec),
		pace.Display(s.AvgPaceSec),
		pace.Display(s.BestPaceSec),
		s.AvgSpeedMph,
		s.LongestDistance,
	)
	return err
}
