// Package export renders the run collection as CSV and delivers it.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/runlog/internal/model"
)

// DefaultFilename is the name the CSV is delivered under.
const DefaultFilename = "running-log.csv"

// Header is the first CSV line.
const Header = "date,distance,time,pace,speed,mood,weight"

// ErrNothingToExport is returned for an empty collection. It is a notice
// for the user, not a failure.
var ErrNothingToExport = errors.New("nothing to export")

// Export renders records in the order given. Fields are written without
// quoting or escaping; lines are joined with "\n" and the last line has no
// terminator.
func Export(records []model.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, Header)
	for _, r := range records {
		lines = append(lines, row(r))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func row(r model.Record) string {
	weight := ""
	if r.Weight != nil {
		weight = fmt.Sprintf("%.1f", *r.Weight)
	}
	return strings.Join([]string{
		r.Date,
		fmt.Sprintf("%.2f", r.Distance),
		fmt.Sprintf("%d", r.TimeSec),
		fmt.Sprintf("%d", r.PaceSec),
		fmt.Sprintf("%.2f", r.SpeedMph),
		string(r.Mood),
		weight,
	}, ",")
}
