// Package model defines the run log's data types: committed run records,
// the in-progress draft, and the whole-field patch used to edit a record.
package model

import (
	"fmt"

	"github.com/roach88/runlog/internal/pace"
)

// Mood is the runner's self-reported feel for a run.
type Mood string

const (
	MoodNone      Mood = ""
	MoodEnergetic Mood = "energetic"
	MoodActive    Mood = "active"
	MoodSlow      Mood = "slow"
	MoodTired     Mood = "tired"
)

// Moods lists the accepted moods in form order.
var Moods = []Mood{MoodEnergetic, MoodActive, MoodSlow, MoodTired}

// Valid reports whether m is one of the enumerated moods or unset.
func (m Mood) Valid() bool {
	if m == MoodNone {
		return true
	}
	for _, v := range Moods {
		if m == v {
			return true
		}
	}
	return false
}

// Record is one committed run. Records are replaced wholesale on update;
// PaceSec and SpeedMph are always derived from Distance and TimeSec.
type Record struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`     // YYYY-MM-DD
	Distance float64  `json:"distance"` // miles
	TimeSec  int      `json:"timeSec"`
	PaceSec  int      `json:"paceSec"`
	SpeedMph float64  `json:"speedMph"`
	Mood     Mood     `json:"mood,omitempty"`
	Weight   *float64 `json:"weight,omitempty"` // pounds
}

// NewRecord builds a record and fills in the derived pace and speed.
func NewRecord(id, date string, distance float64, timeSec int, mood Mood, weight *float64) Record {
	r := Record{
		ID:       id,
		Date:     date,
		Distance: distance,
		TimeSec:  timeSec,
		Mood:     mood,
		Weight:   weight,
	}
	r.derive()
	return r
}

func (r *Record) derive() {
	r.PaceSec = pace.Pace(r.TimeSec, r.Distance)
	r.SpeedMph = pace.Speed(r.Distance, r.TimeSec)
}

// Check verifies the record's invariants.
func (r Record) Check() error {
	switch {
	case r.ID == "":
		return fmt.Errorf("record has no id")
	case r.Date == "":
		return fmt.Errorf("record %s: missing date", r.ID)
	case r.Distance <= 0:
		return fmt.Errorf("record %s: distance must be positive", r.ID)
	case r.TimeSec <= 0:
		return fmt.Errorf("record %s: time must be positive", r.ID)
	case r.PaceSec != pace.Pace(r.TimeSec, r.Distance):
		return fmt.Errorf("record %s: pace %d does not match time and distance", r.ID, r.PaceSec)
	case r.SpeedMph != pace.Speed(r.Distance, r.TimeSec):
		return fmt.Errorf("record %s: speed %.2f does not match time and distance", r.ID, r.SpeedMph)
	case !r.Mood.Valid():
		return fmt.Errorf("record %s: unknown mood %q", r.ID, r.Mood)
	case r.Weight != nil && *r.Weight < 0:
		return fmt.Errorf("record %s: weight must not be negative", r.ID)
	}
	return nil
}

// clone returns a copy that shares no pointers with r.
func (r Record) clone() Record {
	if r.Weight != nil {
		w := *r.Weight
		r.Weight = &w
	}
	return r
}

// CloneAll copies a collection so callers cannot mutate the original.
func CloneAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}
