package model

import (
	"strconv"

	"github.com/roach88/runlog/internal/timecodec"
)

// Draft is the raw, partially filled input for one run. Fields hold exactly
// what the user typed.
type Draft struct {
	Date     string `json:"date"`
	Distance string `json:"distance"`
	Time     string `json:"time"`
	Mood     string `json:"mood"`
	Weight   string `json:"weight"`
}

// EmptyDraft is the blank form. Mood starts at "active".
func EmptyDraft() Draft {
	return Draft{Mood: string(MoodActive)}
}

// DraftFromRecord pre-fills a draft for editing r.
func DraftFromRecord(r Record) Draft {
	d := Draft{
		Date:     r.Date,
		Distance: strconv.FormatFloat(r.Distance, 'f', -1, 64),
		Time:     timecodec.Format(r.TimeSec),
		Mood:     string(r.Mood),
	}
	if d.Mood == "" {
		d.Mood = string(MoodActive)
	}
	if r.Weight != nil {
		d.Weight = strconv.FormatFloat(*r.Weight, 'f', -1, 64)
	}
	return d
}
