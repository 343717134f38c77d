// Package normalize turns a raw draft into a canonical run record, or into a
// patch for an existing one.
//
// Validation is fail-fast in form order (date, distance, time, mood, weight)
// and reports the first bad field as a *ValidationError.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/runlog/internal/ids"
	"github.com/roach88/runlog/internal/model"
	"github.com/roach88/runlog/internal/timecodec"
)

// Normalizer validates drafts. It holds the id generator used for new records.
type Normalizer struct {
	ids ids.Generator
}

// New creates a Normalizer. A nil generator defaults to UUIDv7.
func New(gen ids.Generator) *Normalizer {
	if gen == nil {
		gen = ids.UUIDv7Generator{}
	}
	return &Normalizer{ids: gen}
}

// fields is a validated draft.
type fields struct {
	date     string
	distance float64
	timeSec  int
	mood     model.Mood
	weight   *float64
}

// Create validates d and builds a new record with a fresh id.
func (n *Normalizer) Create(d model.Draft) (model.Record, error) {
	f, err := validate(d)
	if err != nil {
		return model.Record{}, err
	}
	return model.NewRecord(n.ids.Generate(), f.date, f.distance, f.timeSec, f.mood, f.weight), nil
}

// Patch validates d and builds a patch replacing every input field of an
// existing record. Empty mood and weight clear those fields. The record's id
// is never part of the patch.
func (n *Normalizer) Patch(d model.Draft) (model.Patch, error) {
	f, err := validate(d)
	if err != nil {
		return model.Patch{}, err
	}
	p := model.Patch{
		Date:     &f.date,
		Distance: &f.distance,
		TimeSec:  &f.timeSec,
		Mood:     &f.mood,
		Weight:   f.weight,
	}
	if f.weight == nil {
		p.ClearWeight = true
	}
	return p, nil
}

func validate(d model.Draft) (fields, error) {
	var f fields

	f.date = clean(d.Date)
	if f.date == "" {
		return f, newMissingDate()
	}

	distance, err := parseNumber(clean(d.Distance))
	if err != nil {
		return f, newInvalidDistance(err)
	}
	if distance <= 0 {
		return f, newInvalidDistance(fmt.Errorf("distance must be positive, got %v", distance))
	}
	f.distance = distance

	seconds, err := timecodec.Parse(clean(d.Time))
	if err != nil {
		return f, newInvalidTime(err)
	}
	if seconds <= 0 {
		return f, newInvalidTime(fmt.Errorf("time must be positive, got %d seconds", seconds))
	}
	f.timeSec = seconds

	mood := model.Mood(strings.ToLower(clean(d.Mood)))
	if !mood.Valid() {
		return f, newInvalidMood(d.Mood)
	}
	f.mood = mood

	if w := clean(d.Weight); w != "" {
		weight, err := parseNumber(w)
		if err != nil {
			return f, newInvalidWeight(err)
		}
		if weight < 0 {
			return f, newInvalidWeight(fmt.Errorf("weight must not be negative, got %v", weight))
		}
		f.weight = &weight
	}

	return f, nil
}

// clean trims surrounding space and NFC-normalizes raw input.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

var errNotANumber = errors.New("not a number")

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, errNotANumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, errNotANumber)
	}
	return v, nil
}
