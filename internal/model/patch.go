package model

// Patch carries the fields to replace on an existing record. Nil fields are
// left untouched. A patch never carries an id.
type Patch struct {
	Date     *string
	Distance *float64
	TimeSec  *int
	// Mood pointing at MoodNone clears the mood.
	Mood   *Mood
	Weight *float64
	// ClearWeight removes the weight; it takes precedence over Weight.
	ClearWeight bool
}

// Empty reports whether applying p would change nothing.
func (p Patch) Empty() bool {
	return p.Date == nil && p.Distance == nil && p.TimeSec == nil &&
		p.Mood == nil && p.Weight == nil && !p.ClearWeight
}

// Apply merges p onto r field by field and returns the result. The id is
// kept. When distance or time change, pace and speed are derived again so
// the result never carries stale values.
func (r Record) Apply(p Patch) Record {
	out := r.clone()

	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Distance != nil {
		out.Distance = *p.Distance
	}
	if p.TimeSec != nil {
		out.TimeSec = *p.TimeSec
	}
	if p.Mood != nil {
		out.Mood = *p.Mood
	}
	switch {
	case p.ClearWeight:
		out.Weight = nil
	case p.Weight != nil:
		w := *p.Weight
		out.Weight = &w
	}

	if p.Distance != nil || p.TimeSec != nil {
		out.derive()
	}
	return out
}
