package view

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/runlog/internal/model"
)

// MoodLabel returns the display name of m, e.g. "Energetic". Unset moods
// render as "".
func MoodLabel(m model.Mood) string {
	if m == model.MoodNone {
		return ""
	}
	return cases.Title(language.English).String(string(m))
}
