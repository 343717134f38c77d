package timecodec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError reports a display string that is not "mm:ss" or "hh:mm:ss".
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse time %q: %s", e.Input, e.Reason)
}

// maxGroup bounds each group so h*3600 + m*60 + s cannot overflow int.
const maxGroup = math.MaxInt / 3661

// Parse converts "mm:ss" or "hh:mm:ss" into total seconds. A blank group
// counts as zero, so "25:" is 1500 and "1::05" is 3605.
func Parse(display string) (int, error) {
	if display == "" {
		return 0, &ParseError{Input: display, Reason: "empty"}
	}

	groups := strings.Split(display, ":")
	if len(groups) != 2 && len(groups) != 3 {
		return 0, &ParseError{Input: display, Reason: fmt.Sprintf("expected 2 or 3 groups, got %d", len(groups))}
	}

	values := make([]int, len(groups))
	for i, g := range groups {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			return 0, &ParseError{Input: display, Reason: fmt.Sprintf("group %d is not numeric", i+1)}
		}
		if n > maxGroup || n < -maxGroup {
			return 0, &ParseError{Input: display, Reason: fmt.Sprintf("group %d is out of range", i+1)}
		}
		values[i] = n
	}

	if len(values) == 2 {
		return values[0]*60 + values[1], nil
	}
	return values[0]*3600 + values[1]*60 + values[2], nil
}

// Format renders total seconds as "mm:ss", or "hh:mm:ss" when there is at
// least one full hour. Negative input is not supported.
func Format(totalSeconds int) string {
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
