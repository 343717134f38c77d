// Package pace derives per-mile pace and average speed from a distance in
// miles and an elapsed time in seconds.
package pace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/runlog/internal/timecodec"
)

// Pace returns seconds per mile, rounded to the nearest second.
// distanceMiles must be positive; 0 is returned otherwise.
func Pace(totalSeconds int, distanceMiles float64) int {
	if distanceMiles <= 0 {
		return 0
	}
	return int(math.Round(float64(totalSeconds) / distanceMiles))
}

// Speed returns miles per hour rounded to two decimals.
// totalSeconds must be positive; 0 is returned otherwise.
func Speed(distanceMiles float64, totalSeconds int) float64 {
	if totalSeconds <= 0 {
		return 0
	}
	return Round2(distanceMiles / (float64(totalSeconds) / 3600))
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Display renders a pace as "mm:ss". There is never an hour field; paces of
// an hour or more show minutes past 59.
func Display(paceSec int) string {
	return fmt.Sprintf("%02d:%02d", paceSec/60, paceSec%60)
}

// Preview computes the live pace hint shown while a run is being entered,
// e.g. "08:20 /mi". It returns "" until both inputs describe a valid run.
func Preview(distance, display string) string {
	if distance == "" || display == "" {
		return ""
	}
	seconds, err := timecodec.Parse(display)
	if err != nil || seconds <= 0 {
		return ""
	}
	miles, err := strconv.ParseFloat(strings.TrimSpace(distance), 64)
	if err != nil || miles <= 0 || math.IsInf(miles, 0) {
		return ""
	}
	return Display(Pace(seconds, miles)) + " /mi"
}
