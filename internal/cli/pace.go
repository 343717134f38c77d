package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/pace"
	"github.com/roach88/runlog/internal/timecodec"
)

// PaceResult is the JSON payload of the pace command.
type PaceResult struct {
	PaceSec  int     `json:"paceSec"`
	Pace     string  `json:"pace"`
	SpeedMph float64 `json:"speedMph"`
}

// NewPaceCommand creates the pace command. It touches no storage.
func NewPaceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pace <distance> <time>",
		Short: "Calculate pace and speed without recording a run",
		Long: `Calculate pace and speed without recording a run.

Example:
  runlog pace 3.1 25:00`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)

			preview := pace.Preview(args[0], args[1])
			if preview == "" {
				return f.Fail(ExitFailure, ErrCodeUsage,
					fmt.Sprintf("cannot compute pace for distance %q and time %q", args[0], args[1]), nil)
			}

			// Preview accepted both inputs, so these cannot fail.
			seconds, _ := timecodec.Parse(args[1])
			miles, _ := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)

			result := PaceResult{
				PaceSec:  pace.Pace(seconds, miles),
				Pace:     preview,
				SpeedMph: pace.Speed(miles, seconds),
			}
			if f.JSON() {
				return f.Success(result)
			}
			fmt.Fprintf(f.Writer, "%s  %.2f mph\n", result.Pace, result.SpeedMph)
			return nil
		},
	}

	return cmd
}
