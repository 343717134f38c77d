package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/view"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Summarize recorded runs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			s, err := openSession(rootOpts, cmd, f)
			if err != nil {
				return err
			}
			defer s.close()

			summary := view.Stats(s.runs.Records())
			if f.JSON() {
				return f.Success(summary)
			}
			return view.RenderStats(f.Writer, summary)
		},
	}

	return cmd
}
