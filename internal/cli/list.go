package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/view"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Sort string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recorded runs",
		Long: `Show recorded runs, newest first unless --sort says otherwise.

Sort orders:
  date_desc      newest first (default)
  date_asc       oldest first
  pace_best      fastest pace first
  distance_desc  longest first`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", string(view.DefaultSort), "sort order")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	mode, err := view.ParseSortMode(opts.Sort)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeUsage, "invalid --sort", err)
	}

	s, err := openSession(opts.RootOptions, cmd, f)
	if err != nil {
		return err
	}
	defer s.close()

	records := view.Sort(s.runs.Records(), mode)
	f.VerboseLog("%d run(s), sorted by %s", len(records), mode)

	if f.JSON() {
		return f.Success(records)
	}
	return view.RenderTable(f.Writer, records)
}
