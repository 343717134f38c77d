package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/confirm"
)

// ClearOptions holds flags for the clear command.
type ClearOptions struct {
	*RootOptions
	Yes bool
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClearOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded run",
		Long: `Delete every recorded run after confirmation. Answer "y" to proceed;
anything else leaves the log untouched. The saved draft is kept.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

// ClearResult is the JSON payload of the clear command.
type ClearResult struct {
	Cleared bool `json:"cleared"`
	Removed int  `json:"removed"`
}

func runClear(opts *ClearOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)
	s, err := openSession(opts.RootOptions, cmd, f)
	if err != nil {
		return err
	}
	defer s.close()

	var c confirm.Confirmer = confirm.Always
	if !opts.Yes {
		in := opts.In
		if in == nil {
			in = cmd.InOrStdin()
		}
		c = confirm.Prompt{In: in, Out: f.GetErrWriter()}
	}

	count := s.runs.Len()
	cleared, err := s.runs.Clear(s.ctx, c)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to clear runs", err)
	}
	result := ClearResult{Cleared: cleared}
	if cleared {
		result.Removed = count
		s.logger.Info("runs cleared", "removed", count)
	}

	if f.JSON() {
		return f.Success(result)
	}
	if cleared {
		fmt.Fprintf(f.Writer, "Deleted %d run(s)\n", count)
	} else {
		fmt.Fprintln(f.Writer, "Cancelled, nothing deleted")
	}
	return nil
}
