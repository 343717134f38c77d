package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/model"
	"github.com/roach88/runlog/internal/pace"
	"github.com/roach88/runlog/internal/timecodec"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	fields    draftFlags
	FromDraft bool
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new run",
		Long: `Record a new run. Pace and speed are derived from distance and time.

When the input is rejected it is kept as the current draft, so a later
"add --from-draft" only needs the corrected field.

Example:
  runlog add --date 2025-01-05 --distance 3.1 --time 25:00 --mood active
  runlog add --date 2025-01-05 --distance 3.1 --time-digits 2500
  runlog add --from-draft --time 26:10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	opts.fields.register(cmd)
	cmd.Flags().BoolVar(&opts.FromDraft, "from-draft", false, "start from the saved draft")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)
	s, err := openSession(opts.RootOptions, cmd, f)
	if err != nil {
		return err
	}
	defer s.close()

	base := model.EmptyDraft()
	if opts.FromDraft {
		base = s.drafts.Load(s.ctx)
	}
	d, err := opts.fields.apply(cmd, base)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeUsage, "invalid input", err)
	}

	rec, err := s.norm.Create(d)
	if err != nil {
		if saveErr := s.drafts.Save(s.ctx, d); saveErr != nil {
			s.logger.Warn("failed to keep rejected draft", "error", saveErr)
		}
		return validationFailure(f, s, err)
	}

	if err := s.runs.Create(s.ctx, rec); err != nil {
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to save run", err)
	}
	if err := s.drafts.Clear(s.ctx); err != nil {
		s.logger.Warn("failed to clear draft", "error", err)
	}
	s.logger.Info("run added", "id", rec.ID)

	if f.JSON() {
		return f.Success(rec)
	}
	fmt.Fprintf(f.Writer, "Added run %s: %.2f mi in %s (%s /mi, %.2f mph)\n",
		rec.ID, rec.Distance, timecodec.Format(rec.TimeSec), pace.Display(rec.PaceSec), rec.SpeedMph)
	return nil
}
