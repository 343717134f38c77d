package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/model"
	"github.com/roach88/runlog/internal/pace"
	"github.com/roach88/runlog/internal/timecodec"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	fields draftFlags
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a recorded run",
		Long: `Change a recorded run. The run is pre-filled with its current values and
only the flags given are replaced; the whole entry is validated again.
Pass an empty --mood or --weight to clear them.

Example:
  runlog edit 0193a7c2-... --time 24:41
  runlog edit 0193a7c2-... --weight ""`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	opts.fields.register(cmd)

	return cmd
}

func runEdit(opts *EditOptions, id string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)
	s, err := openSession(opts.RootOptions, cmd, f)
	if err != nil {
		return err
	}
	defer s.close()

	existing, ok := s.runs.Get(id)
	if !ok {
		return f.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("no run with id %s", id), nil)
	}

	d, err := opts.fields.apply(cmd, model.DraftFromRecord(existing))
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeUsage, "invalid input", err)
	}

	patch, err := s.norm.Patch(d)
	if err != nil {
		return validationFailure(f, s, err)
	}
	if err := s.runs.Update(s.ctx, id, patch); err != nil {
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to save run", err)
	}
	s.logger.Info("run updated", "id", id)

	rec, _ := s.runs.Get(id)
	if f.JSON() {
		return f.Success(rec)
	}
	fmt.Fprintf(f.Writer, "Updated run %s: %.2f mi in %s (%s /mi, %.2f mph)\n",
		rec.ID, rec.Distance, timecodec.Format(rec.TimeSec), pace.Display(rec.PaceSec), rec.SpeedMph)
	return nil
}
