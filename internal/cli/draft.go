package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/model"
	"github.com/roach88/runlog/internal/pace"
)

// NewDraftCommand creates the draft command group.
func NewDraftCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or change the saved, uncommitted run entry",
		Long: `The draft is a single run entry that has not been recorded yet. It
survives restarts until it is cleared or recorded with "add --from-draft".`,
	}

	cmd.AddCommand(newDraftShowCommand(rootOpts))
	cmd.AddCommand(newDraftSetCommand(rootOpts))
	cmd.AddCommand(newDraftClearCommand(rootOpts))

	return cmd
}

// DraftView is the JSON payload of the draft commands.
type DraftView struct {
	Draft model.Draft `json:"draft"`
	Pace  string      `json:"pace,omitempty"`
}

func newDraftShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Print the saved draft",
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

			return printDraft(f, s.drafts.Load(s.ctx))
		},
	}
}

func newDraftSetCommand(rootOpts *RootOptions) *cobra.Command {
	var fields draftFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change fields of the saved draft",
		Long: `Change fields of the saved draft. Only the flags given are changed and
nothing is validated until the draft is recorded.

Example:
  runlog draft set --date 2025-01-05 --distance 3.1
  runlog draft set --time-digits 2500`,
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

			d, err := fields.apply(cmd, s.drafts.Load(s.ctx))
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeUsage, "invalid input", err)
			}
			if err := s.drafts.Save(s.ctx, d); err != nil {
				return f.Fail(ExitCommandError, ErrCodeStorage, "failed to save draft", err)
			}
			return printDraft(f, d)
		},
	}

	fields.register(cmd)

	return cmd
}

func newDraftClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clear",
		Short:         "Discard the saved draft",
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

			if err := s.drafts.Clear(s.ctx); err != nil {
				return f.Fail(ExitCommandError, ErrCodeStorage, "failed to clear draft", err)
			}
			if f.JSON() {
				return f.Success(DraftView{Draft: model.EmptyDraft()})
			}
			fmt.Fprintln(f.Writer, "Draft cleared")
			return nil
		},
	}
}

func printDraft(f *OutputFormatter, d model.Draft) error {
	v := DraftView{Draft: d, Pace: pace.Preview(d.Distance, d.Time)}
	if f.JSON() {
		return f.Success(v)
	}

	fmt.Fprintf(f.Writer, "Date:     %s\n", d.Date)
	fmt.Fprintf(f.Writer, "Distance: %s\n", d.Distance)
	fmt.Fprintf(f.Writer, "Time:     %s\n", d.Time)
	fmt.Fprintf(f.Writer, "Mood:     %s\n", d.Mood)
	fmt.Fprintf(f.Writer, "Weight:   %s\n", d.Weight)
	if v.Pace != "" {
		fmt.Fprintf(f.Writer, "Pace:     %s\n", v.Pace)
	}
	return nil
}
