package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a recorded run",
		Long: `Remove a recorded run. Deleting an id that does not exist changes nothing
and is not an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

// DeleteResult is the JSON payload of the delete command.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func runDelete(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	s, err := openSession(opts, cmd, f)
	if err != nil {
		return err
	}
	defer s.close()

	_, existed := s.runs.Get(id)
	if err := s.runs.Delete(s.ctx, id); err != nil {
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to delete run", err)
	}

	if f.JSON() {
		return f.Success(DeleteResult{ID: id, Deleted: existed})
	}
	if existed {
		fmt.Fprintf(f.Writer, "Deleted run %s\n", id)
	} else {
		fmt.Fprintf(f.Writer, "No run with id %s, nothing deleted\n", id)
	}
	return nil
}
