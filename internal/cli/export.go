package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all runs as CSV",
		Long: `Export all runs, in the order they were recorded, as running-log.csv.

The file is written to --output (a directory), or to the export.dir from the
config, or to the working directory. Use "--output -" to write to stdout.

Example:
  runlog export
  runlog export -o ~/Downloads
  runlog export -o - | column -s, -t`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", `output directory, or "-" for stdout`)

	return cmd
}

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	Path    string `json:"path,omitempty"`
	Records int    `json:"records"`
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)
	s, err := openSession(opts.RootOptions, cmd, f)
	if err != nil {
		return err
	}
	defer s.close()

	records := s.runs.Records()
	data, err := export.Export(records)
	if errors.Is(err, export.ErrNothingToExport) {
		s.metrics.Export("empty")
		if f.JSON() {
			return f.Success(ExportResult{})
		}
		fmt.Fprintln(f.Writer, "Nothing to export.")
		return nil
	}
	if err != nil {
		s.metrics.Export("error")
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to export runs", err)
	}

	filename := s.cfg.Export.Filename
	if opts.Output == "-" {
		if err := (export.WriterSink{W: f.Writer}).Deliver(s.ctx, filename, data); err != nil {
			s.metrics.Export("error")
			return f.Fail(ExitCommandError, ErrCodeStorage, "failed to write export", err)
		}
		s.metrics.Export("ok")
		return nil
	}

	dir := opts.Output
	if dir == "" {
		dir = s.cfg.Export.Dir
	}
	sink := export.FileSink{Dir: dir}
	if err := sink.Deliver(s.ctx, filename, data); err != nil {
		s.metrics.Export("error")
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to write export", err)
	}
	s.metrics.Export("ok")
	s.logger.Info("runs exported", "path", sink.Path(filename), "records", len(records))

	result := ExportResult{Path: sink.Path(filename), Records: len(records)}
	if f.JSON() {
		return f.Success(result)
	}
	fmt.Fprintf(f.Writer, "Exported %d run(s) to %s\n", result.Records, result.Path)
	return nil
}
