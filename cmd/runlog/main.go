// Command runlog records runs and exports them as CSV.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/runlog/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := cli.ExitSuccess
	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		// Commands report ExitErrors through the formatter. Anything else
		// is a flag or argument error from cobra.
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
			code = cli.ExitCommandError
		}
	}
	stop()
	os.Exit(code)
}
