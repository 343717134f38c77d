package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/runlog/internal/model"
	"github.com/roach88/runlog/internal/normalize"
	"github.com/roach88/runlog/internal/timecodec"
)

// draftFlags are the run entry fields shared by add, edit and draft set.
type draftFlags struct {
	date       string
	distance   string
	time       string
	timeDigits string
	mood       string
	weight     string
}

func (d *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.date, "date", "", "run date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&d.distance, "distance", "", "distance in miles")
	cmd.Flags().StringVar(&d.time, "time", "", "elapsed time (hh:mm:ss or mm:ss)")
	cmd.Flags().StringVar(&d.timeDigits, "time-digits", "", "elapsed time typed as digits, e.g. 2500 for 00:25:00")
	cmd.Flags().StringVar(&d.mood, "mood", "", "energetic|active|slow|tired, empty for none")
	cmd.Flags().StringVar(&d.weight, "weight", "", "body weight in pounds, empty for none")
	cmd.MarkFlagsMutuallyExclusive("time", "time-digits")
}

// apply overwrites the fields of base whose flags were set on cmd.
func (d *draftFlags) apply(cmd *cobra.Command, base model.Draft) (model.Draft, error) {
	flags := cmd.Flags()
	if flags.Changed("date") {
		base.Date = d.date
	}
	if flags.Changed("distance") {
		base.Distance = d.distance
	}
	if flags.Changed("time") {
		base.Time = d.time
	}
	if flags.Changed("time-digits") {
		buf := timecodec.NewDigitBuffer("")
		for _, r := range d.timeDigits {
			if !buf.Push(r) {
				return base, fmt.Errorf("--time-digits accepts digits only, got %q", d.timeDigits)
			}
		}
		base.Time = buf.Display()
	}
	if flags.Changed("mood") {
		base.Mood = d.mood
	}
	if flags.Changed("weight") {
		base.Weight = d.weight
	}
	return base, nil
}

// validationFailure reports a rejected draft. The failing field is named so
// the user knows which input to correct.
func validationFailure(f *OutputFormatter, s *session, err error) error {
	var ve *normalize.ValidationError
	if !errors.As(err, &ve) {
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to validate run", err)
	}
	s.metrics.ValidationFailure(string(ve.Field))
	s.logger.Debug("draft rejected", "field", ve.Field, "code", ve.Code, "error", err)

	details := map[string]any{"field": ve.Field, "step": ve.Step()}
	if ve.Err != nil {
		details["cause"] = ve.Err.Error()
	}
	_ = f.Error(string(ve.Code), ve.Message, details)
	return WrapExitError(ExitFailure, ve.Message, err)
}
