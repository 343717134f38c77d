package normalize

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes validation failures.
type ErrorCode string

const (
	// ErrCodeMissingDate indicates the date field is empty.
	ErrCodeMissingDate ErrorCode = "MISSING_DATE"

	// ErrCodeInvalidDistance indicates the distance is not a positive number.
	ErrCodeInvalidDistance ErrorCode = "INVALID_DISTANCE"

	// ErrCodeInvalidTime indicates the time does not parse or is not positive.
	ErrCodeInvalidTime ErrorCode = "INVALID_TIME"

	// ErrCodeInvalidMood indicates a mood outside the fixed enumeration.
	ErrCodeInvalidMood ErrorCode = "INVALID_MOOD"

	// ErrCodeInvalidWeight indicates a weight that is not a non-negative number.
	ErrCodeInvalidWeight ErrorCode = "INVALID_WEIGHT"
)

// Field names a draft input field.
type Field string

const (
	FieldDate     Field = "date"
	FieldDistance Field = "distance"
	FieldTime     Field = "time"
	FieldMood     Field = "mood"
	FieldWeight   Field = "weight"
)

// fieldSteps maps each field to its position in the entry form.
var fieldSteps = map[Field]int{
	FieldDate:     0,
	FieldDistance: 1,
	FieldTime:     2,
	FieldMood:     3,
	FieldWeight:   4,
}

// ValidationError reports the first invalid field of a draft so the caller
// can send the user back to it.
type ValidationError struct {
	// Code identifies the failure.
	Code ErrorCode

	// Field is the offending draft field.
	Field Field

	// Message is a human-readable prompt for the user.
	Message string

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Step returns the form step that holds the offending field.
func (e *ValidationError) Step() int {
	return fieldSteps[e.Field]
}

// IsValidationError reports whether err is a ValidationError with the given
// code. Uses errors.As to handle wrapped errors.
func IsValidationError(err error, code ErrorCode) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

func newMissingDate() *ValidationError {
	return &ValidationError{Code: ErrCodeMissingDate, Field: FieldDate, Message: "please choose a date"}
}

func newInvalidDistance(err error) *ValidationError {
	return &ValidationError{Code: ErrCodeInvalidDistance, Field: FieldDistance, Message: "enter a valid distance (miles)", Err: err}
}

func newInvalidTime(err error) *ValidationError {
	return &ValidationError{Code: ErrCodeInvalidTime, Field: FieldTime, Message: "enter a valid time (hh:mm:ss)", Err: err}
}

func newInvalidMood(mood string) *ValidationError {
	return &ValidationError{Code: ErrCodeInvalidMood, Field: FieldMood, Message: fmt.Sprintf("unknown mood %q", mood)}
}

func newInvalidWeight(err error) *ValidationError {
	return &ValidationError{Code: ErrCodeInvalidWeight, Field: FieldWeight, Message: "enter a valid weight (lbs)", Err: err}
}
