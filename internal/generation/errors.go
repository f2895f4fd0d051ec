package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package.
var (
	// ErrGenerationFailed is returned when the model call itself fails,
	// for example on network or credential errors.
	ErrGenerationFailed = errors.New("failed to generate study set from notes")

	// ErrInvalidResponse is returned when the model response cannot be
	// parsed as JSON or does not match the study set schema.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// InvalidResponseError reports model output that failed parsing or schema
// validation. It keeps the raw response text so the caller can surface it
// for inspection. Single attempt per request; the caller decides whether
// to resubmit.
type InvalidResponseError struct {
	// Raw is the unparsed model output.
	Raw string

	// Reason describes what made the output invalid.
	Reason error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidResponse, e.Reason)
}

// Unwrap lets errors.Is match against ErrInvalidResponse.
func (e *InvalidResponseError) Unwrap() error {
	return ErrInvalidResponse
}
