package generation

import (
	"context"

	"github.com/studydeck/studydeck-api/internal/domain"
)

// Request carries the user-supplied inputs for one generation call.
// Notes is the raw study material; Course and Topic are optional labels
// that default to empty strings.
type Request struct {
	Notes  string
	Course string
	Topic  string
}

// Generator defines the interface for turning free-form notes into a
// validated study set. It is the boundary between the application core
// and the external chat-completion service.
type Generator interface {
	// GenerateStudySet issues one model call with a prompt built from the
	// request, then parses and validates the model's JSON output.
	//
	// On malformed or schema-violating model output it returns an
	// *InvalidResponseError carrying the raw response text. Transport and
	// credential failures are wrapped in ErrGenerationFailed.
	GenerateStudySet(ctx context.Context, req Request) (*domain.StudySet, error)
}
