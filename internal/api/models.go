package api

// Common request/response structures

// GenerateRequest defines the payload for the study set generation
// endpoint. Course and topic are optional and default to empty strings.
// Notes intentionally carries no validation tag: empty notes are passed
// through to the model, which decides how to respond to thin input.
type GenerateRequest struct {
	Notes  string `json:"notes"`
	Course string `json:"course"`
	Topic  string `json:"topic"`
}

// GenerateErrorResponse is returned when the model produced output that
// could not be parsed or validated. Raw carries the unparsed model output
// so the caller can inspect what came back.
type GenerateErrorResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}
