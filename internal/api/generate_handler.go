package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/studydeck/studydeck-api/internal/api/shared"
	"github.com/studydeck/studydeck-api/internal/generation"
)

// GenerateHandler handles study set generation requests.
type GenerateHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generator generation.Generator, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		logger:    logger,
	}
}

// Generate handles POST /api/generate requests. It issues one model call
// and returns either the validated study set or, when the model produced
// malformed output, a 500 payload carrying the parse error and the raw
// response text. Upstream failures never crash the process; they are
// isolated to this request.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	set, err := h.generator.GenerateStudySet(r.Context(), generation.Request{
		Notes:  req.Notes,
		Course: req.Course,
		Topic:  req.Topic,
	})
	if err != nil {
		var invalid *generation.InvalidResponseError
		if errors.As(err, &invalid) {
			h.logger.Error("model output failed parsing or validation",
				"error", err,
				"raw_length", len(invalid.Raw))
			shared.RespondWithJSON(w, r, http.StatusInternalServerError, GenerateErrorResponse{
				Error: "Parse error: " + invalid.Reason.Error(),
				Raw:   invalid.Raw,
			})
			return
		}

		h.logger.Error("study set generation failed", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate study materials")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, set)
}
