package api

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/studydeck/studydeck-api/internal/api/shared"
	"github.com/studydeck/studydeck-api/internal/domain"
	"github.com/studydeck/studydeck-api/internal/export"
)

// ExportHandler converts a client-supplied study set into a downloadable CSV.
type ExportHandler struct {
	logger *slog.Logger
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(logger *slog.Logger) *ExportHandler {
	return &ExportHandler{logger: logger}
}

// Export handles POST /api/export/echo requests. The kind query parameter
// selects the table ("flashcards" by default, or "practice"); any other
// value is a client error. The incoming set is checked for structure only;
// item-level enum values pass through verbatim into the CSV. The whole file
// is buffered in memory, payloads are tens of rows.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = export.KindFlashcards
	}

	var set domain.StudySet
	if err := shared.DecodeJSON(r, &set); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := set.ValidateShape(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	var buf bytes.Buffer
	switch kind {
	case export.KindFlashcards:
		if err := export.WriteFlashcardsCSV(&buf, set.Flashcards); err != nil {
			h.logger.Error("failed to render flashcards CSV", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to render CSV")
			return
		}
	case export.KindPractice:
		if err := export.WritePracticeCSV(&buf, set.Practice); err != nil {
			h.logger.Error("failed to render practice CSV", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to render CSV")
			return
		}
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown kind")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+kind+`.csv`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write CSV response", "error", err)
	}
}
