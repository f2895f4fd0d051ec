package api

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/studydeck/studydeck-api/web"
)

// PageHandler serves the HTML entry page.
type PageHandler struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// NewPageHandler parses the embedded entry page template.
func NewPageHandler(logger *slog.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "index.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{tmpl: tmpl, logger: logger}, nil
}

// Index handles GET / requests by rendering the entry page.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, nil); err != nil {
		h.logger.Error("failed to render entry page", "error", err)
	}
}
