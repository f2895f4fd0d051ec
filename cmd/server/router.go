package main

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/studydeck/studydeck-api/internal/api"
	apiMiddleware "github.com/studydeck/studydeck-api/internal/api/middleware"
	"github.com/studydeck/studydeck-api/internal/generation"
	"github.com/studydeck/studydeck-api/web"
)

// newRouter configures the application router with all routes and middleware.
func newRouter(
	logger *slog.Logger,
	generator generation.Generator,
	pageHandler *api.PageHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	generateHandler := api.NewGenerateHandler(generator, logger)
	exportHandler := api.NewExportHandler(logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", generateHandler.Generate)
		r.Post("/export/echo", exportHandler.Export)
	})

	r.Get("/", pageHandler.Index)

	// Static assets are embedded; the embed FS roots at "static".
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		// Only possible if the embedded tree is missing entirely.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
