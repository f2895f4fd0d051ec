package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studydeck/studydeck-api/internal/api"
	"github.com/studydeck/studydeck-api/internal/domain"
	"github.com/studydeck/studydeck-api/internal/generation"
)

type stubGenerator struct {
	set *domain.StudySet
	err error
}

func (s *stubGenerator) GenerateStudySet(
	ctx context.Context,
	req generation.Request,
) (*domain.StudySet, error) {
	return s.set, s.err
}

func testRouter(t *testing.T, gen generation.Generator) http.Handler {
	t.Helper()

	pageHandler, err := api.NewPageHandler(slog.Default())
	require.NoError(t, err)
	return newRouter(slog.Default(), gen, pageHandler)
}

func TestRouter(t *testing.T) {
	gen := &stubGenerator{
		set: &domain.StudySet{
			Flashcards: []domain.Flashcard{{Type: "qna", Question: "Q", Answer: "A", Tags: []string{}}},
			Practice:   []domain.PracticeItem{},
		},
	}
	router := testRouter(t, gen)

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("index_page", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "StudyDeck")
	})

	t.Run("static_assets", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "gen-form")
	})

	t.Run("generate_route", func(t *testing.T) {
		body := strings.NewReader(`{"notes":"some notes"}`)
		r := httptest.NewRequest(http.MethodPost, "/api/generate", body)
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"flashcards"`)
	})

	t.Run("export_route", func(t *testing.T) {
		body := strings.NewReader(`{"flashcards":[],"practice":[]}`)
		r := httptest.NewRequest(http.MethodPost, "/api/export/echo?kind=practice", body)
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "attachment; filename=practice.csv", w.Header().Get("Content-Disposition"))
	})

	t.Run("unknown_route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
