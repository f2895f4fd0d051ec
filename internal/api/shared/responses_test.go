package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRespondWithError(t *testing.T) {
	t.Run("without_trace_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/test", nil)

		RespondWithError(w, r, http.StatusBadRequest, "Unknown kind")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		// trace_id is omitted when no middleware set one.
		assert.JSONEq(t, `{"error":"Unknown kind"}`, w.Body.String())
	})

	t.Run("with_trace_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/test", nil)
		r = r.WithContext(SetTraceID(r.Context()))

		RespondWithError(w, r, http.StatusInternalServerError, "boom")

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "boom", body.Error)
		assert.NotEmpty(t, body.TraceID)
	})
}

func TestTraceIDContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, GetTraceID(r.Context()))

	ctx := SetTraceID(r.Context())
	first := GetTraceID(ctx)
	assert.NotEmpty(t, first)

	// A new trace ID per call.
	second := GetTraceID(SetTraceID(r.Context()))
	assert.NotEqual(t, first, second)
}
