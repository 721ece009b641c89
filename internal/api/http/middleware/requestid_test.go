package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveRequestID(t *testing.T, incoming string) (captured string, header string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()

	RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	})).ServeHTTP(rec, req)

	return captured, rec.Header().Get(chimiddleware.RequestIDHeader)
}

func TestRequestID_Generates(t *testing.T) {
	captured, header := serveRequestID(t, "")

	require.NotEmpty(t, captured)
	assert.Equal(t, captured, header)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	captured, header := serveRequestID(t, "external-id")

	assert.Equal(t, "external-id", captured)
	assert.Equal(t, "external-id", header)
}

func TestRequestID_RejectsInvalid(t *testing.T) {
	for _, id := range []string{"line\nbreak", strings.Repeat("a", maxRequestIDLength+1), "tab\there"} {
		captured, _ := serveRequestID(t, id)
		assert.NotEqual(t, id, captured)
		_, err := uuid.Parse(captured)
		assert.NoError(t, err)
	}
}
