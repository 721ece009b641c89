package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shohaib/portfolio-cms/internal/model"
	"github.com/shohaib/portfolio-cms/internal/testutil"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error names field",
			in:         fmt.Errorf("wrapped: %w", model.NewValidationError("title", "is required")),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "title is required",
		},
		{
			name:       "bare validation sentinel",
			in:         model.ErrValidation,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation failed",
		},
		{
			name:       "unsupported media type",
			in:         fmt.Errorf("%w: %q", model.ErrUnsupportedMediaType, "application/pdf"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "unsupported media type",
		},
		{
			name:       "invalid credentials",
			in:         model.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid credentials",
		},
		{
			name:       "forbidden",
			in:         fmt.Errorf("%w: disabled", model.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantMsg:    "forbidden",
		},
		{
			name:       "not found",
			in:         fmt.Errorf("project %q: %w", "p1", model.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "not found",
		},
		{
			name:       "conflict",
			in:         model.ErrConflict,
			wantStatus: http.StatusConflict,
			wantMsg:    "conflict",
		},
		{
			name:       "upload failure is internal",
			in:         fmt.Errorf("%w: bucket missing", model.ErrUploadFailed),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
		{
			name:       "engine error does not leak",
			in:         errors.New(`pq: relation "projects" does not exist`),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(rec, req, testutil.MakeNoopLogger(), tt.in)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tt.wantMsg), rec.Body.String())
		})
	}
}
