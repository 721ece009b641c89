package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shohaib/portfolio-cms/internal/logger"
	"github.com/shohaib/portfolio-cms/internal/model"
)

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message, id string) {
	writeJSON(w, status, messageResponse{Message: message, ID: id})
}

// handleError maps domain errors to a status code. Unknown errors become a
// generic 500 and their text is only logged.
func handleError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, verr.Error(), "")
	case errors.Is(err, model.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "validation failed", "")
	case errors.Is(err, model.ErrUnsupportedMediaType):
		writeMessage(w, http.StatusBadRequest, "unsupported media type", "")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "invalid credentials", "")
	case errors.Is(err, model.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "forbidden", "")
	case errors.Is(err, model.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found", "")
	case errors.Is(err, model.ErrConflict):
		writeMessage(w, http.StatusConflict, "conflict", "")
	default:
		log.Error("HTTP handler: request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "internal server error", "")
	}
}
