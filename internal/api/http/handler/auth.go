package handler

import (
	"context"
	"net/http"

	"github.com/shohaib/portfolio-cms/internal/logger"
)

// AuthService verifies admin credentials.
type AuthService interface {
	Login(ctx context.Context, identifier, secret string) (string, error)
}

// Auth handles the login endpoint.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login accepts {identifier, secret} or the older {email, password} body and
// returns a session token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	in, err := readInput(r, "", 0)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	identifier := in.get("identifier", "email")
	secret := in.get("secret", "password")

	h.logger.Debug("Auth handler: processing login request")

	token, err := h.authService.Login(r.Context(), identifier, secret)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
