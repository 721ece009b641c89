package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/shohaib/portfolio-cms/internal/logger"
	"github.com/shohaib/portfolio-cms/internal/model"
)

// dummyHash is compared against when the identifier does not match, so a
// wrong email costs the same as a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("portfolio-cms"), bcrypt.DefaultCost)
	return hash
})

// Auth verifies the admin credentials and issues session tokens.
type Auth struct {
	email        string
	passwordHash []byte
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	email string,
	passwordHash string,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		email:        normalizeEmail(email),
		passwordHash: []byte(passwordHash),
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Login returns a signed session token when identifier and secret match the
// configured admin account.
func (a *Auth) Login(ctx context.Context, identifier, secret string) (string, error) {
	a.logger.Debug("Auth service: login attempt")

	identifier = normalizeEmail(identifier)
	emailMatch := a.email != "" &&
		subtle.ConstantTimeCompare([]byte(identifier), []byte(a.email)) == 1

	hash := a.passwordHash
	if !emailMatch || len(hash) == 0 {
		hash = dummyHash()
	}
	passwordErr := bcrypt.CompareHashAndPassword(hash, []byte(secret))

	if !emailMatch || len(a.passwordHash) == 0 || passwordErr != nil {
		a.logger.Info("Auth service: invalid credentials")
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.GenerateAccessToken(a.email)
	if err != nil {
		a.logger.Error("Auth service: failed to generate access token",
			"error", err.Error())
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: admin logged in")
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
