package middleware

import (
	"net/http"
	"strings"

	"github.com/shohaib/portfolio-cms/internal/logger"
	"github.com/shohaib/portfolio-cms/internal/model"
)

// TokenParser resolves the subject of a session token.
type TokenParser interface {
	ParseAccessToken(token string) (string, error)
}

// Authenticate rejects requests without a valid bearer token and stores the
// token subject in the request context.
type Authenticate struct {
	tokenParser TokenParser
	logger      *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, logger: logger}
}

// Handle wraps next. Every failure answers 403 with an empty body.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			m.logger.Debug("Authenticate: missing bearer token",
				"path", r.URL.Path)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		subject, err := m.tokenParser.ParseAccessToken(token)
		if err != nil {
			m.logger.Info("Authenticate: invalid token",
				"path", r.URL.Path,
				"error", err.Error())
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(model.WithSubject(r.Context(), subject)))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
