package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const (
	AuthTokenHeader            = "AUTH_TOKEN"
	SubjectKey      contextKey = "subject"
)

type AuthMiddleware struct {
	logs       *zap.SugaredLogger
	authorizer Authorizer
}

func NewAuthMiddleware(logger *zap.SugaredLogger, authorizer Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		logs:       logger,
		authorizer: authorizer,
	}
}

// Authenticate rejects requests without a valid AUTH_TOKEN header and stores
// the token subject in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		token := r.Header.Get(AuthTokenHeader)
		if token == "" {
			unauthorized(w, "AUTH_TOKEN header is required")
			m.logs.Errorw("missing AUTH_TOKEN header", "path", r.URL.Path, "request_id", requestID)
			return
		}

		subject, err := m.authorizer.Authorize(token)
		if err != nil {
			unauthorized(w, "invalid or expired token")
			m.logs.Errorw("token rejected", "error", err, "path", r.URL.Path, "request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), SubjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   msg,
	})
}
