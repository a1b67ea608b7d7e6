package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	userIDKey ctxKey = "user_id"

	errNoToken      = "No token provided"
	errInvalidToken = "Invalid token"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	VerifyToken(token string) (uint, error)
}

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

// Authenticate rejects requests without a valid bearer token. For the rest
// the user id is stored in the request context, see UserID.
func (m *AuthMiddleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestID(r.Context())

		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			m.reject(w, errNoToken)
			m.logs.Infow("request without token",
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		userID, err := m.verifier.VerifyToken(token)
		if err != nil {
			m.reject(w, errInvalidToken)
			m.logs.Infow("token rejected",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		m.logs.Errorw("failed to encode response", "error", err)
	}
}

// bearerToken returns the second field of an "Authorization: Bearer <token>"
// header, or "" when there is none.
func bearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user id stored by Authenticate.
func UserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey).(uint)
	return userID, ok
}
