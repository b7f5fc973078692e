package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"wordbook/internal/service/logger"

	"go.uber.org/zap"
)

type authKey int

const (
	userIDKey authKey = iota
	userEmailKey
)

func WithUser(ctx context.Context, userID string, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userEmailKey, email)
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(userEmailKey).(string); ok {
		return email
	}
	return ""
}

// Auth guards protected routes: it reads the Authorization header, verifies
// the bearer token and places the caller's identity on the request context.
// Every failure, including verification errors, answers 401.
func Auth(jwtToken JwtTokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, requestID, "Not authenticated.")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				writeAuthError(w, requestID, "Authorization value has incorrect format.")
				return
			}

			claims, err := jwtToken.Validate(parts[1])
			if err != nil {
				logger.AccessLogger.Warn("Token verification failed",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
				writeAuthError(w, requestID, "Not authenticated.")
				return
			}

			ctx := WithUser(r.Context(), claims.UserId, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, requestID string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		logger.AccessLogger.Error("Failed to encode auth error response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}
