package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"orgdir/application/mediator"
	"orgdir/application/queries"
	"orgdir/pkg/auth"
	"orgdir/pkg/common"
)

// AuthConfig configures the authentication middleware
type AuthConfig struct {
	TokenManager          *auth.TokenManager
	Mediator              mediator.IMediator
	Logger                *zap.Logger
	IPRequestsPerMinute   int
	UserRequestsPerMinute int
}

// Authenticate creates middleware that accepts either a Bearer JWT or a
// static API key in the X-API-Key header. Both paths resolve to a user ID
// which is placed on the request context and rate limited.
func Authenticate(cfg AuthConfig) func(next http.Handler) http.Handler {
	ipLimiter := auth.NewIPRateLimiter(cfg.IPRequestsPerMinute)
	userLimiter := auth.NewUserRateLimiter(cfg.UserRequestsPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			allowed, _ := ipLimiter.Allow(r.Context(), clientIP)
			if !allowed {
				respondRateLimited(w, "Rate limit exceeded")
				return
			}

			var userID string
			ctx := r.Context()

			if apiKey := r.Header.Get("X-API-Key"); apiKey != "" {
				result, err := cfg.Mediator.Query(ctx, queries.GetAPIKeyQuery{Key: apiKey})
				if err != nil {
					cfg.Logger.Debug("API key rejected",
						zap.String("ip", clientIP),
						zap.Error(err),
					)
					respondUnauthorized(w, "Invalid or banned API key")
					return
				}
				keyResult, ok := result.(*queries.APIKeyResult)
				if !ok {
					respondUnauthorized(w, "Invalid or banned API key")
					return
				}
				userID = keyResult.UserID
				ctx = common.WithAPIKey(ctx, apiKey)
			} else {
				token := extractToken(r)
				if token == "" {
					respondUnauthorized(w, "Missing authentication token")
					return
				}

				claims, err := cfg.TokenManager.Validate(token)
				if err != nil {
					cfg.Logger.Debug("Token rejected",
						zap.String("ip", clientIP),
						zap.String("path", r.URL.Path),
						zap.Error(err),
					)
					respondUnauthorized(w, "Invalid or expired token")
					return
				}
				userID = claims.Subject
			}

			allowed, _ = userLimiter.Allow(ctx, userID)
			if !allowed {
				respondRateLimited(w, "User rate limit exceeded")
				return
			}

			ctx = common.WithUserID(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the JWT from the Authorization header or auth cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return authHeader
	}

	if cookie, err := r.Cookie("auth_token"); err == nil {
		return cookie.Value
	}

	return ""
}

// getClientIP extracts the client IP address
func getClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func respondRateLimited(w http.ResponseWriter, message string) {
	common.RespondError(w, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", message)
}
