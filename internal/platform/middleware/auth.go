package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"personnel/internal/platform/metrics"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/platform/httputil"
	"personnel/pkg/requestcontext"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// TokenRevocationChecker defines the interface for checking if tokens are revoked
type TokenRevocationChecker interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	Subject string
	JTI     string // JWT ID for revocation tracking
}

// GetSubject retrieves the authenticated principal from the context.
func GetSubject(ctx context.Context) string {
	return requestcontext.Subject(ctx)
}

// RequireAuth admits requests carrying a valid bearer token. revocationChecker
// may be nil, in which case revocation is not consulted.
func RequireAuth(validator JWTValidator, revocationChecker TokenRevocationChecker, m *metrics.Metrics, logger *slog.Logger) func(http.Handler) http.Handler {
	reject := func(w http.ResponseWriter, r *http.Request, reason, description string, attrs ...any) {
		ctx := r.Context()
		if m != nil {
			m.IncrementTokenRejection(reason)
		}
		logger.WarnContext(ctx, "unauthorized access - "+reason,
			append(attrs, "request_id", GetRequestID(ctx))...,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, description))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				reject(w, r, "missing token", "missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				reject(w, r, "invalid token", "invalid or expired token", "error", err)
				return
			}

			ctx := r.Context()
			if revocationChecker != nil {
				if claims.JTI == "" {
					reject(w, r, "missing jti", "invalid or expired token")
					return
				}
				revoked, err := revocationChecker.IsTokenRevoked(ctx, claims.JTI)
				if err != nil {
					logger.ErrorContext(ctx, "failed to check token revocation",
						"error", err,
						"request_id", GetRequestID(ctx),
					)
					httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnknown, "failed to validate token"))
					return
				}
				if revoked {
					reject(w, r, "token revoked", "token has been revoked", "jti", claims.JTI)
					return
				}
			}

			ctx = requestcontext.WithSubject(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
