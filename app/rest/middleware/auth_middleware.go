package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"school-admin-service/app/domain"
	"school-admin-service/app/port"
)

// CallerIDKey is the echo context key holding the authenticated caller's
// identity id
const CallerIDKey = "caller_id"

// AuthMiddleware resolves session tokens and gates routes by role
type AuthMiddleware struct {
	identityGateway port.IdentityGateway
	authzUsecase    port.AuthzUsecase
	logger          *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(identityGateway port.IdentityGateway, authzUsecase port.AuthzUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		identityGateway: identityGateway,
		authzUsecase:    authzUsecase,
		logger:          logger,
	}
}

// RequireAuth resolves the session token to a caller identity and stores it
// on the request context. Requests without a resolvable session get 401.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			sessionToken := m.extractSessionToken(c)
			if sessionToken == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			callerID, err := m.identityGateway.ResolveSession(ctx, sessionToken)
			if err != nil {
				m.logger.Warn("session resolution failed", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(CallerIDKey, callerID)
			return next(c)
		}
	}
}

// RequireRoles gates the route to callers holding one of the given roles.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			callerID := CallerID(c)
			if callerID == uuid.Nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			allowed, err := m.authzUsecase.Authorize(ctx, callerID, roles)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				if errors.Is(err, domain.ErrProfileNotFound) || errors.Is(err, domain.ErrProfileInactive) {
					return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
				}
				m.logger.Error("authorization check failed", "caller_id", callerID, "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "authorization check failed")
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
			}

			return next(c)
		}
	}
}

// CallerID returns the authenticated caller id set by RequireAuth, or
// uuid.Nil when the request is unauthenticated.
func CallerID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(CallerIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// extractSessionToken extracts the session token from the request.
// Browser sessions carry an ory_kratos_session cookie; API clients use
// Authorization or X-Session-Token.
func (m *AuthMiddleware) extractSessionToken(c echo.Context) string {
	if cookie, err := c.Cookie("ory_kratos_session"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}
