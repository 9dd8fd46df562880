package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"altanzam/internal/domain/entity"
	"altanzam/pkg/errors"
	"altanzam/pkg/response"
)

const (
	UIDKey     = "uid"
	SessionKey = "session"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (entity.Session, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken, ok := bearerToken(c)
		if !ok {
			return response.Error(c, errors.AuthRequired("Please sign in to continue"))
		}

		session, err := m.verifier.VerifyToken(c.Request().Context(), idToken)
		if err != nil {
			return response.Error(c, errors.AuthRequired("Your session has expired, please sign in again"))
		}

		setSession(c, session)
		return next(c)
	}
}

// OptionalAuth attaches a session when a valid token is present and lets
// guests through otherwise.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if idToken, ok := bearerToken(c); ok {
			if session, err := m.verifier.VerifyToken(c.Request().Context(), idToken); err == nil {
				setSession(c, session)
			}
		}
		return next(c)
	}
}

// VerifyQueryToken authenticates from the "token" query parameter, for
// clients that cannot set headers on a WebSocket handshake.
func (m *AuthMiddleware) VerifyQueryToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken := c.QueryParam("token")
		if idToken == "" {
			if t, ok := bearerToken(c); ok {
				idToken = t
			}
		}
		if idToken == "" {
			return response.Error(c, errors.AuthRequired("Please sign in to continue"))
		}

		session, err := m.verifier.VerifyToken(c.Request().Context(), idToken)
		if err != nil {
			return response.Error(c, errors.AuthRequired("Your session has expired, please sign in again"))
		}

		setSession(c, session)
		return next(c)
	}
}

// GetSession returns the caller's session, or the zero session for guests.
func GetSession(c echo.Context) entity.Session {
	session, _ := c.Get(SessionKey).(entity.Session)
	return session
}

func setSession(c echo.Context, session entity.Session) {
	c.Set(UIDKey, session.UID)
	c.Set(SessionKey, session)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
