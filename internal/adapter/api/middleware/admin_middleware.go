package middleware

import (
	"github.com/labstack/echo/v4"

	"altanzam/internal/domain/entity"
	"altanzam/internal/domain/repository"
	"altanzam/pkg/errors"
	"altanzam/pkg/response"
)

type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

// AdminOnly accepts an admin claim on the token or role "admin" on the
// profile document. Must run after Authenticate.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := GetSession(c)
		if !session.Authenticated() {
			return response.Error(c, errors.AuthRequired("Please sign in to continue"))
		}

		if !session.IsAdmin() {
			user, err := m.userRepo.GetByID(c.Request().Context(), session.UID)
			if err != nil && !errors.Is(err, errors.CodeNotFound) {
				return response.Error(c, errors.Internal("Failed to verify admin privileges", err))
			}
			if user == nil || user.Role != entity.RoleAdmin {
				return response.Error(c, errors.Forbidden("Admin privileges required", nil))
			}
			session.Role = entity.RoleAdmin
			setSession(c, session)
		}

		return next(c)
	}
}
