package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/qrave1/RoomChat/internal/infra/appctx"
)

type UserRegistrar interface {
	EnsureUser(id uuid.UUID)
}

// RegisterUser добавляет авторизованного пользователя в справочник. Ставится после JWTAuthMiddleware.
func RegisterUser(registrar UserRegistrar) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, ok := appctx.UserID(c.Request().Context()); ok {
				registrar.EnsureUser(userID)
			}

			return next(c)
		}
	}
}
