package server

import (
	"github.com/labstack/echo/v4"

	"github.com/qrave1/RoomChat/internal/application/config"
	"github.com/qrave1/RoomChat/internal/infra/ports/http/handlers"
	"github.com/qrave1/RoomChat/internal/infra/ports/http/middleware"
)

func New(
	cfg *config.Config,
	roomHandler *handlers.RoomHandler,
	wsHandler *handlers.WebSocketHandler,
	authenticated ...echo.MiddlewareFunc,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.SlogLogger())
	e.Use(middleware.PrometheusMiddleware())

	api := e.Group("/api")
	{
		v1 := api.Group("/v1")
		v1.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		v1.Use(authenticated...)
		{
			v1.GET("/ws", wsHandler.Handle)

			v1.GET("/rooms", roomHandler.ListRoomsHandler)
			v1.POST("/rooms", roomHandler.CreateRoomHandler)
			v1.GET("/rooms/:id", roomHandler.GetRoomHandler)
			v1.PUT("/rooms/:id/name", roomHandler.RenameRoomHandler)

			v1.GET("/rooms/:id/users", roomHandler.ListUsersHandler)
			v1.POST("/rooms/:id/users", roomHandler.InviteHandler)
			v1.DELETE("/rooms/:id/users", roomHandler.KickHandler)
			v1.DELETE("/rooms/:id/membership", roomHandler.LeaveHandler)

			v1.POST("/rooms/:id/messages", roomHandler.PostMessageHandler)
		}
	}

	return e
}
