package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qrave1/RoomChat/internal/application/constant"
	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/infra/ports/http/dto"
)

// statusFor сопоставляет вид доменной ошибки HTTP-статусу. 0 - ошибка не доменная.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNoSuchUser), errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrRoomFull):
		return http.StatusConflict
	default:
		return 0
	}
}

// publicMessage - текст ошибки для клиента. Внутренние ошибки не раскрываются.
func publicMessage(err error) string {
	if statusFor(err) == 0 {
		return "internal error"
	}

	return err.Error()
}

func writeError(c echo.Context, op string, err error) error {
	status := statusFor(err)
	if status == 0 {
		slog.Error(op, slog.Any(constant.Error, err))

		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: publicMessage(err)})
	}

	return c.JSON(status, dto.ErrorResponse{Error: publicMessage(err)})
}
