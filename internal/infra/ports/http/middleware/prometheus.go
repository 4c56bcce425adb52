package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qrave1/RoomChat/internal/application/metric"
)

// PrometheusMiddleware создает middleware для сбора метрик HTTP запросов
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			// Полный путь эндпоинта, без подставленных id
			endpoint := c.Path()

			statusCode := c.Response().Status
			if statusCode == 0 {
				statusCode = http.StatusOK
			}

			// Если произошла ошибка, но статус не установлен
			if err != nil && statusCode < http.StatusBadRequest {
				statusCode = http.StatusInternalServerError

				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					statusCode = httpErr.Code
				}
			}

			metric.RecordHTTPMetrics(c.Request().Method, endpoint, statusCode, time.Since(start))

			return err
		}
	}
}
