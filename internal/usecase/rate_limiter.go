package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/qrave1/RoomChat/internal/application/constant"
	"github.com/qrave1/RoomChat/internal/application/metric"
	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/session"
)

// RateLimiter ограничивает частоту сообщений и создания комнат в рамках одной сессии
type RateLimiter struct {
	cfg ConfigProvider
}

func NewRateLimiter(cfg ConfigProvider) *RateLimiter {
	return &RateLimiter{cfg: cfg}
}

// Exceeded - true, если с последнего принятого сообщения прошло меньше minDelay.
// Отклонённый вызов не сдвигает окно.
func (l *RateLimiter) Exceeded(sess *session.Session, now time.Time, minDelay time.Duration) bool {
	return sess.Throttle(now, minDelay)
}

// Check берёт задержку из конфига на момент вызова
func (l *RateLimiter) Check(ctx context.Context, sess *session.Session, now time.Time) error {
	if sess == nil {
		return errs.ErrInvalidRequest
	}

	if l.Exceeded(sess, now, l.cfg.ChatMessageDelay(ctx)) {
		metric.IncRateLimited()
		slog.Debug("chat rate limited", slog.String(constant.SessionID, sess.ID))

		return errs.ErrRateLimited
	}

	return nil
}
