package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/qrave1/RoomChat/internal/application/constant"
	"github.com/qrave1/RoomChat/internal/application/metric"
	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/events"
	"github.com/qrave1/RoomChat/internal/domain/input"
	"github.com/qrave1/RoomChat/internal/domain/models"
)

type MessageUsecase interface {
	PostMessage(ctx context.Context, caller input.Caller, in input.PostMessageInput) (*models.Message, error)
}

type messageUsecase struct {
	messages MessageStore
	users    UserDirectory
	guard    *Guard
	limiter  *RateLimiter
	hooks    HookPipeline
	notifier Notifier

	maxLength int
	now       func() time.Time
}

func NewMessageUsecase(
	messages MessageStore,
	users UserDirectory,
	guard *Guard,
	limiter *RateLimiter,
	hooks HookPipeline,
	notifier Notifier,
	maxLength int,
) MessageUsecase {
	return &messageUsecase{
		messages:  messages,
		users:     users,
		guard:     guard,
		limiter:   limiter,
		hooks:     hooks,
		notifier:  notifier,
		maxLength: maxLength,
		now:       time.Now,
	}
}

// PostMessage: лимит сессии, хуки, членство, валидация, сохранение, рассылка.
// Дальше хуков работаем только с итоговым payload. Время сообщения назначает сервер.
func (uc *messageUsecase) PostMessage(ctx context.Context, caller input.Caller, in input.PostMessageInput) (*models.Message, error) {
	now := uc.now()

	if err := uc.limiter.Check(ctx, caller.Session, now); err != nil {
		return nil, err
	}

	payload, err := uc.hooks.Transform(ctx, events.FilterMessagingSend, &models.MessagePayload{
		Content: in.Content,
		RoomID:  in.RoomID,
		UID:     caller.UserID,
	})
	if err != nil {
		return nil, err
	}

	// без комнаты проверять членство не в чем
	if payload == nil || payload.RoomID == uuid.Nil {
		return nil, fmt.Errorf("%w: room_id is required", errs.ErrInvalidRequest)
	}

	if err = uc.guard.CanMessageRoom(ctx, caller.UserID, payload.RoomID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(payload.Content)
	if err = input.Validate(input.PostMessageInput{RoomID: payload.RoomID, Content: content}); err != nil {
		return nil, err
	}

	if caller.RemoteAddr == "" {
		return nil, fmt.Errorf("%w: unknown caller address", errs.ErrInvalidRequest)
	}

	if uc.maxLength > 0 && utf8.RuneCountInString(payload.Content) > uc.maxLength {
		return nil, fmt.Errorf("%w: message is longer than %d", errs.ErrInvalidRequest, uc.maxLength)
	}

	msg := &models.Message{
		ID:        uuid.New(),
		RoomID:    payload.RoomID,
		UID:       caller.UserID,
		Content:   payload.Content,
		Timestamp: now,
	}

	if err = uc.messages.SaveMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	metric.IncMessagesPosted()

	if err = uc.notifier.NotifyRoom(ctx, caller.UserID, msg.RoomID, events.ChatReceive, msg); err != nil {
		slog.Warn("notify room", slog.Any(constant.RoomID, msg.RoomID), slog.Any(constant.Error, err))
	}

	if err = uc.users.SetOnline(ctx, caller.UserID); err != nil {
		slog.Warn("set online", slog.Any(constant.UserID, caller.UserID), slog.Any(constant.Error, err))
	}

	return msg, nil
}
