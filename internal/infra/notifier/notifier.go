package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qrave1/RoomChat/internal/application/constant"
	"github.com/qrave1/RoomChat/internal/domain/events"
	"github.com/qrave1/RoomChat/internal/domain/models"
	"github.com/qrave1/RoomChat/internal/infra/adapters/memory"
)

// MemberLister - часть RoomStore, нужная для рассылки по комнате
type MemberLister interface {
	ListMembers(ctx context.Context, roomID uuid.UUID, offset, count int) ([]models.Member, error)
}

// Publisher получает каждое принятое сообщение комнаты (kafka)
type Publisher interface {
	PublishMessage(ctx context.Context, msg *models.Message) error
}

// Notifier рассылает события в websocket-соединения пользователей
type Notifier struct {
	rooms      MemberLister
	wsConnRepo memory.WebsocketConnectionRepository
	publisher  Publisher
}

// New - publisher может быть nil
func New(rooms MemberLister, wsConnRepo memory.WebsocketConnectionRepository, publisher Publisher) *Notifier {
	return &Notifier{
		rooms:      rooms,
		wsConnRepo: wsConnRepo,
		publisher:  publisher,
	}
}

// NotifyRoom отправляет событие всем текущим участникам комнаты, включая автора
func (n *Notifier) NotifyRoom(ctx context.Context, actorID, roomID uuid.UUID, event string, payload any) error {
	members, err := n.rooms.ListMembers(ctx, roomID, 0, 0)
	if err != nil {
		return fmt.Errorf("list members: %w", err)
	}

	uids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		uids = append(uids, m.UID)
	}

	if err = n.NotifyUsers(ctx, event, payload, uids); err != nil {
		return err
	}

	if msg, ok := payload.(*models.Message); ok && event == events.ChatReceive && n.publisher != nil {
		if err = n.publisher.PublishMessage(ctx, msg); err != nil {
			slog.Error(
				"publish message",
				slog.Any(constant.RoomID, roomID),
				slog.Any(constant.UserID, actorID),
				slog.Any(constant.Error, err),
			)
		}
	}

	return nil
}

func (n *Notifier) NotifyUsers(ctx context.Context, event string, payload any, uids []uuid.UUID) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event, err)
	}

	msg := events.Message{Type: event, Data: data}

	for _, uid := range uids {
		n.wsConnRepo.Write(uid, msg)
	}

	slog.Debug("event sent", slog.String(constant.Event, event), slog.Int("recipients", len(uids)))

	return nil
}
