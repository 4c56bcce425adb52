//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/qrave1/RoomChat/internal/domain/models"
)

// RoomStore - хранилище комнат и участников. Добавление и удаление участников атомарны.
type RoomStore interface {
	CreateRoom(ctx context.Context, ownerID uuid.UUID, name string, memberIDs []uuid.UUID) (uuid.UUID, error)
	GetRoomData(ctx context.Context, roomID uuid.UUID) (*models.Room, error)
	RenameRoom(ctx context.Context, roomID uuid.UUID, name string) error

	AddMembers(ctx context.Context, roomID uuid.UUID, uids []uuid.UUID) error
	RemoveMembers(ctx context.Context, roomID uuid.UUID, uids []uuid.UUID) error

	// ListMembers возвращает участников в порядке вступления; count <= 0 - все
	ListMembers(ctx context.Context, roomID uuid.UUID, offset, count int) ([]models.Member, error)
	MemberCount(ctx context.Context, roomID uuid.UUID) (int, error)
	IsMember(ctx context.Context, roomID, uid uuid.UUID) (bool, error)

	ListRoomsByUser(ctx context.Context, uid uuid.UUID) ([]*models.Room, error)
}

type MessageStore interface {
	SaveMessage(ctx context.Context, msg *models.Message) error
	// ListMessages возвращает последние limit сообщений в хронологическом порядке
	ListMessages(ctx context.Context, roomID uuid.UUID, limit int) ([]*models.Message, error)
}

type UserDirectory interface {
	// Exists отвечает позиционно, в порядке uids
	Exists(ctx context.Context, uids []uuid.UUID) ([]bool, error)
	// IsBlocked - true, если один из пользователей заблокировал другого
	IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error)
	SetOnline(ctx context.Context, uid uuid.UUID) error
}

type Notifier interface {
	NotifyRoom(ctx context.Context, actorID, roomID uuid.UUID, event string, payload any) error
	NotifyUsers(ctx context.Context, event string, payload any, uids []uuid.UUID) error
}

// ConfigProvider читается заново при каждом вызове
type ConfigProvider interface {
	ChatMessageDelay(ctx context.Context) time.Duration
	MaxUsersInRoom(ctx context.Context) int
}

type HookPipeline interface {
	Transform(ctx context.Context, event string, payload *models.MessagePayload) (*models.MessagePayload, error)
}
