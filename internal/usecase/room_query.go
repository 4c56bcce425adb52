package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/qrave1/RoomChat/internal/domain/models"
)

// RoomQuery - read-only представления комнат. Не проверяет права:
// вызывающий код уже проверил членство или владение.
type RoomQuery interface {
	ListUsers(ctx context.Context, viewerID, roomID uuid.UUID) ([]models.Member, error)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error)
	LoadRoomView(ctx context.Context, viewerID, roomID uuid.UUID) (*models.RoomView, error)
	ListRoomsForUser(ctx context.Context, uid uuid.UUID) ([]*models.Room, error)
}

type roomQuery struct {
	rooms    RoomStore
	messages MessageStore
	guard    *Guard

	recentMessages int
}

func NewRoomQuery(rooms RoomStore, messages MessageStore, guard *Guard, recentMessages int) RoomQuery {
	return &roomQuery{
		rooms:          rooms,
		messages:       messages,
		guard:          guard,
		recentMessages: recentMessages,
	}
}

// ListUsers загружает владельца и участников параллельно и вычисляет CanKick для зрителя
func (q *roomQuery) ListUsers(ctx context.Context, viewerID, roomID uuid.UUID) ([]models.Member, error) {
	var (
		isOwner bool
		members []models.Member
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		isOwner, err = q.guard.IsRoomOwner(egCtx, viewerID, roomID)
		return err
	})

	eg.Go(func() error {
		var err error
		members, err = q.rooms.ListMembers(egCtx, roomID, 0, 0)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	for i := range members {
		members[i].CanKick = isOwner && members[i].UID != viewerID
	}

	return members, nil
}

func (q *roomQuery) GetRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	return q.rooms.GetRoomData(ctx, roomID)
}

func (q *roomQuery) LoadRoomView(ctx context.Context, viewerID, roomID uuid.UUID) (*models.RoomView, error) {
	room, err := q.rooms.GetRoomData(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	view := &models.RoomView{
		Room:    room,
		IsOwner: room.OwnerID == viewerID,
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		users, err := q.ListUsers(egCtx, viewerID, roomID)
		if err != nil {
			return err
		}

		view.Users = users
		view.GroupChat = len(users) > 2

		return nil
	})

	eg.Go(func() error {
		messages, err := q.messages.ListMessages(egCtx, roomID, q.recentMessages)
		if err != nil {
			return fmt.Errorf("list messages: %w", err)
		}

		view.Messages = messages

		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}

func (q *roomQuery) ListRoomsForUser(ctx context.Context, uid uuid.UUID) ([]*models.Room, error) {
	return q.rooms.ListRoomsByUser(ctx, uid)
}
