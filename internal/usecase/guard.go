package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/qrave1/RoomChat/internal/domain/errs"
)

// Guard - набор предикатов авторизации. Каждый возвращает nil или ошибку одного из видов errs.
type Guard struct {
	rooms RoomStore
	users UserDirectory
	cfg   ConfigProvider
}

func NewGuard(rooms RoomStore, users UserDirectory, cfg ConfigProvider) *Guard {
	return &Guard{rooms: rooms, users: users, cfg: cfg}
}

// CanMessageUser проверяет, что actor может писать target
func (g *Guard) CanMessageUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return fmt.Errorf("%w: cannot chat with yourself", errs.ErrForbidden)
	}

	if err := g.UsersExist(ctx, []uuid.UUID{targetID}); err != nil {
		return err
	}

	blocked, err := g.users.IsBlocked(ctx, actorID, targetID)
	if err != nil {
		return fmt.Errorf("check block: %w", err)
	}

	if blocked {
		return fmt.Errorf("%w: user %s is blocked", errs.ErrForbidden, targetID)
	}

	return nil
}

// CanMessageUsers запускает CanMessageUser для всех uids параллельно.
// Первая ошибка отменяет остальные проверки.
func (g *Guard) CanMessageUsers(ctx context.Context, actorID uuid.UUID, uids []uuid.UUID) error {
	eg, egCtx := errgroup.WithContext(ctx)

	for _, uid := range uids {
		eg.Go(func() error {
			return g.CanMessageUser(egCtx, actorID, uid)
		})
	}

	return eg.Wait()
}

// CanMessageRoom проверяет, что actor состоит в комнате
func (g *Guard) CanMessageRoom(ctx context.Context, actorID, roomID uuid.UUID) error {
	if _, err := g.rooms.GetRoomData(ctx, roomID); err != nil {
		return err
	}

	isMember, err := g.rooms.IsMember(ctx, roomID, actorID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}

	if !isMember {
		return fmt.Errorf("%w: not a member of room %s", errs.ErrForbidden, roomID)
	}

	return nil
}

func (g *Guard) IsRoomOwner(ctx context.Context, actorID, roomID uuid.UUID) (bool, error) {
	room, err := g.rooms.GetRoomData(ctx, roomID)
	if err != nil {
		return false, err
	}

	return room.OwnerID == actorID, nil
}

// CapacityOK сравнивает текущее число участников плюс приглашённых с лимитом. 0 - без лимита.
func (g *Guard) CapacityOK(ctx context.Context, roomID uuid.UUID, incoming int) (bool, error) {
	limit := g.cfg.MaxUsersInRoom(ctx)
	if limit <= 0 {
		return true, nil
	}

	count, err := g.rooms.MemberCount(ctx, roomID)
	if err != nil {
		return false, err
	}

	return count+incoming <= limit, nil
}

// UsersExist падает целиком, если хотя бы один uid не найден
func (g *Guard) UsersExist(ctx context.Context, uids []uuid.UUID) error {
	exists, err := g.users.Exists(ctx, uids)
	if err != nil {
		return fmt.Errorf("check users exist: %w", err)
	}

	if len(exists) != len(uids) {
		return fmt.Errorf("check users exist: got %d answers for %d users", len(exists), len(uids))
	}

	for i, ok := range exists {
		if !ok {
			return fmt.Errorf("%w: %s", errs.ErrNoSuchUser, uids[i])
		}
	}

	return nil
}
