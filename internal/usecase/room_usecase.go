package usecase

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/qrave1/RoomChat/internal/application/constant"
	"github.com/qrave1/RoomChat/internal/application/metric"
	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/events"
	"github.com/qrave1/RoomChat/internal/domain/input"
	"github.com/qrave1/RoomChat/internal/domain/models"
)

// RoomUsecase управляет составом комнат. Все проверки выполняются до любой записи.
type RoomUsecase interface {
	CreateRoom(ctx context.Context, caller input.Caller, in input.CreateRoomInput) (*models.RoomView, error)
	Rename(ctx context.Context, caller input.Caller, in input.RenameInput) (*models.RoomView, error)

	Invite(ctx context.Context, caller input.Caller, in input.InviteInput) ([]models.Member, error)
	Kick(ctx context.Context, caller input.Caller, in input.KickInput) ([]models.Member, error)
	Leave(ctx context.Context, caller input.Caller, roomID uuid.UUID) ([]models.Member, error)

	// Users и Load - чтение для внешних клиентов, только для участников комнаты
	Users(ctx context.Context, caller input.Caller, roomID uuid.UUID) ([]models.Member, error)
	Load(ctx context.Context, caller input.Caller, roomID uuid.UUID) (*models.RoomView, error)
}

type roomUsecase struct {
	rooms    RoomStore
	guard    *Guard
	limiter  *RateLimiter
	query    RoomQuery
	notifier Notifier
	cfg      ConfigProvider

	maxNameLength int
	now           func() time.Time
}

func NewRoomUsecase(
	rooms RoomStore,
	guard *Guard,
	limiter *RateLimiter,
	query RoomQuery,
	notifier Notifier,
	cfg ConfigProvider,
	maxNameLength int,
) RoomUsecase {
	return &roomUsecase{
		rooms:         rooms,
		guard:         guard,
		limiter:       limiter,
		query:         query,
		notifier:      notifier,
		cfg:           cfg,
		maxNameLength: maxNameLength,
		now:           time.Now,
	}
}

func (uc *roomUsecase) CreateRoom(ctx context.Context, caller input.Caller, in input.CreateRoomInput) (*models.RoomView, error) {
	if err := uc.limiter.Check(ctx, caller.Session, uc.now()); err != nil {
		return nil, err
	}

	if err := input.Validate(in); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name != "" {
		if err := uc.checkName(name); err != nil {
			return nil, err
		}
	}

	uids := lo.Uniq(in.UIDs)

	if limit := uc.cfg.MaxUsersInRoom(ctx); limit > 0 && len(uids)+1 > limit {
		return nil, fmt.Errorf("%w: %d users exceed limit %d", errs.ErrRoomFull, len(uids)+1, limit)
	}

	if err := uc.guard.CanMessageUsers(ctx, caller.UserID, uids); err != nil {
		return nil, err
	}

	memberIDs := append([]uuid.UUID{caller.UserID}, uids...)

	roomID, err := uc.rooms.CreateRoom(ctx, caller.UserID, name, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	metric.IncRoomsCreated()
	slog.Info("room created", slog.Any(constant.RoomID, roomID), slog.Any(constant.UserID, caller.UserID))

	uc.notify(ctx, events.ChatUsersJoined, events.MembershipEvent{
		RoomID:  roomID,
		ActorID: caller.UserID,
		UIDs:    uids,
	}, uids)

	return uc.query.LoadRoomView(ctx, caller.UserID, roomID)
}

// Rename доступен только владельцу. Участники получают экранированное имя.
func (uc *roomUsecase) Rename(ctx context.Context, caller input.Caller, in input.RenameInput) (*models.RoomView, error) {
	if err := input.Validate(in); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if err := uc.checkName(name); err != nil {
		return nil, err
	}

	if err := uc.requireOwner(ctx, caller.UserID, in.RoomID); err != nil {
		return nil, err
	}

	if err := uc.rooms.RenameRoom(ctx, in.RoomID, name); err != nil {
		return nil, fmt.Errorf("rename room: %w", err)
	}

	members, err := uc.rooms.ListMembers(ctx, in.RoomID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	uc.notify(ctx, events.ChatRoomRename, events.RoomRenameEvent{
		RoomID:  in.RoomID,
		NewName: html.EscapeString(name),
	}, memberIDs(members))

	return uc.query.LoadRoomView(ctx, caller.UserID, in.RoomID)
}

// Invite: вместимость, существование, затем возможность писать каждому. Порядок фиксирован.
// Уже состоящие в комнате места не занимают.
func (uc *roomUsecase) Invite(ctx context.Context, caller input.Caller, in input.InviteInput) ([]models.Member, error) {
	if err := input.Validate(in); err != nil {
		return nil, err
	}

	uids := lo.Uniq(in.UIDs)

	before, err := uc.rooms.ListMembers(ctx, in.RoomID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	newcomers := lo.Without(uids, memberIDs(before)...)

	ok, err := uc.guard.CapacityOK(ctx, in.RoomID, len(newcomers))
	if err != nil {
		return nil, fmt.Errorf("check capacity: %w", err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: room %s", errs.ErrRoomFull, in.RoomID)
	}

	if err = uc.guard.UsersExist(ctx, uids); err != nil {
		return nil, err
	}

	if err = uc.guard.CanMessageUsers(ctx, caller.UserID, uids); err != nil {
		return nil, err
	}

	if err = uc.requireOwner(ctx, caller.UserID, in.RoomID); err != nil {
		return nil, err
	}

	if len(newcomers) > 0 {
		if err = uc.rooms.AddMembers(ctx, in.RoomID, newcomers); err != nil {
			return nil, fmt.Errorf("add members: %w", err)
		}

		uc.notify(ctx, events.ChatUsersJoined, events.MembershipEvent{
			RoomID:  in.RoomID,
			ActorID: caller.UserID,
			UIDs:    newcomers,
		}, append(memberIDs(before), newcomers...))
	}

	members, err := uc.query.ListUsers(ctx, caller.UserID, in.RoomID)
	if err != nil {
		// участники уже добавлены, отдаём состав без перечитывания
		slog.Warn("list users after invite", slog.Any(constant.RoomID, in.RoomID), slog.Any(constant.Error, err))

		return lo.Map(append(memberIDs(before), newcomers...), func(uid uuid.UUID, _ int) models.Member {
			return models.Member{UID: uid}
		}), nil
	}

	return members, nil
}

// Kick с целью ровно {caller} - это выход из комнаты и владения не требует
func (uc *roomUsecase) Kick(ctx context.Context, caller input.Caller, in input.KickInput) ([]models.Member, error) {
	if err := input.Validate(in); err != nil {
		return nil, err
	}

	uids := lo.Uniq(in.UIDs)

	if err := uc.guard.UsersExist(ctx, uids); err != nil {
		return nil, err
	}

	if len(uids) == 1 && uids[0] == caller.UserID {
		return uc.leave(ctx, caller.UserID, in.RoomID)
	}

	if err := uc.requireOwner(ctx, caller.UserID, in.RoomID); err != nil {
		return nil, err
	}

	if lo.Contains(uids, caller.UserID) {
		return nil, fmt.Errorf("%w: owner cannot be removed from own room", errs.ErrForbidden)
	}

	before, err := uc.rooms.ListMembers(ctx, in.RoomID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	if err = uc.rooms.RemoveMembers(ctx, in.RoomID, uids); err != nil {
		return nil, fmt.Errorf("remove members: %w", err)
	}

	uc.notify(ctx, events.ChatUsersLeft, events.MembershipEvent{
		RoomID:  in.RoomID,
		ActorID: caller.UserID,
		UIDs:    uids,
	}, memberIDs(before))

	return uc.query.ListUsers(ctx, caller.UserID, in.RoomID)
}

func (uc *roomUsecase) Leave(ctx context.Context, caller input.Caller, roomID uuid.UUID) ([]models.Member, error) {
	if roomID == uuid.Nil {
		return nil, fmt.Errorf("%w: room_id is required", errs.ErrInvalidRequest)
	}

	return uc.leave(ctx, caller.UserID, roomID)
}

// leave не передаёт владение: владелец может выйти, только оставшись последним
func (uc *roomUsecase) leave(ctx context.Context, uid, roomID uuid.UUID) ([]models.Member, error) {
	if err := uc.guard.CanMessageRoom(ctx, uid, roomID); err != nil {
		return nil, err
	}

	isOwner, err := uc.guard.IsRoomOwner(ctx, uid, roomID)
	if err != nil {
		return nil, err
	}

	before, err := uc.rooms.ListMembers(ctx, roomID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	if isOwner && len(before) > 1 {
		return nil, fmt.Errorf("%w: owner cannot leave a room with other members", errs.ErrForbidden)
	}

	if err = uc.rooms.RemoveMembers(ctx, roomID, []uuid.UUID{uid}); err != nil {
		return nil, fmt.Errorf("remove members: %w", err)
	}

	slog.Info("user left room", slog.Any(constant.RoomID, roomID), slog.Any(constant.UserID, uid))

	uc.notify(ctx, events.ChatUsersLeft, events.MembershipEvent{
		RoomID:  roomID,
		ActorID: uid,
		UIDs:    []uuid.UUID{uid},
	}, memberIDs(before))

	return uc.query.ListUsers(ctx, uid, roomID)
}

func (uc *roomUsecase) Users(ctx context.Context, caller input.Caller, roomID uuid.UUID) ([]models.Member, error) {
	if err := uc.guard.CanMessageRoom(ctx, caller.UserID, roomID); err != nil {
		return nil, err
	}

	return uc.query.ListUsers(ctx, caller.UserID, roomID)
}

func (uc *roomUsecase) Load(ctx context.Context, caller input.Caller, roomID uuid.UUID) (*models.RoomView, error) {
	if err := uc.guard.CanMessageRoom(ctx, caller.UserID, roomID); err != nil {
		return nil, err
	}

	return uc.query.LoadRoomView(ctx, caller.UserID, roomID)
}

func (uc *roomUsecase) requireOwner(ctx context.Context, uid, roomID uuid.UUID) error {
	isOwner, err := uc.guard.IsRoomOwner(ctx, uid, roomID)
	if err != nil {
		return err
	}

	if !isOwner {
		return fmt.Errorf("%w: only room owner can do this", errs.ErrForbidden)
	}

	return nil
}

func (uc *roomUsecase) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: room name is required", errs.ErrInvalidRequest)
	}

	if uc.maxNameLength > 0 && utf8.RuneCountInString(name) > uc.maxNameLength {
		return fmt.Errorf("%w: room name is longer than %d", errs.ErrInvalidRequest, uc.maxNameLength)
	}

	return nil
}

// notify вызывается после записи: ошибка доставки не откатывает операцию
func (uc *roomUsecase) notify(ctx context.Context, event string, payload any, uids []uuid.UUID) {
	if len(uids) == 0 {
		return
	}

	if err := uc.notifier.NotifyUsers(ctx, event, payload, uids); err != nil {
		slog.Warn("notify users", slog.String(constant.Event, event), slog.Any(constant.Error, err))
	}
}

func memberIDs(members []models.Member) []uuid.UUID {
	return lo.Map(members, func(m models.Member, _ int) uuid.UUID {
		return m.UID
	})
}
