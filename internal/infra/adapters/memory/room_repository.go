package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/models"
)

type roomState struct {
	room    models.Room
	members []uuid.UUID
}

// RoomRepository - хранилище комнат, участников и сообщений в памяти.
// Используется при STORAGE=memory и в тестах.
type RoomRepository struct {
	rooms    map[uuid.UUID]*roomState
	messages map[uuid.UUID][]*models.Message
	users    *UserDirectory

	mu sync.RWMutex
}

// NewRoomRepository - users нужен только для имён участников, может быть nil
func NewRoomRepository(users *UserDirectory) *RoomRepository {
	return &RoomRepository{
		rooms:    make(map[uuid.UUID]*roomState),
		messages: make(map[uuid.UUID][]*models.Message),
		users:    users,
	}
}

func (r *RoomRepository) CreateRoom(ctx context.Context, ownerID uuid.UUID, name string, memberIDs []uuid.UUID) (uuid.UUID, error) {
	room := models.NewRoom(ownerID, name)

	members := lo.Uniq(append([]uuid.UUID{ownerID}, memberIDs...))

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[room.ID] = &roomState{room: *room, members: members}

	return room.ID, nil
}

func (r *RoomRepository) GetRoomData(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	room := state.room

	return &room, nil
}

func (r *RoomRepository) RenameRoom(ctx context.Context, roomID uuid.UUID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.rooms[roomID]
	if !ok {
		return fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	state.room.Name = name
	state.room.UpdatedAt = time.Now()

	return nil
}

func (r *RoomRepository) AddMembers(ctx context.Context, roomID uuid.UUID, uids []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.rooms[roomID]
	if !ok {
		return fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	for _, uid := range uids {
		if !lo.Contains(state.members, uid) {
			state.members = append(state.members, uid)
		}
	}

	return nil
}

func (r *RoomRepository) RemoveMembers(ctx context.Context, roomID uuid.UUID, uids []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.rooms[roomID]
	if !ok {
		return fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	state.members = lo.Without(state.members, uids...)

	return nil
}

func (r *RoomRepository) ListMembers(ctx context.Context, roomID uuid.UUID, offset, count int) ([]models.Member, error) {
	r.mu.RLock()
	state, ok := r.rooms[roomID]
	if !ok {
		r.mu.RUnlock()
		return nil, fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	uids := lo.Drop(state.members, offset)
	if count > 0 && len(uids) > count {
		uids = uids[:count]
	}
	uids = append([]uuid.UUID(nil), uids...)
	r.mu.RUnlock()

	members := make([]models.Member, 0, len(uids))
	for _, uid := range uids {
		m := models.Member{UID: uid}
		if r.users != nil {
			m.Username = r.users.Username(uid)
		}
		members = append(members, m)
	}

	return members, nil
}

func (r *RoomRepository) MemberCount(ctx context.Context, roomID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.rooms[roomID]
	if !ok {
		return 0, fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	return len(state.members), nil
}

func (r *RoomRepository) IsMember(ctx context.Context, roomID, uid uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.rooms[roomID]
	if !ok {
		return false, fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	return lo.Contains(state.members, uid), nil
}

func (r *RoomRepository) ListRoomsByUser(ctx context.Context, uid uuid.UUID) ([]*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rooms []*models.Room

	for _, state := range r.rooms {
		if lo.Contains(state.members, uid) {
			room := state.room
			rooms = append(rooms, &room)
		}
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].UpdatedAt.After(rooms[j].UpdatedAt)
	})

	return rooms, nil
}

func (r *RoomRepository) SaveMessage(ctx context.Context, msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.rooms[msg.RoomID]
	if !ok {
		return fmt.Errorf("%w: room %s", errs.ErrNotFound, msg.RoomID)
	}

	stored := *msg
	r.messages[msg.RoomID] = append(r.messages[msg.RoomID], &stored)
	state.room.UpdatedAt = msg.Timestamp

	return nil
}

func (r *RoomRepository) ListMessages(ctx context.Context, roomID uuid.UUID, limit int) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.rooms[roomID]; !ok {
		return nil, fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	messages := r.messages[roomID]
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	out := make([]*models.Message, 0, len(messages))
	for _, m := range messages {
		cp := *m
		out = append(out, &cp)
	}

	return out, nil
}
