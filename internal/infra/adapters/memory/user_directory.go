package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qrave1/RoomChat/internal/domain/models"
)

type blockKey struct {
	blocker uuid.UUID
	blocked uuid.UUID
}

// UserDirectory - справочник пользователей в памяти: существование, блокировки, онлайн
type UserDirectory struct {
	users  map[uuid.UUID]*models.User
	blocks map[blockKey]struct{}
	online map[uuid.UUID]time.Time

	mu sync.RWMutex
}

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{
		users:  make(map[uuid.UUID]*models.User),
		blocks: make(map[blockKey]struct{}),
		online: make(map[uuid.UUID]time.Time),
	}
}

func (d *UserDirectory) AddUser(user *models.User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.users[user.ID] = user
}

// EnsureUser регистрирует пользователя при первом запросе, если его ещё нет.
// Нужен при STORAGE=memory, где справочник пользователей пуст после старта.
func (d *UserDirectory) EnsureUser(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[id]; !ok {
		d.users[id] = &models.User{ID: id, CreatedAt: time.Now()}
	}
}

// Block - blocker больше не получает сообщений от blocked
func (d *UserDirectory) Block(blocker, blocked uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.blocks[blockKey{blocker: blocker, blocked: blocked}] = struct{}{}
}

func (d *UserDirectory) Username(uid uuid.UUID) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if user, ok := d.users[uid]; ok {
		return user.Username
	}

	return ""
}

func (d *UserDirectory) Exists(ctx context.Context, uids []uuid.UUID) ([]bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	exists := make([]bool, len(uids))
	for i, uid := range uids {
		_, exists[i] = d.users[uid]
	}

	return exists, nil
}

func (d *UserDirectory) IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ab := d.blocks[blockKey{blocker: a, blocked: b}]
	_, ba := d.blocks[blockKey{blocker: b, blocked: a}]

	return ab || ba, nil
}

func (d *UserDirectory) SetOnline(ctx context.Context, uid uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.online[uid] = time.Now()

	return nil
}

func (d *UserDirectory) IsOnline(uid uuid.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.online[uid]

	return ok
}
