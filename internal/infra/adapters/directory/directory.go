package directory

import (
	"context"

	"github.com/google/uuid"
)

// UserStore - источник истины о пользователях и блокировках
type UserStore interface {
	Exists(ctx context.Context, uids []uuid.UUID) ([]bool, error)
	IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error)
	SetOnline(ctx context.Context, uid uuid.UUID) error
}

type Presence interface {
	SetOnline(ctx context.Context, uid uuid.UUID) error
}

// Directory собирает справочник пользователей: проверки идут в UserStore,
// отметка онлайн - в Presence, если он задан.
type Directory struct {
	users    UserStore
	presence Presence
}

func New(users UserStore, presence Presence) *Directory {
	return &Directory{users: users, presence: presence}
}

func (d *Directory) Exists(ctx context.Context, uids []uuid.UUID) ([]bool, error) {
	return d.users.Exists(ctx, uids)
}

func (d *Directory) IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error) {
	return d.users.IsBlocked(ctx, a, b)
}

func (d *Directory) SetOnline(ctx context.Context, uid uuid.UUID) error {
	if d.presence != nil {
		return d.presence.SetOnline(ctx, uid)
	}

	return d.users.SetOnline(ctx, uid)
}
