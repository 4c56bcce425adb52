package models

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OwnerID   uuid.UUID `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewRoom(ownerID uuid.UUID, name string) *Room {
	return &Room{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Member - участник комнаты с точки зрения конкретного зрителя.
// CanKick вычисляется при запросе и нигде не хранится.
type Member struct {
	UID      uuid.UUID `json:"uid" db:"user_id"`
	Username string    `json:"username" db:"username"`
	CanKick  bool      `json:"can_kick" db:"-"`
}

// RoomView - комната, загруженная для конкретного пользователя
type RoomView struct {
	Room      *Room      `json:"room"`
	Users     []Member   `json:"users"`
	Messages  []*Message `json:"messages"`
	IsOwner   bool       `json:"is_owner"`
	GroupChat bool       `json:"group_chat"`
}
