package input

import (
	"github.com/google/uuid"

	"github.com/qrave1/RoomChat/internal/domain/session"
)

// Caller - контекст вызывающего, который собирает транспорт
type Caller struct {
	UserID     uuid.UUID
	Session    *session.Session
	RemoteAddr string
}

type CreateRoomInput struct {
	UIDs []uuid.UUID `json:"uids" validate:"required,min=1,dive,required"`
	Name string      `json:"name"`
}

type PostMessageInput struct {
	RoomID  uuid.UUID `json:"room_id" validate:"required"`
	Content string    `json:"content" validate:"required"`
}

type RenameInput struct {
	RoomID uuid.UUID `json:"room_id" validate:"required"`
	Name   string    `json:"name" validate:"required"`
}

type InviteInput struct {
	RoomID uuid.UUID   `json:"room_id" validate:"required"`
	UIDs   []uuid.UUID `json:"uids" validate:"required,min=1,dive,required"`
}

type KickInput struct {
	RoomID uuid.UUID   `json:"room_id" validate:"required"`
	UIDs   []uuid.UUID `json:"uids" validate:"required,min=1,dive,required"`
}
