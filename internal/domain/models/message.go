package models

import (
	"time"

	"github.com/google/uuid"
)

// Message неизменяемо после сохранения
type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RoomID    uuid.UUID `json:"room_id" db:"room_id"`
	UID       uuid.UUID `json:"uid" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
}

// MessagePayload проходит через hook pipeline до сохранения
type MessagePayload struct {
	Content string
	RoomID  uuid.UUID
	UID     uuid.UUID
}
