package events

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Имена событий, которые уходят клиентам через Notifier
const (
	ChatReceive     = "event:chats.receive"
	ChatRoomRename  = "event:chats.roomRename"
	ChatUsersJoined = "event:chats.usersJoined"
	ChatUsersLeft   = "event:chats.usersLeft"

	// FilterMessagingSend - событие hook pipeline перед сохранением сообщения
	FilterMessagingSend = "filter:messaging.send"
)

// Message - общее событие
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ErrorEvent - ответ клиенту при ошибке операции
type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RoomRenameEvent - имя уже экранировано
type RoomRenameEvent struct {
	RoomID  uuid.UUID `json:"room_id"`
	NewName string    `json:"new_name"`
}

// MembershipEvent - изменение состава комнаты
type MembershipEvent struct {
	RoomID  uuid.UUID   `json:"room_id"`
	ActorID uuid.UUID   `json:"actor_id"`
	UIDs    []uuid.UUID `json:"uids"`
}

// RoomIDEvent - запросы, которым нужен только id комнаты (users, leave, load)
type RoomIDEvent struct {
	RoomID uuid.UUID `json:"room_id"`
}
