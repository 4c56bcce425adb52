package dto

import (
	"github.com/google/uuid"

	"github.com/qrave1/RoomChat/internal/domain/models"
)

type CreateRoomRequest struct {
	UIDs []uuid.UUID `json:"uids"`
	Name string      `json:"name"`
}

type RenameRoomRequest struct {
	Name string `json:"name"`
}

// UIDsRequest - тело invite и kick
type UIDsRequest struct {
	UIDs []uuid.UUID `json:"uids"`
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

type ListRoomsResponse struct {
	Rooms []*models.Room `json:"rooms"`
}

type UsersResponse struct {
	Users []models.Member `json:"users"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
