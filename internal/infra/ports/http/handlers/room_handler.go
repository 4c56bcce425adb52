package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/qrave1/RoomChat/internal/domain/input"
	"github.com/qrave1/RoomChat/internal/domain/models"
	"github.com/qrave1/RoomChat/internal/infra/adapters/memory"
	"github.com/qrave1/RoomChat/internal/infra/appctx"
	"github.com/qrave1/RoomChat/internal/infra/ports/http/dto"
	"github.com/qrave1/RoomChat/internal/usecase"
)

type RoomHandler struct {
	roomUsecase    usecase.RoomUsecase
	messageUsecase usecase.MessageUsecase
	roomQuery      usecase.RoomQuery

	sessions memory.SessionRepository
}

func NewRoomHandler(
	roomUsecase usecase.RoomUsecase,
	messageUsecase usecase.MessageUsecase,
	roomQuery usecase.RoomQuery,
	sessions memory.SessionRepository,
) *RoomHandler {
	return &RoomHandler{
		roomUsecase:    roomUsecase,
		messageUsecase: messageUsecase,
		roomQuery:      roomQuery,
		sessions:       sessions,
	}
}

func (h *RoomHandler) ListRoomsHandler(c echo.Context) error {
	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	rooms, err := h.roomQuery.ListRoomsForUser(c.Request().Context(), caller.UserID)
	if err != nil {
		return writeError(c, "list rooms", err)
	}

	if rooms == nil {
		rooms = []*models.Room{}
	}

	return c.JSON(http.StatusOK, dto.ListRoomsResponse{Rooms: rooms})
}

func (h *RoomHandler) CreateRoomHandler(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
	}

	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	view, err := h.roomUsecase.CreateRoom(c.Request().Context(), caller, input.CreateRoomInput{
		UIDs: req.UIDs,
		Name: req.Name,
	})
	if err != nil {
		return writeError(c, "create room", err)
	}

	return c.JSON(http.StatusCreated, view)
}

func (h *RoomHandler) GetRoomHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
	}

	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	view, err := h.roomUsecase.Load(c.Request().Context(), caller, roomID)
	if err != nil {
		return writeError(c, "load room", err)
	}

	return c.JSON(http.StatusOK, view)
}

func (h *RoomHandler) RenameRoomHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
	}

	var req dto.RenameRoomRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
	}

	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	view, err := h.roomUsecase.Rename(c.Request().Context(), caller, input.RenameInput{RoomID: roomID, Name: req.Name})
	if err != nil {
		return writeError(c, "rename room", err)
	}

	return c.JSON(http.StatusOK, view)
}

func (h *RoomHandler) ListUsersHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
	}

	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	users, err := h.roomUsecase.Users(c.Request().Context(), caller, roomID)
	if err != nil {
		return writeError(c, "list users", err)
	}

	return c.JSON(http.StatusOK, dto.UsersResponse{Users: users})
}

func (h *RoomHandler) InviteHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
	}

	var req dto.UIDsRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
	}

	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	users, err := h.roomUsecase.Invite(c.Request().Context(), caller, input.InviteInput{RoomID: roomID, UIDs: req.UIDs})
	if err != nil {
		return writeError(c, "invite users", err)
	}

	return c.JSON(http.StatusOK, dto.UsersResponse{Users: users})
}

func (h *RoomHandler) KickHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
	}

	var req dto.UIDsRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
	}

	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	users, err := h.roomUsecase.Kick(c.Request().Context(), caller, input.KickInput{RoomID: roomID, UIDs: req.UIDs})
	if err != nil {
		return writeError(c, "kick users", err)
	}

	return c.JSON(http.StatusOK, dto.UsersResponse{Users: users})
}

func (h *RoomHandler) LeaveHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
	}

	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	if _, err = h.roomUsecase.Leave(c.Request().Context(), caller, roomID); err != nil {
		return writeError(c, "leave room", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *RoomHandler) PostMessageHandler(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
	}

	var req dto.PostMessageRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
	}

	caller, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid user"})
	}

	msg, err := h.messageUsecase.PostMessage(c.Request().Context(), caller, input.PostMessageInput{
		RoomID:  roomID,
		Content: req.Content,
	})
	if err != nil {
		return writeError(c, "post message", err)
	}

	return c.JSON(http.StatusCreated, msg)
}

// caller собирает контекст вызывающего из JWT: сессия общая для всех запросов с одним токеном
func (h *RoomHandler) caller(c echo.Context) (input.Caller, bool) {
	ctx := c.Request().Context()

	userID, ok := appctx.UserID(ctx)
	if !ok {
		return input.Caller{}, false
	}

	sessionID, ok := appctx.SessionID(ctx)
	if !ok {
		return input.Caller{}, false
	}

	return input.Caller{
		UserID:     userID,
		Session:    h.sessions.GetOrCreate(sessionID),
		RemoteAddr: c.RealIP(),
	}, true
}
