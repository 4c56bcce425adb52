package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/qrave1/RoomChat/internal/application/config"
	"github.com/qrave1/RoomChat/internal/application/constant"
	"github.com/qrave1/RoomChat/internal/application/metric"
	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/events"
	"github.com/qrave1/RoomChat/internal/domain/input"
	"github.com/qrave1/RoomChat/internal/domain/session"
	"github.com/qrave1/RoomChat/internal/infra/adapters/memory"
	"github.com/qrave1/RoomChat/internal/infra/appctx"
	"github.com/qrave1/RoomChat/internal/usecase"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second
)

type WebSocketHandler struct {
	upgrader *websocket.Upgrader

	roomUsecase    usecase.RoomUsecase
	messageUsecase usecase.MessageUsecase

	wsConnRepo memory.WebsocketConnectionRepository
}

func NewWebSocketHandler(
	cfg *config.Config,
	roomUsecase usecase.RoomUsecase,
	messageUsecase usecase.MessageUsecase,
	wsConnRepo memory.WebsocketConnectionRepository,
) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if cfg.Debug {
					return true
				}

				return r.Header.Get("Origin") == cfg.Domain
			},
		},
		roomUsecase:    roomUsecase,
		messageUsecase: messageUsecase,
		wsConnRepo:     wsConnRepo,
	}
}

// Handle обслуживает одно websocket-соединение. Каждое соединение - отдельная сессия
// со своим лимитом на сообщения.
func (h *WebSocketHandler) Handle(c echo.Context) error {
	userID, ok := appctx.UserID(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user"})
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"WebSocket upgrade error",
			slog.Any(constant.Error, err),
		)
		return err
	}
	defer ws.Close()

	connID := uuid.NewString()
	caller := input.Caller{
		UserID:     userID,
		Session:    session.New(connID),
		RemoteAddr: c.RealIP(),
	}

	h.wsConnRepo.Add(userID, connID, ws)
	defer h.wsConnRepo.Remove(userID, connID)

	metric.IncrementWSActiveConnections()
	defer metric.DecrementWSActiveConnections()

	if err = ws.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	go h.keepAlive(ctx, ws)

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			h.handleWebsocketError(userID, err)
			return nil
		}

		var msg events.Message

		if err = json.Unmarshal(raw, &msg); err != nil {
			h.reply(userID, connID, errorEvent(fmt.Errorf("%w: malformed message", errs.ErrInvalidRequest)))
			continue
		}

		resp, err := h.handleMessage(ctx, caller, &msg)
		if err != nil {
			if statusFor(err) == 0 {
				slog.Error(
					"handle websocket message",
					slog.String(constant.Event, msg.Type),
					slog.Any(constant.UserID, userID),
					slog.Any(constant.Error, err),
				)
			}

			h.reply(userID, connID, errorEvent(err))
			continue
		}

		h.reply(userID, connID, resp)
	}
}

// handleMessage разбирает запрос по типу и возвращает ответ для этого же соединения
func (h *WebSocketHandler) handleMessage(ctx context.Context, caller input.Caller, msg *events.Message) (any, error) {
	var (
		data any
		err  error
	)

	switch msg.Type {
	case "create":
		var in input.CreateRoomInput
		if err = decode(msg.Data, &in); err != nil {
			return nil, err
		}

		data, err = h.roomUsecase.CreateRoom(ctx, caller, in)

	case "post":
		var in input.PostMessageInput
		if err = decode(msg.Data, &in); err != nil {
			return nil, err
		}

		data, err = h.messageUsecase.PostMessage(ctx, caller, in)

	case "rename":
		var in input.RenameInput
		if err = decode(msg.Data, &in); err != nil {
			return nil, err
		}

		data, err = h.roomUsecase.Rename(ctx, caller, in)

	case "users":
		var in events.RoomIDEvent
		if err = decode(msg.Data, &in); err != nil {
			return nil, err
		}

		data, err = h.roomUsecase.Users(ctx, caller, in.RoomID)

	case "invite":
		var in input.InviteInput
		if err = decode(msg.Data, &in); err != nil {
			return nil, err
		}

		data, err = h.roomUsecase.Invite(ctx, caller, in)

	case "kick":
		var in input.KickInput
		if err = decode(msg.Data, &in); err != nil {
			return nil, err
		}

		data, err = h.roomUsecase.Kick(ctx, caller, in)

	case "leave":
		var in events.RoomIDEvent
		if err = decode(msg.Data, &in); err != nil {
			return nil, err
		}

		data, err = h.roomUsecase.Leave(ctx, caller, in.RoomID)

	case "load":
		var in events.RoomIDEvent
		if err = decode(msg.Data, &in); err != nil {
			return nil, err
		}

		data, err = h.roomUsecase.Load(ctx, caller, in.RoomID)

	case "ping":
		return events.Message{Type: "pong"}, nil

	default:
		return nil, fmt.Errorf("%w: unknown message type %q", errs.ErrInvalidRequest, msg.Type)
	}

	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s response: %w", msg.Type, err)
	}

	return events.Message{Type: msg.Type, Data: body}, nil
}

func (h *WebSocketHandler) reply(userID uuid.UUID, connID string, payload any) {
	if err := h.wsConnRepo.WriteConn(userID, connID, payload); err != nil {
		slog.Error("write websocket reply", slog.Any(constant.UserID, userID), slog.Any(constant.Error, err))
	}
}

func (h *WebSocketHandler) keepAlive(ctx context.Context, ws *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// WriteControl можно вызывать параллельно с WriteJSON
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				slog.Error("ping failed", slog.Any(constant.Error, err))
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) handleWebsocketError(userID uuid.UUID, err error) {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		switch closeErr.Code {
		case websocket.CloseNormalClosure, websocket.CloseGoingAway:
			slog.Info("user disconnected from websocket", slog.Any(constant.UserID, userID))
		default:
			slog.Error("websocket close error", slog.Any(constant.UserID, userID), slog.Int("code", closeErr.Code))
		}
	} else {
		slog.Error(
			"websocket read",
			slog.Any(constant.UserID, userID),
			slog.Any(constant.Error, err),
		)
	}
}

func decode(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: data is required", errs.ErrInvalidRequest)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidRequest, err)
	}

	return nil
}

func errorEvent(err error) events.ErrorEvent {
	return events.ErrorEvent{Type: "error", Message: publicMessage(err)}
}
