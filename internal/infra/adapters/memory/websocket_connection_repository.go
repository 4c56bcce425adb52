package memory

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/qrave1/RoomChat/internal/application/constant"
)

// JSONWriter - часть *websocket.Conn, нужная для рассылки
type JSONWriter interface {
	WriteJSON(v any) error
}

// WebsocketConnectionRepository интерфейс для работы с активными соединениями в памяти.
// У пользователя может быть несколько соединений (вкладок).
type WebsocketConnectionRepository interface {
	Add(userID uuid.UUID, connID string, conn JSONWriter)
	Remove(userID uuid.UUID, connID string)

	Write(userID uuid.UUID, payload any)
	// WriteConn пишет только в одно соединение, например ответ на запрос
	WriteConn(userID uuid.UUID, connID string, payload any) error
	IsConnected(userID uuid.UUID) bool
}

type safeWS struct {
	conn JSONWriter
	mu   sync.Mutex
}

type wsConnectionRepository struct {
	// wsConns хранит map[user_id]map[conn_id]*safeWS
	wsConns map[uuid.UUID]map[string]*safeWS

	mu sync.RWMutex
}

func NewWSConnectionRepository() WebsocketConnectionRepository {
	return &wsConnectionRepository{
		wsConns: make(map[uuid.UUID]map[string]*safeWS, 10),
	}
}

func (w *wsConnectionRepository) Add(userID uuid.UUID, connID string, conn JSONWriter) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.wsConns[userID]; !ok {
		w.wsConns[userID] = make(map[string]*safeWS)
	}

	w.wsConns[userID][connID] = &safeWS{conn: conn}
}

func (w *wsConnectionRepository) Remove(userID uuid.UUID, connID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	conns, ok := w.wsConns[userID]
	if !ok {
		return
	}

	delete(conns, connID)

	if len(conns) == 0 {
		delete(w.wsConns, userID)
	}
}

// Write пишет payload во все соединения пользователя. Офлайн-пользователь пропускается.
func (w *wsConnectionRepository) Write(userID uuid.UUID, payload any) {
	for _, safews := range w.getSafeWS(userID) {
		safews.mu.Lock()
		err := safews.conn.WriteJSON(payload)
		safews.mu.Unlock()

		if err != nil {
			slog.Error("write to websocket", slog.Any(constant.UserID, userID), slog.Any(constant.Error, err))
		}
	}
}

func (w *wsConnectionRepository) WriteConn(userID uuid.UUID, connID string, payload any) error {
	w.mu.RLock()
	safews, ok := w.wsConns[userID][connID]
	w.mu.RUnlock()

	if !ok {
		return fmt.Errorf("connection %s of user %s not found", connID, userID)
	}

	safews.mu.Lock()
	defer safews.mu.Unlock()

	return safews.conn.WriteJSON(payload)
}

func (w *wsConnectionRepository) IsConnected(userID uuid.UUID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.wsConns[userID]) > 0
}

func (w *wsConnectionRepository) getSafeWS(userID uuid.UUID) []*safeWS {
	w.mu.RLock()
	defer w.mu.RUnlock()

	conns := make([]*safeWS, 0, len(w.wsConns[userID]))
	for _, c := range w.wsConns[userID] {
		conns = append(conns, c)
	}

	return conns
}
