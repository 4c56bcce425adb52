package session

import (
	"sync"
	"time"
)

// Session - состояние одного соединения (websocket) или одного токена (HTTP).
// Не разделяется между вызывающими.
type Session struct {
	ID string

	mu                  sync.Mutex
	lastChatMessageTime time.Time
}

func New(id string) *Session {
	return &Session{ID: id}
}

// Throttle атомарно проверяет окно minDelay с момента последнего принятого сообщения.
// Возвращает true, если окно не истекло; в этом случае метка времени не обновляется.
func (s *Session) Throttle(now time.Time, minDelay time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastChatMessageTime) < minDelay {
		return true
	}

	s.lastChatMessageTime = now

	return false
}

// LastChatMessageTime возвращает время последнего принятого сообщения (нулевое, если его не было)
func (s *Session) LastChatMessageTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastChatMessageTime
}
