package memory

import (
	"sync"

	"github.com/qrave1/RoomChat/internal/domain/session"
)

// SessionRepository хранит сессии HTTP-клиентов по id токена.
// Websocket-сессии живут вместе с соединением и здесь не хранятся.
type SessionRepository interface {
	GetOrCreate(id string) *session.Session
	Remove(id string)
}

type sessionRepository struct {
	sessions map[string]*session.Session

	mu sync.Mutex
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*session.Session),
	}
}

func (r *sessionRepository) GetOrCreate(id string) *session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = session.New(id)
		r.sessions[id] = s
	}

	return s
}

func (r *sessionRepository) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}
