package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/qrave1/RoomChat/internal/application/config"
)

// fakeHash - хэш config в памяти, err имитирует недоступный redis
type fakeHash struct {
	fields map[string]string
	err    error
	calls  int
}

func (h *fakeHash) HGet(_ context.Context, key, field string) *redis.StringCmd {
	h.calls++

	if h.err != nil {
		return redis.NewStringResult("", h.err)
	}

	v, ok := h.fields[field]
	if key != configKey || !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func TestConfigProvider(t *testing.T) {
	ctx := context.Background()
	fallback := config.ChatConfig{MessageDelay: 200 * time.Millisecond, MaxUsers: 10}

	t.Run("should read values on every call", func(t *testing.T) {
		req := require.New(t)
		hash := &fakeHash{fields: map[string]string{
			fieldChatMessageDelay: "1500",
			fieldMaxUsersInRoom:   "3",
		}}
		p := NewConfigProvider(hash, fallback)

		req.Equal(1500*time.Millisecond, p.ChatMessageDelay(ctx))
		req.Equal(3, p.MaxUsersInRoom(ctx))

		hash.fields[fieldMaxUsersInRoom] = "0"
		req.Equal(0, p.MaxUsersInRoom(ctx))
		req.Equal(3, hash.calls)
	})

	t.Run("should fall back when field is missing", func(t *testing.T) {
		req := require.New(t)
		p := NewConfigProvider(&fakeHash{fields: map[string]string{}}, fallback)

		req.Equal(200*time.Millisecond, p.ChatMessageDelay(ctx))
		req.Equal(10, p.MaxUsersInRoom(ctx))
	})

	t.Run("should fall back on invalid values", func(t *testing.T) {
		req := require.New(t)
		p := NewConfigProvider(&fakeHash{fields: map[string]string{
			fieldChatMessageDelay: "soon",
			fieldMaxUsersInRoom:   "-1",
		}}, fallback)

		req.Equal(200*time.Millisecond, p.ChatMessageDelay(ctx))
		req.Equal(10, p.MaxUsersInRoom(ctx))
	})

	t.Run("should fall back when redis is unavailable", func(t *testing.T) {
		req := require.New(t)
		p := NewConfigProvider(&fakeHash{err: errors.New("connection refused")}, fallback)

		req.Equal(200*time.Millisecond, p.ChatMessageDelay(ctx))
		req.Equal(10, p.MaxUsersInRoom(ctx))
	})
}
