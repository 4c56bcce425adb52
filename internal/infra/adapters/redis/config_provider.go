package redis

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/qrave1/RoomChat/internal/application/constant"
)

const (
	configKey = "config"

	fieldChatMessageDelay = "chatMessageDelay"
	fieldMaxUsersInRoom   = "maximumUsersInChatRoom"
)

// Fallback - значения, которые используются, если поля нет в redis
type Fallback interface {
	ChatMessageDelay(ctx context.Context) time.Duration
	MaxUsersInRoom(ctx context.Context) int
}

// HashGetter - часть *redis.Client, нужная провайдеру
type HashGetter interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

// ConfigProvider читает настройки чата из хэша config при каждом вызове,
// чтобы изменения применялись без рестарта. chatMessageDelay хранится в миллисекундах.
type ConfigProvider struct {
	rdb      HashGetter
	fallback Fallback
}

func NewConfigProvider(rdb HashGetter, fallback Fallback) *ConfigProvider {
	return &ConfigProvider{rdb: rdb, fallback: fallback}
}

func (p *ConfigProvider) ChatMessageDelay(ctx context.Context) time.Duration {
	ms, ok := p.intField(ctx, fieldChatMessageDelay)
	if !ok {
		return p.fallback.ChatMessageDelay(ctx)
	}

	return time.Duration(ms) * time.Millisecond
}

func (p *ConfigProvider) MaxUsersInRoom(ctx context.Context) int {
	n, ok := p.intField(ctx, fieldMaxUsersInRoom)
	if !ok {
		return p.fallback.MaxUsersInRoom(ctx)
	}

	return n
}

func (p *ConfigProvider) intField(ctx context.Context, field string) (int, bool) {
	raw, err := p.rdb.HGet(ctx, configKey, field).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false
	}
	if err != nil {
		slog.Warn("read chat config from redis", slog.String("field", field), slog.Any(constant.Error, err))
		return 0, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		slog.Warn("invalid chat config value", slog.String("field", field), slog.String("value", raw))
		return 0, false
	}

	return n, true
}
