package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const onlinePrefix = "online:"

type KeySetter interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// PresenceRepository помечает пользователя онлайн ключом с TTL
type PresenceRepository struct {
	rdb KeySetter
	ttl time.Duration
}

func NewPresenceRepository(rdb KeySetter, ttl time.Duration) *PresenceRepository {
	return &PresenceRepository{rdb: rdb, ttl: ttl}
}

func (p *PresenceRepository) SetOnline(ctx context.Context, uid uuid.UUID) error {
	return p.rdb.Set(ctx, onlinePrefix+uid.String(), time.Now().Unix(), p.ttl).Err()
}
