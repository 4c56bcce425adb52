package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should fail without jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := New()

		require.Error(t, err)
	})

	t.Run("should apply defaults", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := New()

		req.NoError(err)
		req.Equal("3000", cfg.Port)
		req.Equal(StoragePostgres, cfg.Storage)
		req.Equal(200*time.Millisecond, cfg.Chat.MessageDelay)
		req.Equal(0, cfg.Chat.MaxUsers)
		req.Equal(50, cfg.Chat.MaxRoomNameLength)
		req.Nil(cfg.Kafka.BrokerList())
	})

	t.Run("should read chat overrides", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("CHAT_MESSAGE_DELAY", "2s")
		t.Setenv("CHAT_MAX_USERS_IN_ROOM", "3")
		t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

		cfg, err := New()

		req.NoError(err)
		req.Equal(2*time.Second, cfg.Chat.MessageDelay)
		req.Equal(3, cfg.Chat.MaxUsers)
		req.Equal([]string{"k1:9092", "k2:9092"}, cfg.Kafka.BrokerList())
	})

	t.Run("should reject unknown storage", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("STORAGE", "mongo")

		_, err := New()

		require.Error(t, err)
	})

	t.Run("should build dsn from parts", func(t *testing.T) {
		p := PostgresConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "n", SSL: "disable"}

		require.Equal(t, "postgresql://u:p@h:5432/n?sslmode=disable", p.DSN())
	})
}
