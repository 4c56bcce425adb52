package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Debug      bool   `env:"DEBUG" envDefault:"false"`
	Port       string `env:"PORT" envDefault:"3000"`
	MetricPort string `env:"METRIC_PORT" envDefault:"9090"`
	Domain     string `env:"DOMAIN" envDefault:"http://localhost:3000"`
	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`

	// Storage - postgres или memory (для локального запуска без БД)
	Storage string `env:"STORAGE" envDefault:"postgres"`

	Chat     ChatConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// ChatConfig - значения по умолчанию. Задержка и вместимость могут переопределяться в рантайме через redis.
type ChatConfig struct {
	MessageDelay      time.Duration `env:"CHAT_MESSAGE_DELAY" envDefault:"200ms"`
	MaxUsers          int           `env:"CHAT_MAX_USERS_IN_ROOM" envDefault:"0"`
	MaxRoomNameLength int           `env:"CHAT_MAX_ROOM_NAME_LENGTH" envDefault:"50"`
	MaxMessageLength  int           `env:"CHAT_MAX_MESSAGE_LENGTH" envDefault:"1000"`
	RecentMessages    int           `env:"CHAT_RECENT_MESSAGES" envDefault:"50"`
}

type PostgresConfig struct {
	URL string `env:"POSTGRES_URL"`

	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Name     string `env:"POSTGRES_NAME" envDefault:"roomchat"`
	SSL      string `env:"POSTGRES_SSL" envDefault:"disable"`
}

func (p *PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}

	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.Name,
		p.SSL,
	)
}

// RedisConfig - пустой Addr отключает presence и рантайм-конфиг в redis
type RedisConfig struct {
	Addr      string        `env:"REDIS_ADDR"`
	Password  string        `env:"REDIS_PASSWORD"`
	DB        int           `env:"REDIS_DB" envDefault:"0"`
	OnlineTTL time.Duration `env:"REDIS_ONLINE_TTL" envDefault:"5m"`
}

// KafkaConfig - пустой Brokers отключает публикацию сообщений в kafka
type KafkaConfig struct {
	Brokers string `env:"KAFKA_BROKERS"`
	Topic   string `env:"KAFKA_TOPIC" envDefault:"chat.messages"`
}

func (k *KafkaConfig) BrokerList() []string {
	if k.Brokers == "" {
		return nil
	}

	return strings.Split(k.Brokers, ",")
}

func New() (*Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}

	return &c, nil
}

// ChatMessageDelay и MaxUsersInRoom делают ChatConfig статическим провайдером настроек чата
func (c ChatConfig) ChatMessageDelay(context.Context) time.Duration {
	return c.MessageDelay
}

func (c ChatConfig) MaxUsersInRoom(context.Context) int {
	return c.MaxUsers
}
