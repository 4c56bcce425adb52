package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qrave1/RoomChat/internal/application/config"
	"github.com/qrave1/RoomChat/internal/application/constant"
	"github.com/qrave1/RoomChat/internal/application/metric"
	"github.com/qrave1/RoomChat/internal/domain/events"
	"github.com/qrave1/RoomChat/internal/infra/adapters/directory"
	"github.com/qrave1/RoomChat/internal/infra/adapters/kafka"
	"github.com/qrave1/RoomChat/internal/infra/adapters/memory"
	"github.com/qrave1/RoomChat/internal/infra/adapters/postgres"
	"github.com/qrave1/RoomChat/internal/infra/adapters/postgres/repository"
	redisrepo "github.com/qrave1/RoomChat/internal/infra/adapters/redis"
	"github.com/qrave1/RoomChat/internal/infra/hooks"
	"github.com/qrave1/RoomChat/internal/infra/notifier"
	"github.com/qrave1/RoomChat/internal/infra/ports/http/handlers"
	"github.com/qrave1/RoomChat/internal/infra/ports/http/middleware"
	"github.com/qrave1/RoomChat/internal/infra/ports/http/server"
	"github.com/qrave1/RoomChat/internal/usecase"
)

type stores struct {
	rooms    usecase.RoomStore
	messages usecase.MessageStore
	users    directory.UserStore

	// middleware только для авторизованных запросов, зависит от хранилища
	authenticated []echo.MiddlewareFunc

	close func()
}

func runApp() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		slog.Error("parse config", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: level},
			),
		),
	)

	st, err := newStores(ctx, cfg)
	if err != nil {
		slog.Error("init storage", slog.String("storage", cfg.Storage), slog.Any(constant.Error, err))
		os.Exit(1)
	}
	defer st.close()

	// Настройки чата: env по умолчанию, redis - переопределение без рестарта
	var (
		chatCfg  usecase.ConfigProvider = cfg.Chat
		presence directory.Presence
	)

	if cfg.Redis.Addr != "" {
		rdb, err := redisrepo.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Error("connect to redis", slog.Any(constant.Error, err))
			os.Exit(1)
		}
		defer rdb.Close()

		chatCfg = redisrepo.NewConfigProvider(rdb, cfg.Chat)
		presence = redisrepo.NewPresenceRepository(rdb, cfg.Redis.OnlineTTL)
	}

	var publisher notifier.Publisher

	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		writer := kafka.NewWriter(brokers, cfg.Kafka.Topic)
		defer func() {
			if err := writer.Close(); err != nil {
				slog.Error("close kafka writer", slog.Any(constant.Error, err))
			}
		}()

		publisher = writer
	}

	users := directory.New(st.users, presence)
	wsConnRepo := memory.NewWSConnectionRepository()
	sessionRepo := memory.NewSessionRepository()

	hookPipeline := hooks.NewPipeline().Register(events.FilterMessagingSend, hooks.TrimContent)
	chatNotifier := notifier.New(st.rooms, wsConnRepo, publisher)

	guard := usecase.NewGuard(st.rooms, users, chatCfg)
	limiter := usecase.NewRateLimiter(chatCfg)
	roomQuery := usecase.NewRoomQuery(st.rooms, st.messages, guard, cfg.Chat.RecentMessages)
	roomUsecase := usecase.NewRoomUsecase(st.rooms, guard, limiter, roomQuery, chatNotifier, chatCfg, cfg.Chat.MaxRoomNameLength)
	messageUsecase := usecase.NewMessageUsecase(st.messages, users, guard, limiter, hookPipeline, chatNotifier, cfg.Chat.MaxMessageLength)

	roomHandler := handlers.NewRoomHandler(roomUsecase, messageUsecase, roomQuery, sessionRepo)
	wsHandler := handlers.NewWebSocketHandler(cfg, roomUsecase, messageUsecase, wsConnRepo)

	echoSrv := server.New(cfg, roomHandler, wsHandler, st.authenticated...)

	metricsSrv := metric.NewServer()

	echoSrvCh := make(chan error, 1)
	metricsSrvCh := make(chan error, 1)

	// Запускаем HTTP сервер
	go func() {
		slog.Info("HTTP server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.Storage))
		echoSrvCh <- echoSrv.Start(":" + cfg.Port)
	}()

	// Запускаем сервер метрик
	go func() {
		metricsSrvCh <- metricsSrv.Start(":" + cfg.MetricPort)
	}()

	// Ожидаем сигнал завершения или ошибку сервера
	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers due to context cancel")
	case err := <-echoSrvCh:
		slog.Error(
			"HTTP server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	case err := <-metricsSrvCh:
		slog.Error(
			"Metrics server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	}

	// Graceful shutdown
	timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer timeoutCancel()

	if err := echoSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown HTTP server", slog.Any(constant.Error, err))
	}

	if err := metricsSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown metric server", slog.Any(constant.Error, err))
	}
}

func newStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.Storage == config.StorageMemory {
		users := memory.NewUserDirectory()
		rooms := memory.NewRoomRepository(users)

		slog.Warn("using in-memory storage, data is lost on restart")

		return &stores{
			rooms:         rooms,
			messages:      rooms,
			users:         users,
			authenticated: []echo.MiddlewareFunc{middleware.RegisterUser(users)},
			close:         func() {},
		}, nil
	}

	dbConn, err := postgres.NewPostgres(ctx, cfg.Postgres.DSN())
	if err != nil {
		return nil, err
	}

	return &stores{
		rooms:    repository.NewRoomRepo(dbConn),
		messages: repository.NewMessageRepo(dbConn),
		users:    repository.NewUserRepo(dbConn),
		close: func() {
			if err := dbConn.Close(); err != nil {
				slog.Error("close postgres", slog.Any(constant.Error, err))
			}
		},
	}, nil
}
