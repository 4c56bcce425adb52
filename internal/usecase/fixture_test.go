package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/qrave1/RoomChat/internal/domain/input"
	"github.com/qrave1/RoomChat/internal/domain/models"
	"github.com/qrave1/RoomChat/internal/domain/session"
	"github.com/qrave1/RoomChat/internal/infra/adapters/memory"
	"github.com/qrave1/RoomChat/internal/usecase/mocks"
)

const testDelay = 200 * time.Millisecond

// fixture собирает usecase'ы поверх in-memory хранилищ; уведомления, хуки и конфиг - моки
type fixture struct {
	users    *memory.UserDirectory
	rooms    *memory.RoomRepository
	notifier *mocks.MockNotifier
	hooks    *mocks.MockHookPipeline

	guard   *Guard
	limiter *RateLimiter
	query   RoomQuery
	roomUC  *roomUsecase
	msgUC   *messageUsecase

	clock time.Time
}

func newFixture(t *testing.T, maxUsers int) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := mocks.NewMockConfigProvider(ctrl)
	cfg.EXPECT().ChatMessageDelay(gomock.Any()).Return(testDelay).AnyTimes()
	cfg.EXPECT().MaxUsersInRoom(gomock.Any()).Return(maxUsers).AnyTimes()

	f := &fixture{
		users:    memory.NewUserDirectory(),
		notifier: mocks.NewMockNotifier(ctrl),
		hooks:    mocks.NewMockHookPipeline(ctrl),
		clock:    time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	f.rooms = memory.NewRoomRepository(f.users)

	f.guard = NewGuard(f.rooms, f.users, cfg)
	f.limiter = NewRateLimiter(cfg)
	f.query = NewRoomQuery(f.rooms, f.rooms, f.guard, 10)

	f.roomUC = NewRoomUsecase(f.rooms, f.guard, f.limiter, f.query, f.notifier, cfg, 20).(*roomUsecase)
	f.roomUC.now = f.now

	f.msgUC = NewMessageUsecase(f.rooms, f.users, f.guard, f.limiter, f.hooks, f.notifier, 100).(*messageUsecase)
	f.msgUC.now = f.now

	return f
}

func (f *fixture) now() time.Time { return f.clock }

func (f *fixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

func (f *fixture) user(name string) uuid.UUID {
	id := uuid.New()
	f.users.AddUser(&models.User{ID: id, Username: name})
	return id
}

// caller - новая сессия на каждый вызов, если не нужен общий лимит
func (f *fixture) caller(uid uuid.UUID) input.Caller {
	return input.Caller{UserID: uid, Session: session.New(uuid.NewString()), RemoteAddr: "127.0.0.1"}
}

func (f *fixture) allowNotifications() {
	f.notifier.EXPECT().NotifyUsers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().NotifyRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) passThroughHooks() {
	f.hooks.EXPECT().
		Transform(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p *models.MessagePayload) (*models.MessagePayload, error) {
			return p, nil
		}).
		AnyTimes()
}

func uids(members []models.Member) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		out = append(out, m.UID)
	}
	return out
}
