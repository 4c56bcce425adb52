package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/events"
	"github.com/qrave1/RoomChat/internal/domain/input"
	"github.com/qrave1/RoomChat/internal/domain/models"
)

func TestMessageUsecase_PostMessage(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (f *fixture, a, b uuid.UUID, roomID uuid.UUID) {
		t.Helper()

		f = newFixture(t, 0)
		a, b = f.user("a"), f.user("b")

		roomID, err := f.rooms.CreateRoom(ctx, a, "", []uuid.UUID{b})
		require.NoError(t, err)

		return f, a, b, roomID
	}

	t.Run("should persist and fan out message", func(t *testing.T) {
		req := require.New(t)
		f, _, b, roomID := setup(t)

		f.hooks.EXPECT().
			Transform(gomock.Any(), events.FilterMessagingSend, &models.MessagePayload{Content: "hi", RoomID: roomID, UID: b}).
			Return(&models.MessagePayload{Content: "hi!", RoomID: roomID, UID: b}, nil)

		var delivered *models.Message
		f.notifier.EXPECT().
			NotifyRoom(gomock.Any(), b, roomID, events.ChatReceive, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _ string, payload any) error {
				delivered = payload.(*models.Message)
				return nil
			})

		msg, err := f.msgUC.PostMessage(ctx, f.caller(b), input.PostMessageInput{RoomID: roomID, Content: "hi"})
		req.NoError(err)
		req.Equal("hi!", msg.Content)
		req.Equal(f.clock, msg.Timestamp)
		req.Equal(msg, delivered)
		req.True(f.users.IsOnline(b))

		stored, err := f.rooms.ListMessages(ctx, roomID, 10)
		req.NoError(err)
		req.Len(stored, 1)
		req.Equal(msg.ID, stored[0].ID)
	})

	t.Run("should reject second message within delay without refreshing window", func(t *testing.T) {
		req := require.New(t)
		f, _, b, roomID := setup(t)
		f.passThroughHooks()
		f.allowNotifications()
		caller := f.caller(b)
		in := input.PostMessageInput{RoomID: roomID, Content: "spam"}

		_, err := f.msgUC.PostMessage(ctx, caller, in)
		req.NoError(err)
		first := caller.Session.LastChatMessageTime()

		f.advance(testDelay - 1)
		_, err = f.msgUC.PostMessage(ctx, caller, in)
		req.ErrorIs(err, errs.ErrRateLimited)
		req.Equal(first, caller.Session.LastChatMessageTime())

		f.advance(1)
		_, err = f.msgUC.PostMessage(ctx, caller, in)
		req.NoError(err)
	})

	t.Run("should accept exactly one of concurrent posts in a session", func(t *testing.T) {
		req := require.New(t)
		f, _, b, roomID := setup(t)
		f.passThroughHooks()
		f.allowNotifications()
		caller := f.caller(b)

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
			limited  int
		)

		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := f.msgUC.PostMessage(ctx, caller, input.PostMessageInput{RoomID: roomID, Content: "race"})

				mu.Lock()
				defer mu.Unlock()

				switch {
				case err == nil:
					accepted++
				case errors.Is(err, errs.ErrRateLimited):
					limited++
				}
			}()
		}
		wg.Wait()

		req.Equal(1, accepted)
		req.Equal(19, limited)
	})

	t.Run("should propagate hook error as is", func(t *testing.T) {
		req := require.New(t)
		f, _, b, roomID := setup(t)
		hookErr := errors.New("plugin rejected message")

		f.hooks.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, hookErr)

		_, err := f.msgUC.PostMessage(ctx, f.caller(b), input.PostMessageInput{RoomID: roomID, Content: "hi"})
		req.Equal(hookErr, err)

		stored, err := f.rooms.ListMessages(ctx, roomID, 10)
		req.NoError(err)
		req.Empty(stored)
	})

	t.Run("should forbid non members", func(t *testing.T) {
		req := require.New(t)
		f, _, _, roomID := setup(t)
		f.passThroughHooks()
		stranger := f.user("stranger")

		_, err := f.msgUC.PostMessage(ctx, f.caller(stranger), input.PostMessageInput{RoomID: roomID, Content: "hi"})
		req.ErrorIs(err, errs.ErrForbidden)

		_, err = f.msgUC.PostMessage(ctx, f.caller(stranger), input.PostMessageInput{RoomID: uuid.New(), Content: "hi"})
		req.ErrorIs(err, errs.ErrNotFound)

		req.False(f.users.IsOnline(stranger))
	})

	t.Run("should require room content and caller address", func(t *testing.T) {
		req := require.New(t)
		f, a, _, roomID := setup(t)
		f.hooks.EXPECT().
			Transform(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p *models.MessagePayload) (*models.MessagePayload, error) {
				p.Content = strings.TrimSpace(p.Content)
				return p, nil
			}).
			AnyTimes()

		_, err := f.msgUC.PostMessage(ctx, f.caller(a), input.PostMessageInput{Content: "hi"})
		req.ErrorIs(err, errs.ErrInvalidRequest)

		_, err = f.msgUC.PostMessage(ctx, f.caller(a), input.PostMessageInput{RoomID: roomID})
		req.ErrorIs(err, errs.ErrInvalidRequest)

		_, err = f.msgUC.PostMessage(ctx, f.caller(a), input.PostMessageInput{RoomID: roomID, Content: "   "})
		req.ErrorIs(err, errs.ErrInvalidRequest)

		_, err = f.msgUC.PostMessage(ctx, f.caller(a), input.PostMessageInput{RoomID: roomID, Content: strings.Repeat("x", 101)})
		req.ErrorIs(err, errs.ErrInvalidRequest)

		noAddr := f.caller(a)
		noAddr.RemoteAddr = ""
		_, err = f.msgUC.PostMessage(ctx, noAddr, input.PostMessageInput{RoomID: roomID, Content: "hi"})
		req.ErrorIs(err, errs.ErrInvalidRequest)
	})

	t.Run("should act on payload returned by hooks", func(t *testing.T) {
		req := require.New(t)
		f, a, b, roomID := setup(t)

		otherRoom, err := f.rooms.CreateRoom(ctx, a, "other", []uuid.UUID{b})
		req.NoError(err)

		f.hooks.EXPECT().
			Transform(gomock.Any(), events.FilterMessagingSend, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p *models.MessagePayload) (*models.MessagePayload, error) {
				return &models.MessagePayload{Content: "filled by hook", RoomID: otherRoom, UID: p.UID}, nil
			})
		f.notifier.EXPECT().NotifyRoom(gomock.Any(), b, otherRoom, events.ChatReceive, gomock.Any()).Return(nil)

		msg, err := f.msgUC.PostMessage(ctx, f.caller(b), input.PostMessageInput{RoomID: roomID})
		req.NoError(err)
		req.Equal(otherRoom, msg.RoomID)
		req.Equal("filled by hook", msg.Content)

		stored, err := f.rooms.ListMessages(ctx, otherRoom, 10)
		req.NoError(err)
		req.Len(stored, 1)

		original, err := f.rooms.ListMessages(ctx, roomID, 10)
		req.NoError(err)
		req.Empty(original)
	})

	t.Run("should check membership in room chosen by hooks", func(t *testing.T) {
		req := require.New(t)
		f, _, b, roomID := setup(t)
		c := f.user("c")

		foreignRoom, err := f.rooms.CreateRoom(ctx, c, "", nil)
		req.NoError(err)

		f.hooks.EXPECT().
			Transform(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p *models.MessagePayload) (*models.MessagePayload, error) {
				p.RoomID = foreignRoom
				return p, nil
			})

		_, err = f.msgUC.PostMessage(ctx, f.caller(b), input.PostMessageInput{RoomID: roomID, Content: "hi"})
		req.ErrorIs(err, errs.ErrForbidden)

		stored, err := f.rooms.ListMessages(ctx, foreignRoom, 10)
		req.NoError(err)
		req.Empty(stored)
	})

	t.Run("should keep message when delivery fails", func(t *testing.T) {
		req := require.New(t)
		f, a, _, roomID := setup(t)
		f.passThroughHooks()

		f.notifier.EXPECT().
			NotifyRoom(gomock.Any(), a, roomID, events.ChatReceive, gomock.Any()).
			Return(errors.New("socket gone"))

		msg, err := f.msgUC.PostMessage(ctx, f.caller(a), input.PostMessageInput{RoomID: roomID, Content: "hi"})
		req.NoError(err)
		req.NotNil(msg)
		req.True(f.users.IsOnline(a))
	})
}
