package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/qrave1/RoomChat/internal/domain/events"
	"github.com/qrave1/RoomChat/internal/domain/models"
	"github.com/qrave1/RoomChat/internal/infra/adapters/memory"
)

type recordingConn struct {
	mu     sync.Mutex
	frames []events.Message
}

func (c *recordingConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frames = append(c.frames, v.(events.Message))

	return nil
}

type recordingPublisher struct {
	published []*models.Message
	err       error
}

func (p *recordingPublisher) PublishMessage(_ context.Context, msg *models.Message) error {
	p.published = append(p.published, msg)
	return p.err
}

func TestNotifier(t *testing.T) {
	ctx := context.Background()
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	setup := func(t *testing.T, publisher Publisher) (*Notifier, uuid.UUID, map[uuid.UUID]*recordingConn) {
		t.Helper()

		rooms := memory.NewRoomRepository(nil)
		roomID, err := rooms.CreateRoom(ctx, alice, "", []uuid.UUID{bob})
		require.NoError(t, err)

		wsRepo := memory.NewWSConnectionRepository()
		conns := map[uuid.UUID]*recordingConn{}
		for _, uid := range []uuid.UUID{alice, bob, carol} {
			conns[uid] = &recordingConn{}
			wsRepo.Add(uid, "conn", conns[uid])
		}

		return New(rooms, wsRepo, publisher), roomID, conns
	}

	t.Run("should deliver room event to every member including actor", func(t *testing.T) {
		req := require.New(t)
		n, roomID, conns := setup(t, nil)

		err := n.NotifyRoom(ctx, alice, roomID, events.ChatRoomRename, events.RoomRenameEvent{RoomID: roomID, NewName: "Team"})
		req.NoError(err)

		for _, uid := range []uuid.UUID{alice, bob} {
			req.Len(conns[uid].frames, 1)
			req.Equal(events.ChatRoomRename, conns[uid].frames[0].Type)

			var got events.RoomRenameEvent
			req.NoError(json.Unmarshal(conns[uid].frames[0].Data, &got))
			req.Equal("Team", got.NewName)
		}
		req.Empty(conns[carol].frames)
	})

	t.Run("should fail for unknown room", func(t *testing.T) {
		n, _, _ := setup(t, nil)

		err := n.NotifyRoom(ctx, alice, uuid.New(), events.ChatReceive, nil)

		require.Error(t, err)
	})

	t.Run("should publish received messages and ignore publisher errors", func(t *testing.T) {
		req := require.New(t)
		publisher := &recordingPublisher{err: errors.New("broker down")}
		n, roomID, conns := setup(t, publisher)
		msg := &models.Message{ID: uuid.New(), RoomID: roomID, UID: bob, Content: "hi"}

		req.NoError(n.NotifyRoom(ctx, bob, roomID, events.ChatReceive, msg))
		req.NoError(n.NotifyRoom(ctx, alice, roomID, events.ChatUsersLeft, events.MembershipEvent{RoomID: roomID}))

		req.Equal([]*models.Message{msg}, publisher.published)
		req.Len(conns[alice].frames, 2)
	})

	t.Run("should notify only listed users", func(t *testing.T) {
		req := require.New(t)
		n, roomID, conns := setup(t, nil)

		req.NoError(n.NotifyUsers(ctx, events.ChatUsersJoined, events.MembershipEvent{RoomID: roomID}, []uuid.UUID{carol}))

		req.Len(conns[carol].frames, 1)
		req.Empty(conns[alice].frames)
	})
}
