package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/models"
)

func TestRoomRepository_Membership(t *testing.T) {
	ctx := context.Background()
	owner, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("should keep insertion order and owner first", func(t *testing.T) {
		req := require.New(t)
		repo := NewRoomRepository(nil)

		roomID, err := repo.CreateRoom(ctx, owner, "", []uuid.UUID{b, c})
		req.NoError(err)

		req.NoError(repo.AddMembers(ctx, roomID, []uuid.UUID{d, b}))

		members, err := repo.ListMembers(ctx, roomID, 0, 0)
		req.NoError(err)
		req.Equal([]uuid.UUID{owner, b, c, d}, uidsOf(members))

		count, err := repo.MemberCount(ctx, roomID)
		req.NoError(err)
		req.Equal(4, count)
	})

	t.Run("should page members", func(t *testing.T) {
		req := require.New(t)
		repo := NewRoomRepository(nil)

		roomID, err := repo.CreateRoom(ctx, owner, "", []uuid.UUID{b, c, d})
		req.NoError(err)

		page, err := repo.ListMembers(ctx, roomID, 1, 2)
		req.NoError(err)
		req.Equal([]uuid.UUID{b, c}, uidsOf(page))

		tail, err := repo.ListMembers(ctx, roomID, 10, 2)
		req.NoError(err)
		req.Empty(tail)
	})

	t.Run("should remove members", func(t *testing.T) {
		req := require.New(t)
		repo := NewRoomRepository(nil)

		roomID, err := repo.CreateRoom(ctx, owner, "", []uuid.UUID{b, c})
		req.NoError(err)

		req.NoError(repo.RemoveMembers(ctx, roomID, []uuid.UUID{b}))

		isMember, err := repo.IsMember(ctx, roomID, b)
		req.NoError(err)
		req.False(isMember)

		rooms, err := repo.ListRoomsByUser(ctx, c)
		req.NoError(err)
		req.Len(rooms, 1)
	})

	t.Run("should return not found for unknown room", func(t *testing.T) {
		req := require.New(t)
		repo := NewRoomRepository(nil)

		_, err := repo.GetRoomData(ctx, uuid.New())
		req.ErrorIs(err, errs.ErrNotFound)

		req.ErrorIs(repo.AddMembers(ctx, uuid.New(), []uuid.UUID{b}), errs.ErrNotFound)
	})

	t.Run("should fill usernames from directory", func(t *testing.T) {
		req := require.New(t)
		users := NewUserDirectory()
		users.AddUser(&models.User{ID: owner, Username: "alice"})
		repo := NewRoomRepository(users)

		roomID, err := repo.CreateRoom(ctx, owner, "", nil)
		req.NoError(err)

		members, err := repo.ListMembers(ctx, roomID, 0, 0)
		req.NoError(err)
		req.Equal("alice", members[0].Username)
	})
}

func TestRoomRepository_Messages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewRoomRepository(nil)
	owner := uuid.New()

	roomID, err := repo.CreateRoom(ctx, owner, "team", nil)
	req.NoError(err)

	at := time.Now().UTC()
	for i, content := range []string{"one", "two", "three"} {
		req.NoError(repo.SaveMessage(ctx, &models.Message{
			ID:        uuid.New(),
			RoomID:    roomID,
			UID:       owner,
			Content:   content,
			Timestamp: at.Add(time.Duration(i) * time.Second),
		}))
	}

	last, err := repo.ListMessages(ctx, roomID, 2)
	req.NoError(err)
	req.Len(last, 2)
	req.Equal("two", last[0].Content)
	req.Equal("three", last[1].Content)

	err = repo.SaveMessage(ctx, &models.Message{RoomID: uuid.New()})
	req.ErrorIs(err, errs.ErrNotFound)
}

func uidsOf(members []models.Member) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		out = append(out, m.UID)
	}
	return out
}
