package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/models"
)

func TestMessageRepository_SaveMessage(t *testing.T) {
	ctx := context.Background()
	msg := &models.Message{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		UID:       uuid.New(),
		Content:   "hi",
		Timestamp: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("should touch room and insert message in one tx", func(t *testing.T) {
		req := require.New(t)
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET updated_at = $1 WHERE id = $2")).
			WithArgs(msg.Timestamp, msg.RoomID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
			WithArgs(msg.ID, msg.RoomID, msg.UID, msg.Content, msg.Timestamp).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req.NoError(NewMessageRepo(db).SaveMessage(ctx, msg))
		req.NoError(mock.ExpectationsWereMet())
	})

	t.Run("should not insert into missing room", func(t *testing.T) {
		req := require.New(t)
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET updated_at = $1 WHERE id = $2")).
			WithArgs(msg.Timestamp, msg.RoomID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		req.ErrorIs(NewMessageRepo(db).SaveMessage(ctx, msg), errs.ErrNotFound)
		req.NoError(mock.ExpectationsWereMet())
	})
}

func TestMessageRepository_ListMessages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, mock := newMockDB(t)
	roomID, uid := uuid.New(), uuid.New()
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM messages")).
		WithArgs(roomID, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "user_id", "content", "created_at"}).
			AddRow(uuid.NewString(), roomID.String(), uid.String(), "two", at).
			AddRow(uuid.NewString(), roomID.String(), uid.String(), "three", at.Add(time.Second)))

	messages, err := NewMessageRepo(db).ListMessages(ctx, roomID, 2)
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("two", messages[0].Content)
	req.Equal(uid, messages[1].UID)
	req.NoError(mock.ExpectationsWereMet())
}
