package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/qrave1/RoomChat/internal/domain/models"
)

type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepo(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) SaveMessage(ctx context.Context, msg *models.Message) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// комнаты в списке сортируются по последней активности
	res, err := tx.ExecContext(ctx, "UPDATE rooms SET updated_at = $1 WHERE id = $2", msg.Timestamp, msg.RoomID)
	if err != nil {
		return fmt.Errorf("touch room: %w", err)
	}

	if err = expectAffected(res, msg.RoomID); err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		"INSERT INTO messages (id, room_id, user_id, content, created_at) VALUES ($1, $2, $3, $4, $5)",
		msg.ID,
		msg.RoomID,
		msg.UID,
		msg.Content,
		msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	return tx.Commit()
}

func (r *MessageRepository) ListMessages(ctx context.Context, roomID uuid.UUID, limit int) ([]*models.Message, error) {
	// limit <= 0 - вся история
	var lim sql.NullInt64
	if limit > 0 {
		lim = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	messages := make([]*models.Message, 0)

	query := `
		SELECT id, room_id, user_id, content, created_at
		FROM (
			SELECT id, room_id, user_id, content, created_at
			FROM messages
			WHERE room_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at
	`

	if err := r.db.SelectContext(ctx, &messages, query, roomID, lim); err != nil {
		return nil, err
	}

	return messages, nil
}
