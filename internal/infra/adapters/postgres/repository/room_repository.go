package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/qrave1/RoomChat/internal/domain/errs"
	"github.com/qrave1/RoomChat/internal/domain/models"
)

type RoomRepository struct {
	db *sqlx.DB
}

func NewRoomRepo(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// CreateRoom создает комнату и участников в одной транзакции; владелец вступает первым
func (r *RoomRepository) CreateRoom(ctx context.Context, ownerID uuid.UUID, name string, memberIDs []uuid.UUID) (uuid.UUID, error) {
	room := models.NewRoom(ownerID, name)

	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			"INSERT INTO rooms (id, owner_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)",
			room.ID,
			room.OwnerID,
			room.Name,
			room.CreatedAt,
			room.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert room: %w", err)
		}

		return insertMembers(ctx, tx, room.ID, lo.Uniq(append([]uuid.UUID{ownerID}, memberIDs...)))
	})
	if err != nil {
		return uuid.Nil, err
	}

	return room.ID, nil
}

func (r *RoomRepository) GetRoomData(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	var room models.Room

	err := r.db.GetContext(ctx, &room, "SELECT id, owner_id, name, created_at, updated_at FROM rooms WHERE id = $1", roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) RenameRoom(ctx context.Context, roomID uuid.UUID, name string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE rooms SET name = $1, updated_at = now() WHERE id = $2", name, roomID)
	if err != nil {
		return err
	}

	return expectAffected(res, roomID)
}

// AddMembers блокирует строку комнаты, чтобы параллельные изменения состава шли последовательно
func (r *RoomRepository) AddMembers(ctx context.Context, roomID uuid.UUID, uids []uuid.UUID) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockRoom(ctx, tx, roomID); err != nil {
			return err
		}

		return insertMembers(ctx, tx, roomID, uids)
	})
}

func (r *RoomRepository) RemoveMembers(ctx context.Context, roomID uuid.UUID, uids []uuid.UUID) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockRoom(ctx, tx, roomID); err != nil {
			return err
		}

		query, args, err := sqlx.In("DELETE FROM room_members WHERE room_id = ? AND user_id IN (?)", roomID, uids)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(query), args...)

		return err
	})
}

func (r *RoomRepository) ListMembers(ctx context.Context, roomID uuid.UUID, offset, count int) ([]models.Member, error) {
	if _, err := r.GetRoomData(ctx, roomID); err != nil {
		return nil, err
	}

	var limit sql.NullInt64
	if count > 0 {
		limit = sql.NullInt64{Int64: int64(count), Valid: true}
	}

	members := make([]models.Member, 0)

	query := `
		SELECT rm.user_id, COALESCE(u.username, '') AS username
		FROM room_members rm
		LEFT JOIN users u ON u.id = rm.user_id
		WHERE rm.room_id = $1
		ORDER BY rm.seq
		OFFSET $2
		LIMIT $3
	`

	if err := r.db.SelectContext(ctx, &members, query, roomID, offset, limit); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *RoomRepository) MemberCount(ctx context.Context, roomID uuid.UUID) (int, error) {
	if _, err := r.GetRoomData(ctx, roomID); err != nil {
		return 0, err
	}

	var count int

	err := r.db.GetContext(ctx, &count, "SELECT count(*) FROM room_members WHERE room_id = $1", roomID)

	return count, err
}

func (r *RoomRepository) IsMember(ctx context.Context, roomID, uid uuid.UUID) (bool, error) {
	var exists bool

	err := r.db.GetContext(
		ctx,
		&exists,
		"SELECT EXISTS (SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2)",
		roomID,
		uid,
	)

	return exists, err
}

func (r *RoomRepository) ListRoomsByUser(ctx context.Context, uid uuid.UUID) ([]*models.Room, error) {
	var rooms []*models.Room

	query := `
		SELECT r.id, r.owner_id, r.name, r.created_at, r.updated_at
		FROM rooms r
		INNER JOIN room_members rm ON r.id = rm.room_id
		WHERE rm.user_id = $1
		ORDER BY r.updated_at DESC
	`

	if err := r.db.SelectContext(ctx, &rooms, query, uid); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *RoomRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func lockRoom(ctx context.Context, tx *sqlx.Tx, roomID uuid.UUID) error {
	var id uuid.UUID

	err := tx.GetContext(ctx, &id, "SELECT id FROM rooms WHERE id = $1 FOR UPDATE", roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	return err
}

func insertMembers(ctx context.Context, tx *sqlx.Tx, roomID uuid.UUID, uids []uuid.UUID) error {
	for _, uid := range uids {
		_, err := tx.ExecContext(
			ctx,
			"INSERT INTO room_members (room_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			roomID,
			uid,
		)
		if err != nil {
			return fmt.Errorf("insert member %s: %w", uid, err)
		}
	}

	return nil
}

func expectAffected(res sql.Result, roomID uuid.UUID) error {
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		return fmt.Errorf("%w: room %s", errs.ErrNotFound, roomID)
	}

	return nil
}
