package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserRepository отвечает на вопросы справочника пользователей из postgres
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Exists(ctx context.Context, uids []uuid.UUID) ([]bool, error) {
	exists := make([]bool, len(uids))
	if len(uids) == 0 {
		return exists, nil
	}

	query, args, err := sqlx.In("SELECT id FROM users WHERE id IN (?)", uids)
	if err != nil {
		return nil, err
	}

	var found []uuid.UUID
	if err = r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	known := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	for i, uid := range uids {
		_, exists[i] = known[uid]
	}

	return exists, nil
}

func (r *UserRepository) IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var blocked bool

	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_blocks
			WHERE (blocker_id = $1 AND blocked_id = $2)
			   OR (blocker_id = $2 AND blocked_id = $1)
		)
	`

	err := r.db.GetContext(ctx, &blocked, query, a, b)

	return blocked, err
}

func (r *UserRepository) SetOnline(ctx context.Context, uid uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET last_online_at = now() WHERE id = $1", uid)

	return err
}
