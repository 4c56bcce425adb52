package directory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/qrave1/RoomChat/internal/domain/models"
	"github.com/qrave1/RoomChat/internal/infra/adapters/memory"
)

type presenceStub struct {
	online []uuid.UUID
}

func (p *presenceStub) SetOnline(_ context.Context, uid uuid.UUID) error {
	p.online = append(p.online, uid)
	return nil
}

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	users := memory.NewUserDirectory()
	users.AddUser(&models.User{ID: alice, Username: "alice"})
	users.AddUser(&models.User{ID: bob, Username: "bob"})
	users.Block(bob, alice)

	t.Run("should delegate checks to user store", func(t *testing.T) {
		req := require.New(t)
		d := New(users, nil)

		exists, err := d.Exists(ctx, []uuid.UUID{alice, uuid.New(), bob})
		req.NoError(err)
		req.Equal([]bool{true, false, true}, exists)

		blocked, err := d.IsBlocked(ctx, alice, bob)
		req.NoError(err)
		req.True(blocked)
	})

	t.Run("should prefer presence for online marks", func(t *testing.T) {
		req := require.New(t)
		presence := &presenceStub{}
		d := New(users, presence)

		req.NoError(d.SetOnline(ctx, alice))

		req.Equal([]uuid.UUID{alice}, presence.online)
		req.False(users.IsOnline(alice))
	})

	t.Run("should fall back to user store without presence", func(t *testing.T) {
		d := New(users, nil)

		require.NoError(t, d.SetOnline(ctx, bob))
		require.True(t, users.IsOnline(bob))
	})
}
