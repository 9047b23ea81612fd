//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/marcelsud/locadora-web/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Integration(t *testing.T) {
	ctx := context.Background()
	addr, cleanup := SetupRedisContainer(t, ctx)
	defer cleanup()

	t.Run("push and pop in order", func(t *testing.T) {
		store := CreateTestStore(t, addr, time.Minute)
		defer store.Close(ctx)

		require.NoError(t, store.Push(ctx, "sessao-1", notify.Success("Cliente editado com sucesso")))
		require.NoError(t, store.Push(ctx, "sessao-1", notify.Failure("Erro ao criar/editar cliente")))

		got, err := store.Pop(ctx, "sessao-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Cliente editado com sucesso", got[0].Description)
		assert.Equal(t, notify.Destructive, got[1].Variant)

		assert.False(t, KeyExists(t, addr, "flash:sessao-1"))
		again, err := store.Pop(ctx, "sessao-1")
		require.NoError(t, err)
		assert.Empty(t, again)
	})

	t.Run("push sets the TTL", func(t *testing.T) {
		store := CreateTestStore(t, addr, time.Minute)
		defer store.Close(ctx)

		require.NoError(t, store.Push(ctx, "sessao-2", notify.Success("ok")))

		ttl := GetKeyTTL(t, addr, "flash:sessao-2")
		assert.Greater(t, ttl, int64(0))
		assert.LessOrEqual(t, ttl, int64(60))
	})

	t.Run("pending counts every session", func(t *testing.T) {
		store := CreateTestStore(t, addr, time.Minute)
		defer store.Close(ctx)

		require.NoError(t, store.Push(ctx, "sessao-3", notify.Success("a")))
		require.NoError(t, store.Push(ctx, "sessao-4", notify.Success("b")))
		require.NoError(t, store.Push(ctx, "sessao-4", notify.Success("c")))

		pending, err := store.Pending(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pending, int64(3))
	})
}
