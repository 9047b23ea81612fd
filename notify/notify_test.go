package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/marcelsud/locadora-web/notify"
	"github.com/marcelsud/locadora-web/notify/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionKey struct{}

func sessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

func TestNotifier(t *testing.T) {
	n := notify.NewNotifier(memory.NewStore(time.Minute), sessionFrom)

	t.Run("success - notify then drain", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), sessionKey{}, "sessao-1")

		require.NoError(t, n.Notify(ctx, notify.Success("Cliente editado com sucesso")))
		got, err := n.Drain(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Sucesso!", got[0].Title)
		assert.False(t, got[0].IsDestructive())
	})

	t.Run("error - no session", func(t *testing.T) {
		err := n.Notify(context.Background(), notify.Failure("x"))
		assert.True(t, errors.Is(err, notify.ErrNoSession))

		got, err := n.Drain(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestVariant(t *testing.T) {
	assert.Equal(t, "destructive", notify.Destructive.String())
	assert.Equal(t, notify.Default, notify.NewVariant("whatever"))
	assert.Error(t, notify.Variant(9).Validate())

	out, err := json.Marshal(notify.Failure("falhou"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Erro!","description":"falhou","variant":"destructive"}`, string(out))

	var back notify.Notification
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.IsDestructive())
}
