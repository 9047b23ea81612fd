package dialog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/marcelsud/locadora-web/dialog"
	"github.com/marcelsud/locadora-web/dialog/mocks"
	"github.com/marcelsud/locadora-web/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clienteToggle = dialog.ToggleMessages{
	ActivateQuestion:   "Tem certeza que deseja ativar este cliente?",
	DeactivateQuestion: "Tem certeza que deseja desativar este cliente?",
	Activated:          "Cliente ativado com sucesso",
	Deactivated:        "Cliente desativado com sucesso",
	Failed:             "Erro ao alterar o status do cliente",
}

func TestToggleDialog(t *testing.T) {
	ctx := context.Background()

	t.Run("question follows the current state", func(t *testing.T) {
		d := dialog.NewToggleDialog(mocks.NewToggler(t), mocks.NewRefresher(t), mocks.NewNotifier(t), clienteToggle)

		d.Open("42", true)
		assert.Equal(t, clienteToggle.DeactivateQuestion, d.Question())
		d.Open("42", false)
		assert.Equal(t, clienteToggle.ActivateQuestion, d.Question())
	})

	t.Run("success - deactivated", func(t *testing.T) {
		toggler := mocks.NewToggler(t)
		refresher := mocks.NewRefresher(t)
		notifier := mocks.NewNotifier(t)
		toggler.On("Toggle", ctx, "42").Return(false, nil).Once()
		notifier.On("Notify", ctx, notify.Success("Cliente desativado com sucesso")).Return(nil).Once()
		refresher.On("Refresh", ctx).Return(nil).Once()
		d := dialog.NewToggleDialog(toggler, refresher, notifier, clienteToggle)

		require.NoError(t, d.Confirm(ctx, "42"))
		assert.False(t, d.IsOpen())
	})

	t.Run("error - failure notified", func(t *testing.T) {
		toggler := mocks.NewToggler(t)
		notifier := mocks.NewNotifier(t)
		toggler.On("Toggle", ctx, "42").Return(true, fmt.Errorf("some error")).Once()
		notifier.On("Notify", ctx, notify.Failure(clienteToggle.Failed)).Return(nil).Once()
		d := dialog.NewToggleDialog(toggler, mocks.NewRefresher(t), notifier, clienteToggle)

		assert.Error(t, d.Confirm(ctx, "42"))
	})

	t.Run("refresher func", func(t *testing.T) {
		called := false
		r := dialog.RefresherFunc(func(ctx context.Context) error {
			called = true
			return nil
		})

		require.NoError(t, r.Refresh(ctx))
		assert.True(t, called)
	})
}
