package classe_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/marcelsud/locadora-web/classe"
	"github.com/marcelsud/locadora-web/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft(t *testing.T) {
	v := form.New()

	t.Run("success", func(t *testing.T) {
		d := classe.DraftFromForm(url.Values{"nome": {"Ouro"}})
		require.NoError(t, v.Validate(d))
		assert.Equal(t, classe.Create{Nome: "Ouro"}, d.CreatePayload())
	})

	t.Run("error - short name", func(t *testing.T) {
		err := v.Validate(classe.Draft{Nome: "O"})

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Número insuficiente de caracteres", verr.Fields["nome"])
	})

	t.Run("update keeps the id", func(t *testing.T) {
		existing := classe.Classe{ID: "c-1", Nome: "Ouro"}
		u := classe.Draft{Nome: "Platina"}.UpdatePayload(existing)
		assert.Equal(t, classe.Update{ID: "c-1", Nome: "Platina"}, u)
	})
}

func TestClasse_JSON(t *testing.T) {
	var c classe.Classe
	err := json.Unmarshal([]byte(`{"id":"c-1","nome":"Ouro","atores":[{"id":"a-1","nome":"Selton"}]}`), &c)

	require.NoError(t, err)
	assert.Equal(t, "c-1", c.Key())
	require.Len(t, c.Atores, 1)
	assert.Equal(t, "Selton", c.Atores[0].Nome)
}
