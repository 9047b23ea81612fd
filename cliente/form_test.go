package cliente_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/marcelsud/locadora-web/cliente"
	"github.com/marcelsud/locadora-web/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	t.Run("new cliente gets a number in range", func(t *testing.T) {
		for range 200 {
			d := cliente.NewDraft(nil, nil)
			assert.GreaterOrEqual(t, d.NumInscricao, 1000)
			assert.LessOrEqual(t, d.NumInscricao, 9999)
		}
	})

	t.Run("edit copies the record", func(t *testing.T) {
		c := ana()
		d := cliente.NewDraft(&c, nil)
		assert.Equal(t, 42, d.NumInscricao)
		assert.Equal(t, "Ana", d.Nome)
		assert.Equal(t, cliente.Feminino, d.Sexo)
	})
}

func TestNumInscricao(t *testing.T) {
	t.Run("re-rolls on collision", func(t *testing.T) {
		draws := []int{0, 0, 5}
		intN := func(n int) int {
			assert.Equal(t, 9000, n)
			v := draws[0]
			draws = draws[1:]
			return v
		}

		got := cliente.NumInscricao([]cliente.Cliente{{NumInscricao: 1000}}, intN)

		assert.Equal(t, 1005, got)
	})

	t.Run("gives up after a few tries", func(t *testing.T) {
		calls := 0
		got := cliente.NumInscricao([]cliente.Cliente{{NumInscricao: 9999}}, func(n int) int {
			calls++
			return n - 1
		})

		assert.Equal(t, 9999, got)
		assert.Equal(t, 10, calls)
	})
}

func TestDraft_Validate(t *testing.T) {
	v := form.New(form.WithClock(func() time.Time {
		return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	}))

	t.Run("success", func(t *testing.T) {
		d := cliente.DraftFromForm(url.Values{
			"numInscricao": {"1234"},
			"nome":         {"Ana"},
			"dtNascimento": {"2000-01-01"},
			"sexo":         {"F"},
		})
		assert.NoError(t, v.Validate(d))
	})

	t.Run("error - empty form", func(t *testing.T) {
		err := v.Validate(cliente.DraftFromForm(url.Values{}))

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, form.FieldErrors{
			"numInscricao": "Número da Inscrição é obrigatório!",
			"nome":         "Nome do Cliente é obrigatório!",
			"dtNascimento": "Data de Nascimento é obrigatória",
			"sexo":         "Campo Sexo é obrigatório!",
		}, verr.Fields)
	})

	t.Run("error - short values and birth today", func(t *testing.T) {
		err := v.Validate(cliente.Draft{
			NumInscricao: 2,
			Nome:         "A",
			DtNascimento: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			Sexo:         cliente.Masculino,
		})

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.False(t, verr.Fields.Has("numInscricao"))
		assert.Equal(t, "Número insuficiente de caracteres", verr.Fields["nome"])
		assert.Equal(t, "Data de Nascimento deve ser menor que a atual", verr.Fields["dtNascimento"])
	})

}

func TestCreate_Validate(t *testing.T) {
	v := form.New()
	draft := cliente.Draft{
		Nome:         "Beatriz",
		DtNascimento: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Sexo:         cliente.Feminino,
	}

	t.Run("success - bounds included", func(t *testing.T) {
		for _, num := range []int{1000, 9999} {
			draft.NumInscricao = num
			assert.NoError(t, v.Validate(draft.CreatePayload()), num)
		}
	})

	t.Run("error - numInscricao outside 1000..9999", func(t *testing.T) {
		for num, msg := range map[int]string{
			5:     "Quantidade de dígitos insuficientes",
			999:   "Quantidade de dígitos insuficientes",
			10000: "Número da Inscrição deve ter no máximo 4 dígitos",
		} {
			draft.NumInscricao = num

			err := v.Validate(draft.CreatePayload())

			var verr *form.ValidationError
			require.True(t, errors.As(err, &verr), num)
			assert.Equal(t, form.FieldErrors{"numInscricao": msg}, verr.Fields, num)
		}
	})
}

func TestDraft_Payloads(t *testing.T) {
	d := cliente.Draft{
		NumInscricao: 1234,
		Nome:         "Beatriz",
		DtNascimento: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Sexo:         cliente.Feminino,
	}

	t.Run("create starts active", func(t *testing.T) {
		out, err := json.Marshal(d.CreatePayload())
		require.NoError(t, err)
		assert.JSONEq(t, `{"numInscricao":1234,"nome":"Beatriz","dtNascimento":"2000-01-01T00:00:00Z","sexo":"F","estahAtivo":true}`, string(out))
	})

	t.Run("update keeps id and active flag", func(t *testing.T) {
		existing := ana()
		existing.EstahAtivo = false

		u := d.UpdatePayload(existing)

		assert.Equal(t, "42", u.Key())
		assert.Equal(t, 42, u.NumInscricao)
		assert.Equal(t, "Beatriz", u.Nome)
		assert.False(t, u.EstahAtivo)
	})
}

func TestSexo(t *testing.T) {
	assert.Equal(t, cliente.Masculino, cliente.NewSexo("M"))
	assert.Equal(t, cliente.Feminino, cliente.NewSexo("F"))
	assert.Equal(t, cliente.Sexo(0), cliente.NewSexo("X"))
	assert.Error(t, cliente.Sexo(0).Validate())
	assert.Equal(t, "Feminino", cliente.Feminino.Label())

	var c cliente.Cliente
	require.NoError(t, json.Unmarshal([]byte(`{"numInscricao":7,"nome":"Rui","sexo":"M","dtNascimento":"1990-05-02T00:00:00.000Z","estahAtivo":true}`), &c))
	assert.Equal(t, cliente.Masculino, c.Sexo)
	assert.Equal(t, "02/05/1990", c.DtNascimento.BR())
	assert.Equal(t, "Ativo", c.Status())
}
