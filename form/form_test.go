package form_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/marcelsud/locadora-web/form"
	"github.com/marcelsud/locadora-web/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pessoa struct {
	Nome       string    `form:"nome" validate:"required,min=2"`
	Nascimento time.Time `form:"dtNascimento" validate:"required,pastdate"`
	Codigo     int       `form:"codigo" validate:"required,min=3"`
}

func (pessoa) FieldMessages() map[string]string {
	return map[string]string{
		"nome.required":         "Nome é obrigatório!",
		"nome.min":              "Número insuficiente de caracteres",
		"dtNascimento.required": "Data de Nascimento é obrigatória",
		"dtNascimento.pastdate": "Data de Nascimento deve ser menor que a atual",
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidator_Validate(t *testing.T) {
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	v := form.New(form.WithClock(func() time.Time { return today }))

	t.Run("success", func(t *testing.T) {
		err := v.Validate(pessoa{Nome: "Ana", Nascimento: day(2000, 1, 1), Codigo: 1234})
		assert.NoError(t, err)
	})

	t.Run("error - every field", func(t *testing.T) {
		err := v.Validate(pessoa{Nome: "A", Codigo: 0})

		require.Error(t, err)
		assert.True(t, errors.Is(err, form.ErrValidation))
		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Número insuficiente de caracteres", verr.Fields["nome"])
		assert.Equal(t, "Data de Nascimento é obrigatória", verr.Fields["dtNascimento"])
		assert.Equal(t, "Campo inválido", verr.Fields["codigo"])
	})

	t.Run("error - date of birth today", func(t *testing.T) {
		err := v.Validate(pessoa{Nome: "Ana", Nascimento: day(2024, 6, 15), Codigo: 1234})

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Data de Nascimento deve ser menor que a atual", verr.Fields["dtNascimento"])
		assert.Len(t, verr.Fields, 1)
	})

	t.Run("error - date of birth in the future", func(t *testing.T) {
		err := v.Validate(pessoa{Nome: "Ana", Nascimento: day(2030, 1, 1), Codigo: 1234})
		assert.True(t, errors.Is(err, form.ErrValidation))
	})

	t.Run("success - yesterday", func(t *testing.T) {
		err := v.Validate(pessoa{Nome: "Ana", Nascimento: day(2024, 6, 14), Codigo: 1234})
		assert.NoError(t, err)
	})
}

func TestValues(t *testing.T) {
	values := url.Values{
		"nome":   {"  Ana "},
		"num":    {"1234"},
		"bad":    {"abc"},
		"valor":  {"12,50"},
		"ativo":  {"on"},
		"data":   {"2000-01-01"},
		"nodata": {"31/02"},
	}

	assert.Equal(t, "Ana", form.String(values, "nome"))
	assert.Equal(t, 1234, form.Int(values, "num"))
	assert.Equal(t, 0, form.Int(values, "bad"))
	assert.Equal(t, 12.5, form.Float(values, "valor"))
	assert.True(t, form.Bool(values, "ativo"))
	assert.False(t, form.Bool(values, "missing"))
	assert.Equal(t, "01/01/2000", resource.NewDate(form.Date(values, "data")).BR())
	assert.True(t, form.Date(values, "nodata").IsZero())
}
