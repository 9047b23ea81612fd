package cliente

import (
	"math/rand/v2"
	"net/url"
	"time"

	"github.com/marcelsud/locadora-web/form"
	"github.com/marcelsud/locadora-web/resource"
)

const (
	minNumInscricao = 1000
	maxNumInscricao = 9999
	// rerolls bounds the retries when the drawn number is already cached
	rerolls = 10
)

// Draft is the state of the cliente form dialog
type Draft struct {
	NumInscricao int       `form:"numInscricao" validate:"required"`
	Nome         string    `form:"nome" validate:"required,min=2"`
	DtNascimento time.Time `form:"dtNascimento" validate:"required,pastdate"`
	Sexo         Sexo      `form:"sexo" validate:"required"`
}

// NewDraft opens the form. For a new cliente it draws a numInscricao
// avoiding the ones in taken; for an edit it copies the record.
func NewDraft(existing *Cliente, taken []Cliente) Draft {
	if existing != nil {
		return Draft{
			NumInscricao: existing.NumInscricao,
			Nome:         existing.Nome,
			DtNascimento: existing.DtNascimento.Time,
			Sexo:         existing.Sexo,
		}
	}
	return Draft{NumInscricao: NumInscricao(taken, rand.IntN)}
}

// DraftFromForm reads a posted cliente form
func DraftFromForm(values url.Values) Draft {
	return Draft{
		NumInscricao: form.Int(values, "numInscricao"),
		Nome:         form.String(values, "nome"),
		DtNascimento: form.Date(values, "dtNascimento"),
		Sexo:         NewSexo(form.String(values, "sexo")),
	}
}

func (d Draft) FieldMessages() map[string]string {
	return map[string]string{
		"nome.required":         "Nome do Cliente é obrigatório!",
		"nome.min":              "Número insuficiente de caracteres",
		"numInscricao.required": "Número da Inscrição é obrigatório!",
		"dtNascimento.required": "Data de Nascimento é obrigatória",
		"dtNascimento.pastdate": "Data de Nascimento deve ser menor que a atual",
		"sexo":                  "Campo Sexo é obrigatório!",
	}
}

// CreatePayload builds the POST body. New clientes start active.
func (d Draft) CreatePayload() Create {
	return Create{
		NumInscricao: d.NumInscricao,
		Nome:         d.Nome,
		DtNascimento: resource.NewDate(d.DtNascimento),
		Sexo:         d.Sexo,
		EstahAtivo:   true,
	}
}

// UpdatePayload keeps the id and the active flag of the existing record
func (d Draft) UpdatePayload(existing Cliente) Update {
	return Update{
		NumInscricao: existing.NumInscricao,
		Nome:         d.Nome,
		DtNascimento: resource.NewDate(d.DtNascimento),
		Sexo:         d.Sexo,
		EstahAtivo:   existing.EstahAtivo,
	}
}

// NumInscricao draws a number in [1000, 9999] not present in taken.
// It is a best effort: after a few collisions the last draw is kept.
func NumInscricao(taken []Cliente, intN func(n int) int) int {
	used := make(map[int]struct{}, len(taken))
	for _, c := range taken {
		used[c.NumInscricao] = struct{}{}
	}

	var n int
	for range rerolls {
		n = minNumInscricao + intN(maxNumInscricao-minNumInscricao+1)
		if _, ok := used[n]; !ok {
			return n
		}
	}
	return n
}
