package classe

import (
	"net/url"

	"github.com/marcelsud/locadora-web/ator"
	"github.com/marcelsud/locadora-web/form"
)

/* Classe groups titles by rental price band
 * Atores only come back from classe/ator/listar/:id
 */
type Classe struct {
	ID     string      `json:"id"`
	Nome   string      `json:"nome"`
	Atores []ator.Ator `json:"atores,omitempty"`
}

func (c Classe) Key() string {
	return c.ID
}

// Create is the POST classe/criar body
type Create struct {
	Nome string `json:"nome"`
}

// Update is the PUT classe/editar/:id body
type Update struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func (u Update) Key() string {
	return u.ID
}

// Draft is the state of the classe form dialog
type Draft struct {
	Nome string `form:"nome" validate:"required,min=2"`
}

func NewDraft(existing *Classe) Draft {
	if existing == nil {
		return Draft{}
	}
	return Draft{Nome: existing.Nome}
}

func DraftFromForm(values url.Values) Draft {
	return Draft{Nome: form.String(values, "nome")}
}

func (d Draft) FieldMessages() map[string]string {
	return map[string]string{
		"nome.required": "Nome da Classe é obrigatório!",
		"nome.min":      "Número insuficiente de caracteres",
	}
}

func (d Draft) CreatePayload() Create {
	return Create{Nome: d.Nome}
}

func (d Draft) UpdatePayload(existing Classe) Update {
	return Update{ID: existing.ID, Nome: d.Nome}
}
