package ator

import (
	"net/url"

	"github.com/marcelsud/locadora-web/form"
)

// Ator is an actor of the catalog
type Ator struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func (a Ator) Key() string {
	return a.ID
}

// Create is the POST ator/criar body
type Create struct {
	Nome string `json:"nome"`
}

// Update is the PUT ator/editar/:id body
type Update struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func (u Update) Key() string {
	return u.ID
}

// Draft is the state of the ator form dialog
type Draft struct {
	Nome string `form:"nome" validate:"required,min=2"`
}

func NewDraft(existing *Ator) Draft {
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
		"nome.required": "Nome do Ator é obrigatório!",
		"nome.min":      "Número insuficiente de caracteres",
	}
}

func (d Draft) CreatePayload() Create {
	return Create{Nome: d.Nome}
}

func (d Draft) UpdatePayload(existing Ator) Update {
	return Update{ID: existing.ID, Nome: d.Nome}
}
