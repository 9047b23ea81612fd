package cliente

import (
	"strconv"

	"github.com/marcelsud/locadora-web/resource"
)

/* Cliente é o sócio ou dependente da locadora
 * Dependentes only come back from the relation select (cliente/dependente/listar/:id)
 */
type Cliente struct {
	NumInscricao int           `json:"numInscricao"`
	Nome         string        `json:"nome"`
	DtNascimento resource.Date `json:"dtNascimento"`
	Sexo         Sexo          `json:"sexo"`
	EstahAtivo   bool          `json:"estahAtivo"`
	Dependentes  []Cliente     `json:"dependentes,omitempty"`
}

// Key is the numInscricao as used in paths
func (c Cliente) Key() string {
	return strconv.Itoa(c.NumInscricao)
}

// Status is the label shown by the status indicator
func (c Cliente) Status() string {
	if c.EstahAtivo {
		return "Ativo"
	}
	return "Inativo"
}

// Create is the POST cliente/criar body. numInscricao is chosen by the front.
type Create struct {
	NumInscricao int           `json:"numInscricao" validate:"min=1000,max=9999"`
	Nome         string        `json:"nome"`
	DtNascimento resource.Date `json:"dtNascimento"`
	Sexo         Sexo          `json:"sexo"`
	EstahAtivo   bool          `json:"estahAtivo"`
}

func (Create) FieldMessages() map[string]string {
	return map[string]string{
		"numInscricao.min": "Quantidade de dígitos insuficientes",
		"numInscricao.max": "Número da Inscrição deve ter no máximo 4 dígitos",
	}
}

// Update is the PUT cliente/editar/:numInscricao body
type Update struct {
	NumInscricao int           `json:"numInscricao"`
	Nome         string        `json:"nome"`
	DtNascimento resource.Date `json:"dtNascimento"`
	Sexo         Sexo          `json:"sexo"`
	EstahAtivo   bool          `json:"estahAtivo"`
}

func (u Update) Key() string {
	return strconv.Itoa(u.NumInscricao)
}

// UpdateFrom copies every field of c into an update payload
func UpdateFrom(c Cliente) Update {
	return Update{
		NumInscricao: c.NumInscricao,
		Nome:         c.Nome,
		DtNascimento: c.DtNascimento,
		Sexo:         c.Sexo,
		EstahAtivo:   c.EstahAtivo,
	}
}

// Toggled returns the payload with estahAtivo flipped
func (u Update) Toggled() Update {
	u.EstahAtivo = !u.EstahAtivo
	return u
}
