package locacao

import (
	"fmt"
	"strings"

	"github.com/marcelsud/locadora-web/resource"
)

/* Locacao is a rental
 * The front only lists and removes them; the API refuses to remove active ones
 */
type Locacao struct {
	ID                  string        `json:"id"`
	NumInscricao        int           `json:"numInscricao"`
	DtLocacao           resource.Date `json:"dtLocacao"`
	DtDevolucaoPrevista resource.Date `json:"dtDevolucaoPrevista"`
	ValorCobrado        float64       `json:"valorCobrado"`
	EstahAtiva          bool          `json:"estahAtiva"`
}

func (l Locacao) Key() string {
	return l.ID
}

// Status is the label shown by the status indicator
func (l Locacao) Status() string {
	if l.EstahAtiva {
		return "Ativo"
	}
	return "Inativo"
}

// Valor formats valorCobrado as pt-BR currency
func (l Locacao) Valor() string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", l.ValorCobrado), ".", ",", 1)
}

// Create and Update exist so Locacao fits resource.Client; the front never sends them
type Create struct{}

type Update struct {
	ID string `json:"id"`
}

func (u Update) Key() string {
	return u.ID
}
