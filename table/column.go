package table

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/marcelsud/locadora-web/resource"
)

// Indicator colors of the status column
const (
	ActiveColor   = "#26B547"
	InactiveColor = "#FF0000"
)

// Cell is what a column renders for one row
type Cell struct {
	Text    string
	Status  *Status
	Actions []Action
}

// Status is the colored dot with its tooltip
type Status struct {
	Color string
	Label string
}

// Action is a row button. Href opens the dialog or page that performs it.
type Action struct {
	Label string
	Icon  string
	Href  string
}

/* Column describes one table column
 * Compare nil means not sortable, Filter nil means not filterable
 */
type Column[T any] struct {
	ID       string
	Header   string
	Value    func(T) Cell
	Compare  func(a, b T) int
	Filter   func(T) string
	Hideable bool
}

// Text is a sortable, filterable string column
func Text[T any](id, header string, get func(T) string) Column[T] {
	return Column[T]{
		ID:       id,
		Header:   header,
		Value:    func(item T) Cell { return Cell{Text: get(item)} },
		Compare:  func(a, b T) int { return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b))) },
		Filter:   get,
		Hideable: true,
	}
}

// Int is a sortable, filterable numeric column
func Int[T any](id, header string, get func(T) int) Column[T] {
	return Column[T]{
		ID:       id,
		Header:   header,
		Value:    func(item T) Cell { return Cell{Text: strconv.Itoa(get(item))} },
		Compare:  func(a, b T) int { return cmp.Compare(get(a), get(b)) },
		Filter:   func(item T) string { return strconv.Itoa(get(item)) },
		Hideable: true,
	}
}

// Date renders dd/mm/yyyy and sorts chronologically
func Date[T any](id, header string, get func(T) resource.Date) Column[T] {
	return Column[T]{
		ID:       id,
		Header:   header,
		Value:    func(item T) Cell { return Cell{Text: get(item).BR()} },
		Compare:  func(a, b T) int { return get(a).Compare(get(b).Time) },
		Filter:   func(item T) string { return get(item).BR() },
		Hideable: true,
	}
}

// StatusColumn turns a boolean into the Ativo/Inativo indicator
func StatusColumn[T any](id, header string, active func(T) bool) Column[T] {
	return Column[T]{
		ID:     id,
		Header: header,
		Value: func(item T) Cell {
			if active(item) {
				return Cell{Status: &Status{Color: ActiveColor, Label: "Ativo"}}
			}
			return Cell{Status: &Status{Color: InactiveColor, Label: "Inativo"}}
		},
		Compare: func(a, b T) int {
			return cmp.Compare(boolInt(active(a)), boolInt(active(b)))
		},
		Hideable: true,
	}
}

// Actions is the last column, never sortable nor hideable
func Actions[T any](header string, actions func(T) []Action) Column[T] {
	return Column[T]{
		ID:     "acoes",
		Header: header,
		Value:  func(item T) Cell { return Cell{Actions: actions(item)} },
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
