package table

import (
	"fmt"
	"slices"
	"strings"
)

// EmptyText is shown when no row survives the filters
const EmptyText = "Nenhum resultado encontrado."

// Table renders a collection it does not own: no server-side paging
type Table[T any] struct {
	key     func(T) string
	columns []Column[T]
}

// New creates a table; key gives the row id used for selection
func New[T any](key func(T) string, columns ...Column[T]) *Table[T] {
	return &Table[T]{
		key:     key,
		columns: columns,
	}
}

type Header struct {
	ID        string
	Label     string
	Sortable  bool
	Sorted    Direction // zero when the column is not the sort key
	SortQuery string
}

type Row struct {
	Key         string
	Selected    bool
	SelectQuery string
	Cells       []Cell
}

// ColumnToggle is one entry of the column visibility menu
type ColumnToggle struct {
	ID      string
	Label   string
	Visible bool
	Query   string
}

type Result struct {
	Headers       []Header
	Rows          []Row
	Columns       []ColumnToggle
	Filtered      int
	SelectedCount int
	Page          int // zero based, after clamping
	PageCount     int
	CanPrevious   bool
	CanNext       bool
	PreviousQuery string
	NextQuery     string
}

// Empty reports whether the page has no rows
func (r Result) Empty() bool {
	return len(r.Rows) == 0
}

// Footer is the "X de Y linha(s) selecionada(s)." line
func (r Result) Footer() string {
	return fmt.Sprintf("%d de %d linha(s) selecionada(s).", r.SelectedCount, r.Filtered)
}

// Apply filters, sorts (stable) and paginates items
func (t *Table[T]) Apply(items []T, s State) Result {
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if t.matches(item, s.Filters) {
			filtered = append(filtered, item)
		}
	}

	if col, ok := t.column(s.SortBy); ok && col.Compare != nil {
		slices.SortStableFunc(filtered, func(a, b T) int {
			if s.Direction == Desc {
				return col.Compare(b, a)
			}
			return col.Compare(a, b)
		})
	}

	r := Result{Filtered: len(filtered)}
	for _, item := range filtered {
		if s.Selected[t.key(item)] {
			r.SelectedCount++
		}
	}

	r.PageCount = max(1, (len(filtered)+s.PageSize-1)/s.PageSize)
	r.Page = min(max(s.Page, 0), r.PageCount-1)
	s.Page = r.Page
	r.CanPrevious = r.Page > 0
	r.CanNext = r.Page < r.PageCount-1
	r.PreviousQuery = s.WithPage(r.Page - 1).Query().Encode()
	r.NextQuery = s.WithPage(r.Page + 1).Query().Encode()

	visible := make([]Column[T], 0, len(t.columns))
	for _, col := range t.columns {
		if col.Hideable {
			r.Columns = append(r.Columns, ColumnToggle{
				ID:      col.ID,
				Label:   col.Header,
				Visible: !s.Hidden[col.ID],
				Query:   s.ToggleHidden(col.ID).Query().Encode(),
			})
		}
		if col.Hideable && s.Hidden[col.ID] {
			continue
		}
		visible = append(visible, col)

		h := Header{ID: col.ID, Label: col.Header, Sortable: col.Compare != nil}
		if h.Sortable {
			if s.SortBy == col.ID {
				h.Sorted = s.Direction
			}
			h.SortQuery = s.ToggleSort(col.ID).Query().Encode()
		}
		r.Headers = append(r.Headers, h)
	}

	start := r.Page * s.PageSize
	end := min(start+s.PageSize, len(filtered))
	for _, item := range filtered[start:end] {
		key := t.key(item)
		row := Row{
			Key:         key,
			Selected:    s.Selected[key],
			SelectQuery: s.ToggleSelected(key).Query().Encode(),
			Cells:       make([]Cell, 0, len(visible)),
		}
		for _, col := range visible {
			row.Cells = append(row.Cells, col.Value(item))
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

// FilterableColumns lists the columns a text filter can target
func (t *Table[T]) FilterableColumns() []string {
	var ids []string
	for _, col := range t.columns {
		if col.Filter != nil {
			ids = append(ids, col.ID)
		}
	}
	return ids
}

func (t *Table[T]) matches(item T, filters map[string]string) bool {
	for id, want := range filters {
		col, ok := t.column(id)
		if !ok || col.Filter == nil || want == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(col.Filter(item)), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

func (t *Table[T]) column(id string) (Column[T], bool) {
	for _, col := range t.columns {
		if col.ID == id {
			return col, true
		}
	}
	return Column[T]{}, false
}
