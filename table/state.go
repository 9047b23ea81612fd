package table

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// DefaultPageSize matches the rows per page of the original screens
const DefaultPageSize = 10

// Direction type
type Direction int

const (
	Asc Direction = iota + 1
	Desc
)

func (d Direction) String() string {
	switch d {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	}
	return ""
}

func NewDirection(s string) Direction {
	if s == "desc" {
		return Desc
	}
	return Asc
}

/* State is everything the user changed on a table
 * It travels in the page URL so a reload shows the same view
 */
type State struct {
	SortBy    string
	Direction Direction
	Filters   map[string]string
	Hidden    map[string]bool
	Selected  map[string]bool
	Page      int // zero based
	PageSize  int
}

const filterPrefix = "f_"

// StateFromQuery reads the table state from the page query
func StateFromQuery(q url.Values, pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := State{
		SortBy:   q.Get("sort"),
		Filters:  map[string]string{},
		Hidden:   map[string]bool{},
		Selected: map[string]bool{},
		PageSize: pageSize,
	}
	if s.SortBy != "" {
		s.Direction = NewDirection(q.Get("dir"))
	}
	for key, values := range q {
		if col, ok := strings.CutPrefix(key, filterPrefix); ok && len(values) > 0 && values[0] != "" {
			s.Filters[col] = values[0]
		}
	}
	for _, col := range q["hide"] {
		s.Hidden[col] = true
	}
	for _, id := range q["sel"] {
		s.Selected[id] = true
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 1 {
		s.Page = page - 1
	}
	return s
}

// Query encodes the state back; page is one based in URLs
func (s State) Query() url.Values {
	q := url.Values{}
	if s.SortBy != "" {
		q.Set("sort", s.SortBy)
		q.Set("dir", s.Direction.String())
	}
	for col, v := range s.Filters {
		if v != "" {
			q.Set(filterPrefix+col, v)
		}
	}
	for _, col := range sortedKeys(s.Hidden) {
		q.Add("hide", col)
	}
	for _, id := range sortedKeys(s.Selected) {
		q.Add("sel", id)
	}
	if s.Page > 0 {
		q.Set("page", strconv.Itoa(s.Page+1))
	}
	return q
}

// ToggleSort sorts by col ascending unless it is already ascending
func (s State) ToggleSort(col string) State {
	dir := Asc
	if s.SortBy == col && s.Direction == Asc {
		dir = Desc
	}
	s.SortBy = col
	s.Direction = dir
	s.Page = 0
	return s
}

func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// ToggleHidden shows or hides col
func (s State) ToggleHidden(col string) State {
	s.Hidden = toggle(s.Hidden, col)
	return s
}

// ToggleSelected selects or unselects a row
func (s State) ToggleSelected(id string) State {
	s.Selected = toggle(s.Selected, id)
	return s
}

func toggle(set map[string]bool, key string) map[string]bool {
	out := make(map[string]bool, len(set)+1)
	for k, v := range set {
		if v {
			out[k] = true
		}
	}
	if out[key] {
		delete(out, key)
	} else {
		out[key] = true
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k, v := range set {
		if v {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
