package chi

import (
	"github.com/marcelsud/locadora-web/notify"
	"github.com/marcelsud/locadora-web/table"
)

/*
* Representa a página na camada web, por isso só tem strings prontas para o template
 */

type navLink struct {
	Label  string
	Href   string
	Active bool
}

type pageView struct {
	Title         string
	Path          string
	Nav           []navLink
	NewLabel      string
	NewHref       string
	Filter        *filterView
	Table         table.Result
	EmptyText     string
	Form          *formView
	Confirm       *confirmView
	Notifications []notify.Notification
}

// filterView is the search box; Hidden keeps the rest of the table state
type filterView struct {
	Column      string
	Value       string
	Placeholder string
	Hidden      []hiddenInput
}

type hiddenInput struct {
	Name  string
	Value string
}

type formView struct {
	Title      string
	Action     string
	CancelHref string
	Fields     []fieldView
}

type option struct {
	Value   string
	Label   string
	Checked bool
}

type fieldView struct {
	Name     string
	Label    string
	Type     string // text, number, date, radio
	Value    string
	ReadOnly bool
	Options  []option
	Error    string
}

type confirmView struct {
	Question   string
	Action     string
	CancelHref string
}

type detailView struct {
	Title         string
	Path          string
	Subtitle      string
	BackHref      string
	Nav           []navLink
	Table         table.Result
	EmptyText     string
	Notifications []notify.Notification
}
