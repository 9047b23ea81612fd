package chi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/locadora-web/dialog"
	"github.com/marcelsud/locadora-web/form"
	"github.com/marcelsud/locadora-web/notify"
	"github.com/marcelsud/locadora-web/resource"
	"github.com/marcelsud/locadora-web/table"
)

// app holds what every page shares
type app struct {
	notifier  *notify.Notifier
	validator *form.Validator
	pageSize  int
	nav       []navLink
}

// formConfig describes the create/edit dialog of an entity
type formConfig[T resource.Keyed, C any, U resource.Keyed, D dialog.Draft[T, C, U]] struct {
	newTitle  string
	editTitle string
	newDraft  func(existing *T, items []T) D
	fromForm  func(values url.Values) D
	fields    func(d D, edit bool) []fieldView
	messages  dialog.FormMessages
}

// entityForm hides the draft type of a formConfig from the page
type entityForm[T resource.Keyed, C any, U resource.Keyed] interface {
	open(a *app, client *resource.Client[T, C, U], existing *T) openForm
}

// openForm is one opened create/edit dialog
type openForm interface {
	submit(ctx context.Context, values url.Values) error
	isOpen() bool
	content() formContent
}

// formContent is what the page needs to render an opened dialog
type formContent struct {
	title  string
	key    string
	fields []fieldView
}

func (f *formConfig[T, C, U, D]) open(a *app, client *resource.Client[T, C, U], existing *T) openForm {
	items := client.Items()
	d := dialog.NewFormDialog[T, C, U, D](client, client, a.notifier, a.validator,
		func(existing *T) D { return f.newDraft(existing, items) },
		f.messages,
	)
	d.Open(existing)
	return &formSession[T, C, U, D]{config: f, d: d}
}

type formSession[T resource.Keyed, C any, U resource.Keyed, D dialog.Draft[T, C, U]] struct {
	config *formConfig[T, C, U, D]
	d      *dialog.FormDialog[T, C, U, D]
}

func (s *formSession[T, C, U, D]) submit(ctx context.Context, values url.Values) error {
	return s.d.Submit(ctx, s.config.fromForm(values))
}

func (s *formSession[T, C, U, D]) isOpen() bool {
	return s.d.IsOpen()
}

func (s *formSession[T, C, U, D]) content() formContent {
	edit := s.d.IsEdit()
	c := formContent{title: s.config.newTitle}
	if edit {
		c.title = s.config.editTitle
		c.key = (*s.d.Existing()).Key()
	}

	c.fields = s.config.fields(s.d.Draft(), edit)
	errs := s.d.Errors()
	for i := range c.fields {
		c.fields[i].Error = errs[c.fields[i].Name]
	}
	return c
}

// toggleConfig describes the activate/deactivate dialog
type toggleConfig[T any] struct {
	toggler  dialog.Toggler
	active   func(T) bool
	messages dialog.ToggleMessages
}

/* entityPage serves the list page of one entity and its dialogs
 *   GET  <path>                 table (+ ?dialog=novo|editar|remover|ativo&id=)
 *   POST <path>                 create
 *   POST <path>/{id}            edit
 *   POST <path>/{id}/remover    delete
 *   POST <path>/{id}/ativo      toggle
 *   GET  <path>/{id}            details
 */
type entityPage[T resource.Keyed, C any, U resource.Keyed] struct {
	app             *app
	path            string
	title           string
	newLabel        string
	filter          string
	filterLabel     string
	client          *resource.Client[T, C, U]
	table           *table.Table[T]
	form            entityForm[T, C, U]
	removal         dialog.RemovalMessages
	removalQuestion string
	toggle          *toggleConfig[T]
	detail          func(ctx context.Context, id string) (detailView, error)
}

func (p *entityPage[T, C, U]) routes(r chi.Router, limit func(http.Handler) http.Handler) {
	r.Get(p.path, p.list)
	if p.detail != nil {
		r.Get(p.path+"/{id}", p.showDetail)
	}

	r.Group(func(r chi.Router) {
		if limit != nil {
			r.Use(limit)
		}
		if p.form != nil {
			r.Post(p.path, p.create)
			r.Post(p.path+"/{id}", p.edit)
		}
		r.Post(p.path+"/{id}/remover", p.remove)
		if p.toggle != nil {
			r.Post(p.path+"/{id}/ativo", p.toggleActive)
		}
	})
}

// list always refetches; on failure the cached list is shown
func (p *entityPage[T, C, U]) list(w http.ResponseWriter, r *http.Request) {
	if err := p.client.List(r.Context()); err != nil {
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(err).Str("entity", p.client.Entity()).Msg("listing")
	}

	q := r.URL.Query()
	view := p.view(r, p.tableState(q))
	id := q.Get("id")

	switch q.Get("dialog") {
	case "novo":
		if p.form != nil {
			view.Form = p.formView(p.form.open(p.app, p.client, nil), q)
		}
	case "editar":
		if item, ok := resource.Find(p.client.Items(), id); p.form != nil && ok {
			view.Form = p.formView(p.form.open(p.app, p.client, &item), q)
		}
	case "remover":
		view.Confirm = &confirmView{
			Question:   p.removalQuestion,
			Action:     withQuery(p.path+"/"+url.PathEscape(id)+"/remover", p.tableQuery(q)),
			CancelHref: p.returnHref(q),
		}
	case "ativo":
		if item, ok := resource.Find(p.client.Items(), id); p.toggle != nil && ok {
			d := p.toggleDialog()
			d.Open(id, p.toggle.active(item))
			view.Confirm = &confirmView{
				Question:   d.Question(),
				Action:     withQuery(p.path+"/"+url.PathEscape(id)+"/ativo", p.tableQuery(q)),
				CancelHref: p.returnHref(q),
			}
		}
	}

	p.app.render(w, http.StatusOK, "page", view)
}

func (p *entityPage[T, C, U]) create(w http.ResponseWriter, r *http.Request) {
	p.submit(w, r, p.form.open(p.app, p.client, nil))
}

func (p *entityPage[T, C, U]) edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, ok := p.cached(r.Context(), id)
	if !ok {
		http.Error(w, "registro não encontrado", http.StatusNotFound)
		return
	}

	p.submit(w, r, p.form.open(p.app, p.client, &item))
}

func (p *entityPage[T, C, U]) submit(w http.ResponseWriter, r *http.Request, d openForm) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	q := r.URL.Query()

	err := d.submit(r.Context(), r.PostForm)
	if err == nil || !d.isOpen() {
		if err != nil {
			oplog := httplog.LogEntry(r.Context())
			oplog.Warn().Err(err).Str("entity", p.client.Entity()).Msg("saved but not refreshed")
		}
		http.Redirect(w, r, p.returnHref(q), http.StatusSeeOther)
		return
	}

	status := http.StatusUnprocessableEntity
	if !errors.Is(err, form.ErrValidation) {
		status = http.StatusBadGateway
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(err).Str("entity", p.client.Entity()).Msg("saving")
	}

	view := p.view(r, p.tableState(q))
	view.Form = p.formView(d, q)
	p.app.render(w, status, "page", view)
}

func (p *entityPage[T, C, U]) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d := dialog.NewRemovalDialog(p.client, p.client, p.app.notifier, p.removal)
	if err := d.Confirm(r.Context(), id); err != nil {
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(err).Str("entity", p.client.Entity()).Str("id", id).Msg("removing")
	}
	http.Redirect(w, r, p.returnHref(r.URL.Query()), http.StatusSeeOther)
}

func (p *entityPage[T, C, U]) toggleActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := p.cached(r.Context(), id); !ok {
		http.Error(w, "registro não encontrado", http.StatusNotFound)
		return
	}
	if err := p.toggleDialog().Confirm(r.Context(), id); err != nil {
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(err).Str("entity", p.client.Entity()).Str("id", id).Msg("toggling")
	}
	http.Redirect(w, r, p.returnHref(r.URL.Query()), http.StatusSeeOther)
}

func (p *entityPage[T, C, U]) showDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := p.detail(r.Context(), id)
	if err != nil {
		oplog := httplog.LogEntry(r.Context())
		oplog.Error().Err(err).Str("entity", p.client.Entity()).Str("id", id).Msg("loading details")
		_ = p.app.notifier.Notify(r.Context(), notify.Failure("Não foi possível carregar os detalhes. Tente novamente mais tarde."))
		http.Redirect(w, r, p.path, http.StatusSeeOther)
		return
	}
	view.Path = p.path + "/" + url.PathEscape(id)
	view.BackHref = p.path
	view.Nav = p.app.navFor(p.path)
	view.EmptyText = table.EmptyText
	view.Notifications = p.app.drain(r)
	p.app.render(w, http.StatusOK, "detail", view)
}

// cached finds id in the cache, listing once when the cache is cold (after a restart)
func (p *entityPage[T, C, U]) cached(ctx context.Context, id string) (T, bool) {
	if item, ok := resource.Find(p.client.Items(), id); ok || p.client.Loaded() {
		return item, ok
	}
	if err := p.client.List(ctx); err != nil {
		var zero T
		return zero, false
	}
	return resource.Find(p.client.Items(), id)
}

func (p *entityPage[T, C, U]) toggleDialog() *dialog.ToggleDialog {
	return dialog.NewToggleDialog(p.toggle.toggler, p.client, p.app.notifier, p.toggle.messages)
}

func (p *entityPage[T, C, U]) view(r *http.Request, state table.State) pageView {
	result := p.table.Apply(p.client.Items(), state)

	view := pageView{
		Title:         p.title,
		Path:          p.path,
		Nav:           p.app.navFor(p.path),
		Table:         result,
		EmptyText:     table.EmptyText,
		Notifications: p.app.drain(r),
	}
	if p.form != nil {
		view.NewLabel = p.newLabel
		q := state.Query()
		q.Set("dialog", "novo")
		view.NewHref = withQuery(p.path, q.Encode())
	}

	if !slices.Contains(p.table.FilterableColumns(), p.filter) {
		return view
	}
	view.Filter = &filterView{
		Column:      p.filter,
		Value:       state.Filters[p.filter],
		Placeholder: p.filterLabel,
	}

	// keep sorting and the other filters when the search box is submitted
	rest := state.Query()
	rest.Del("f_" + p.filter)
	rest.Del("page")
	for name, values := range rest {
		for _, v := range values {
			view.Filter.Hidden = append(view.Filter.Hidden, hiddenInput{Name: name, Value: v})
		}
	}
	return view
}

func (p *entityPage[T, C, U]) formView(d openForm, q url.Values) *formView {
	c := d.content()
	action := p.path
	if c.key != "" {
		action += "/" + url.PathEscape(c.key)
	}

	return &formView{
		Title:      c.title,
		Action:     withQuery(action, p.tableQuery(q)),
		CancelHref: p.returnHref(q),
		Fields:     c.fields,
	}
}

func (p *entityPage[T, C, U]) tableState(q url.Values) table.State {
	return table.StateFromQuery(q, p.app.pageSize)
}

// tableQuery is the table part of q, without dialog parameters
func (p *entityPage[T, C, U]) tableQuery(q url.Values) string {
	return p.tableState(q).Query().Encode()
}

func (p *entityPage[T, C, U]) returnHref(q url.Values) string {
	return withQuery(p.path, p.tableQuery(q))
}

func withQuery(path, encoded string) string {
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

func (a *app) drain(r *http.Request) []notify.Notification {
	notes, err := a.notifier.Drain(r.Context())
	if err != nil {
		oplog := httplog.LogEntry(r.Context())
		oplog.Warn().Err(err).Msg("draining notifications")
	}
	return notes
}

func (a *app) navFor(path string) []navLink {
	links := make([]navLink, len(a.nav))
	for i, l := range a.nav {
		l.Active = l.Href == path
		links[i] = l
	}
	return links
}
