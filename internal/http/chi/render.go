package chi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	// query turns an encoded table state into a relative link
	"query": func(encoded string) template.URL { return template.URL("?" + encoded) },
}).ParseFS(templateFS, "templates/*.html"))

// render executes into a buffer first so a template error never sends half a page
func (a *app) render(w http.ResponseWriter, status int, name string, view any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, view); err != nil {
		http.Error(w, "rendering page: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
