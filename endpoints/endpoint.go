package endpoints

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

/* Endpoint maps an entity to its REST prefix on the rental API
 * Every entity follows the same verb layout:
 *   GET    <prefix>/listar
 *   GET    <prefix>/<relation>/listar/:id
 *   POST   <prefix>/criar
 *   PUT    <prefix>/editar/:id
 *   DELETE <prefix>/deletar/:id
 */
type Endpoint struct {
	Entity   string
	Prefix   string
	Relation string // optional: sub-resource expanded by Select (e.g. "ator" for classe)
	Label    string // human name used in notifications (e.g. "Cliente")
}

var segmentPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+(/[a-zA-Z0-9_-]+)*$`)

// Validate checks if the endpoint configuration is valid
func (e *Endpoint) Validate() error {
	if e.Entity == "" {
		return fmt.Errorf("entity cannot be empty")
	}
	if e.Prefix != "" && !segmentPattern.MatchString(e.Prefix) {
		return fmt.Errorf("invalid prefix %q for entity %s", e.Prefix, e.Entity)
	}
	if e.Relation != "" && !segmentPattern.MatchString(e.Relation) {
		return fmt.Errorf("invalid relation %q for entity %s", e.Relation, e.Entity)
	}
	return nil
}

// HasRelation reports whether Select is available for the entity
func (e *Endpoint) HasRelation() bool {
	return e.Relation != ""
}

// ListPath returns the collection path: <prefix>/listar
func (e *Endpoint) ListPath() string {
	return e.join("listar")
}

// SelectPath returns the relation path: <prefix>/<relation>/listar/:id
func (e *Endpoint) SelectPath(id string) string {
	return e.join(e.Relation, "listar", url.PathEscape(id))
}

// CreatePath returns <prefix>/criar
func (e *Endpoint) CreatePath() string {
	return e.join("criar")
}

// UpdatePath returns <prefix>/editar/:id
func (e *Endpoint) UpdatePath(id string) string {
	return e.join("editar", url.PathEscape(id))
}

// DeletePath returns <prefix>/deletar/:id
func (e *Endpoint) DeletePath(id string) string {
	return e.join("deletar", url.PathEscape(id))
}

func (e *Endpoint) join(parts ...string) string {
	elems := make([]string, 0, len(parts)+1)
	if e.Prefix != "" {
		elems = append(elems, strings.Trim(e.Prefix, "/"))
	}
	for _, p := range parts {
		if p != "" {
			elems = append(elems, p)
		}
	}
	return path.Join(elems...)
}
