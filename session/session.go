package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the browser cookie holding the signed session id
const CookieName = "locadora_sessao"

type contextKey struct{}

/* Manager hands every browser a signed, random session id
 * The id only scopes toast notifications and rate limits, it carries no login
 */
type Manager struct {
	secret Secret
	secure bool
}

func NewManager(secret Secret, secure bool) *Manager {
	return &Manager{
		secret: secret,
		secure: secure,
	}
}

// Middleware loads the session id from the cookie or issues a new one.
// Cookies with a bad signature are replaced.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(CookieName); err == nil {
			id, _ = Verify(m.secret, c.Value)
		}

		if id == "" {
			id = uuid.New().String()
			value, err := Sign(m.secret, id)
			if err != nil {
				http.Error(w, "session error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    value,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// WithID stores the session id in ctx
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// ID returns the session id of the request, empty when there is none
func ID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
