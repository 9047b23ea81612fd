package chi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/locadora-web/ator"
	"github.com/marcelsud/locadora-web/classe"
	"github.com/marcelsud/locadora-web/cliente"
	"github.com/marcelsud/locadora-web/endpoints"
	"github.com/marcelsud/locadora-web/form"
	"github.com/marcelsud/locadora-web/locacao"
	"github.com/marcelsud/locadora-web/notify"
	"github.com/marcelsud/locadora-web/resource"
	"github.com/marcelsud/locadora-web/session"
)

/* Deps is everything the web layer needs, built in cmd/web
 * Clients are shared by every browser: the cache is per process
 */
type Deps struct {
	Sessions  *session.Manager
	Notifier  *notify.Notifier
	Validator *form.Validator
	Limiter   *RateLimiter
	Metrics   http.Handler
	Endpoints *endpoints.Loader
	PageSize  int

	Clientes *resource.Client[cliente.Cliente, cliente.Create, cliente.Update]
	Atores   *resource.Client[ator.Ator, ator.Create, ator.Update]
	Classes  *resource.Client[classe.Classe, classe.Create, classe.Update]
	Locacoes *resource.Client[locacao.Locacao, locacao.Create, locacao.Update]
}

// endpointResponse represents an endpoint in the API
type endpointResponse struct {
	Entity   string `json:"entity"`
	Label    string `json:"label"`
	List     string `json:"list"`
	Relation string `json:"relation,omitempty"`
}

// Handlers sets up the back-office pages
func Handlers(ctx context.Context, deps Deps) *chi.Mux {
	logger := httplog.NewLogger("locadora-web", httplog.Options{
		JSON: true,
	})

	a := &app{
		notifier:  deps.Notifier,
		validator: deps.Validator,
		pageSize:  deps.PageSize,
		nav: []navLink{
			{Label: "Clientes", Href: clientesPath},
			{Label: "Atores", Href: atoresPath},
			{Label: "Classes", Href: classesPath},
			{Label: "Locações", Href: locacoesPath},
		},
	}

	var limit func(http.Handler) http.Handler
	if deps.Limiter != nil {
		limit = deps.Limiter.Middleware
		deps.Limiter.StartJanitor(ctx, time.Minute)
	}

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger, []string{"/health", "/metrics"}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}
	if deps.Endpoints != nil {
		r.Get("/v1/endpoints", getEndpoints(deps.Endpoints).ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		if deps.Sessions != nil {
			r.Use(deps.Sessions.Middleware)
		}

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, clientesPath, http.StatusFound)
		})

		clientePage(a, deps.Clientes, cliente.NewService(deps.Clientes)).routes(r, limit)
		atorPage(a, deps.Atores).routes(r, limit)
		classePage(a, deps.Classes).routes(r, limit)
		locacaoPage(a, deps.Locacoes).routes(r, limit)
	})

	return r
}

// getEndpoints handles GET /v1/endpoints
func getEndpoints(loader *endpoints.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		eps := loader.List()
		response := make([]endpointResponse, 0, len(eps))
		for _, ep := range eps {
			response = append(response, endpointResponse{
				Entity:   ep.Entity,
				Label:    ep.Label,
				List:     ep.ListPath(),
				Relation: ep.Relation,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, fmt.Sprintf("encoding response: %v", err), http.StatusInternalServerError)
		}
	})
}
