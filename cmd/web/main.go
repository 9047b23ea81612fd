package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/locadora-web/ator"
	"github.com/marcelsud/locadora-web/classe"
	"github.com/marcelsud/locadora-web/cliente"
	"github.com/marcelsud/locadora-web/config"
	"github.com/marcelsud/locadora-web/endpoints"
	"github.com/marcelsud/locadora-web/form"
	"github.com/marcelsud/locadora-web/internal/http/chi"
	"github.com/marcelsud/locadora-web/locacao"
	"github.com/marcelsud/locadora-web/metrics"
	"github.com/marcelsud/locadora-web/notify"
	"github.com/marcelsud/locadora-web/notify/memory"
	"github.com/marcelsud/locadora-web/notify/redis"
	"github.com/marcelsud/locadora-web/resource"
	"github.com/marcelsud/locadora-web/session"
	"github.com/rs/zerolog"
)

const TIMEOUT = 30 * time.Second

/* “a porta de entrada e saída da minha aplicação”
 * Aqui é feita toda a “amarração”: config, tabela de endpoints, clientes REST,
 * notificações, sessão e métricas. Os pacotes de negócio não se conhecem.
 */

func main() {
	logger := httplog.NewLogger("locadora-web", httplog.Options{
		JSON: true,
	})
	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	loader := endpoints.NewLoader()
	if err := loader.Load(cfg.EndpointsFile); err != nil {
		logger.Warn().Err(err).Str("file", cfg.EndpointsFile).Msg("using default endpoints")
		loader = endpoints.Default()
	}

	store, err := notificationStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	collector := metrics.NewStoreCollector(store)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		return err
	}
	defer exporter.Shutdown(context.Background())

	api, err := resource.NewAPI(cfg.APIBaseURL, resource.WithObserver(exporter))
	if err != nil {
		return err
	}

	clientes, err := newClient[cliente.Cliente, cliente.Create, cliente.Update](api, loader, "cliente")
	if err != nil {
		return err
	}
	atores, err := newClient[ator.Ator, ator.Create, ator.Update](api, loader, "ator")
	if err != nil {
		return err
	}
	classes, err := newClient[classe.Classe, classe.Create, classe.Update](api, loader, "classe")
	if err != nil {
		return err
	}
	locacoes, err := newClient[locacao.Locacao, locacao.Create, locacao.Update](api, loader, "locacao")
	if err != nil {
		return err
	}
	collector.Track(clientes, atores, classes, locacoes)

	secret, err := sessionSecret(cfg, logger)
	if err != nil {
		return err
	}

	r := chi.Handlers(ctx, chi.Deps{
		Sessions:  session.NewManager(secret, cfg.SessionSecure),
		Notifier:  notify.NewNotifier(store, session.ID),
		Validator: form.New(),
		Limiter:   chi.NewRateLimiter(cfg.RateRPS, cfg.RateBurst),
		Metrics:   exporter.ServeHTTP(),
		Endpoints: loader,
		PageSize:  cfg.PageSize,
		Clientes:  clientes,
		Atores:    atores,
		Classes:   classes,
		Locacoes:  locacoes,
	})
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Str("api", cfg.APIBaseURL).Bool("redis", cfg.UseRedis()).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return <-errShutdown
}

func newClient[T, C any, U resource.Keyed](api *resource.API, loader *endpoints.Loader, entity string) (*resource.Client[T, C, U], error) {
	ep, err := loader.Get(entity)
	if err != nil {
		return nil, err
	}
	return resource.New[T, C, U](api, *ep), nil
}

func notificationStore(cfg *config.Config) (notify.Store, error) {
	if !cfg.UseRedis() {
		return memory.NewStore(cfg.NotificationTTL()), nil
	}
	return redis.NewStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.NotificationTTL())
}

// sessionSecret parses SESSION_SECRET. Without one every restart signs new cookies.
func sessionSecret(cfg *config.Config, logger zerolog.Logger) (session.Secret, error) {
	if cfg.SessionSecret != "" {
		return session.ParseSecret(cfg.SessionSecret)
	}
	secret, err := session.GenerateSecret(32)
	if err != nil {
		return session.Secret{}, err
	}
	logger.Warn().Msg("SESSION_SECRET not set, using an ephemeral secret")
	return secret, nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server: %w", err)
	}
}
