package resource_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/marcelsud/locadora-web/endpoints"
	"github.com/marcelsud/locadora-web/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

type itemCreate struct {
	Nome string `json:"nome"`
}

type itemUpdate struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func (u itemUpdate) Key() string { return u.ID }

type call struct {
	Method string
	Path   string
	Body   string
	Header http.Header
}

// fakeAPI records every call and answers with the configured handler
type fakeAPI struct {
	mu     sync.Mutex
	calls  []call
	answer func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls = append(f.calls, call{Method: r.Method, Path: r.URL.Path, Body: string(body), Header: r.Header.Clone()})
	f.mu.Unlock()
	f.answer(w, r)
}

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func jsonAnswer(status int, v any) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if v != nil {
			_ = json.NewEncoder(w).Encode(v)
		}
	}
}

func setup(t *testing.T, ep endpoints.Endpoint, opts ...resource.Option) (*fakeAPI, *resource.Client[item, itemCreate, itemUpdate]) {
	t.Helper()
	fake := &fakeAPI{answer: jsonAnswer(http.StatusOK, nil)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	api, err := resource.NewAPI(srv.URL, opts...)
	require.NoError(t, err)
	return fake, resource.New[item, itemCreate, itemUpdate](api, ep)
}

var classeEndpoint = endpoints.Endpoint{Entity: "classe", Prefix: "classe", Relation: "ator"}

func TestClient_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success - replaces cached collection", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusOK, []item{{ID: "1", Nome: "Ouro"}, {ID: "2", Nome: "Prata"}})

		err := c.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, []item{{ID: "1", Nome: "Ouro"}, {ID: "2", Nome: "Prata"}}, c.Items())
		assert.Equal(t, 2, c.Len())
		require.Len(t, fake.Calls(), 1)
		assert.Equal(t, http.MethodGet, fake.Calls()[0].Method)
		assert.Equal(t, "/classe/listar", fake.Calls()[0].Path)
	})

	t.Run("fail - cache left unchanged", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusOK, []item{{ID: "1", Nome: "Ouro"}})
		require.NoError(t, c.List(ctx))

		fake.answer = jsonAnswer(http.StatusInternalServerError, map[string]string{"message": "boom"})
		err := c.List(ctx)

		require.Error(t, err)
		assert.True(t, errors.Is(err, resource.ErrRequest))
		assert.Equal(t, []item{{ID: "1", Nome: "Ouro"}}, c.Items())
	})

	t.Run("null body keeps cache", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusOK, []item{{ID: "1", Nome: "Ouro"}})
		require.NoError(t, c.List(ctx))

		fake.answer = func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("null")) }
		require.NoError(t, c.List(ctx))

		assert.Len(t, c.Items(), 1)
	})

	t.Run("empty prefix", func(t *testing.T) {
		fake, c := setup(t, endpoints.Endpoint{Entity: "ator"})
		fake.answer = jsonAnswer(http.StatusOK, []item{})

		require.NoError(t, c.List(ctx))
		assert.Equal(t, "/listar", fake.Calls()[0].Path)
	})
}

func TestClient_Select(t *testing.T) {
	ctx := context.Background()

	t.Run("success - caches selected record", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusOK, item{ID: "7", Nome: "Ouro"})

		got, err := c.Select(ctx, "7")

		require.NoError(t, err)
		assert.Equal(t, item{ID: "7", Nome: "Ouro"}, got)
		cached, ok := c.Selected()
		assert.True(t, ok)
		assert.Equal(t, got, cached)
		assert.Equal(t, "/classe/ator/listar/7", fake.Calls()[0].Path)
	})

	t.Run("error - null body is not found and never returns the previous record", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusOK, item{ID: "1", Nome: "Ouro"})
		_, err := c.Select(ctx, "1")
		require.NoError(t, err)

		fake.answer = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`null`))
		}
		got, err := c.Select(ctx, "2")

		require.Error(t, err)
		assert.ErrorIs(t, err, resource.ErrNotFound)
		assert.Equal(t, item{}, got)
	})

	t.Run("error - no relation, no call", func(t *testing.T) {
		fake, c := setup(t, endpoints.Endpoint{Entity: "locacao", Prefix: "locacao"})

		_, err := c.Select(ctx, "7")

		require.Error(t, err)
		assert.True(t, errors.Is(err, resource.ErrNoRelation))
		assert.Empty(t, fake.Calls())
		_, ok := c.Selected()
		assert.False(t, ok)
	})
}

func TestClient_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - returns server record", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusCreated, item{ID: "9", Nome: "Bronze"})

		created, err := c.Create(ctx, itemCreate{Nome: "Bronze"})

		require.NoError(t, err)
		assert.Equal(t, item{ID: "9", Nome: "Bronze"}, created)
		calls := fake.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, http.MethodPost, calls[0].Method)
		assert.Equal(t, "/classe/criar", calls[0].Path)
		assert.JSONEq(t, `{"nome":"Bronze"}`, calls[0].Body)
		assert.Equal(t, "application/json", calls[0].Header.Get("Content-Type"))
		assert.Empty(t, c.Items(), "create does not touch the cache")
	})

	t.Run("success - empty body", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusNoContent, nil)

		created, err := c.Create(ctx, itemCreate{Nome: "Bronze"})

		require.NoError(t, err)
		assert.Empty(t, created)
	})

	t.Run("runs to completion when caller cancels", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusCreated, item{ID: "9"})
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := c.Create(cancelled, itemCreate{Nome: "Bronze"})

		require.NoError(t, err)
		assert.Len(t, fake.Calls(), 1)
	})

	t.Run("fail - transport error", func(t *testing.T) {
		api, err := resource.NewAPI("http://127.0.0.1:1")
		require.NoError(t, err)
		c := resource.New[item, itemCreate, itemUpdate](api, classeEndpoint)

		_, err = c.Create(ctx, itemCreate{Nome: "Bronze"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, resource.ErrRequest))
		assert.Contains(t, err.Error(), "creating classe")
	})
}

func TestClient_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success - one PUT", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusOK, item{ID: "42", Nome: "Beatriz"})

		updated, err := c.Update(ctx, itemUpdate{ID: "42", Nome: "Beatriz"})

		require.NoError(t, err)
		assert.Equal(t, "Beatriz", updated.Nome)
		calls := fake.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, http.MethodPut, calls[0].Method)
		assert.Equal(t, "/classe/editar/42", calls[0].Path)
		assert.JSONEq(t, `{"id":"42","nome":"Beatriz"}`, calls[0].Body)
	})

	t.Run("fail - cache left unchanged", func(t *testing.T) {
		fake, c := setup(t, classeEndpoint)
		fake.answer = jsonAnswer(http.StatusOK, []item{{ID: "42", Nome: "Ana"}})
		require.NoError(t, c.List(ctx))

		fake.answer = jsonAnswer(http.StatusInternalServerError, map[string]string{"message": "boom"})
		_, err := c.Update(ctx, itemUpdate{ID: "42", Nome: "Beatriz"})

		require.Error(t, err)
		var statusErr *resource.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Equal(t, []item{{ID: "42", Nome: "Ana"}}, c.Items())
		assert.Len(t, fake.Calls(), 2)
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()
	locacao := endpoints.Endpoint{Entity: "locacao", Prefix: "locacao"}

	t.Run("success - one DELETE", func(t *testing.T) {
		fake, c := setup(t, locacao)
		fake.answer = jsonAnswer(http.StatusNoContent, nil)

		err := c.Delete(ctx, "loc-7")

		require.NoError(t, err)
		calls := fake.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, http.MethodDelete, calls[0].Method)
		assert.Equal(t, "/locacao/deletar/loc-7", calls[0].Path)
	})

	t.Run("fail - business rule rejection keeps cache", func(t *testing.T) {
		fake, c := setup(t, locacao)
		fake.answer = jsonAnswer(http.StatusOK, []item{{ID: "loc-7"}})
		require.NoError(t, c.List(ctx))

		fake.answer = jsonAnswer(http.StatusConflict, map[string]string{"message": "locação ativa"})
		err := c.Delete(ctx, "loc-7")

		require.Error(t, err)
		var statusErr *resource.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
		assert.True(t, errors.Is(err, resource.ErrRequest))
		assert.Equal(t, []item{{ID: "loc-7"}}, c.Items())
		assert.Len(t, fake.Calls(), 2)
	})
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
	errs  []error
}

func (o *recordingObserver) ObserveRequest(_ context.Context, entity, operation string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, entity+"."+operation)
	o.errs = append(o.errs, err)
}

func TestAPI_Options(t *testing.T) {
	ctx := context.Background()

	t.Run("observer and headers", func(t *testing.T) {
		obs := &recordingObserver{}
		fake, c := setup(t, classeEndpoint, resource.WithObserver(obs), resource.WithHeader("X-Loja", "centro"))
		fake.answer = jsonAnswer(http.StatusOK, []item{})

		require.NoError(t, c.List(ctx))
		fake.answer = jsonAnswer(http.StatusBadRequest, nil)
		require.Error(t, c.Delete(ctx, "1"))

		assert.Equal(t, []string{"classe.list", "classe.delete"}, obs.calls)
		assert.NoError(t, obs.errs[0])
		assert.Error(t, obs.errs[1])
		assert.Equal(t, "centro", fake.Calls()[0].Header.Get("X-Loja"))
	})

	t.Run("error - invalid base URL", func(t *testing.T) {
		_, err := resource.NewAPI("ftp://example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be http or https")
	})
}
