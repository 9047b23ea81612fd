package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Observer is notified after every backend call.
type Observer interface {
	ObserveRequest(ctx context.Context, entity, operation string, elapsed time.Duration, err error)
}

// API is the shared HTTP transport to the rental backend
type API struct {
	baseURL  *url.URL
	client   *http.Client
	headers  http.Header
	observer Observer
}

type Option func(*API)

// WithHTTPClient replaces the default client. The default has no timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(a *API) { a.client = c }
}

// WithHeader adds a header to every request
func WithHeader(key, value string) Option {
	return func(a *API) { a.headers.Set(key, value) }
}

// WithObserver registers the call observer (metrics)
func WithObserver(o Observer) Option {
	return func(a *API) { a.observer = o }
}

// NewAPI creates the transport for baseURL (e.g. http://localhost:3333/)
func NewAPI(baseURL string, opts ...Option) (*API, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing API base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("API base URL must be http or https: %s", baseURL)
	}

	a := &API{
		baseURL: u,
		client:  &http.Client{},
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// do sends one request and decodes a JSON answer into out when out is
// non-nil and the body is not empty.
func (a *API) do(ctx context.Context, entity, operation, method, path string, in, out any) error {
	start := time.Now()
	err := a.send(ctx, method, path, in, out)
	if a.observer != nil {
		a.observer.ObserveRequest(ctx, entity, operation, time.Since(start), err)
	}
	return err
}

func (a *API) send(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		reqJSON, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(reqJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, v := range a.headers {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return &transportError{method: method, path: path, err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transportError{method: method, path: path, err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &transportError{method: method, path: path, err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
