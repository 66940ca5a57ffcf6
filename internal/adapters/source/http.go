package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/concursos/internal/domain/model"
)

const (
	defaultTimeout  = 10 * time.Second
	maxPayloadBytes = 16 << 20
)

// HTTPSource reads contests from a JSON endpoint returning
// {"contests": [...]}.
type HTTPSource struct {
	url    string
	client *http.Client
	opts   options
}

// NewHTTPSource creates a source for the given endpoint URL.
func NewHTTPSource(url string, opts ...Option) *HTTPSource {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: o.timeout},
		opts:   o,
	}
}

// Fetch performs GET on the endpoint and decodes the collection.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Contest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPayloadBytes))
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	var p payload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return toModels(p.Contests, s.opts.location), nil
}
