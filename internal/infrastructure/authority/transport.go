// Package authority provides the shared HTTP transport for external
// authority services. All of them are free public endpoints, so every
// request passes a rate limiter and the resilience executor before it
// leaves the process.
package authority

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/resilience"
)

// maxBodyBytes bounds authority responses. The largest observed
// payloads (full lobid.org entity records) stay well under this.
const maxBodyBytes = 4 << 20

type Transport struct {
	timeout    time.Duration
	limiter    *rate.Limiter
	exec       *resilience.Executor
	httpClient *http.Client
}

func NewTransport(timeout time.Duration, rps float64, exec *resilience.Executor) *Transport {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if rps <= 0 {
		rps = 2
	}
	return &Transport{
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		exec:    exec,
	}
}

func (t *Transport) client() *http.Client {
	if t.httpClient == nil {
		t.httpClient = &http.Client{Timeout: t.timeout}
	}
	return t.httpClient
}

func (t *Transport) Close() {
	if t.httpClient != nil {
		t.httpClient.CloseIdleConnections()
	}
}

// GetJSON fetches rawURL and decodes the response body into out,
// applying rate limiting and the retry/breaker policy.
func (t *Transport) GetJSON(ctx context.Context, operation, rawURL string, out any) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	do := func(ctx context.Context) error {
		return t.getJSON(ctx, operation, rawURL, out)
	}
	if t.exec == nil {
		return do(ctx)
	}
	return t.exec.Execute(ctx, operation, do, resilience.ClassifyDomainError)
}

func (t *Transport) getJSON(ctx context.Context, operation, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.WrapError(domain.ErrInvalidRequest, operation, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client().Do(req)
	if err != nil {
		return domain.WrapError(domain.ErrConnection, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(operation, resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.WrapError(domain.ErrConnection, operation, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewParsePayloadError(operation, string(body), err)
	}
	return nil
}

func statusError(operation string, resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	err := fmt.Errorf("status %d: %s", resp.StatusCode, string(detail))
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.WrapError(domain.ErrNotFound, operation, err)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.WrapError(domain.ErrAuth, operation, err)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return domain.WrapError(domain.ErrConnection, operation, err)
	default:
		return domain.WrapError(domain.ErrQuery, operation, err)
	}
}
