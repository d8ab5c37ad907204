package existdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

const defaultHowMany = 100

// Client talks to an eXist-db instance over its REST interface.
type Client struct {
	baseURL    string
	username   string
	password   string
	timeout    time.Duration
	httpClient *http.Client
}

func New(baseURL, username, password string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		timeout:  timeout,
	}
}

// client constructs the HTTP client lazily so that a Client zero-configured
// in tests never opens connections.
func (c *Client) client() *http.Client {
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c.httpClient
}

func (c *Client) Close() {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
}

// ExecuteQuery runs an XQuery expression and returns the raw response body.
func (c *Client) ExecuteQuery(ctx context.Context, xquery string, howMany int) (string, error) {
	if strings.TrimSpace(xquery) == "" {
		return "", domain.WrapError(domain.ErrInvalidRequest, "execute query", fmt.Errorf("empty query"))
	}
	if howMany <= 0 {
		howMany = defaultHowMany
	}

	params := url.Values{}
	params.Set("_query", xquery)
	params.Set("_howmany", strconv.Itoa(howMany))
	params.Set("_wrap", "no")

	return c.get(ctx, "/exist/rest/db?"+params.Encode(), "execute query")
}

// GetByID fetches one stored document by its xml:id within a collection.
func (c *Client) GetByID(ctx context.Context, collection, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", domain.WrapError(domain.ErrInvalidRequest, "get by id", fmt.Errorf("empty document id"))
	}

	xquery := fmt.Sprintf("collection('%s')//*[@xml:id='%s']", EscapeStringLiteral(collection), EscapeStringLiteral(id))
	body, err := c.ExecuteQuery(ctx, xquery, 1)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(body) == "" {
		return "", domain.WrapError(domain.ErrNotFound, "get by id", fmt.Errorf("document %s", id))
	}
	return body, nil
}

// GetByPath fetches a stored resource by its database path.
func (c *Client) GetByPath(ctx context.Context, path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.get(ctx, "/exist/rest"+path, "get by path")
}

// ListCollection lists the sub-collections and resources under a path.
func (c *Client) ListCollection(ctx context.Context, path string) (*domain.CollectionContents, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	body, err := c.get(ctx, "/exist/rest"+path, "list collection")
	if err != nil {
		return nil, err
	}
	return parseCollectionListing(path, body)
}

// HealthCheck probes the server and reports reachability and version.
func (c *Client) HealthCheck(ctx context.Context) (*domain.StoreStatus, error) {
	body, err := c.get(ctx, "/exist/rest/db?_query="+url.QueryEscape("system:get-version()")+"&_wrap=no", "health check")
	if err != nil {
		return &domain.StoreStatus{
			Status:  "error",
			BaseURL: c.baseURL,
			Error:   err.Error(),
		}, err
	}
	return &domain.StoreStatus{
		Status:  "ok",
		BaseURL: c.baseURL,
		Version: strings.TrimSpace(body),
	}, nil
}

func (c *Client) get(ctx context.Context, path, operation string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", domain.WrapError(domain.ErrInvalidRequest, operation, err)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return "", domain.WrapError(domain.ErrConnection, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", statusError(operation, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.WrapError(domain.ErrConnection, operation, err)
	}
	return string(body), nil
}

func statusError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	detail := strings.TrimSpace(string(body))
	err := fmt.Errorf("status %s", resp.Status)
	if detail != "" {
		err = fmt.Errorf("status %s: %s", resp.Status, detail)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.WrapError(domain.ErrNotFound, operation, err)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return domain.WrapError(domain.ErrAuth, operation, err)
	default:
		return domain.WrapError(domain.ErrQuery, operation, err)
	}
}
