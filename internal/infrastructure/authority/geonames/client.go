// Package geonames resolves places against the GeoNames web services.
package geonames

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority"
)

const defaultSearchLimit = 10

type Client struct {
	baseURL   string
	username  string
	transport *authority.Transport
}

func New(baseURL, username string, transport *authority.Transport) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		username:  username,
		transport: transport,
	}
}

// LookupPlace fetches the record for one GeoNames identifier.
// Bare ids and full geonames.org URIs are both accepted.
func (c *Client) LookupPlace(ctx context.Context, geonamesID string) (map[string]any, error) {
	id := normalizeID(geonamesID)
	if id == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "geonames lookup", fmt.Errorf("empty geonames id"))
	}

	params := url.Values{}
	params.Set("geonameId", id)
	params.Set("username", c.username)

	var record map[string]any
	if err := c.transport.GetJSON(ctx, "geonames.lookup", c.baseURL+"/getJSON?"+params.Encode(), &record); err != nil {
		return nil, err
	}
	if err := serviceError("geonames lookup", record); err != nil {
		return nil, err
	}
	return record, nil
}

// SearchPlaces runs a toponym search and returns the matching records.
func (c *Client) SearchPlaces(ctx context.Context, name string, limit int) ([]map[string]any, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "geonames search", fmt.Errorf("empty name"))
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	params := url.Values{}
	params.Set("q", name)
	params.Set("maxRows", strconv.Itoa(limit))
	params.Set("username", c.username)

	var result struct {
		Geonames []map[string]any `json:"geonames"`
		Status   map[string]any   `json:"status"`
	}
	if err := c.transport.GetJSON(ctx, "geonames.search", c.baseURL+"/searchJSON?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Status != nil {
		if err := serviceError("geonames search", map[string]any{"status": result.Status}); err != nil {
			return nil, err
		}
	}
	return result.Geonames, nil
}

// serviceError translates the in-band error envelope GeoNames returns
// with HTTP 200. Value 10 is an invalid or missing username.
func serviceError(operation string, record map[string]any) error {
	status, ok := record["status"].(map[string]any)
	if !ok {
		return nil
	}
	message, _ := status["message"].(string)
	value, _ := status["value"].(float64)
	err := fmt.Errorf("geonames status %d: %s", int(value), message)
	switch int(value) {
	case 10:
		return domain.WrapError(domain.ErrAuth, operation, err)
	case 11:
		return domain.WrapError(domain.ErrNotFound, operation, err)
	case 18, 19, 20:
		return domain.WrapError(domain.ErrConnection, operation, err)
	default:
		return domain.WrapError(domain.ErrQuery, operation, err)
	}
}

func normalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	for _, prefix := range []string{"https://www.geonames.org/", "http://www.geonames.org/", "https://sws.geonames.org/", "http://sws.geonames.org/"} {
		id = strings.TrimPrefix(id, prefix)
	}
	if i := strings.IndexByte(id, '/'); i >= 0 {
		id = id[:i]
	}
	return id
}
