// Package gnd resolves persons against the lobid.org GND API.
package gnd

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
	transport *authority.Transport
}

func New(baseURL string, transport *authority.Transport) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport,
	}
}

// LookupPerson fetches the full authority record for one GND identifier.
// Bare numeric ids and full gnd.de URIs are both accepted.
func (c *Client) LookupPerson(ctx context.Context, gndID string) (map[string]any, error) {
	id := normalizeID(gndID)
	if id == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "gnd lookup", fmt.Errorf("empty gnd id"))
	}

	var record map[string]any
	if err := c.transport.GetJSON(ctx, "gnd.lookup", c.baseURL+"/"+url.PathEscape(id)+".json", &record); err != nil {
		return nil, err
	}
	return record, nil
}

// SearchPersons runs a name search and returns the member records.
func (c *Client) SearchPersons(ctx context.Context, name string, limit int) ([]map[string]any, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "gnd search", fmt.Errorf("empty name"))
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	params := url.Values{}
	params.Set("q", name)
	params.Set("filter", "type:Person")
	params.Set("size", strconv.Itoa(limit))
	params.Set("format", "json")

	var result struct {
		Member []map[string]any `json:"member"`
	}
	if err := c.transport.GetJSON(ctx, "gnd.search", c.baseURL+"/search?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return result.Member, nil
}

// normalizeID strips the d-nb.info URI prefix that TEI headers carry.
func normalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	for _, prefix := range []string{"https://d-nb.info/gnd/", "http://d-nb.info/gnd/", "gnd:"} {
		if strings.HasPrefix(id, prefix) {
			return strings.TrimPrefix(id, prefix)
		}
	}
	return id
}
