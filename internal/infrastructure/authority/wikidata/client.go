// Package wikidata answers entity lookups against the Wikidata action API.
package wikidata

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

// LookupEntity fetches labels, descriptions and claims for one Q-id.
func (c *Client) LookupEntity(ctx context.Context, entityID string) (map[string]any, error) {
	id := strings.TrimSpace(entityID)
	if id == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "wikidata lookup", fmt.Errorf("empty entity id"))
	}

	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("ids", id)
	params.Set("props", "labels|descriptions|claims|sitelinks")
	params.Set("languages", "de|en")
	params.Set("format", "json")

	var result struct {
		Entities map[string]map[string]any `json:"entities"`
		Error    map[string]any            `json:"error"`
	}
	if err := c.transport.GetJSON(ctx, "wikidata.lookup", c.baseURL+"?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, apiError("wikidata lookup", result.Error)
	}
	entity, ok := result.Entities[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrNotFound, "wikidata lookup", fmt.Errorf("entity %s", id))
	}
	if _, missing := entity["missing"]; missing {
		return nil, domain.WrapError(domain.ErrNotFound, "wikidata lookup", fmt.Errorf("entity %s", id))
	}
	return entity, nil
}

// SearchEntities runs a label search and returns the matches.
func (c *Client) SearchEntities(ctx context.Context, term string, limit int) ([]map[string]any, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "wikidata search", fmt.Errorf("empty search term"))
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	params := url.Values{}
	params.Set("action", "wbsearchentities")
	params.Set("search", term)
	params.Set("language", "de")
	params.Set("uselang", "de")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("format", "json")

	var result struct {
		Search []map[string]any `json:"search"`
		Error  map[string]any   `json:"error"`
	}
	if err := c.transport.GetJSON(ctx, "wikidata.search", c.baseURL+"?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, apiError("wikidata search", result.Error)
	}
	return result.Search, nil
}

// apiError translates the in-band error envelope the action API
// returns with HTTP 200.
func apiError(operation string, envelope map[string]any) error {
	code, _ := envelope["code"].(string)
	info, _ := envelope["info"].(string)
	err := fmt.Errorf("wikidata %s: %s", code, info)
	switch code {
	case "no-such-entity":
		return domain.WrapError(domain.ErrNotFound, operation, err)
	case "param-missing", "param-invalid":
		return domain.WrapError(domain.ErrInvalidRequest, operation, err)
	default:
		return domain.WrapError(domain.ErrQuery, operation, err)
	}
}
