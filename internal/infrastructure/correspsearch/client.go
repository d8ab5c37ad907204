// Package correspsearch queries the correspSearch aggregator for
// letter metadata beyond the local edition.
package correspsearch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority"
)

const defaultSearchLimit = 25

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

// SearchCorrespondence returns correspondence descriptions in which the
// given authority URI appears as sender or addressee. Bare GND ids are
// expanded to the d-nb.info form the aggregator indexes.
func (c *Client) SearchCorrespondence(ctx context.Context, correspondentID string, limit int) ([]map[string]any, error) {
	id := normalizeCorrespondent(correspondentID)
	if id == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "correspsearch", fmt.Errorf("empty correspondent id"))
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	params := url.Values{}
	params.Set("correspondent", id)

	var result struct {
		TEIHeader struct {
			ProfileDesc struct {
				CorrespDesc []map[string]any `json:"correspDesc"`
			} `json:"profileDesc"`
		} `json:"teiHeader"`
	}
	if err := c.transport.GetJSON(ctx, "correspsearch.search", c.baseURL+"/tei-json.xql?"+params.Encode(), &result); err != nil {
		return nil, err
	}

	descs := result.TEIHeader.ProfileDesc.CorrespDesc
	if len(descs) > limit {
		descs = descs[:limit]
	}
	return descs, nil
}

func normalizeCorrespondent(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return ""
	}
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	return "https://d-nb.info/gnd/" + strings.TrimPrefix(id, "gnd:")
}
