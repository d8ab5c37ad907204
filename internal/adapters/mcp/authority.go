package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority/geonames"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority/gnd"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority/wikidata"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/correspsearch"
)

// AuthorityClients bundles the external norm-data services. Any nil
// client skips registration of its tools, so a deployment without a
// GeoNames account simply has no geonames tools.
type AuthorityClients struct {
	GND           *gnd.Client
	GeoNames      *geonames.Client
	Wikidata      *wikidata.Client
	CorrespSearch *correspsearch.Client
}

// RegisterAuthorities mounts the norm-data lookup tools. Authority
// results are returned as JSON since their shape varies per service.
func (s *Server) RegisterAuthorities(ac AuthorityClients) {
	if ac.GND != nil {
		s.addTool(mcp.NewTool("gnd_lookup_person",
			mcp.WithDescription("Fetch a person record from the GND authority file by GND id."),
			mcp.WithString("gnd_id", mcp.Required(), mcp.Description("GND id, bare or as d-nb.info URI")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("gnd_id")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "gnd_lookup_person", err)
			}
			record, err := ac.GND.LookupPerson(ctx, id)
			if err != nil {
				return "", err
			}
			return asJSON(record)
		})

		s.addTool(mcp.NewTool("gnd_search_persons",
			mcp.WithDescription("Search the GND authority file for persons by name."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Person name")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of records, default 10")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "gnd_search_persons", err)
			}
			records, err := ac.GND.SearchPersons(ctx, name, req.GetInt("limit", 0))
			if err != nil {
				return "", err
			}
			return asJSON(records)
		})
	}

	if ac.GeoNames != nil {
		s.addTool(mcp.NewTool("geonames_lookup_place",
			mcp.WithDescription("Fetch a place record from GeoNames by id."),
			mcp.WithString("geonames_id", mcp.Required(), mcp.Description("GeoNames id, bare or as geonames.org URL")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("geonames_id")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "geonames_lookup_place", err)
			}
			record, err := ac.GeoNames.LookupPlace(ctx, id)
			if err != nil {
				return "", err
			}
			return asJSON(record)
		})

		s.addTool(mcp.NewTool("geonames_search_places",
			mcp.WithDescription("Search GeoNames for places by name."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Place name")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of records, default 10")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "geonames_search_places", err)
			}
			records, err := ac.GeoNames.SearchPlaces(ctx, name, req.GetInt("limit", 0))
			if err != nil {
				return "", err
			}
			return asJSON(records)
		})
	}

	if ac.Wikidata != nil {
		s.addTool(mcp.NewTool("wikidata_lookup_entity",
			mcp.WithDescription("Fetch a Wikidata entity with labels, descriptions, claims and sitelinks."),
			mcp.WithString("entity_id", mcp.Required(), mcp.Description("Entity id, e.g. Q40946")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("entity_id")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "wikidata_lookup_entity", err)
			}
			record, err := ac.Wikidata.LookupEntity(ctx, id)
			if err != nil {
				return "", err
			}
			return asJSON(record)
		})

		s.addTool(mcp.NewTool("wikidata_search_entities",
			mcp.WithDescription("Search Wikidata entities by label, German first."),
			mcp.WithString("term", mcp.Required(), mcp.Description("Search term")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of entities, default 10")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			term, err := req.RequireString("term")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "wikidata_search_entities", err)
			}
			records, err := ac.Wikidata.SearchEntities(ctx, term, req.GetInt("limit", 0))
			if err != nil {
				return "", err
			}
			return asJSON(records)
		})
	}

	if ac.CorrespSearch != nil {
		s.addTool(mcp.NewTool("correspsearch_letters",
			mcp.WithDescription("Search the correspSearch aggregator for letters of a correspondent across editions."),
			mcp.WithString("correspondent", mcp.Required(), mcp.Description("Correspondent authority URI or bare GND id")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of letters, default 25")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			correspondent, err := req.RequireString("correspondent")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "correspsearch_letters", err)
			}
			records, err := ac.CorrespSearch.SearchCorrespondence(ctx, correspondent, req.GetInt("limit", 0))
			if err != nil {
				return "", err
			}
			return asJSON(records)
		})
	}
}

func asJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.WrapError(domain.ErrParse, "encode authority response", fmt.Errorf("marshal: %w", err))
	}
	return string(data), nil
}
