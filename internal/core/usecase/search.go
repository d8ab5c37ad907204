package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

const (
	defaultSearchLimit   = 20
	maxSearchLimit       = 100
	defaultRegisterLimit = 20
)

type SearchUseCase struct {
	backend ports.EditionBackend
}

func NewSearchUseCase(backend ports.EditionBackend) *SearchUseCase {
	return &SearchUseCase{backend: backend}
}

func (uc *SearchUseCase) SearchDocuments(ctx context.Context, req domain.SearchRequest) ([]domain.SearchResult, error) {
	terms := make([]string, 0, len(req.Terms))
	for _, t := range req.Terms {
		if strings.TrimSpace(t) != "" {
			terms = append(terms, strings.TrimSpace(t))
		}
	}
	if len(terms) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "search documents", fmt.Errorf("at least one search term is required"))
	}
	req.Terms = terms

	if req.Mode != domain.SearchAll {
		req.Mode = domain.SearchAny
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}
	if req.Limit > maxSearchLimit {
		req.Limit = maxSearchLimit
	}
	if req.DateFrom != "" {
		req.DateFrom = domain.PadDateLower(req.DateFrom)
	}
	if req.DateTo != "" {
		req.DateTo = domain.PadDateUpper(req.DateTo)
	}

	return uc.backend.Search(ctx, req)
}

func (uc *SearchUseCase) SearchRegister(ctx context.Context, term string, kind domain.RegisterKind, limit int) ([]domain.RegisterHit, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "search register", fmt.Errorf("search term is required"))
	}
	if limit <= 0 {
		limit = defaultRegisterLimit
	}

	hits, err := uc.backend.SearchRegister(ctx, strings.TrimSpace(term), kind)
	if err != nil {
		return nil, err
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}
