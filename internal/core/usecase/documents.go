package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

const defaultMaxPassages = 10

type DocumentUseCase struct {
	backend ports.EditionBackend
}

func NewDocumentUseCase(backend ports.EditionBackend) *DocumentUseCase {
	return &DocumentUseCase{backend: backend}
}

func (uc *DocumentUseCase) GetDocument(ctx context.Context, id string) (*domain.RetrievedDocument, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "get document", fmt.Errorf("document id is required"))
	}
	return uc.backend.FetchDocument(ctx, strings.TrimSpace(id))
}

// GetPassages returns located excerpts of one document, either full-text
// matches for a term or the document's leading paragraphs when no term
// is given.
func (uc *DocumentUseCase) GetPassages(ctx context.Context, id, term string, contextChars int) ([]domain.Passage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "get passages", fmt.Errorf("document id is required"))
	}
	return uc.backend.FetchPassages(ctx, strings.TrimSpace(id), strings.TrimSpace(term), defaultMaxPassages, contextChars)
}
