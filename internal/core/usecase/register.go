package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

type RegisterUseCase struct {
	backend ports.EditionBackend
}

func NewRegisterUseCase(backend ports.EditionBackend) *RegisterUseCase {
	return &RegisterUseCase{backend: backend}
}

func (uc *RegisterUseCase) GetEntry(ctx context.Context, id string) (*domain.RegisterEntry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "get register entry", fmt.Errorf("register id is required"))
	}
	return uc.backend.FetchRegisterEntry(ctx, strings.TrimSpace(id))
}

func (uc *RegisterUseCase) GetBiogram(ctx context.Context, id string) (*domain.Biogram, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "get biogram", fmt.Errorf("biogram id is required"))
	}
	return uc.backend.FetchBiogram(ctx, strings.TrimSpace(id))
}
