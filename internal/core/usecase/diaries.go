package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type DiaryUseCase struct {
	backend ports.EditionBackend
}

func NewDiaryUseCase(backend ports.EditionBackend) *DiaryUseCase {
	return &DiaryUseCase{backend: backend}
}

func (uc *DiaryUseCase) EntryForDate(ctx context.Context, date string) (*domain.DiaryEntry, error) {
	if !isoDate.MatchString(date) {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "diary entry", fmt.Errorf("date must be YYYY-MM-DD, got %q", date))
	}
	return uc.backend.DiaryEntry(ctx, date)
}
