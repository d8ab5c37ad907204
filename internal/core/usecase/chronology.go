package usecase

import (
	"context"
	"fmt"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

type ChronologyUseCase struct {
	backend ports.EditionBackend
}

func NewChronologyUseCase(backend ports.EditionBackend) *ChronologyUseCase {
	return &ChronologyUseCase{backend: backend}
}

// EntriesForRange returns chronology events overlapping the inclusive
// range. Partial dates are padded to full ISO dates, so "1808" covers
// the whole year.
func (uc *ChronologyUseCase) EntriesForRange(ctx context.Context, notBefore, notAfter string) ([]domain.ChronologyEntry, error) {
	if notBefore == "" || notAfter == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "chronology range", fmt.Errorf("both range bounds are required"))
	}
	from := domain.PadDateLower(notBefore)
	to := domain.PadDateUpper(notAfter)
	if from > to {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "chronology range", fmt.Errorf("range start %s is after end %s", from, to))
	}
	return uc.backend.ChronologyEntries(ctx, from, to)
}

// Years covered by the chronology collection.
const (
	chronologyFirstYear = 1768
	chronologyLastYear  = 1834
)

// YearOverview returns the full chronology document of one year.
func (uc *ChronologyUseCase) YearOverview(ctx context.Context, year int) (*domain.ChronologyYear, error) {
	if year < chronologyFirstYear || year > chronologyLastYear {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "chronology year",
			fmt.Errorf("year %d outside %d-%d", year, chronologyFirstYear, chronologyLastYear))
	}
	return uc.backend.ChronologyYear(ctx, year)
}
