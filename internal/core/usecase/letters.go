package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

const defaultStatsLimit = 20

var yearPattern = regexp.MustCompile(`^\d{4}$`)

type LetterUseCase struct {
	cache   ports.LetterCache
	backend ports.EditionBackend
}

func NewLetterUseCase(cache ports.LetterCache, backend ports.EditionBackend) *LetterUseCase {
	return &LetterUseCase{cache: cache, backend: backend}
}

// FilterLetters evaluates a filter over the letter snapshot. At least one
// criterion must be set; an unconstrained scan over the whole snapshot is
// rejected.
func (uc *LetterUseCase) FilterLetters(ctx context.Context, filter domain.LetterFilter) ([]domain.LetterSummary, error) {
	if filter.Sender == "" && filter.Receiver == "" && filter.Place == "" &&
		filter.DateFrom == "" && filter.DateTo == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "filter letters", fmt.Errorf("at least one filter is required"))
	}
	entries, err := uc.cache.Letters(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterLetters(entries, filter), nil
}

// CorrespondentStats aggregates letter counts per correspondent. An empty
// direction covers both directions; otherwise it must be "sent" or
// "received". A non-empty year narrows the aggregation to letters from
// that year, and minLetters drops correspondents below the threshold.
func (uc *LetterUseCase) CorrespondentStats(ctx context.Context, direction, year string, minLetters, limit int) ([]domain.CorrespondentStat, error) {
	if limit <= 0 {
		limit = defaultStatsLimit
	}
	if year != "" && !yearPattern.MatchString(year) {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "correspondent stats", fmt.Errorf("year must be four digits, got %q", year))
	}

	var sent, received map[string]int
	var order []string
	var err error

	switch direction {
	case "sent":
		sent, order, err = uc.backend.CorrespondentCounts(ctx, "sent", year)
	case "received":
		received, order, err = uc.backend.CorrespondentCounts(ctx, "received", year)
	case "", "both":
		sent, _, err = uc.backend.CorrespondentCounts(ctx, "sent", year)
		if err == nil {
			received, _, err = uc.backend.CorrespondentCounts(ctx, "received", year)
		}
	default:
		return nil, domain.WrapError(domain.ErrInvalidRequest, "correspondent stats", fmt.Errorf("direction must be sent, received or both"))
	}
	if err != nil {
		return nil, err
	}

	stats := mergeStats(sent, received, order)
	if minLetters > 1 {
		kept := stats[:0]
		for _, s := range stats {
			if s.Total >= minLetters {
				kept = append(kept, s)
			}
		}
		stats = kept
	}
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

// mergeStats combines the per-direction counts. When a single direction
// was queried the store's descending order is kept; a merged result is
// re-sorted by total.
func mergeStats(sent, received map[string]int, order []string) []domain.CorrespondentStat {
	seen := make(map[string]bool)
	var ids []string
	for _, id := range order {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for id := range sent {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for id := range received {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	stats := make([]domain.CorrespondentStat, 0, len(ids))
	for _, id := range ids {
		stats = append(stats, domain.CorrespondentStat{
			PersonID:        id,
			LettersSent:     sent[id],
			LettersReceived: received[id],
			Total:           sent[id] + received[id],
		})
	}
	if len(order) == 0 {
		sort.SliceStable(stats, func(i, j int) bool { return stats[i].Total > stats[j].Total })
	}
	return stats
}
