package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

const defaultSampleLimit = 10

// MentionMetrics counts per-source failures during mention aggregation.
type MentionMetrics interface {
	RecordMentionSourceError(service, source string)
}

// MentionsUseCase aggregates mentions of one register entity across the
// letter snapshot, the diaries and the lectures. Each source fails in
// isolation: a broken corpus degrades the summary instead of sinking the
// whole request.
type MentionsUseCase struct {
	backend ports.EditionBackend
	cache   ports.LetterCache
	logger  *slog.Logger
	metrics MentionMetrics
	service string
}

func NewMentionsUseCase(backend ports.EditionBackend, cache ports.LetterCache, logger *slog.Logger) *MentionsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &MentionsUseCase{backend: backend, cache: cache, logger: logger}
}

func (uc *MentionsUseCase) WithMetrics(m MentionMetrics, service string) *MentionsUseCase {
	uc.metrics = m
	uc.service = service
	return uc
}

func (uc *MentionsUseCase) GetMentions(ctx context.Context, id string, sampleLimit int) (*domain.MentionsSummary, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "get mentions", fmt.Errorf("register id is required"))
	}
	id = strings.TrimSpace(id)
	if sampleLimit <= 0 {
		sampleLimit = defaultSampleLimit
	}

	summary := &domain.MentionsSummary{
		Letters:  []domain.DocumentMention{},
		Diaries:  []domain.DocumentMention{},
		Lectures: []domain.DocumentMention{},
	}

	uc.collectLetterMentions(ctx, id, sampleLimit, summary)

	diaries, err := uc.backend.ScanMentions(ctx, "Tageskalender", "Tageskalender", id)
	if err != nil {
		uc.sourceFailed(ctx, "diaries", id, err)
	} else {
		summary.TotalDiaryMentions = len(diaries)
		summary.Diaries = sampleMentions(diaries, sampleLimit)
	}

	lectures, err := uc.backend.ScanMentions(ctx, "Vorlesungen", "Vorlesung", id)
	if err != nil {
		uc.sourceFailed(ctx, "lectures", id, err)
	} else {
		summary.TotalLectureMentions = len(lectures)
		summary.Lectures = sampleMentions(lectures, sampleLimit)
	}

	return summary, nil
}

// collectLetterMentions scans the snapshot for mention refs and
// correspondence involvement of the entity. Editions without a letter
// snapshot pass a nil cache and contribute nothing here.
func (uc *MentionsUseCase) collectLetterMentions(ctx context.Context, id string, sampleLimit int, summary *domain.MentionsSummary) {
	if uc.cache == nil {
		return
	}
	entries, err := uc.cache.Letters(ctx)
	if err != nil {
		uc.sourceFailed(ctx, "letters", id, err)
		return
	}

	var mentions []domain.DocumentMention
	var asSender, asRecipient int
	for i := range entries {
		entry := &entries[i]
		if entry.Sender.HasRef(id) {
			asSender++
		}
		if entry.Receiver.HasRef(id) {
			asRecipient++
		}

		mentionType, found := mentionIn(entry, id)
		if !found || entry.ID == "" {
			continue
		}
		mentions = append(mentions, domain.DocumentMention{
			ID:          entry.ID,
			Title:       fmt.Sprintf("Brief: %s an %s", entry.Sender.DisplayName(), entry.Receiver.DisplayName()),
			Date:        entry.DateISO,
			DocType:     "Brief",
			MentionType: mentionType,
		})
	}

	summary.TotalLetterMentions = len(mentions)
	summary.Letters = sampleMentions(mentions, sampleLimit)
	if asSender > 0 || asRecipient > 0 {
		summary.Correspondence = &domain.CorrespondenceSummary{
			PersonID:           id,
			LettersAsSender:    asSender,
			LettersAsRecipient: asRecipient,
			TotalLetters:       asSender + asRecipient,
		}
	}
}

// mentionIn looks the entity up in both mention lists of one letter.
// A text mention wins over a comment mention for the same letter.
func mentionIn(entry *domain.LetterCacheEntry, id string) (domain.MentionType, bool) {
	found := false
	mentionType := domain.MentionComment
	for _, kind := range []domain.RegisterKind{domain.KindPerson, domain.KindPlace} {
		for _, ref := range entry.MentionsFor(kind) {
			if ref.ID != id {
				continue
			}
			found = true
			if ref.Type == "regular" {
				mentionType = domain.MentionText
			}
		}
	}
	return mentionType, found
}

// sampleMentions caps a mention list, preferring text mentions over
// comment mentions and keeping source order within each class.
func sampleMentions(mentions []domain.DocumentMention, limit int) []domain.DocumentMention {
	if len(mentions) == 0 {
		return []domain.DocumentMention{}
	}
	sorted := make([]domain.DocumentMention, len(mentions))
	copy(sorted, mentions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MentionType == domain.MentionText && sorted[j].MentionType != domain.MentionText
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func (uc *MentionsUseCase) sourceFailed(ctx context.Context, source, id string, err error) {
	uc.logger.WarnContext(ctx, "mention source failed", "source", source, "register_id", id, "error", err)
	if uc.metrics != nil {
		uc.metrics.RecordMentionSourceError(uc.service, source)
	}
}
