package ports

import (
	"context"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// SearchService is the inbound contract for full-text document search.
type SearchService interface {
	SearchDocuments(ctx context.Context, req domain.SearchRequest) ([]domain.SearchResult, error)
	SearchRegister(ctx context.Context, term string, kind domain.RegisterKind, limit int) ([]domain.RegisterHit, error)
}

// LetterService filters and reads correspondence documents.
type LetterService interface {
	FilterLetters(ctx context.Context, filter domain.LetterFilter) ([]domain.LetterSummary, error)
	CorrespondentStats(ctx context.Context, direction, year string, minLetters, limit int) ([]domain.CorrespondentStat, error)
}

// DocumentService reads single documents and their passages.
type DocumentService interface {
	GetDocument(ctx context.Context, id string) (*domain.RetrievedDocument, error)
	GetPassages(ctx context.Context, id, term string, contextChars int) ([]domain.Passage, error)
}

// RegisterService reads register entries and aggregates mentions.
type RegisterService interface {
	GetEntry(ctx context.Context, id string) (*domain.RegisterEntry, error)
	GetBiogram(ctx context.Context, id string) (*domain.Biogram, error)
	GetMentions(ctx context.Context, id string, sampleLimit int) (*domain.MentionsSummary, error)
}

// ChronologyService reads the biographical chronology.
type ChronologyService interface {
	EntriesForRange(ctx context.Context, notBefore, notAfter string) ([]domain.ChronologyEntry, error)
	YearOverview(ctx context.Context, year int) (*domain.ChronologyYear, error)
}

// DiaryService reads calendar diary entries.
type DiaryService interface {
	EntryForDate(ctx context.Context, date string) (*domain.DiaryEntry, error)
}

// StoreAdminService exposes store introspection and raw query execution.
type StoreAdminService interface {
	Status(ctx context.Context) (*domain.StoreStatus, error)
	ListCollection(ctx context.Context, path string) (*domain.CollectionContents, error)
	ExecuteRaw(ctx context.Context, xquery string, howMany int) (string, error)
}
