package ports

import (
	"context"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// DocumentStore executes queries against an XML document database.
type DocumentStore interface {
	ExecuteQuery(ctx context.Context, xquery string, howMany int) (string, error)
	GetByID(ctx context.Context, collection, id string) (string, error)
	GetByPath(ctx context.Context, path string) (string, error)
	ListCollection(ctx context.Context, path string) (*domain.CollectionContents, error)
	HealthCheck(ctx context.Context) (*domain.StoreStatus, error)
	Close()
}

// EditionBackend exposes one edition's corpora as domain values. It owns
// query construction and response parsing so callers never see XQuery
// or raw XML.
type EditionBackend interface {
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.SearchResult, error)
	SearchRegister(ctx context.Context, term string, kind domain.RegisterKind) ([]domain.RegisterHit, error)
	FetchDocument(ctx context.Context, id string) (*domain.RetrievedDocument, error)
	FetchPassages(ctx context.Context, id, term string, maxPassages, contextChars int) ([]domain.Passage, error)
	FetchRegisterEntry(ctx context.Context, id string) (*domain.RegisterEntry, error)
	ScanMentions(ctx context.Context, subcollection, docType, registerID string) ([]domain.DocumentMention, error)
	FetchBiogram(ctx context.Context, id string) (*domain.Biogram, error)
	ChronologyEntries(ctx context.Context, notBefore, notAfter string) ([]domain.ChronologyEntry, error)
	ChronologyYear(ctx context.Context, year int) (*domain.ChronologyYear, error)
	DiaryEntry(ctx context.Context, date string) (*domain.DiaryEntry, error)
	CorrespondentCounts(ctx context.Context, direction, year string) (map[string]int, []string, error)
}

// LetterCache serves the pre-built letter metadata snapshot.
type LetterCache interface {
	Letters(ctx context.Context) ([]domain.LetterCacheEntry, error)
	Invalidate()
}

// PersonAuthority resolves person identifiers against an external authority file.
type PersonAuthority interface {
	LookupPerson(ctx context.Context, gndID string) (map[string]any, error)
	SearchPersons(ctx context.Context, name string, limit int) ([]map[string]any, error)
}

// PlaceAuthority resolves place identifiers against an external gazetteer.
type PlaceAuthority interface {
	LookupPlace(ctx context.Context, geonamesID string) (map[string]any, error)
	SearchPlaces(ctx context.Context, name string, limit int) ([]map[string]any, error)
}

// KnowledgeBase answers entity lookups against a general knowledge graph.
type KnowledgeBase interface {
	LookupEntity(ctx context.Context, entityID string) (map[string]any, error)
	SearchEntities(ctx context.Context, term string, limit int) ([]map[string]any, error)
}

// CorrespondenceIndex queries an external correspondence metadata aggregator.
type CorrespondenceIndex interface {
	SearchCorrespondence(ctx context.Context, correspondentID string, limit int) ([]map[string]any, error)
}
