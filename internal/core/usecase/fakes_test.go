package usecase

import (
	"context"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// fakeBackend implements ports.EditionBackend with per-method hooks.
// Unset hooks return empty results.
type fakeBackend struct {
	searchFn         func(req domain.SearchRequest) ([]domain.SearchResult, error)
	searchRegisterFn func(term string, kind domain.RegisterKind) ([]domain.RegisterHit, error)
	fetchDocumentFn  func(id string) (*domain.RetrievedDocument, error)
	fetchPassagesFn  func(id, term string, maxPassages, contextChars int) ([]domain.Passage, error)
	fetchRegisterFn  func(id string) (*domain.RegisterEntry, error)
	scanMentionsFn   func(subcollection, docType, registerID string) ([]domain.DocumentMention, error)
	fetchBiogramFn   func(id string) (*domain.Biogram, error)
	chronologyFn     func(notBefore, notAfter string) ([]domain.ChronologyEntry, error)
	chronologyYearFn func(year int) (*domain.ChronologyYear, error)
	diaryFn          func(date string) (*domain.DiaryEntry, error)
	correspondentsFn func(direction, year string) (map[string]int, []string, error)
}

func (f *fakeBackend) Search(_ context.Context, req domain.SearchRequest) ([]domain.SearchResult, error) {
	if f.searchFn == nil {
		return nil, nil
	}
	return f.searchFn(req)
}

func (f *fakeBackend) SearchRegister(_ context.Context, term string, kind domain.RegisterKind) ([]domain.RegisterHit, error) {
	if f.searchRegisterFn == nil {
		return nil, nil
	}
	return f.searchRegisterFn(term, kind)
}

func (f *fakeBackend) FetchDocument(_ context.Context, id string) (*domain.RetrievedDocument, error) {
	if f.fetchDocumentFn == nil {
		return nil, nil
	}
	return f.fetchDocumentFn(id)
}

func (f *fakeBackend) FetchPassages(_ context.Context, id, term string, maxPassages, contextChars int) ([]domain.Passage, error) {
	if f.fetchPassagesFn == nil {
		return nil, nil
	}
	return f.fetchPassagesFn(id, term, maxPassages, contextChars)
}

func (f *fakeBackend) FetchRegisterEntry(_ context.Context, id string) (*domain.RegisterEntry, error) {
	if f.fetchRegisterFn == nil {
		return nil, nil
	}
	return f.fetchRegisterFn(id)
}

func (f *fakeBackend) ScanMentions(_ context.Context, subcollection, docType, registerID string) ([]domain.DocumentMention, error) {
	if f.scanMentionsFn == nil {
		return nil, nil
	}
	return f.scanMentionsFn(subcollection, docType, registerID)
}

func (f *fakeBackend) FetchBiogram(_ context.Context, id string) (*domain.Biogram, error) {
	if f.fetchBiogramFn == nil {
		return nil, nil
	}
	return f.fetchBiogramFn(id)
}

func (f *fakeBackend) ChronologyYear(_ context.Context, year int) (*domain.ChronologyYear, error) {
	if f.chronologyYearFn == nil {
		return nil, nil
	}
	return f.chronologyYearFn(year)
}

func (f *fakeBackend) ChronologyEntries(_ context.Context, notBefore, notAfter string) ([]domain.ChronologyEntry, error) {
	if f.chronologyFn == nil {
		return nil, nil
	}
	return f.chronologyFn(notBefore, notAfter)
}

func (f *fakeBackend) DiaryEntry(_ context.Context, date string) (*domain.DiaryEntry, error) {
	if f.diaryFn == nil {
		return nil, nil
	}
	return f.diaryFn(date)
}

func (f *fakeBackend) CorrespondentCounts(_ context.Context, direction, year string) (map[string]int, []string, error) {
	if f.correspondentsFn == nil {
		return nil, nil, nil
	}
	return f.correspondentsFn(direction, year)
}

// fakeLetterCache serves a fixed snapshot and counts loads.
type fakeLetterCache struct {
	entries []domain.LetterCacheEntry
	err     error
	calls   int
}

func (f *fakeLetterCache) Letters(context.Context) ([]domain.LetterCacheEntry, error) {
	f.calls++
	return f.entries, f.err
}

func (f *fakeLetterCache) Invalidate() {}

// fakeStore implements ports.DocumentStore for the admin usecase.
type fakeStore struct {
	queries  []string
	result   string
	err      error
	status   *domain.StoreStatus
	contents *domain.CollectionContents
}

func (f *fakeStore) ExecuteQuery(_ context.Context, xquery string, _ int) (string, error) {
	f.queries = append(f.queries, xquery)
	return f.result, f.err
}

func (f *fakeStore) GetByID(context.Context, string, string) (string, error) { return f.result, f.err }

func (f *fakeStore) GetByPath(context.Context, string) (string, error) { return f.result, f.err }

func (f *fakeStore) ListCollection(_ context.Context, path string) (*domain.CollectionContents, error) {
	f.queries = append(f.queries, path)
	return f.contents, f.err
}

func (f *fakeStore) HealthCheck(context.Context) (*domain.StoreStatus, error) {
	return f.status, f.err
}

func (f *fakeStore) Close() {}
