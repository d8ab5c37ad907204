package existdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/tei"
)

// letterDocType is the doc-type marker letters carry in the store index.
const letterDocType = "Brief"

// Metrics is the slice of instrumentation the edition backend reports to.
type Metrics interface {
	RecordStoreQuery(service, backend, operation string, duration time.Duration)
	RecordStoreError(service, backend, operation, kind string)
}

// Edition translates domain requests into store queries and store
// responses into domain values for one edition.
type Edition struct {
	client  *Client
	queries *QuerySet

	metrics Metrics
	service string
	backend string
}

func NewEdition(client *Client, queries *QuerySet) *Edition {
	return &Edition{client: client, queries: queries}
}

func (e *Edition) WithMetrics(m Metrics, service, backend string) *Edition {
	e.metrics = m
	e.service = service
	e.backend = backend
	return e
}

func (e *Edition) run(ctx context.Context, operation, xquery string, howMany int) (string, error) {
	start := time.Now()
	body, err := e.client.ExecuteQuery(ctx, xquery, howMany)
	if e.metrics != nil {
		e.metrics.RecordStoreQuery(e.service, e.backend, operation, time.Since(start))
		if err != nil {
			e.metrics.RecordStoreError(e.service, e.backend, operation, errorKind(err))
		}
	}
	return body, err
}

// Search runs a full-text query and returns scored hits with KWIC context.
func (e *Edition) Search(ctx context.Context, req domain.SearchRequest) ([]domain.SearchResult, error) {
	if len(nonEmpty(req.Terms)) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "search", fmt.Errorf("no search terms"))
	}
	req.Terms = nonEmpty(req.Terms)

	body, err := e.run(ctx, "search", e.queries.FullTextSearch(req), req.Limit)
	if err != nil {
		return nil, err
	}
	return tei.ParseSearchResults(body)
}

// SearchRegister matches register entries by name.
func (e *Edition) SearchRegister(ctx context.Context, term string, kind domain.RegisterKind) ([]domain.RegisterHit, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "register search", fmt.Errorf("empty search term"))
	}

	body, err := e.run(ctx, "register_search", e.queries.RegisterSearch(term, kind), 0)
	if err != nil {
		return nil, err
	}
	return tei.ParseRegisterHits(body)
}

// FetchDocument resolves the doc-type marker first and dispatches to the
// letter parser or the generic document parser.
func (e *Edition) FetchDocument(ctx context.Context, id string) (*domain.RetrievedDocument, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "fetch document", fmt.Errorf("empty document id"))
	}

	docType, err := e.run(ctx, "doc_type", e.queries.DocTypeForID(id), 1)
	if err != nil {
		return nil, err
	}
	docType = strings.TrimSpace(docType)

	body, err := e.run(ctx, "fetch_document", e.queries.DocumentByID(id), 1)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, domain.WrapError(domain.ErrNotFound, "fetch document", fmt.Errorf("document %s", id))
	}

	if docType == letterDocType {
		letter, err := tei.ParseLetter(id, body)
		if err != nil {
			return nil, err
		}
		return &domain.RetrievedDocument{DocType: docType, Letter: letter}, nil
	}

	doc, err := tei.ParseDocument(id, body)
	if err != nil {
		return nil, err
	}
	if docType != "" {
		doc.DocType = docType
	}
	return &domain.RetrievedDocument{DocType: doc.DocType, Document: doc}, nil
}

// FetchPassages returns located excerpts of one document. With a term the
// passages are full-text matches with KWIC context, without one they are
// the leading paragraphs.
func (e *Edition) FetchPassages(ctx context.Context, id, term string, maxPassages, contextChars int) ([]domain.Passage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "fetch passages", fmt.Errorf("empty document id"))
	}

	var xquery string
	if strings.TrimSpace(term) != "" {
		xquery = e.queries.PassagesMatching(id, term, maxPassages, contextChars)
	} else {
		xquery = e.queries.StructuralPassages(id, maxPassages, contextChars)
	}

	body, err := e.run(ctx, "fetch_passages", xquery, maxPassages)
	if err != nil {
		return nil, err
	}
	return tei.ParsePassages(body)
}

// FetchRegisterEntry resolves the entry kind from the store, then fetches
// and parses the entry.
func (e *Edition) FetchRegisterEntry(ctx context.Context, id string) (*domain.RegisterEntry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "fetch register entry", fmt.Errorf("empty register id"))
	}

	kindName, err := e.run(ctx, "register_kind", e.queries.RegisterEntryKind(id), 1)
	if err != nil {
		return nil, err
	}
	kindName = strings.TrimSpace(kindName)
	if kindName == "" {
		return nil, domain.WrapError(domain.ErrNotFound, "fetch register entry", fmt.Errorf("register entry %s", id))
	}

	body, err := e.run(ctx, "fetch_register_entry", e.queries.RegisterEntryByID(id), 1)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, domain.WrapError(domain.ErrNotFound, "fetch register entry", fmt.Errorf("register entry %s", id))
	}
	return tei.ParseRegisterEntry(id, registerKind(kindName), body)
}

// ScanMentions finds documents in one subcollection referencing a
// register id.
func (e *Edition) ScanMentions(ctx context.Context, subcollection, docType, registerID string) ([]domain.DocumentMention, error) {
	if strings.TrimSpace(registerID) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "scan mentions", fmt.Errorf("empty register id"))
	}

	path := e.queries.DataPath
	if subcollection != "" {
		path += "/" + strings.Trim(subcollection, "/")
	}
	body, err := e.run(ctx, "scan_mentions", e.queries.MentionsInCollection(path, registerID), 0)
	if err != nil {
		return nil, err
	}
	return tei.ParseMentions(docType, body)
}

// ChronologyEntries returns chronology events overlapping a date range.
func (e *Edition) ChronologyEntries(ctx context.Context, notBefore, notAfter string) ([]domain.ChronologyEntry, error) {
	body, err := e.run(ctx, "chronology", e.queries.ChronologyRange(notBefore, notAfter), 0)
	if err != nil {
		return nil, err
	}
	return tei.ParseChronologyItems(body)
}

// ChronologyYear fetches the full chronology document for one year.
func (e *Edition) ChronologyYear(ctx context.Context, year int) (*domain.ChronologyYear, error) {
	start := time.Now()
	body, err := e.client.GetByPath(ctx, e.queries.ChronologyYearPath(year))
	if e.metrics != nil {
		e.metrics.RecordStoreQuery(e.service, e.backend, "chronology_year", time.Since(start))
		if err != nil {
			e.metrics.RecordStoreError(e.service, e.backend, "chronology_year", errorKind(err))
		}
	}
	if err != nil {
		return nil, err
	}
	return tei.ParseChronologyYear(year, body)
}

// FetchBiogram fetches and parses a biographical dossier document.
func (e *Edition) FetchBiogram(ctx context.Context, id string) (*domain.Biogram, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidRequest, "fetch biogram", fmt.Errorf("empty biogram id"))
	}

	body, err := e.run(ctx, "fetch_biogram", e.queries.DocumentByID(id), 1)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, domain.WrapError(domain.ErrNotFound, "fetch biogram", fmt.Errorf("biogram %s", id))
	}
	return tei.ParseBiogram(id, body)
}

// DiaryEntry returns the calendar page for one day.
func (e *Edition) DiaryEntry(ctx context.Context, date string) (*domain.DiaryEntry, error) {
	body, err := e.run(ctx, "diary", e.queries.DiaryByDate(date), 1)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, domain.WrapError(domain.ErrNotFound, "diary", fmt.Errorf("no entry for %s", date))
	}
	return tei.ParseDiaryEntry(date, body)
}

// CorrespondentCounts aggregates letters per correspondent for one
// direction, preserving the store's descending order. A non-empty year
// narrows the aggregation to that year.
func (e *Edition) CorrespondentCounts(ctx context.Context, direction, year string) (map[string]int, []string, error) {
	body, err := e.run(ctx, "correspondent_counts", e.queries.CorrespondentCounts(direction, year), 0)
	if err != nil {
		return nil, nil, err
	}
	return tei.ParseCorrespondentCounts(body)
}

func registerKind(elementName string) domain.RegisterKind {
	switch elementName {
	case "person":
		return domain.KindPerson
	case "place":
		return domain.KindPlace
	case "bibl":
		return domain.KindWork
	default:
		return domain.KindRaw
	}
}

func errorKind(err error) string {
	switch {
	case domain.IsKind(err, domain.ErrConnection):
		return "connection"
	case domain.IsKind(err, domain.ErrAuth):
		return "auth"
	case domain.IsKind(err, domain.ErrNotFound):
		return "not_found"
	case domain.IsKind(err, domain.ErrParse):
		return "parse"
	case domain.IsKind(err, domain.ErrInvalidRequest):
		return "invalid_request"
	default:
		return "query"
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}
