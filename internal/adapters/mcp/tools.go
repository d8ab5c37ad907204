package mcpadapter

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/core/ports"
)

// splitTerms splits a delimited argument and drops empty pieces.
func splitTerms(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Toolset bundles one edition's services for tool registration. Nil
// services are skipped, so an edition without a letter snapshot or a
// diary corpus simply has no tools for them.
type Toolset struct {
	Search     ports.SearchService
	Letters    ports.LetterService
	Documents  ports.DocumentService
	Register   ports.RegisterService
	Chronology ports.ChronologyService
	Diary      ports.DiaryService
	Admin      ports.StoreAdminService
}

// RegisterEdition mounts the edition tool set under a name prefix, so
// several editions can live on one server (sd_search_documents,
// ab_search_documents, ...).
func (s *Server) RegisterEdition(prefix string, ts Toolset) {
	name := func(tool string) string {
		if prefix == "" {
			return tool
		}
		return prefix + "_" + tool
	}

	if ts.Search != nil {
		s.addTool(mcp.NewTool(name("search_documents"),
			mcp.WithDescription("Full-text search across the edition's documents. Returns scored hits with keyword-in-context snippets."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search terms, whitespace separated")),
			mcp.WithString("mode", mcp.Description("How to combine multiple terms: any (default) or all")),
			mcp.WithBoolean("include_commentary", mcp.Description("Also match editorial commentary, not only the main text")),
			mcp.WithString("doc_types", mcp.Description("Comma-separated document type filter, e.g. Brief,Tageskalender")),
			mcp.WithString("years", mcp.Description("Comma-separated year filter, e.g. 1808,1809")),
			mcp.WithString("date_from", mcp.Description("Earliest date, YYYY, YYYY-MM or YYYY-MM-DD")),
			mcp.WithString("date_to", mcp.Description("Latest date, YYYY, YYYY-MM or YYYY-MM-DD")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of hits, default 20")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			query, err := req.RequireString("query")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "search_documents", err)
			}
			results, err := ts.Search.SearchDocuments(ctx, domain.SearchRequest{
				Terms:             splitTerms(query, " "),
				Mode:              domain.SearchMode(req.GetString("mode", "any")),
				IncludeCommentary: req.GetBool("include_commentary", false),
				DocTypes:          splitTerms(req.GetString("doc_types", ""), ","),
				Years:             splitTerms(req.GetString("years", ""), ","),
				DateFrom:          req.GetString("date_from", ""),
				DateTo:            req.GetString("date_to", ""),
				Limit:             req.GetInt("limit", 0),
			})
			if err != nil {
				return "", err
			}
			return renderSearchResults(results), nil
		})

		s.addTool(mcp.NewTool(name("search_register"),
			mcp.WithDescription("Search the register of persons, places and works by name."),
			mcp.WithString("term", mcp.Required(), mcp.Description("Name to search for")),
			mcp.WithString("kind", mcp.Description("Restrict to person, place or work")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of hits, default 20")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			term, err := req.RequireString("term")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "search_register", err)
			}
			hits, err := ts.Search.SearchRegister(ctx, term, domain.RegisterKind(req.GetString("kind", "")), req.GetInt("limit", 0))
			if err != nil {
				return "", err
			}
			return renderRegisterHits(hits), nil
		})
	}

	if ts.Letters != nil {
		s.addTool(mcp.NewTool(name("filter_letters"),
			mcp.WithDescription("Filter the letter metadata snapshot by correspondent, place and date. At least one filter is required."),
			mcp.WithString("sender", mcp.Description("Register id of the sender")),
			mcp.WithString("receiver", mcp.Description("Register id of the receiver")),
			mcp.WithString("place", mcp.Description("Sending place, id or name substring")),
			mcp.WithString("date_from", mcp.Description("Earliest date, partial dates allowed")),
			mcp.WithString("date_to", mcp.Description("Latest date, partial dates allowed")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of letters, default 100")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			letters, err := ts.Letters.FilterLetters(ctx, domain.LetterFilter{
				Sender:   req.GetString("sender", ""),
				Receiver: req.GetString("receiver", ""),
				Place:    req.GetString("place", ""),
				DateFrom: req.GetString("date_from", ""),
				DateTo:   req.GetString("date_to", ""),
				Limit:    req.GetInt("limit", 0),
			})
			if err != nil {
				return "", err
			}
			return renderLetterSummaries(letters), nil
		})

		s.addTool(mcp.NewTool(name("get_correspondent_stats"),
			mcp.WithDescription("Aggregate letter counts per correspondent."),
			mcp.WithString("direction", mcp.Description("sent, received or both (default)")),
			mcp.WithString("year", mcp.Description("Restrict to letters from one year, e.g. 1808")),
			mcp.WithNumber("min_letters", mcp.Description("Drop correspondents with fewer letters in total")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of correspondents, default 20")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			stats, err := ts.Letters.CorrespondentStats(ctx, req.GetString("direction", ""),
				req.GetString("year", ""), req.GetInt("min_letters", 0), req.GetInt("limit", 0))
			if err != nil {
				return "", err
			}
			return renderCorrespondentStats(stats), nil
		})
	}

	if ts.Documents != nil {
		s.addTool(mcp.NewTool(name("get_document_by_id"),
			mcp.WithDescription("Fetch one document by its id. Letters are rendered with full correspondence metadata."),
			mcp.WithString("doc_id", mcp.Required(), mcp.Description("Document id, e.g. 3413a")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("doc_id")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_document_by_id", err)
			}
			doc, err := ts.Documents.GetDocument(ctx, id)
			if err != nil {
				return "", err
			}
			return renderRetrievedDocument(doc), nil
		})

		s.addTool(mcp.NewTool(name("get_document_passages"),
			mcp.WithDescription("Return located excerpts of one document, optionally matching a search term."),
			mcp.WithString("doc_id", mcp.Required(), mcp.Description("Document id")),
			mcp.WithString("search_term", mcp.Description("Term to locate; without it the leading paragraphs are returned")),
			mcp.WithNumber("context_chars", mcp.Description("Context size per passage in characters")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("doc_id")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_document_passages", err)
			}
			passages, err := ts.Documents.GetPassages(ctx, id, req.GetString("search_term", ""), req.GetInt("context_chars", 0))
			if err != nil {
				return "", err
			}
			return renderPassages(id, passages), nil
		})
	}

	if ts.Register != nil {
		s.addTool(mcp.NewTool(name("get_register_entry"),
			mcp.WithDescription("Fetch one register entry (person, place or work) by id."),
			mcp.WithString("register_id", mcp.Required(), mcp.Description("Register id, e.g. p0001")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("register_id")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_register_entry", err)
			}
			entry, err := ts.Register.GetEntry(ctx, id)
			if err != nil {
				return "", err
			}
			return renderRegisterEntry(entry), nil
		})

		s.addTool(mcp.NewTool(name("get_biogram"),
			mcp.WithDescription("Fetch the biographical dossier of a person, offices and family relations included."),
			mcp.WithString("biogram_id", mcp.Required(), mcp.Description("Dossier document id")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("biogram_id")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_biogram", err)
			}
			biogram, err := ts.Register.GetBiogram(ctx, id)
			if err != nil {
				return "", err
			}
			return renderBiogram(biogram), nil
		})

		s.addTool(mcp.NewTool(name("get_mentions"),
			mcp.WithDescription("Aggregate mentions of a register entity across letters, diaries and lectures."),
			mcp.WithString("register_id", mcp.Required(), mcp.Description("Register id of the person or place")),
			mcp.WithNumber("sample_limit", mcp.Description("Maximum sample documents per corpus, default 10")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			id, err := req.RequireString("register_id")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_mentions", err)
			}
			summary, err := ts.Register.GetMentions(ctx, id, req.GetInt("sample_limit", 0))
			if err != nil {
				return "", err
			}
			return renderMentions(id, summary), nil
		})
	}

	if ts.Chronology != nil {
		s.addTool(mcp.NewTool(name("get_chronology"),
			mcp.WithDescription("List biographical chronology events in a date range. Partial dates cover the whole period."),
			mcp.WithString("date_from", mcp.Required(), mcp.Description("Range start, YYYY, YYYY-MM or YYYY-MM-DD")),
			mcp.WithString("date_to", mcp.Required(), mcp.Description("Range end")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			from, err := req.RequireString("date_from")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_chronology", err)
			}
			to, err := req.RequireString("date_to")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_chronology", err)
			}
			entries, err := ts.Chronology.EntriesForRange(ctx, from, to)
			if err != nil {
				return "", err
			}
			return renderChronology(entries), nil
		})

		s.addTool(mcp.NewTool(name("get_chronology_year"),
			mcp.WithDescription("Fetch the full chronology document of one year."),
			mcp.WithNumber("year", mcp.Required(), mcp.Description("Year between 1768 and 1834")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			year, err := req.RequireInt("year")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_chronology_year", err)
			}
			overview, err := ts.Chronology.YearOverview(ctx, year)
			if err != nil {
				return "", err
			}
			return renderChronologyYear(overview), nil
		})
	}

	if ts.Diary != nil {
		s.addTool(mcp.NewTool(name("get_diary_entry"),
			mcp.WithDescription("Fetch the calendar diary entry for one day."),
			mcp.WithString("date", mcp.Required(), mcp.Description("ISO date, YYYY-MM-DD")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			date, err := req.RequireString("date")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "get_diary_entry", err)
			}
			entry, err := ts.Diary.EntryForDate(ctx, date)
			if err != nil {
				return "", err
			}
			return renderDiaryEntry(entry), nil
		})
	}

	if ts.Admin != nil {
		s.addTool(mcp.NewTool(name("list_collection_contents"),
			mcp.WithDescription("List the resources and subcollections of a database collection."),
			mcp.WithString("path", mcp.Description("Collection path under /db; defaults to the edition's data collection")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			contents, err := ts.Admin.ListCollection(ctx, req.GetString("path", ""))
			if err != nil {
				return "", err
			}
			return renderCollection(contents), nil
		})

		s.addTool(mcp.NewTool(name("execute_query"),
			mcp.WithDescription("Execute a read-only XQuery expression against the edition database."),
			mcp.WithString("query", mcp.Required(), mcp.Description("XQuery expression; write operations are rejected")),
			mcp.WithNumber("max_results", mcp.Description("Maximum result items, default 100")),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			query, err := req.RequireString("query")
			if err != nil {
				return "", domain.WrapError(domain.ErrInvalidRequest, "execute_query", err)
			}
			return ts.Admin.ExecuteRaw(ctx, query, req.GetInt("max_results", 0))
		})

		s.addTool(mcp.NewTool(name("db_status"),
			mcp.WithDescription("Report reachability and version of the edition database."),
		), func(ctx context.Context, req mcp.CallToolRequest) (string, error) {
			status, err := ts.Admin.Status(ctx)
			if status == nil && err != nil {
				return "", err
			}
			return renderStoreStatus(status), nil
		})
	}
}
