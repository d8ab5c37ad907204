package tei

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// ParseSearchResults reads the <result> fragments produced by a
// full-text query into typed hits.
func ParseSearchResults(xml string) ([]domain.SearchResult, error) {
	root, err := ParseFragments("parse search results", xml)
	if err != nil {
		return nil, err
	}

	var results []domain.SearchResult
	for _, el := range findAll(root, "result") {
		id := ExtractText(childByTag(el, "id"))
		result := domain.SearchResult{
			DocumentID:  id,
			Title:       ExtractText(childByTag(el, "title")),
			DocType:     ExtractText(childByTag(el, "type")),
			Date:        ExtractText(childByTag(el, "date")),
			CitationURL: domain.CitationURL(id),
		}
		if score := ExtractText(childByTag(el, "score")); score != "" {
			result.Score, _ = strconv.ParseFloat(score, 64)
		}
		if snippets := childByTag(el, "snippets"); snippets != nil {
			result.KWICSnippets = snippetsFromElement(snippets)
		}
		results = append(results, result)
	}
	return results, nil
}

func snippetsFromElement(snippets *etree.Element) []string {
	inner := etree.NewDocument()
	inner.SetRoot(snippets.Copy())
	serialized, err := inner.WriteToString()
	if err != nil {
		return nil
	}
	parsed, _ := ParseKWIC(serialized)
	return parsed
}
