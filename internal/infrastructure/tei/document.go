package tei

import (
	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// ParseDocument reads a generic TEI document (lecture, diary, intro).
func ParseDocument(id, xml string) (*domain.Document, error) {
	doc, err := Parse("parse document", xml)
	if err != nil {
		return nil, err
	}
	root := doc.Root()

	out := &domain.Document{
		ID:      id,
		DocType: root.SelectAttrValue("telota:doctype", ""),
		URL:     domain.CitationURL(id),
	}

	header := findFirst(root, "teiHeader")
	if header != nil {
		if titleStmt := findFirst(header, "titleStmt"); titleStmt != nil {
			out.Title = preferredTitle(titleStmt)
			out.Author, out.AuthorID = headerPersonName(childByTag(titleStmt, "author"))
			out.Editor, _ = headerPersonName(childByTag(titleStmt, "editor"))
		}
		out.Date = headerDate(header)
		out.Abstract = ExtractText(findFirst(header, "abstract"))
		out.Source = ExtractText(findFirst(header, "sourceDesc"))
	}
	if out.Title == "" {
		out.Title = "Unknown"
	}

	if body := letterBody(root); body != nil {
		_, out.Content, _ = extractBodyContent(body)
	}
	return out, nil
}

func preferredTitle(titleStmt *etree.Element) string {
	if main := childWithAttr(titleStmt, "title", "type", "main"); main != nil {
		return ExtractText(main)
	}
	return ExtractText(childByTag(titleStmt, "title"))
}

func headerPersonName(el *etree.Element) (name, key string) {
	if el == nil {
		return "", ""
	}
	if persName := childByTag(el, "persName"); persName != nil {
		return ExtractText(persName), attr(persName, "key")
	}
	return ExtractText(el), attr(el, "key")
}

// headerDate probes the creation, publication and source sections in
// order, preferring machine-readable attributes over display text.
func headerDate(header *etree.Element) string {
	for _, section := range []string{"creation", "publicationStmt", "sourceDesc"} {
		parent := findFirst(header, section)
		if parent == nil {
			continue
		}
		date := findFirst(parent, "date")
		if date == nil {
			continue
		}
		if when := attr(date, "when"); when != "" {
			return when
		}
		if notBefore := attr(date, "notBefore"); notBefore != "" {
			return notBefore
		}
		if text := ExtractText(date); text != "" {
			return text
		}
	}
	return ""
}
