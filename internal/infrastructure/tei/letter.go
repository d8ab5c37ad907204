package tei

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// ParseLetter reads the full TEI encoding of one letter.
func ParseLetter(id, xml string) (*domain.Letter, error) {
	doc, err := Parse("parse letter", xml)
	if err != nil {
		return nil, err
	}
	root := doc.Root()

	letter := &domain.Letter{
		ID:          id,
		Title:       "Unknown",
		CitationURL: domain.CitationURL(id),
	}

	header := findFirst(root, "teiHeader")
	if header != nil {
		parseLetterHeader(header, letter)
	}

	body := letterBody(root)
	if body != nil {
		letter.Opener, letter.BodyText, letter.Closer = extractBodyContent(body)
		letter.ReferencedPeople = collectNameRefs(body, "persName")
		letter.ReferencedPlaces = collectNameRefs(body, "placeName")
		letter.EditorialNotes = collectEditorialNotes(body)
		letter.Facsimiles = collectFacsimiles(body)
	}

	return letter, nil
}

func parseLetterHeader(header *etree.Element, letter *domain.Letter) {
	if titleStmt := findFirst(header, "titleStmt"); titleStmt != nil {
		if title := childByTag(titleStmt, "title"); title != nil {
			letter.Idno = ExtractText(childByTag(title, "idno"))
			if t := titleWithoutIdno(title); t != "" {
				letter.Title = t
			}
		}
		for _, ed := range childrenByTag(titleStmt, "editor") {
			letter.Editors = append(letter.Editors, parseEditor(ed))
		}
	}

	if correspDesc := findFirst(header, "correspDesc"); correspDesc != nil {
		letter.Sender = parseCorrespAction(childWithAttr(correspDesc, "correspAction", "type", "sent"))
		letter.Receiver = parseCorrespAction(childWithAttr(correspDesc, "correspAction", "type", "received"))
		letter.Note = ExtractText(childByTag(correspDesc, "note"))
	}

	if abstract := findFirst(header, "abstract"); abstract != nil {
		letter.Abstract = ExtractText(childByTag(abstract, "p"))
	}
	if msDesc := findFirst(header, "msDesc"); msDesc != nil {
		letter.ManuscriptStatus = attr(msDesc, "rend")
	}
	letter.Source = parseSource(findFirst(header, "sourceDesc"))
}

// titleWithoutIdno joins the title's own character data, leaving out
// nested elements such as the letter number.
func titleWithoutIdno(title *etree.Element) string {
	var parts []string
	for _, tok := range title.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			if s := strings.TrimSpace(cd.Data); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return CleanText(strings.Join(parts, " "))
}

func parseEditor(el *etree.Element) domain.Editor {
	surname := childByTag(el, "surname")
	forename := childByTag(el, "forename")
	var gnd string

	if persName := childByTag(el, "persName"); persName != nil {
		if surname == nil {
			surname = childByTag(persName, "surname")
		}
		if forename == nil {
			forename = childByTag(persName, "forename")
		}
		gnd = attr(persName, "ref")
	}

	return domain.Editor{
		Surname:  ExtractText(surname),
		Forename: ExtractText(forename),
		GND:      gnd,
	}
}

func parseCorrespAction(el *etree.Element) *domain.CorrespAction {
	if el == nil {
		return nil
	}
	persName := childByTag(el, "persName")
	placeName := childByTag(el, "placeName")
	date := childByTag(el, "date")

	return &domain.CorrespAction{
		PersonName: ExtractText(persName),
		PersonKey:  attr(persName, "key"),
		PlaceName:  ExtractText(placeName),
		PlaceKey:   attr(placeName, "key"),
		Date:       attr(date, "when"),
		DateCert:   attr(date, "cert"),
	}
}

func parseSource(el *etree.Element) *domain.SourceDesc {
	if el == nil {
		return nil
	}
	msIdent := findFirst(el, "msIdentifier")
	if msIdent == nil {
		return nil
	}
	return &domain.SourceDesc{
		Institution: ExtractText(childByTag(msIdent, "institution")),
		Repository:  ExtractText(childByTag(msIdent, "repository")),
		Collection:  ExtractText(childByTag(msIdent, "collection")),
		Idno:        ExtractText(childByTag(msIdent, "idno")),
	}
}

func letterBody(root *etree.Element) *etree.Element {
	text := findFirst(root, "text")
	if text == nil {
		return nil
	}
	return childByTag(text, "body")
}

// extractBodyContent splits the body into opener, paragraphs and closer.
// Multiple writing sessions are concatenated in document order.
func extractBodyContent(body *etree.Element) (opener, bodyText, closer string) {
	sessions := writingSessions(body)
	if len(sessions) == 0 {
		return "", ExtractText(body), ""
	}

	var openers, paragraphs, closers []string
	for _, session := range sessions {
		if o := ExtractText(childByTag(session, "opener")); o != "" {
			openers = append(openers, o)
		}
		for _, p := range childrenByTag(session, "p") {
			if t := ExtractText(p); t != "" {
				paragraphs = append(paragraphs, t)
			}
		}
		if c := ExtractText(childByTag(session, "closer")); c != "" {
			closers = append(closers, c)
		}
	}
	return strings.Join(openers, "\n\n"), strings.Join(paragraphs, "\n\n"), strings.Join(closers, "\n\n")
}

func writingSessions(body *etree.Element) []*etree.Element {
	var out []*etree.Element
	for _, div := range findAll(body, "div") {
		if div.SelectAttrValue("type", "") == "writingSession" {
			out = append(out, div)
		}
	}
	return out
}

// collectNameRefs gathers keyed name elements, first occurrence wins.
func collectNameRefs(body *etree.Element, tag string) []domain.NameRef {
	var refs []domain.NameRef
	seen := make(map[string]bool)
	for _, el := range findAll(body, tag) {
		key := el.SelectAttrValue("key", "")
		name := ExtractText(el)
		if key == "" || name == "" || seen[key] {
			continue
		}
		seen[key] = true
		refs = append(refs, domain.NameRef{ID: key, Name: name})
	}
	return refs
}

func collectEditorialNotes(body *etree.Element) []string {
	var notes []string
	for _, note := range findAll(body, "note") {
		if t := ExtractText(note); t != "" {
			notes = append(notes, t)
		}
	}
	return notes
}

func collectFacsimiles(body *etree.Element) []string {
	var urls []string
	for _, fig := range findAll(body, "figure") {
		if fig.SelectAttrValue("type", "") != "letter" {
			continue
		}
		if facs := fig.SelectAttrValue("facs", ""); facs != "" {
			urls = append(urls, facs)
		}
	}
	return urls
}
