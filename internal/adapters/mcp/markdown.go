package mcpadapter

import (
	"fmt"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// renderSearchResults formats full-text hits as a markdown list with
// KWIC snippets indented under each hit.
func renderSearchResults(results []domain.SearchResult) string {
	if len(results) == 0 {
		return "No matching documents."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Search results (%d)\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(&b, "%d. **%s** (`%s`", i+1, orUnknown(r.Title), r.DocumentID)
		if r.DocType != "" {
			fmt.Fprintf(&b, ", %s", r.DocType)
		}
		if r.Date != "" {
			fmt.Fprintf(&b, ", %s", r.Date)
		}
		b.WriteString(")\n")
		fmt.Fprintf(&b, "   %s\n", r.CitationURL)
		for _, snippet := range r.KWICSnippets {
			fmt.Fprintf(&b, "   > %s\n", snippet)
		}
	}
	return b.String()
}

func renderLetterSummaries(letters []domain.LetterSummary) string {
	if len(letters) == 0 {
		return "No letters match the given filters."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Letters (%d)\n\n", len(letters))
	for _, l := range letters {
		fmt.Fprintf(&b, "- **%s** (`%s`)", l.Title, l.ID)
		if l.Date != "" {
			fmt.Fprintf(&b, ", %s", l.Date)
		}
		if l.SendPlace != "" {
			fmt.Fprintf(&b, ", from %s", l.SendPlace)
		}
		fmt.Fprintf(&b, "\n  %s\n", l.CitationURL)
	}
	return b.String()
}

func renderRetrievedDocument(doc *domain.RetrievedDocument) string {
	if doc.Letter != nil {
		return renderLetter(doc.Letter)
	}
	if doc.Document != nil {
		return renderDocument(doc.Document)
	}
	return "Document could not be rendered."
}

func renderLetter(l *domain.Letter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orUnknown(l.Title))
	fmt.Fprintf(&b, "- ID: `%s`\n", l.ID)
	if l.Idno != "" {
		fmt.Fprintf(&b, "- Number: %s\n", l.Idno)
	}
	writeParty(&b, "Sender", l.Sender)
	writeParty(&b, "Receiver", l.Receiver)
	if l.ManuscriptStatus != "" {
		fmt.Fprintf(&b, "- Transmission: %s\n", l.ManuscriptStatus)
	}
	if l.Source != nil {
		parts := nonEmptyParts(l.Source.Institution, l.Source.Repository, l.Source.Collection, l.Source.Idno)
		if len(parts) > 0 {
			fmt.Fprintf(&b, "- Source: %s\n", strings.Join(parts, ", "))
		}
	}
	fmt.Fprintf(&b, "- Citation: %s\n", l.CitationURL)

	if l.Abstract != "" {
		fmt.Fprintf(&b, "\n## Abstract\n\n%s\n", l.Abstract)
	}
	if l.Opener != "" || l.BodyText != "" || l.Closer != "" {
		b.WriteString("\n## Text\n\n")
		for _, part := range nonEmptyParts(l.Opener, l.BodyText, l.Closer) {
			fmt.Fprintf(&b, "%s\n\n", part)
		}
	}
	if len(l.ReferencedPeople) > 0 {
		b.WriteString("\n## Persons mentioned\n\n")
		for _, ref := range l.ReferencedPeople {
			fmt.Fprintf(&b, "- %s (`%s`)\n", ref.Name, ref.ID)
		}
	}
	if len(l.ReferencedPlaces) > 0 {
		b.WriteString("\n## Places mentioned\n\n")
		for _, ref := range l.ReferencedPlaces {
			fmt.Fprintf(&b, "- %s (`%s`)\n", ref.Name, ref.ID)
		}
	}
	if len(l.EditorialNotes) > 0 {
		b.WriteString("\n## Editorial notes\n\n")
		for _, note := range l.EditorialNotes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}
	return b.String()
}

func renderDocument(d *domain.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orUnknown(d.Title))
	fmt.Fprintf(&b, "- ID: `%s`\n", d.ID)
	if d.DocType != "" {
		fmt.Fprintf(&b, "- Type: %s\n", d.DocType)
	}
	if d.Date != "" {
		fmt.Fprintf(&b, "- Date: %s\n", d.Date)
	}
	if d.Author != "" {
		fmt.Fprintf(&b, "- Author: %s\n", d.Author)
	}
	if d.URL != "" {
		fmt.Fprintf(&b, "- Citation: %s\n", d.URL)
	}
	if d.Abstract != "" {
		fmt.Fprintf(&b, "\n## Abstract\n\n%s\n", d.Abstract)
	}
	if d.Content != "" {
		fmt.Fprintf(&b, "\n## Text\n\n%s\n", d.Content)
	}
	return b.String()
}

func renderPassages(id string, passages []domain.Passage) string {
	if len(passages) == 0 {
		return fmt.Sprintf("No passages found in `%s`.", id)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Passages from `%s` (%d)\n\n", id, len(passages))
	for _, p := range passages {
		fmt.Fprintf(&b, "%d.", p.Position)
		if p.DivN != "" {
			fmt.Fprintf(&b, " [div %s]", p.DivN)
		}
		if p.PageN != "" {
			fmt.Fprintf(&b, " [p. %s]", p.PageN)
		}
		fmt.Fprintf(&b, " %s\n", p.Text)
		if p.Degraded {
			b.WriteString("   (snippet markup could not be fully parsed)\n")
		}
	}
	return b.String()
}

func renderRegisterHits(hits []domain.RegisterHit) string {
	if len(hits) == 0 {
		return "No register entries found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Register hits (%d)\n\n", len(hits))
	for i, h := range hits {
		fmt.Fprintf(&b, "%d. **%s** (`%s`", i+1, orUnknown(h.Title), h.ID)
		if h.DocType != "" {
			fmt.Fprintf(&b, ", %s", h.DocType)
		}
		b.WriteString(")\n")
		if h.Desc != "" {
			fmt.Fprintf(&b, "   %s\n", h.Desc)
		}
	}
	return b.String()
}

func renderRegisterEntry(entry *domain.RegisterEntry) string {
	switch entry.Kind {
	case domain.KindPerson:
		return renderPerson(entry.Person)
	case domain.KindPlace:
		return renderPlace(entry.Place, 1)
	case domain.KindWork:
		return renderWork(entry.Work)
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "# Register entry `%s`\n\nUnrecognized entry kind; raw record:\n\n```xml\n%s\n```\n", entry.ID, entry.RawXML)
		return b.String()
	}
}

func renderPerson(p *domain.PersonEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orUnknown(p.Name.FullName))
	fmt.Fprintf(&b, "- ID: `%s`\n", p.ID)
	if p.Birth != "" {
		fmt.Fprintf(&b, "- Born: %s\n", p.Birth)
	}
	if p.Death != "" {
		fmt.Fprintf(&b, "- Died: %s\n", p.Death)
	}
	if p.GND != "" {
		fmt.Fprintf(&b, "- GND: %s\n", p.GND)
	}
	if len(p.AlternativeNames) > 0 {
		b.WriteString("- Also known as:")
		for _, alt := range p.AlternativeNames {
			name := alt.FullName
			if alt.IsBirthname {
				name += " (birth name)"
			}
			fmt.Fprintf(&b, " %s;", name)
		}
		b.WriteString("\n")
	}
	if p.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Note)
	}
	return b.String()
}

func renderPlace(p *domain.PlaceEntry, depth int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", depth), orUnknown(p.Name))
	fmt.Fprintf(&b, "- ID: `%s`\n", p.ID)
	if p.AuthorityURI != "" {
		fmt.Fprintf(&b, "- Authority: %s\n", p.AuthorityURI)
	}
	if p.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Note)
	}
	for i := range p.SubPlaces {
		b.WriteString("\n")
		b.WriteString(renderPlace(&p.SubPlaces[i], depth+1))
	}
	return b.String()
}

func renderWork(w *domain.WorkEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orUnknown(w.Title))
	fmt.Fprintf(&b, "- ID: `%s`\n", w.ID)
	if w.Author != nil {
		name := strings.TrimSuffix(strings.TrimSpace(w.Author.Surname+", "+w.Author.Forename), ",")
		fmt.Fprintf(&b, "- Author: %s\n", strings.TrimSpace(name))
	}
	if w.Date != "" {
		fmt.Fprintf(&b, "- Date: %s\n", w.Date)
	}
	if w.PubPlace != "" {
		fmt.Fprintf(&b, "- Published: %s\n", w.PubPlace)
	}
	if w.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", w.Note)
	}
	return b.String()
}

func renderBiogram(bg *domain.Biogram) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orUnknown(bg.Name))
	fmt.Fprintf(&b, "- ID: `%s`\n", bg.ID)
	if bg.Gender != "" {
		fmt.Fprintf(&b, "- Gender: %s\n", bg.Gender)
	}
	if bg.Birth != "" {
		fmt.Fprintf(&b, "- Born: %s\n", bg.Birth)
	}
	if bg.Death != "" {
		fmt.Fprintf(&b, "- Died: %s\n", bg.Death)
	}
	if bg.Confession != "" {
		fmt.Fprintf(&b, "- Confession: %s\n", bg.Confession)
	}
	if bg.GND != "" {
		fmt.Fprintf(&b, "- GND: %s\n", bg.GND)
	}
	writeBiogramList(&b, "Court offices", bg.CourtOffices)
	writeBiogramList(&b, "Education", bg.Education)
	writeBiogramList(&b, "Military", bg.Military)
	writeBiogramList(&b, "Awards", bg.Awards)
	writeBiogramList(&b, "Property", bg.Property)
	if len(bg.Relations) > 0 {
		b.WriteString("\n## Family\n\n")
		for _, rel := range bg.Relations {
			fmt.Fprintf(&b, "- %s: %s\n", rel.Label, rel.Description)
		}
	}
	writeBiogramList(&b, "Notes", bg.Notes)
	return b.String()
}

func writeBiogramList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func renderMentions(id string, s *domain.MentionsSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Mentions of `%s`\n\n", id)
	if s.Correspondence != nil {
		fmt.Fprintf(&b, "Correspondence: %d letters sent, %d received (%d total)\n\n",
			s.Correspondence.LettersAsSender, s.Correspondence.LettersAsRecipient, s.Correspondence.TotalLetters)
	}
	writeMentionSection(&b, "Letters", s.Letters, s.TotalLetterMentions)
	writeMentionSection(&b, "Diaries", s.Diaries, s.TotalDiaryMentions)
	writeMentionSection(&b, "Lectures", s.Lectures, s.TotalLectureMentions)
	return b.String()
}

func writeMentionSection(b *strings.Builder, heading string, mentions []domain.DocumentMention, total int) {
	fmt.Fprintf(b, "## %s (%d)\n\n", heading, total)
	if len(mentions) == 0 {
		b.WriteString("none\n\n")
		return
	}
	for _, m := range mentions {
		fmt.Fprintf(b, "- `%s` %s", m.ID, m.Title)
		if m.Date != "" {
			fmt.Fprintf(b, " (%s)", m.Date)
		}
		if m.MentionType == domain.MentionComment {
			b.WriteString(" [commentary]")
		}
		b.WriteString("\n")
	}
	if total > len(mentions) {
		fmt.Fprintf(b, "… and %d more\n", total-len(mentions))
	}
	b.WriteString("\n")
}

func renderChronology(entries []domain.ChronologyEntry) string {
	if len(entries) == 0 {
		return "No chronology entries in the given range."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Chronology (%d entries)\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&b, "- **%s**", e.DateDisplay)
		if e.Cert != "" {
			fmt.Fprintf(&b, " (%s)", e.Cert)
		}
		fmt.Fprintf(&b, ": %s\n", e.Event)
	}
	return b.String()
}

func renderChronologyYear(y *domain.ChronologyYear) string {
	var b strings.Builder
	heading := y.Heading
	if heading == "" {
		heading = fmt.Sprintf("Chronology %d", y.Year)
	}
	fmt.Fprintf(&b, "# %s\n\n", heading)
	if len(y.Entries) == 0 {
		b.WriteString("No entries recorded for this year.\n")
		return b.String()
	}
	for _, e := range y.Entries {
		fmt.Fprintf(&b, "- **%s**: %s\n", e.DateDisplay, e.Event)
	}
	return b.String()
}

func renderDiaryEntry(e *domain.DiaryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Calendar entry %s\n\n", e.Date)
	if e.LeftSide != "" {
		fmt.Fprintf(&b, "## Calendar page\n\n%s\n\n", e.LeftSide)
	}
	if e.RightSide != "" {
		fmt.Fprintf(&b, "## Notes page\n\n%s\n", e.RightSide)
	}
	if e.LeftSide == "" && e.RightSide == "" {
		b.WriteString("The entry for this day is empty.\n")
	}
	return b.String()
}

func renderCorrespondentStats(stats []domain.CorrespondentStat) string {
	if len(stats) == 0 {
		return "No correspondents found."
	}
	var b strings.Builder
	b.WriteString("# Correspondents\n\n")
	b.WriteString("| Person | Sent | Received | Total |\n|---|---|---|---|\n")
	for _, s := range stats {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d |\n", s.PersonID, s.LettersSent, s.LettersReceived, s.Total)
	}
	return b.String()
}

func renderCollection(c *domain.CollectionContents) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Path)
	fmt.Fprintf(&b, "## Subcollections (%d)\n\n", len(c.Subcollections))
	for _, sub := range c.Subcollections {
		fmt.Fprintf(&b, "- %s/\n", sub)
	}
	fmt.Fprintf(&b, "\n## Resources (%d)\n\n", len(c.Files))
	for _, f := range c.Files {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return b.String()
}

func renderStoreStatus(s *domain.StoreStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Store status: %s\n\n", s.Status)
	fmt.Fprintf(&b, "- Base URL: %s\n", s.BaseURL)
	fmt.Fprintf(&b, "- App path: %s\n", s.AppPath)
	fmt.Fprintf(&b, "- Data path: %s\n", s.DataPath)
	if s.Version != "" {
		fmt.Fprintf(&b, "- Version: %s\n", s.Version)
	}
	if s.Error != "" {
		fmt.Fprintf(&b, "- Error: %s\n", s.Error)
	}
	return b.String()
}

func writeParty(b *strings.Builder, role string, action *domain.CorrespAction) {
	if action == nil {
		return
	}
	parts := nonEmptyParts(action.PersonName)
	if action.PlaceName != "" {
		parts = append(parts, action.PlaceName)
	}
	if action.Date != "" {
		date := action.Date
		if action.DateCert != "" {
			date += " (" + action.DateCert + ")"
		}
		parts = append(parts, date)
	}
	if len(parts) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", role, strings.Join(parts, ", "))
}

func nonEmptyParts(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
