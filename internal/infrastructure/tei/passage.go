package tei

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// ParsePassages reads <passage> fragments into located excerpts.
// Positions keep the encounter order of the source document.
func ParsePassages(xml string) ([]domain.Passage, error) {
	root, err := ParseFragments("parse passages", xml)
	if err != nil {
		return nil, err
	}

	var passages []domain.Passage
	for _, el := range findAll(root, "passage") {
		position := childByTag(el, "position")
		text := childByTag(el, "text")
		if position == nil || text == nil {
			continue
		}

		passage := domain.Passage{
			DivN:  ExtractText(childByTag(el, "div_n")),
			PageN: ExtractText(childByTag(el, "page_n")),
		}
		passage.Position, _ = strconv.Atoi(ExtractText(position))
		if paraNum := ExtractText(childByTag(el, "para_num")); paraNum != "" {
			passage.ParaNum, _ = strconv.Atoi(paraNum)
		}
		passage.Text, passage.Degraded = passageText(text)
		passages = append(passages, passage)
	}
	return passages, nil
}

// passageText prefers the KWIC rendering when the text element carries
// markup, falling back to plain character data.
func passageText(text *etree.Element) (string, bool) {
	if len(text.ChildElements()) > 0 {
		inner := etree.NewDocument()
		inner.SetRoot(text.Copy())
		if serialized, err := inner.WriteToString(); err == nil {
			snippets, degraded := ParseKWIC(serialized)
			if len(snippets) > 0 {
				return strings.Join(snippets, " ... "), degraded
			}
		}
	}
	return CleanText(allText(text)), false
}
