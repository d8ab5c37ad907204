package tei

import (
	"strconv"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// ParseRegisterHits converts <hit> fragments from a register name search.
func ParseRegisterHits(xml string) ([]domain.RegisterHit, error) {
	root, err := ParseFragments("parse register hits", xml)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}

	var hits []domain.RegisterHit
	for _, el := range findAll(root, "hit") {
		id := attr(el, "id")
		if id == "" {
			continue
		}
		hits = append(hits, domain.RegisterHit{
			ID:      id,
			Title:   CleanText(allText(childByTag(el, "name"))),
			DocType: attr(el, "kind"),
		})
	}
	return hits, nil
}

// ParseMentions converts <mention> fragments from a mention scan. The
// docType tags every mention with the corpus the scan covered. A mention
// counts as in-text only when at least one reference sits outside notes
// and editorial comments.
func ParseMentions(docType, xml string) ([]domain.DocumentMention, error) {
	root, err := ParseFragments("parse mentions", xml)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}

	var mentions []domain.DocumentMention
	for _, el := range findAll(root, "mention") {
		id := attr(el, "id")
		if id == "" {
			continue
		}
		mentionType := domain.MentionComment
		if CleanText(allText(childByTag(el, "intext"))) == "true" {
			mentionType = domain.MentionText
		}
		mentions = append(mentions, domain.DocumentMention{
			ID:          id,
			Title:       CleanText(allText(childByTag(el, "title"))),
			Date:        CleanText(allText(childByTag(el, "date"))),
			DocType:     docType,
			MentionType: mentionType,
		})
	}
	return mentions, nil
}

// ParseCorrespondentCounts converts <correspondent> fragments from a
// per-direction aggregation query. Order of the input is preserved.
func ParseCorrespondentCounts(xml string) (map[string]int, []string, error) {
	root, err := ParseFragments("parse correspondent counts", xml)
	if err != nil {
		return nil, nil, err
	}
	counts := make(map[string]int)
	var order []string
	if root == nil {
		return counts, order, nil
	}

	for _, el := range findAll(root, "correspondent") {
		ref := attr(el, "ref")
		if ref == "" {
			continue
		}
		n, err := strconv.Atoi(attr(el, "count"))
		if err != nil {
			continue
		}
		if _, seen := counts[ref]; !seen {
			order = append(order, ref)
		}
		counts[ref] += n
	}
	return counts, order, nil
}
