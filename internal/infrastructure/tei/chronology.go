package tei

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// ParseChronologyItems reads chronology <item> fragments. Items without
// a date element are dropped; the event text is the item text with the
// leading date display removed.
func ParseChronologyItems(xml string) ([]domain.ChronologyEntry, error) {
	root, err := ParseFragments("parse chronology", xml)
	if err != nil {
		return nil, err
	}
	return chronologyItems(root), nil
}

// ParseChronologyYear reads the full chronology document of one year,
// heading included.
func ParseChronologyYear(year int, xml string) (*domain.ChronologyYear, error) {
	root, err := ParseFragments("parse chronology year", xml)
	if err != nil {
		return nil, err
	}
	return &domain.ChronologyYear{
		Year:    year,
		Heading: ExtractText(findFirst(root, "head")),
		Entries: chronologyItems(root),
	}, nil
}

func chronologyItems(root *etree.Element) []domain.ChronologyEntry {
	var entries []domain.ChronologyEntry
	for _, item := range findAll(root, "item") {
		date := findFirst(item, "date")
		if date == nil {
			continue
		}

		dateDisplay := ExtractText(date)
		event := ExtractText(item)
		if dateDisplay != "" && strings.HasPrefix(event, dateDisplay) {
			event = strings.TrimSpace(strings.TrimPrefix(event, dateDisplay))
		}

		entries = append(entries, domain.ChronologyEntry{
			DateDisplay: dateDisplay,
			When:        attr(date, "when"),
			NotBefore:   attr(date, "notBefore"),
			NotAfter:    attr(date, "notAfter"),
			Cert:        attr(date, "cert"),
			Event:       event,
		})
	}
	return entries
}

// ParseDiaryEntry reads one Tageskalender day, split into the left
// (calendar) and right (notes) page sides.
func ParseDiaryEntry(date, xml string) (*domain.DiaryEntry, error) {
	root, err := ParseFragments("parse diary entry", xml)
	if err != nil {
		return nil, err
	}

	day := diaryDay(root)
	if day == nil {
		return nil, domain.WrapError(domain.ErrNotFound, "parse diary entry", errEmptyDocument)
	}

	entry := &domain.DiaryEntry{Date: date, XML: xml}
	entry.LeftSide = diarySideText(day, "linke_seite", date)
	entry.RightSide = diarySideText(day, "rechte_seite", date)
	return entry, nil
}

func diaryDay(root *etree.Element) *etree.Element {
	for _, div := range findAll(root, "div") {
		if div.SelectAttrValue("type", "") == "tag" {
			return div
		}
	}
	return nil
}

func diarySideText(day *etree.Element, side, fallbackDate string) string {
	div := childWithAttr(day, "div", "type", side)
	if div == nil {
		for _, d := range findAll(day, "div") {
			if d.SelectAttrValue("type", "") == side {
				div = d
				break
			}
		}
	}
	if div == nil {
		return ""
	}

	text := ExtractText(div)
	dateDisplay := fallbackDate
	for _, d := range findAll(div, "date") {
		if d.SelectAttrValue("type", "") == "tageseintrag" {
			if t := ExtractText(d); t != "" {
				dateDisplay = t
			}
			break
		}
	}
	if dateDisplay != "" && strings.HasPrefix(text, dateDisplay) {
		text = strings.TrimSpace(strings.TrimPrefix(text, dateDisplay))
	}
	return text
}
