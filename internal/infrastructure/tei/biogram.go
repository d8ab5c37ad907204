package tei

import (
	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// ParseBiogram reads a biographical dossier document.
func ParseBiogram(id, xml string) (*domain.Biogram, error) {
	doc, err := Parse("parse biogram", xml)
	if err != nil {
		return nil, err
	}
	root := doc.Root()

	biogram := &domain.Biogram{
		ID:           id,
		Title:        ExtractText(findFirst(root, "title")),
		Name:         divText(root, "name"),
		Gender:       divText(root, "gender"),
		Birth:        divText(root, "birth"),
		Death:        divText(root, "death"),
		Confession:   divText(root, "confession"),
		GND:          divText(root, "gnd"),
		Property:     divItems(root, "property"),
		CourtOffices: divItems(root, "court-office"),
		Education:    divItems(root, "education"),
		Military:     divItems(root, "military"),
		Awards:       divItems(root, "awards"),
		Notes:        divItems(root, "notes"),
	}

	if relatives := divByType(root, "relatives"); relatives != nil {
		for _, rel := range findAll(relatives, "relation") {
			desc := ExtractText(findFirst(rel, "desc"))
			if desc == "" {
				continue
			}
			label := rel.SelectAttrValue("name", "unknown")
			biogram.Relations = append(biogram.Relations, domain.FamilyRelation{
				Kind:        domain.ClassifyRelation(label),
				Label:       label,
				Description: desc,
			})
		}
	}
	return biogram, nil
}

func divByType(root *etree.Element, typ string) *etree.Element {
	for _, div := range findAll(root, "div") {
		if div.SelectAttrValue("type", "") == typ {
			return div
		}
	}
	return nil
}

func divText(root *etree.Element, typ string) string {
	return ExtractText(divByType(root, typ))
}

func divItems(root *etree.Element, typ string) []string {
	div := divByType(root, typ)
	if div == nil {
		return nil
	}
	var items []string
	for _, item := range findAll(div, "item") {
		if t := ExtractText(item); t != "" {
			items = append(items, t)
		}
	}
	return items
}
