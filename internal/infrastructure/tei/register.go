package tei

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// ParseRegisterEntry dispatches on the discriminant fetched from the
// store's index. Unknown kinds keep the raw XML instead of failing.
func ParseRegisterEntry(id string, kind domain.RegisterKind, xml string) (*domain.RegisterEntry, error) {
	entry := &domain.RegisterEntry{ID: id, Kind: kind}

	switch kind {
	case domain.KindPerson:
		person, err := ParsePerson(id, xml)
		if err != nil {
			return nil, err
		}
		entry.Person = person
	case domain.KindPlace:
		place, err := ParsePlace(id, xml)
		if err != nil {
			return nil, err
		}
		entry.Place = place
	case domain.KindWork:
		work, err := ParseWork(id, xml)
		if err != nil {
			return nil, err
		}
		entry.Work = work
	default:
		entry.Kind = domain.KindRaw
		entry.RawXML = xml
	}
	return entry, nil
}

// ParsePerson reads a person register entry.
func ParsePerson(id, xml string) (*domain.PersonEntry, error) {
	doc, err := Parse("parse person", xml)
	if err != nil {
		return nil, err
	}
	root := doc.Root()

	person := &domain.PersonEntry{ID: id}
	person.Name = parsePersonName(personNameByType(root, "reg"))
	for _, alt := range personNamesByType(root, "alt") {
		person.AlternativeNames = append(person.AlternativeNames, parseAlternativeName(alt))
	}

	person.Birth = ExtractText(findFirst(root, "birth"))
	person.Death = ExtractText(findFirst(root, "death"))
	person.Note = ExtractText(findFirst(root, "note"))
	person.GND = attr(root, "corresp")
	if person.GND == "" {
		if idno := idnoByType(root, "uri"); idno != nil {
			person.GND = ExtractText(idno)
		}
	}
	return person, nil
}

func personNameByType(root *etree.Element, typ string) *etree.Element {
	for _, el := range findAll(root, "persName") {
		if el.SelectAttrValue("type", "") == typ {
			return el
		}
	}
	return nil
}

func personNamesByType(root *etree.Element, typ string) []*etree.Element {
	var out []*etree.Element
	for _, el := range findAll(root, "persName") {
		if el.SelectAttrValue("type", "") == typ {
			out = append(out, el)
		}
	}
	return out
}

func idnoByType(root *etree.Element, typ string) *etree.Element {
	for _, el := range findAll(root, "idno") {
		if el.SelectAttrValue("type", "") == typ {
			return el
		}
	}
	return nil
}

func parsePersonName(el *etree.Element) domain.PersonName {
	if el == nil {
		return domain.PersonName{FullName: "Unknown"}
	}
	surname := ExtractText(childByTag(el, "surname"))
	forename := ExtractText(childByTag(el, "forename"))

	full := strings.Trim(surname+", "+forename, ", ")
	if full == "" {
		full = ExtractText(el)
	}
	if full == "" {
		full = "Unknown"
	}
	return domain.PersonName{Surname: surname, Forename: forename, FullName: full}
}

func parseAlternativeName(el *etree.Element) domain.AlternativeName {
	name := parsePersonName(el)
	return domain.AlternativeName{
		Surname:     name.Surname,
		Forename:    name.Forename,
		FullName:    name.FullName,
		IsBirthname: el.SelectAttrValue("subtype", "") == "birth",
	}
}

// ParsePlace reads a place register entry, including nested sub-places.
func ParsePlace(id, xml string) (*domain.PlaceEntry, error) {
	doc, err := Parse("parse place", xml)
	if err != nil {
		return nil, err
	}
	return parsePlaceElement(doc.Root(), id), nil
}

func parsePlaceElement(el *etree.Element, id string) *domain.PlaceEntry {
	place := &domain.PlaceEntry{
		ID:        id,
		Name:      "Unknown",
		PlaceType: attr(el, "type"),
	}

	for _, pn := range childrenByTag(el, "placeName") {
		switch pn.SelectAttrValue("type", "") {
		case "reg":
			if name := ExtractText(pn); name != "" {
				place.Name = name
			}
		case "alt":
			if name := ExtractText(pn); name != "" {
				place.AlternativeNames = append(place.AlternativeNames, name)
			}
		}
	}
	if idno := childWithAttr(el, "idno", "type", "uri"); idno != nil {
		place.AuthorityURI = ExtractText(idno)
	}
	place.Note = ExtractText(childByTag(el, "note"))

	for _, list := range childrenByTag(el, "listPlace") {
		for _, sub := range childrenByTag(list, "place") {
			subEntry := parsePlaceElement(sub, sub.SelectAttrValue("xml:id", ""))
			place.SubPlaces = append(place.SubPlaces, *subEntry)
		}
	}
	return place
}

// ParseWork reads a bibliographic register entry.
func ParseWork(id, xml string) (*domain.WorkEntry, error) {
	doc, err := Parse("parse work", xml)
	if err != nil {
		return nil, err
	}
	root := doc.Root()

	work := &domain.WorkEntry{ID: id, Title: "Unknown"}
	if title := findFirst(root, "title"); title != nil {
		if t := ExtractText(title); t != "" {
			work.Title = t
		}
	}
	if author := findFirst(root, "author"); author != nil {
		if persName := childByTag(author, "persName"); persName != nil {
			work.Author = &domain.WorkAuthor{
				Key:      attr(persName, "key"),
				Surname:  ExtractText(childByTag(persName, "surname")),
				Forename: ExtractText(childByTag(persName, "forename")),
			}
		}
	}
	work.Date = ExtractText(findFirst(root, "date"))
	if pubPlace := findFirst(root, "pubPlace"); pubPlace != nil {
		work.PubPlace = ExtractText(pubPlace)
		work.PubPlaceKey = attr(pubPlace, "key")
	}
	work.Note = ExtractText(findFirst(root, "note"))
	return work, nil
}
