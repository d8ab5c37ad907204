// Package tei parses TEI-encoded XML fragments returned by the document
// store into typed records.
package tei

import (
	"errors"
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	errEmptyDocument = errors.New("empty document")
)

// CleanText collapses whitespace runs, including newlines, to single
// spaces and trims the result.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// ExtractText renders the readable text of a TEI element.
//
// Exclusion policy: editorial notes, index markers, uncorrected variants
// (sic) and comment segments are skipped; within a choice only the corr
// branch is taken; processing instructions are dropped. This decides what
// text a citation claims a document says, so it must stay stable.
func ExtractText(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	collectText(el, &b)
	return CleanText(b.String())
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch node := tok.(type) {
		case *etree.CharData:
			b.WriteString(node.Data)
		case *etree.Element:
			if skipElement(node) {
				continue
			}
			if node.Tag == "choice" {
				if corr := childByTag(node, "corr"); corr != nil {
					collectText(corr, b)
				}
				continue
			}
			collectText(node, b)
		}
	}
}

func skipElement(el *etree.Element) bool {
	switch el.Tag {
	case "note", "index", "sic":
		return true
	case "seg":
		return el.SelectAttrValue("type", "") == "comment"
	}
	return false
}

// Parse reads one XML fragment into an element tree.
func Parse(operation, xml string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, domain.NewParsePayloadError(operation, xml, err)
	}
	if doc.Root() == nil {
		return nil, domain.NewParsePayloadError(operation, xml, errEmptyDocument)
	}
	return doc, nil
}

// ParseFragments wraps possibly-multiple sibling fragments in a synthetic
// root so they parse as one document.
func ParseFragments(operation, xml string) (*etree.Element, error) {
	doc, err := Parse(operation, "<fragments>"+xml+"</fragments>")
	if err != nil {
		return nil, err
	}
	return doc.Root(), nil
}

// DocType reads the telota:doctype marker from a TEI root element.
func DocType(xml string) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return ""
	}
	root := doc.Root()
	if root == nil {
		return ""
	}
	return root.SelectAttrValue("telota:doctype", "")
}

// childByTag returns the first direct child with the given local tag.
func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// childrenByTag returns all direct children with the given local tag.
func childrenByTag(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			out = append(out, child)
		}
	}
	return out
}

// findFirst returns the first descendant with the given local tag, in
// document order.
func findFirst(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
		if found := findFirst(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant with the given local tag, in document
// order.
func findAll(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if child.Tag == tag {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(el)
	return out
}

// childWithAttr returns the first direct child with the tag whose
// attribute has the given value.
func childWithAttr(el *etree.Element, tag, attr, value string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag && child.SelectAttrValue(attr, "") == value {
			return child
		}
	}
	return nil
}

// attr reads an attribute, tolerating a nil element.
func attr(el *etree.Element, key string) string {
	if el == nil {
		return ""
	}
	return el.SelectAttrValue(key, "")
}
