package tei

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// ParseKWIC extracts readable snippets from a kwic:summarize payload.
// Highlight spans (class="hi") are wrapped in double asterisks. When the
// payload does not parse as XML the text degrades to tag stripping; the
// degraded flag tells the caller the highlighting was lost.
func ParseKWIC(kwicXML string) (snippets []string, degraded bool) {
	if strings.TrimSpace(kwicXML) == "" {
		return nil, false
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString("<kwicroot>" + kwicXML + "</kwicroot>"); err != nil {
		if stripped := StripTags(kwicXML); stripped != "" {
			return []string{stripped}, true
		}
		return nil, true
	}

	for _, p := range findAll(doc.Root(), "p") {
		var b strings.Builder
		for _, span := range findAll(p, "span") {
			text := allText(span)
			if span.SelectAttrValue("class", "") == "hi" {
				b.WriteString("**" + text + "**")
			} else {
				b.WriteString(text)
			}
		}
		if snippet := CleanText(b.String()); snippet != "" {
			snippets = append(snippets, snippet)
		}
	}
	return snippets, false
}

// allText concatenates every text node under an element, with no
// exclusion policy; KWIC payloads are already plain display text.
func allText(el *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch node := tok.(type) {
			case *etree.CharData:
				b.WriteString(node.Data)
			case *etree.Element:
				walk(node)
			}
		}
	}
	walk(el)
	return b.String()
}

// StripTags removes markup from a malformed payload, keeping text content.
func StripTags(markup string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.WriteString(tokenizer.Token().Data)
			b.WriteString(" ")
		}
	}
	return CleanText(b.String())
}
