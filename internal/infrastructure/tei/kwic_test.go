package tei

import (
	"strings"
	"testing"
)

func TestParseKWICHighlighting(t *testing.T) {
	xml := `<p><span class="previous">über die </span><span class="hi">Dialektik</span><span class="following"> gesprochen</span></p>`

	snippets, degraded := ParseKWIC(xml)
	if degraded {
		t.Fatal("unexpected degraded parse")
	}
	if len(snippets) != 1 {
		t.Fatalf("snippets %v", snippets)
	}
	if snippets[0] != "über die **Dialektik** gesprochen" {
		t.Errorf("snippet %q", snippets[0])
	}
}

func TestParseKWICMultipleParagraphs(t *testing.T) {
	xml := `<p><span class="hi">eins</span></p><p><span class="hi">zwei</span></p>`

	snippets, degraded := ParseKWIC(xml)
	if degraded || len(snippets) != 2 {
		t.Fatalf("snippets %v degraded %v", snippets, degraded)
	}
}

func TestParseKWICDegradesOnMalformedXML(t *testing.T) {
	snippets, degraded := ParseKWIC(`<p><span class="hi">kaputt</p>`)
	if !degraded {
		t.Fatal("expected degraded flag")
	}
	if len(snippets) != 1 || !strings.Contains(snippets[0], "kaputt") {
		t.Errorf("fallback lost content: %v", snippets)
	}
	if strings.Contains(snippets[0], "<") {
		t.Errorf("tags not stripped: %q", snippets[0])
	}
}

func TestParseKWICEmptyInput(t *testing.T) {
	snippets, degraded := ParseKWIC("  ")
	if snippets != nil || degraded {
		t.Errorf("expected no snippets, got %v degraded %v", snippets, degraded)
	}
}

func TestStripTags(t *testing.T) {
	if got := StripTags(`<p>a <b>b</b> c</p>`); got != "a b c" {
		t.Errorf("got %q", got)
	}
}
