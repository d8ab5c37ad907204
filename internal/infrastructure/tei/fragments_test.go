package tei

import (
	"testing"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

func TestParseRegisterHits(t *testing.T) {
	xml := `<hit id="p0001" kind="person"><name>Schleiermacher, Friedrich</name></hit>
<hit id="o0042" kind="place"><name>  Berlin </name></hit>
<hit id="" kind="person"><name>anonymous</name></hit>`

	hits, err := ParseRegisterHits(xml)
	if err != nil {
		t.Fatalf("ParseRegisterHits() error = %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("len(hits) = %d, want 2", len(hits))
	}
	if hits[0].ID != "p0001" || hits[0].Title != "Schleiermacher, Friedrich" || hits[0].DocType != "person" {
		t.Fatalf("hits[0] = %+v", hits[0])
	}
	if hits[1].Title != "Berlin" {
		t.Fatalf("hits[1].Title = %q", hits[1].Title)
	}
}

func TestParseRegisterHitsEmptyInput(t *testing.T) {
	hits, err := ParseRegisterHits("")
	if err != nil {
		t.Fatalf("ParseRegisterHits() error = %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("len(hits) = %d, want 0", len(hits))
	}
}

func TestParseMentions(t *testing.T) {
	xml := `<mention id="3413a"><title>An Reimer</title><date>1808-03-12</date><intext>true</intext></mention>
<mention id="3500"><title>Von Boeckh</title><date/><intext>false</intext></mention>`

	mentions, err := ParseMentions("Brief", xml)
	if err != nil {
		t.Fatalf("ParseMentions() error = %v", err)
	}
	if len(mentions) != 2 {
		t.Fatalf("len(mentions) = %d, want 2", len(mentions))
	}
	if mentions[0].MentionType != domain.MentionText {
		t.Fatalf("mentions[0].MentionType = %q", mentions[0].MentionType)
	}
	if mentions[1].MentionType != domain.MentionComment {
		t.Fatalf("mentions[1].MentionType = %q", mentions[1].MentionType)
	}
	if mentions[0].DocType != "Brief" || mentions[0].Date != "1808-03-12" {
		t.Fatalf("mentions[0] = %+v", mentions[0])
	}
}

func TestParseCorrespondentCounts(t *testing.T) {
	xml := `<correspondent ref="p0001" count="12"/>
<correspondent ref="p0002" count="7"/>
<correspondent ref="p0003" count="oops"/>
<correspondent ref="" count="3"/>`

	counts, order, err := ParseCorrespondentCounts(xml)
	if err != nil {
		t.Fatalf("ParseCorrespondentCounts() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("len(counts) = %d, want 2", len(counts))
	}
	if counts["p0001"] != 12 || counts["p0002"] != 7 {
		t.Fatalf("counts = %v", counts)
	}
	if len(order) != 2 || order[0] != "p0001" || order[1] != "p0002" {
		t.Fatalf("order = %v", order)
	}
}
