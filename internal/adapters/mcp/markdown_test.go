package mcpadapter

import (
	"strings"
	"testing"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

func TestRenderSearchResults(t *testing.T) {
	out := renderSearchResults([]domain.SearchResult{
		{
			DocumentID:   "3413a",
			Title:        "Brief: Schleiermacher an Reimer",
			DocType:      "Brief",
			Date:         "1808-03-14",
			KWICSnippets: []string{"... die **Akademie** betreffend ..."},
			CitationURL:  "https://schleiermacher-digital.de/3413a",
		},
	})
	for _, want := range []string{
		"# Search results (1)",
		"**Brief: Schleiermacher an Reimer** (`3413a`, Brief, 1808-03-14)",
		"> ... die **Akademie** betreffend ...",
		"https://schleiermacher-digital.de/3413a",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSearchResultsEmpty(t *testing.T) {
	if got := renderSearchResults(nil); got != "No matching documents." {
		t.Errorf("got %q", got)
	}
}

func TestRenderRegisterHits(t *testing.T) {
	out := renderRegisterHits([]domain.RegisterHit{
		{ID: "p0001", Title: "Boeckh, August", DocType: "person", Desc: "Philologe"},
		{ID: "l0042", Title: ""},
	})
	for _, want := range []string{
		"1. **Boeckh, August** (`p0001`, person)",
		"   Philologe",
		"2. **Unknown** (`l0042`)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRetrievedDocumentDispatch(t *testing.T) {
	letter := renderRetrievedDocument(&domain.RetrievedDocument{
		DocType: "Brief",
		Letter:  &domain.Letter{ID: "3413a", Title: "Brief an Reimer"},
	})
	if !strings.Contains(letter, "# Brief an Reimer") {
		t.Errorf("letter not rendered:\n%s", letter)
	}

	generic := renderRetrievedDocument(&domain.RetrievedDocument{
		DocType:  "Vorlesung",
		Document: &domain.Document{ID: "v001", Title: "Dialektik", DocType: "Vorlesung"},
	})
	if !strings.Contains(generic, "- Type: Vorlesung") {
		t.Errorf("document not rendered:\n%s", generic)
	}
}

func TestRenderPassagesDegradedNote(t *testing.T) {
	out := renderPassages("3413a", []domain.Passage{
		{Position: 1, DivN: "2", Text: "erster Fund"},
		{Position: 2, Text: "zweiter Fund", Degraded: true},
	})
	if !strings.Contains(out, "1. [div 2] erster Fund") {
		t.Errorf("missing located passage:\n%s", out)
	}
	if !strings.Contains(out, "(snippet markup could not be fully parsed)") {
		t.Errorf("missing degraded note:\n%s", out)
	}
}

func TestRenderPlaceNestsSubPlaces(t *testing.T) {
	out := renderPlace(&domain.PlaceEntry{
		ID:   "l0001",
		Name: "Berlin",
		SubPlaces: []domain.PlaceEntry{
			{ID: "l0002", Name: "Charité"},
		},
	}, 1)
	if !strings.Contains(out, "# Berlin") {
		t.Errorf("missing top heading:\n%s", out)
	}
	if !strings.Contains(out, "## Charité") {
		t.Errorf("sub place not nested one level deeper:\n%s", out)
	}
}

func TestRenderBiogram(t *testing.T) {
	out := renderBiogram(&domain.Biogram{
		ID:    "P123",
		Name:  "Alvensleben, Philipp Karl Graf von",
		Birth: "1745",
		Death: "1802",
		CourtOffices: []string{
			"Kabinettsminister",
		},
		Relations: []domain.FamilyRelation{
			{Kind: domain.RelationParent, Label: "father", Description: "Johann Friedrich Karl von Alvensleben"},
		},
	})
	for _, want := range []string{
		"# Alvensleben, Philipp Karl Graf von",
		"- Born: 1745",
		"## Court offices",
		"- Kabinettsminister",
		"## Family",
		"- father: Johann Friedrich Karl von Alvensleben",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderChronologyYearFallbackHeading(t *testing.T) {
	out := renderChronologyYear(&domain.ChronologyYear{Year: 1808})
	if !strings.Contains(out, "# Chronology 1808") {
		t.Errorf("missing fallback heading:\n%s", out)
	}
	if !strings.Contains(out, "No entries recorded for this year.") {
		t.Errorf("missing empty note:\n%s", out)
	}
}

func TestRenderMentionsOverflowAndCommentary(t *testing.T) {
	out := renderMentions("p0001", &domain.MentionsSummary{
		Correspondence: &domain.CorrespondenceSummary{
			LettersAsSender:    2,
			LettersAsRecipient: 3,
			TotalLetters:       5,
		},
		Letters: []domain.DocumentMention{
			{ID: "3413a", Title: "Brief an Reimer", Date: "1808-03-14", MentionType: domain.MentionText},
			{ID: "3414", Title: "Brief an Gass", MentionType: domain.MentionComment},
		},
		TotalLetterMentions:  7,
		Diaries:              nil,
		TotalDiaryMentions:   0,
		Lectures:             nil,
		TotalLectureMentions: 0,
	})
	for _, want := range []string{
		"Correspondence: 2 letters sent, 3 received (5 total)",
		"## Letters (7)",
		"- `3413a` Brief an Reimer (1808-03-14)",
		"- `3414` Brief an Gass [commentary]",
		"… and 5 more",
		"## Diaries (0)",
		"none",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCorrespondentStatsTable(t *testing.T) {
	out := renderCorrespondentStats([]domain.CorrespondentStat{
		{PersonID: "p0001", LettersSent: 4, LettersReceived: 6, Total: 10},
	})
	if !strings.Contains(out, "| Person | Sent | Received | Total |") {
		t.Errorf("missing table header:\n%s", out)
	}
	if !strings.Contains(out, "| `p0001` | 4 | 6 | 10 |") {
		t.Errorf("missing stat row:\n%s", out)
	}
}

func TestRenderStoreStatusIncludesError(t *testing.T) {
	out := renderStoreStatus(&domain.StoreStatus{
		Status:   "unreachable",
		BaseURL:  "http://localhost:8080",
		AppPath:  "/db/apps/sd",
		DataPath: "/db/projects/sd/data",
		Error:    "connection refused",
	})
	if !strings.Contains(out, "# Store status: unreachable") {
		t.Errorf("missing status heading:\n%s", out)
	}
	if !strings.Contains(out, "- Error: connection refused") {
		t.Errorf("missing error line:\n%s", out)
	}
}

func TestSplitTerms(t *testing.T) {
	got := splitTerms("  Akademie   Platon ", " ")
	if len(got) != 2 || got[0] != "Akademie" || got[1] != "Platon" {
		t.Errorf("got %v", got)
	}
	if splitTerms("", ",") != nil {
		t.Errorf("empty input should yield nil")
	}
}
