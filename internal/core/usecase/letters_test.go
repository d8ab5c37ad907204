package usecase

import (
	"context"
	"testing"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

func snapshotEntries() []domain.LetterCacheEntry {
	return []domain.LetterCacheEntry{
		{
			ID:       "L1",
			Sender:   domain.PartyList{{SenderName: "Schleiermacher", SenderRef: "S1"}},
			Receiver: domain.PartyList{{ReceiverName: "Reimer", ReceiverRef: "S4"}},
			DateISO:  "1808-03-12",
		},
		{
			ID:       "L2",
			Sender:   domain.PartyList{{SenderName: "Boeckh", SenderRef: "S2"}},
			Receiver: domain.PartyList{{ReceiverName: "Schleiermacher", ReceiverRef: "S1"}},
			DateISO:  "1821-06-02",
		},
	}
}

func TestFilterLettersRequiresAtLeastOneFilter(t *testing.T) {
	cache := &fakeLetterCache{entries: snapshotEntries()}
	uc := NewLetterUseCase(cache, &fakeBackend{})

	_, err := uc.FilterLetters(context.Background(), domain.LetterFilter{})
	if !domain.IsKind(err, domain.ErrInvalidRequest) {
		t.Fatalf("error = %v, want ErrInvalidRequest", err)
	}
	if cache.calls != 0 {
		t.Fatalf("cache loaded %d times for rejected request", cache.calls)
	}
}

func TestFilterLettersUsesOnlyTheCache(t *testing.T) {
	cache := &fakeLetterCache{entries: snapshotEntries()}
	backend := &fakeBackend{correspondentsFn: func(string, string) (map[string]int, []string, error) {
		t.Fatal("store must not be queried for cache filtering")
		return nil, nil, nil
	}}
	uc := NewLetterUseCase(cache, backend)

	results, err := uc.FilterLetters(context.Background(), domain.LetterFilter{Sender: "S2"})
	if err != nil {
		t.Fatalf("FilterLetters() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != "L2" {
		t.Fatalf("results = %+v", results)
	}
	if cache.calls != 1 {
		t.Fatalf("cache calls = %d, want 1", cache.calls)
	}
}

func TestFilterLettersPadsPartialDates(t *testing.T) {
	cache := &fakeLetterCache{entries: snapshotEntries()}
	uc := NewLetterUseCase(cache, &fakeBackend{})

	results, err := uc.FilterLetters(context.Background(), domain.LetterFilter{DateFrom: "1808", DateTo: "1808"})
	if err != nil {
		t.Fatalf("FilterLetters() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != "L1" {
		t.Fatalf("results = %+v", results)
	}
}

func TestCorrespondentStatsSingleDirectionKeepsStoreOrder(t *testing.T) {
	backend := &fakeBackend{correspondentsFn: func(direction, year string) (map[string]int, []string, error) {
		if direction != "sent" {
			t.Fatalf("direction = %q", direction)
		}
		return map[string]int{"p1": 4, "p2": 9}, []string{"p2", "p1"}, nil
	}}
	uc := NewLetterUseCase(&fakeLetterCache{}, backend)

	stats, err := uc.CorrespondentStats(context.Background(), "sent", "", 0, 10)
	if err != nil {
		t.Fatalf("CorrespondentStats() error = %v", err)
	}
	if len(stats) != 2 || stats[0].PersonID != "p2" || stats[0].LettersSent != 9 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats[0].Total != 9 || stats[0].LettersReceived != 0 {
		t.Fatalf("stats[0] = %+v", stats[0])
	}
}

func TestCorrespondentStatsBothDirectionsSortsByTotal(t *testing.T) {
	backend := &fakeBackend{correspondentsFn: func(direction, year string) (map[string]int, []string, error) {
		if direction == "sent" {
			return map[string]int{"p1": 2, "p2": 5}, []string{"p2", "p1"}, nil
		}
		return map[string]int{"p1": 8}, []string{"p1"}, nil
	}}
	uc := NewLetterUseCase(&fakeLetterCache{}, backend)

	stats, err := uc.CorrespondentStats(context.Background(), "both", "", 0, 10)
	if err != nil {
		t.Fatalf("CorrespondentStats() error = %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats[0].PersonID != "p1" || stats[0].Total != 10 {
		t.Fatalf("stats[0] = %+v", stats[0])
	}
	if stats[1].PersonID != "p2" || stats[1].Total != 5 {
		t.Fatalf("stats[1] = %+v", stats[1])
	}
}

func TestCorrespondentStatsRejectsUnknownDirection(t *testing.T) {
	uc := NewLetterUseCase(&fakeLetterCache{}, &fakeBackend{})
	_, err := uc.CorrespondentStats(context.Background(), "sideways", "", 0, 10)
	if !domain.IsKind(err, domain.ErrInvalidRequest) {
		t.Fatalf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestCorrespondentStatsAppliesLimit(t *testing.T) {
	backend := &fakeBackend{correspondentsFn: func(string, string) (map[string]int, []string, error) {
		return map[string]int{"p1": 3, "p2": 2, "p3": 1}, []string{"p1", "p2", "p3"}, nil
	}}
	uc := NewLetterUseCase(&fakeLetterCache{}, backend)

	stats, err := uc.CorrespondentStats(context.Background(), "sent", "", 0, 2)
	if err != nil {
		t.Fatalf("CorrespondentStats() error = %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
}

func TestCorrespondentStatsPassesYearThrough(t *testing.T) {
	backend := &fakeBackend{correspondentsFn: func(_, year string) (map[string]int, []string, error) {
		if year != "1808" {
			t.Fatalf("year = %q, want 1808", year)
		}
		return map[string]int{"p1": 1}, []string{"p1"}, nil
	}}
	uc := NewLetterUseCase(&fakeLetterCache{}, backend)

	if _, err := uc.CorrespondentStats(context.Background(), "sent", "1808", 0, 10); err != nil {
		t.Fatalf("CorrespondentStats() error = %v", err)
	}
}

func TestCorrespondentStatsRejectsMalformedYear(t *testing.T) {
	uc := NewLetterUseCase(&fakeLetterCache{}, &fakeBackend{})
	_, err := uc.CorrespondentStats(context.Background(), "sent", "08", 0, 10)
	if !domain.IsKind(err, domain.ErrInvalidRequest) {
		t.Fatalf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestCorrespondentStatsAppliesMinLetters(t *testing.T) {
	backend := &fakeBackend{correspondentsFn: func(string, string) (map[string]int, []string, error) {
		return map[string]int{"p1": 5, "p2": 2, "p3": 1}, []string{"p1", "p2", "p3"}, nil
	}}
	uc := NewLetterUseCase(&fakeLetterCache{}, backend)

	stats, err := uc.CorrespondentStats(context.Background(), "sent", "", 3, 10)
	if err != nil {
		t.Fatalf("CorrespondentStats() error = %v", err)
	}
	if len(stats) != 1 || stats[0].PersonID != "p1" {
		t.Fatalf("stats = %+v", stats)
	}
}
