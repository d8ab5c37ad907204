package usecase

import (
	"context"
	"testing"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

func TestEntriesForRangePadsPartialDates(t *testing.T) {
	var gotFrom, gotTo string
	backend := &fakeBackend{chronologyFn: func(notBefore, notAfter string) ([]domain.ChronologyEntry, error) {
		gotFrom, gotTo = notBefore, notAfter
		return nil, nil
	}}
	uc := NewChronologyUseCase(backend)

	if _, err := uc.EntriesForRange(context.Background(), "1808", "1808-03"); err != nil {
		t.Fatalf("EntriesForRange() error = %v", err)
	}
	if gotFrom != "1808-01-01" || gotTo != "1808-03-31" {
		t.Fatalf("range = %q..%q", gotFrom, gotTo)
	}
}

func TestEntriesForRangeRequiresBothBounds(t *testing.T) {
	uc := NewChronologyUseCase(&fakeBackend{})
	if _, err := uc.EntriesForRange(context.Background(), "1808", ""); !domain.IsKind(err, domain.ErrInvalidRequest) {
		t.Fatalf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestEntriesForRangeRejectsInvertedRange(t *testing.T) {
	uc := NewChronologyUseCase(&fakeBackend{})
	if _, err := uc.EntriesForRange(context.Background(), "1810", "1808"); !domain.IsKind(err, domain.ErrInvalidRequest) {
		t.Fatalf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestYearOverviewValidatesBounds(t *testing.T) {
	uc := NewChronologyUseCase(&fakeBackend{})
	for _, year := range []int{0, 1767, 1835} {
		if _, err := uc.YearOverview(context.Background(), year); !domain.IsKind(err, domain.ErrInvalidRequest) {
			t.Errorf("year %d: error = %v, want ErrInvalidRequest", year, err)
		}
	}
}

func TestYearOverviewPassesThrough(t *testing.T) {
	backend := &fakeBackend{chronologyYearFn: func(year int) (*domain.ChronologyYear, error) {
		return &domain.ChronologyYear{Year: year, Heading: "Chronologie 1808"}, nil
	}}
	uc := NewChronologyUseCase(backend)

	overview, err := uc.YearOverview(context.Background(), 1808)
	if err != nil {
		t.Fatalf("YearOverview() error = %v", err)
	}
	if overview.Year != 1808 || overview.Heading != "Chronologie 1808" {
		t.Fatalf("overview = %+v", overview)
	}
}

func TestEntryForDateValidatesFormat(t *testing.T) {
	uc := NewDiaryUseCase(&fakeBackend{})
	for _, date := range []string{"1808", "12.03.1808", "1808-3-12", ""} {
		if _, err := uc.EntryForDate(context.Background(), date); !domain.IsKind(err, domain.ErrInvalidRequest) {
			t.Errorf("date %q: error = %v, want ErrInvalidRequest", date, err)
		}
	}
}

func TestEntryForDatePassesThrough(t *testing.T) {
	backend := &fakeBackend{diaryFn: func(date string) (*domain.DiaryEntry, error) {
		return &domain.DiaryEntry{Date: date, LeftSide: "Predigt."}, nil
	}}
	uc := NewDiaryUseCase(backend)

	entry, err := uc.EntryForDate(context.Background(), "1808-03-12")
	if err != nil {
		t.Fatalf("EntryForDate() error = %v", err)
	}
	if entry.Date != "1808-03-12" || entry.LeftSide != "Predigt." {
		t.Fatalf("entry = %+v", entry)
	}
}
