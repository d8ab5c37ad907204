package lettercache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const snapshotJSON = `{
  "letter": [
    {"data": {
      "id": "S0007791",
      "idno": "3413a",
      "sender": {"senderName": "Schleiermacher", "senderRef": "S0000001"},
      "receiver": [{"receiverName": "Boeckh", "receiverRef": "S0000002"}],
      "place": {"placeName": "Berlin", "placeRef": "S0100001"},
      "date_iso": "1820-01-12",
      "dateDisplay": "12. Januar 1820"
    }},
    {"data": {
      "id": "S0007792",
      "sender": [{"senderName": "Boeckh", "senderRef": "S0000002"}],
      "receiver": {"receiverName": "Schleiermacher", "receiverRef": "S0000001"},
      "place": {"placeName": "Halle", "placeRef": "S0100002"},
      "date_iso": "1821-03-01",
      "dateDisplay": "1. März 1821"
    }},
    {"note": "entry without data payload"}
  ]
}`

type fakeFetcher struct {
	payload string
	err     error
	calls   atomic.Int32
	delay   time.Duration
}

func (f *fakeFetcher) GetByPath(ctx context.Context, path string) (string, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.payload, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLettersLoadsOnce(t *testing.T) {
	fetcher := &fakeFetcher{payload: snapshotJSON}
	cache := New(fetcher, "/db/cache/letters.json", discardLogger())

	entries, err := cache.Letters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries %d", len(entries))
	}

	if _, err := cache.Letters(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("expected one fetch, got %d", got)
	}
}

func TestLettersNormalizesPartyShapes(t *testing.T) {
	cache := New(&fakeFetcher{payload: snapshotJSON}, "/db/cache/letters.json", discardLogger())

	entries, err := cache.Letters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First entry: sender came as object, receiver as list.
	if !entries[0].Sender.HasRef("S0000001") {
		t.Error("object sender not normalized")
	}
	if !entries[0].Receiver.HasRef("S0000002") {
		t.Error("list receiver not normalized")
	}
	// Second entry: the shapes are swapped.
	if !entries[1].Sender.HasRef("S0000002") || !entries[1].Receiver.HasRef("S0000001") {
		t.Error("swapped shapes not normalized")
	}
}

func TestLettersSingleFlight(t *testing.T) {
	fetcher := &fakeFetcher{payload: snapshotJSON, delay: 50 * time.Millisecond}
	cache := New(fetcher, "/db/cache/letters.json", discardLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Letters(context.Background()); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("expected one fetch under concurrent first access, got %d", got)
	}
}

func TestLettersParseFailureDegradesToEmpty(t *testing.T) {
	fetcher := &fakeFetcher{payload: "{not json"}
	cache := New(fetcher, "/db/cache/letters.json", discardLogger())

	entries, err := cache.Letters(context.Background())
	if err != nil {
		t.Fatalf("parse failure must not raise: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty cache, got %d entries", len(entries))
	}

	// Degraded state is sticky until invalidated.
	if _, err := cache.Letters(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("expected one fetch, got %d", got)
	}
}

func TestLettersFetchFailurePropagates(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("store down")}
	cache := New(fetcher, "/db/cache/letters.json", discardLogger())

	if _, err := cache.Letters(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}

	// The cache stays unpopulated, so a later call retries.
	fetcher.err = nil
	fetcher.payload = snapshotJSON
	entries, err := cache.Letters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("entries %d", len(entries))
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	fetcher := &fakeFetcher{payload: snapshotJSON}
	cache := New(fetcher, "/db/cache/letters.json", discardLogger())

	if _, err := cache.Letters(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.Invalidate()
	if _, err := cache.Letters(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fetcher.calls.Load(); got != 2 {
		t.Errorf("expected reload after invalidate, got %d fetches", got)
	}
}
