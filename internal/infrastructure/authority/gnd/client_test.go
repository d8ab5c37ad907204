package gnd

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
	"github.com/telota/bbaw-dse-mcp/internal/infrastructure/authority"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, authority.NewTransport(5*time.Second, 1000, nil))
}

func TestLookupPersonNormalizesURI(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"gndIdentifier":"118608045","preferredName":"Schleiermacher, Friedrich"}`)
	})

	record, err := client.LookupPerson(context.Background(), "https://d-nb.info/gnd/118608045")
	if err != nil {
		t.Fatalf("LookupPerson() error = %v", err)
	}
	if gotPath != "/118608045.json" {
		t.Fatalf("path = %q", gotPath)
	}
	if record["preferredName"] != "Schleiermacher, Friedrich" {
		t.Fatalf("record = %v", record)
	}
}

func TestLookupPersonEmptyID(t *testing.T) {
	client := New("http://example.invalid", authority.NewTransport(time.Second, 1000, nil))
	if _, err := client.LookupPerson(context.Background(), "  "); !domain.IsKind(err, domain.ErrInvalidRequest) {
		t.Fatalf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestSearchPersons(t *testing.T) {
	var gotQuery, gotFilter, gotSize string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotFilter = r.URL.Query().Get("filter")
		gotSize = r.URL.Query().Get("size")
		io.WriteString(w, `{"totalItems":2,"member":[{"preferredName":"Boeckh, August"},{"preferredName":"Boeckh, Richard"}]}`)
	})

	members, err := client.SearchPersons(context.Background(), "Boeckh", 5)
	if err != nil {
		t.Fatalf("SearchPersons() error = %v", err)
	}
	if gotQuery != "Boeckh" || gotFilter != "type:Person" || gotSize != "5" {
		t.Fatalf("query = %q filter = %q size = %q", gotQuery, gotFilter, gotSize)
	}
	if len(members) != 2 || members[0]["preferredName"] != "Boeckh, August" {
		t.Fatalf("members = %v", members)
	}
}

func TestSearchPersonsDefaultLimit(t *testing.T) {
	var gotSize string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSize = r.URL.Query().Get("size")
		io.WriteString(w, `{"member":[]}`)
	})

	if _, err := client.SearchPersons(context.Background(), "Reimer", 0); err != nil {
		t.Fatalf("SearchPersons() error = %v", err)
	}
	if gotSize != "10" {
		t.Fatalf("size = %q, want 10", gotSize)
	}
}
