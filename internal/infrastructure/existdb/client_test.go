package existdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(server.URL, "admin", "secret", 5*time.Second)
	t.Cleanup(client.Close)
	return client
}

func TestExecuteQuerySendsRESTParameters(t *testing.T) {
	var gotQuery, gotHowMany, gotWrap string
	var gotUser, gotPass string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("_query")
		gotHowMany = r.URL.Query().Get("_howmany")
		gotWrap = r.URL.Query().Get("_wrap")
		gotUser, gotPass, _ = r.BasicAuth()
		w.Write([]byte("<result/>"))
	})

	body, err := client.ExecuteQuery(context.Background(), "//tei:TEI", 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "<result/>" {
		t.Errorf("unexpected body %q", body)
	}
	if gotQuery != "//tei:TEI" {
		t.Errorf("unexpected _query %q", gotQuery)
	}
	if gotHowMany != "25" {
		t.Errorf("unexpected _howmany %q", gotHowMany)
	}
	if gotWrap != "no" {
		t.Errorf("unexpected _wrap %q", gotWrap)
	}
	if gotUser != "admin" || gotPass != "secret" {
		t.Errorf("unexpected credentials %q:%q", gotUser, gotPass)
	}
}

func TestExecuteQueryRejectsEmptyQuery(t *testing.T) {
	client := New("http://localhost:1", "", "", time.Second)

	_, err := client.ExecuteQuery(context.Background(), "   ", 10)
	if !domain.IsKind(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		kind   error
	}{
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, domain.ErrAuth},
		{"forbidden", http.StatusForbidden, domain.ErrAuth},
		{"bad query", http.StatusBadRequest, domain.ErrQuery},
		{"server error", http.StatusInternalServerError, domain.ErrQuery},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "exist says no", tc.status)
			})

			_, err := client.ExecuteQuery(context.Background(), "//tei:TEI", 10)
			if !domain.IsKind(err, tc.kind) {
				t.Fatalf("status %d: expected kind %v, got %v", tc.status, tc.kind, err)
			}
		})
	}
}

func TestTransportErrorIsConnectionKind(t *testing.T) {
	client := New("http://127.0.0.1:1", "", "", 500*time.Millisecond)
	defer client.Close()

	_, err := client.ExecuteQuery(context.Background(), "//tei:TEI", 10)
	if !domain.IsKind(err, domain.ErrConnection) {
		t.Fatalf("expected connection kind, got %v", err)
	}
}

func TestGetByIDEmptyResultIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\n  \n"))
	})

	_, err := client.GetByID(context.Background(), "/db/projects/test/data", "letter_1")
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetByPathPrefixesRESTRoot(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("<TEI/>"))
	})

	if _, err := client.GetByPath(context.Background(), "/db/projects/test/data/letter.xml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/exist/rest/db/projects/test/data/letter.xml" {
		t.Errorf("unexpected request path %q", gotPath)
	}
}

func TestListCollectionParsesListing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<exist:result xmlns:exist="http://exist.sourceforge.net/NS/exist">
  <exist:collection name="data">
    <exist:collection name="letters"/>
    <exist:collection name="register"/>
    <exist:resource name="chronology.xml"/>
  </exist:collection>
</exist:result>`))
	})

	contents, err := client.ListCollection(context.Background(), "/db/projects/test/data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents.Subcollections) != 2 || contents.Subcollections[0] != "letters" {
		t.Errorf("unexpected subcollections %v", contents.Subcollections)
	}
	if len(contents.Files) != 1 || contents.Files[0] != "chronology.xml" {
		t.Errorf("unexpected files %v", contents.Files)
	}
}

func TestHealthCheck(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("6.2.0\n"))
	})

	status, err := client.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "ok" || status.Version != "6.2.0" {
		t.Errorf("unexpected status %+v", status)
	}
}
