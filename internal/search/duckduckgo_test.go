package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const resultsPage = `
<html><body>
<div class="result">
  <a class="result__a" href="https://acme.example/about">Acme Corp</a>
  <div class="result__snippet"> Acme Corp official website </div>
</div>
<div class="result">
  <a class="result__a" href="https://reviews.example/acme">Reviews</a>
  <div class="result__snippet">Employee reviews for Acme</div>
</div>
<div class="result">
  <a class="result__a" href="https://third.example">Third</a>
  <div class="result__snippet">Another hit</div>
</div>
</body></html>`

func newTestSearcher(t *testing.T, handler http.HandlerFunc) *DuckDuckGo {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	d := NewDuckDuckGo(srv.Client())
	d.endpoint = srv.URL
	return d
}

func TestSearch_ParsesResults(t *testing.T) {
	var gotQuery string
	d := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(resultsPage))
	})

	results, err := d.Search(context.Background(), "Acme Corp reviews", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "Acme Corp reviews" {
		t.Errorf("query: got %q", gotQuery)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Link != "https://acme.example/about" {
		t.Errorf("link: got %s", results[0].Link)
	}
	if results[0].Body != "Acme Corp official website" {
		t.Errorf("body: got %q", results[0].Body)
	}
}

func TestSearch_RespectsMaxResults(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(resultsPage))
	})

	results, err := d.Search(context.Background(), "acme", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestSearch_NonOKStatus(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	if _, err := d.Search(context.Background(), "acme", 5); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestSearch_EmptyPage(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>no results</body></html>"))
	})

	results, err := d.Search(context.Background(), "acme", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %v, want none", results)
	}
}
