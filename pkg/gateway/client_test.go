package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/XolaniXAD/cosmic-calendar/pkg/record"
)

func TestFetchSuccess(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"date": "2020-01-01",
			"title": "A",
			"explanation": "stars",
			"url": "https://example.com/a.jpg",
			"media_type": "image",
			"copyright": "J. Doe"
		}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, err := c.Fetch(context.Background(), "2020-01-01")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotPath != "/api/record" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery != "date=2020-01-01" {
		t.Fatalf("query = %q", gotQuery)
	}
	if r.Title != "A" || r.MediaType != record.MediaTypeImage || r.Copyright != "J. Doe" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestFetchMostRecentOmitsDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"date":"2020-01-02","title":"B","media_type":"image"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, err := c.Fetch(context.Background(), "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if r.Title != "B" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestFetchStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusBadRequest, func(err error) bool { return errors.Is(err, ErrInvalidDate) }},
		{http.StatusUnauthorized, func(err error) bool { return errors.Is(err, ErrAuth) }},
		{http.StatusInternalServerError, func(err error) bool {
			var ue *UpstreamError
			return errors.As(err, &ue) && ue.Status == http.StatusInternalServerError
		}},
		{http.StatusNotFound, func(err error) bool {
			var ue *UpstreamError
			return errors.As(err, &ue) && ue.Status == http.StatusNotFound
		}},
	}
	for _, c := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"nope"}`, c.status)
		}))
		cl, err := New(srv.URL)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		_, err = cl.Fetch(context.Background(), "2020-01-01")
		if err == nil || !c.check(err) {
			t.Fatalf("status %d: unexpected error %v", c.status, err)
		}
		srv.Close()
	}
}

func TestFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Fetch(context.Background(), "2020-01-01")
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestNewDefaultsScheme(t *testing.T) {
	c, err := New("127.0.0.1:8080")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.baseURL != "http://127.0.0.1:8080" {
		t.Fatalf("baseURL = %q", c.baseURL)
	}
	if _, err := New(""); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}
