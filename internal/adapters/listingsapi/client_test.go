package listingsapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"estate_web/internal/adapters/listingsapi"
	"estate_web/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func writeItems(w http.ResponseWriter, items []domain.Listing) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
}

func TestClient_Configured(t *testing.T) {
	if listingsapi.New("", "k", 1).Configured() {
		t.Fatalf("missing base must not be configured")
	}
	if listingsapi.New("http://x", "", 1).Configured() {
		t.Fatalf("missing key must not be configured")
	}
	_, err := listingsapi.New("", "", 1).ListAll(context.Background(), domain.ListingFilters{})
	if !errors.Is(err, listingsapi.ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured, got %v", err)
	}
}

func TestClient_ListAll_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if got := r.URL.Query().Get("category"); got != "homes-sale" {
			t.Errorf("category query = %q", got)
		}
		if got := r.URL.Query().Get("minPrice"); got != "5000000" {
			t.Errorf("minPrice query = %q", got)
		}
		// the service returns one row that does not satisfy the filters
		writeItems(w, []domain.Listing{
			{Slug: "a", Category: domain.CategoryHomesSale, PriceCZK: 6_000_000},
			{Slug: "cheap", Category: domain.CategoryHomesSale, PriceCZK: 10},
		})
	}))
	defer ts.Close()

	cl := listingsapi.New(ts.URL, "test-key", 100)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.ListAll(ctx, domain.ListingFilters{
		Category: ptr(domain.CategoryHomesSale),
		MinPrice: ptr(int64(5_000_000)),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "a" {
		t.Fatalf("unexpected listings: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 2 {
		t.Fatalf("expected a retry, got %d calls", hits)
	}
}

func TestClient_GetBySlug_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl := listingsapi.New(ts.URL, "test-key", 100)
	_, err := cl.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestClient_GetBySlug(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/listings/villa" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Listing{Slug: "villa", Beds: 4})
	}))
	defer ts.Close()

	l, err := listingsapi.New(ts.URL+"/", "test-key", 100).GetBySlug(context.Background(), "villa")
	if err != nil || l.Beds != 4 {
		t.Fatalf("got %+v, %v", l, err)
	}
}

func TestClient_ListFeatured_Truncates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "featured" || r.URL.Query().Get("limit") != "2" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		writeItems(w, []domain.Listing{
			{Slug: "a", Status: domain.StatusFeatured},
			{Slug: "b", Status: domain.StatusActive},
			{Slug: "c", Status: domain.StatusFeatured},
			{Slug: "d", Status: domain.StatusFeatured},
		})
	}))
	defer ts.Close()

	got, err := listingsapi.New(ts.URL, "test-key", 100).ListFeatured(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "a" || got[1].Slug != "c" {
		t.Fatalf("unexpected featured: %+v", got)
	}
}

func TestClient_ServerErrorSurfaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := listingsapi.New(ts.URL, "test-key", 100).ListAll(ctx, domain.ListingFilters{}); err == nil {
		t.Fatalf("expected error after retries are exhausted")
	}
}
