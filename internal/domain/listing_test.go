package domain_test

import (
	"testing"

	"estate_web/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestListingFilters_Matches(t *testing.T) {
	l := domain.Listing{
		Slug:          "villa-brno",
		Category:      domain.CategoryHomesSale,
		LocationValue: "brno",
		PriceCZK:      9_500_000,
		Beds:          4,
		Baths:         2,
		PostalCode:    "60200",
		Status:        domain.StatusFeatured,
		Features:      []string{"garden", "garage"},
	}

	cases := []struct {
		name string
		f    domain.ListingFilters
		want bool
	}{
		{"empty", domain.ListingFilters{}, true},
		{"category hit", domain.ListingFilters{Category: ptr(domain.CategoryHomesSale)}, true},
		{"category miss", domain.ListingFilters{Category: ptr(domain.CategoryLand)}, false},
		{"location miss", domain.ListingFilters{Location: ptr("praha")}, false},
		{"min price boundary", domain.ListingFilters{MinPrice: ptr(int64(9_500_000))}, true},
		{"min price above", domain.ListingFilters{MinPrice: ptr(int64(9_500_001))}, false},
		{"max price boundary", domain.ListingFilters{MaxPrice: ptr(int64(9_500_000))}, true},
		{"max price below", domain.ListingFilters{MaxPrice: ptr(int64(1))}, false},
		{"beds", domain.ListingFilters{MinBeds: ptr(5)}, false},
		{"baths", domain.ListingFilters{MinBaths: ptr(2)}, true},
		{"postal", domain.ListingFilters{PostalCode: ptr("11000")}, false},
		{"featured", domain.ListingFilters{Featured: true}, true},
		{"any feature", domain.ListingFilters{Features: []string{"pool", "garage"}}, true},
		{"no feature overlap", domain.ListingFilters{Features: []string{"pool"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Matches(l); got != tc.want {
				t.Fatalf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestListingFilters_KeyIsOrderInsensitiveForTags(t *testing.T) {
	a := domain.ListingFilters{Features: []string{"b", "a"}, MinBeds: ptr(2)}
	b := domain.ListingFilters{Features: []string{"a", "b"}, MinBeds: ptr(2)}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	if (domain.ListingFilters{}).Key() != "*" {
		t.Fatalf("empty filters key = %q", (domain.ListingFilters{}).Key())
	}
}
