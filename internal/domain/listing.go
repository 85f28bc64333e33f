package domain

import (
	"slices"
	"strconv"
	"strings"
)

type Category string

const (
	CategoryHomesSale      Category = "homes-sale"
	CategoryHomesRent      Category = "homes-rent"
	CategoryApartmentsSale Category = "apartments-sale"
	CategoryApartmentsRent Category = "apartments-rent"
	CategoryLand           Category = "land"
	CategoryCommercial     Category = "commercial"
)

var Categories = []Category{
	CategoryHomesSale, CategoryHomesRent,
	CategoryApartmentsSale, CategoryApartmentsRent,
	CategoryLand, CategoryCommercial,
}

func (c Category) Valid() bool { return slices.Contains(Categories, c) }

type Status string

const (
	StatusActive   Status = "active"
	StatusFeatured Status = "featured"
	StatusReserved Status = "reserved"
	StatusSold     Status = "sold"
)

// Text holds one value per supported site language.
type Text struct {
	En string `json:"en"`
	Cs string `json:"cs"`
}

// In picks the value for lang ("en" or "cs"), falling back to English.
func (t Text) In(lang string) string {
	if lang == "cs" && t.Cs != "" {
		return t.Cs
	}
	return t.En
}

type Listing struct {
	Slug          string   `json:"slug"`
	Title         Text     `json:"title"`
	Description   Text     `json:"description"`
	Category      Category `json:"category"`
	LocationValue string   `json:"locationValue"`
	PriceCZK      int64    `json:"priceCZK"`
	Beds          int      `json:"beds"`
	Baths         int      `json:"baths"`
	AreaM2        int      `json:"areaM2"`
	PostalCode    string   `json:"postalCode"`
	Status        Status   `json:"status"`
	Features      []string `json:"features,omitempty"`
	Images        []string `json:"images,omitempty"`
	AgentSlug     string   `json:"agentSlug,omitempty"`
}

// Clone returns a copy that shares no slices with l.
func (l Listing) Clone() Listing {
	l.Features = slices.Clone(l.Features)
	l.Images = slices.Clone(l.Images)
	return l
}

// ListingFilters is a sparse set of predicates; nil / empty fields impose no constraint.
type ListingFilters struct {
	Category   *Category `json:"category,omitempty"`
	Location   *string   `json:"location,omitempty"`
	MinPrice   *int64    `json:"minPrice,omitempty"`
	MaxPrice   *int64    `json:"maxPrice,omitempty"`
	MinBeds    *int      `json:"beds,omitempty"`
	MinBaths   *int      `json:"baths,omitempty"`
	PostalCode *string   `json:"postalCode,omitempty"`
	Featured   bool      `json:"featured,omitempty"`
	Features   []string  `json:"features,omitempty"`
}

// Matches applies every present predicate to l. Both the static dataset and the
// remote backends evaluate filters through this method.
func (f ListingFilters) Matches(l Listing) bool {
	if f.Category != nil && l.Category != *f.Category {
		return false
	}
	if f.Location != nil && l.LocationValue != *f.Location {
		return false
	}
	if f.MinPrice != nil && l.PriceCZK < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.PriceCZK > *f.MaxPrice {
		return false
	}
	if f.MinBeds != nil && l.Beds < *f.MinBeds {
		return false
	}
	if f.MinBaths != nil && l.Baths < *f.MinBaths {
		return false
	}
	if f.PostalCode != nil && l.PostalCode != *f.PostalCode {
		return false
	}
	if f.Featured && l.Status != StatusFeatured {
		return false
	}
	if len(f.Features) > 0 && !slices.ContainsFunc(l.Features, func(tag string) bool {
		return slices.Contains(f.Features, tag)
	}) {
		return false
	}
	return true
}

// Key is a stable string form of f, used for cache keys.
func (f ListingFilters) Key() string {
	var b strings.Builder
	put := func(k, v string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	if f.Category != nil {
		put("category", string(*f.Category))
	}
	if f.Location != nil {
		put("location", *f.Location)
	}
	if f.MinPrice != nil {
		put("minPrice", strconv.FormatInt(*f.MinPrice, 10))
	}
	if f.MaxPrice != nil {
		put("maxPrice", strconv.FormatInt(*f.MaxPrice, 10))
	}
	if f.MinBeds != nil {
		put("beds", strconv.Itoa(*f.MinBeds))
	}
	if f.MinBaths != nil {
		put("baths", strconv.Itoa(*f.MinBaths))
	}
	if f.PostalCode != nil {
		put("postalCode", *f.PostalCode)
	}
	if f.Featured {
		put("featured", "1")
	}
	if len(f.Features) > 0 {
		tags := slices.Clone(f.Features)
		slices.Sort(tags)
		put("features", strings.Join(tags, ","))
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}
