package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidEnquiry = errors.New("invalid enquiry")
)

// ListingsService is a remote listings backend. Implementations report whether
// they have what they need to run; callers skip unconfigured services.
type ListingsService interface {
	Name() string
	Configured() bool
	ListAll(ctx context.Context, f ListingFilters) ([]Listing, error)
	// GetBySlug returns ErrNotFound when the backend has no such listing.
	GetBySlug(ctx context.Context, slug string) (Listing, error)
	ListFeatured(ctx context.Context, limit int) ([]Listing, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type EnquiryStore interface {
	SaveEnquiry(ctx context.Context, e Enquiry) error
}

// EnquiryLister is implemented by stores that can show recent enquiries to admins.
type EnquiryLister interface {
	RecentEnquiries(ctx context.Context, limit int) ([]Enquiry, error)
}
