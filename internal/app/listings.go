package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"estate_web/internal/adapters/observability"
	"estate_web/internal/domain"
	"estate_web/internal/staticdata"
)

const (
	SourceRemote   = "remote"
	SourceCache    = "cache"
	SourceStatic   = "static"
	SourceFallback = "fallback"
)

// ListingsRepository serves listings from the configured remote backend and
// degrades to the bundled dataset when the backend is absent or failing.
// Callers never see backend errors.
type ListingsRepository struct {
	remote   domain.ListingsService
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewListingsRepository accepts a nil remote and a nil cache.
func NewListingsRepository(remote domain.ListingsService, c domain.Cache, ttl time.Duration) *ListingsRepository {
	return &ListingsRepository{remote: remote, cache: c, cacheTTL: ttl}
}

// Source names the backend consulted first.
func (r *ListingsRepository) Source() string {
	if r.useRemote() {
		return r.remote.Name()
	}
	return SourceStatic
}

func (r *ListingsRepository) useRemote() bool {
	return r.remote != nil && r.remote.Configured()
}

func (r *ListingsRepository) ListAll(ctx context.Context, f domain.ListingFilters) []domain.Listing {
	const op = "list_all"
	if !r.useRemote() {
		observability.ObserveListings(op, SourceStatic)
		return staticdata.Listings(f)
	}

	key := "listings:all:" + f.Key()
	var cached []domain.Listing
	if r.cacheGet(ctx, key, &cached) {
		observability.ObserveListings(op, SourceCache)
		return cached
	}

	out, err := r.remote.ListAll(ctx, f)
	if err != nil {
		r.fallback(op, err)
		return staticdata.Listings(f)
	}
	observability.ObserveListings(op, SourceRemote)
	r.cacheSet(ctx, key, out)
	return out
}

// GetBySlug reports found == false when no listing carries slug. A remote
// not-found answer is final and does not consult the bundled dataset.
func (r *ListingsRepository) GetBySlug(ctx context.Context, slug string) (domain.Listing, bool) {
	const op = "get_by_slug"
	if !r.useRemote() {
		observability.ObserveListings(op, SourceStatic)
		return staticdata.Listing(slug)
	}

	key := "listings:slug:" + slug
	var cached domain.Listing
	if r.cacheGet(ctx, key, &cached) {
		observability.ObserveListings(op, SourceCache)
		return cached, true
	}

	l, err := r.remote.GetBySlug(ctx, slug)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		observability.ObserveListings(op, SourceRemote)
		return domain.Listing{}, false
	case err != nil:
		r.fallback(op, err)
		return staticdata.Listing(slug)
	}
	observability.ObserveListings(op, SourceRemote)
	r.cacheSet(ctx, key, l)
	return l, true
}

// ListFeatured returns at most limit featured listings; limit <= 0 means all.
func (r *ListingsRepository) ListFeatured(ctx context.Context, limit int) []domain.Listing {
	const op = "list_featured"
	if limit < 0 {
		limit = 0
	}
	if !r.useRemote() {
		observability.ObserveListings(op, SourceStatic)
		return staticdata.Featured(limit)
	}

	key := "listings:featured:" + strconv.Itoa(limit)
	var cached []domain.Listing
	if r.cacheGet(ctx, key, &cached) {
		observability.ObserveListings(op, SourceCache)
		return cached
	}

	out, err := r.remote.ListFeatured(ctx, limit)
	if err != nil {
		r.fallback(op, err)
		return staticdata.Featured(limit)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	observability.ObserveListings(op, SourceRemote)
	r.cacheSet(ctx, key, out)
	return out
}

// Forget drops the cached copy of one listing so the next read goes to the
// backend. It is a no-op without a cache.
func (r *ListingsRepository) Forget(ctx context.Context, slug string) error {
	if r.cache == nil {
		return nil
	}
	if err := r.cache.Del(ctx, "listings:slug:"+slug); err != nil {
		return fmt.Errorf("forget %s: %w", slug, err)
	}
	return nil
}

func (r *ListingsRepository) fallback(op string, err error) {
	log.Warn().Err(err).
		Str("op", op).
		Str("source", r.remote.Name()).
		Msg("listings backend failed, serving bundled dataset")
	observability.ObserveListings(op, SourceFallback)
}

func (r *ListingsRepository) cacheGet(ctx context.Context, key string, dst any) bool {
	if r.cache == nil {
		return false
	}
	ok, err := r.cache.Get(ctx, key, dst)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache get")
		return false
	}
	return ok
}

func (r *ListingsRepository) cacheSet(ctx context.Context, key string, v any) {
	if r.cache == nil || r.cacheTTL <= 0 {
		return
	}
	if err := r.cache.Set(ctx, key, v, int(r.cacheTTL.Seconds())); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache set")
	}
}
