// Package listingsapi talks to the remote listings service over HTTP.
package listingsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"estate_web/internal/adapters/observability"
	"estate_web/internal/domain"
)

const maxBody = 4 << 20

var ErrNotConfigured = errors.New("listings api: not configured")

type Client struct {
	base string
	key  string
	hc   *retryablehttp.Client
	rl   *rate.Limiter
}

// New builds a client for base. It is usable only when both base and key are set.
func New(base, key string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 800 * time.Millisecond
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = 5 * time.Second
	rc.Logger = leveledLogger{}

	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc:   rc,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) Name() string { return "listings-api" }

func (c *Client) Configured() bool { return c.base != "" && c.key != "" }

type page struct {
	Items []domain.Listing `json:"items"`
}

func (c *Client) ListAll(ctx context.Context, f domain.ListingFilters) ([]domain.Listing, error) {
	var p page
	if err := c.get(ctx, "list", "/listings?"+query(f).Encode(), &p); err != nil {
		return nil, err
	}
	// The service filters server-side; re-check so both sources agree exactly.
	out := make([]domain.Listing, 0, len(p.Items))
	for _, l := range p.Items {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (c *Client) GetBySlug(ctx context.Context, slug string) (domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "get", "/listings/"+url.PathEscape(slug), &l); err != nil {
		return domain.Listing{}, err
	}
	if l.Slug != slug {
		return domain.Listing{}, fmt.Errorf("listings api: asked for %q, got %q", slug, l.Slug)
	}
	return l, nil
}

func (c *Client) ListFeatured(ctx context.Context, limit int) ([]domain.Listing, error) {
	q := url.Values{}
	q.Set("status", string(domain.StatusFeatured))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var p page
	if err := c.get(ctx, "featured", "/listings?"+q.Encode(), &p); err != nil {
		return nil, err
	}
	out := make([]domain.Listing, 0, len(p.Items))
	for _, l := range p.Items {
		if l.Status != domain.StatusFeatured {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func query(f domain.ListingFilters) url.Values {
	q := url.Values{}
	if f.Category != nil {
		q.Set("category", string(*f.Category))
	}
	if f.Location != nil {
		q.Set("location", *f.Location)
	}
	if f.MinPrice != nil {
		q.Set("minPrice", strconv.FormatInt(*f.MinPrice, 10))
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatInt(*f.MaxPrice, 10))
	}
	if f.MinBeds != nil {
		q.Set("beds", strconv.Itoa(*f.MinBeds))
	}
	if f.MinBaths != nil {
		q.Set("baths", strconv.Itoa(*f.MinBaths))
	}
	if f.PostalCode != nil {
		q.Set("postalCode", *f.PostalCode)
	}
	if f.Featured {
		q.Set("status", string(domain.StatusFeatured))
	}
	if len(f.Features) > 0 {
		q.Set("features", strings.Join(f.Features, ","))
	}
	return q
}

// get performs a rate-limited GET against the service and decodes JSON into out.
// Transient failures (network, 429, 5xx) are retried by the underlying client.
func (c *Client) get(ctx context.Context, endpoint, pathAndQuery string, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.base+pathAndQuery, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "estate-web/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(c.Name(), endpoint, 0, time.Since(start))
		return fmt.Errorf("listings api %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(c.Name(), endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 300:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("listings api %s: bad status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		return fmt.Errorf("listings api %s: decode: %w", endpoint, err)
	}
	return nil
}
