package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"estate_web/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func jsonList(v []string) string {
	if len(v) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(v)
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Name() string { return "mysql" }

func (r *Repo) Configured() bool { return r != nil && r.db != nil }

// UpsertListing writes l at the given dataset position.
func (r *Repo) UpsertListing(ctx context.Context, position int, l domain.Listing) error {
	_, err := r.db.ExecContext(ctx, upsertListingSQL,
		l.Slug,
		position,
		string(l.Category),
		l.LocationValue,
		l.PriceCZK,
		l.Beds,
		l.Baths,
		l.AreaM2,
		l.PostalCode,
		string(l.Status),
		jsonList(l.Features),
		jsonList(l.Images),
		nullIfEmpty(l.AgentSlug),
		l.Title.En,
		l.Title.Cs,
		l.Description.En,
		l.Description.Cs,
	)
	return err
}

func (r *Repo) ListAll(ctx context.Context, f domain.ListingFilters) ([]domain.Listing, error) {
	var (
		where []string
		args  []any
	)
	if f.Category != nil {
		where, args = append(where, "category = ?"), append(args, string(*f.Category))
	}
	if f.Location != nil {
		where, args = append(where, "location_value = ?"), append(args, *f.Location)
	}
	if f.MinPrice != nil {
		where, args = append(where, "price_czk >= ?"), append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where, args = append(where, "price_czk <= ?"), append(args, *f.MaxPrice)
	}
	if f.MinBeds != nil {
		where, args = append(where, "beds >= ?"), append(args, *f.MinBeds)
	}
	if f.MinBaths != nil {
		where, args = append(where, "baths >= ?"), append(args, *f.MinBaths)
	}
	if f.PostalCode != nil {
		where, args = append(where, "postal_code = ?"), append(args, *f.PostalCode)
	}
	if f.Featured {
		where, args = append(where, "status = ?"), append(args, string(domain.StatusFeatured))
	}

	q := "SELECT" + listingColumns + "\nFROM listings"
	if len(where) > 0 {
		q += "\nWHERE " + strings.Join(where, " AND ")
	}
	q += "\nORDER BY position"

	all, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	// Tag overlap is evaluated in Go so it matches the static dataset exactly.
	out := all[:0]
	for _, l := range all {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (domain.Listing, error) {
	rows, err := r.query(ctx, getListingSQL, slug)
	if err != nil {
		return domain.Listing{}, err
	}
	// slugs compare byte for byte, whatever collation the table was created with
	for _, l := range rows {
		if l.Slug == slug {
			return l, nil
		}
	}
	return domain.Listing{}, domain.ErrNotFound
}

func (r *Repo) ListFeatured(ctx context.Context, limit int) ([]domain.Listing, error) {
	q := "SELECT" + listingColumns + "\nFROM listings\nWHERE status = ?\nORDER BY position"
	args := []any{string(domain.StatusFeatured)}
	if limit > 0 {
		q += "\nLIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	out := rows[:0]
	for _, l := range rows {
		if l.Status == domain.StatusFeatured {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *Repo) query(ctx context.Context, q string, args ...any) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var (
			l                  domain.Listing
			category, status   string
			featuresJSON, imgs []byte
			agent              sql.NullString
		)
		if err := rows.Scan(
			&l.Slug,
			&category,
			&l.LocationValue,
			&l.PriceCZK,
			&l.Beds,
			&l.Baths,
			&l.AreaM2,
			&l.PostalCode,
			&status,
			&featuresJSON,
			&imgs,
			&agent,
			&l.Title.En,
			&l.Title.Cs,
			&l.Description.En,
			&l.Description.Cs,
		); err != nil {
			return nil, err
		}
		l.Category = domain.Category(category)
		l.Status = domain.Status(status)
		if agent.Valid {
			l.AgentSlug = agent.String
		}
		if err := json.Unmarshal(featuresJSON, &l.Features); err != nil {
			return nil, fmt.Errorf("listing %s features: %w", l.Slug, err)
		}
		if err := json.Unmarshal(imgs, &l.Images); err != nil {
			return nil, fmt.Errorf("listing %s images: %w", l.Slug, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) SaveEnquiry(ctx context.Context, e domain.Enquiry) error {
	_, err := r.db.ExecContext(ctx, insertEnquirySQL,
		e.ID,
		string(e.Kind),
		e.Name,
		e.Email,
		nullIfEmpty(e.Phone),
		e.Message,
		valStr(e.ListingSlug),
		e.Locale,
		e.CreatedAt.UTC(),
	)
	return err
}

func (r *Repo) RecentEnquiries(ctx context.Context, limit int) ([]domain.Enquiry, error) {
	rows, err := r.db.QueryContext(ctx, recentEnquiriesSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Enquiry
	for rows.Next() {
		var (
			e            domain.Enquiry
			kind         string
			phone, slug sql.NullString
		)
		if err := rows.Scan(&e.ID, &kind, &e.Name, &e.Email, &phone, &e.Message, &slug, &e.Locale, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = domain.EnquiryKind(kind)
		if phone.Valid {
			e.Phone = phone.String
		}
		if slug.Valid {
			s := slug.String
			e.ListingSlug = &s
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping reports whether the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	if !r.Configured() {
		return errors.New("mysql: no database handle")
	}
	return r.db.PingContext(ctx)
}
