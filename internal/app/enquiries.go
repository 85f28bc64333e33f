package app

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"estate_web/internal/domain"
	"estate_web/internal/locale"
)

const (
	maxNameLen    = 120
	maxEmailLen   = 254
	maxPhoneLen   = 40
	maxMessageLen = 4000
)

// EnquiryInput is an unvalidated contact, viewing or valuation form.
type EnquiryInput struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	ListingSlug string `json:"listingSlug"`
	Locale      string `json:"locale"`
}

type listingLookup interface {
	GetBySlug(ctx context.Context, slug string) (domain.Listing, bool)
}

type EnquiryService struct {
	listings listingLookup
	store    domain.EnquiryStore
	now      func() time.Time
}

// NewEnquiryService returns a service that writes accepted enquiries to store.
// With a nil store enquiries are only logged.
func NewEnquiryService(listings listingLookup, store domain.EnquiryStore) *EnquiryService {
	return &EnquiryService{listings: listings, store: store, now: time.Now}
}

// WithClock overrides the timestamp source.
func (s *EnquiryService) WithClock(now func() time.Time) *EnquiryService {
	s.now = now
	return s
}

// Submit validates in and persists it. Validation failures are returned as
// domain.FieldErrors; fallback is the locale used when in carries none.
func (s *EnquiryService) Submit(ctx context.Context, in EnquiryInput, fallback locale.Locale) (domain.Enquiry, error) {
	e, fe := s.validate(ctx, in, fallback)
	if len(fe) > 0 {
		return domain.Enquiry{}, fe
	}
	e.ID = uuid.NewString()
	e.CreatedAt = s.now().UTC()

	if s.store == nil {
		log.Info().
			Str("id", e.ID).
			Str("kind", string(e.Kind)).
			Str("email", e.Email).
			Str("locale", e.Locale).
			Msg("enquiry received")
		return e, nil
	}
	if err := s.store.SaveEnquiry(ctx, e); err != nil {
		return domain.Enquiry{}, fmt.Errorf("save enquiry: %w", err)
	}
	return e, nil
}

func (s *EnquiryService) validate(ctx context.Context, in EnquiryInput, fallback locale.Locale) (domain.Enquiry, domain.FieldErrors) {
	fe := domain.FieldErrors{}
	e := domain.Enquiry{
		Kind:    domain.EnquiryKind(strings.ToLower(strings.TrimSpace(in.Kind))),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}

	switch e.Kind {
	case domain.EnquiryContact, domain.EnquiryViewing, domain.EnquiryValuation:
	default:
		fe["kind"] = "field_kind"
	}

	requireText(fe, "name", e.Name, maxNameLen)
	requireText(fe, "message", e.Message, maxMessageLen)

	if requireText(fe, "email", e.Email, maxEmailLen) {
		if addr, err := mail.ParseAddress(e.Email); err != nil || addr.Address != e.Email {
			fe["email"] = "field_email"
		}
	}
	if utf8.RuneCountInString(e.Phone) > maxPhoneLen {
		fe["phone"] = "field_too_long"
	}

	slug := strings.TrimSpace(in.ListingSlug)
	switch {
	case slug != "":
		if _, ok := s.listings.GetBySlug(ctx, slug); !ok {
			fe["listingSlug"] = "field_listing"
		} else {
			e.ListingSlug = &slug
		}
	case e.Kind == domain.EnquiryViewing:
		fe["listingSlug"] = "field_required"
	}

	l := fallback
	if raw := strings.TrimSpace(in.Locale); raw != "" {
		p, ok := locale.Parse(raw)
		if !ok {
			fe["locale"] = "field_locale"
		}
		l = p
	}
	e.Locale = string(l)

	return e, fe
}

// requireText records a field error and reports false when v is empty or too long.
func requireText(fe domain.FieldErrors, field, v string, limit int) bool {
	switch {
	case v == "":
		fe[field] = "field_required"
		return false
	case utf8.RuneCountInString(v) > limit:
		fe[field] = "field_too_long"
		return false
	}
	return true
}
