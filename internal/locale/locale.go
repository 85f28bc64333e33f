// Package locale decides which site language a request is served in and
// translates the site's messages into it.
package locale

import (
	"context"
	"strings"
)

type Locale string

const (
	En Locale = "en"
	Cs Locale = "cs"

	Default = En

	// CookieName stores the visitor's resolved locale between requests.
	CookieName   = "NEXT_LOCALE"
	CookieMaxAge = 365 * 24 * 60 * 60
)

var Supported = []Locale{En, Cs}

// Parse accepts a recognized locale code, case-insensitively.
func Parse(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case En:
		return En, true
	case Cs:
		return Cs, true
	}
	return "", false
}

func (l Locale) String() string { return string(l) }

type ctxKey struct{}

// ToContext stores l on ctx for downstream handlers.
func ToContext(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Lookup returns the locale stored on ctx, if any.
func Lookup(ctx context.Context) (Locale, bool) {
	l, ok := ctx.Value(ctxKey{}).(Locale)
	return l, ok
}

// FromContext returns the locale stored on ctx, or Default.
func FromContext(ctx context.Context) Locale {
	if l, ok := Lookup(ctx); ok {
		return l
	}
	return Default
}
