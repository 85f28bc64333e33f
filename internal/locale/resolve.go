package locale

import (
	"net/http"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// countryLocales maps ISO country codes from the geo header to a site locale.
var countryLocales = map[string]Locale{
	"CZ": Cs,
	"SK": Cs,
}

var exemptPrefixes = []string{
	"/api",
	"/static",
	"/assets",
	"/admin",
	"/metrics",
	"/healthz",
	"/.well-known",
	"/favicon.ico",
	"/robots.txt",
	"/sitemap.xml",
	"/manifest.json",
}

var assetExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".svg": {}, ".ico": {}, ".webp": {}, ".avif": {},
	".css": {}, ".js": {}, ".map": {}, ".txt": {}, ".xml": {}, ".json": {}, ".woff": {}, ".woff2": {},
}

// Exempt reports whether p bypasses locale redirection entirely.
func Exempt(p string) bool {
	for _, pre := range exemptPrefixes {
		if p == pre || strings.HasPrefix(p, pre+"/") {
			return true
		}
	}
	_, ok := assetExts[strings.ToLower(path.Ext(p))]
	return ok
}

type Resolution struct {
	Locale Locale
	// Explicit is set when the path already starts with a locale segment.
	Explicit bool
	// RedirectPath is the locale-prefixed target when the locale was inferred.
	RedirectPath string
}

type Resolver struct {
	// CountryHeader names the request header carrying the client's country code.
	CountryHeader string
}

// Resolve picks the locale for a request. Only the first path segment counts as
// an explicit locale; otherwise the cookie, country header and Accept-Language
// are consulted in that order before falling back to Default.
func (r Resolver) Resolve(p string, cookies []*http.Cookie, h http.Header) Resolution {
	if seg := Locale(firstSegment(p)); slices.Contains(Supported, seg) {
		return Resolution{Locale: seg, Explicit: true}
	}
	l := r.infer(cookies, h)
	return Resolution{Locale: l, RedirectPath: prefixed(l, p)}
}

func (r Resolver) infer(cookies []*http.Cookie, h http.Header) Locale {
	for _, c := range cookies {
		if c.Name != CookieName {
			continue
		}
		if l, ok := Parse(c.Value); ok {
			return l
		}
	}
	if r.CountryHeader != "" {
		if l, ok := countryLocales[strings.ToUpper(strings.TrimSpace(h.Get(r.CountryHeader)))]; ok {
			return l
		}
	}
	if wantsCzech(h.Get("Accept-Language")) {
		return Cs
	}
	return Default
}

func wantsCzech(accept string) bool {
	if accept == "" {
		return false
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil {
		return strings.Contains(strings.ToLower(accept), "cs")
	}
	for _, t := range tags {
		if base, _ := t.Base(); base.String() == "cs" {
			return true
		}
	}
	return false
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

func prefixed(l Locale, p string) string {
	if p == "" || p == "/" {
		return "/" + string(l)
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return "/" + string(l) + p
}
