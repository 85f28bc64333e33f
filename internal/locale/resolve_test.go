package locale_test

import (
	"net/http"
	"testing"

	"estate_web/internal/locale"
)

func TestResolve(t *testing.T) {
	r := locale.Resolver{CountryHeader: "X-Country"}

	cases := []struct {
		name     string
		path     string
		cookie   string
		country  string
		accept   string
		want     locale.Locale
		explicit bool
		redirect string
	}{
		{name: "explicit cs segment", path: "/cs/listings", cookie: "en", want: locale.Cs, explicit: true},
		{name: "explicit en root", path: "/en", want: locale.En, explicit: true},
		{name: "uppercase segment is not explicit", path: "/CS/listings", want: locale.En, redirect: "/en/CS/listings"},
		{name: "segment prefix is not a locale", path: "/english", want: locale.En, redirect: "/en/english"},
		{name: "cookie wins over headers", path: "/listings", cookie: "cs", country: "US", accept: "en-US", want: locale.Cs, redirect: "/cs/listings"},
		{name: "invalid cookie ignored", path: "/listings", cookie: "de", want: locale.En, redirect: "/en/listings"},
		{name: "country CZ", path: "/", country: "CZ", want: locale.Cs, redirect: "/cs"},
		{name: "country SK lower case", path: "/blog", country: "sk", want: locale.Cs, redirect: "/cs/blog"},
		{name: "accept-language czech", path: "/", country: "DE", accept: "de-DE,cs;q=0.8", want: locale.Cs, redirect: "/cs"},
		{name: "accept-language english default", path: "/", accept: "en-US", want: locale.En, redirect: "/en"},
		{name: "nothing at all", path: "", want: locale.En, redirect: "/en"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := http.Header{}
			if tc.country != "" {
				h.Set("X-Country", tc.country)
			}
			if tc.accept != "" {
				h.Set("Accept-Language", tc.accept)
			}
			var cookies []*http.Cookie
			if tc.cookie != "" {
				cookies = append(cookies, &http.Cookie{Name: locale.CookieName, Value: tc.cookie})
			}

			got := r.Resolve(tc.path, cookies, h)
			if got.Locale != tc.want || got.Explicit != tc.explicit || got.RedirectPath != tc.redirect {
				t.Fatalf("got %+v, want locale=%s explicit=%v redirect=%q", got, tc.want, tc.explicit, tc.redirect)
			}
		})
	}
}

func TestResolve_NoCountryHeaderConfigured(t *testing.T) {
	h := http.Header{}
	h.Set("X-Country", "CZ")
	got := locale.Resolver{}.Resolve("/", nil, h)
	if got.Locale != locale.En {
		t.Fatalf("got %s, want en", got.Locale)
	}
}

func TestExempt(t *testing.T) {
	exempt := []string{"/api/contact", "/api", "/admin", "/admin/login", "/static/x.css", "/favicon.ico",
		"/robots.txt", "/.well-known/security.txt", "/images/logo.png", "/metrics", "/healthz"}
	for _, p := range exempt {
		if !locale.Exempt(p) {
			t.Errorf("%s should be exempt", p)
		}
	}
	for _, p := range []string{"/", "/listings", "/apiary", "/administrator", "/en/listings/villa"} {
		if locale.Exempt(p) {
			t.Errorf("%s should not be exempt", p)
		}
	}
}

func TestParse(t *testing.T) {
	if l, ok := locale.Parse(" CS "); !ok || l != locale.Cs {
		t.Fatalf("Parse(CS) = %s, %v", l, ok)
	}
	if _, ok := locale.Parse("de"); ok {
		t.Fatalf("de should not parse")
	}
}
