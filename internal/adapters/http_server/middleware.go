package httpserver

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"estate_web/internal/adapters/observability"
	"estate_web/internal/auth"
	"estate_web/internal/locale"
)

const adminLoginPath = "/admin/login"

func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return http.TimeoutHandler(next, d, "timeout") }
}

// ---- status-recording ResponseWriter ----

type srw struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *srw) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *srw) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *srw) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// ---- Metrics middleware ----

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &srw{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		observability.ObserveHTTP(routeOf(r), r.Method, sw.Status(), time.Since(start))
	})
}

// ---- Structured logging middleware ----

func Logger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &srw{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			l.Info().
				Str("route", routeOf(r)).
				Str("method", r.Method).
				Int("status", sw.Status()).
				Dur("duration", time.Since(start)).
				Str("remote", remoteIP(r)).
				Str("ua", r.UserAgent()).
				Str("request_id", chimw.GetReqID(r.Context())).
				Msg("http_request")
		})
	}
}

// Picks first X-Forwarded-For IP, else X-Real-IP, else RemoteAddr host.
func remoteIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

// ---- Site routing: admin gate, locale prefix, canonical host ----

type SessionSource interface {
	FromRequest(r *http.Request) (*auth.Session, error)
}

type SiteRouting struct {
	Resolver locale.Resolver
	Sessions SessionSource
	// CanonicalHost is the www host bare-domain requests are sent to. Empty disables it.
	CanonicalHost string
	Production    bool
}

// Handler runs, in order: the admin gate, exempt pass-through, locale
// redirection and, in production, canonical host enforcement. Requests that
// continue carry their locale in the context.
func (s SiteRouting) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path

		if isAdminPath(p) && p != adminLoginPath && !s.admin(r) {
			observability.ObserveRedirect("admin", "")
			http.Redirect(w, r, adminLoginPath, http.StatusSeeOther)
			return
		}

		if locale.Exempt(p) {
			next.ServeHTTP(w, r)
			return
		}

		res := s.Resolver.Resolve(r.URL.EscapedPath(), r.Cookies(), r.Header)
		if !res.Explicit {
			target := res.RedirectPath
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.SetCookie(w, &http.Cookie{
				Name:     locale.CookieName,
				Value:    string(res.Locale),
				Path:     "/",
				MaxAge:   locale.CookieMaxAge,
				SameSite: http.SameSiteLaxMode,
			})
			observability.ObserveRedirect("locale", string(res.Locale))
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
			return
		}

		if target, ok := s.canonical(r); ok {
			observability.ObserveRedirect("canonical", string(res.Locale))
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r.WithContext(locale.ToContext(r.Context(), res.Locale)))
	})
}

func (s SiteRouting) admin(r *http.Request) bool {
	if s.Sessions == nil {
		return false
	}
	sess, err := s.Sessions.FromRequest(r)
	return err == nil && sess.IsAdmin()
}

// canonical returns the www URL for a request addressed to the bare domain.
func (s SiteRouting) canonical(r *http.Request) (string, bool) {
	if !s.Production || s.CanonicalHost == "" {
		return "", false
	}
	bare := strings.TrimPrefix(s.CanonicalHost, "www.")
	if bare == s.CanonicalHost {
		return "", false
	}
	host := strings.ToLower(r.Host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host != bare {
		return "", false
	}
	return "https://" + s.CanonicalHost + r.URL.RequestURI(), true
}

func isAdminPath(p string) bool {
	return p == "/admin" || strings.HasPrefix(p, "/admin/")
}
