package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog/log"

	"estate_web/internal/app"
	"estate_web/internal/auth"
	"estate_web/internal/domain"
	"estate_web/internal/locale"
	"estate_web/internal/staticdata"
)

type Handlers struct {
	Listings   *app.ListingsRepository
	Enquiries  *app.EnquiryService
	Translator *locale.Translator
	// Resolver infers a locale for routes that carry none in the path.
	Resolver locale.Resolver

	Sessions *auth.Sessions
	Admin    auth.Credentials
	// Recent is nil when the enquiry store cannot list what it saved.
	Recent domain.EnquiryLister

	FeaturedLimit int
	// FormRate caps form posts per client IP per minute. Zero disables it.
	FormRate int
}

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

var problemTitles = map[int]string{
	http.StatusBadRequest:          "problem_bad_request",
	http.StatusUnauthorized:        "problem_unauthorized",
	http.StatusNotFound:            "problem_not_found",
	http.StatusUnprocessableEntity: "problem_unprocessable",
	http.StatusInternalServerError: "problem_internal",
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.NotFound(h.notFound)

	s.mux.Route("/{locale:(en|cs)}", func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/listings", h.listListings)
		r.Get("/listings/{slug}", h.getListing)
		r.Get("/agents", h.listAgents)
		r.Get("/agents/{slug}", h.getAgent)
		r.Get("/offices", h.listOffices)
		r.Get("/blog", h.listArticles)
		r.Get("/blog/{slug}", h.getArticle)
	})

	s.mux.Group(func(r chi.Router) {
		if h.FormRate > 0 {
			r.Use(httprate.LimitByIP(h.FormRate, time.Minute))
		}
		r.Post("/api/contact", h.submitEnquiry)
		r.Post(adminLoginPath, h.adminLogin)
	})
	s.mux.Post("/admin/logout", h.adminLogout)
	s.mux.Get("/admin", h.adminDashboard)
	s.mux.Post("/admin/listings/{slug}/purge", h.adminPurgeListing)
}

// requestLocale prefers the path segment, then the context set by SiteRouting,
// then inference from cookie and headers for unprefixed routes.
func (h *Handlers) requestLocale(r *http.Request) locale.Locale {
	if l, ok := locale.Parse(chi.URLParam(r, "locale")); ok {
		return l
	}
	if l, ok := locale.Lookup(r.Context()); ok {
		return l
	}
	return h.Resolver.Resolve("/", r.Cookies(), r.Header).Locale
}

func (h *Handlers) view(r *http.Request) viewer {
	return viewer{l: h.requestLocale(r), tr: h.Translator}
}

func (h *Handlers) writeProblem(w http.ResponseWriter, r *http.Request, status int, detailID string, data map[string]any) {
	h.writeProblemWith(w, r, problem{Status: status}, detailID, data)
}

func (h *Handlers) writeProblemWith(w http.ResponseWriter, r *http.Request, p problem, detailID string, data map[string]any) {
	l := h.requestLocale(r)
	p.Type = "about:blank"
	if id, ok := problemTitles[p.Status]; ok {
		p.Title = h.Translator.T(l, id)
	} else {
		p.Title = http.StatusText(p.Status)
	}
	if detailID != "" {
		p.Detail = h.Translator.With(l, detailID, data)
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("Content-Language", string(l))
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON answers 304 when If-None-Match carries the current ETag.
func writeJSON(w http.ResponseWriter, r *http.Request, l locale.Locale, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", string(l))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeProblem(w, r, http.StatusNotFound, "", nil)
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	featured := h.Listings.ListFeatured(r.Context(), h.FeaturedLimit)
	writeJSON(w, r, v.l, map[string]any{
		"locale":   v.l,
		"headline": h.Translator.T(v.l, "home_headline"),
		"featured": v.listings(featured),
	})
}

func (h *Handlers) listListings(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	f, detailID, param := parseFilters(r.URL.Query())
	if detailID != "" {
		h.writeProblem(w, r, http.StatusBadRequest, detailID, map[string]any{"Param": param})
		return
	}

	items := h.Listings.ListAll(r.Context(), f)
	writeJSON(w, r, v.l, map[string]any{
		"locale": v.l,
		"title":  h.Translator.T(v.l, "listings_title"),
		"count":  h.Translator.Count(v.l, "listings_count", map[string]any{"Count": len(items)}, len(items)),
		"total":  len(items),
		"items":  v.listings(items),
	})
}

func (h *Handlers) getListing(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	l, ok := h.Listings.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if !ok {
		h.writeProblem(w, r, http.StatusNotFound, "listing_not_found", nil)
		return
	}
	writeJSON(w, r, v.l, v.listing(l, true))
}

func (h *Handlers) listAgents(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	agents := staticdata.Agents()
	out := make([]agentView, 0, len(agents))
	for _, a := range agents {
		out = append(out, v.agent(a, true))
	}
	writeJSON(w, r, v.l, map[string]any{
		"title": h.Translator.T(v.l, "agents_title"),
		"items": out,
	})
}

func (h *Handlers) getAgent(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	a, ok := staticdata.Agent(chi.URLParam(r, "slug"))
	if !ok {
		h.writeProblem(w, r, http.StatusNotFound, "agent_not_found", nil)
		return
	}
	var mine []domain.Listing
	for _, l := range h.Listings.ListAll(r.Context(), domain.ListingFilters{}) {
		if l.AgentSlug == a.Slug {
			mine = append(mine, l)
		}
	}
	writeJSON(w, r, v.l, map[string]any{
		"agent":    v.agent(a, true),
		"listings": v.listings(mine),
	})
}

func (h *Handlers) listOffices(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	agents := staticdata.Agents()
	var out []officeView
	for _, o := range staticdata.Offices() {
		ov := office(o)
		for _, a := range agents {
			if a.OfficeSlug == o.Slug {
				ov.Agents = append(ov.Agents, v.agent(a, false))
			}
		}
		out = append(out, ov)
	}
	writeJSON(w, r, v.l, map[string]any{
		"title": h.Translator.T(v.l, "offices_title"),
		"items": out,
	})
}

func (h *Handlers) listArticles(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	articles := staticdata.Articles()
	out := make([]articleView, 0, len(articles))
	for _, a := range articles {
		out = append(out, v.article(a, false))
	}
	writeJSON(w, r, v.l, map[string]any{
		"title": h.Translator.T(v.l, "blog_title"),
		"items": out,
	})
}

func (h *Handlers) getArticle(w http.ResponseWriter, r *http.Request) {
	v := h.view(r)
	a, ok := staticdata.Article(chi.URLParam(r, "slug"))
	if !ok {
		h.writeProblem(w, r, http.StatusNotFound, "article_not_found", nil)
		return
	}
	writeJSON(w, r, v.l, v.article(a, true))
}

// parseFilters maps query parameters onto filters. On failure it returns the
// message id describing the problem and the offending parameter.
func parseFilters(q url.Values) (f domain.ListingFilters, detailID, param string) {
	if s := strings.TrimSpace(q.Get("category")); s != "" {
		c := domain.Category(s)
		if !c.Valid() {
			return f, "invalid_category", "category"
		}
		f.Category = &c
	}
	if s := strings.TrimSpace(q.Get("location")); s != "" {
		f.Location = &s
	}
	if s := strings.TrimSpace(q.Get("postalCode")); s != "" {
		f.PostalCode = &s
	}

	for _, p := range []struct {
		name string
		dst  **int64
	}{{"minPrice", &f.MinPrice}, {"maxPrice", &f.MaxPrice}} {
		if s := strings.TrimSpace(q.Get(p.name)); s != "" {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil || n < 0 {
				return f, "invalid_param", p.name
			}
			*p.dst = &n
		}
	}
	for _, p := range []struct {
		name string
		dst  **int
	}{{"beds", &f.MinBeds}, {"baths", &f.MinBaths}} {
		if s := strings.TrimSpace(q.Get(p.name)); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return f, "invalid_param", p.name
			}
			*p.dst = &n
		}
	}

	switch strings.ToLower(strings.TrimSpace(q.Get("featured"))) {
	case "1", "true", "yes":
		f.Featured = true
	}
	for _, raw := range q["features"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Features = append(f.Features, tag)
			}
		}
	}
	return f, "", ""
}
