package httpserver

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"estate_web/internal/auth"
	"estate_web/internal/domain"
)

const recentEnquiriesLimit = 20

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) adminLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	form := render.GetRequestContentType(r) == render.ContentTypeForm
	if form {
		if err := r.ParseForm(); err != nil {
			h.writeProblem(w, r, http.StatusBadRequest, "", nil)
			return
		}
		in.Email, in.Password = r.PostForm.Get("email"), r.PostForm.Get("password")
	} else if err := render.DecodeJSON(r.Body, &in); err != nil {
		h.writeProblem(w, r, http.StatusBadRequest, "", nil)
		return
	}

	if !h.Admin.Check(in.Email, in.Password) {
		log.Warn().Str("remote", remoteIP(r)).Msg("admin login rejected")
		h.writeProblem(w, r, http.StatusUnauthorized, "admin_invalid_credentials", nil)
		return
	}

	subject := strings.ToLower(strings.TrimSpace(in.Email))
	tok, err := h.Sessions.Issue(subject, auth.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("issue admin session")
		h.writeProblem(w, r, http.StatusInternalServerError, "", nil)
		return
	}
	h.Sessions.SetCookie(w, tok)
	log.Info().Str("subject", subject).Msg("admin signed in")

	if form {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	render.JSON(w, r, map[string]string{"subject": subject})
}

func (h *Handlers) adminLogout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearCookie(w)
	render.JSON(w, r, map[string]string{
		"message": h.Translator.T(h.requestLocale(r), "admin_logged_out"),
	})
}

type dashboard struct {
	Subject         string           `json:"subject"`
	Source          string           `json:"source"`
	Listings        int              `json:"listings"`
	Featured        int              `json:"featured"`
	RecentEnquiries []domain.Enquiry `json:"recentEnquiries,omitempty"`
}

func (h *Handlers) adminDashboard(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.FromRequest(r)
	if err != nil || !sess.IsAdmin() {
		http.Redirect(w, r, adminLoginPath, http.StatusSeeOther)
		return
	}

	out := dashboard{
		Subject:  sess.Subject,
		Source:   h.Listings.Source(),
		Listings: len(h.Listings.ListAll(r.Context(), domain.ListingFilters{})),
		Featured: len(h.Listings.ListFeatured(r.Context(), 0)),
	}
	if h.Recent != nil {
		recent, err := h.Recent.RecentEnquiries(r.Context(), recentEnquiriesLimit)
		if err != nil {
			log.Warn().Err(err).Msg("recent enquiries unavailable")
		}
		out.RecentEnquiries = recent
	}
	render.JSON(w, r, out)
}

// adminPurgeListing evicts one listing from the cache; the admin gate guards it.
func (h *Handlers) adminPurgeListing(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := h.Listings.Forget(r.Context(), slug); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("purge listing")
		h.writeProblem(w, r, http.StatusInternalServerError, "", nil)
		return
	}
	log.Info().Str("slug", slug).Msg("listing purged from cache")
	w.WriteHeader(http.StatusNoContent)
}
