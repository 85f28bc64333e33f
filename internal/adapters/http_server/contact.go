package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"estate_web/internal/app"
	"estate_web/internal/domain"
)

type enquiryAccepted struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (h *Handlers) submitEnquiry(w http.ResponseWriter, r *http.Request) {
	l := h.requestLocale(r)

	var in app.EnquiryInput
	if err := render.DecodeJSON(r.Body, &in); err != nil {
		h.writeProblem(w, r, http.StatusBadRequest, "", nil)
		return
	}

	e, err := h.Enquiries.Submit(r.Context(), in, l)
	var fe domain.FieldErrors
	switch {
	case errors.As(err, &fe):
		msgs := make(map[string]string, len(fe))
		for field, id := range fe {
			msgs[field] = h.Translator.T(l, id)
		}
		h.writeProblemWith(w, r, problem{Status: http.StatusUnprocessableEntity, Errors: msgs}, "", nil)
		return
	case err != nil:
		log.Error().Err(err).Str("kind", in.Kind).Msg("enquiry failed")
		h.writeProblem(w, r, http.StatusInternalServerError, "", nil)
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, enquiryAccepted{
		ID:      e.ID,
		Message: h.Translator.With(l, "contact_accepted", map[string]any{"Name": e.Name}),
	})
}
