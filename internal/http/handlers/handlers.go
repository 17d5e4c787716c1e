package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/villamar/stay-enquiries/internal/domain"
	"github.com/villamar/stay-enquiries/internal/enquiry"
	"github.com/villamar/stay-enquiries/internal/http/response"
)

type Handlers struct {
	enquiryService enquiry.EnquiryService
}

func New(enquiryService enquiry.EnquiryService) *Handlers {
	return &Handlers{
		enquiryService: enquiryService,
	}
}

// Routes wires the public API surface.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/countries", h.ListCountries)

	r.Route("/enquiries", func(r chi.Router) {
		r.Post("/", h.OpenEnquiry)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetEnquiry)
			r.Delete("/", h.CloseEnquiry)
			r.Put("/selection", h.SetSelection)
			r.Put("/details", h.SetDetails)
			r.Post("/back", h.Back)
			r.Post("/submit", h.Submit)
			r.Route("/slots/{slotID}/document", func(r chi.Router) {
				r.Post("/", h.AttachDocument)
				r.Delete("/", h.DetachDocument)
			})
		})
	})

	return r
}

// Helper functions for common response patterns
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps domain errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		response.NotFound(w, "Enquiry not found")
	case errors.Is(err, domain.ErrSlotNotFound):
		response.NotFound(w, "Guest slot not found")
	case errors.Is(err, domain.ErrSubmissionPending):
		response.Conflict(w, "A submission is already in progress", response.CodeSubmissionPending)
	case errors.Is(err, domain.ErrSessionConfirmed):
		response.Conflict(w, "This enquiry has already been confirmed", response.CodeAlreadyConfirmed)
	case errors.Is(err, domain.ErrInvalidTransition):
		response.Conflict(w, "Operation not allowed in the current step", response.CodeConflict)
	case errors.Is(err, domain.ErrDocumentTooLarge):
		response.PayloadTooLarge(w, err.Error())
	case errors.Is(err, domain.ErrDocumentType):
		response.UnsupportedMedia(w, err.Error())
	default:
		response.BadRequest(w, err.Error())
	}
}
