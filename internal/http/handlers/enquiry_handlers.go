package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/villamar/stay-enquiries/internal/domain"
	"github.com/villamar/stay-enquiries/internal/enquiry"
	"github.com/villamar/stay-enquiries/internal/http/response"
)

const maxUploadMemory = 10 << 20

// OpenEnquiry starts a new session; an optional booking context in the
// body lets the flow begin at detail capture.
func (h *Handlers) OpenEnquiry(w http.ResponseWriter, r *http.Request) {
	var booking *domain.BookingContext
	if r.ContentLength != 0 {
		booking = &domain.BookingContext{}
		if err := json.NewDecoder(r.Body).Decode(booking); err != nil {
			response.BadRequest(w, "Invalid JSON format")
			return
		}
	}

	view, err := h.enquiryService.Open(r.Context(), booking)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

func (h *Handlers) GetEnquiry(w http.ResponseWriter, r *http.Request) {
	view, err := h.enquiryService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req enquiry.SelectionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	view, err := h.enquiryService.SetSelection(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) SetDetails(w http.ResponseWriter, r *http.Request) {
	var req enquiry.DetailsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	view, err := h.enquiryService.SetDetails(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.enquiryService.Back(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// AttachDocument stages one identity document for a guest slot from a
// multipart upload.
func (h *Handlers) AttachDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.PayloadTooLarge(w, "Upload too large")
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		response.BadRequest(w, "Missing document file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(w, "Failed to read document")
		return
	}

	view, err := h.enquiryService.AttachDocument(
		r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "slotID"),
		header.Filename,
		data,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) DetachDocument(w http.ResponseWriter, r *http.Request) {
	view, err := h.enquiryService.DetachDocument(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "slotID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Submit runs validation and, when it passes, dispatches the enquiry.
// Violations come back as 422 with the full list; a dispatch attempt
// returns 200 with the outcome either way so the UI can branch.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.enquiryService.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !result.Validation.OK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":      "Validation failed",
			"code":       response.CodeValidationFailed,
			"validation": result.Validation,
			"session":    result.Session,
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CloseEnquiry(w http.ResponseWriter, r *http.Request) {
	if err := h.enquiryService.Close(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
