package handlers

import (
	"net/http"

	"github.com/villamar/stay-enquiries/internal/directory"
)

// ListCountries serves the dial-code selector; ?q= filters by country name
// or calling code.
func (h *Handlers) ListCountries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var countries []directory.CountryCode
	if query == "" {
		countries = directory.ListAll()
	} else {
		countries = directory.Filter(query)
	}

	writeJSON(w, http.StatusOK, countries)
}
