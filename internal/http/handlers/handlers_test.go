package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/villamar/stay-enquiries/internal/attachments"
	"github.com/villamar/stay-enquiries/internal/domain"
	"github.com/villamar/stay-enquiries/internal/enquiry"
	"github.com/villamar/stay-enquiries/internal/relay"
	"github.com/villamar/stay-enquiries/internal/validation"
)

var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00, 0x01}

type stubBus struct{}

func (stubBus) Publish(ctx context.Context, subject string, data interface{}) error { return nil }
func (stubBus) Close() error                                                        { return nil }

type stubSink struct {
	mu         sync.Mutex
	deliveries int
	err        error
}

func (s *stubSink) Deliver(ctx context.Context, form *domain.ReservationForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries++
	return s.err
}

func setupTestServer(t *testing.T, sink relay.Sink) *httptest.Server {
	t.Helper()

	store := enquiry.NewStore(time.Hour, time.Hour, nil)
	svc := enquiry.NewEnquiryService(
		store,
		attachments.New(1<<20, []string{"image/jpeg", "image/png", "application/pdf"}),
		validation.New(validation.PhonesNone),
		sink,
		stubBus{},
	)
	t.Cleanup(svc.Shutdown)

	r := chi.NewRouter()
	r.Mount("/v1", New(svc).Routes())

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func decodeView(t *testing.T, resp *http.Response) enquiry.SessionView {
	t.Helper()
	defer resp.Body.Close()

	var view enquiry.SessionView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("Failed to decode session view: %v", err)
	}
	return view
}

func uploadDocument(t *testing.T, serverURL, sessionID, slotID, filename string, data []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("document", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	w.Close()

	url := fmt.Sprintf("%s/v1/enquiries/%s/slots/%s/document", serverURL, sessionID, slotID)
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		t.Fatalf("Failed to build upload request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	return resp
}

func openEnquiry(t *testing.T, serverURL string, booking interface{}) enquiry.SessionView {
	t.Helper()

	resp := doJSON(t, http.MethodPost, serverURL+"/v1/enquiries", booking)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}
	return decodeView(t, resp)
}

func selectedBookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"property_name": "Villa Mar",
		"dates": map[string]string{
			"check_in":  "2026-07-10T00:00:00Z",
			"check_out": "2026-07-17T00:00:00Z",
		},
		"party": map[string]int{"adults": 2, "children": 1},
	}
}

func TestOpenEnquiry_EmptyBody(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/enquiries", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	view := decodeView(t, resp)
	if view.State != domain.FlowSelectingDates {
		t.Fatalf("Expected state selecting_dates, got %s", view.State)
	}
	if len(view.Slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(view.Slots))
	}
}

func TestOpenEnquiry_WithBookingContext(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	view := openEnquiry(t, server.URL, selectedBookingPayload())
	if view.State != domain.FlowCapturingDetails {
		t.Fatalf("Expected state capturing_details, got %s", view.State)
	}
	if len(view.Slots) != 2 {
		t.Fatalf("Expected 2 slots, got %d", len(view.Slots))
	}
}

func TestOpenEnquiry_InvalidJSON(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	resp, err := http.Post(server.URL+"/v1/enquiries", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestGetEnquiry_NotFound(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	resp := doJSON(t, http.MethodGet, server.URL+"/v1/enquiries/missing", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestFullEnquiryFlow(t *testing.T) {
	sink := &stubSink{}
	server := setupTestServer(t, sink)

	view := openEnquiry(t, server.URL, nil)

	// Pick dates and a party of two.
	resp := doJSON(t, http.MethodPut, server.URL+"/v1/enquiries/"+view.ID+"/selection", map[string]interface{}{
		"dates": map[string]string{
			"check_in":  "2026-07-10T00:00:00Z",
			"check_out": "2026-07-17T00:00:00Z",
		},
		"party": map[string]int{"adults": 2},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Selection: expected 200, got %d", resp.StatusCode)
	}
	view = decodeView(t, resp)
	if view.State != domain.FlowCapturingDetails {
		t.Fatalf("Expected state capturing_details, got %s", view.State)
	}

	// Enter contact and guest details.
	resp = doJSON(t, http.MethodPut, server.URL+"/v1/enquiries/"+view.ID+"/details", map[string]interface{}{
		"contact": map[string]string{
			"full_name": "Ana Silva",
			"phone":     "912345678",
			"dial_code": "+351",
			"email":     "Ana@Example.com",
		},
		"payment": "cash",
		"guests": []map[string]string{
			{"slot_id": view.Slots[1].ID, "full_name": "Bruno Silva"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Details: expected 200, got %d", resp.StatusCode)
	}
	view = decodeView(t, resp)
	if view.Contact.Email != "ana@example.com" {
		t.Fatalf("Expected the email normalized, got %s", view.Contact.Email)
	}

	// Stage a document on each slot.
	for _, slot := range view.Slots {
		resp = uploadDocument(t, server.URL, view.ID, slot.ID, "passport.jpg", jpegBytes)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Upload: expected 200, got %d", resp.StatusCode)
		}
		view = decodeView(t, resp)
	}
	for _, slot := range view.Slots {
		if slot.Document == nil {
			t.Fatalf("Expected a staged document on slot %s", slot.ID)
		}
		if slot.Document.ContentType != "image/jpeg" {
			t.Fatalf("Expected sniffed image/jpeg, got %s", slot.Document.ContentType)
		}
	}

	// Submit.
	resp = doJSON(t, http.MethodPost, server.URL+"/v1/enquiries/"+view.ID+"/submit", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Submit: expected 200, got %d", resp.StatusCode)
	}

	var result enquiry.SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode submit result: %v", err)
	}
	resp.Body.Close()

	if !result.Validation.OK {
		t.Fatalf("Expected validation to pass, got %v", result.Validation.Violations)
	}
	if result.Session.State != domain.FlowConfirmed {
		t.Fatalf("Expected state confirmed, got %s", result.Session.State)
	}
	if sink.deliveries != 1 {
		t.Fatalf("Expected exactly one delivery, got %d", sink.deliveries)
	}

	// The confirmation view no longer exposes document metadata; the staged
	// bytes were released on success.
	resp = doJSON(t, http.MethodGet, server.URL+"/v1/enquiries/"+view.ID, nil)
	view = decodeView(t, resp)
	for _, slot := range view.Slots {
		if slot.Document != nil {
			t.Fatal("Expected documents released after confirmation")
		}
	}
}

// TestFullFlowThroughFormRelay drives the whole pipeline against a local
// stand-in for the hosted relay and checks what actually went over the wire.
func TestFullFlowThroughFormRelay(t *testing.T) {
	var (
		mu     sync.Mutex
		fields map[string][]string
		files  []string
	)
	relayServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		fields = r.MultipartForm.Value
		for name := range r.MultipartForm.File {
			files = append(files, name)
		}
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer relayServer.Close()

	sink := relay.NewFormRelay(relayServer.URL, 5*time.Second, relay.Options{
		Subject: "New booking enquiry",
		ReplyTo: "bookings@example.com",
	})
	server := setupTestServer(t, sink)

	view := openEnquiry(t, server.URL, selectedBookingPayload())

	resp := doJSON(t, http.MethodPut, server.URL+"/v1/enquiries/"+view.ID+"/details", map[string]interface{}{
		"contact": map[string]string{
			"full_name": "Ana Silva",
			"phone":     "912345678",
			"dial_code": "+351",
			"email":     "ana@example.com",
		},
		"guests": []map[string]string{
			{"slot_id": view.Slots[1].ID, "full_name": "Bruno Silva"},
		},
	})
	view = decodeView(t, resp)

	for _, slot := range view.Slots {
		resp = uploadDocument(t, server.URL, view.ID, slot.ID, "passport.jpg", jpegBytes)
		view = decodeView(t, resp)
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/v1/enquiries/"+view.ID+"/submit", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Submit: expected 200, got %d", resp.StatusCode)
	}
	var result enquiry.SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode submit result: %v", err)
	}
	resp.Body.Close()
	if result.Session.State != domain.FlowConfirmed {
		t.Fatalf("Expected state confirmed, got %s", result.Session.State)
	}

	mu.Lock()
	defer mu.Unlock()
	if got := fields["name"]; len(got) != 1 || got[0] != "Ana Silva" {
		t.Fatalf("Expected the contact name on the wire, got %v", got)
	}
	if got := fields["_captcha"]; len(got) != 1 || got[0] != "false" {
		t.Fatalf("Expected captcha suppression on the wire, got %v", got)
	}
	if got := fields["guest_2_name"]; len(got) != 1 || got[0] != "Bruno Silva" {
		t.Fatalf("Expected the second guest name on the wire, got %v", got)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 document parts, got %v", files)
	}
	for _, name := range files {
		if name != "document_guest_1" && name != "document_guest_2" {
			t.Fatalf("Unexpected document part name %s", name)
		}
	}
}

func TestSubmit_ValidationFailureReturns422(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	view := openEnquiry(t, server.URL, selectedBookingPayload())

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/enquiries/"+view.ID+"/submit", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", resp.StatusCode)
	}

	var payload struct {
		Code       string            `json:"code"`
		Validation validation.Result `json:"validation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if payload.Validation.OK || len(payload.Validation.Violations) == 0 {
		t.Fatal("Expected the violation list in the response")
	}
}

func TestSubmit_RelayFailureSurfacesOutcome(t *testing.T) {
	sink := &stubSink{err: &relay.RejectedError{Status: 502}}
	server := setupTestServer(t, sink)

	view := openEnquiry(t, server.URL, selectedBookingPayload())

	resp := doJSON(t, http.MethodPut, server.URL+"/v1/enquiries/"+view.ID+"/details", map[string]interface{}{
		"contact": map[string]string{
			"full_name": "Ana Silva",
			"phone":     "912345678",
			"email":     "ana@example.com",
		},
		"guests": []map[string]string{
			{"slot_id": view.Slots[1].ID, "full_name": "Bruno Silva"},
		},
	})
	view = decodeView(t, resp)

	for _, slot := range view.Slots {
		resp = uploadDocument(t, server.URL, view.ID, slot.ID, "passport.jpg", jpegBytes)
		view = decodeView(t, resp)
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/v1/enquiries/"+view.ID+"/submit", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 with a failed outcome, got %d", resp.StatusCode)
	}

	var result enquiry.SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode submit result: %v", err)
	}
	resp.Body.Close()

	if result.Session.Outcome.State != domain.SubmissionFailed {
		t.Fatalf("Expected outcome failed, got %s", result.Session.Outcome.State)
	}
	if result.Session.State != domain.FlowCapturingDetails {
		t.Fatalf("Expected flow back in capturing_details, got %s", result.Session.State)
	}
}

func TestAttachDocument_RejectsWrongType(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	view := openEnquiry(t, server.URL, selectedBookingPayload())

	resp := uploadDocument(t, server.URL, view.ID, view.Slots[0].ID, "notes.txt", []byte("plain text"))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Fatalf("Expected 415, got %d", resp.StatusCode)
	}
}

func TestAttachDocument_UnknownSlot(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	view := openEnquiry(t, server.URL, selectedBookingPayload())

	resp := uploadDocument(t, server.URL, view.ID, "no-such-slot", "passport.jpg", jpegBytes)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestDetachDocument(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	view := openEnquiry(t, server.URL, selectedBookingPayload())
	slotID := view.Slots[0].ID

	resp := uploadDocument(t, server.URL, view.ID, slotID, "passport.jpg", jpegBytes)
	decodeView(t, resp)

	resp = doJSON(t, http.MethodDelete, server.URL+"/v1/enquiries/"+view.ID+"/slots/"+slotID+"/document", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	view = decodeView(t, resp)
	if view.Slots[0].Document != nil {
		t.Fatal("Expected the document detached")
	}
}

func TestBackEndpoint(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	view := openEnquiry(t, server.URL, selectedBookingPayload())

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/enquiries/"+view.ID+"/back", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	view = decodeView(t, resp)
	if view.State != domain.FlowSelectingDates {
		t.Fatalf("Expected state selecting_dates, got %s", view.State)
	}
}

func TestCloseEnquiry(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	view := openEnquiry(t, server.URL, nil)

	resp := doJSON(t, http.MethodDelete, server.URL+"/v1/enquiries/"+view.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/v1/enquiries/"+view.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected 404 after close, got %d", resp.StatusCode)
	}
}

func TestListCountries(t *testing.T) {
	server := setupTestServer(t, &stubSink{})

	resp := doJSON(t, http.MethodGet, server.URL+"/v1/countries", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var all []struct {
		CallingCode string `json:"calling_code"`
		CountryName string `json:"country_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		t.Fatalf("Failed to decode countries: %v", err)
	}
	resp.Body.Close()
	if len(all) == 0 {
		t.Fatal("Expected a non-empty directory")
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/v1/countries?q=971", nil)
	var filtered []struct {
		CountryName string `json:"country_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&filtered); err != nil {
		t.Fatalf("Failed to decode filtered countries: %v", err)
	}
	resp.Body.Close()

	found := false
	for _, c := range filtered {
		if c.CountryName == "United Arab Emirates" {
			found = true
		}
	}
	if !found {
		t.Fatal("Expected the filter to match the United Arab Emirates")
	}
}
