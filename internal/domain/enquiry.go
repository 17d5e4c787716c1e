package domain

import (
	"errors"
	"time"
)

type FlowState string

const (
	FlowSelectingDates   FlowState = "selecting_dates"
	FlowCapturingDetails FlowState = "capturing_details"
	FlowSubmitting       FlowState = "submitting"
	FlowConfirmed        FlowState = "confirmed"
)

type SubmissionState string

const (
	SubmissionIdle      SubmissionState = "idle"
	SubmissionPending   SubmissionState = "pending"
	SubmissionSucceeded SubmissionState = "succeeded"
	SubmissionFailed    SubmissionState = "failed"
)

// SubmissionOutcome drives UI feedback only; it is never persisted.
type SubmissionOutcome struct {
	State       SubmissionState `json:"state"`
	ErrorDetail string          `json:"error_detail,omitempty"`
}

type PaymentPreference string

const (
	PaymentCard PaymentPreference = "card"
	PaymentCash PaymentPreference = "cash"
)

func ParsePaymentPreference(s string) (PaymentPreference, bool) {
	switch PaymentPreference(s) {
	case PaymentCard, PaymentCash:
		return PaymentPreference(s), true
	default:
		return "", false
	}
}

// DocumentRef is an in-memory handle to a guest identity document. It is
// owned exclusively by the slot that references it and released on detach
// or session teardown.
type DocumentRef struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// GuestSlot is one occupant requiring identity verification. The main guest
// occupies index 0 for the lifetime of the form; additional slots come and
// go with the declared adult count.
type GuestSlot struct {
	ID       string       `json:"id"`
	Index    int          `json:"index"`
	FullName string       `json:"full_name"`
	Phone    string       `json:"phone,omitempty"`
	Document *DocumentRef `json:"document,omitempty"`
}

func (s *GuestSlot) IsMain() bool {
	return s.Index == 0
}

type PartyComposition struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// BookingContext arrives from the property/calendar selection upstream and
// is never mutated by the pipeline.
type BookingContext struct {
	PropertyID   *int64           `json:"property_id,omitempty"`
	PropertyName string           `json:"property_name,omitempty"`
	Dates        *DateRange       `json:"dates,omitempty"`
	Party        PartyComposition `json:"party"`
}

// Selected reports whether dates and party size have both been chosen,
// which is what lets a flow skip straight to detail capture.
func (c *BookingContext) Selected() bool {
	return c.Dates != nil && c.Party.Adults >= MinAdults
}

type PrimaryContact struct {
	FullName    string `json:"full_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	DialCode    string `json:"dial_code,omitempty"`
	Email       string `json:"email" validate:"required,email"`
	Nationality string `json:"nationality,omitempty"`
}

// ReservationForm aggregates everything a single checkout visit collects.
// Slots[0] is always the main guest.
type ReservationForm struct {
	Contact PrimaryContact    `json:"contact"`
	Payment PaymentPreference `json:"payment"`
	Slots   []GuestSlot       `json:"slots"`
	Context BookingContext    `json:"context"`
}

func (f *ReservationForm) MainSlot() *GuestSlot {
	if len(f.Slots) == 0 {
		return nil
	}
	return &f.Slots[0]
}

func (f *ReservationForm) AdditionalSlots() []GuestSlot {
	if len(f.Slots) <= 1 {
		return nil
	}
	return f.Slots[1:]
}

func (f *ReservationForm) SlotByID(id string) *GuestSlot {
	for i := range f.Slots {
		if f.Slots[i].ID == id {
			return &f.Slots[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the form. Document byte slices are shared
// with the original; staged bytes are never mutated, only dereferenced.
func (f *ReservationForm) Clone() *ReservationForm {
	out := *f
	out.Slots = make([]GuestSlot, len(f.Slots))
	copy(out.Slots, f.Slots)
	for i := range out.Slots {
		if doc := out.Slots[i].Document; doc != nil {
			ref := *doc
			out.Slots[i].Document = &ref
		}
	}
	if f.Context.Dates != nil {
		dates := *f.Context.Dates
		out.Context.Dates = &dates
	}
	if f.Context.PropertyID != nil {
		id := *f.Context.PropertyID
		out.Context.PropertyID = &id
	}
	return &out
}

// DocumentCount reports how many slots currently hold a staged document.
func (f *ReservationForm) DocumentCount() int {
	n := 0
	for i := range f.Slots {
		if f.Slots[i].Document != nil {
			n++
		}
	}
	return n
}

// Business Rules
const (
	MinAdults   = 1
	MaxAdults   = 12
	MinChildren = 0
	MaxChildren = 10
)

var (
	ErrSessionNotFound    = errors.New("enquiry session not found")
	ErrSlotNotFound       = errors.New("guest slot not found")
	ErrMissingDocument    = errors.New("main guest document missing")
	ErrSubmissionPending  = errors.New("a submission is already in flight")
	ErrSessionConfirmed   = errors.New("enquiry already confirmed")
	ErrInvalidTransition  = errors.New("operation not allowed in current state")
	ErrDocumentTooLarge   = errors.New("document exceeds the allowed size")
	ErrDocumentType       = errors.New("document type not allowed")
	ErrInvalidPartySize   = errors.New("party composition out of range")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
)
