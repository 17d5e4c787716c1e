package enquiry

import (
	"time"

	"github.com/villamar/stay-enquiries/internal/domain"
	"github.com/villamar/stay-enquiries/internal/validation"
)

// DTOs returned to the UI. Document bytes never leave the server; only
// metadata is echoed back.

type DocumentView struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type SlotView struct {
	ID       string        `json:"id"`
	Index    int           `json:"index"`
	FullName string        `json:"full_name"`
	Phone    string        `json:"phone,omitempty"`
	Document *DocumentView `json:"document,omitempty"`
}

type SessionView struct {
	ID        string                   `json:"id"`
	State     domain.FlowState         `json:"state"`
	Context   domain.BookingContext    `json:"context"`
	Contact   domain.PrimaryContact    `json:"contact"`
	Payment   domain.PaymentPreference `json:"payment"`
	Slots     []SlotView               `json:"slots"`
	Outcome   domain.SubmissionOutcome `json:"outcome"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// SubmitResult carries either the violations that kept the flow in detail
// capture, or the dispatch outcome.
type SubmitResult struct {
	Session    *SessionView      `json:"session"`
	Validation validation.Result `json:"validation"`
}

type SelectionReq struct {
	Dates *domain.DateRange       `json:"dates,omitempty"`
	Party domain.PartyComposition `json:"party"`
}

type GuestDetail struct {
	SlotID   string `json:"slot_id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

type DetailsReq struct {
	Contact domain.PrimaryContact `json:"contact"`
	Payment string                `json:"payment,omitempty"`
	Guests  []GuestDetail         `json:"guests,omitempty"`
}

func newSessionView(s *Session) *SessionView {
	slots := make([]SlotView, 0, len(s.Form.Slots))
	for _, slot := range s.Form.Slots {
		view := SlotView{
			ID:       slot.ID,
			Index:    slot.Index,
			FullName: slot.FullName,
			Phone:    slot.Phone,
		}
		if slot.Document != nil {
			view.Document = &DocumentView{
				Name:        slot.Document.Name,
				ContentType: slot.Document.ContentType,
				Size:        slot.Document.Size,
			}
		}
		slots = append(slots, view)
	}

	return &SessionView{
		ID:        s.ID,
		State:     s.State,
		Context:   s.Form.Context,
		Contact:   s.Form.Contact,
		Payment:   s.Form.Payment,
		Slots:     slots,
		Outcome:   s.Outcome,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
