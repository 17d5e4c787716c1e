package enquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/villamar/stay-enquiries/internal/attachments"
	"github.com/villamar/stay-enquiries/internal/domain"
	"github.com/villamar/stay-enquiries/internal/relay"
	"github.com/villamar/stay-enquiries/internal/roster"
	"github.com/villamar/stay-enquiries/internal/validation"
	"github.com/villamar/stay-enquiries/pkg/events"
	"github.com/villamar/stay-enquiries/pkg/logger"
)

type EnquiryService interface {
	Open(ctx context.Context, booking *domain.BookingContext) (*SessionView, error)
	Get(ctx context.Context, id string) (*SessionView, error)
	SetSelection(ctx context.Context, id string, req SelectionReq) (*SessionView, error)
	Back(ctx context.Context, id string) (*SessionView, error)
	SetDetails(ctx context.Context, id string, req DetailsReq) (*SessionView, error)
	AttachDocument(ctx context.Context, id, slotID, filename string, data []byte) (*SessionView, error)
	DetachDocument(ctx context.Context, id, slotID string) (*SessionView, error)
	Submit(ctx context.Context, id string) (*SubmitResult, error)
	Close(ctx context.Context, id string) error
	Shutdown()
}

type enquiryService struct {
	store       *Store
	attachments *attachments.Manager
	validator   *validation.FormValidator
	sink        relay.Sink
	eventBus    events.Publisher
}

func NewEnquiryService(
	store *Store,
	attachments *attachments.Manager,
	validator *validation.FormValidator,
	sink relay.Sink,
	eventBus events.Publisher,
) EnquiryService {
	return &enquiryService{
		store:       store,
		attachments: attachments,
		validator:   validator,
		sink:        sink,
		eventBus:    eventBus,
	}
}

// Open starts a fresh session. When the booking context already carries
// dates and a party size, the flow skips straight to detail capture; the
// roster is derived synchronously either way.
func (s *enquiryService) Open(ctx context.Context, booking *domain.BookingContext) (*SessionView, error) {
	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		State:     domain.FlowSelectingDates,
		CreatedAt: now,
		UpdatedAt: now,
		Outcome:   domain.SubmissionOutcome{State: domain.SubmissionIdle},
	}
	session.Form.Payment = domain.PaymentCard

	adults := domain.MinAdults
	if booking != nil {
		if booking.Party != (domain.PartyComposition{}) {
			if err := checkParty(booking.Party); err != nil {
				return nil, err
			}
		}
		if booking.Dates != nil {
			if err := checkDates(booking.Dates); err != nil {
				return nil, err
			}
		}
		session.Form.Context = *booking
		if booking.Party.Adults > 0 {
			adults = booking.Party.Adults
		}
		if booking.Selected() {
			session.State = domain.FlowCapturingDetails
		}
	} else {
		session.Form.Context.Party = domain.PartyComposition{Adults: domain.MinAdults}
	}

	session.Form.Slots = roster.Derive(nil, adults)

	s.store.Put(session)

	event := events.EnquiryOpenedEvent{
		SessionID:    session.ID,
		PropertyName: session.Form.Context.PropertyName,
		OpenedAt:     now,
	}
	if err := s.eventBus.Publish(ctx, events.EnquiryOpened, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish enquiry opened event", "error", err, "session_id", session.ID)
	}

	return newSessionView(session), nil
}

func (s *enquiryService) Get(ctx context.Context, id string) (*SessionView, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return newSessionView(session), nil
}

// SetSelection records dates and party composition and re-derives the
// roster before control returns to the caller. Shrinking the party drops
// trailing slot data for good; staged documents on dropped slots are
// released.
func (s *enquiryService) SetSelection(ctx context.Context, id string, req SelectionReq) (*SessionView, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State != domain.FlowSelectingDates && session.State != domain.FlowCapturingDetails {
		if session.State == domain.FlowConfirmed {
			return nil, domain.ErrSessionConfirmed
		}
		return nil, domain.ErrInvalidTransition
	}

	if err := checkParty(req.Party); err != nil {
		return nil, err
	}
	if req.Dates != nil {
		if err := checkDates(req.Dates); err != nil {
			return nil, err
		}
	}

	session.Form.Context.Dates = req.Dates
	session.Form.Context.Party = req.Party

	dropped := session.Form.Slots[min(len(session.Form.Slots), req.Party.Adults):]
	for i := range dropped {
		if dropped[i].Document != nil {
			dropped[i].Document.Data = nil
		}
	}
	session.Form.Slots = roster.Derive(session.Form.Slots, req.Party.Adults)

	if session.State == domain.FlowSelectingDates && session.Form.Context.Selected() {
		if err := session.transitionTo(domain.FlowCapturingDetails); err != nil {
			return nil, err
		}
	} else {
		session.UpdatedAt = time.Now()
	}

	return newSessionView(session), nil
}

// Back returns the flow from detail capture to date selection; entered
// details survive the round trip.
func (s *enquiryService) Back(ctx context.Context, id string) (*SessionView, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.transitionTo(domain.FlowSelectingDates); err != nil {
		return nil, err
	}

	return newSessionView(session), nil
}

func (s *enquiryService) SetDetails(ctx context.Context, id string, req DetailsReq) (*SessionView, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State != domain.FlowCapturingDetails {
		if session.State == domain.FlowConfirmed {
			return nil, domain.ErrSessionConfirmed
		}
		return nil, domain.ErrInvalidTransition
	}

	req.Contact.FullName = strings.TrimSpace(req.Contact.FullName)
	req.Contact.Email = strings.ToLower(strings.TrimSpace(req.Contact.Email))
	req.Contact.Phone = strings.TrimSpace(req.Contact.Phone)
	session.Form.Contact = req.Contact

	if req.Payment != "" {
		preference, ok := domain.ParsePaymentPreference(req.Payment)
		if !ok {
			return nil, fmt.Errorf("invalid payment preference: %q", req.Payment)
		}
		session.Form.Payment = preference
	}

	for _, guest := range req.Guests {
		slot := session.Form.SlotByID(guest.SlotID)
		if slot == nil {
			return nil, domain.ErrSlotNotFound
		}
		slot.FullName = strings.TrimSpace(guest.FullName)
		slot.Phone = strings.TrimSpace(guest.Phone)
	}

	session.UpdatedAt = time.Now()
	return newSessionView(session), nil
}

func (s *enquiryService) AttachDocument(ctx context.Context, id, slotID, filename string, data []byte) (*SessionView, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State != domain.FlowCapturingDetails {
		if session.State == domain.FlowConfirmed {
			return nil, domain.ErrSessionConfirmed
		}
		return nil, domain.ErrInvalidTransition
	}

	if _, err := s.attachments.Attach(&session.Form, slotID, filename, data); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now()
	return newSessionView(session), nil
}

func (s *enquiryService) DetachDocument(ctx context.Context, id, slotID string) (*SessionView, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State != domain.FlowCapturingDetails {
		if session.State == domain.FlowConfirmed {
			return nil, domain.ErrSessionConfirmed
		}
		return nil, domain.ErrInvalidTransition
	}

	if err := s.attachments.Detach(&session.Form, slotID); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now()
	return newSessionView(session), nil
}

// Submit validates and, when the form passes, dispatches exactly one relay
// delivery. A failing validation keeps the flow in detail capture with the
// full violation list; a failed delivery does the same so the user can
// correct and resubmit without losing anything.
func (s *enquiryService) Submit(ctx context.Context, id string) (*SubmitResult, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.mu.Lock()

	if session.State == domain.FlowConfirmed {
		session.mu.Unlock()
		return nil, domain.ErrSessionConfirmed
	}
	if session.Outcome.State == domain.SubmissionPending {
		session.mu.Unlock()
		return nil, domain.ErrSubmissionPending
	}
	if session.State != domain.FlowCapturingDetails {
		session.mu.Unlock()
		return nil, domain.ErrInvalidTransition
	}

	result := s.validator.Validate(&session.Form)
	if !result.OK {
		view := newSessionView(session)
		session.mu.Unlock()
		return &SubmitResult{Session: view, Validation: result}, nil
	}

	if err := session.transitionTo(domain.FlowSubmitting); err != nil {
		session.mu.Unlock()
		return nil, err
	}
	session.Outcome = domain.SubmissionOutcome{State: domain.SubmissionPending}

	// The sink gets a snapshot taken under the lock; a concurrent Close or
	// eviction releasing the live form cannot touch the in-flight payload.
	delivery := session.Form.Clone()
	session.mu.Unlock()

	err := s.sink.Deliver(ctx, delivery)

	session.mu.Lock()
	defer session.mu.Unlock()

	if err != nil {
		session.Outcome = domain.SubmissionOutcome{
			State:       domain.SubmissionFailed,
			ErrorDetail: deliveryDetail(err),
		}
		if terr := session.transitionTo(domain.FlowCapturingDetails); terr != nil {
			logger.ErrorContext(ctx, "Failed to return flow to detail capture", "error", terr, "session_id", session.ID)
		}

		subject := events.EnquiryFailed
		var rejected *relay.RejectedError
		if errors.As(err, &rejected) {
			subject = events.EnquiryRejected
		}
		event := events.EnquiryFailedEvent{
			SessionID: session.ID,
			Reason:    session.Outcome.ErrorDetail,
			FailedAt:  time.Now(),
		}
		if perr := s.eventBus.Publish(ctx, subject, event); perr != nil {
			logger.ErrorContext(ctx, "Failed to publish enquiry failed event", "error", perr, "session_id", session.ID)
		}

		return &SubmitResult{Session: newSessionView(session), Validation: result}, nil
	}

	session.Outcome = domain.SubmissionOutcome{State: domain.SubmissionSucceeded}
	if terr := session.transitionTo(domain.FlowConfirmed); terr != nil {
		logger.ErrorContext(ctx, "Failed to confirm flow", "error", terr, "session_id", session.ID)
	}

	event := events.EnquirySubmittedEvent{
		SessionID:    session.ID,
		PropertyName: session.Form.Context.PropertyName,
		GuestName:    session.Form.Contact.FullName,
		GuestEmail:   session.Form.Contact.Email,
		Adults:       session.Form.Context.Party.Adults,
		Children:     session.Form.Context.Party.Children,
		Documents:    delivery.DocumentCount(),
		SubmittedAt:  time.Now(),
	}
	if dates := session.Form.Context.Dates; dates != nil {
		event.CheckIn = dates.CheckIn.Format("2006-01-02")
		event.CheckOut = dates.CheckOut.Format("2006-01-02")
	}
	if perr := s.eventBus.Publish(ctx, events.EnquirySubmitted, event); perr != nil {
		logger.ErrorContext(ctx, "Failed to publish enquiry submitted event", "error", perr, "session_id", session.ID)
	}

	// The documents have been delivered; drop the staged bytes while the
	// session lives on for the confirmation view.
	s.attachments.ReleaseAll(&session.Form)

	return &SubmitResult{Session: newSessionView(session), Validation: result}, nil
}

// Close tears the session down and releases every staged document.
func (s *enquiryService) Close(ctx context.Context, id string) error {
	session, ok := s.store.Get(id)
	if !ok {
		return domain.ErrSessionNotFound
	}

	session.mu.Lock()
	s.attachments.ReleaseAll(&session.Form)
	session.mu.Unlock()

	s.store.Remove(id)

	event := map[string]string{"session_id": id}
	if err := s.eventBus.Publish(ctx, events.EnquiryClosed, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish enquiry closed event", "error", err, "session_id", id)
	}

	return nil
}

func (s *enquiryService) Shutdown() {
	s.store.Close()
}

func deliveryDetail(err error) string {
	var rejected *relay.RejectedError
	switch {
	case errors.Is(err, domain.ErrMissingDocument):
		return "main guest identity document is missing"
	case errors.As(err, &rejected):
		return fmt.Sprintf("the enquiry service rejected the submission (status %d); please try again", rejected.Status)
	default:
		return "we could not reach the enquiry service; please try again"
	}
}

func checkParty(party domain.PartyComposition) error {
	if party.Adults < domain.MinAdults || party.Adults > domain.MaxAdults {
		return fmt.Errorf("%w: adults must be between %d and %d", domain.ErrInvalidPartySize, domain.MinAdults, domain.MaxAdults)
	}
	if party.Children < domain.MinChildren || party.Children > domain.MaxChildren {
		return fmt.Errorf("%w: children must be between %d and %d", domain.ErrInvalidPartySize, domain.MinChildren, domain.MaxChildren)
	}
	return nil
}

func checkDates(dates *domain.DateRange) error {
	if !dates.CheckOut.After(dates.CheckIn) {
		return domain.ErrInvalidDateRange
	}
	return nil
}
