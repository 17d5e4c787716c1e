package enquiry

import (
	"sync"
	"time"

	"github.com/villamar/stay-enquiries/internal/attachments"
	"github.com/villamar/stay-enquiries/internal/domain"
)

// Session is one checkout visit. It exclusively owns its form and outcome;
// nothing is shared across sessions.
type Session struct {
	ID        string
	State     domain.FlowState
	Form      domain.ReservationForm
	Outcome   domain.SubmissionOutcome
	CreatedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

// legal transitions of the enquiry flow. Confirmed is terminal.
var transitions = map[domain.FlowState][]domain.FlowState{
	domain.FlowSelectingDates:   {domain.FlowCapturingDetails},
	domain.FlowCapturingDetails: {domain.FlowSelectingDates, domain.FlowSubmitting},
	domain.FlowSubmitting:       {domain.FlowCapturingDetails, domain.FlowConfirmed},
	domain.FlowConfirmed:        {},
}

// Release drops every staged document under the session lock; used by the
// store's eviction callback when an expired session is swept.
func (s *Session) Release(m *attachments.Manager) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ReleaseAll(&s.Form)
}

func (s *Session) transitionTo(next domain.FlowState) error {
	for _, allowed := range transitions[s.State] {
		if allowed == next {
			s.State = next
			s.UpdatedAt = time.Now()
			return nil
		}
	}
	if s.State == domain.FlowConfirmed {
		return domain.ErrSessionConfirmed
	}
	return domain.ErrInvalidTransition
}
