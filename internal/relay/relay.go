// Package relay delivers completed reservation enquiries to the hosted
// form-relay inbox. The relay is opaque beyond its wire contract: a single
// multipart POST, no authentication, no response body consumed.
package relay

import (
	"context"
	"fmt"

	"github.com/villamar/stay-enquiries/internal/domain"
)

type Sink interface {
	Deliver(ctx context.Context, form *domain.ReservationForm) error
}

// RejectedError reports a relay response outside the 2xx range. Completing
// the request is not the same as the relay accepting it; callers must treat
// this as a failed submission, never a silent success.
type RejectedError struct {
	Status int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("relay rejected submission with status %d", e.Status)
}

// guard enforces the main-guest-document invariant locally, before any
// payload is constructed or network I/O attempted.
func guard(form *domain.ReservationForm) error {
	if main := form.MainSlot(); main == nil || main.Document == nil {
		return domain.ErrMissingDocument
	}
	return nil
}
