package relay

import (
	"context"

	"github.com/villamar/stay-enquiries/internal/domain"
	"github.com/villamar/stay-enquiries/pkg/logger"
)

// DevRelay logs submissions instead of sending them anywhere.
type DevRelay struct{}

func NewDevRelay() *DevRelay {
	return &DevRelay{}
}

func (d *DevRelay) Deliver(ctx context.Context, form *domain.ReservationForm) error {
	if err := guard(form); err != nil {
		return err
	}

	logger.InfoContext(ctx, "📧 [DEV RELAY] Booking enquiry",
		"property", form.Context.PropertyName,
		"name", form.Contact.FullName,
		"email", form.Contact.Email,
		"adults", form.Context.Party.Adults,
		"children", form.Context.Party.Children,
		"documents", form.DocumentCount(),
		"payment", form.Payment,
	)

	return nil
}
