package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/villamar/stay-enquiries/internal/domain"
)

// FormRelay posts enquiries to the hosted form-relay endpoint. Exactly one
// POST per Deliver call; retries are the caller's decision.
type FormRelay struct {
	client   *http.Client
	endpoint string
	opts     Options
}

func NewFormRelay(endpoint string, timeout time.Duration, opts Options) *FormRelay {
	return &FormRelay{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		opts:     opts,
	}
}

func (r *FormRelay) Deliver(ctx context.Context, form *domain.ReservationForm) error {
	if err := guard(form); err != nil {
		return err
	}

	body, contentType, err := encode(form, r.opts)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	res, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer res.Body.Close()

	// The response body carries no contract; drain it so the connection
	// can be reused.
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &RejectedError{Status: res.StatusCode}
	}

	return nil
}
