// Package attachments stages guest identity documents in memory until
// submission. Nothing here touches the network or disk.
package attachments

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/villamar/stay-enquiries/internal/domain"
)

// Manager enforces the one-document-per-slot rule and the upload
// constraints. Attachments are keyed by stable slot IDs, never by the
// reusable numeric index.
type Manager struct {
	maxBytes     int64
	allowedTypes map[string]struct{}
}

func New(maxBytes int64, allowedTypes []string) *Manager {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}
	return &Manager{
		maxBytes:     maxBytes,
		allowedTypes: allowed,
	}
}

// Attach stages a document on the slot with the given ID, replacing and
// releasing any prior reference. The content type is sniffed from the bytes
// rather than trusted from the upload headers.
func (m *Manager) Attach(form *domain.ReservationForm, slotID string, name string, data []byte) (*domain.DocumentRef, error) {
	slot := form.SlotByID(slotID)
	if slot == nil {
		return nil, domain.ErrSlotNotFound
	}

	if m.maxBytes > 0 && int64(len(data)) > m.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrDocumentTooLarge, len(data), m.maxBytes)
	}

	detected := mimetype.Detect(data)
	if len(m.allowedTypes) > 0 {
		if _, ok := m.allowedTypes[detected.String()]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrDocumentType, detected.String())
		}
	}

	if slot.Document != nil {
		release(slot.Document)
	}

	ref := &domain.DocumentRef{
		Name:        name,
		ContentType: detected.String(),
		Size:        int64(len(data)),
		Data:        data,
	}
	slot.Document = ref
	return ref, nil
}

// Detach removes the staged document for a slot, if any.
func (m *Manager) Detach(form *domain.ReservationForm, slotID string) error {
	slot := form.SlotByID(slotID)
	if slot == nil {
		return domain.ErrSlotNotFound
	}
	if slot.Document != nil {
		release(slot.Document)
		slot.Document = nil
	}
	return nil
}

// ReleaseAll drops every staged document; called on session teardown and
// when truncated slots carry attachments.
func (m *Manager) ReleaseAll(form *domain.ReservationForm) {
	for i := range form.Slots {
		if form.Slots[i].Document != nil {
			release(form.Slots[i].Document)
			form.Slots[i].Document = nil
		}
	}
}

func release(ref *domain.DocumentRef) {
	ref.Data = nil
}
