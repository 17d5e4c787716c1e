// Package roster derives the set of guest slots implied by a declared adult
// count. The main slot always survives; additional slots are recomputed on
// every change, and data entered into truncated slots is discarded on
// purpose rather than cached for a later re-expansion.
package roster

import (
	"github.com/google/uuid"
	"github.com/villamar/stay-enquiries/internal/domain"
)

// Derive returns the slot sequence for the given adult count: the main slot
// at index 0 plus max(0, adults-1) additional slots. Existing slots keep
// their IDs and entered data up to the new length; excess trailing slots are
// dropped, new ones are appended empty with fresh IDs.
func Derive(prev []domain.GuestSlot, adults int) []domain.GuestSlot {
	additional := adults - 1
	if additional < 0 {
		additional = 0
	}
	total := 1 + additional

	slots := make([]domain.GuestSlot, 0, total)

	if len(prev) > 0 {
		n := len(prev)
		if n > total {
			n = total
		}
		slots = append(slots, prev[:n]...)
	}

	for len(slots) < total {
		slots = append(slots, domain.GuestSlot{
			ID:    uuid.New().String(),
			Index: len(slots),
		})
	}

	// Reassign indexes so they stay contiguous after truncation.
	for i := range slots {
		slots[i].Index = i
	}

	return slots
}
