package booking

import (
	"github.com/barberfactory/barberfactory-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves a booking into a terminal status. The current status
// must be PENDING.
func Transition(b *models.Booking, target Status) error {
	if err := CanTransition(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(target)
	return nil
}
