package booking

import (
	"github.com/barberfactory/barberfactory-api/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusDeclined  Status = "DECLINED"
)

// IsTerminal reports whether no further transition is defined for a status.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusDeclined
}

// ParseTargetStatus validates a requested transition target. Only the two
// terminal states are reachable through the API; PENDING is never a target.
func ParseTargetStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusConfirmed, StatusDeclined:
		return Status(raw), nil
	default:
		return "", httperr.ErrBusiness("invalid_status")
	}
}

// ===============================
// Validations
// ===============================

// CanTransition defines whether a booking may leave its current status.
// Anything other than PENDING is terminal.
func CanTransition(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
