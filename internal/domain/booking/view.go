package booking

import (
	"time"

	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/models"
)

// ===============================
// Display projection
// ===============================

// Card is the display-ready projection of a booking: long-form date,
// 12-hour clock time and a status label with its marker. Stateless
// formatting only.
type Card struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"client_name"`
	ShopName    string `json:"shop_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	StatusLabel string `json:"status_label"`
}

// FormatDate renders a calendar date the way the app shows it,
// e.g. "June 1, 2024".
func FormatDate(d time.Time) string {
	return d.Format("January 2, 2006")
}

// FormatSlot renders a slot token on a 12-hour clock, e.g. "9:00 AM".
func FormatSlot(token string) (string, error) {
	t, err := time.Parse("15:04", token)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_argument")
	}
	return t.Format("3:04 PM"), nil
}

// StatusLabel renders the status badge. Terminal states carry a marker;
// a pending booking is shown plain.
func StatusLabel(s Status) (string, error) {
	switch s {
	case StatusConfirmed:
		return "CONFIRMED ✓", nil
	case StatusDeclined:
		return "DECLINED ✗", nil
	case StatusPending:
		return "PENDING", nil
	default:
		return "", httperr.ErrBusiness("invalid_argument")
	}
}

// NewCard projects a stored booking into its display form.
func NewCard(b *models.Booking) (Card, error) {
	if b == nil || b.Date.IsZero() {
		return Card{}, httperr.ErrBusiness("invalid_argument")
	}

	slot, err := FormatSlot(b.Time)
	if err != nil {
		return Card{}, err
	}

	label, err := StatusLabel(Status(b.Status))
	if err != nil {
		return Card{}, err
	}

	return Card{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ShopName:    b.ShopName,
		Date:        FormatDate(b.Date),
		Time:        slot,
		StatusLabel: label,
	}, nil
}
