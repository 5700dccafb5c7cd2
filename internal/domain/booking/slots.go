package booking

import (
	"time"

	"github.com/barberfactory/barberfactory-api/internal/httperr"
)

// ===============================
// Slots & booking window
// ===============================

// A slot is one bookable appointment unit: (shop, date, time token).
// The token set mirrors the hours the mobile client offers, 9 AM to 5 PM.
var SlotTokens = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

const (
	DateLayout = "2006-01-02"

	// Bookings open tomorrow and close 30 days out.
	MinAdvanceDays = 1
	MaxAdvanceDays = 30
)

func IsSlotToken(token string) bool {
	for _, t := range SlotTokens {
		if t == token {
			return true
		}
	}
	return false
}

// ParseDate parses a calendar date in the wire format. The time of day is
// excluded from this field; the slot token carries it.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}

// CheckBookingWindow rejects dates outside the open booking window
// relative to now.
func CheckBookingWindow(date time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(today.AddDate(0, 0, MinAdvanceDays)) {
		return httperr.ErrBusiness("too_soon")
	}
	if day.After(today.AddDate(0, 0, MaxAdvanceDays)) {
		return httperr.ErrBusiness("too_far_ahead")
	}
	return nil
}
