package httperr

import "errors"

// BusinessError carries a stable machine-readable code across the
// domain / transport boundary. Codes in use:
//
//	slot_unavailable  — another PENDING/CONFIRMED booking holds the slot
//	invalid_state     — transition attempted out of a terminal status
//	invalid_status    — transition target is not CONFIRMED/DECLINED
//	invalid_date      — date not in YYYY-MM-DD form
//	invalid_slot      — time token outside the bookable slot set
//	too_soon          — date before the booking window opens
//	too_far_ahead     — date past the end of the booking window
//	invalid_argument  — malformed input to a read-side projection
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts the business code from an error chain, if any.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
