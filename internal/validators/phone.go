package validators

import "strings"

// IsPhoneNumberValid accepts the loose international forms the mobile
// client produces: optional leading +, then 7 to 15 digits, with
// spaces and dashes tolerated.
func IsPhoneNumberValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 15
}
