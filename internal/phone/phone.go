// Package phone normalizes and validates Kenyan mobile numbers. Numbers are
// canonicalized to the international 2547XXXXXXXX form used by the mobile
// money networks.
package phone

import (
	"regexp"
	"strings"
)

var (
	nonDigitRegex = regexp.MustCompile(`\D`)
	// Kenyan mobile numbering plan: optional 254/0 prefix, then 7, then
	// either a second digit in 0-2/4-9 or 3 paired with any digit, then six
	// more digits
	kenyanPhoneRegex = regexp.MustCompile(`^(?:254|\+254|0)?(7(?:[012456789][0-9]|3[0-9])[0-9]{6})$`)
)

// Normalize converts a loosely formatted phone number to the canonical
// 12-digit 254XXXXXXXXX form. The second return value is false when the
// input cannot be put into canonical form.
func Normalize(raw string) (string, bool) {
	cleaned := nonDigitRegex.ReplaceAllString(raw, "")

	if strings.HasPrefix(cleaned, "0") {
		cleaned = "254" + cleaned[1:]
	} else if strings.HasPrefix(cleaned, "7") && len(cleaned) == 9 {
		cleaned = "254" + cleaned
	}

	if len(cleaned) != 12 || !strings.HasPrefix(cleaned, "254") {
		return "", false
	}
	return cleaned, true
}

// IsValid reports whether the input is a valid Kenyan mobile number on any
// network, in local or international form
func IsValid(raw string) bool {
	cleaned := nonDigitRegex.ReplaceAllString(raw, "")
	return kenyanPhoneRegex.MatchString(cleaned)
}

// Format renders a phone number for display as "254 7XX XXX XXX". Numbers
// that cannot be normalized are returned unchanged.
func Format(raw string) string {
	normalized, ok := Normalize(raw)
	if !ok {
		return raw
	}
	return normalized[0:3] + " " + normalized[3:6] + " " + normalized[6:9] + " " + normalized[9:12]
}
