// Package validate holds the field normalization rules for Saudi phone
// numbers and national IDs.
package validate

import (
	"regexp"
	"strings"
)

var (
	intlPhoneRe  = regexp.MustCompile(`^\+9665\d{8}$`)
	localPhoneRe = regexp.MustCompile(`^05\d{8}$`)
	barePhoneRe  = regexp.MustCompile(`^5\d{8}$`)
	nationalIDRe = regexp.MustCompile(`^\d{10}$`)
)

// NormalizeSaudiPhone normalizes a Saudi mobile number to +9665XXXXXXXX.
// Accepted inputs: +9665XXXXXXXX, 05XXXXXXXX, or a bare 5XXXXXXXX subscriber
// number. Anything else is returned unchanged so the strict check can reject
// it downstream.
func NormalizeSaudiPhone(s string) string {
	phone := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if phone == "" {
		return phone
	}
	switch {
	case intlPhoneRe.MatchString(phone):
		return phone
	case localPhoneRe.MatchString(phone):
		return "+966" + phone[1:]
	case barePhoneRe.MatchString(phone):
		return "+966" + phone
	}
	return phone
}

// ValidSaudiPhone reports whether s is already in a valid Saudi mobile
// format (+9665XXXXXXXX or 05XXXXXXXX).
func ValidSaudiPhone(s string) bool {
	return intlPhoneRe.MatchString(s) || localPhoneRe.MatchString(s)
}

// ValidNationalID reports whether s is exactly 10 digits.
func ValidNationalID(s string) bool {
	return nationalIDRe.MatchString(s)
}
