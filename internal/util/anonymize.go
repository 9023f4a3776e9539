// Package util holds small helpers shared across handlers.
package util

import (
	"regexp"
	"strings"
)

var (
	validPhone = regexp.MustCompile(`^\d{11}$`)
	validEmail = regexp.MustCompile(`^[A-Za-z\d+_.-]+@.+$`)
)

// AnonymizePhone masks an 11-digit phone number, keeping the last four
// digits. Anything that is not an 11-digit number is returned as-is.
func AnonymizePhone(phone string) string {
	if !validPhone.MatchString(phone) {
		return phone
	}
	return strings.Repeat("*", 7) + phone[7:]
}

// AnonymizeEmail masks the local part of an email address, keeping the
// first three characters. Invalid addresses are returned as-is.
func AnonymizeEmail(email string) string {
	if !validEmail.MatchString(email) {
		return email
	}
	at := strings.Index(email, "@")
	local := email[:at]
	if len(local) <= 3 {
		return email
	}
	return local[:3] + strings.Repeat("*", len(local)-3) + email[at:]
}
