package logger

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// RedactEmail masks an email address for safe logging.
// "carol.jones@example.com" → "ca***@example.com"
// Short local parts (≤2 chars) are fully masked: "cj@example.com" → "***@example.com"
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	name := parts[0]
	if len(name) > 2 {
		return name[:2] + "***@" + parts[1]
	}
	return "***@" + parts[1]
}

// RedactToken masks an invitation token, keeping only a short prefix so
// log lines from the same dispatch can still be correlated.
func RedactToken(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "***"
}

func redactValue(key, val string) string {
	key = strings.ToLower(key)
	if strings.Contains(key, "email") || strings.Contains(key, "recipient") || strings.Contains(key, "invitee") {
		return RedactEmail(val)
	}
	if strings.Contains(key, "token") || strings.Contains(key, "key") || strings.Contains(key, "secret") {
		return RedactToken(val)
	}
	// Catch emails embedded in generic fields (error messages, URLs)
	return emailPattern.ReplaceAllStringFunc(val, RedactEmail)
}
