// Package nfc canonicalizes NFC tag identifiers. Reader hardware reports
// the same physical tag in different shapes ("04:A1:B2:C3", "04-a1-b2-c3",
// "04a1b2c3"); all comparisons and storage use the normalized form.
package nfc

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidTagID is returned when a tag identifier cannot be normalized
// into a plausible NFC identifier (8 to 32 hex digits).
var ErrInvalidTagID = errors.New("invalid NFC tag identifier")

const (
	// MinLength and MaxLength bound the normalized identifier length.
	MinLength = 8
	MaxLength = 32

	// DefaultSeparator is used by Format when rendering for display.
	DefaultSeparator = ":"
)

var nonHexRegex = regexp.MustCompile(`[^0-9A-Fa-f]`)

// Normalize strips every non-hexadecimal character and uppercases the rest.
// Empty input yields an empty string. Normalize is idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.ToUpper(nonHexRegex.ReplaceAllString(raw, ""))
}

// IsValid reports whether the normalized form of raw is a plausible NFC
// identifier: 8 to 32 hex digits.
func IsValid(raw string) bool {
	normalized := Normalize(raw)
	return len(normalized) >= MinLength && len(normalized) <= MaxLength
}

// Format renders raw in display form: the normalized identifier grouped in
// pairs joined by sep. Format("04a1b2c3", ":") == "04:A1:B2:C3".
func Format(raw, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	normalized := Normalize(raw)
	if len(normalized) <= 2 {
		return normalized
	}

	var b strings.Builder
	for i := 0; i < len(normalized); i += 2 {
		if i > 0 {
			b.WriteString(sep)
		}
		end := i + 2
		if end > len(normalized) {
			end = len(normalized)
		}
		b.WriteString(normalized[i:end])
	}
	return b.String()
}
