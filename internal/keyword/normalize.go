// Package keyword turns raw company and project names into a deterministic,
// rotating universe of domain-label candidates.
package keyword

import "strings"

const (
	// MinLabelLen is the shortest candidate label worth checking.
	MinLabelLen = 3
	// MaxLabelLen caps candidate labels; longer names make poor domains.
	MaxLabelLen = 25
)

// Normalize canonicalizes a raw name into a domain-safe label: lower-cased,
// stripped of everything outside [a-z0-9], and truncated to MaxLabelLen.
// Normalize never fails; validity is a separate concern (see IsValid).
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == MaxLabelLen {
			break
		}
	}

	return b.String()
}

// IsValid reports whether a normalized label is usable as a domain candidate.
func IsValid(label string) bool {
	return len(label) >= MinLabelLen && len(label) <= MaxLabelLen
}
