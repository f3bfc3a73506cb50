package pipeline

import (
	"fmt"
	"strings"
)

// MaxInputLen is the maximum accepted input length in bytes.
const MaxInputLen = 10000

// ValidationResult reports whether input text is safe to seal.
type ValidationResult struct {
	// Valid is true when no check failed.
	Valid bool

	// Reasons lists every failed check in check order
	// (empty → too long → control characters). Only the first is shown to
	// the user; the full list is for diagnostics.
	Reasons []string

	// Normalized is the trimmed, stripped, HTML-escaped text. It is always
	// computed but must only be sealed when Valid is true.
	Normalized string
}

// FirstReason returns the first failed check, or "" when valid.
func (r ValidationResult) FirstReason() string {
	if len(r.Reasons) == 0 {
		return ""
	}
	return r.Reasons[0]
}

// Validate checks raw text against the seal input rules. Pure and
// deterministic: same input, same result, no side effects.
func Validate(text string) ValidationResult {
	var reasons []string

	if len(text) == 0 {
		reasons = append(reasons, "empty")
	}
	if len(text) > MaxInputLen {
		reasons = append(reasons, fmt.Sprintf("too long: %d/%d", len(text), MaxInputLen))
	}
	if containsControlBytes(text) {
		reasons = append(reasons, "invalid control characters")
	}

	return ValidationResult{
		Valid:      len(reasons) == 0,
		Reasons:    reasons,
		Normalized: normalize(text),
	}
}

// isDisallowedControl reports whether b is in the rejected control set:
// 0x00–0x08, 0x0B, 0x0C, 0x0E–0x1F, 0x7F. Tab, LF, and CR are allowed.
func isDisallowedControl(b byte) bool {
	switch {
	case b <= 0x08:
		return true
	case b == 0x0B || b == 0x0C:
		return true
	case b >= 0x0E && b <= 0x1F:
		return true
	case b == 0x7F:
		return true
	}
	return false
}

func containsControlBytes(text string) bool {
	for i := 0; i < len(text); i++ {
		if isDisallowedControl(text[i]) {
			return true
		}
	}
	return false
}

// normalize trims outer whitespace, strips the rejected control set, then
// HTML-escapes & < > " ' in that left-to-right order. Escaping & first
// prevents double-escaping the entities inserted by later replacements.
func normalize(text string) string {
	trimmed := strings.TrimSpace(text)

	var b strings.Builder
	b.Grow(len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		if !isDisallowedControl(trimmed[i]) {
			b.WriteByte(trimmed[i])
		}
	}
	stripped := b.String()

	replacements := []struct {
		from string
		to   string
	}{
		{"&", "&amp;"},
		{"<", "&lt;"},
		{">", "&gt;"},
		{`"`, "&quot;"},
		{"'", "&#39;"},
	}
	for _, r := range replacements {
		stripped = strings.ReplaceAll(stripped, r.from, r.to)
	}
	return stripped
}
