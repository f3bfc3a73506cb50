package pipeline

import (
	"strings"
	"testing"
)

func TestValidate_Empty(t *testing.T) {
	result := Validate("")
	if result.Valid {
		t.Error("Expected empty input to be invalid")
	}
	if result.FirstReason() != "empty" {
		t.Errorf("Expected reason %q, got: %q", "empty", result.FirstReason())
	}
}

func TestValidate_MaxLengthBoundary(t *testing.T) {
	// Exactly at the limit is valid.
	atLimit := strings.Repeat("a", MaxInputLen)
	if result := Validate(atLimit); !result.Valid {
		t.Errorf("Expected %d-byte input to be valid, got reasons: %v", MaxInputLen, result.Reasons)
	}

	// One over the limit is invalid and the reason cites both lengths.
	overLimit := strings.Repeat("a", MaxInputLen+1)
	result := Validate(overLimit)
	if result.Valid {
		t.Error("Expected over-limit input to be invalid")
	}
	if !strings.Contains(result.FirstReason(), "10001/10000") {
		t.Errorf("Expected reason to cite 10001/10000, got: %q", result.FirstReason())
	}
}

func TestValidate_ControlCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"null byte", "hello\x00world", false},
		{"bell", "ding\x07", false},
		{"vertical tab", "a\x0bb", false},
		{"form feed", "a\x0cb", false},
		{"escape", "a\x1bb", false},
		{"delete", "a\x7fb", false},
		{"tab allowed", "a\tb", true},
		{"newline allowed", "a\nb", true},
		{"carriage return allowed", "a\r\nb", true},
		{"plain text", "Hello, World!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			if result.Valid != tt.valid {
				t.Errorf("Validate(%q).Valid = %v, want %v (reasons: %v)", tt.input, result.Valid, tt.valid, result.Reasons)
			}
			if !tt.valid && result.FirstReason() != "invalid control characters" {
				t.Errorf("Expected control character reason, got: %q", result.FirstReason())
			}
		})
	}
}

func TestValidate_ReasonsInCheckOrder(t *testing.T) {
	// Over-long input containing control bytes collects both reasons, in
	// check order: too-long before control characters.
	input := strings.Repeat("a", MaxInputLen) + "\x00\x01"
	result := Validate(input)
	if result.Valid {
		t.Fatal("Expected input to be invalid")
	}
	if len(result.Reasons) != 2 {
		t.Fatalf("Expected 2 reasons, got %d: %v", len(result.Reasons), result.Reasons)
	}
	if !strings.HasPrefix(result.Reasons[0], "too long:") {
		t.Errorf("Expected first reason to be the length check, got: %q", result.Reasons[0])
	}
	if result.Reasons[1] != "invalid control characters" {
		t.Errorf("Expected second reason to be the control check, got: %q", result.Reasons[1])
	}
}

func TestValidate_Normalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "Hello, World!", "Hello, World!"},
		{"outer whitespace trimmed", "  hello  ", "hello"},
		{"script tags escaped", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"ampersand escaped first", "a & b", "a &amp; b"},
		{"pre-existing entity ampersand escaped", "&lt;", "&amp;lt;"},
		{"quotes escaped", `say "hi" and 'bye'`, "say &quot;hi&quot; and &#39;bye&#39;"},
		{"control bytes stripped", "he\x00llo", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			if result.Normalized != tt.want {
				t.Errorf("Validate(%q).Normalized = %q, want %q", tt.input, result.Normalized, tt.want)
			}
		})
	}
}

func TestValidate_NormalizedComputedEvenWhenInvalid(t *testing.T) {
	result := Validate("  <b>\x00  ")
	if result.Valid {
		t.Fatal("Expected input with control byte to be invalid")
	}
	if result.Normalized != "&lt;b&gt;" {
		t.Errorf("Expected normalized text to be computed on invalid input, got: %q", result.Normalized)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	input := "  <tag> & 'text'  "
	first := Validate(input)
	second := Validate(input)
	if first.Valid != second.Valid || first.Normalized != second.Normalized {
		t.Error("Expected Validate to be deterministic")
	}
	if len(first.Reasons) != len(second.Reasons) {
		t.Error("Expected identical reasons on repeated calls")
	}
}
