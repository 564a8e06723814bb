package nfc

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"04:A1:B2:C3", "04A1B2C3"},
		{"04-a1-b2-c3", "04A1B2C3"},
		{"04a1b2c3d4e5f6", "04A1B2C3D4E5F6"},
		{"04 A1 B2 C3", "04A1B2C3"},
		{"xyz", ""},
		{"g04a1hb2i", "04A1B2"},
	}
	for _, c := range cases {
		got := Normalize(c.input)
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"04:A1:B2:C3:D4:E5:F6", "04-a1-b2-c3", "", "ABCDEF01"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeEquivalentForms(t *testing.T) {
	a := Normalize("04:A1:B2:C3")
	b := Normalize("04-a1-b2-c3")
	if a != b || a != "04A1B2C3" {
		t.Errorf("equivalent raw forms normalized differently: %q vs %q", a, b)
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"04A1B2C", false},                       // 7 hex digits
		{"04A1B2C3", true},                       // 8 hex digits
		{strings.Repeat("AB", 16), true},         // 32 hex digits
		{strings.Repeat("AB", 16) + "C", false},  // 33 hex digits
		{"04:A1:B2:C3:D4:E5:F6", true},
		{"not a tag", false},
	}
	for _, c := range cases {
		got := IsValid(c.input)
		if got != c.want {
			t.Errorf("IsValid(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		input string
		sep   string
		want  string
	}{
		{"04a1b2c3", "", "04:A1:B2:C3"},
		{"04a1b2c3", "-", "04-A1-B2-C3"},
		{"04A1B2C3D4E5F6", ":", "04:A1:B2:C3:D4:E5:F6"},
		{"04", ":", "04"},
		{"", ":", ""},
	}
	for _, c := range cases {
		got := Format(c.input, c.sep)
		if got != c.want {
			t.Errorf("Format(%q, %q) = %q, want %q", c.input, c.sep, got, c.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	normalized := "04A1B2C3D4E5F6"
	if Normalize(Format(normalized, ":")) != normalized {
		t.Errorf("Format is not a presentation inverse of Normalize")
	}
}
