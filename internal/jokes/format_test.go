package jokes

import (
	"strings"
	"testing"
)

func TestStripMarker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. A joke", "A joke"},
		{"12) Another joke", "Another joke"},
		{"3- Dashed", "Dashed"},
		{"4: Coloned", "Coloned"},
		{"No marker here", "No marker here"},
		{"  1.  Padded  ", "Padded"},
	}

	for _, tt := range tests {
		if got := StripMarker(tt.in); got != tt.want {
			t.Errorf("StripMarker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatForDisplay(t *testing.T) {
	got := FormatForDisplay([]string{
		"3. First joke out of order.",
		"7. Second joke keeps its position.",
	})

	want := "1. First joke out of order.\n\n2. Second joke keeps its position."
	if got != want {
		t.Errorf("FormatForDisplay() = %q, want %q", got, want)
	}
}

func TestFormatForDisplayEmpty(t *testing.T) {
	if got := FormatForDisplay(nil); got != "No jokes generated." {
		t.Errorf("FormatForDisplay(nil) = %q", got)
	}
}

func TestFormatForSpeech(t *testing.T) {
	got := FormatForSpeech([]string{
		"1. A *bold* joke with `code` in it.",
		"2. Second joke, plain.",
	})

	if strings.ContainsAny(got, "*`#_~") {
		t.Errorf("markdown punctuation left in speech text: %q", got)
	}
	if !strings.Contains(got, "Joke number 1.") || !strings.Contains(got, "Joke number 2.") {
		t.Errorf("spoken numbering missing: %q", got)
	}
	if !strings.Contains(got, " ... ") {
		t.Errorf("pause separator missing: %q", got)
	}
}

func TestFormatForSpeechEmpty(t *testing.T) {
	if got := FormatForSpeech(nil); got != "" {
		t.Errorf("FormatForSpeech(nil) = %q, want empty", got)
	}
}
