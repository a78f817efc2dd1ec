package jokes

import (
	"strings"
	"testing"
)

func TestParseJokes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "   \n\t\n  ",
			want: nil,
		},
		{
			name: "two numbered jokes with blank line",
			raw:  "1. Why did the chicken cross the road? To get away from KFC.\n\n2. I told a joke about UDP. You might not get it.",
			want: []string{
				"1. Why did the chicken cross the road? To get away from KFC.",
				"2. I told a joke about UDP. You might not get it.",
			},
		},
		{
			name: "numbered jokes without blank lines",
			raw:  "1. First joke about computers here.\n2. Second joke about keyboards here.\n3. Third joke about mice here.",
			want: []string{
				"1. First joke about computers here.",
				"2. Second joke about keyboards here.",
				"3. Third joke about mice here.",
			},
		},
		{
			name: "dash markers",
			raw:  "- A joke about coffee that is long enough.\n- Another joke about tea that also qualifies.",
			want: []string{
				"- A joke about coffee that is long enough.",
				"- Another joke about tea that also qualifies.",
			},
		},
		{
			name: "wrapped continuation lines",
			raw:  "1. Why did the developer go broke?\nBecause he used up all his cache.\n\n2. A second joke that stands alone.",
			want: []string{
				"1. Why did the developer go broke?\nBecause he used up all his cache.",
				"2. A second joke that stands alone.",
			},
		},
		{
			name: "marker immediately after blank line",
			raw:  "1. The first joke, fully formed and complete.\n\n\n2. The second joke, also complete.",
			want: []string{
				"1. The first joke, fully formed and complete.",
				"2. The second joke, also complete.",
			},
		},
		{
			name: "unnumbered prose is one joke",
			raw:  "The model ignored the numbering instructions entirely but still told something funny.",
			want: []string{
				"The model ignored the numbering instructions entirely but still told something funny.",
			},
		},
		{
			name: "short garbage falls back to whole input",
			raw:  "ha ha",
			want: []string{"ha ha"},
		},
		{
			name: "stray markers dropped, fallback to whole input",
			raw:  "1.\n\n2.\n\n3.",
			want: []string{"1.\n\n2.\n\n3."},
		},
		{
			name: "fragment dropped but real joke kept",
			raw:  "1.\n\n2. This one actually has enough content to keep.",
			want: []string{"2. This one actually has enough content to keep."},
		},
		{
			name: "preamble line attaches to nothing numbered",
			raw:  "Here are your jokes:\n\n1. A properly numbered joke comes after the preamble.",
			want: []string{
				"Here are your jokes:",
				"1. A properly numbered joke comes after the preamble.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseJokes(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseJokes() returned %d jokes, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("joke %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseJokesKeepsMarkerTokens(t *testing.T) {
	// Marker stripping is a display concern; the parser output is verbatim.
	got := ParseJokes("1. A joke that is long enough to survive filtering.")
	if len(got) != 1 {
		t.Fatalf("expected one joke, got %d", len(got))
	}
	if !strings.HasPrefix(got[0], "1. ") {
		t.Errorf("marker was stripped from parser output: %q", got[0])
	}
}

func TestParseJokesDeterministic(t *testing.T) {
	raw := "1. Joke one with plenty of content.\n\n2. Joke two with plenty of content."
	first := ParseJokes(raw)
	second := ParseJokes(raw)
	if len(first) != len(second) {
		t.Fatalf("non-deterministic lengths: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("non-deterministic element %d", i)
		}
	}
}
