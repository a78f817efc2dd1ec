package jokes

import (
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		topic    string
		count    int
		lang     Language
		tone     Tone
		contains []string
	}{
		{
			name:  "english clean",
			topic: "cats",
			count: 3,
			lang:  English,
			tone:  ToneClean,
			contains: []string{
				"stand-up comedian",
				"Desired tone: Clean",
				"Generate EXACTLY 3 joke(s)",
				"cats",
				"Write ONLY in English",
				"Add a blank line between jokes",
				"STOP after joke number 3",
			},
		},
		{
			name:  "romanian dark",
			topic: "birocrație",
			count: 2,
			lang:  Romanian,
			tone:  ToneDark,
			contains: []string{
				"comedian român",
				"Tonul dorit: Dark",
				"Generează EXACT 2",
				"birocrație",
				"DOAR în limba română",
				"OPREȘTE-TE după gluma numărul 2",
			},
		},
		{
			name:  "unknown language falls back to english",
			topic: "dogs",
			count: 1,
			lang:  Language("Klingon"),
			tone:  ToneClean,
			contains: []string{
				"Write ONLY in English",
				"Generate EXACTLY 1 joke(s)",
			},
		},
		{
			name:  "unknown tone falls back to clean",
			topic: "dogs",
			count: 1,
			lang:  English,
			tone:  Tone("Slapstick"),
			contains: []string{
				"Desired tone: Clean",
				"Family-friendly humor",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.topic, tt.count, tt.lang, tt.tone)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Build() missing %q\nprompt:\n%s", want, got)
				}
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := Build("cats", 3, English, ToneSarcastic)
	b := Build("cats", 3, English, ToneSarcastic)
	if a != b {
		t.Error("Build() is not deterministic for identical inputs")
	}
}

func TestBuildIncludesExamples(t *testing.T) {
	got := Build("work", 2, English, ToneSarcastic)
	if !strings.Contains(got, "- I'm not saying I hate morning people") {
		t.Errorf("prompt missing tone examples:\n%s", got)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"English", English},
		{"english", English},
		{"Romanian", Romanian},
		{"ROMANIAN", Romanian},
		{"Klingon", English},
		{"", English},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTone(t *testing.T) {
	tests := []struct {
		in   string
		want Tone
	}{
		{"Clean", ToneClean},
		{"dark", ToneDark},
		{"SARCASTIC", ToneSarcastic},
		{"Slapstick", ToneClean},
		{"", ToneClean},
	}

	for _, tt := range tests {
		if got := NormalizeTone(tt.in); got != tt.want {
			t.Errorf("NormalizeTone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
