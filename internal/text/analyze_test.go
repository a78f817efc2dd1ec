package text

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "punctuation stripped and lowercased",
			in:   "Hello, World! It's fine.",
			want: []string{"hello", "world", "it", "s", "fine"},
		},
		{
			name: "diacritics preserved",
			in:   "ședințe și birocrație",
			want: []string{"ședințe", "și", "birocrație"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"english stop words", "the cat and the dog are friends", "en"},
		{"romanian diacritics", "glume despre ședințe și birocrație", "ro"},
		{"romanian stop words", "este pentru care sau", "ro"},
		{"no signal defaults to english", "zzz qqq", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, conf := DetectLanguage(tt.in)
			if lang != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.in, lang, tt.want)
			}
			if conf < 0 || conf > 1 {
				t.Errorf("confidence %f out of range", conf)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("the cat sat on the mat with the cat and another cat", "en", 3)
	if len(got) == 0 || got[0] != "cat" {
		t.Errorf("ExtractKeywords() = %v, want cat first", got)
	}
	for _, kw := range got {
		if kw == "the" || kw == "and" || kw == "with" {
			t.Errorf("stop word %q leaked into keywords", kw)
		}
	}
}

func TestAnalyze(t *testing.T) {
	stats := Analyze("The cat sleeps. The dog barks! Does the fish sing?")

	if stats.WordCount != 10 {
		t.Errorf("WordCount = %d, want 10", stats.WordCount)
	}
	if stats.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", stats.SentenceCount)
	}
	if stats.DetectedLanguage != "en" {
		t.Errorf("DetectedLanguage = %q, want en", stats.DetectedLanguage)
	}
}

func TestAnalyzeCounts(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantChars int
		wantAvg   float64
	}{
		{
			name:      "whitespace excluded from chars",
			in:        "ab cd",
			wantChars: 4,
			wantAvg:   2,
		},
		{
			name:      "punctuation counts as chars but not word length",
			in:        "The cat sleeps. The dog barks! Does the fish sing?",
			wantChars: 41,
			wantAvg:   3.8,
		},
		{
			name:      "average rounded to two decimals",
			in:        "a bc defg",
			wantChars: 7,
			wantAvg:   2.33,
		},
		{
			name:      "empty",
			in:        "",
			wantChars: 0,
			wantAvg:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := Analyze(tt.in)
			if stats.CharCount != tt.wantChars {
				t.Errorf("CharCount = %d, want %d", stats.CharCount, tt.wantChars)
			}
			if stats.AvgWordLength != tt.wantAvg {
				t.Errorf("AvgWordLength = %v, want %v", stats.AvgWordLength, tt.wantAvg)
			}
		})
	}
}

func TestValidateContext(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"valid", "cats and computers", ""},
		{"empty", "", "empty"},
		{"whitespace only", "   ", "empty"},
		{"too short", "a", "at least 2"},
		{"too long", strings.Repeat("x", 501), "exceed 500"},
		{"punctuation only", "!!! ???", "letters or numbers"},
		{"romanian letters pass", "ță", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContext(tt.in)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateContext(%q) = %v, want nil", tt.in, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateContext(%q) = nil, want error", tt.in)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
