package jokes

import "strings"

// Language selects the prompt template and the output language.
type Language string

const (
	English  Language = "English"
	Romanian Language = "Romanian"
)

// Languages lists the registered languages in display order.
var Languages = []Language{English, Romanian}

// Code returns the ISO-639-1 code, used for speech synthesis.
func (l Language) Code() string {
	switch l {
	case Romanian:
		return "ro"
	default:
		return "en"
	}
}

// NormalizeLanguage maps arbitrary input onto a known language,
// falling back to English.
func NormalizeLanguage(s string) Language {
	for _, l := range Languages {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	return English
}

// Tone is the humor style requested from the model.
type Tone string

const (
	ToneClean     Tone = "Clean"
	ToneDark      Tone = "Dark"
	ToneSarcastic Tone = "Sarcastic"
)

var Tones = []Tone{ToneClean, ToneDark, ToneSarcastic}

// NormalizeTone maps arbitrary input onto a known tone, falling back to Clean.
func NormalizeTone(s string) Tone {
	for _, t := range Tones {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return ToneClean
}

// Request is one generation call. Count is clamped and Language/Tone are
// normalized by the generator, so any values are safe here.
type Request struct {
	Context  string
	Count    int
	Language string
	Tone     string
}

// Result is what every generation call returns. Exactly one of
// Success=true/Error=="" and Success=false/Error!="" holds.
type Result struct {
	Success     bool
	Jokes       []string
	RawResponse string
	Error       string
}
