// Package text analyzes user-supplied context strings: validation, language
// detection, keyword extraction, and basic statistics shown in the TUI.
package text

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

var stopWords = map[string]map[string]struct{}{
	"en": toSet("the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
		"from", "is", "are", "was", "were", "be", "been", "have", "has", "had", "do", "does",
		"did", "will", "would", "could", "should", "this", "that", "i", "you", "he", "she", "it",
		"we", "they", "what", "which", "who", "where", "when", "why", "how", "all", "some", "no",
		"not", "only", "very", "just", "about", "into", "through", "during", "before", "after"),
	"ro": toSet("si", "sau", "dar", "in", "pe", "la", "de", "cu", "din", "pentru", "este", "sunt", "era",
		"fi", "fost", "am", "ai", "a", "au", "voi", "eu", "tu", "el", "ea", "noi", "ei", "ele",
		"ce", "care", "cine", "unde", "cand", "cum", "nu", "doar", "foarte", "mai", "un", "o"),
}

type langPattern struct {
	words []string
	chars []string
}

var langPatterns = map[string]langPattern{
	"en": {words: []string{"the", "and", "is", "are", "was", "have", "will"}},
	"ro": {words: []string{"si", "este", "sunt", "pentru", "care", "sau"}, chars: []string{"ă", "î", "ț", "ș"}},
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// Tokenize lowercases the text and splits it into word tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	text = nonWord.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(text)
}

// DetectLanguage guesses between "en" and "ro" from stop-word hits and
// Romanian diacritics, returning the code and a confidence in [0.5, 1].
func DetectLanguage(text string) (string, float64) {
	if text == "" {
		return "en", 0
	}

	tokens := lo.Uniq(Tokenize(text))
	lower := strings.ToLower(text)

	scores := map[string]int{}
	for lang, p := range langPatterns {
		score := 2 * len(lo.Intersect(tokens, p.words))
		for _, c := range p.chars {
			if strings.Contains(lower, c) {
				score++
			}
		}
		scores[lang] = score
	}

	total := lo.Sum(lo.Values(scores))
	if total == 0 {
		return "en", 0.7
	}

	langs := lo.Keys(scores)
	sort.Strings(langs) // deterministic tie-break
	best := langs[0]
	for _, lang := range langs {
		if scores[lang] > scores[best] {
			best = lang
		}
	}

	confidence := 0.5 + float64(scores[best])/float64(total)*0.5
	return best, math.Min(confidence, 1.0)
}

// ExtractKeywords returns the topN most frequent non-stop-word tokens.
func ExtractKeywords(text, language string, topN int) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	stop, ok := stopWords[language]
	if !ok {
		stop = stopWords["en"]
	}

	counts := lo.CountValues(lo.Filter(tokens, func(t string, _ int) bool {
		_, isStop := stop[t]
		return !isStop && len([]rune(t)) > 2
	}))

	keywords := lo.Keys(counts)
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

// Stats summarizes a context string for display.
type Stats struct {
	WordCount          int
	CharCount          int // runes, whitespace excluded
	UniqueWords        int
	SentenceCount      int
	AvgWordLength      float64
	DetectedLanguage   string
	LanguageConfidence float64
	Keywords           []string
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

func Analyze(text string) Stats {
	tokens := Tokenize(text)
	lang, conf := DetectLanguage(text)

	sentences := lo.CountBy(sentenceSplit.Split(text, -1), func(s string) bool {
		return strings.TrimSpace(s) != ""
	})

	chars := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			chars++
		}
	}

	avgLen := 0.0
	if len(tokens) > 0 {
		total := 0
		for _, t := range tokens {
			total += len([]rune(t))
		}
		avgLen = math.Round(float64(total)/float64(len(tokens))*100) / 100
	}

	return Stats{
		WordCount:          len(tokens),
		CharCount:          chars,
		UniqueWords:        len(lo.Uniq(tokens)),
		SentenceCount:      sentences,
		AvgWordLength:      avgLen,
		DetectedLanguage:   lang,
		LanguageConfidence: math.Round(conf*100) / 100,
		Keywords:           ExtractKeywords(text, lang, 5),
	}
}

const (
	minContextLen = 2
	maxContextLen = 500
)

// ValidateContext checks a context string before it is sent anywhere.
func ValidateContext(context string) error {
	context = strings.TrimSpace(context)

	switch {
	case context == "":
		return errors.New("context cannot be empty")
	case len([]rune(context)) < minContextLen:
		return errors.New("context must be at least 2 characters")
	case len([]rune(context)) > maxContextLen:
		return errors.New("context must not exceed 500 characters")
	}

	for _, r := range context {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil
		}
	}
	return errors.New("context must contain some letters or numbers")
}
