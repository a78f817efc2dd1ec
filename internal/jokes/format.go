package jokes

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	markerPattern   = regexp.MustCompile(`^\d+[.)\-:]\s*`)
	markdownPattern = regexp.MustCompile("[*_#~`]")
)

// StripMarker removes a leading "1.", "2)", "3-" style numbering token.
func StripMarker(joke string) string {
	return markerPattern.ReplaceAllString(strings.TrimSpace(joke), "")
}

// FormatForDisplay re-numbers parsed jokes for the result view, one blank
// line apart.
func FormatForDisplay(list []string) string {
	if len(list) == 0 {
		return "No jokes generated."
	}

	parts := make([]string, 0, len(list))
	for i, joke := range list {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, StripMarker(joke)))
	}
	return strings.Join(parts, "\n\n")
}

// FormatForSpeech prepares jokes for the synthesizer: markers and markdown
// punctuation removed, spoken joke numbers, pauses between jokes.
func FormatForSpeech(list []string) string {
	if len(list) == 0 {
		return ""
	}

	parts := make([]string, 0, len(list))
	for i, joke := range list {
		clean := markdownPattern.ReplaceAllString(StripMarker(joke), "")
		parts = append(parts, fmt.Sprintf("Joke number %d. %s", i+1, clean))
	}
	return strings.Join(parts, " ... ")
}
