package jokes

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// fragmentLimit is the trimmed length at or below which an accumulated item
// is treated as noise (a stray marker with no content) and dropped.
const fragmentLimit = 10

type parseState int

const (
	stateIdle         parseState = iota // waiting for the first line of an item
	stateAccumulating                   // collecting lines of the current item
)

// ParseJokes segments the model's raw reply into individual jokes.
//
// The model is asked for numbered output with blank lines between jokes, but
// it doesn't always comply, so both cues start a new item: a blank line
// flushes the current one, and a line opening with a digit or a dash starts
// the next. Any other non-blank line continues the current joke (a wrapped
// second line). Whichever cue comes first wins; a marker right after a blank
// line starts the next joke without a double flush because the buffer is
// already empty.
//
// Marker tokens stay in the output verbatim; stripping them for display is
// the formatter's job.
func ParseJokes(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var (
		jokes []string
		buf   []string
		state = stateIdle
	)

	flush := func() {
		if len(buf) > 0 {
			jokes = append(jokes, strings.Join(buf, "\n"))
			buf = nil
		}
		state = stateIdle
	}

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			flush()
			continue
		}

		if isMarker(line) && state == stateAccumulating {
			flush()
		}

		buf = append(buf, line)
		state = stateAccumulating
	}
	flush()

	var cleaned []string
	for _, joke := range jokes {
		joke = strings.TrimSpace(joke)
		if utf8.RuneCountInString(joke) > fragmentLimit {
			cleaned = append(cleaned, joke)
		}
	}

	// Never return nothing for non-empty input: the caller always gets
	// something to show, even if it is the whole unsegmented reply.
	if len(cleaned) == 0 {
		return []string{trimmed}
	}
	return cleaned
}

// isMarker reports whether a trimmed, non-empty line opens a new item.
func isMarker(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsDigit(r) || r == '-'
}
