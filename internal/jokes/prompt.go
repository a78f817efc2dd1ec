package jokes

import (
	"fmt"
	"strings"
)

// Build constructs the full generation prompt for one call. Pure and
// deterministic: unknown languages fall back to English, unknown tones to
// Clean, so it is safe to call with raw input.
func Build(topic string, count int, lang Language, tone Tone) string {
	t, ok := templates[lang]
	if !ok {
		t = templates[English]
	}

	tt, ok := t.Tones[tone]
	if !ok {
		tone = ToneClean
		tt = t.Tones[ToneClean]
	}

	var examples strings.Builder
	for i, ex := range tt.Examples {
		if i > 0 {
			examples.WriteByte('\n')
		}
		examples.WriteString("- ")
		examples.WriteString(ex)
	}

	body := fmt.Sprintf(t.Instructions, string(tone), tt.Guidance, examples.String(), count, topic)
	return t.System + "\n\n" + body
}
