package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/sant0-9/quip/internal/config"
	"github.com/sant0-9/quip/internal/jokes"
	"github.com/sant0-9/quip/internal/speech"
	"github.com/sant0-9/quip/internal/text"
)

type state struct {
	// Config
	config *config.Config
	log    *zap.Logger

	// Collaborators, wired once at startup
	generator  *jokes.Generator
	speaker    speech.Speaker
	recognizer speech.Recognizer
	recorder   *speech.Recorder

	// Backend
	backendReady bool
	backendError error

	// Context input
	input       textinput.Model
	contextText string
	stats       *text.Stats

	// Generation options
	count      int
	langIndex  int
	toneIndex  int
	optionRow  int
	generating bool

	// Result
	result    jokes.Result
	savedPath string
	statusMsg string

	// Audio
	speaking  bool
	listening bool

	// Settings
	settingsRow int
	modelIndex  int
}

func newState(cfg *config.Config) *state {
	input := textinput.New()
	input.Placeholder = "What should the jokes be about?"
	input.CharLimit = 500
	input.Width = 60

	modelIndex := 0
	for i, m := range config.Models {
		if m.Name == cfg.Model {
			modelIndex = i
			break
		}
	}

	return &state{
		config:     cfg,
		input:      input,
		count:      cfg.Jokes.Default,
		modelIndex: modelIndex,
	}
}

func (s *state) language() jokes.Language {
	return jokes.Languages[s.langIndex]
}

func (s *state) tone() jokes.Tone {
	return jokes.Tones[s.toneIndex]
}
