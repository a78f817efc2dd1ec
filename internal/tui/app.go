package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/quip/internal/config"
	"github.com/sant0-9/quip/internal/jokes"
	"github.com/sant0-9/quip/internal/llm"
	"github.com/sant0-9/quip/internal/logging"
	"github.com/sant0-9/quip/internal/speech"
	"github.com/sant0-9/quip/internal/text"
	"github.com/sant0-9/quip/internal/writer"
)

type view int

const (
	viewWelcome view = iota
	viewOptions
	viewGenerating
	viewResult
	viewError
	viewHelp
	viewSettings
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	s := newState(cfg)
	s.log = logging.New(cfg.Debug)

	client := llm.NewClient(cfg.Host, cfg.Model, cfg.Timeout(), s.log)
	s.generator = jokes.NewGenerator(client, cfg)
	s.speaker = speech.NewCommandSpeaker(cfg.Speech.Voices, s.log)
	s.recorder = speech.NewRecorder(s.log)
	if cfg.Speech.WhisperEndpoint != "" {
		s.recognizer = speech.NewWhisperRecognizer(cfg.Speech.WhisperEndpoint, s.log)
	}

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	a.state.input.Focus()
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.checkBackend(),
	)
}

// checkBackend verifies Ollama is up and the model is pulled. Retryable from
// the error view, so a user can start Ollama and press r instead of
// restarting quip.
func (a *App) checkBackend() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.state.generator.CheckAvailability(ctx); err != nil {
			return backendErrorMsg{err}
		}
		return backendReadyMsg{}
	}
}

func (a *App) generateJokes() tea.Cmd {
	req := jokes.Request{
		Context:  a.state.contextText,
		Count:    a.state.count,
		Language: string(a.state.language()),
		Tone:     string(a.state.tone()),
	}
	return func() tea.Msg {
		return jokesMsg{a.state.generator.Generate(context.Background(), req)}
	}
}

func (a *App) speakJokes() tea.Cmd {
	spoken := jokes.FormatForSpeech(a.state.result.Jokes)
	lang := a.state.language().Code()
	return func() tea.Msg {
		err := a.state.speaker.Speak(context.Background(), spoken, lang)
		return speechDoneMsg{err}
	}
}

func (a *App) listen() tea.Cmd {
	lang := a.state.language().Code()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		audio, err := a.state.recorder.Record(ctx, 10)
		if err != nil {
			return transcribedMsg{err: err}
		}

		heard, err := a.state.recognizer.Transcribe(ctx, audio, lang)
		return transcribedMsg{text: heard, err: err}
	}
}

func (a *App) saveJokes() tea.Cmd {
	req := writer.SaveRequest{
		Jokes:    a.state.result.Jokes,
		Context:  a.state.contextText,
		Language: a.state.language(),
	}
	return func() tea.Msg {
		path, err := writer.Save(req)
		return savedMsg{path: path, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case backendReadyMsg:
		a.state.backendReady = true
		a.state.backendError = nil
		if a.view == viewError {
			a.view = viewWelcome
		}
		return a, textinput.Blink

	case backendErrorMsg:
		a.state.backendError = msg.error
		a.view = viewError
		return a, nil

	case jokesMsg:
		a.state.generating = false
		a.state.result = msg.result
		a.state.savedPath = ""
		a.state.statusMsg = ""
		if msg.result.Success {
			a.view = viewResult
		} else {
			a.view = viewError
		}
		return a, nil

	case speechDoneMsg:
		a.state.speaking = false
		if msg.err != nil {
			a.state.statusMsg = "speech failed: " + msg.err.Error()
		}
		return a, nil

	case transcribedMsg:
		a.state.listening = false
		if msg.err != nil {
			a.state.statusMsg = msg.err.Error()
		} else {
			a.state.input.SetValue(strings.TrimSpace(msg.text))
			a.state.statusMsg = ""
		}
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.state.statusMsg = "save failed: " + msg.err.Error()
		} else {
			a.state.savedPath = msg.path
			a.state.statusMsg = ""
		}
		return a, nil
	}

	// Only the welcome view owns the text input
	if a.view == viewWelcome {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		switch a.view {
		case viewHelp, viewSettings:
			a.view = viewWelcome
			return nil
		case viewOptions:
			a.view = viewWelcome
			return nil
		case viewResult:
			a.state.speaker.Stop()
			a.view = viewWelcome
			a.state.input.Reset()
			return nil
		}
		a.quitting = true
		a.state.speaker.Stop()
		_ = a.state.speaker.Close()
		return tea.Quit
	}

	switch a.view {
	case viewWelcome:
		return a.handleWelcomeKey(msg)
	case viewOptions:
		return a.handleOptionsKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	}

	return nil
}

func (a *App) handleWelcomeKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Enter) {
		return a.handleInput()
	}

	// ctrl+r: dictate the context instead of typing it
	if msg.String() == "ctrl+r" && a.state.recognizer != nil && !a.state.listening {
		a.state.listening = true
		a.state.statusMsg = "listening..."
		return a.listen()
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	// Handle slash commands
	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case cmd == "/settings" || cmd == "/s":
			a.view = viewSettings
			a.state.input.Reset()
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
	}

	if err := text.ValidateContext(input); err != nil {
		a.state.statusMsg = err.Error()
		return nil
	}

	a.state.contextText = input
	stats := text.Analyze(input)
	a.state.stats = &stats
	a.state.statusMsg = ""

	// Preselect the language the context looks like
	for i, lang := range jokes.Languages {
		if lang.Code() == stats.DetectedLanguage {
			a.state.langIndex = i
		}
	}

	a.view = viewOptions
	return nil
}

func (a *App) handleOptionsKey(msg tea.KeyMsg) tea.Cmd {
	const rows = 3 // count, language, tone

	switch {
	case key.Matches(msg, keys.Up):
		if a.state.optionRow > 0 {
			a.state.optionRow--
		}

	case key.Matches(msg, keys.Down):
		if a.state.optionRow < rows-1 {
			a.state.optionRow++
		}

	case key.Matches(msg, keys.Left):
		a.adjustOption(-1)

	case key.Matches(msg, keys.Right):
		a.adjustOption(1)

	case key.Matches(msg, keys.Enter):
		if a.state.generating || !a.state.backendReady {
			return nil
		}
		a.state.generating = true
		a.view = viewGenerating
		return a.generateJokes()
	}

	return nil
}

func (a *App) adjustOption(delta int) {
	switch a.state.optionRow {
	case 0:
		n := a.state.count + delta
		if n >= a.state.config.Jokes.Min && n <= a.state.config.Jokes.Max {
			a.state.count = n
		}
	case 1:
		a.state.langIndex = cycle(a.state.langIndex+delta, len(jokes.Languages))
	case 2:
		a.state.toneIndex = cycle(a.state.toneIndex+delta, len(jokes.Tones))
	}
}

func cycle(i, n int) int {
	return ((i % n) + n) % n
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "s":
		if a.state.savedPath == "" {
			return a.saveJokes()
		}

	case "p":
		if a.state.config.Speech.TTSEnabled && a.state.speaker.Available() && !a.state.speaking {
			a.state.speaking = true
			a.state.statusMsg = ""
			return a.speakJokes()
		}

	case "x":
		a.state.speaker.Stop()
		a.state.speaking = false

	case "r":
		if !a.state.generating {
			a.state.generating = true
			a.view = viewGenerating
			return a.generateJokes()
		}

	case "n":
		a.state.speaker.Stop()
		a.state.speaking = false
		a.state.input.Reset()
		a.view = viewWelcome
		return textinput.Blink
	}

	return nil
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		if a.state.backendError != nil {
			return a.checkBackend()
		}
		if !a.state.generating && a.state.contextText != "" {
			a.state.generating = true
			a.view = viewGenerating
			return a.generateJokes()
		}

	case "n":
		a.state.input.Reset()
		a.view = viewWelcome
		return textinput.Blink
	}

	return nil
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	const rows = 2 // model, debug

	switch {
	case key.Matches(msg, keys.Up):
		if a.state.settingsRow > 0 {
			a.state.settingsRow--
		}

	case key.Matches(msg, keys.Down):
		if a.state.settingsRow < rows-1 {
			a.state.settingsRow++
		}

	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		delta := 1
		if key.Matches(msg, keys.Left) {
			delta = -1
		}
		a.adjustSetting(delta)

	case key.Matches(msg, keys.Enter):
		return a.applySettings()
	}

	return nil
}

func (a *App) adjustSetting(delta int) {
	switch a.state.settingsRow {
	case 0:
		a.state.modelIndex = cycle(a.state.modelIndex+delta, len(config.Models))
	case 1:
		a.state.config.Debug = !a.state.config.Debug
	}
}

// applySettings persists the config and rewires the backend for the new
// model, then re-runs the availability check.
func (a *App) applySettings() tea.Cmd {
	cfg := a.state.config
	cfg.Model = config.Models[a.state.modelIndex].Name
	_ = cfg.Save()

	a.state.log = logging.New(cfg.Debug)
	client := llm.NewClient(cfg.Host, cfg.Model, cfg.Timeout(), a.state.log)
	a.state.generator = jokes.NewGenerator(client, cfg)
	a.state.backendReady = false

	a.view = viewWelcome
	return a.checkBackend()
}

type backendReadyMsg struct{}
type backendErrorMsg struct{ error }
type jokesMsg struct{ result jokes.Result }
type speechDoneMsg struct{ err error }
type transcribedMsg struct {
	text string
	err  error
}
type savedMsg struct {
	path string
	err  error
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewOptions:
		return a.renderOptions()
	case viewGenerating:
		return a.renderGenerating()
	case viewResult:
		return a.renderResult()
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	case viewSettings:
		return a.renderSettings()
	default:
		return a.renderWelcome()
	}
}
