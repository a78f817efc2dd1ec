// Package speech holds the two audio collaborators: a Speaker that narrates
// jokes and a Recognizer that transcribes microphone input. Both are owned
// and injected explicitly; nothing in here is a package-level singleton.
package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Speaker narrates text out loud.
type Speaker interface {
	// Available reports whether this speaker can produce audio on this
	// machine. Callers should hide speech controls when it returns false.
	Available() bool

	// Speak blocks until playback finishes or ctx is canceled.
	Speak(ctx context.Context, text, language string) error

	// Stop terminates the current playback, if any.
	Stop()

	// Speaking reports whether playback is in progress.
	Speaking() bool

	// Close stops playback and releases resources.
	Close() error
}

// CommandSpeaker speaks through the platform speech command: `say` on macOS,
// `espeak-ng` on Linux, PowerShell's speech synthesizer on Windows. One
// playback at a time; starting a new one stops the previous.
type CommandSpeaker struct {
	voices map[string]string // language code -> voice override
	log    *zap.Logger

	mu      sync.Mutex
	cmd     *exec.Cmd
	stopped bool
}

func NewCommandSpeaker(voices map[string]string, log *zap.Logger) *CommandSpeaker {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommandSpeaker{
		voices: voices,
		log:    log,
	}
}

// Available reports whether the platform speech command exists.
func (s *CommandSpeaker) Available() bool {
	name, _ := speechCommand(runtime.GOOS, "", "", "")
	_, err := exec.LookPath(name)
	return err == nil
}

func (s *CommandSpeaker) Speak(ctx context.Context, text, language string) error {
	if text == "" {
		return errors.New("cannot speak empty text")
	}

	s.Stop()

	name, args := speechCommand(runtime.GOOS, text, language, s.voices[language])
	cmd := exec.CommandContext(ctx, name, args...)

	s.mu.Lock()
	s.cmd = cmd
	s.stopped = false
	s.mu.Unlock()

	s.log.Debug("speaking", zap.String("command", name), zap.Int("text_length", len(text)))

	err := cmd.Run()

	s.mu.Lock()
	if s.cmd == cmd {
		s.cmd = nil
	}
	stopped := s.stopped || ctx.Err() != nil
	s.mu.Unlock()

	if err != nil && !stopped {
		return errors.Wrapf(err, "speech command %s failed", name)
	}
	return nil
}

func (s *CommandSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		s.cmd = nil
		s.stopped = true
	}
}

func (s *CommandSpeaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd != nil
}

func (s *CommandSpeaker) Close() error {
	s.Stop()
	return nil
}

// speechCommand picks the speech binary and arguments for the platform.
func speechCommand(goos, text, language, voice string) (string, []string) {
	switch goos {
	case "darwin":
		args := []string{}
		if voice != "" {
			args = append(args, "-v", voice)
		}
		return "say", append(args, text)

	case "windows":
		script := fmt.Sprintf(
			"Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak(%q)",
			text)
		return "powershell", []string{"-c", script}

	default:
		args := []string{}
		if voice != "" {
			args = append(args, "-v", voice)
		} else if language != "" {
			args = append(args, "-v", language)
		}
		return "espeak-ng", append(args, text)
	}
}
