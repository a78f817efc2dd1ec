package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/quip/internal/jokes"
)

func (a *App) renderResult() string {
	var b strings.Builder

	// Show what was asked
	asked := styleSubtitle.Render(fmt.Sprintf("> %s", truncate(a.state.contextText, 55)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n\n")

	// Jokes box
	display := jokes.FormatForDisplay(a.state.result.Jokes)

	maxHeight := a.height - 12
	if maxHeight < 5 {
		maxHeight = 5
	}
	displayLines := strings.Split(display, "\n")
	if len(displayLines) > maxHeight {
		displayLines = displayLines[:maxHeight]
		display = strings.Join(displayLines, "\n")
	}

	jokesBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(display)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, jokesBox))
	b.WriteString("\n\n")

	// Feedback line
	if a.state.savedPath != "" {
		saved := lipgloss.NewStyle().
			Foreground(colorSuccess).
			Render("Saved to " + a.state.savedPath)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, saved))
		b.WriteString("\n\n")
	} else if a.state.statusMsg != "" {
		msg := lipgloss.NewStyle().
			Foreground(colorError).
			Render(a.state.statusMsg)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, msg))
		b.WriteString("\n\n")
	}

	// Status bar
	var status string
	if a.state.speaking {
		status = styleStatusBar.Render("Speaking... [x] Stop  [Esc] Back")
	} else {
		hints := "[s] Save  [r] Regenerate  [n] New  [Esc] Back"
		if a.state.config.Speech.TTSEnabled && a.state.speaker.Available() {
			hints = "[s] Save  [p] Speak  [r] Regenerate  [n] New  [Esc] Back"
		}
		status = styleStatusBar.Render(hints)
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
