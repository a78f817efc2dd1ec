package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Error message
	errMsg := "Unknown error"
	if a.state.backendError != nil {
		errMsg = a.state.backendError.Error()
	} else if a.state.result.Error != "" {
		errMsg = a.state.result.Error
	}

	errBox := styleBox.Copy().
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	// Suggestions based on error type
	var suggestions []string
	errLower := strings.ToLower(errMsg)

	if strings.Contains(errLower, "cannot reach") || strings.Contains(errLower, "lost connection") {
		suggestions = append(suggestions, "Make sure Ollama is running: ollama serve")
		suggestions = append(suggestions, "Or point QUIP_OLLAMA_HOST at a remote instance")
	} else if strings.Contains(errLower, "not found") {
		suggestions = append(suggestions, "Pull the model first: ollama pull "+a.state.config.Model)
		suggestions = append(suggestions, "Or pick another model in /settings")
	} else if strings.Contains(errLower, "timed out") {
		suggestions = append(suggestions, "Try fewer jokes or a shorter context")
		suggestions = append(suggestions, "Smaller models respond faster")
	} else if strings.Contains(errLower, "empty response") {
		suggestions = append(suggestions, "The model returned nothing, just retry")
		suggestions = append(suggestions, "Rewording the context sometimes helps")
	}

	if len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	// Actions
	status := styleStatusBar.Render("[r] Retry  [n] New  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
