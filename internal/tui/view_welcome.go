package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
  ██████╗ ██╗   ██╗██╗██████╗
 ██╔═══██╗██║   ██║██║██╔══██╗
 ██║   ██║██║   ██║██║██████╔╝
 ██║▄▄ ██║██║   ██║██║██╔═══╝
 ╚██████╔╝╚██████╔╝██║██║
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚═╝
`

func (a *App) renderWelcome() string {
	var b strings.Builder

	// Logo
	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n")

	// Subtitle
	subtitle := styleSubtitle.Render("Jokes on demand, straight from your local LLM")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	// Backend status
	var status string
	if a.state.backendReady {
		status = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Render("* " + a.state.config.Model + " ready")
	} else {
		status = styleSubtitle.Render("* connecting to Ollama...")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
	b.WriteString("\n\n")

	// Context input
	inputBox := styleBox.Copy().
		Width(64).
		BorderForeground(colorSecondary).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	// Validation or mic feedback
	if a.state.statusMsg != "" {
		style := lipgloss.NewStyle().Foreground(colorError)
		if a.state.listening {
			style = lipgloss.NewStyle().Foreground(colorSecondary)
		}
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, style.Render(a.state.statusMsg)))
		b.WriteString("\n\n")
	}

	// Status bar
	hints := "[Enter] Continue  [/help] Commands  [Esc] Quit"
	if a.state.recognizer != nil {
		hints = "[Enter] Continue  [Ctrl+R] Dictate  [/help] Commands  [Esc] Quit"
	}
	statusBar := styleStatusBar.Render(hints)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
