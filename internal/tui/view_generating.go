package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/quip/internal/config"
)

func (a *App) renderGenerating() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Writing jokes")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// What we asked for
	summary := fmt.Sprintf("%d %s jokes about %q",
		a.state.count,
		strings.ToLower(string(a.state.tone())),
		truncate(a.state.contextText, 40))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(summary)))
	b.WriteString("\n\n")

	// Model info
	model := styleSubtitle.Render("asking " + a.state.config.Model + "...")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, model))
	if info := config.GetModel(a.state.config.Model); info != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(info.Description)))
	}

	return a.centerVertically(b.String())
}
