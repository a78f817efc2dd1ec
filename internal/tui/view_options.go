package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/quip/internal/jokes"
)

func (a *App) renderOptions() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render("How should they land?")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Show what was asked
	asked := styleSubtitle.Render("> " + truncate(a.state.contextText, 55))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	if a.state.stats != nil {
		info := fmt.Sprintf("%d words, %d chars", a.state.stats.WordCount, a.state.stats.CharCount)
		if a.state.stats.DetectedLanguage == "ro" {
			info += ", looks Romanian"
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(info)))
	}
	b.WriteString("\n\n")

	// Option rows
	rows := []struct {
		label string
		value string
	}{
		{"Jokes", fmt.Sprintf("%d", a.state.count)},
		{"Language", string(a.state.language())},
		{"Tone", string(a.state.tone())},
	}

	var optionLines []string
	for i, row := range rows {
		cursor := "  "
		line := fmt.Sprintf("%s%-10s < %s >", cursor, row.label, row.value)
		if i == a.state.optionRow {
			cursor = "> "
			line = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("%s%-10s < %s >", cursor, row.label, row.value))
		} else {
			line = lipgloss.NewStyle().
				Foreground(colorMuted).
				Render(line)
		}
		optionLines = append(optionLines, line)
	}

	optionsBox := styleBox.Copy().
		Width(40).
		Render(strings.Join(optionLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, optionsBox))
	b.WriteString("\n\n")

	// Tone description
	if desc := toneDescription(a.state.tone()); desc != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(desc)))
		b.WriteString("\n\n")
	}

	// Instructions
	instructions := styleStatusBar.Render("[Up/Down] Row  [Left/Right] Change  [Enter] Generate  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func toneDescription(t jokes.Tone) string {
	switch t {
	case jokes.ToneClean:
		return "Family-friendly, safe for any audience"
	case jokes.ToneDark:
		return "Edgy humor, nothing is sacred"
	case jokes.ToneSarcastic:
		return "Dry wit and heavy irony"
	default:
		return ""
	}
}
