package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/quip/internal/config"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	model := config.Models[a.state.modelIndex]
	debug := "off"
	if a.state.config.Debug {
		debug = "on"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Model", model.Name},
		{"Debug log", debug},
	}

	var lines []string
	for i, row := range rows {
		cursor := "  "
		line := fmt.Sprintf("%s%-10s < %s >", cursor, row.label, row.value)
		if i == a.state.settingsRow {
			cursor = "> "
			line = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("%s%-10s < %s >", cursor, row.label, row.value))
		} else {
			line = lipgloss.NewStyle().Foreground(colorMuted).Render(line)
		}
		lines = append(lines, line)
	}

	settingsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, settingsBox))
	b.WriteString("\n\n")

	// Model description
	if model.Description != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(model.Description)))
		b.WriteString("\n\n")
	}

	// Current host
	host := styleSubtitle.Render("Host: " + a.state.config.Host)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, host))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Up/Down] Row  [Left/Right] Change  [Enter] Save  [Esc] Cancel")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
