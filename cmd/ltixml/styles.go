package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("82")
	colorRed   = lipgloss.Color("196")
	colorCyan  = lipgloss.Color("45")
	colorGray  = lipgloss.Color("250")

	successStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
)

func errorLine(err error) string {
	return errorStyle.Render("Error:") + " " + err.Error()
}

func successLine(msg string) string {
	return successStyle.Render(msg)
}
