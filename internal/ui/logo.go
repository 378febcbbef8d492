package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var logoLines = []string{
	` ___ ___ __   _____  _  _____ ___ `,
	`| _ \ __|\ \ / / _ \| |/ / __| _ \`,
	`|   / _|  \ V / (_) | ' <| _||   /`,
	`|_|_\___|  \_/ \___/|_|\_\___|_|_\`,
}

// LogoFrame renders the banner with colors shifted by frame.
func LogoFrame(frame int) string {
	lines := make([]string, len(logoLines))
	for i, line := range logoLines {
		color := Palette[(frame+i)%len(Palette)]
		lines[i] = lipgloss.NewStyle().Foreground(color).Render(line)
	}
	return strings.Join(lines, "\n")
}

// Logo renders the first frame.
func Logo() string { return LogoFrame(0) }
