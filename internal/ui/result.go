package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/suryansh-23/revoker/internal/dispatch"
	"github.com/suryansh-23/revoker/internal/tokentype"
	"github.com/suryansh-23/revoker/internal/types"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(Muted).Width(12)
	goodStyle  = lipgloss.NewStyle().Foreground(Good).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(Warn).Bold(true)
	badStyle   = lipgloss.NewStyle().Foreground(Bad).Bold(true)
)

// StatusLine is the one-line plain summary of a payload.
func StatusLine(p dispatch.Payload) string {
	switch {
	case !p.Success:
		return "revoker: " + p.Error
	case p.Replayed:
		return fmt.Sprintf("revoker: %s was already revoked", p.TokenType)
	case p.Status == types.StatusActionNeeded:
		return fmt.Sprintf("revoker: %s needs manual action", p.TokenType)
	default:
		return fmt.Sprintf("revoker: revoked %s", p.TokenType)
	}
}

// Summary renders the payload as a headline followed by the known details.
func Summary(p dispatch.Payload) string {
	var b strings.Builder
	b.WriteString(headline(p).Render(StatusLine(p)))
	rows := [][2]string{
		{"token", p.RedactedToken},
		{"owner", p.OwnerEmail},
		{"slack id", p.OwnerSlackID},
		{"key", p.KeyName},
		{"action", p.ActionNeeded},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		b.WriteString("\n  ")
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(row[1])
	}
	return b.String()
}

func headline(p dispatch.Payload) lipgloss.Style {
	switch {
	case !p.Success:
		return badStyle
	case p.Status == types.StatusActionNeeded:
		return warnStyle
	default:
		return goodStyle
	}
}

// TypeTable renders the supported token families.
func TypeTable(infos []tokentype.Info) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Muted)).
		Headers("ID", "NAME", "LOOKS LIKE")
	for _, info := range infos {
		t.Row(string(info.ID), info.Name, info.Hint)
	}
	return t.String()
}
