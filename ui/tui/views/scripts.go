package views

import (
	"fmt"
	"strings"

	"roscripthub/internal/catalog"
	"roscripthub/ui/tui/state"
	"roscripthub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type ScriptsView struct{}

func (v ScriptsView) Render(s state.AppState, props ViewProps) string {
	width := contentWidth(props)

	header := spaceBetween(width,
		pageHeader("Script Library", "Find and download the best Lua scripts for Roblox"),
		button(ZoneAddScript, "+ Add script", true),
	)

	// Tabs are drawn for every category but the list below is never filtered.
	var tabs []string
	for _, cat := range catalog.Categories() {
		label := strings.ToUpper(cat[:1]) + cat[1:]
		style := styles.GhostButtonStyle
		if cat == catalog.CategoryAll {
			style = styles.ButtonStyle
		}
		tabs = append(tabs, zone.Mark(TabZone(cat), style.Render(label)))
	}

	rows := []string{header, "", strings.Join(tabs, " ")}
	for _, sc := range s.Catalog.Scripts {
		rows = append(rows, scriptCard(sc, width-2))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func scriptCard(sc catalog.Script, width int) string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Bold(true).Render(sc.Title),
		" ",
		outlineBadge(sc.Category),
	)
	left := lipgloss.JoinVertical(lipgloss.Left,
		title,
		avatar(sc.Author)+" "+sc.Author,
	)
	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		button(LikeZone(sc.ID), "♥", false),
		" ",
		button(DownloadZone(sc.ID), "⬇ Download", true),
	)

	footer := styles.MutedStyle.Render(fmt.Sprintf("♥ %d likes   ⬇ %d downloads", sc.Likes, sc.Downloads))

	return styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		spaceBetween(width-4, left, actions),
		"",
		styles.CodeStyle.Render(sc.Code),
		"",
		footer,
	))
}
