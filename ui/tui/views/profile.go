package views

import (
	"fmt"

	"roscripthub/internal/catalog"
	"roscripthub/ui/tui/components"
	"roscripthub/ui/tui/state"
	"roscripthub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// myScriptCount scripts are listed as the user's own. There is no ownership
// link; the head of the table is used as is.
const myScriptCount = 3

type ProfileView struct{}

func (v ProfileView) Render(s state.AppState, props ViewProps) string {
	width := contentWidth(props)
	p := s.Catalog.Profile

	identity := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(p.Name),
		lipgloss.JoinHorizontal(lipgloss.Top,
			badge(p.Stats.Rank),
			" ",
			outlineBadge(fmt.Sprintf("★ %d reputation", p.Stats.Reputation)),
		),
		styles.MutedStyle.Render(p.Bio),
	)
	avatarBox := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2).
		Render(p.Initials)

	card := styles.AccentCardStyle.Width(width - 2).Render(spaceBetween(width-6,
		lipgloss.JoinHorizontal(lipgloss.Center, avatarBox, "  ", identity),
		button(ZoneEditProfile, "Edit profile", false),
	))

	tileWidth := (width - 8) / 4
	tile := func(label, value string, color lipgloss.TerminalColor) string {
		return styles.CardStyle.Width(tileWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.MutedStyle.Render(label),
			lipgloss.NewStyle().Bold(true).Foreground(color).Render(value),
		))
	}
	tiles := lipgloss.JoinHorizontal(lipgloss.Top,
		tile("Time on site", "◷ "+p.Stats.TimeSpent, styles.Primary),
		tile("Scripts uploaded", fmt.Sprintf("%d", p.Stats.ScriptsUploaded), styles.Secondary),
		tile("Total downloads", fmt.Sprintf("⬇ %d", p.Stats.TotalDownloads), styles.Danger),
		tile("Reputation", fmt.Sprintf("✪ %d", p.Stats.Reputation), styles.Gold),
	)

	mine := catalog.Head(s.Catalog.Scripts, myScriptCount)
	rows := []string{
		lipgloss.NewStyle().Bold(true).Render("My Scripts"),
		styles.MutedStyle.Render("Published scripts"),
	}
	downloads := make([]int, 0, len(mine))
	for _, sc := range mine {
		rows = append(rows, myScriptRow(sc, width-6))
		downloads = append(downloads, sc.Downloads)
	}
	list := styles.CardStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	out := []string{card, tiles, list}
	if len(mine) > 1 {
		out = append(out, components.NewDownloadsChart(width/2, 8, downloads).View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func myScriptRow(sc catalog.Script, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(styles.Subtle).
		Render(spaceBetween(width,
			lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Render(sc.Title),
				counters(sc.Likes, sc.Downloads),
			),
			badge(sc.Category),
		))
}
