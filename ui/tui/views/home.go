package views

import (
	"fmt"

	"roscripthub/internal/catalog"
	"roscripthub/ui/tui/state"
	"roscripthub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// hotScriptCount scripts are featured on the home page, taken from the head
// of the table regardless of popularity.
const hotScriptCount = 2

type HomeView struct{}

func (v HomeView) Render(s state.AppState, props ViewProps) string {
	width := contentWidth(props)
	c := s.Catalog

	hero := styles.AccentCardStyle.
		Width(width-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Welcome to RoScript Hub"),
			styles.MutedStyle.Render("The largest Lua script platform for Roblox"),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top,
				button(ZoneDownloadCTA, "⬇ Download scripts", true),
				"  ",
				button(ZoneUploadCTA, "⬆ Upload your own", false),
			),
		))

	tileWidth := (width - 6) / 3
	tile := func(title, desc, value, caption string, color lipgloss.TerminalColor) string {
		return styles.CardStyle.Width(tileWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(title),
			styles.MutedStyle.Render(desc),
			"",
			lipgloss.NewStyle().Bold(true).Foreground(color).Render(value),
			styles.MutedStyle.Render(caption),
		))
	}

	online := c.OnlineMembers
	if props.SpinnerView != "" {
		online = props.SpinnerView + " " + online
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		tile("Popular scripts", "Top downloads of the week", fmt.Sprintf("%d+", len(c.Scripts)), "active scripts", styles.Primary),
		tile("Active community", "Join us", online, "members online", styles.Secondary),
		tile("Fast support", "Help 24/7", c.ResponseTime, "response time", styles.Danger),
	)

	var featured []string
	for _, sc := range catalog.Head(c.Scripts, hotScriptCount) {
		featured = append(featured, zone.Mark(FeaturedZone(sc.ID), featuredCard(sc, (width-6)/2)))
	}

	hot := styles.CardStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(styles.Danger).Render("🔥 Hot scripts of the day"),
		lipgloss.JoinHorizontal(lipgloss.Top, featured...),
	))

	return lipgloss.JoinVertical(lipgloss.Left, hero, stats, hot)
}

func featuredCard(sc catalog.Script, width int) string {
	head := spaceBetween(width-4,
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(sc.Title),
			styles.MutedStyle.Render("by "+sc.Author),
		),
		badge(sc.Category),
	)
	return styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		head,
		"",
		counters(sc.Likes, sc.Downloads),
	))
}
