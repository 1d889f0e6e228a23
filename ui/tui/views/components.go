package views

import (
	"fmt"
	"strings"

	"roscripthub/internal/catalog"
	"roscripthub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

func pageHeader(title, subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		styles.MutedStyle.Render(subtitle),
	)
}

// button renders a clickable control.
func button(id, label string, primary bool) string {
	style := styles.GhostButtonStyle
	if primary {
		style = styles.ButtonStyle
	}
	return zone.Mark(id, style.Render(label))
}

func avatar(name string) string {
	initial := "?"
	if r := []rune(name); len(r) > 0 {
		initial = string(r[0])
	}
	return styles.MutedStyle.Render("(" + initial + ")")
}

func badge(text string) string {
	return styles.BadgeStyle.Render(text)
}

func outlineBadge(text string) string {
	return styles.OutlineBadgeStyle.Render("[" + text + "]")
}

func statusBadge(status catalog.TopicStatus) string {
	if status == catalog.StatusOpen {
		return styles.BadgeStyle.Background(styles.Primary).Render("🔓 Open")
	}
	return styles.BadgeStyle.Render("🔒 Closed")
}

func counters(likes, downloads int) string {
	return styles.MutedStyle.Render(fmt.Sprintf("♥ %d   ⬇ %d", likes, downloads))
}

// spaceBetween pads left and right apart so the row spans width.
func spaceBetween(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}

// contentWidth is the usable width inside the page padding.
func contentWidth(props ViewProps) int {
	w := props.Width - 4
	if w < 40 {
		w = 40
	}
	return w
}
