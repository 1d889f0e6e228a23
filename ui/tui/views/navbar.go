package views

import (
	"math"
	"strings"

	"roscripthub/internal/hub"
	"roscripthub/ui/tui/state"
	"roscripthub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var navIcons = map[hub.Page]string{
	hub.PageHome:      "⌂",
	hub.PageScripts:   "</>",
	hub.PageForum:     "✉",
	hub.PageCommunity: "☺",
	hub.PageProfile:   "☻",
}

// NavBar is always drawn above the active page.
type NavBar struct{}

func (v NavBar) Render(s state.AppState, props ViewProps) string {
	brand := styles.TitleStyle.Render("</> RoScript Hub")

	pages := hub.Pages()
	buttons := make([]string, 0, len(pages))
	starts := make([]int, 0, len(pages))
	widths := make([]int, 0, len(pages))
	offset := lipgloss.Width(brand) + 2

	for _, p := range pages {
		style := styles.GhostButtonStyle
		if p == s.Page() {
			style = styles.ButtonStyle
		}
		b := style.Render(navIcons[p] + " " + p.Title())
		starts = append(starts, offset)
		widths = append(widths, lipgloss.Width(b))
		offset += lipgloss.Width(b) + 1
		buttons = append(buttons, zone.Mark(NavZone(p), b))
	}

	nav := strings.Join(buttons, " ")
	right := lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(ZoneBell, styles.GhostButtonStyle.Render("🔔")),
		" ",
		lipgloss.NewStyle().Foreground(styles.Primary).Render("("+s.Catalog.Profile.Initials+")"),
	)

	left := lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", nav)
	bar := spaceBetween(contentWidth(props), left, right)

	return lipgloss.JoinVertical(lipgloss.Left,
		bar,
		underline(starts, widths, props.AnimCursor),
	)
}

// underline draws the active marker interpolated between buttons, so a
// fractional cursor glides from one button to the next.
func underline(starts, widths []int, cursor float64) string {
	if len(starts) == 0 {
		return ""
	}
	maxIdx := float64(len(starts) - 1)
	cursor = math.Max(0, math.Min(cursor, maxIdx))

	i := int(math.Floor(cursor))
	frac := cursor - float64(i)
	j := i
	if frac > 0 && i < len(starts)-1 {
		j = i + 1
	}

	x := float64(starts[i]) + frac*float64(starts[j]-starts[i])
	w := float64(widths[i]) + frac*float64(widths[j]-widths[i])

	return strings.Repeat(" ", int(math.Round(x))) +
		lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", int(math.Round(w))))
}
