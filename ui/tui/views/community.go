package views

import (
	"fmt"

	"roscripthub/internal/reputation"
	"roscripthub/ui/tui/state"
	"roscripthub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type CommunityView struct{}

// Render draws one reputation value per ranked name from props.Reputation, so
// two renders generally differ unless the source is a fixed sequence.
func (v CommunityView) Render(s state.AppState, props ViewProps) string {
	width := contentWidth(props)
	colWidth := (width - 4) / 2

	src := props.Reputation
	if src == nil {
		src = reputation.NewUniform(0)
	}

	ranking := []string{
		lipgloss.NewStyle().Bold(true).Foreground(styles.Gold).Render("🏆 Top Scripters of the Month"),
		"",
	}
	for i, name := range s.Catalog.Ranking {
		place := lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).Render(fmt.Sprintf("%d.", i+1))
		ranking = append(ranking, lipgloss.JoinHorizontal(lipgloss.Top,
			place, " ", avatar(name), " ",
			lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Render(name),
				styles.MutedStyle.Render(fmt.Sprintf("%d reputation", src.Next())),
			),
		))
	}

	feed := []string{
		lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).Render("⚡ Recent Activity"),
		"",
	}
	for _, a := range s.Catalog.Activity {
		feed = append(feed, lipgloss.JoinHorizontal(lipgloss.Top,
			avatar(a.User), " ",
			lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Render(a.User)+" "+a.Action,
				styles.MutedStyle.Render(a.When),
			),
		))
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.CardStyle.Width(colWidth).Render(lipgloss.JoinVertical(lipgloss.Left, ranking...)),
		styles.CardStyle.Width(colWidth).Render(lipgloss.JoinVertical(lipgloss.Left, feed...)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeader("Community", "Active members and top scripters"),
		"",
		columns,
	)
}
