package views

import (
	"fmt"

	"roscripthub/internal/catalog"
	"roscripthub/ui/tui/state"
	"roscripthub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type ForumView struct{}

func (v ForumView) Render(s state.AppState, props ViewProps) string {
	width := contentWidth(props)

	header := spaceBetween(width,
		pageHeader("Community Forum", "Discuss scripts and share experience"),
		button(ZoneCreateTopic, "+ Create topic", true),
	)

	rows := []string{header, ""}
	for _, t := range s.Catalog.Topics {
		rows = append(rows, topicCard(t, width-2))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func topicCard(t catalog.Topic, width int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Bold(true).Render(t.Title),
			" ",
			statusBadge(t.Status),
		),
		avatar(t.Author)+" "+t.Author,
	)
	stats := styles.MutedStyle.Render(fmt.Sprintf("💬 %d   👁 %d", t.Replies, t.Views))
	return styles.CardStyle.Width(width).Render(spaceBetween(width-4, left, stats))
}
