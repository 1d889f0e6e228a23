package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Primary   = lipgloss.AdaptiveColor{Light: "#0A84FF", Dark: "#3BA7FF"}
	Secondary = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#9B6BFF"}
	Danger    = lipgloss.AdaptiveColor{Light: "#E5484D", Dark: "#FF6369"}
	Gold      = lipgloss.Color("220")
	Muted     = lipgloss.Color("#888")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1).
			MarginRight(1)

	AccentCardStyle = CardStyle.
			BorderForeground(Primary)

	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C9D1D9")).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#1F2428"}).
			Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFF")).
			Background(Secondary)

	OutlineBadgeStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(Primary)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFF")).
			Background(Primary)

	GhostButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("#AAA"))

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Italic(true).
			PaddingLeft(1)
)
