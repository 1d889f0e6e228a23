package views

import (
	"fmt"

	"roscripthub/internal/hub"
	"roscripthub/ui/tui/state"
)

// Select maps a page to its renderer. Every valid page has exactly one.
func Select(p hub.Page) View {
	switch p {
	case hub.PageHome:
		return HomeView{}
	case hub.PageScripts:
		return ScriptsView{}
	case hub.PageProfile:
		return ProfileView{}
	case hub.PageForum:
		return ForumView{}
	case hub.PageCommunity:
		return CommunityView{}
	}
	panic(fmt.Sprintf("views: no renderer for page %d", int(p)))
}

// RenderPage draws the body of the active page.
func RenderPage(s state.AppState, props ViewProps) string {
	return Select(s.Page()).Render(s, props)
}

func RenderNavBar(s state.AppState, width int, animCursor float64) string {
	return NavBar{}.Render(s, ViewProps{
		Width:      width,
		AnimCursor: animCursor,
	})
}
