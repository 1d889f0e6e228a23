package console

import (
	"fmt"
	"io"
	"strings"

	"roscripthub/internal/catalog"
	"roscripthub/internal/hub"
	"roscripthub/internal/reputation"
	"roscripthub/ui/tui/state"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

const labelWidth = 34

// Print renders the active page of s to the writer in a compact, non-interactive format.
func Print(w io.Writer, s state.AppState, src reputation.Source) {
	if src == nil {
		src = reputation.NewUniform(0)
	}
	c := s.Catalog
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "ROSCRIPT HUB // "+strings.ToUpper(s.Page().Title()), colorReset)

	switch s.Page() {
	case hub.PageHome:
		section(w, "Overview")
		row(w, "Active scripts", fmt.Sprintf("%d+", len(c.Scripts)))
		row(w, "Members online", c.OnlineMembers)
		row(w, "Support response", c.ResponseTime)
		section(w, "Hot scripts of the day")
		for _, sc := range catalog.Head(c.Scripts, 2) {
			row(w, sc.Title, fmt.Sprintf("♥%d ⬇%d", sc.Likes, sc.Downloads))
		}

	case hub.PageScripts:
		section(w, "Script library")
		for _, sc := range c.Scripts {
			row(w, fmt.Sprintf("%s (%s)", sc.Title, sc.Author), fmt.Sprintf("♥%d ⬇%d", sc.Likes, sc.Downloads))
			for _, line := range strings.Split(sc.Code, "\n") {
				fmt.Fprintf(w, "    %s│%s %s\n", colorCyan, colorReset, line)
			}
		}

	case hub.PageProfile:
		p := c.Profile
		section(w, p.Name+" · "+p.Stats.Rank)
		row(w, "Time on site", p.Stats.TimeSpent)
		row(w, "Scripts uploaded", fmt.Sprintf("%d", p.Stats.ScriptsUploaded))
		row(w, "Total downloads", fmt.Sprintf("%d", p.Stats.TotalDownloads))
		row(w, "Reputation", fmt.Sprintf("%d", p.Stats.Reputation))
		section(w, "My scripts")
		for _, sc := range catalog.Head(c.Scripts, 3) {
			row(w, sc.Title, sc.Category)
		}

	case hub.PageForum:
		section(w, "Forum topics")
		for _, t := range c.Topics {
			color := colorFor(t.Status)
			fmt.Fprintf(w, "  %s%s%s %s%s\n", color, markerFor(t.Status), colorReset, pad(t.Title),
				fmt.Sprintf("%d replies · %d views", t.Replies, t.Views))
		}

	case hub.PageCommunity:
		section(w, "Top scripters")
		for i, name := range c.Ranking {
			row(w, fmt.Sprintf("%d. %s", i+1, name), fmt.Sprintf("%d rep", src.Next()))
		}
		section(w, "Recent activity")
		for _, a := range c.Activity {
			fmt.Fprintf(w, "  %s %s %s(%s)%s\n", a.User, a.Action, colorYellow, a.When, colorReset)
		}
	}
	fmt.Fprintln(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+title, colorReset)
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", pad(label), value)
}

// pad truncates or dot-fills label to labelWidth runes.
func pad(label string) string {
	r := []rune(label)
	if len(r) > labelWidth {
		return string(r[:labelWidth-3]) + "..."
	}
	return label + colorCyan + strings.Repeat("·", labelWidth-len(r)) + colorReset
}

func colorFor(status catalog.TopicStatus) string {
	switch status {
	case catalog.StatusOpen:
		return colorGreen
	case catalog.StatusClosed:
		return colorRed
	default:
		return colorYellow
	}
}

func markerFor(status catalog.TopicStatus) string {
	if status == catalog.StatusOpen {
		return "✓"
	}
	return "✗"
}
