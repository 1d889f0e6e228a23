package views

import (
	"fmt"

	"roscripthub/internal/catalog"
	"roscripthub/internal/hub"
	"roscripthub/ui/tui/state"
)

// Zone IDs of the fixed controls.
const (
	ZoneBell        = "bell"
	ZoneDownloadCTA = "cta_download"
	ZoneUploadCTA   = "cta_upload"
	ZoneAddScript   = "add_script"
	ZoneCreateTopic = "create_topic"
	ZoneEditProfile = "edit_profile"
)

func NavZone(p hub.Page) string        { return "nav_" + p.String() }
func FeaturedZone(scriptID int) string { return fmt.Sprintf("featured_%d", scriptID) }
func LikeZone(scriptID int) string     { return fmt.Sprintf("like_%d", scriptID) }
func DownloadZone(scriptID int) string { return fmt.Sprintf("download_%d", scriptID) }
func TabZone(category string) string   { return "tab_" + category }

// Control is one clickable element on screen: either a navigation button or a
// command trigger.
type Control struct {
	ID       string
	Navigate bool
	Target   hub.Page
	Command  hub.Command
}

// Controls lists every control visible for the current page, navigation bar first.
func Controls(s state.AppState) []Control {
	var out []Control
	for _, p := range hub.Pages() {
		out = append(out, Control{ID: NavZone(p), Navigate: true, Target: p})
	}
	out = append(out, Control{ID: ZoneBell, Command: hub.Command{Kind: hub.Notifications}})

	switch s.Page() {
	case hub.PageHome:
		out = append(out,
			Control{ID: ZoneDownloadCTA, Command: hub.Command{Kind: hub.OpenScripts}},
			Control{ID: ZoneUploadCTA, Command: hub.Command{Kind: hub.UploadScript}},
		)
		for _, sc := range catalog.Head(s.Catalog.Scripts, hotScriptCount) {
			out = append(out, Control{ID: FeaturedZone(sc.ID), Command: hub.Command{Kind: hub.OpenScripts, ScriptID: sc.ID}})
		}
	case hub.PageScripts:
		out = append(out, Control{ID: ZoneAddScript, Command: hub.Command{Kind: hub.AddScript}})
		for _, cat := range catalog.Categories() {
			out = append(out, Control{ID: TabZone(cat), Command: hub.Command{Kind: hub.SelectCategory, Category: cat}})
		}
		for _, sc := range s.Catalog.Scripts {
			out = append(out,
				Control{ID: LikeZone(sc.ID), Command: hub.Command{Kind: hub.LikeScript, ScriptID: sc.ID}},
				Control{ID: DownloadZone(sc.ID), Command: hub.Command{Kind: hub.DownloadScript, ScriptID: sc.ID}},
			)
		}
	case hub.PageProfile:
		out = append(out, Control{ID: ZoneEditProfile, Command: hub.Command{Kind: hub.EditProfile}})
	case hub.PageForum:
		out = append(out, Control{ID: ZoneCreateTopic, Command: hub.Command{Kind: hub.CreateTopic}})
	}
	return out
}

// ControlByID finds a visible control by its zone ID.
func ControlByID(s state.AppState, id string) (Control, bool) {
	for _, c := range Controls(s) {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}

// PrimaryCommand is what the enter key triggers on a page, if anything.
func PrimaryCommand(p hub.Page) (hub.Command, bool) {
	switch p {
	case hub.PageHome:
		return hub.Command{Kind: hub.OpenScripts}, true
	case hub.PageScripts:
		return hub.Command{Kind: hub.AddScript}, true
	case hub.PageForum:
		return hub.Command{Kind: hub.CreateTopic}, true
	case hub.PageProfile:
		return hub.Command{Kind: hub.EditProfile}, true
	}
	return hub.Command{}, false
}
