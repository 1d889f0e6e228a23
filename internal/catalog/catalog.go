package catalog

import "fmt"

// TopicStatus is the open/closed state of a forum topic.
type TopicStatus string

const (
	StatusOpen   TopicStatus = "open"
	StatusClosed TopicStatus = "closed"
)

// Category tab identifiers. CategoryAll is the only tab with content.
const (
	CategoryAll      = "all"
	CategoryFarming  = "farming"
	CategoryMovement = "movement"
	CategoryVisual   = "visual"
)

type Script struct {
	ID        int
	Title     string
	Author    string
	Category  string
	Likes     int
	Downloads int
	Code      string // shown verbatim, never run
}

type Topic struct {
	ID      int
	Title   string
	Author  string
	Replies int
	Views   int
	Status  TopicStatus
}

type UserStats struct {
	TimeSpent       string
	ScriptsUploaded int
	TotalDownloads  int
	Reputation      int
	Rank            string
}

// Profile is the implicit signed-in user shown on the profile page.
type Profile struct {
	Name     string
	Initials string
	Bio      string
	Stats    UserStats
}

type Activity struct {
	User   string
	Action string
	When   string
}

// Catalog bundles every table the views read. It is built once and only read.
type Catalog struct {
	Scripts  []Script
	Topics   []Topic
	Profile  Profile
	Ranking  []string
	Activity []Activity

	// Fixed home page counters.
	OnlineMembers string
	ResponseTime  string
}

// Default returns the sample data set. Each call builds fresh slices.
func Default() Catalog {
	return Catalog{
		Scripts: []Script{
			{
				ID:        1,
				Title:     "Auto Farm Script",
				Author:    "ProCoder123",
				Category:  "Farming",
				Likes:     1247,
				Downloads: 5632,
				Code:      "local player = game.Players.LocalPlayer\nprint(\"Auto Farm Active!\")",
			},
			{
				ID:        2,
				Title:     "Speed Hack Ultimate",
				Author:    "SpeedDemon",
				Category:  "Movement",
				Likes:     892,
				Downloads: 3421,
				Code:      "game.Players.LocalPlayer.Character.Humanoid.WalkSpeed = 100",
			},
			{
				ID:        3,
				Title:     "ESP Wallhack",
				Author:    "VisionMaster",
				Category:  "Visual",
				Likes:     2103,
				Downloads: 8945,
				Code:      "-- ESP Code Here\nlocal esp = true",
			},
			{
				ID:        4,
				Title:     "Infinite Jump",
				Author:    "JumpKing",
				Category:  "Movement",
				Likes:     654,
				Downloads: 2187,
				Code:      "UserInputService.JumpRequest:connect(function()\n  game.Players.LocalPlayer.Character:FindFirstChildOfClass(\"Humanoid\"):ChangeState(\"Jumping\")\nend)",
			},
		},
		Topics: []Topic{
			{ID: 1, Title: "Лучшие скрипты для новичков", Author: "AdminUser", Replies: 45, Views: 1203, Status: StatusOpen},
			{ID: 2, Title: "Обновление безопасности", Author: "ModTeam", Replies: 12, Views: 567, Status: StatusClosed},
			{ID: 3, Title: "Как создать свой первый скрипт?", Author: "Helper123", Replies: 78, Views: 2341, Status: StatusOpen},
			{ID: 4, Title: "Баг-репорт: проблема с загрузкой", Author: "User456", Replies: 23, Views: 456, Status: StatusOpen},
		},
		Profile: Profile{
			Name:     "ProCoder123",
			Initials: "PC",
			Bio:      "Scripter since 2022 • Lua enthusiast",
			Stats: UserStats{
				TimeSpent:       "127 часов 34 минуты",
				ScriptsUploaded: 12,
				TotalDownloads:  8432,
				Reputation:      1547,
				Rank:            "Veteran Scripter",
			},
		},
		Ranking: []string{"ProCoder123", "SpeedDemon", "VisionMaster", "JumpKing", "MasterHacker"},
		Activity: []Activity{
			{User: "ProCoder123", Action: "загрузил новый скрипт", When: "5 мин назад"},
			{User: "SpeedDemon", Action: "оставил комментарий", When: "12 мин назад"},
			{User: "VisionMaster", Action: "обновил профиль", When: "23 мин назад"},
			{User: "JumpKing", Action: "создал тему на форуме", When: "1 час назад"},
		},
		OnlineMembers: "12,547",
		ResponseTime:  "<5 min",
	}
}

// Head returns the first n scripts in table order, or all of them when the
// table is shorter. The result is a copy.
func Head(scripts []Script, n int) []Script {
	if n < 0 {
		n = 0
	}
	if n > len(scripts) {
		n = len(scripts)
	}
	out := make([]Script, n)
	copy(out, scripts[:n])
	return out
}

// Categories returns the category tabs in display order.
func Categories() []string {
	return []string{CategoryAll, CategoryFarming, CategoryMovement, CategoryVisual}
}

// Validate checks the display invariants: counters are non-negative and
// topic statuses are open or closed.
func (c Catalog) Validate() error {
	for _, s := range c.Scripts {
		if s.Likes < 0 || s.Downloads < 0 {
			return fmt.Errorf("script %d: negative counter", s.ID)
		}
	}
	for _, t := range c.Topics {
		if t.Replies < 0 || t.Views < 0 {
			return fmt.Errorf("topic %d: negative counter", t.ID)
		}
		if t.Status != StatusOpen && t.Status != StatusClosed {
			return fmt.Errorf("topic %d: unknown status %q", t.ID, t.Status)
		}
	}
	st := c.Profile.Stats
	if st.ScriptsUploaded < 0 || st.TotalDownloads < 0 || st.Reputation < 0 {
		return fmt.Errorf("profile %s: negative counter", c.Profile.Name)
	}
	return nil
}
