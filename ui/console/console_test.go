package console

import (
	"bytes"
	"strings"
	"testing"

	"roscripthub/internal/catalog"
	"roscripthub/internal/hub"
	"roscripthub/internal/reputation"
	"roscripthub/ui/tui/state"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		status   catalog.TopicStatus
		expected string
	}{
		{catalog.StatusOpen, colorGreen},
		{catalog.StatusClosed, colorRed},
		{"", colorYellow},
		{"pinned", colorYellow},
	}

	for _, tt := range tests {
		result := colorFor(tt.status)
		if result != tt.expected {
			t.Errorf("colorFor(%q) = %q; want %q", tt.status, result, tt.expected)
		}
	}
}

func TestPad(t *testing.T) {
	short := pad("Abc")
	if !strings.HasPrefix(short, "Abc") || strings.Count(short, "·") != labelWidth-3 {
		t.Errorf("Unexpected padding: %q", short)
	}

	long := pad(strings.Repeat("x", labelWidth+10))
	if len([]rune(long)) != labelWidth || !strings.HasSuffix(long, "...") {
		t.Errorf("Unexpected truncation: %q", long)
	}
}

func printPage(p hub.Page, src reputation.Source) string {
	var buf bytes.Buffer
	Print(&buf, state.New(catalog.Default(), p), src)
	return buf.String()
}

func TestPrintEveryPage(t *testing.T) {
	tests := []struct {
		page     hub.Page
		contains []string
		absent   []string
	}{
		{hub.PageHome, []string{"HOME", "4+", "Auto Farm Script", "Speed Hack Ultimate"}, []string{"ESP Wallhack"}},
		{hub.PageScripts, []string{"SCRIPTS", "Infinite Jump", "local esp = true"}, nil},
		{hub.PageProfile, []string{"PROFILE", "Veteran Scripter", "ESP Wallhack"}, []string{"Infinite Jump"}},
		{hub.PageForum, []string{"FORUM", "45 replies · 1203 views", "✗"}, nil},
		{hub.PageCommunity, []string{"COMMUNITY", "1500 rep", "MasterHacker", "1 час назад"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.page.String(), func(t *testing.T) {
			out := printPage(tt.page, reputation.NewSequence(1500))
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("Expected %q in output", s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("Did not expect %q in output", s)
				}
			}
		})
	}
}

func TestPrintForumMarkers(t *testing.T) {
	out := printPage(hub.PageForum, nil)
	if got := strings.Count(out, "✓"); got != 3 {
		t.Errorf("Expected 3 open markers, got %d", got)
	}
	if got := strings.Count(out, "✗"); got != 1 {
		t.Errorf("Expected 1 closed marker, got %d", got)
	}
}
