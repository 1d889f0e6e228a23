package state

import (
	"strings"
	"testing"

	"roscripthub/internal/catalog"
	"roscripthub/internal/hub"
)

func TestNewDefaultsToStartPage(t *testing.T) {
	s := New(catalog.Default(), hub.PageHome)
	if s.Page() != hub.PageHome {
		t.Errorf("Expected home, got %v", s.Page())
	}

	s = New(catalog.Default(), hub.PageForum)
	if s.Page() != hub.PageForum {
		t.Errorf("Expected forum, got %v", s.Page())
	}
}

func TestZeroStateIsHome(t *testing.T) {
	var s AppState
	if s.Page() != hub.PageHome {
		t.Errorf("Expected zero state on home, got %v", s.Page())
	}
}

func TestNavigate(t *testing.T) {
	s := New(catalog.Default(), hub.PageHome)
	for _, p := range hub.Pages() {
		s.Navigate(p)
		if s.Page() != p {
			t.Errorf("Navigate(%v) left page at %v", p, s.Page())
		}
	}
}

func TestNavigateInvalidPanics(t *testing.T) {
	s := New(catalog.Default(), hub.PageHome)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on invalid page")
		}
		if s.Page() != hub.PageHome {
			t.Errorf("Page changed to %v after invalid navigation", s.Page())
		}
	}()
	s.Navigate(hub.Page(-1))
}

func TestApply(t *testing.T) {
	s := New(catalog.Default(), hub.PageHome)

	if !s.Apply(hub.Execute(hub.Command{Kind: hub.UploadScript})) {
		t.Error("Unsupported command should change the visible notice")
	}
	if s.Page() != hub.PageHome {
		t.Errorf("Unsupported command moved page to %v", s.Page())
	}
	if !strings.Contains(s.Notice, "upload script") {
		t.Errorf("Unexpected notice %q", s.Notice)
	}

	if !s.Apply(hub.Execute(hub.Command{Kind: hub.OpenScripts})) {
		t.Error("OpenScripts should change the view")
	}
	if s.Page() != hub.PageScripts {
		t.Errorf("Expected scripts after OpenScripts, got %v", s.Page())
	}
	if s.Notice != "" {
		t.Errorf("Navigation should clear the notice, got %q", s.Notice)
	}

	if s.Apply(hub.Result{}) {
		t.Error("Empty result should not report a change")
	}
}
