package components

import (
	"strings"
	"testing"
)

func TestNewDownloadsChart(t *testing.T) {
	c := NewDownloadsChart(40, 8, []int{1200, 3400, 890})

	if len(c.Values) != 3 || c.Values[1] != 3400 {
		t.Errorf("Unexpected values %v", c.Values)
	}
	if c.Width != 40 || c.Height != 8 {
		t.Errorf("Expected 40x8, got %dx%d", c.Width, c.Height)
	}
}

func TestDownloadsChartView(t *testing.T) {
	out := NewDownloadsChart(40, 8, []int{1200, 3400, 890}).View()

	if !strings.Contains(out, "Downloads per script") {
		t.Error("Expected chart heading")
	}
	// Heading, its bottom margin and the chart inside a two-line border.
	if lines := strings.Count(out, "\n") + 1; lines < 8+2 {
		t.Errorf("Expected at least %d lines, got %d", 8+2, lines)
	}
}

func TestDownloadsChartSinglePoint(t *testing.T) {
	c := NewDownloadsChart(20, 6, []int{5})
	if out := c.View(); out == "" {
		t.Error("Expected a rendered card for a single script")
	}
}
