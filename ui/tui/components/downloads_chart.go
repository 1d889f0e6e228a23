package components

import (
	"roscripthub/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DownloadsChart plots download counters of a list of scripts, one point per
// script in table order.
type DownloadsChart struct {
	Chart  linechart.Model
	Values []float64
	Width  int
	Height int
}

func NewDownloadsChart(width, height int, downloads []int) *DownloadsChart {
	values := make([]float64, len(downloads))
	maxY := 1.0
	for i, d := range downloads {
		values[i] = float64(d)
		if values[i] > maxY {
			maxY = values[i]
		}
	}
	maxX := float64(len(values) - 1)
	if maxX < 1 {
		maxX = 1
	}
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, maxX, 0, maxY*1.1)
	return &DownloadsChart{
		Chart:  lc,
		Values: values,
		Width:  width,
		Height: height,
	}
}

func (c *DownloadsChart) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the data is fixed at construction.
func (c *DownloadsChart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *DownloadsChart) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.Values)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.Values[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.Values[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.HeadingStyle.Render("Downloads per script"),
			c.Chart.View(),
		),
	)
}
