package tui

import (
	"errors"
	"io"
	"log"
	"time"

	"roscripthub/internal/catalog"
	"roscripthub/internal/config"
	"roscripthub/internal/hub"
	"roscripthub/internal/reputation"
	"roscripthub/ui/tui/state"
	"roscripthub/ui/tui/styles"
	"roscripthub/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	navBarHeight  = 2
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	cfg        config.Config
	state      state.AppState
	reputation reputation.Source
	logger     *log.Logger

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	spinner  spinner.Model

	animCursor  float64
	velocity    float64 // Physics velocity
	spring      harmonica.Spring
	categoryIdx int
	quitting    bool
	width       int
	height      int
}

// Messages
type AnimateMsg time.Time

// InitialModel builds the controller. A nil logger discards log output.
func InitialModel(cfg config.Config, c catalog.Catalog, src reputation.Source, logger *log.Logger) MainModel {
	// Views mark zones while rendering, and the first render happens below.
	zone.NewGlobal()

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if src == nil {
		src = reputation.NewUniform(cfg.ReputationSeed)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)

	spring := harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.SpringFrequency, cfg.SpringDamping)

	st := state.New(c, cfg.StartPage)

	m := MainModel{
		cfg:        cfg,
		state:      st,
		reputation: src,
		logger:     logger,
		keys:       defaultKeyMap(),
		help:       help.New(),
		viewport:   viewport.New(defaultWidth, defaultHeight),
		spinner:    s,
		spring:     spring,
		animCursor: float64(st.Page().Index()),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		animateCmd(m.cfg.FPS),
	)
}

// Commands
func animateCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state.Page() == hub.PageHome {
			m.recompose()
		}
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		if cmd, ok := views.PrimaryCommand(m.state.Page()); ok {
			m.run(cmd)
		}
		return m, nil

	case key.Matches(msg, m.keys.Category):
		if m.state.Page() == hub.PageScripts {
			cats := catalog.Categories()
			m.categoryIdx = (m.categoryIdx + 1) % len(cats)
			m.run(hub.Command{Kind: hub.SelectCategory, Category: cats[m.categoryIdx]})
		}
		return m, nil

	case key.Matches(msg, m.keys.Bell):
		m.run(hub.Command{Kind: hub.Notifications})
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	pages := hub.Pages()
	for i, b := range m.keys.Pages {
		if key.Matches(msg, b) {
			m.navigate(pages[i])
			return m, nil
		}
	}
	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	target := float64(m.state.Page().Index())
	m.animCursor, m.velocity = m.spring.Update(m.animCursor, m.velocity, target)
	return m, animateCmd(m.cfg.FPS)
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if msg.Action == tea.MouseActionRelease {
		for _, c := range views.Controls(m.state) {
			if zone.Get(c.ID).InBounds(msg) {
				m.activate(c)
				return m, nil
			}
		}
	}
	return m, nil
}

func (m *MainModel) activate(c views.Control) {
	if c.Navigate {
		m.navigate(c.Target)
		return
	}
	m.run(c.Command)
}

func (m *MainModel) cycle(step int) {
	pages := hub.Pages()
	i := (m.state.Page().Index() + step + len(pages)) % len(pages)
	m.navigate(pages[i])
}

func (m *MainModel) navigate(p hub.Page) {
	from := m.state.Page()
	m.state.Navigate(p)
	m.categoryIdx = 0
	m.logger.Printf("page %s -> %s", from, p)
	m.viewport.GotoTop()
	m.recompose()
}

func (m *MainModel) run(cmd hub.Command) {
	from := m.state.Page()
	res := hub.Execute(cmd)
	if errors.Is(res.Err, hub.ErrUnsupported) {
		m.logger.Printf("unsupported command on %s: %v", from, res.Err)
	}
	if !m.state.Apply(res) {
		return
	}
	if res.Navigate {
		m.logger.Printf("page %s -> %s (%s)", from, res.Target, cmd.Kind)
		m.categoryIdx = 0
		m.viewport.GotoTop()
	}
	m.recompose()
}

func (m *MainModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.viewport.Width = width - 2
	m.viewport.Height = height - navBarHeight - lipgloss.Height(m.footer())
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.recompose()
}

// recompose renders the active page once and hands it to the viewport.
// Animation frames do not call it, so random values only change on
// navigation, commands and resizes.
func (m *MainModel) recompose() {
	m.viewport.SetContent(views.RenderPage(m.state, views.ViewProps{
		Width:       m.viewport.Width,
		Height:      m.viewport.Height,
		SpinnerView: m.spinner.View(),
		Reputation:  m.reputation,
	}))
}

func (m *MainModel) footer() string {
	// The notice line is always reserved so the viewport height stays fixed.
	notice := ""
	if m.state.Notice != "" {
		notice = styles.NoticeStyle.Render("⚠ " + m.state.Notice)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		notice,
		lipgloss.NewStyle().PaddingLeft(1).Render(m.help.View(m.keys)),
	)
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingLeft(1).Render(views.RenderNavBar(m.state, m.width, m.animCursor)),
		lipgloss.NewStyle().PaddingLeft(1).Render(m.viewport.View()),
		m.footer(),
	)
	return zone.Scan(frame)
}

// Start runs the UI until the user quits.
func Start(cfg config.Config, c catalog.Catalog, src reputation.Source, logger *log.Logger) error {
	m := InitialModel(cfg, c, src, logger)

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(&m, opts...)
	_, err := p.Run()
	return err
}
