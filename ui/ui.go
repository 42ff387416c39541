// Package ui provides the terminal reader for stutter.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dgnsrekt/stutter/internal/stutter"
	"github.com/muesli/reflow/truncate"
	te "github.com/muesli/termenv"
	"golang.org/x/time/rate"
)

const (
	defaultFrameRate = 30
	maxBarWidth      = 80
	// Lines below the reading area: progress bar, help and status bar.
	footerHeight = 3
)

var (
	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D7005F", Dark: "#FF5F87"}).
			Bold(true)
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#EEEEEE"}).
			Bold(true)
	guideStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
	lookaheadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#949494", Dark: "#5A5A5A"})
	contextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#656565", Dark: "#7D7D7D"}).
			Italic(true)
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#6124DF")).
			Padding(0, 2).
			Bold(true)
)

type (
	frameMsg   time.Time
	startedMsg struct{}
)

// NewProgram returns a new Tea program that reads req aloud, one word at a
// time.
func NewProgram(cfg Config, store stutter.Config, req stutter.Request) *tea.Program {
	log.Debug(
		"Starting stutter",
		"source",
		cfg.Source,
		"locale",
		req.Locale,
	)

	lipgloss.SetHasDarkBackground(te.HasDarkBackground())

	overlay := NewOverlay()
	player := stutter.NewPlayer(overlay, store, stutter.WithLogger(log.Default()))

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return tea.NewProgram(newModel(cfg, overlay, player, req), opts...)
}

type model struct {
	cfg     Config
	overlay *Overlay
	player  *stutter.Player
	req     stutter.Request

	keys  keyMap
	help  help.Model
	bar   progress.Model
	skips *rate.Limiter

	width  int
	height int
	frame  Frame
	status stutter.Status
}

func newModel(cfg Config, overlay *Overlay, player *stutter.Player, req stutter.Request) model {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = defaultFrameRate
	}
	skipRate := rate.Inf
	if cfg.SkipRate > 0 {
		skipRate = rate.Limit(cfg.SkipRate)
	}

	return model{
		cfg:     cfg,
		overlay: overlay,
		player:  player,
		req:     req,
		keys:    newKeyMap(),
		help:    help.New(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		skips:   rate.NewLimiter(skipRate, 1),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.start(), m.tick())
}

func (m model) start() tea.Cmd {
	player, req := m.player, m.req
	return func() tea.Msg {
		player.Start(req)
		return startedMsg{}
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FrameRate), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = max(10, min(msg.Width-4, maxBarWidth))
		return m, nil

	case startedMsg, frameMsg:
		m.sync()
		if _, ok := msg.(frameMsg); ok {
			return m, m.tick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// sync copies the overlay snapshot and the session state into the model.
func (m *model) sync() {
	m.frame = m.overlay.Frame()
	if c := m.player.Current(); c != nil {
		m.status = c.Status()
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.overlay.Emit(stutter.EventClose)
		m.player.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.overlay.Emit(stutter.EventPauseToggle)
	case key.Matches(msg, m.keys.Forward):
		if m.skips.Allow() {
			m.overlay.Emit(stutter.EventSkipForward)
		}
	case key.Matches(msg, m.keys.Back):
		if m.skips.Allow() {
			m.overlay.Emit(stutter.EventSkipPrevious)
		}
	case key.Matches(msg, m.keys.Pause):
		m.overlay.Emit(stutter.EventPause)
	case key.Matches(msg, m.keys.Restart):
		m.overlay.Emit(stutter.EventRestart)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
	m.sync()
	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return ""
	}

	var body string
	switch {
	case m.status.State == stutter.StateEnded:
		body = m.finishedView()
	case m.frame.Shown == 0:
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, guideStyle.Render("Loading"+ellipsis))
	default:
		body = m.readerView()
	}

	body = lipgloss.PlaceVertical(max(m.height-footerHeight-m.helpHeight(), 1), lipgloss.Center, body)

	footer := []string{
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.bar.ViewAs(float64(m.frame.Progress)/100)),
		m.help.View(m.keys),
		statusBar(m.width, m.cfg.Source, m.status, m.frame),
	}
	return body + "\n" + strings.Join(footer, "\n")
}

func (m model) helpHeight() int {
	if m.help.ShowAll {
		return lipgloss.Height(m.help.View(m.keys)) - 1
	}
	return 0
}

func (m model) readerView() string {
	center := m.width / 2
	guide := strings.Repeat(" ", center) + "│"
	if m.frame.Paused {
		guide = strings.Repeat(" ", max(center-3, 0)) + "paused"
	}

	lines := []string{
		guideStyle.Render(guide),
		renderWord(m.frame.Word, center, focusStyle.Render, wordStyle.Render),
		guideStyle.Render(strings.Repeat(" ", center) + "│"),
	}

	if m.cfg.ShowLookahead {
		next := ""
		if m.frame.HasNext {
			next = lookaheadStyle.Render(m.frame.Next)
		}
		lines = append(lines, "", lipgloss.PlaceHorizontal(m.width, lipgloss.Center, next))
	}
	if m.cfg.ShowContext && m.frame.Context != "" {
		context := truncate.StringWithTail(m.frame.Context, uint(max(m.width-4, 0)), ellipsis) //nolint:gosec
		lines = append(lines, "", lipgloss.PlaceHorizontal(m.width, lipgloss.Center, contextStyle.Render(context)))
	}
	return strings.Join(lines, "\n")
}

func (m model) finishedView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bannerStyle.Render("Finished")),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			guideStyle.Render("r to read again • q to quit")),
	)
}
