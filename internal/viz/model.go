package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/san-kum/topograph/internal/config"
	"github.com/san-kum/topograph/internal/graph"
	"github.com/san-kum/topograph/internal/interact"
	"github.com/san-kum/topograph/internal/topology"
)

// chromeRows is the header plus the status line.
const chromeRows = 2

const historyLen = 120

type TickMsg time.Time

// ReloadMsg carries a payload that replaces the current graph.
type ReloadMsg graph.Payload

type Model struct {
	top     *topology.Topology
	surface *Surface
	theme   Theme
	styles  Styles
	fps     int

	paused        bool
	width, height int
	alphas        []float64
	changes       <-chan graph.Payload
}

func NewModel(top *topology.Topology, s *Surface, fps int) Model {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	theme := Themes[0]
	return Model{
		top:     top,
		surface: s,
		theme:   theme,
		styles:  NewStyles(theme),
		fps:     fps,
		width:   s.Canvas.Width,
		height:  s.Canvas.Height + chromeRows,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// WithTheme switches the chrome to the named theme; unknown names get the
// first theme.
func (m Model) WithTheme(name string) Model {
	m.theme = GetTheme(name)
	m.styles = NewStyles(m.theme)
	return m
}

// Watch makes the model reload the graph from every payload on ch.
func (m Model) Watch(ch <-chan graph.Payload) Model {
	m.changes = ch
	return m
}

func (m Model) wait() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-m.changes
		if !ok {
			return nil
		}
		return ReloadMsg(p)
	}
}

func (m Model) Init() tea.Cmd { return tea.Batch(m.tick(), m.wait()) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.top.Reheat()
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = NewStyles(m.theme)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.Resize(msg.Width, max(msg.Height-chromeRows, 1))
		m.top.Redraw()
	case tea.MouseMsg:
		if ev, ok := m.pointer(msg); ok {
			m.top.HandlePointer(ev)
		}
	case TickMsg:
		if !m.paused && m.top.Tick() {
			m.alphas = append(m.alphas, m.top.Engine().Alpha())
			if len(m.alphas) > historyLen {
				m.alphas = m.alphas[len(m.alphas)-historyLen:]
			}
		}
		return m, m.tick()
	case ReloadMsg:
		m.top.Reload(graph.Payload(msg))
		m.alphas = nil
		return m, m.wait()
	}
	return m, nil
}

// pointer translates a terminal mouse message into a pointer event. Only
// the left button drags.
func (m Model) pointer(msg tea.MouseMsg) (interact.Event, bool) {
	var kind interact.Kind
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return interact.Event{}, false
		}
		kind = interact.Down
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return interact.Event{}, false
		}
		kind = interact.Move
	case tea.MouseActionRelease:
		kind = interact.Up
	default:
		return interact.Event{}, false
	}
	p := m.surface.ToLogical(msg.X, msg.Y-1)
	return interact.Event{Kind: kind, X: p.X, Y: p.Y}, true
}

func (m Model) View() string {
	var b strings.Builder

	g := m.top.Graph()
	b.WriteString(GradientText("topograph", m.theme.Primary, m.theme.Secondary))
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("  %d nodes  %d links", g.Len(), len(g.Links))))
	if n := m.top.Dragging(); n != nil {
		b.WriteString(m.styles.Value.Render("  > " + n.ID))
	}
	b.WriteString("\n")

	b.WriteString(m.surface.Canvas.Render())
	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	eng := m.top.Engine()
	state := m.styles.Label.Render("SETTLED")
	switch {
	case m.paused:
		state = m.styles.Paused.Render("PAUSED")
	case eng.Running():
		state = m.styles.Status.Render("RUNNING")
	}

	return fmt.Sprintf("%s %s %s %s  %s",
		state,
		m.styles.Label.Render("alpha"),
		m.styles.Value.Render(fmt.Sprintf("%.3f", eng.Alpha())),
		m.styles.Label.Render(SparklineChart(m.alphas, 24)),
		m.styles.KeyHint.Render("[drag] move  [space] pause  [r] reheat  [t] theme  [q] quit"),
	)
}

// Run starts the terminal program and blocks until it exits. changes may
// be nil.
func Run(cfg *config.Config, p graph.Payload, theme string, changes <-chan graph.Payload, logger *log.Logger) error {
	s := NewSurface(80, 22, cfg.Width, cfg.Height)

	opts := topology.OptionsFromConfig(cfg)
	opts.Surface = s
	opts.Logger = logger
	top, err := topology.New(opts)
	if err != nil {
		return err
	}
	top.Init(p, topology.Hooks{})

	m := NewModel(top, s, cfg.FPS).WithTheme(theme).Watch(changes)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = prog.Run()
	return err
}
