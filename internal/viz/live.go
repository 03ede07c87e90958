package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/statmech/internal/ising"
)

const (
	historyCapacity = 600
	tempStep        = 0.05
	minTemperature  = 0.05
	frameInterval   = time.Second / 30
)

type TickMsg time.Time

// Model runs a Metropolis engine and redraws the lattice every tick.
type Model struct {
	engine         *ising.Engine
	dim            int
	seed           int64
	sweepsPerFrame int
	running        bool
	braille        bool
	showHelp       bool
	theme          Theme
	canvas         *Canvas
	sweeps         int
	accepted       int
	attempted      int
	energyHistory  []float64
	magHistory     []float64
}

// NewModel starts a viewer on a random dim x dim lattice at temperature t.
func NewModel(dim int, t float64, seed int64, sweepsPerFrame int) Model {
	if sweepsPerFrame < 1 {
		sweepsPerFrame = 1
	}
	e := ising.New(dim, seed, 1/t, ising.RandomStart)
	return Model{
		engine:         e,
		dim:            dim,
		seed:           seed,
		sweepsPerFrame: sweepsPerFrame,
		running:        true,
		braille:        dim > 64,
		theme:          ThemeClassic,
		canvas:         CanvasFor(e.Lattice()),
		energyHistory:  make([]float64, 0, historyCapacity),
		magHistory:     make([]float64, 0, historyCapacity),
	}
}

// WithTheme returns a copy of m using theme.
func (m Model) WithTheme(theme Theme) Model {
	m.theme = theme
	return m
}

// Engine is the simulation being displayed.
func (m Model) Engine() *ising.Engine { return m.engine }

// Sweeps counts full lattice sweeps since start or the last reseed.
func (m Model) Sweeps() int { return m.sweeps }

// AcceptanceRate is the fraction of accepted trials since the last reset.
func (m Model) AcceptanceRate() float64 {
	if m.attempted == 0 {
		return 0
	}
	return float64(m.accepted) / float64(m.attempted)
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles key input and advances the engine on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "+", "=", "up", "k":
			m.setTemperature(m.engine.Temperature() + tempStep)
		case "-", "_", "down", "j":
			m.setTemperature(m.engine.Temperature() - tempStep)
		case "r":
			m.reseed()
		case "b":
			m.braille = !m.braille
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) setTemperature(t float64) {
	m.engine.SetTemperature(max(t, minTemperature))
	m.accepted, m.attempted = 0, 0
}

// reseed restarts from a fresh random lattice at the current temperature.
func (m *Model) reseed() {
	m.seed++
	m.engine = ising.New(m.dim, m.seed, m.engine.Beta(), ising.RandomStart)
	m.sweeps, m.accepted, m.attempted = 0, 0, 0
	m.energyHistory = m.energyHistory[:0]
	m.magHistory = m.magHistory[:0]
}

// step runs sweepsPerFrame sweeps and records per-site observables.
func (m *Model) step() {
	n := m.engine.Sites() * m.sweepsPerFrame
	for k := 0; k < n; k++ {
		if m.engine.TryFlip() == ising.Flipped {
			m.accepted++
		}
	}
	m.attempted += n
	m.sweeps += m.sweepsPerFrame

	sites := float64(m.engine.Sites())
	m.energyHistory = appendCapped(m.energyHistory, float64(m.engine.Energy())/sites)
	m.magHistory = appendCapped(m.magHistory, float64(m.engine.Magnetisation())/sites)
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyCapacity {
		s = s[1:]
	}
	return s
}

// View renders the lattice beside the statistics panel.
func (m Model) View() string {
	var lat string
	if m.braille {
		m.canvas.DrawLattice(m.engine.Lattice())
		lat = lipgloss.NewStyle().Foreground(m.theme.Up).Render(m.canvas.String())
	} else {
		lat = RenderBlocks(m.engine.Lattice(), m.theme)
	}
	canvasView := canvasStyle.Render(lat)

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("ISING %dx%d", m.dim, m.dim)) + "\n")
	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}
	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("E per site"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	sites := float64(m.engine.Sites())
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("T", fmt.Sprintf("%.3f", m.engine.Temperature()))
	row("Sweeps", fmt.Sprintf("%d", m.sweeps))
	row("E/N", fmt.Sprintf("%.4f", float64(m.engine.Energy())/sites))
	row("M/N", fmt.Sprintf("%+.4f", float64(m.engine.Magnetisation())/sites))
	row("Accept", fmt.Sprintf("%.3f ", m.AcceptanceRate())+ProgressBar(m.AcceptanceRate(), 10))
	s.WriteString(labelStyle.Render("M history") + SparklineChart(m.magHistory, 28) + "\n")
	row("Theme", m.theme.Name)

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Step Q:Quit\n+/-:Temp R:Reseed B:View\nT:Theme ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N        - Single frame (paused)    ║
║  +/Up     - Raise temperature        ║
║  -/Down   - Lower temperature        ║
║  R        - Reseed lattice           ║
║  B        - Braille / block view     ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the viewer on the alternate screen and blocks until quit.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
