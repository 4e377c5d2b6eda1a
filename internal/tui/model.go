// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/wavelod/engine"
)

const (
	panFraction = 0.1
	zoomFactor  = 2.0

	scaleStep = 0.1
	scaleMin  = 0.1
	scaleMax  = 2.0

	defaultWidth  = 80
	defaultHeight = 24
)

// ViewportRequester accepts new visible ranges. engine.Dispatcher is the
// usual implementation.
type ViewportRequester interface {
	RequestViewport(xMin, xMax float64)
}

// RedrawMsg tells the model a new snapshot is ready.
type RedrawMsg struct{}

// Notify returns a Plot callback that wakes program without blocking the
// caller.
func Notify(program *tea.Program) func() {
	return func() {
		go program.Send(RedrawMsg{})
	}
}

// Model is the bubbletea front end: it turns keys into viewport and scale
// changes and draws the engine's plot.
type Model struct {
	engine   *engine.Engine
	requests ViewportRequester
	plot     *Plot
	title    string
	styles   Styles
	help     help.Model

	width  int
	height int
	err    error
}

func NewModel(e *engine.Engine, requests ViewportRequester, plot *Plot, title string, styles Styles) Model {
	return Model{
		engine:   e,
		requests: requests,
		plot:     plot,
		title:    title,
		styles:   styles,
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case RedrawMsg:
		// View reads the new snapshot.
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.PanLeft):
		m.pan(-panFraction)
	case key.Matches(msg, keys.PanRight):
		m.pan(panFraction)
	case key.Matches(msg, keys.ZoomIn):
		m.zoom(zoomFactor)
	case key.Matches(msg, keys.ZoomOut):
		m.zoom(1 / zoomFactor)
	case key.Matches(msg, keys.Reset):
		if d := m.engine.Duration(); d > 0 {
			m.requests.RequestViewport(0, d)
		}
	case key.Matches(msg, keys.ScaleDown):
		m.stepScale(-scaleStep)
	case key.Matches(msg, keys.ScaleUp):
		m.stepScale(scaleStep)
	}

	return m, nil
}

func (m *Model) pan(fraction float64) {
	if m.engine.Duration() == 0 {
		return
	}

	view := m.engine.View()
	m.requests.RequestViewport(view.Pan(fraction))
}

func (m *Model) zoom(factor float64) {
	d := m.engine.Duration()
	if d == 0 {
		return
	}

	view := m.engine.View()
	xMin, xMax := view.Zoom(factor)
	m.requests.RequestViewport(math.Max(xMin, 0), math.Min(xMax, d))
}

// stepScale moves the amplitude dial by delta, rounded to one decimal and
// kept in [scaleMin, scaleMax].
func (m *Model) stepScale(delta float64) {
	next := math.Round((m.engine.Scale()+delta)*10) / 10
	next = math.Min(math.Max(next, scaleMin), scaleMax)

	if err := m.engine.SetScaleFactor(next); err != nil {
		m.err = err
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("  ")
	b.WriteString(m.styles.Status.Render(m.status()))
	b.WriteByte('\n')

	plotHeight := m.height - 2
	if m.err != nil {
		plotHeight--
	}
	b.WriteString(m.plot.Render(m.width, plotHeight))
	b.WriteByte('\n')

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
		b.WriteByte('\n')
	}

	b.WriteString(m.help.View(keys))

	return b.String()
}

func (m Model) status() string {
	if m.engine.Phase() != engine.PhaseDisplaying {
		return "no audio"
	}

	tMin, tMax := m.engine.Viewport()

	return fmt.Sprintf("%.3f-%.3fs  points %d  stride %d  scale %.1f",
		tMin, tMax,
		m.engine.CurrentDisplay().Len(),
		m.engine.Stride(),
		m.engine.Scale())
}
