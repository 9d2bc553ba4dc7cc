package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rocketsim/internal/flight"
	"github.com/san-kum/rocketsim/internal/spatial"
)

const historyCapacity = 400

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// liveModel steps a flight loop in real time and renders altitude, speed and
// attitude as the vehicle flies.
type liveModel struct {
	loop    *flight.Loop
	dt      float64
	speed   int // sim steps per frame
	paused  bool
	done    bool
	err     error
	st      flight.State
	history []float64
	width   int
}

// RunLive drives the flight loop under a bubbletea program until the vehicle
// lands, the flight errors, or the user quits.
func RunLive(loop *flight.Loop, dt float64) error {
	m := &liveModel{
		loop:    loop,
		dt:      dt,
		speed:   1,
		history: make([]float64, 0, historyCapacity),
		width:   80,
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m *liveModel) Init() tea.Cmd { return tick() }

func (m *liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "+", "=":
			if m.speed < 64 {
				m.speed *= 2
			}
		case "-":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		if m.paused || m.done {
			return m, tick()
		}
		for i := 0; i < m.speed; i++ {
			st, err := m.loop.StepOnce(m.dt)
			if err != nil {
				m.err = err
				m.done = true
				break
			}
			m.st = st
			if st.Pos.Z < 0 && st.Vel.Z < 0 {
				m.done = true
				break
			}
		}
		m.history = append(m.history, m.st.Pos.Z)
		if len(m.history) > historyCapacity {
			m.history = m.history[len(m.history)-historyCapacity:]
		}
		return m, tick()
	}
	return m, nil
}

func (m *liveModel) View() string {
	var b strings.Builder

	b.WriteString(Header.Render("rocketsim live") + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(10),
			asciigraph.Width(min(m.width-10, 80)),
			asciigraph.Caption("altitude [m]"),
		)
		b.WriteString(chart + "\n\n")
	}

	up := m.st.Att.Rotate(spatial.NewVec3(0, 0, 1))
	tilt := math.Acos(math.Max(-1, math.Min(1, up.Z))) * 180 / math.Pi

	row := func(label, value string) {
		b.WriteString(Label.Render(fmt.Sprintf("%-10s", label)) + Value.Render(value) + "\n")
	}
	row("time", fmt.Sprintf("%7.2f s", m.st.T))
	row("altitude", fmt.Sprintf("%7.2f m", m.st.Pos.Z))
	row("speed", fmt.Sprintf("%7.2f m/s", m.st.Vel.Norm()))
	row("tilt", fmt.Sprintf("%7.2f deg", tilt))
	row("mass", fmt.Sprintf("%7.3f kg", m.st.Mass))

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(magenta.Render(fmt.Sprintf("flight aborted: %v", m.err)) + "\n")
	case m.done:
		b.WriteString(green.Render("touchdown") + "\n")
	case m.paused:
		b.WriteString(yellow.Render("paused") + "\n")
	default:
		b.WriteString(cyan.Render(fmt.Sprintf("flying  ×%d", m.speed)) + "\n")
	}
	b.WriteString(dim.Render("space pause · +/- speed · q quit") + "\n")

	return b.String()
}
