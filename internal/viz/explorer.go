package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lmarques/relmet/internal/frame"
	"github.com/lmarques/relmet/internal/metric"
	"github.com/lmarques/relmet/internal/units"
)

const historyCapacity = 200

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(52)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Explorer is an interactive dilation browser: pick a body, move the
// observer in and out, speed it up, and watch the factors respond.
type Explorer struct {
	bodies     []string
	selected   int
	rFactor    float64 // observer radius in Rs units
	velFrac    float64 // observer speed as fraction of c
	tauHistory []float64
	lastErr    error
	showHelp   bool
}

// NewExplorer starts at 10 Rs around the first catalog body, at rest.
func NewExplorer() Explorer {
	return Explorer{
		bodies:  frame.Names(),
		rFactor: 10,
	}
}

func (e Explorer) Init() tea.Cmd {
	return nil
}

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return e, tea.Quit
	case "tab":
		e.selected = (e.selected + 1) % len(e.bodies)
		e.tauHistory = e.tauHistory[:0]
	case "up", "k":
		e.rFactor *= 1.05
	case "down", "j":
		// Never step onto the horizon itself.
		if e.rFactor/1.05 > 1.0001 {
			e.rFactor /= 1.05
		}
	case "right", "l":
		if e.velFrac < 0.99 {
			e.velFrac += 0.01
		}
	case "left", "h":
		if e.velFrac > 0 {
			e.velFrac -= 0.01
			if e.velFrac < 1e-9 {
				e.velFrac = 0
			}
		}
	case "r":
		e.rFactor = 10
		e.velFrac = 0
		e.tauHistory = e.tauHistory[:0]
	case "?":
		e.showHelp = !e.showHelp
	}

	e.observe()
	return e, nil
}

// observe recomputes the dilation at the current settings and appends it to
// the history strip.
func (e *Explorer) observe() {
	body, _ := frame.Lookup(e.bodies[e.selected])
	rs, err := body.Rs()
	if err != nil {
		e.lastErr = err
		return
	}

	res, err := frame.Dilation(body, frame.Observer{R: e.rFactor * rs, V: e.velFrac * units.C})
	if err != nil {
		e.lastErr = err
		return
	}

	e.lastErr = nil
	e.tauHistory = append(e.tauHistory, res.Tau)
	if len(e.tauHistory) > historyCapacity {
		e.tauHistory = e.tauHistory[1:]
	}
}

func (e Explorer) View() string {
	body, _ := frame.Lookup(e.bodies[e.selected])
	rs, _ := body.Rs()

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(body.Name)) + "\n")
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.3e kg", body.Mass)) + "\n")
	s.WriteString(labelStyle.Render("Rs") + valueStyle.Render(fmt.Sprintf("%.4e m", rs)) + "\n")
	s.WriteString(labelStyle.Render("Observer r") + valueStyle.Render(fmt.Sprintf("%.3f Rs", e.rFactor)) + "\n")
	s.WriteString(labelStyle.Render("Observer v") + valueStyle.Render(fmt.Sprintf("%.2f c", e.velFrac)) + "\n\n")

	res, err := frame.Dilation(body, frame.Observer{R: e.rFactor * rs, V: e.velFrac * units.C})
	if err != nil {
		s.WriteString(errNoteStyle.Render(fmt.Sprintf("out of domain: %v", err)) + "\n")
	} else {
		s.WriteString(labelStyle.Render("tau (grav)") + valueStyle.Render(fmt.Sprintf("%.6f", res.TauGrav)) + "\n")
		s.WriteString(labelStyle.Render("tau (kin)") + valueStyle.Render(fmt.Sprintf("%.6f", res.TauKin)) + "\n")
		s.WriteString(labelStyle.Render("tau") + valueStyle.Render(fmt.Sprintf("%.6f", res.Tau)) + "\n")

		vApp, _ := metric.ApparentVelocity(e.velFrac*units.C, res.Tau)
		line := fmt.Sprintf("%.4e m/s", vApp)
		if vApp > units.C {
			line += warnStyle.Render("  > c (coordinate projection)")
		}
		s.WriteString(labelStyle.Render("apparent v") + valueStyle.Render(line) + "\n")
	}

	if len(e.tauHistory) > 1 {
		chart := asciigraph.Plot(e.tauHistory, asciigraph.Height(5), asciigraph.Width(40), asciigraph.Caption("tau"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nTab:Body ↑↓:Radius ←→:Speed R:Reset Q:Quit ?:Help"))

	view := panelStyle.Render(s.String())
	if e.showHelp {
		return helpText + "\n" + view
	}
	return view
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Tab      - Cycle catalog bodies     ║
║  Up/K     - Move outward (+5%)       ║
║  Down/J   - Move inward (-5%)        ║
║  Right/L  - Speed up (+0.01c)        ║
║  Left/H   - Slow down (-0.01c)       ║
║  R        - Reset observer           ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// RunExplorer launches the interactive explorer.
func RunExplorer() error {
	p := tea.NewProgram(NewExplorer())
	_, err := p.Run()
	return err
}
