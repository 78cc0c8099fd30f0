// Package ui provides the terminal light-curve viewer using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-comaflux/internal/report"
	"github.com/litescript/ls-comaflux/internal/version"
)

// Styles for the light-curve view.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// sparkBlocks are the Unicode block characters for the flux sparkline
// (0 = lowest, 7 = highest).
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline color ramp endpoints (faint red to bright yellow).
var (
	fluxColorLow  = [3]uint8{0x5b, 0x1b, 0x1b}
	fluxColorHigh = [3]uint8{0xff, 0xe9, 0x8b}
)

// Model is the Bubble Tea model for a computed run. The run is immutable;
// the view only navigates it.
type Model struct {
	run     *report.Run
	width   int
	height  int
	cursor  int
	waveIdx int
	scrollY int
}

// New creates a light-curve model over a computed run.
func New(run *report.Run) Model {
	return Model{run: run}
}

// Init implements the Bubble Tea model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.run.Epochs)-1 {
				m.cursor++
			}
		case "left", "[":
			if m.waveIdx > 0 {
				m.waveIdx--
			}
		case "right", "]":
			if m.waveIdx < len(m.run.Waves)-1 {
				m.waveIdx++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.run.Epochs) - 1
		}
	}
	m = m.clampScroll()
	return m, nil
}

// clampScroll keeps the cursor inside the visible table window.
func (m Model) clampScroll() Model {
	visible := m.tableRows()
	if visible <= 0 {
		return m
	}
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	}
	if m.cursor >= m.scrollY+visible {
		m.scrollY = m.cursor - visible + 1
	}
	return m
}

// tableRows returns how many epoch rows fit below the fixed chrome.
func (m Model) tableRows() int {
	// Title, params, sparkline block (3 lines), table header, footer.
	const chrome = 8
	rows := m.height - chrome
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the light curve and epoch table.
func (m Model) View() string {
	if m.run == nil || len(m.run.Epochs) == 0 {
		return dimStyle.Render("No epochs to display (elongation filter may have dropped all rows)")
	}

	var b strings.Builder

	wave := m.run.Waves[m.waveIdx]
	b.WriteString(titleStyle.Render(fmt.Sprintf("ls-comaflux %s  %s", version.Version, m.run.Target)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"wave %g um (%d/%d, [/] to switch)  tscale=%g ef2af=%g rap=%g\" afrho=%g slope=%g",
		wave, m.waveIdx+1, len(m.run.Waves),
		m.run.Params.Tscale, m.run.Params.Ef2af, m.run.Params.Rap,
		m.run.Params.Afrho1, m.run.Params.Slope)))
	b.WriteString("\n\n")

	b.WriteString(m.renderSparkline())
	b.WriteString("\n\n")

	b.WriteString(m.renderTable())

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ move  [/] wavelength  g/G first/last  q quit"))
	return b.String()
}

// sparkWidth returns the sparkline width for the current terminal.
func (m Model) sparkWidth() int {
	w := m.width - 2
	if w < 10 {
		w = 48
	}
	if w > 120 {
		w = 120
	}
	return w
}

// renderSparkline draws flux vs. epoch for the selected wavelength on a log
// scale, colored by relative brightness, with a marker line underneath for
// the cursor position.
func (m Model) renderSparkline() string {
	width := m.sparkWidth()
	fluxes := make([]float64, len(m.run.Epochs))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, ep := range m.run.Epochs {
		f := ep.Flux[m.waveIdx]
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			f = 0
		}
		fluxes[i] = f
		if f > 0 {
			lo = math.Min(lo, f)
			hi = math.Max(hi, f)
		}
	}
	if math.IsInf(lo, 1) {
		return dimStyle.Render("No finite flux values")
	}

	samples := resample(fluxes, width)

	var sb strings.Builder
	for _, f := range samples {
		t := 0.0
		if f > 0 && hi > lo {
			t = (math.Log10(f) - math.Log10(lo)) / (math.Log10(hi) - math.Log10(lo))
		} else if f > 0 {
			t = 1
		}
		idx := int(t * 7.0)
		if idx > 7 {
			idx = 7
		}
		r, g, bl := lerpColor(fluxColorLow, fluxColorHigh, t)
		color := fmt.Sprintf("#%02x%02x%02x", r, g, bl)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(sparkBlocks[idx])))
	}

	cur := m.run.Epochs[m.cursor]
	sb.WriteString("\n")
	marker := 0
	if len(m.run.Epochs) > 1 {
		marker = m.cursor * (width - 1) / (len(m.run.Epochs) - 1)
	}
	sb.WriteString(strings.Repeat(" ", marker))
	sb.WriteString(headerStyle.Render("^"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf(" %s  flux %.4e", cur.Date, cur.Flux[m.waveIdx])))
	return sb.String()
}

// renderTable draws the scrollable epoch table with the cursor row
// highlighted.
func (m Model) renderTable() string {
	var b strings.Builder

	header := fmt.Sprintf("%-17s %8s %8s %7s %7s %10s %12s",
		"date (UT)", "rh", "delta", "phase", "elong", "afrho", "flux")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	visible := m.tableRows()
	end := m.scrollY + visible
	if end > len(m.run.Epochs) {
		end = len(m.run.Epochs)
	}
	for i := m.scrollY; i < end; i++ {
		ep := m.run.Epochs[i]
		line := fmt.Sprintf("%-17s %8.4f %8.4f %7.2f %7.2f %10.2f %12.4e",
			ep.Date, ep.RH, ep.Delta, ep.Phase, ep.Elong,
			ep.Afrho[m.waveIdx], ep.Flux[m.waveIdx])
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// resample reduces or stretches a series to the given width by nearest
// sampling.
func resample(vals []float64, width int) []float64 {
	if len(vals) == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		j := i * (len(vals) - 1) / max(width-1, 1)
		out[i] = vals[j]
	}
	return out
}

// lerpColor linearly interpolates between two RGB colors.
func lerpColor(a, b [3]uint8, t float64) (uint8, uint8, uint8) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return lerp(a[0], b[0]), lerp(a[1], b[1]), lerp(a[2], b[2])
}

// Show runs the viewer until the user quits.
func Show(run *report.Run) error {
	p := tea.NewProgram(New(run), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
