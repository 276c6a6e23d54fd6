// trajcalc is an interactive projectile-motion calculator: required
// horizontal velocity, possible launch angles, and a launch-angle comparison
// chart across celestial bodies.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	kitlog "github.com/go-kit/kit/log"

	"github.com/zuzamalak/rescue-projectile"
)

const (
	chartPNG = "angles.png"
	chartCSV = "angles.csv"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type mode int

const (
	modeVelocity mode = iota
	modeAngles
	modeChart
)

var menu = []struct {
	mode  mode
	title string
	desc  string
}{
	{modeVelocity, "horizontal velocity", "speed to cover d from height h"},
	{modeAngles, "launch angles", "angles reaching d at speed v0"},
	{modeChart, "celestial chart", "angle per body, PNG + CSV"},
}

// field is one numeric prompt. requirePositive fields reject zero.
type field struct {
	label           string
	value           float64
	requirePositive bool
}

func fieldsFor(m mode) []field {
	switch m {
	case modeVelocity:
		return []field{
			{label: "distance d [m]"},
			{label: "height h [m]", requirePositive: true},
		}
	default:
		return []field{
			{label: "initial speed v0 [m/s]", requirePositive: true},
			{label: "distance d [m]"},
			{label: "height h [m]"},
		}
	}
}

type state int

const (
	stateMenu state = iota
	statePrompt
	stateResult
)

type model struct {
	state    state
	cursor   int
	mode     mode
	fields   []field
	fieldIdx int
	editBuf  string
	inputErr string
	result   string
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(key)
	case statePrompt:
		return m.promptKey(key)
	case stateResult:
		// Any key returns to the menu.
		m.state = stateMenu
		m.result = ""
		return m, nil
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "0", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menu)-1 {
			m.cursor++
		}
	case "1", "2", "3":
		m.cursor = int(msg.String()[0] - '1')
		return m.enterPrompt()
	case "enter", " ":
		return m.enterPrompt()
	}
	return m, nil
}

func (m model) enterPrompt() (tea.Model, tea.Cmd) {
	m.mode = menu[m.cursor].mode
	m.fields = fieldsFor(m.mode)
	m.fieldIdx = 0
	m.editBuf = ""
	m.inputErr = ""
	m.state = statePrompt
	return m, nil
}

func (m model) promptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		return m, nil
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
		return m, nil
	case "enter":
		return m.acceptField()
	}
	if s := msg.String(); len(s) == 1 {
		c := s[0]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == '+' {
			m.editBuf += s
		}
	}
	return m, nil
}

// acceptField validates the edit buffer against the current field. Bad input
// keeps the prompt up with an error line instead of failing.
func (m model) acceptField() (tea.Model, tea.Cmd) {
	f := &m.fields[m.fieldIdx]
	val, err := strconv.ParseFloat(strings.TrimSpace(m.editBuf), 64)
	switch {
	case err != nil:
		m.inputErr = "please enter a number"
	case f.requirePositive && val <= 0:
		m.inputErr = "value must be positive (> 0)"
	case val < 0:
		m.inputErr = "value must not be negative"
	default:
		f.value = val
		m.editBuf = ""
		m.inputErr = ""
		m.fieldIdx++
		if m.fieldIdx == len(m.fields) {
			m.result = m.compute()
			m.state = stateResult
		}
	}
	return m, nil
}

func (m model) compute() string {
	switch m.mode {
	case modeVelocity:
		d, h := m.fields[0].value, m.fields[1].value
		v, err := projectile.HorizontalVelocity(d, h, projectile.Earth.G)
		if err != nil {
			return red.Render(err.Error())
		}
		return green.Render(fmt.Sprintf("Required horizontal velocity: %.2f m/s", v))
	case modeAngles:
		v0, d, h := m.fields[0].value, m.fields[1].value, m.fields[2].value
		angles, err := projectile.LaunchAngles(v0, d, h, projectile.Earth.G)
		if err != nil {
			return red.Render(err.Error())
		}
		if len(angles) == 0 {
			return yellow.Render("No solution — unreachable with the given data.")
		}
		var b strings.Builder
		b.WriteString(green.Render("Possible launch angles:") + "\n")
		for _, a := range angles {
			b.WriteString(fmt.Sprintf("    %.2f°\n", a))
		}
		return b.String()
	case modeChart:
		return m.computeChart()
	}
	return ""
}

// computeChart lists the per-body angles and, independently, writes the PNG
// and CSV artifacts. A rendering or export failure is reported without
// discarding the numbers.
func (m model) computeChart() string {
	v0, d, h := m.fields[0].value, m.fields[1].value, m.fields[2].value
	var logBuf bytes.Buffer
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(&logBuf))
	chart, err := projectile.CollectAngles(v0, d, h, projectile.Bodies(), logger)
	if err != nil {
		return red.Render(err.Error())
	}
	var b strings.Builder
	b.WriteString(green.Render("Launch angle per body:") + "\n")
	for _, res := range chart.Results {
		if res.OK {
			b.WriteString(fmt.Sprintf("    %-10s %6.2f°\n", res.Body.Name, res.Angle))
		} else {
			b.WriteString(fmt.Sprintf("    %-10s %s\n", res.Body.Name, dim.Render("no valid angle")))
		}
	}
	if err := chart.Render(projectile.PNGRenderer{Path: chartPNG}); err != nil {
		b.WriteString(red.Render("chart rendering failed: "+err.Error()) + "\n")
	} else {
		b.WriteString(dim.Render("chart written to "+chartPNG) + "\n")
	}
	if err := writeCSV(chart, chartCSV); err != nil {
		b.WriteString(red.Render("csv export failed: "+err.Error()) + "\n")
	} else {
		b.WriteString(dim.Render("data written to "+chartCSV) + "\n")
	}
	if logBuf.Len() > 0 {
		b.WriteString(dim.Render(strings.TrimRight(logBuf.String(), "\n")) + "\n")
	}
	return b.String()
}

func writeCSV(chart *projectile.AngleChart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case statePrompt:
		return m.viewPrompt()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n  " + cyan.Render("=== Rescue projectile calculator ===") + "\n\n")
	for i, entry := range menu {
		line := fmt.Sprintf("%d) %-20s", i+1, entry.title)
		if i == m.cursor {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(line) + dim.Render(entry.desc) + "\n")
		} else {
			b.WriteString("    " + dim.Render(line+entry.desc) + "\n")
		}
	}
	b.WriteString("    " + dim.Render("0) exit") + "\n")
	b.WriteString("\n  " + dim.Render("↑↓ select   enter run   0/q quit") + "\n")
	return b.String()
}

func (m model) viewPrompt() string {
	var b strings.Builder
	b.WriteString("\n  " + cyan.Render(menu[m.cursor].title) + "\n\n")
	for i, f := range m.fields {
		switch {
		case i < m.fieldIdx:
			b.WriteString("    " + dim.Render(fmt.Sprintf("%-24s %g", f.label, f.value)) + "\n")
		case i == m.fieldIdx:
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-24s", f.label)) + yellow.Render(m.editBuf+"▋") + "\n")
		default:
			b.WriteString("    " + dim.Render(f.label) + "\n")
		}
	}
	if m.inputErr != "" {
		b.WriteString("\n  " + red.Render(m.inputErr) + "\n")
	}
	b.WriteString("\n  " + dim.Render("enter accept   esc back") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	b.WriteString("\n  " + cyan.Render(menu[m.cursor].title) + "\n\n")
	for _, line := range strings.Split(strings.TrimRight(m.result, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n  " + dim.Render("any key to return to the menu") + "\n")
	return b.String()
}

func main() {
	if _, err := tea.NewProgram(model{}).Run(); err != nil {
		logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
		logger.Log("err", err)
		os.Exit(1)
	}
}
