// Package tui draws the device front panel: status pins as LEDs, control
// pins as switches, clocked live by the runner.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-melody/chip"
	"go-melody/theme"
	"go-melody/widgets"
)

type Model struct {
	Runner   *chip.Runner
	Theme    *theme.Theme
	quitting bool
}

type UpdateMsg struct{}

func NewModel(runner *chip.Runner, th *theme.Theme) Model {
	return Model{
		Runner: runner,
		Theme:  th,
	}
}

func ListenForUpdates(runner *chip.Runner) tea.Cmd {
	return func() tea.Msg {
		<-runner.UpdateChan
		return UpdateMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForUpdates(m.Runner)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "e", " ":
			snap := m.Runner.Snapshot()
			m.Runner.SetEnable(!snap.Enable)

		case "l":
			snap := m.Runner.Snapshot()
			m.Runner.SetLoop(!snap.Loop)

		case "r":
			m.Runner.PulseReset()
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Runner)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.Runner.Snapshot()
	sym := m.Theme.Symbols

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	fgStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())

	header := headerStyle.Render(fmt.Sprintf("go-melody  %d Hz clock  status:0x%02X", snap.ClockHz, snap.Status))

	// Status pins, bit 7 down to bit 0
	bits := make([]widgets.BitLED, 8)
	labels := [8]string{"i3", "i2", "i1", "i0", "-", "ply", "-", "-"}
	for b := 0; b < 8; b++ {
		bits[7-b] = widgets.BitLED{
			Label: labels[7-b],
			Lit:   snap.Status&(1<<b) != 0,
		}
	}
	ledRow := widgets.RenderLEDRow(bits, sym.LEDOn, sym.LEDOff, m.Theme.LED(), m.Theme.Muted())

	// Playback readout
	state := "idle"
	readout := ""
	if snap.Playing {
		state = "playing"
		readout = fmt.Sprintf("  note %X  %d Hz", snap.Index, snap.Freq)
	}
	noteStrip := widgets.RenderNoteStrip(snap.Index, snap.Playing,
		sym.NoteCur, sym.NoteIdx, m.Theme.Accent(), m.Theme.Muted())

	// Control switches
	switches := widgets.RenderSwitch("enable", snap.Enable, sym.SwOn, sym.SwOff, m.Theme.Accent(), m.Theme.Muted()) +
		"   " +
		widgets.RenderSwitch("loop", snap.Loop, sym.SwOn, sym.SwOff, m.Theme.Accent(), m.Theme.Muted())

	help := dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "e/space", Desc: "toggle enable"},
			{Key: "l", Desc: "toggle loop"},
			{Key: "r", Desc: "pulse reset"},
			{Key: "q", Desc: "quit"},
		}},
	}))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(ledRow)
	out.WriteString("\n\n")
	out.WriteString(fgStyle.Render(state + readout))
	out.WriteString("\n")
	out.WriteString(noteStrip)
	out.WriteString("\n\n")
	out.WriteString(switches)
	out.WriteString("\n\n")
	out.WriteString(help)

	return out.String()
}
