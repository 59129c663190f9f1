// Package widgets renders the front-panel pieces the TUI composes: LED
// rows for the output pins, switches for the control pins, key help.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BitLED describes one output pin on the panel.
type BitLED struct {
	Label string
	Lit   bool
}

// RenderLEDRow draws a row of labeled LEDs, most significant bit first.
// onGlyph/offGlyph and the colors come from the theme so the panel
// follows the palette.
func RenderLEDRow(bits []BitLED, on, off rune, lit, dark lipgloss.Color) string {
	onStyle := lipgloss.NewStyle().Foreground(lit)
	offStyle := lipgloss.NewStyle().Foreground(dark)

	var leds, labels strings.Builder
	for i, b := range bits {
		if i > 0 {
			leds.WriteString("   ")
			labels.WriteString(" ")
		}
		if b.Lit {
			leds.WriteString(onStyle.Render(string(on)))
		} else {
			leds.WriteString(offStyle.Render(string(off)))
		}
		labels.WriteString(fmt.Sprintf("%-3s", b.Label))
	}
	return leds.String() + "\n" + offStyle.Render(labels.String())
}

// RenderSwitch draws a single labeled toggle switch.
func RenderSwitch(label string, thrown bool, on, off rune, accent, dark lipgloss.Color) string {
	glyph := string(off)
	style := lipgloss.NewStyle().Foreground(dark)
	if thrown {
		glyph = string(on)
		style = lipgloss.NewStyle().Foreground(accent)
	}
	return style.Render(glyph) + " " + label
}

// RenderNoteStrip draws the sixteen table positions with the playhead.
func RenderNoteStrip(current int, playing bool, cur, other rune, accent, dark lipgloss.Color) string {
	curStyle := lipgloss.NewStyle().Foreground(accent)
	dimStyle := lipgloss.NewStyle().Foreground(dark)

	var out strings.Builder
	for i := 0; i < 16; i++ {
		if i > 0 {
			out.WriteString(" ")
		}
		if playing && i == current {
			out.WriteString(curStyle.Render(string(cur)))
		} else {
			out.WriteString(dimStyle.Render(string(other)))
		}
	}
	return out.String()
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
