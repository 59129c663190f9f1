package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

// Symbols are the glyphs the front panel is drawn with.
type Symbols struct {
	LEDOn   rune // ● lit output bit
	LEDOff  rune // ○ dark output bit
	SwOn    rune // ▣ switch thrown
	SwOff   rune // ▢ switch released
	NoteCur rune // ▶ current table entry
	NoteIdx rune // · other table entries
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			LEDOn:   '●',
			LEDOff:  '○',
			SwOn:    '▣',
			SwOff:   '▢',
			NoteCur: '▶',
			NoteIdx: '·',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0 // background
	RoleSurface = 0.1 // panel surface
	RoleMuted   = 0.3 // labels, dark LEDs
	RoleFG      = 0.5 // readable text
	RoleAccent  = 0.7 // headers, switch markers
	RoleLED     = 1.0 // lit LEDs
)

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) LED() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleLED))
}

// RGB returns raw RGB for any normalized value
func (t *Theme) RGB(norm float64) RGB {
	return t.Palette.Lookup(norm)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
