// Package chip implements a small clocked melody-player device at pin
// level: a control word in (enable, loop), a status word out (playing
// flag, 4-bit note index), an active-low reset with priority over
// everything, and one clock input. All state transitions happen on clock
// edges; a host advances the device one Tick at a time.
package chip

// Chip ties the pins to the sequencer. SetControl and SetResetN drive the
// input lines; Tick is one rising clock edge; Status reads the output
// pins. The chip has exactly one writer for all of its state, so it needs
// no locking of its own.
type Chip struct {
	seq     Sequencer
	control uint8
	resetN  bool
}

// New returns a powered-up chip: reset deasserted, control word clear,
// sequencer idle.
func New() *Chip {
	c := &Chip{resetN: true}
	c.seq.Reset()
	return c
}

// SetControl drives the control input pins. The value is sampled on every
// clock edge; reserved bits are ignored by the decoder rather than
// rejected.
func (c *Chip) SetControl(raw uint8) {
	c.control = raw
}

// SetResetN drives the active-low reset line. Reset is asynchronous: the
// sequencer clears the moment the line goes low, and every clock edge with
// the line still low forces idle again regardless of the control word.
func (c *Chip) SetResetN(level bool) {
	c.resetN = level
	if !level {
		c.seq.Reset()
	}
}

// Tick advances the chip by one rising clock edge.
func (c *Chip) Tick() {
	if !c.resetN {
		c.seq.Reset()
		return
	}
	c.seq.Tick(DecodeControl(c.control))
}

// Run ticks the chip n times with the current pin levels.
func (c *Chip) Run(n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

// Status returns the output word for the current state.
func (c *Chip) Status() uint8 {
	return EncodeStatus(c.seq.Playing(), c.seq.NoteIndex())
}

// Playing reports the playing flag as it appears on the status pins.
func (c *Chip) Playing() bool {
	return c.seq.Playing()
}

// NoteIndex returns the note table position as it appears on the status
// pins (0 while idle).
func (c *Chip) NoteIndex() int {
	return c.seq.NoteIndex()
}

// CurrentNote returns the table entry at the current index.
func (c *Chip) CurrentNote() Note {
	return NoteAt(c.seq.NoteIndex())
}
