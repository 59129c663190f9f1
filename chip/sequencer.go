package chip

// PlaybackState enumerates the two sequencer states.
type PlaybackState int

const (
	StateIdle PlaybackState = iota
	StatePlaying
)

func (s PlaybackState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	}
	return "unknown"
}

// Sequencer is the playback state machine. It is the single owner of the
// playback state, the note index and the per-note countdown; everything
// else in the package is either a pure input decode or a pure projection
// of this struct.
type Sequencer struct {
	state     PlaybackState
	index     int
	remaining uint32 // cycles left in the current note

	// armed gates the idle-to-playing edge. It is cleared when a
	// non-looping pass completes, so a held enable does not restart the
	// melody; enable low or reset re-arms.
	armed bool
}

// NewSequencer returns a sequencer in the reset state.
func NewSequencer() *Sequencer {
	return &Sequencer{armed: true}
}

// Reset forces StateIdle and pins the note index back to 0, the same
// outcome as holding the reset line low through a clock edge. The start
// edge is re-armed.
func (s *Sequencer) Reset() {
	s.state = StateIdle
	s.index = 0
	s.remaining = 0
	s.armed = true
}

// Tick advances the machine by one clock edge under the given decoded
// control word.
//
// Enable low sends the machine straight to StateIdle on this edge, without
// waiting for the current note to finish. In the other direction the
// playing flag stays high for the whole of the final note of a non-looping
// run: the edge that retires that note's last cycle is the edge that
// enters StateIdle.
func (s *Sequencer) Tick(ctl Control) {
	if !ctl.Enable {
		s.Reset()
		return
	}

	switch s.state {
	case StateIdle:
		if !s.armed {
			return
		}
		s.state = StatePlaying
		s.index = 0
		s.remaining = NoteAt(0).Cycles
	case StatePlaying:
		if s.remaining > 0 {
			s.remaining--
		}
		if s.remaining > 0 {
			return
		}
		if s.index+1 < NumNotes {
			s.index++
			s.remaining = NoteAt(s.index).Cycles
			return
		}
		if ctl.Loop {
			s.index = 0
			s.remaining = NoteAt(0).Cycles
			return
		}
		// Pass complete: stop, and stay stopped until enable drops.
		s.state = StateIdle
		s.index = 0
		s.remaining = 0
		s.armed = false
	}
}

// State returns the current playback state.
func (s *Sequencer) State() PlaybackState {
	return s.state
}

// Playing reports whether the machine is in StatePlaying. The status
// word's playing bit mirrors this exactly.
func (s *Sequencer) Playing() bool {
	return s.state == StatePlaying
}

// NoteIndex returns the current position in the note table. It reads 0
// while idle.
func (s *Sequencer) NoteIndex() int {
	return s.index
}
