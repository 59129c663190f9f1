package chip

// EventType classifies runner events.
type EventType int

const (
	// NoteOn marks a note boundary: the chip started sounding the table
	// entry at Index, carrier frequency Freq.
	NoteOn EventType = iota
	// NoteOff marks the chip going quiet: disable, reset, or the end of a
	// non-looping run.
	NoteOff
)

// Event is a change at the chip's observable output, produced by the
// runner as it clocks the chip.
type Event struct {
	Type  EventType
	Index int
	Freq  uint32
}

// Sink consumes runner events. Sinks are called from the clock goroutine
// and should return quickly.
type Sink func(Event)
