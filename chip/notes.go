package chip

// Note is one entry of the fixed playback table: an opaque tone parameter
// (the carrier frequency in Hz) and how many clock cycles the note holds
// before the sequencer advances past it.
type Note struct {
	Freq   uint32
	Cycles uint32
}

// NumNotes is the table length. NoteIndex is always in [0, NumNotes).
const NumNotes = 16

// RefClockHz is the clock rate of the reference verification protocol.
// The note durations below were chosen against it: every note retires
// within 1000 cycles, so an observer polling the status word at that
// cadence always sees the index move.
const RefClockHz = 100_000

// noteTable is the melody burned into the device: the opening phrase of
// Ode to Joy, sixteen steps. Immutable after init; lookups are total.
var noteTable = [NumNotes]Note{
	{Freq: 330, Cycles: 600}, // E4
	{Freq: 330, Cycles: 600}, // E4
	{Freq: 349, Cycles: 600}, // F4
	{Freq: 392, Cycles: 600}, // G4
	{Freq: 392, Cycles: 600}, // G4
	{Freq: 349, Cycles: 600}, // F4
	{Freq: 330, Cycles: 600}, // E4
	{Freq: 294, Cycles: 600}, // D4
	{Freq: 262, Cycles: 600}, // C4
	{Freq: 262, Cycles: 600}, // C4
	{Freq: 294, Cycles: 600}, // D4
	{Freq: 330, Cycles: 600}, // E4
	{Freq: 330, Cycles: 900}, // E4 dotted
	{Freq: 294, Cycles: 300}, // D4 eighth
	{Freq: 294, Cycles: 600}, // D4
	{Freq: 294, Cycles: 600}, // D4 held
}

// NoteAt returns the table entry for idx. The index is folded into the
// 4-bit range rather than faulting, so lookup can never go out of bounds.
func NoteAt(idx int) Note {
	return noteTable[idx&(NumNotes-1)]
}

// TotalCycles returns the length of one full pass through the table in
// clock cycles.
func TotalCycles() uint32 {
	var sum uint32
	for _, n := range noteTable {
		sum += n.Cycles
	}
	return sum
}
