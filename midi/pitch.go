package midi

import "math"

// NoteNumber converts a frequency in Hz to the nearest MIDI note number,
// clamped to 0-127. A4 (440 Hz) maps to 69.
func NoteNumber(freq float64) uint8 {
	if freq <= 0 {
		return 0
	}
	n := int(math.Round(69 + 12*math.Log2(freq/440)))
	if n < 0 {
		n = 0
	}
	if n > 127 {
		n = 127
	}
	return uint8(n)
}
