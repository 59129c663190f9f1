package chip

// Status output bit assignments: bit 2 is the playing flag, bits 7:4 carry
// the current note index. Bits 0, 1 and 3 always read 0.
const (
	statusPlayingBit = 1 << 2
	statusIndexShift = 4
	statusIndexMask  = 0x0F
)

// EncodeStatus packs the playing flag and note index into the status word.
// It is a pure projection of sequencer state: nothing is latched, so the
// word can never go stale.
func EncodeStatus(playing bool, index int) uint8 {
	s := uint8(index&statusIndexMask) << statusIndexShift
	if playing {
		s |= statusPlayingBit
	}
	return s
}

// DecodeStatus unpacks a status word into its two fields.
func DecodeStatus(s uint8) (playing bool, index int) {
	return s&statusPlayingBit != 0, int(s>>statusIndexShift) & statusIndexMask
}
