package chip

// Control input bit assignments. Everything above the loop bit is reserved
// and ignored by the decoder.
const (
	ctrlEnableBit = 1 << 0
	ctrlLoopBit   = 1 << 1
)

// Control is the decoded control word. It is resampled on every clock
// edge and never stored between edges.
type Control struct {
	Enable bool
	Loop   bool
}

// DecodeControl extracts the enable and loop flags from a raw control
// word. Pure combinational: no state, no failure modes.
func DecodeControl(raw uint8) Control {
	return Control{
		Enable: raw&ctrlEnableBit != 0,
		Loop:   raw&ctrlLoopBit != 0,
	}
}

// EncodeControl builds a raw control word from the two flags. The inverse
// of DecodeControl, used by hosts driving the chip's input pins.
func EncodeControl(enable, loop bool) uint8 {
	var raw uint8
	if enable {
		raw |= ctrlEnableBit
	}
	if loop {
		raw |= ctrlLoopBit
	}
	return raw
}
