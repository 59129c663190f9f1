// Package midi sends the chip's note boundaries to an external MIDI
// output port.
package midi

import (
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-melody/chip"
	"go-melody/debug"
)

const velocity = 100

// Out translates runner events into note on/off messages on one port and
// channel. The port is opened lazily on the first event, so startup works
// with nothing attached; a port that appears later is picked up on the
// next note.
type Out struct {
	mu       sync.Mutex
	portName string
	channel  uint8
	send     func(gomidi.Message) error
	lastNote uint8
	sounding bool
}

// NewOut creates an output for the named port. An empty port name
// disables sending entirely.
func NewOut(portName string, channel uint8) *Out {
	return &Out{portName: portName, channel: channel}
}

// Handle is a chip.Sink. A note on for a new table entry releases the
// previous note first, so a monophonic synth never hears overlap.
func (o *Out) Handle(ev chip.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch ev.Type {
	case chip.NoteOn:
		send := o.sender()
		if send == nil {
			return
		}
		note := NoteNumber(float64(ev.Freq))
		if o.sounding {
			send(gomidi.NoteOff(o.channel, o.lastNote))
		}
		send(gomidi.NoteOn(o.channel, note, velocity))
		o.lastNote = note
		o.sounding = true
		debug.Log("midi", "note on %d (%d Hz, entry %d)", note, ev.Freq, ev.Index)
	case chip.NoteOff:
		if !o.sounding {
			return
		}
		if send := o.sender(); send != nil {
			send(gomidi.NoteOff(o.channel, o.lastNote))
		}
		o.sounding = false
		debug.Log("midi", "note off %d", o.lastNote)
	}
}

// Silence releases any sounding note. Call on shutdown so the external
// synth is not left droning.
func (o *Out) Silence() {
	o.Handle(chip.Event{Type: chip.NoteOff})
}

// sender lazily opens the configured port. Caller holds the mutex.
func (o *Out) sender() func(gomidi.Message) error {
	if o.send != nil {
		return o.send
	}
	if o.portName == "" {
		return nil
	}
	for _, port := range gomidi.GetOutPorts() {
		if port.String() == o.portName {
			send, err := gomidi.SendTo(port)
			if err != nil {
				debug.Log("midi", "open %s: %v", o.portName, err)
				return nil
			}
			o.send = send
			return send
		}
	}
	return nil
}

// Ports returns the names of the available MIDI output ports.
func Ports() []string {
	var names []string
	for _, port := range gomidi.GetOutPorts() {
		names = append(names, port.String())
	}
	return names
}
