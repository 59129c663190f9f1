package midi

import (
	"bytes"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-melody/chip"
)

// fakeOut returns an Out whose sender records messages instead of
// touching a real port.
func fakeOut(t *testing.T) (*Out, *[]gomidi.Message) {
	t.Helper()
	msgs := &[]gomidi.Message{}
	o := NewOut("test", 0)
	o.send = func(m gomidi.Message) error {
		*msgs = append(*msgs, m)
		return nil
	}
	return o, msgs
}

func wantMessage(t *testing.T, got, want gomidi.Message, what string) {
	t.Helper()
	if !bytes.Equal([]byte(got), []byte(want)) {
		t.Errorf("%s: expected % X, got % X", what, []byte(want), []byte(got))
	}
}

// TestOutNoteOn checks a note boundary becomes a single note on.
func TestOutNoteOn(t *testing.T) {
	o, msgs := fakeOut(t)

	o.Handle(chip.Event{Type: chip.NoteOn, Index: 0, Freq: 330})

	if len(*msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(*msgs))
	}
	wantMessage(t, (*msgs)[0], gomidi.NoteOn(0, 64, velocity), "note on")
}

// TestOutMonophonic checks a second boundary releases the previous note
// before sounding the new one.
func TestOutMonophonic(t *testing.T) {
	o, msgs := fakeOut(t)

	o.Handle(chip.Event{Type: chip.NoteOn, Index: 0, Freq: 330})
	o.Handle(chip.Event{Type: chip.NoteOn, Index: 1, Freq: 392})

	if len(*msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(*msgs))
	}
	wantMessage(t, (*msgs)[1], gomidi.NoteOff(0, 64), "release of previous note")
	wantMessage(t, (*msgs)[2], gomidi.NoteOn(0, 67, velocity), "new note on")
}

// TestOutNoteOff checks quiet events release the sounding note exactly
// once.
func TestOutNoteOff(t *testing.T) {
	o, msgs := fakeOut(t)

	o.Handle(chip.Event{Type: chip.NoteOn, Index: 0, Freq: 330})
	o.Handle(chip.Event{Type: chip.NoteOff})
	o.Handle(chip.Event{Type: chip.NoteOff}) // second off is a no-op

	if len(*msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(*msgs))
	}
	wantMessage(t, (*msgs)[1], gomidi.NoteOff(0, 64), "note off")
}

// TestOutSilenceWithoutNote checks Silence on a quiet output sends
// nothing.
func TestOutSilenceWithoutNote(t *testing.T) {
	o, msgs := fakeOut(t)
	o.Silence()
	if len(*msgs) != 0 {
		t.Errorf("expected no messages, got %d", len(*msgs))
	}
}
