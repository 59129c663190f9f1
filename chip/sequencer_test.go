package chip

import "testing"

// run ticks the sequencer n times with a fixed control word.
func run(s *Sequencer, ctl Control, n int) {
	for i := 0; i < n; i++ {
		s.Tick(ctl)
	}
}

// TestSequencerStartsAtNoteZero checks the idle-to-playing edge loads the
// first table entry.
func TestSequencerStartsAtNoteZero(t *testing.T) {
	s := NewSequencer()
	s.Tick(Control{Enable: true})

	if s.State() != StatePlaying {
		t.Fatalf("expected %v after enable, got %v", StatePlaying, s.State())
	}
	if s.NoteIndex() != 0 {
		t.Errorf("playback should start at note 0, got %d", s.NoteIndex())
	}
}

// TestSequencerNoteBoundary checks the index advances on exactly the edge
// that retires a note's last cycle.
func TestSequencerNoteBoundary(t *testing.T) {
	s := NewSequencer()
	ctl := Control{Enable: true}

	first := int(NoteAt(0).Cycles)
	run(s, ctl, 1+first-1) // entering edge plus all but the last cycle
	if s.NoteIndex() != 0 {
		t.Fatalf("one cycle early: expected index 0, got %d", s.NoteIndex())
	}
	s.Tick(ctl)
	if s.NoteIndex() != 1 {
		t.Errorf("retiring edge: expected index 1, got %d", s.NoteIndex())
	}
}

// TestSequencerDisableMidNote checks enable low resets state and index on
// a single edge.
func TestSequencerDisableMidNote(t *testing.T) {
	s := NewSequencer()
	run(s, Control{Enable: true}, 900) // somewhere inside note 1

	s.Tick(Control{})
	if s.State() != StateIdle || s.NoteIndex() != 0 {
		t.Errorf("disable edge: expected idle/0, got %v/%d", s.State(), s.NoteIndex())
	}
}

// TestSequencerLoopWrap checks the wrap edge goes straight from the last
// note to note 0 without an idle gap.
func TestSequencerLoopWrap(t *testing.T) {
	s := NewSequencer()
	ctl := Control{Enable: true, Loop: true}

	run(s, ctl, int(TotalCycles()))
	if s.NoteIndex() != NumNotes-1 {
		t.Fatalf("expected last note before wrap, got %d", s.NoteIndex())
	}
	s.Tick(ctl)
	if s.State() != StatePlaying || s.NoteIndex() != 0 {
		t.Errorf("wrap edge: expected playing/0, got %v/%d", s.State(), s.NoteIndex())
	}
}

// TestSequencerLoopDroppedMidRun checks that clearing loop mid-run lets
// the current pass finish and then stop.
func TestSequencerLoopDroppedMidRun(t *testing.T) {
	s := NewSequencer()
	run(s, Control{Enable: true, Loop: true}, 2000)

	// loop cleared, enable still up: finish the pass, then idle
	ctl := Control{Enable: true}
	for i := 0; i < int(TotalCycles()); i++ {
		s.Tick(ctl)
	}
	if s.State() != StateIdle {
		t.Errorf("expected idle after the pass completed, got %v", s.State())
	}
}

// TestSequencerReset is the unit version of the reset line: idle, index
// 0, countdown cleared.
func TestSequencerReset(t *testing.T) {
	s := NewSequencer()
	run(s, Control{Enable: true, Loop: true}, 1234)

	s.Reset()
	if s.State() != StateIdle || s.NoteIndex() != 0 {
		t.Errorf("after Reset: expected idle/0, got %v/%d", s.State(), s.NoteIndex())
	}
	if s.remaining != 0 {
		t.Errorf("after Reset: countdown should be 0, got %d", s.remaining)
	}
}
