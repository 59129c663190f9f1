package chip

import "testing"

// collect registers a sink that records every event.
func collect(r *Runner) *[]Event {
	events := &[]Event{}
	r.AddSink(func(ev Event) {
		*events = append(*events, ev)
	})
	return events
}

// TestRunnerEmitsNoteOnAtStart checks the first batch after enable emits
// a note on for table entry 0.
func TestRunnerEmitsNoteOnAtStart(t *testing.T) {
	r := NewRunner(New(), 1000)
	events := collect(r)

	r.SetEnable(true)
	r.step(10)

	if len(*events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(*events))
	}
	ev := (*events)[0]
	if ev.Type != NoteOn || ev.Index != 0 || ev.Freq != NoteAt(0).Freq {
		t.Errorf("expected note on for entry 0, got %+v", ev)
	}
}

// TestRunnerEmitsEveryBoundary steps through a full pass in one batch and
// checks one note on per table entry plus a final note off.
func TestRunnerEmitsEveryBoundary(t *testing.T) {
	r := NewRunner(New(), 1000)
	events := collect(r)

	r.SetEnable(true)
	r.step(int(TotalCycles()) + 1)

	want := NumNotes + 1 // 16 note ons, then quiet
	if len(*events) != want {
		t.Fatalf("expected %d events, got %d", want, len(*events))
	}
	for i := 0; i < NumNotes; i++ {
		ev := (*events)[i]
		if ev.Type != NoteOn || ev.Index != i {
			t.Errorf("event %d: expected note on index %d, got %+v", i, i, ev)
		}
	}
	if last := (*events)[NumNotes]; last.Type != NoteOff {
		t.Errorf("final event: expected note off, got %+v", last)
	}
}

// TestRunnerDisableEmitsNoteOff checks dropping enable mid-note produces
// a note off in the next batch.
func TestRunnerDisableEmitsNoteOff(t *testing.T) {
	r := NewRunner(New(), 1000)
	events := collect(r)

	r.SetEnable(true)
	r.step(100)
	r.SetEnable(false)
	r.step(10)

	if len(*events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(*events))
	}
	if (*events)[1].Type != NoteOff {
		t.Errorf("expected note off after disable, got %+v", (*events)[1])
	}
}

// TestRunnerPulseResetStopsNote checks a reset pulse while sounding emits
// a note off and clears the snapshot.
func TestRunnerPulseResetStopsNote(t *testing.T) {
	r := NewRunner(New(), 1000)
	events := collect(r)

	r.SetEnable(true)
	r.step(100)
	r.PulseReset()

	if last := (*events)[len(*events)-1]; last.Type != NoteOff {
		t.Errorf("expected note off on reset, got %+v", last)
	}
	snap := r.Snapshot()
	if snap.Playing || snap.Index != 0 || snap.Status != 0 {
		t.Errorf("snapshot after reset: %+v", snap)
	}
}

// TestRunnerSnapshotMirrorsPins checks the snapshot agrees with the
// status word fields.
func TestRunnerSnapshotMirrorsPins(t *testing.T) {
	r := NewRunner(New(), 1000)
	r.SetEnable(true)
	r.SetLoop(true)
	r.step(700) // inside note 1

	snap := r.Snapshot()
	playing, idx := DecodeStatus(snap.Status)
	if snap.Playing != playing || snap.Index != idx {
		t.Errorf("snapshot disagrees with status word: %+v", snap)
	}
	if snap.Index != 1 {
		t.Errorf("expected index 1 after 700 cycles, got %d", snap.Index)
	}
	if !snap.Enable || !snap.Loop {
		t.Errorf("snapshot should carry the control flags: %+v", snap)
	}
}
