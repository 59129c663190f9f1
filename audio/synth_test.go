package audio

import (
	"math"
	"testing"

	"go-melody/chip"
)

// TestSynthSilentByDefault checks a fresh voice outputs exactly zero.
func TestSynthSilentByDefault(t *testing.T) {
	s := NewSynth(DefaultSampleRate)
	for i := 0; i < 100; i++ {
		if v := s.Sample(); v != 0 {
			t.Fatalf("sample %d: expected silence, got %f", i, v)
		}
	}
}

// TestSynthSoundsWhenTuned checks a tuned voice produces a bounded,
// nonzero signal.
func TestSynthSoundsWhenTuned(t *testing.T) {
	s := NewSynth(DefaultSampleRate)
	s.SetFreq(330)

	var peak float64
	for i := 0; i < DefaultSampleRate/10; i++ {
		v := float64(s.Sample())
		if a := math.Abs(v); a > peak {
			peak = a
		}
		if math.Abs(v) > gain+1e-6 {
			t.Fatalf("sample %d: %f exceeds gain %f", i, v, gain)
		}
	}
	if peak < gain/2 {
		t.Errorf("peak %f suspiciously quiet for a tuned voice", peak)
	}
}

// TestSynthSilenceResetsPhase checks silencing returns the output to zero
// immediately.
func TestSynthSilenceResetsPhase(t *testing.T) {
	s := NewSynth(DefaultSampleRate)
	s.SetFreq(392)
	for i := 0; i < 1000; i++ {
		s.Sample()
	}

	s.Silence()
	if v := s.Sample(); v != 0 {
		t.Errorf("expected silence after Silence, got %f", v)
	}
}

// TestSynthHandle checks the sink adapter tunes and silences the voice.
func TestSynthHandle(t *testing.T) {
	s := NewSynth(DefaultSampleRate)

	s.Handle(chip.Event{Type: chip.NoteOn, Freq: 262})
	if got := s.freq.Load(); got != 262 {
		t.Errorf("after note on: expected 262 Hz, got %d", got)
	}

	s.Handle(chip.Event{Type: chip.NoteOff})
	if got := s.freq.Load(); got != 0 {
		t.Errorf("after note off: expected 0 Hz, got %d", got)
	}
}

// TestSynthRead checks the reader contract: full buffer, float32 frames.
func TestSynthRead(t *testing.T) {
	s := NewSynth(DefaultSampleRate)
	s.SetFreq(330)

	buf := make([]byte, 1024)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1024 {
		t.Errorf("expected 1024 bytes, got %d", n)
	}
}
