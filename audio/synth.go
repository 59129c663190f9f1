// Package audio turns the chip's tone parameter into sound: a small FM
// voice that feeds either the live audio device or an offline WAV render.
package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"go-melody/chip"
)

// DefaultSampleRate is used for the live audio path.
const DefaultSampleRate = 44100

// FM voice shape. One modulator phase-locked to the carrier; enough to
// give each table entry a distinguishable reedy tone.
const (
	modRatio = 2.0
	modIndex = 1.5
	gain     = 0.25
)

// Synth is a two operator FM voice. It produces mono float32 samples
// and doubles as the io.Reader the audio backend pulls from, so the only
// cross-goroutine state is the carrier frequency.
type Synth struct {
	sampleRate int
	freq       atomic.Uint32 // carrier Hz; 0 = silent
	phase      float64       // carrier phase, cycles
	mphase     float64       // modulator phase, cycles
}

// NewSynth creates a silent voice at the given sample rate.
func NewSynth(sampleRate int) *Synth {
	return &Synth{sampleRate: sampleRate}
}

// SetFreq changes the carrier frequency. Safe from any goroutine; the
// audio callback picks it up on the next sample.
func (s *Synth) SetFreq(hz uint32) {
	s.freq.Store(hz)
}

// Silence stops the tone.
func (s *Synth) Silence() {
	s.freq.Store(0)
}

// Handle is a chip.Sink: note boundaries retune the voice, quiet events
// stop it.
func (s *Synth) Handle(ev chip.Event) {
	switch ev.Type {
	case chip.NoteOn:
		s.SetFreq(ev.Freq)
	case chip.NoteOff:
		s.Silence()
	}
}

// Sample produces the next mono sample. Only the audio callback (or an
// offline render loop) may call it.
func (s *Synth) Sample() float32 {
	f := float64(s.freq.Load())
	if f == 0 {
		s.phase = 0
		s.mphase = 0
		return 0
	}

	out := math.Sin(2*math.Pi*s.phase + modIndex*math.Sin(2*math.Pi*s.mphase))

	s.phase += f / float64(s.sampleRate)
	s.mphase += f * modRatio / float64(s.sampleRate)
	if s.phase >= 1 {
		s.phase--
	}
	if s.mphase >= 1 {
		s.mphase--
	}

	return float32(out * gain)
}

// Read fills p with little-endian float32 samples for the audio backend.
func (s *Synth) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s.Sample()))
	}
	return n * 4, nil
}
