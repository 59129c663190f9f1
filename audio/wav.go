package audio

import (
	"fmt"
	"math"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"go-melody/chip"
)

// RenderWAV plays the note table offline through the synth and writes the
// result as a 16-bit mono WAV file: passes complete passes of the table,
// each note held for its duration in cycles at the given chip clock rate.
func RenderWAV(path string, sampleRate, clockHz, passes int) error {
	if sampleRate < 1 || clockHz < 1 {
		return fmt.Errorf("wav render: bad rates (sample %d Hz, clock %d Hz)", sampleRate, clockHz)
	}
	if passes < 1 {
		passes = 1
	}

	s := NewSynth(sampleRate)
	var data []int
	for p := 0; p < passes; p++ {
		for i := 0; i < chip.NumNotes; i++ {
			n := chip.NoteAt(i)
			s.SetFreq(n.Freq)
			samples := int(float64(n.Cycles) / float64(clockHz) * float64(sampleRate))
			for j := 0; j < samples; j++ {
				data = append(data, int(s.Sample()*math.MaxInt16))
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav render: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav render: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav render: %w", err)
	}
	return nil
}
