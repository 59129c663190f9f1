package audio

import (
	"github.com/ebitengine/oto/v3"
)

// Player pushes a Synth to the system audio device via oto.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer opens the audio device and wires the synth as its sample
// source. Blocks until the device is ready.
func NewPlayer(s *Synth) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   s.sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(s),
	}, nil
}

// Start begins pulling samples from the synth.
func (p *Player) Start() {
	p.player.Play()
}

// Close stops playback and releases the device player.
func (p *Player) Close() error {
	return p.player.Close()
}
