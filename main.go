package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-melody/audio"
	"go-melody/chip"
	"go-melody/config"
	"go-melody/debug"
	"go-melody/midi"
	"go-melody/theme"
	"go-melody/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("GO_MELODY_DEBUG") != "" {
		debug.Enable()
		defer debug.Disable()
	}

	// Panel palette: built-in unless the config points at a GPL file
	pal := theme.Default()
	if cfg.Palette != "" {
		if p, err := theme.LoadGPL(cfg.Palette); err == nil {
			pal = p
		} else {
			fmt.Fprintf(os.Stderr, "palette: %v (using built-in)\n", err)
		}
	}
	th := theme.New(pal)

	// The device and its clock
	dev := chip.New()
	runner := chip.NewRunner(dev, cfg.ClockHz)

	// Output sinks
	out := midi.NewOut(cfg.MIDI.PortName, cfg.MIDI.Channel)
	runner.AddSink(out.Handle)

	synth := audio.NewSynth(audio.DefaultSampleRate)
	var player *audio.Player
	if cfg.Audio.Enabled {
		runner.AddSink(synth.Handle)
		if p, err := audio.NewPlayer(synth); err == nil {
			player = p
			player.Start()
		} else {
			fmt.Fprintf(os.Stderr, "audio: %v (continuing silent)\n", err)
		}
	}

	// Power-on control word
	runner.SetLoop(cfg.PowerOnLoop)
	runner.SetEnable(cfg.PowerOnEnable)
	runner.Start()
	defer runner.Stop()

	m := tui.NewModel(runner, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Leave nothing sounding behind us
	out.Silence()
	synth.Silence()
	if player != nil {
		player.Close()
	}
}
