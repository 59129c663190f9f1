package main

import (
	"fmt"
	"os"
	"strconv"

	"go-melody/audio"
	"go-melody/chip"
	"go-melody/config"
	"go-melody/midi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "trace":
		trace()
	case "table":
		table()
	case "ports":
		ports()
	case "wav":
		renderWAV()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Chip Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  trace N [CTRL]  - Clock the chip N cycles (control word CTRL, default 0x03) and print status transitions")
	fmt.Println("  table           - Dump the note table")
	fmt.Println("  ports           - List MIDI output ports")
	fmt.Println("  wav FILE [N]    - Render N passes of the melody (default 1) to FILE")
}

func trace() {
	if len(os.Args) < 3 {
		usage()
		return
	}
	n, err := strconv.Atoi(os.Args[2])
	if err != nil || n < 1 {
		fmt.Printf("bad cycle count %q\n", os.Args[2])
		return
	}

	ctrl := uint64(0x03)
	if len(os.Args) > 3 {
		ctrl, err = strconv.ParseUint(os.Args[3], 0, 8)
		if err != nil {
			fmt.Printf("bad control word %q\n", os.Args[3])
			return
		}
	}

	c := chip.New()

	// Reference protocol preamble: hold reset low for 10 cycles
	c.SetResetN(false)
	c.Run(10)
	c.SetResetN(true)
	c.SetControl(uint8(ctrl))
	fmt.Printf("control=0x%02X\n", uint8(ctrl))

	last := c.Status()
	fmt.Printf("cycle %7d  status=0x%02X  playing=%v index=%d\n", 0, last, c.Playing(), c.NoteIndex())
	for i := 1; i <= n; i++ {
		c.Tick()
		if s := c.Status(); s != last {
			fmt.Printf("cycle %7d  status=0x%02X  playing=%v index=%d\n", i, s, c.Playing(), c.NoteIndex())
			last = s
		}
	}
}

func table() {
	fmt.Println("idx  freq(Hz)  cycles")
	for i := 0; i < chip.NumNotes; i++ {
		n := chip.NoteAt(i)
		fmt.Printf("%3d  %8d  %6d\n", i, n.Freq, n.Cycles)
	}
	fmt.Printf("\none pass: %d cycles (%.2fs at the reference %d Hz clock)\n",
		chip.TotalCycles(), float64(chip.TotalCycles())/chip.RefClockHz, chip.RefClockHz)
}

func ports() {
	names := midi.Ports()
	if len(names) == 0 {
		fmt.Println("no MIDI output ports")
		return
	}
	fmt.Println("=== MIDI Output Ports ===")
	for i, name := range names {
		fmt.Printf("  %d: %s\n", i, name)
	}
}

func renderWAV() {
	if len(os.Args) < 3 {
		usage()
		return
	}
	path := os.Args[2]

	passes := 1
	if len(os.Args) > 3 {
		p, err := strconv.Atoi(os.Args[3])
		if err != nil || p < 1 {
			fmt.Printf("bad pass count %q\n", os.Args[3])
			return
		}
		passes = p
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		return
	}

	if err := audio.RenderWAV(path, cfg.Audio.WAVSampleRate, cfg.ClockHz, passes); err != nil {
		fmt.Printf("render: %v\n", err)
		return
	}
	fmt.Printf("wrote %s (%d pass(es) at %d Hz clock, %d Hz samples)\n",
		path, passes, cfg.ClockHz, cfg.Audio.WAVSampleRate)
}
