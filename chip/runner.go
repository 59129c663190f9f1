package chip

import (
	"sync"
	"time"

	"go-melody/debug"
)

// Wall-clock batch interval for the clock loop, and the rate at which the
// TUI is poked even when nothing changed.
const (
	batchInterval = 5 * time.Millisecond
	uiFPS         = 30
)

// Runner drives a Chip in real time at a fixed clock rate, batching
// cycles from a coarse wall-clock ticker, and fans note-boundary changes
// out to registered sinks. The runner's mutex is the only synchronization
// around the chip.
type Runner struct {
	mu      sync.Mutex
	chip    *Chip
	clockHz int
	enable  bool
	loop    bool

	sinks []Sink

	// last observed outputs, for boundary detection
	wasPlaying bool
	lastIndex  int

	stopChan chan struct{}
	stopOnce sync.Once

	// UpdateChan pokes the TUI when observable state may have changed.
	UpdateChan chan struct{}
}

// NewRunner wraps a chip with a real-time clock at the given rate.
func NewRunner(c *Chip, clockHz int) *Runner {
	if clockHz < 1 {
		clockHz = 1
	}
	return &Runner{
		chip:       c,
		clockHz:    clockHz,
		stopChan:   make(chan struct{}),
		UpdateChan: make(chan struct{}, 1),
	}
}

// AddSink registers a consumer of note-boundary events. Register sinks
// before Start.
func (r *Runner) AddSink(s Sink) {
	r.sinks = append(r.sinks, s)
}

// Start launches the clock goroutine.
func (r *Runner) Start() {
	go r.clockLoop()
}

// Stop halts the clock goroutine. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
}

func (r *Runner) clockLoop() {
	ticker := time.NewTicker(batchInterval)
	defer ticker.Stop()
	uiTicker := time.NewTicker(time.Second / uiFPS)
	defer uiTicker.Stop()

	last := time.Now()
	var carry float64

	for {
		select {
		case <-r.stopChan:
			return
		case now := <-ticker.C:
			cycles := now.Sub(last).Seconds()*float64(r.clockHz) + carry
			n := int(cycles)
			carry = cycles - float64(n)
			last = now

			// Bound catch-up after a stall (debugger, laptop suspend) so we
			// never spin through minutes of cycles in one batch.
			if limit := r.clockHz / 4; n > limit {
				n = limit
			}
			r.step(n)
		case <-uiTicker.C:
			r.notifyUpdate()
		}
	}
}

// step clocks the chip n times, collecting boundary events, then emits
// them outside the lock.
func (r *Runner) step(n int) {
	var events []Event

	r.mu.Lock()
	for i := 0; i < n; i++ {
		r.chip.Tick()
		playing, idx := r.chip.Playing(), r.chip.NoteIndex()
		if playing != r.wasPlaying || (playing && idx != r.lastIndex) {
			if playing {
				events = append(events, Event{Type: NoteOn, Index: idx, Freq: NoteAt(idx).Freq})
			} else {
				events = append(events, Event{Type: NoteOff})
			}
			r.wasPlaying = playing
			r.lastIndex = idx
		}
	}
	r.mu.Unlock()

	debug.LogEvery(200, "clock", "batched %d cycles", n)

	for _, ev := range events {
		r.emit(ev)
	}
	if len(events) > 0 {
		r.notifyUpdate()
	}
}

func (r *Runner) emit(ev Event) {
	for _, s := range r.sinks {
		s(ev)
	}
}

// SetEnable drives the enable bit of the control word.
func (r *Runner) SetEnable(on bool) {
	r.mu.Lock()
	r.enable = on
	r.chip.SetControl(EncodeControl(r.enable, r.loop))
	r.mu.Unlock()
	debug.Log("runner", "enable=%v", on)
	r.notifyUpdate()
}

// SetLoop drives the loop bit of the control word.
func (r *Runner) SetLoop(on bool) {
	r.mu.Lock()
	r.loop = on
	r.chip.SetControl(EncodeControl(r.enable, r.loop))
	r.mu.Unlock()
	debug.Log("runner", "loop=%v", on)
	r.notifyUpdate()
}

// PulseReset holds the reset line low through one clock edge and releases
// it. The control word is left as it was, so an enabled chip restarts
// from note 0 on the next edge.
func (r *Runner) PulseReset() {
	var off bool

	r.mu.Lock()
	r.chip.SetResetN(false)
	r.chip.Tick()
	r.chip.SetResetN(true)
	if r.wasPlaying {
		r.wasPlaying = false
		r.lastIndex = 0
		off = true
	}
	r.mu.Unlock()

	debug.Log("runner", "reset pulsed")
	if off {
		r.emit(Event{Type: NoteOff})
	}
	r.notifyUpdate()
}

// Snapshot is a consistent copy of the externally observable state, for
// the TUI.
type Snapshot struct {
	Status  uint8
	Playing bool
	Index   int
	Freq    uint32
	Enable  bool
	Loop    bool
	ClockHz int
}

// Snapshot returns the current pin state under the lock.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Status:  r.chip.Status(),
		Playing: r.chip.Playing(),
		Index:   r.chip.NoteIndex(),
		Freq:    r.chip.CurrentNote().Freq,
		Enable:  r.enable,
		Loop:    r.loop,
		ClockHz: r.clockHz,
	}
}

// notifyUpdate pokes the TUI without blocking the clock loop.
func (r *Runner) notifyUpdate() {
	select {
	case r.UpdateChan <- struct{}{}:
	default:
	}
}
