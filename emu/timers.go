package emu

// Timers holds the delay and sound countdown timers. Each decrements once
// per tick while nonzero; the sound timer reaching exactly zero is the edge
// that requests a one-shot tone from the host.
//
// Classic interpreters decrement both timers once per executed instruction,
// conflating instruction cadence with the nominal 60 Hz timer cadence. The
// divider decouples them: with divider n the timers decrement once every n
// ticks, so a host running n cycles per 60 Hz frame gets true 60 Hz timers.
type Timers struct {
	// Delay is the delay timer counter.
	Delay uint8

	// Sound is the sound timer counter.
	Sound uint8

	divider int
	pending int
}

// NewTimers creates timers that decrement once every divider ticks.
// A divider below 1 is treated as 1 (one decrement per instruction).
func NewTimers(divider int) *Timers {
	if divider < 1 {
		divider = 1
	}
	return &Timers{divider: divider}
}

// Tick advances the timer clock by one cycle. It returns true exactly when
// the sound timer transitions to zero, requesting a tone from the host.
func (t *Timers) Tick() bool {
	t.pending++
	if t.pending < t.divider {
		return false
	}
	t.pending = 0

	if t.Delay > 0 {
		t.Delay--
	}

	if t.Sound > 0 {
		t.Sound--
		return t.Sound == 0
	}

	return false
}

// Reset zeroes both counters and the divider phase. The divider itself is
// part of the machine configuration and survives resets.
func (t *Timers) Reset() {
	t.Delay = 0
	t.Sound = 0
	t.pending = 0
}
