// Package host provides the terminal front end driving the interpreter core.
//
// The host owns external timing: on a fixed 60 Hz cadence it feeds key-state
// changes to the machine, runs a configured number of cycles, sounds the
// terminal bell on a tone request, and redraws the framebuffer when the
// machine marks it dirty.
package host

import (
	"fmt"
	"log/slog"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/sarchlab/chip8sim/emu"
)

// FrameRate is the fixed host cadence in frames per second.
const FrameRate = 60

// DefaultCyclesPerFrame is the number of machine cycles run per frame when
// the host is not configured otherwise (roughly 600 instructions per second).
const DefaultCyclesPerFrame = 10

// keyReleaseDelay is how long a pressed key is held before the host injects
// the release. Terminals deliver key presses but no key-up events, so
// releases are synthesized on a timer.
const keyReleaseDelay = 100 * time.Millisecond

// keymap maps the 1234/qwer/asdf/zxcv block onto the 4x4 CHIP-8 keypad.
var keymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Host runs a CHIP-8 machine against a terminal screen.
type Host struct {
	machine *emu.Emulator
	screen  tcell.Screen
	logger  *slog.Logger

	cyclesPerFrame int
	releaseAt      [emu.NumKeys]time.Time
}

// Option is a functional option for configuring the Host.
type Option func(*Host)

// WithScreen sets the tcell screen to render to. Tests inject a simulation
// screen here; without it the host allocates the real terminal screen.
func WithScreen(screen tcell.Screen) Option {
	return func(h *Host) {
		h.screen = screen
	}
}

// WithLogger sets the logger for host diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithCyclesPerFrame sets how many machine cycles run per 60 Hz frame.
func WithCyclesPerFrame(n int) Option {
	return func(h *Host) {
		if n > 0 {
			h.cyclesPerFrame = n
		}
	}
}

// New creates a host for the given machine.
func New(machine *emu.Emulator, opts ...Option) (*Host, error) {
	h := &Host{
		machine:        machine,
		logger:         slog.New(slog.DiscardHandler),
		cyclesPerFrame: DefaultCyclesPerFrame,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("allocate screen: %w", err)
		}
		h.screen = screen
	}

	return h, nil
}

// Run drives the machine until the user quits (Esc or Ctrl-C) or a fatal
// fault halts it. It owns the screen for its whole lifetime.
func (h *Host) Run() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer h.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	h.logger.Info("host started",
		"cyclesPerFrame", h.cyclesPerFrame,
		"frameRate", FrameRate)

	for {
		select {
		case ev := <-events:
			if done := h.handleEvent(ev); done {
				return nil
			}
		case now := <-ticker.C:
			h.releaseExpiredKeys(now)
			if err := h.RunFrame(); err != nil {
				return err
			}
		}
	}
}

// handleEvent processes one terminal event. It reports true when the user
// asked to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if key, ok := keymap[unicode.ToLower(ev.Rune())]; ok {
			h.pressKey(key)
		}
	}
	return false
}

// pressKey marks a keypad key pressed and schedules its synthetic release.
func (h *Host) pressKey(key uint8) {
	_ = h.machine.SetKey(key, true) // keymap only yields valid indexes
	h.releaseAt[key] = time.Now().Add(keyReleaseDelay)
}

// releaseExpiredKeys injects releases for keys whose hold window has passed.
func (h *Host) releaseExpiredKeys(now time.Time) {
	for key := range h.releaseAt {
		if !h.releaseAt[key].IsZero() && now.After(h.releaseAt[key]) {
			_ = h.machine.SetKey(uint8(key), false)
			h.releaseAt[key] = time.Time{}
		}
	}
}

// RunFrame executes one frame: the configured number of machine cycles,
// a bell for any tone request, and a redraw if the framebuffer is dirty.
func (h *Host) RunFrame() error {
	for i := 0; i < h.cyclesPerFrame; i++ {
		result := h.machine.Step()
		if result.Tone {
			h.screen.Beep()
		}
		if result.Err != nil && result.Halted {
			return fmt.Errorf("machine fault: %w", result.Err)
		}
		// Decode faults are non-fatal; the machine logged them and moved on.
	}

	if h.machine.Display().Dirty() {
		h.draw()
	}

	return nil
}

// draw renders the framebuffer, two terminal cells per CHIP-8 pixel so the
// aspect ratio roughly matches the original 2:1 display.
func (h *Host) draw() {
	frame := h.machine.ConsumeFrame()

	lit := tcell.StyleDefault.Background(tcell.ColorWhite)
	unlit := tcell.StyleDefault.Background(tcell.ColorBlack)

	for y := 0; y < emu.DisplayHeight; y++ {
		for x := 0; x < emu.DisplayWidth; x++ {
			style := unlit
			if frame[y][x] {
				style = lit
			}
			h.screen.SetContent(x*2, y, ' ', nil, style)
			h.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}

	h.screen.Show()
}
