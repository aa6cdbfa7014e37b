package source

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/framekey/internal/input"
	"github.com/dshills/framekey/internal/input/key"
	"github.com/dshills/framekey/internal/input/keyboard"
	"github.com/dshills/framekey/internal/input/mouse"
	"github.com/dshills/framekey/internal/log"
)

const terminalQueueSize = 128

// Terminal reads events from a tcell screen.
//
// Terminals report key presses but never key releases, so the source
// keeps a last-seen time per code and synthesizes a release once a
// held code has gone unreported for the TTL. Auto-repeat refreshes
// the hold; the tracker's idempotent press absorbs the repeats.
// Mouse buttons do report both edges, recovered by diffing the
// button mask against the previous event.
type Terminal struct {
	screen  tcell.Screen
	logger  log.Logger
	ttl     time.Duration
	mouse   bool
	now     func() time.Time
	events  chan tcell.Event
	done    chan struct{}
	wg      sync.WaitGroup
	dropped atomic.Uint64

	lastSeen map[key.Code]time.Time
	buttons  tcell.ButtonMask
}

// TerminalOption configures a Terminal before its screen starts.
type TerminalOption func(*Terminal)

// WithReleaseTTL sets how long a key stays held without a repeat
// before the source synthesizes its release.
func WithReleaseTTL(d time.Duration) TerminalOption {
	return func(t *Terminal) {
		t.ttl = d
	}
}

// WithMouse enables or disables mouse reporting.
func WithMouse(enable bool) TerminalOption {
	return func(t *Terminal) {
		t.mouse = enable
	}
}

// WithClock overrides the time source. Tests use this to expire
// holds without sleeping.
func WithClock(now func() time.Time) TerminalOption {
	return func(t *Terminal) {
		t.now = now
	}
}

// NewTerminal opens the terminal screen and starts the event pump.
func NewTerminal(logger log.Logger, opts ...TerminalOption) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	t := newTerminal(logger, opts...)
	t.screen = screen
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	if t.mouse {
		screen.EnableMouse()
	}
	t.wg.Add(1)
	go t.pump()
	return t, nil
}

func newTerminal(logger log.Logger, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		logger:   logger,
		ttl:      600 * time.Millisecond,
		mouse:    true,
		now:      time.Now,
		events:   make(chan tcell.Event, terminalQueueSize),
		done:     make(chan struct{}),
		lastSeen: make(map[key.Code]time.Time),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// pump forwards screen events to the queue, dropping when full so a
// stalled frame loop cannot block the screen.
func (t *Terminal) pump() {
	defer t.wg.Done()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
		select {
		case t.events <- ev:
		default:
			t.dropped.Add(1)
		}
	}
}

// Next drains queued events into a batch and appends synthetic
// releases for holds past their TTL.
func (t *Terminal) Next() (Batch, bool) {
	var b Batch
	now := t.now()
	for {
		select {
		case ev := <-t.events:
			t.convert(ev, now, &b)
		default:
			b.Keys = append(b.Keys, t.expiredReleases(now)...)
			return b, true
		}
	}
}

// Close stops the pump and restores the terminal.
func (t *Terminal) Close() error {
	close(t.done)
	t.screen.Fini()
	t.wg.Wait()
	return nil
}

// Screen exposes the underlying screen for rendering.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Dropped returns how many events the pump discarded because the
// queue was full.
func (t *Terminal) Dropped() uint64 {
	return t.dropped.Load()
}

func (t *Terminal) convert(ev tcell.Event, now time.Time, b *Batch) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		t.convertKey(e, now, b)
	case *tcell.EventMouse:
		t.convertMouse(e, b)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) convertKey(e *tcell.EventKey, now time.Time, b *Batch) {
	scan := uint32(e.Key())
	if e.Key() == tcell.KeyRune {
		scan = uint32(e.Rune())
	}
	t.touchModifiers(e.Modifiers(), now, b)
	code := keyCode(e)
	if code == key.CodeNone {
		// Deliver the raw event anyway; the tracker skips it
		// but the scan code still shows up in diagnostics.
		b.Keys = append(b.Keys, keyboard.Event{ScanCode: scan, Transition: input.TransitionPress})
		return
	}
	t.touch(code, scan, now, b)
}

// touch records a press and refreshes the hold deadline. Repeats
// emit again; the tracker treats them as the one held key.
func (t *Terminal) touch(code key.Code, scan uint32, now time.Time, b *Batch) {
	t.lastSeen[code] = now
	b.Keys = append(b.Keys, keyboard.Event{ScanCode: scan, Code: code, Transition: input.TransitionPress})
}

// touchModifiers synthesizes presses for modifiers riding on a key
// event. Terminals never report modifiers as their own keys, so the
// left-hand variants stand in for whichever was held.
func (t *Terminal) touchModifiers(mods tcell.ModMask, now time.Time, b *Batch) {
	if mods&tcell.ModShift != 0 {
		t.touch(key.CodeLShift, 0, now, b)
	}
	if mods&tcell.ModCtrl != 0 {
		t.touch(key.CodeLControl, 0, now, b)
	}
	if mods&tcell.ModAlt != 0 {
		t.touch(key.CodeLAlt, 0, now, b)
	}
	if mods&tcell.ModMeta != 0 {
		t.touch(key.CodeLWin, 0, now, b)
	}
}

func (t *Terminal) expiredReleases(now time.Time) []keyboard.Event {
	var evs []keyboard.Event
	for code, seen := range t.lastSeen {
		if now.Sub(seen) >= t.ttl {
			delete(t.lastSeen, code)
			evs = append(evs, keyboard.Event{Code: code, Transition: input.TransitionRelease})
		}
	}
	return evs
}

var pressButtons = []struct {
	bit tcell.ButtonMask
	btn mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button2, mouse.ButtonMiddle},
	{tcell.Button3, mouse.ButtonRight},
	{tcell.Button4, mouse.ButtonBack},
	{tcell.Button5, mouse.ButtonForward},
}

var wheelButtons = []struct {
	bit tcell.ButtonMask
	btn mouse.Button
}{
	{tcell.WheelUp, mouse.ButtonScrollUp},
	{tcell.WheelDown, mouse.ButtonScrollDown},
	{tcell.WheelLeft, mouse.ButtonScrollLeft},
	{tcell.WheelRight, mouse.ButtonScrollRight},
}

func (t *Terminal) convertMouse(e *tcell.EventMouse, b *Batch) {
	x, y := e.Position()
	mask := e.Buttons()
	for _, m := range pressButtons {
		was := t.buttons&m.bit != 0
		is := mask&m.bit != 0
		switch {
		case is && !was:
			b.Mouse = append(b.Mouse, mouse.Event{X: x, Y: y, Button: m.btn, Transition: input.TransitionPress})
		case was && !is:
			b.Mouse = append(b.Mouse, mouse.Event{X: x, Y: y, Button: m.btn, Transition: input.TransitionRelease})
		}
	}
	// Wheel ticks are impulses, not holds: both edges land in the
	// same frame and the bit never enters the stored mask.
	for _, m := range wheelButtons {
		if mask&m.bit != 0 {
			b.Mouse = append(b.Mouse,
				mouse.Event{X: x, Y: y, Button: m.btn, Transition: input.TransitionPress},
				mouse.Event{X: x, Y: y, Button: m.btn, Transition: input.TransitionRelease})
		}
	}
	t.buttons = mask &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
}

// keyCode maps a tcell key event to a catalog code. Control keys
// collapse onto their base letter; tcell aliases several of them to
// Tab, Enter and Backspace, so those resolve first.
func keyCode(e *tcell.EventKey) key.Code {
	k := e.Key()
	if k == tcell.KeyRune {
		return runeCode(e.Rune())
	}
	switch k {
	case tcell.KeyEscape:
		return key.CodeEscape
	case tcell.KeyEnter:
		return key.CodeReturn
	case tcell.KeyTab:
		return key.CodeTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.CodeBack
	case tcell.KeyDelete:
		return key.CodeDelete
	case tcell.KeyInsert:
		return key.CodeInsert
	case tcell.KeyHome:
		return key.CodeHome
	case tcell.KeyEnd:
		return key.CodeEnd
	case tcell.KeyPgUp:
		return key.CodePageUp
	case tcell.KeyPgDn:
		return key.CodePageDown
	case tcell.KeyUp:
		return key.CodeUp
	case tcell.KeyDown:
		return key.CodeDown
	case tcell.KeyLeft:
		return key.CodeLeft
	case tcell.KeyRight:
		return key.CodeRight
	case tcell.KeyPrint:
		return key.CodeSnapshot
	case tcell.KeyPause:
		return key.CodePause
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF24 {
		return key.CodeF1 + key.Code(k-tcell.KeyF1)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.CodeA + key.Code(k-tcell.KeyCtrlA)
	}
	return key.CodeNone
}

// shiftedCodes maps printable runes to physical keys, folding the
// shifted US row onto the key that produces it.
var shiftedCodes = map[rune]key.Code{
	' ':  key.CodeSpace,
	'-':  key.CodeMinus,
	'_':  key.CodeMinus,
	'=':  key.CodeEquals,
	'[':  key.CodeLBracket,
	'{':  key.CodeLBracket,
	']':  key.CodeRBracket,
	'}':  key.CodeRBracket,
	'\\': key.CodeBackslash,
	'|':  key.CodeBackslash,
	';':  key.CodeSemicolon,
	'\'': key.CodeApostrophe,
	'"':  key.CodeApostrophe,
	',':  key.CodeComma,
	'<':  key.CodeComma,
	'.':  key.CodePeriod,
	'>':  key.CodePeriod,
	'/':  key.CodeSlash,
	'?':  key.CodeSlash,
	'`':  key.CodeGrave,
	'~':  key.CodeGrave,
	'^':  key.CodeCaret,
	'*':  key.CodeAsterisk,
	'+':  key.CodePlus,
	'@':  key.CodeAt,
	':':  key.CodeColon,
	'!':  key.Code1,
	'#':  key.Code3,
	'$':  key.Code4,
	'%':  key.Code5,
	'&':  key.Code7,
	'(':  key.Code9,
	')':  key.Code0,
	'¥':  key.CodeYen,
}

func runeCode(r rune) key.Code {
	switch {
	case r >= 'a' && r <= 'z':
		return key.CodeA + key.Code(r-'a')
	case r >= 'A' && r <= 'Z':
		return key.CodeA + key.Code(r-'A')
	case r >= '1' && r <= '9':
		return key.Code1 + key.Code(r-'1')
	case r == '0':
		return key.Code0
	}
	return shiftedCodes[r]
}
