package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/dshills/framekey/internal/input"
	"github.com/dshills/framekey/internal/input/gamepad"
	"github.com/dshills/framekey/internal/input/key"
	"github.com/dshills/framekey/internal/input/mouse"
	"github.com/dshills/framekey/internal/layout"
)

const (
	fadeDuration = 400 * time.Millisecond
	tickerWidth  = 32
)

var (
	colorHeld    = colorful.Color{R: 0.22, G: 0.72, B: 0.36}
	colorPressed = colorful.Color{R: 0.98, G: 0.86, B: 0.25}
	colorIdle    = colorful.Color{R: 0.16, G: 0.16, B: 0.20}
)

// view renders the tracker state as a keyboard grid with a status
// line and a ticker of recently typed characters. Released keys
// fade from the held color back to idle.
type view struct {
	screen tcell.Screen
	lay    layout.Layout
	now    func() time.Time

	releasedAt map[key.Code]time.Time
	ticker     []rune
}

func newView(screen tcell.Screen, lay layout.Layout) *view {
	return &view{
		screen:     screen,
		lay:        lay,
		now:        time.Now,
		releasedAt: make(map[key.Code]time.Time),
	}
}

func (v *view) render(frame int, keys *input.State[key.Code], buttons *input.State[mouse.Button], pads *input.State[gamepad.Button], snap Snapshot) {
	now := v.now()
	v.observe(now, keys)

	v.screen.Clear()
	y := 1
	for _, row := range v.lay.Rows {
		x := 2
		for _, code := range row {
			label := code.String()
			drawString(v.screen, x, y, label, v.keyStyle(now, code, keys))
			x += uniseg.StringWidth(label) + 1
		}
		y += 2
	}

	y++
	drawString(v.screen, 2, y, statusLine(frame, snap), tcell.StyleDefault)
	y += 2
	drawString(v.screen, 2, y, heldLine(keys, buttons, pads), tcell.StyleDefault)
	y += 2
	drawString(v.screen, 2, y, "typed: "+string(v.ticker), tcell.StyleDefault)

	v.screen.Show()
}

// observe folds this frame's edges into the fade map and the
// character ticker.
func (v *view) observe(now time.Time, keys *input.State[key.Code]) {
	for code := range key.Codes() {
		if keys.JustPressed(code) {
			delete(v.releasedAt, code)
			if ch, ok := code.Char(); ok {
				v.ticker = append(v.ticker, ch)
			}
		}
		if keys.JustReleased(code) {
			v.releasedAt[code] = now
		}
	}
	if len(v.ticker) > tickerWidth {
		v.ticker = v.ticker[len(v.ticker)-tickerWidth:]
	}
	for code, at := range v.releasedAt {
		if now.Sub(at) > fadeDuration {
			delete(v.releasedAt, code)
		}
	}
}

func (v *view) keyStyle(now time.Time, code key.Code, keys *input.State[key.Code]) tcell.Style {
	switch {
	case keys.JustPressed(code):
		return tcell.StyleDefault.Background(tcellColor(colorPressed)).Foreground(tcell.ColorBlack)
	case keys.IsPressed(code):
		return tcell.StyleDefault.Background(tcellColor(colorHeld)).Foreground(tcell.ColorBlack)
	}
	if at, ok := v.releasedAt[code]; ok {
		return tcell.StyleDefault.Background(tcellColor(fadeColor(now.Sub(at)))).Foreground(tcell.ColorBlack)
	}
	return tcell.StyleDefault.Background(tcellColor(colorIdle)).Foreground(tcell.ColorWhite)
}

// fadeColor blends the held green back into idle as a release ages.
func fadeColor(elapsed time.Duration) colorful.Color {
	t := float64(elapsed) / float64(fadeDuration)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return colorHeld.BlendRgb(colorIdle, t)
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func statusLine(frame int, snap Snapshot) string {
	return fmt.Sprintf("frame %d  keys %d  mouse %d  pads %d  unresolved %d  dropped %d  %.1f fps",
		frame, snap.KeyEventsTotal, snap.MouseEventsTotal, snap.PadEventsTotal,
		snap.UnresolvedTotal, snap.DroppedEvents, snap.FramesPerSecond)
}

// heldLine lists everything currently held, in catalog order per
// device.
func heldLine(keys *input.State[key.Code], buttons *input.State[mouse.Button], pads *input.State[gamepad.Button]) string {
	var parts []string
	for _, code := range slices.Sorted(keys.Pressed()) {
		parts = append(parts, code.String())
	}
	for _, b := range slices.Sorted(buttons.Pressed()) {
		parts = append(parts, b.String())
	}
	for _, b := range slices.Sorted(pads.Pressed()) {
		parts = append(parts, b.String())
	}
	if len(parts) == 0 {
		return "held: none"
	}
	return "held: " + strings.Join(parts, " ")
}

// drawString writes text one grapheme cluster per cell run,
// returning the column after the text.
func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		s.SetContent(x, y, runes[0], comb, style)
		x += uniseg.StringWidth(g.Str())
	}
	return x
}
