package replay

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/framekey/internal/input"
	"github.com/dshills/framekey/internal/input/gamepad"
	"github.com/dshills/framekey/internal/input/key"
	"github.com/dshills/framekey/internal/input/keyboard"
	"github.com/dshills/framekey/internal/input/mouse"
	"github.com/dshills/framekey/internal/source"
)

type frameRecord struct {
	n     int
	batch source.Batch
}

// Player replays a tape as a source. Frames between recorded lines
// come back empty, so playback keeps the original spacing.
type Player struct {
	id     string
	rate   int
	frames []frameRecord
	last   int
	pos    int
	cursor int
}

// Load reads and validates a tape.
func Load(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tape %s: %w", path, err)
	}
	defer f.Close()

	p := &Player{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	headerSeen := false
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			return nil, fmt.Errorf("tape %s line %d: invalid JSON", path, lineNo)
		}
		if !headerSeen {
			if err := p.readHeader(line); err != nil {
				return nil, fmt.Errorf("tape %s: %w", path, err)
			}
			headerSeen = true
			continue
		}
		if err := p.readFrame(line); err != nil {
			return nil, fmt.Errorf("tape %s line %d: %w", path, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading tape %s: %w", path, err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("tape %s: missing header", path)
	}
	return p, nil
}

// Next returns the batch recorded for the following frame, or an
// empty batch for a gap frame. ok is false past the last recorded
// frame.
func (p *Player) Next() (source.Batch, bool) {
	if p.cursor >= p.last {
		return source.Batch{}, false
	}
	p.cursor++
	if p.pos < len(p.frames) && p.frames[p.pos].n == p.cursor {
		b := p.frames[p.pos].batch
		p.pos++
		return b, true
	}
	return source.Batch{}, true
}

func (p *Player) Close() error {
	return nil
}

// ID returns the tape id from the header.
func (p *Player) ID() string {
	return p.id
}

// Rate returns the frame rate the tape was recorded at, or 0 when
// the header does not carry one.
func (p *Player) Rate() int {
	return p.rate
}

// Frames returns the total frame count including trailing gaps up
// to the last recorded frame.
func (p *Player) Frames() int {
	return p.last
}

func (p *Player) readHeader(line []byte) error {
	hdr := gjson.ParseBytes(line)
	id := hdr.Get("tape").String()
	if id == "" {
		return fmt.Errorf("header missing tape id")
	}
	p.id = id
	p.rate = int(hdr.Get("rate").Int())
	return nil
}

func (p *Player) readFrame(line []byte) error {
	rec := gjson.ParseBytes(line)
	fv := rec.Get("f")
	if !fv.Exists() {
		return fmt.Errorf("missing frame number")
	}
	n := int(fv.Int())
	if n <= p.last {
		return fmt.Errorf("frame %d out of order", n)
	}
	var b source.Batch
	rec.Get("keys").ForEach(func(_, v gjson.Result) bool {
		b.Keys = append(b.Keys, keyboard.Event{
			ScanCode:   uint32(v.Get("sc").Uint()),
			Code:       key.FromName(v.Get("code").String()),
			Transition: input.TransitionFromName(v.Get("t").String()),
		})
		return true
	})
	rec.Get("mouse").ForEach(func(_, v gjson.Result) bool {
		b.Mouse = append(b.Mouse, mouse.Event{
			X:          int(v.Get("x").Int()),
			Y:          int(v.Get("y").Int()),
			Button:     mouse.ButtonFromName(v.Get("button").String()),
			Transition: input.TransitionFromName(v.Get("t").String()),
		})
		return true
	})
	rec.Get("pads").ForEach(func(_, v gjson.Result) bool {
		b.Pads = append(b.Pads, gamepad.Event{
			Button:     gamepad.ButtonFromName(v.Get("button").String()),
			Transition: input.TransitionFromName(v.Get("t").String()),
		})
		return true
	})
	p.frames = append(p.frames, frameRecord{n: n, batch: b})
	p.last = n
	return nil
}
