// Package replay persists frame batches to tapes and plays them
// back. A tape is JSON Lines: a header object naming the tape id,
// creation time and frame rate, then one object per frame that
// carried events, keyed by frame number. Frames with no events are
// not written; playback regenerates them from the numbering.
package replay

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/dshills/framekey/internal/source"
)

// Recorder wraps a source and appends every non-empty frame it
// passes through to a tape file.
type Recorder struct {
	src   source.Source
	f     *os.File
	w     *bufio.Writer
	id    string
	frame int
	err   error
}

// NewRecorder creates the tape at path and writes its header. rate
// is the frame rate the source is pumped at, so playback can match
// the original pacing.
func NewRecorder(src source.Source, path string, rate int) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating tape %s: %w", path, err)
	}
	r := &Recorder{src: src, f: f, w: bufio.NewWriter(f), id: uuid.NewString()}
	line := r.set([]byte(`{}`), "tape", r.id)
	line = r.set(line, "created", time.Now().UTC().Format(time.RFC3339))
	line = r.set(line, "rate", rate)
	r.writeLine(line)
	if r.err != nil {
		f.Close()
		return nil, fmt.Errorf("writing tape header: %w", r.err)
	}
	return r, nil
}

// Next forwards the wrapped source's batch, recording it first.
func (r *Recorder) Next() (source.Batch, bool) {
	b, ok := r.src.Next()
	if !ok {
		return b, false
	}
	r.frame++
	if !b.Empty() && r.err == nil {
		r.writeFrame(b)
	}
	return b, true
}

// Close flushes the tape and closes the wrapped source. The first
// write error that occurred during recording surfaces here.
func (r *Recorder) Close() error {
	err := r.err
	if ferr := r.w.Flush(); err == nil {
		err = ferr
	}
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	if serr := r.src.Close(); err == nil {
		err = serr
	}
	return err
}

// ID returns the tape id written to the header.
func (r *Recorder) ID() string {
	return r.id
}

func (r *Recorder) writeFrame(b source.Batch) {
	line := r.set([]byte(`{}`), "f", r.frame)
	for _, ev := range b.Keys {
		entry := map[string]any{"code": ev.Code.String(), "t": ev.Transition.String()}
		if ev.ScanCode != 0 {
			entry["sc"] = ev.ScanCode
		}
		line = r.set(line, "keys.-1", entry)
	}
	for _, ev := range b.Mouse {
		line = r.set(line, "mouse.-1", map[string]any{
			"x":      ev.X,
			"y":      ev.Y,
			"button": ev.Button.String(),
			"t":      ev.Transition.String(),
		})
	}
	for _, ev := range b.Pads {
		line = r.set(line, "pads.-1", map[string]any{
			"button": ev.Button.String(),
			"t":      ev.Transition.String(),
		})
	}
	r.writeLine(line)
}

// set applies one sjson write, keeping the first error and the last
// good line.
func (r *Recorder) set(line []byte, path string, v any) []byte {
	out, err := sjson.SetBytes(line, path, v)
	if err != nil {
		if r.err == nil {
			r.err = err
		}
		return line
	}
	return out
}

func (r *Recorder) writeLine(line []byte) {
	if r.err != nil {
		return
	}
	if _, err := r.w.Write(line); err != nil {
		r.err = err
		return
	}
	if err := r.w.WriteByte('\n'); err != nil {
		r.err = err
	}
}
