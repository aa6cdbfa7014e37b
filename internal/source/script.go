package source

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/framekey/internal/input"
	"github.com/dshills/framekey/internal/input/gamepad"
	"github.com/dshills/framekey/internal/input/key"
	"github.com/dshills/framekey/internal/input/keyboard"
	"github.com/dshills/framekey/internal/input/mouse"
	"github.com/dshills/framekey/internal/log"
)

// Script drives the tracker from a Lua file. The file defines a
// global frame(n) that returns the events for frame n as a table
// with optional keys, mouse and pads arrays, or nil to finish:
//
//	function frame(n)
//	  if n == 1 then
//	    return { keys = { { code = "space", t = "press", sc = 57 } } }
//	  end
//	  return nil
//	end
//
// Event names resolve through the same lookup as every other
// surface, so unknown codes become unresolved events rather than
// errors.
type Script struct {
	state  *lua.LState
	logger log.Logger
	path   string
	frame  int
	err    error
}

// safeLibraries is the subset of the Lua standard library scripts
// may use. No io, no os.
var safeLibraries = []struct {
	name string
	fn   lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// NewScript loads the script and checks it defines frame(n).
func NewScript(path string, logger log.Logger) (*Script, error) {
	state := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range safeLibraries {
		if err := state.CallByParam(lua.P{
			Fn:      state.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			state.Close()
			return nil, fmt.Errorf("opening lua library %s: %w", lib.name, err)
		}
	}
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading script %s: %w", path, err)
	}
	if state.GetGlobal("frame").Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("script %s does not define frame(n)", path)
	}
	return &Script{state: state, logger: logger, path: path}, nil
}

// Next calls frame(n) for the following frame number.
func (s *Script) Next() (Batch, bool) {
	if s.err != nil {
		return Batch{}, false
	}
	s.frame++
	if err := s.state.CallByParam(lua.P{
		Fn:      s.state.GetGlobal("frame"),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(s.frame)); err != nil {
		s.err = fmt.Errorf("script %s frame %d: %w", s.path, s.frame, err)
		s.logger.Errorf("script error: %v", s.err)
		return Batch{}, false
	}
	ret := s.state.Get(-1)
	s.state.Pop(1)
	if ret == lua.LNil {
		return Batch{}, false
	}
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		s.err = fmt.Errorf("script %s frame %d returned %s, want table or nil", s.path, s.frame, ret.Type())
		s.logger.Errorf("script error: %v", s.err)
		return Batch{}, false
	}
	return batchFromTable(tbl), true
}

// Close shuts the Lua state down. Script failures surface through
// Err, not here.
func (s *Script) Close() error {
	s.state.Close()
	return nil
}

// Err returns the script failure that ended playback, if any.
func (s *Script) Err() error {
	return s.err
}

func batchFromTable(tbl *lua.LTable) Batch {
	var b Batch
	eachEntry(tbl, "keys", func(entry *lua.LTable) {
		b.Keys = append(b.Keys, keyboard.Event{
			ScanCode:   uint32(lua.LVAsNumber(entry.RawGetString("sc"))),
			Code:       key.FromName(lua.LVAsString(entry.RawGetString("code"))),
			Transition: input.TransitionFromName(lua.LVAsString(entry.RawGetString("t"))),
		})
	})
	eachEntry(tbl, "mouse", func(entry *lua.LTable) {
		b.Mouse = append(b.Mouse, mouse.Event{
			X:          int(lua.LVAsNumber(entry.RawGetString("x"))),
			Y:          int(lua.LVAsNumber(entry.RawGetString("y"))),
			Button:     mouse.ButtonFromName(lua.LVAsString(entry.RawGetString("button"))),
			Transition: input.TransitionFromName(lua.LVAsString(entry.RawGetString("t"))),
		})
	})
	eachEntry(tbl, "pads", func(entry *lua.LTable) {
		b.Pads = append(b.Pads, gamepad.Event{
			Button:     gamepad.ButtonFromName(lua.LVAsString(entry.RawGetString("button"))),
			Transition: input.TransitionFromName(lua.LVAsString(entry.RawGetString("t"))),
		})
	})
	return b
}

// eachEntry walks the named array field, skipping entries that are
// not tables.
func eachEntry(tbl *lua.LTable, field string, fn func(*lua.LTable)) {
	arr, ok := tbl.RawGetString(field).(*lua.LTable)
	if !ok {
		return
	}
	arr.ForEach(func(_, v lua.LValue) {
		if entry, ok := v.(*lua.LTable); ok {
			fn(entry)
		}
	})
}
