// This file is part of Ready.
//
// Ready is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ready is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ready.  If not, see <https://www.gnu.org/licenses/>.

package macro

import (
	"sync/atomic"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/input"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
	"github.com/technic0/Ready/logger"
	"github.com/technic0/Ready/screenshot"
	"github.com/technic0/Ready/snapshot"
	lua "github.com/yuin/gopher-lua"
)

// Options for a macro.
type Options struct {
	// source of frames for the screenshot function. can be nil in which case
	// the screenshot function will fail
	Grabber *screenshot.Grabber

	// called after every frame run by the macro. can be nil
	OnFrame func() error

	// how screenshots are saved
	Screenshot screenshot.Options
}

// Macro allows control of an emulation from a Lua script.
type Macro struct {
	m    *hardware.Machine
	opts Options

	filename string

	quit atomic.Bool
}

// the sentinal value raised in the script when Quit() has been called
const quitMacro = "macro: quit"

// the default number of frames for the wait and press functions
const (
	defaultWait  = 50
	defaultPress = 2
)

// NewMacro is the preferred method of initialisation for the Macro type.
func NewMacro(filename string, m *hardware.Machine, opts Options) (*Macro, error) {
	if m == nil {
		return nil, curated.Errorf("macro: no machine")
	}
	return &Macro{
		m:        m,
		opts:     opts,
		filename: filename,
	}, nil
}

// Quit forces a running macro to end at the next frame. Safe to call from any
// goroutine.
func (mcr *Macro) Quit() {
	mcr.quit.Store(true)
}

// Run the macro to completion.
func (mcr *Macro) Run() error {
	L := lua.NewState()
	defer L.Close()

	tbl := L.NewTable()
	L.SetFuncs(tbl, map[string]lua.LGFunction{
		"wait":       mcr.luaWait,
		"type":       mcr.luaType,
		"press":      mcr.luaPress,
		"restore":    mcr.luaRestore,
		"joystick":   mcr.luaJoystick,
		"peek":       mcr.luaPeek,
		"poke":       mcr.luaPoke,
		"screenshot": mcr.luaScreenshot,
		"snapshot":   mcr.luaSnapshot,
		"frame":      mcr.luaFrame,
		"cycles":     mcr.luaCycles,
		"reset":      mcr.luaReset,
		"log":        mcr.luaLog,
	})
	L.SetGlobal("c64", tbl)

	logger.Logf(mcr.m.Env(), "macro", "running %s", mcr.filename)

	err := L.DoFile(mcr.filename)
	if mcr.quit.Load() {
		logger.Logf(mcr.m.Env(), "macro", "%s ended early", mcr.filename)
		return nil
	}
	if err != nil {
		return curated.Errorf("macro: %v", err)
	}

	return nil
}

// run the emulation for a number of frames
func (mcr *Macro) wait(L *lua.LState, frames int) {
	for range frames {
		if mcr.quit.Load() {
			L.RaiseError(quitMacro)
		}
		if err := mcr.m.RunFrame(); err != nil {
			L.RaiseError("%v", err)
		}
		if mcr.opts.OnFrame != nil {
			if err := mcr.opts.OnFrame(); err != nil {
				L.RaiseError("%v", err)
			}
		}
	}
}

// apply input event to the machine
func (mcr *Macro) event(L *lua.LState, ev input.Event) {
	if _, err := mcr.m.Input.HandleEvent(ev); err != nil {
		L.RaiseError("%v", err)
	}
}

func (mcr *Macro) luaWait(L *lua.LState) int {
	mcr.wait(L, L.OptInt(1, defaultWait))
	return 0
}

func (mcr *Macro) luaPress(L *lua.LState) int {
	name := L.CheckString(1)
	k, ok := keyboard.LookupKey(name)
	if !ok {
		L.ArgError(1, "unknown key")
	}

	mcr.event(L, input.Event{Kind: input.KeyDown, Key: k})
	mcr.wait(L, L.OptInt(2, defaultPress))
	mcr.event(L, input.Event{Kind: input.KeyUp, Key: k})

	return 0
}

func (mcr *Macro) luaRestore(L *lua.LState) int {
	mcr.event(L, input.Event{Kind: input.Restore, Pressed: true})
	mcr.wait(L, defaultPress)
	mcr.event(L, input.Event{Kind: input.Restore, Pressed: false})
	return 0
}

func (mcr *Macro) luaJoystick(L *lua.LState) int {
	port := L.CheckInt(1)
	if port != 1 && port != 2 {
		L.ArgError(1, "joystick port must be 1 or 2")
	}

	text := "joystick:joystick1:"
	if port == 2 {
		text = "joystick:joystick2:"
	}
	text += L.OptString(2, "centre")
	if L.OptBool(3, false) {
		text += ":fire"
	}

	var ev input.Event
	if err := ev.UnmarshalText([]byte(text)); err != nil {
		L.ArgError(2, err.Error())
	}
	mcr.event(L, ev)

	return 0
}

func (mcr *Macro) luaPeek(L *lua.LState) int {
	addr := L.CheckInt(1)
	v, err := mcr.m.Mem.Peek(uint16(addr))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (mcr *Macro) luaPoke(L *lua.LState) int {
	addr := L.CheckInt(1)
	v := L.CheckInt(2)
	if err := mcr.m.Mem.Poke(uint16(addr), uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (mcr *Macro) luaScreenshot(L *lua.LState) int {
	filename := L.CheckString(1)
	if mcr.opts.Grabber == nil {
		L.RaiseError("screenshot: not available")
	}
	if err := mcr.opts.Grabber.Save(filename, mcr.opts.Screenshot); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (mcr *Macro) luaSnapshot(L *lua.LState) int {
	filename := L.CheckString(1)
	s, err := snapshot.Capture(mcr.m)
	if err != nil {
		L.RaiseError("%v", err)
	}
	if err := s.Save(filename); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (mcr *Macro) luaFrame(L *lua.LState) int {
	L.Push(lua.LNumber(mcr.m.VIC.FrameNum()))
	return 1
}

func (mcr *Macro) luaCycles(L *lua.LState) int {
	L.Push(lua.LNumber(mcr.m.Cycles()))
	return 1
}

func (mcr *Macro) luaReset(L *lua.LState) int {
	var err error
	if L.OptBool(1, false) {
		err = mcr.m.Reset()
	} else {
		err = mcr.m.SoftReset()
	}
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (mcr *Macro) luaLog(L *lua.LState) int {
	logger.Log(mcr.m.Env(), "macro", L.CheckString(1))
	return 0
}
