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

package macro_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/hardwaretest"
	"github.com/technic0/Ready/hardware/peripherals"
	"github.com/technic0/Ready/hardware/peripherals/joystick"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
	"github.com/technic0/Ready/hardware/vic"
	"github.com/technic0/Ready/macro"
	"github.com/technic0/Ready/screenshot"
	"github.com/technic0/Ready/test"
)

func script(t *testing.T, lua string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "macro.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(lua), 0o644))
	return fn
}

func run(t *testing.T, m *hardware.Machine, lua string, opts macro.Options) error {
	t.Helper()
	mcr, err := macro.NewMacro(script(t, lua), m, opts)
	test.DemandSuccess(t, err)
	return mcr.Run()
}

func TestMemoryAndFrames(t *testing.T) {
	m := hardwaretest.NewMachine(t, false)

	err := run(t, m, `
c64.poke(0x1000, 0x42)
assert(c64.peek(0x1000) == 0x42)
c64.wait(2)
assert(c64.frame() == 2)
assert(c64.cycles() > 0)
c64.log("done")
`, macro.Options{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Mem.PeekRAM(0x1000), uint8(0x42))
	test.ExpectEquality(t, m.VIC.FrameNum(), uint64(2))
}

func TestInput(t *testing.T) {
	m := hardwaretest.NewMachine(t, false)

	err := run(t, m, `
c64.press("a", 1)
c64.joystick(2, "up+left", true)
c64.wait(1)
`, macro.Options{})
	test.ExpectSuccess(t, err)

	// press() releases the key
	test.ExpectEquality(t, m.Keyboard.Pressed(keyboard.A), false)

	j := m.Joystick(peripherals.Joystick2)
	test.ExpectEquality(t, j.Direction(), joystick.Up|joystick.Left)
	test.ExpectEquality(t, j.Fire(), true)

	test.ExpectFailure(t, run(t, m, `c64.press("nosuchkey")`, macro.Options{}))
	test.ExpectFailure(t, run(t, m, `c64.joystick(3, "up")`, macro.Options{}))
	test.ExpectFailure(t, run(t, m, `c64.joystick(1, "sideways")`, macro.Options{}))
}

func TestType(t *testing.T) {
	m := hardwaretest.NewMachine(t, false)
	m.Mem.PokeRAM(0xc6, 0)

	err := run(t, m, `c64.type("run\n")`, macro.Options{})
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, m.Mem.PeekRAM(0xc6), uint8(4))
	test.ExpectEquality(t, m.Mem.PeekRAM(0x0277), uint8('R'))
	test.ExpectEquality(t, m.Mem.PeekRAM(0x0278), uint8('U'))
	test.ExpectEquality(t, m.Mem.PeekRAM(0x0279), uint8('N'))
	test.ExpectEquality(t, m.Mem.PeekRAM(0x027a), uint8(0x0d))

	test.ExpectFailure(t, run(t, m, `c64.type("{")`, macro.Options{}))
}

func TestFiles(t *testing.T) {
	m := hardwaretest.NewMachine(t, false)

	var grabber screenshot.Grabber
	m.SetCallbacks(hardware.Callbacks{
		OnFrameReady: func(f *vic.Frame) {
			grabber.NewFrame(f)
			f.Release()
		},
	})

	dir := t.TempDir()
	png := filepath.Join(dir, "shot.png")
	snp := filepath.Join(dir, "machine.snp")

	var frames int
	err := run(t, m, `
c64.wait(1)
c64.screenshot("`+png+`")
c64.snapshot("`+snp+`")
`, macro.Options{
		Grabber: &grabber,
		OnFrame: func() error {
			frames++
			return nil
		},
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 1)

	_, err = os.Stat(png)
	test.ExpectSuccess(t, err)
	_, err = os.Stat(snp)
	test.ExpectSuccess(t, err)

	// screenshot is not possible without a grabber
	test.ExpectFailure(t, run(t, m, `c64.screenshot("x.png")`, macro.Options{}))
}

func TestQuit(t *testing.T) {
	m := hardwaretest.NewMachine(t, false)

	mcr, err := macro.NewMacro(script(t, `c64.wait(1000)`), m, macro.Options{})
	test.DemandSuccess(t, err)

	mcr.Quit()
	test.ExpectSuccess(t, mcr.Run())
	test.ExpectEquality(t, m.VIC.FrameNum(), uint64(0))
}

func TestScriptError(t *testing.T) {
	m := hardwaretest.NewMachine(t, false)
	test.ExpectFailure(t, run(t, m, `error("oops")`, macro.Options{}))
	test.ExpectFailure(t, run(t, m, `this is not lua`, macro.Options{}))
}
