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

// Package macro drives the emulation from a Lua script. The script runs on
// the goroutine that owns the machine and the emulation only advances while
// the script is waiting.
//
// Functions are provided in the c64 table:
//
//	c64.wait([frames])             run the emulation (default 50 frames)
//	c64.type(text)                 type text through the KERNAL keyboard buffer
//	c64.press(key, [frames])       hold a key for a number of frames (default 2)
//	c64.restore()                  press and release the RESTORE key
//	c64.joystick(port, dir, fire)  set joystick state. dir is "up+left" etc.
//	c64.peek(address)              read memory as the CPU sees it
//	c64.poke(address, value)       write memory as the CPU sees it
//	c64.screenshot(filename)       save the most recent frame
//	c64.snapshot(filename)         save a snapshot of the machine
//	c64.frame()                    the current frame number
//	c64.cycles()                   the current cycle count
//	c64.reset([hard])              reset the machine
//	c64.log(message)               add a message to the log
//
// Key names are the names used by the keyboard package, for example "return"
// or "runstop". An error in a script ends the script and is returned by
// Run().
package macro
