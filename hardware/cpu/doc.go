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

// Package cpu emulates the 6502 family of microprocessors. The C64 uses the
// 6510, which is a 6502 with an I/O port at addresses $00 and $01. The I/O
// port is handled by the memory package and so this package is used for both
// the 6510 and for the 6502 in the 1541 disk drive.
//
// Execution is cycle stepped from the inside out. ExecuteInstruction() is
// called with a callback function which is run at the end of every CPU cycle.
// The rest of the machine is advanced in that callback and so every bus access
// made by the CPU sees the rest of the machine in the correct state.
//
// Interrupt lines are sampled at instruction boundaries only. If an interrupt
// is pending when ExecuteInstruction() is called then the seven cycle
// interrupt sequence is performed instead of an instruction.
//
// The RDY line is represented by the RdyFlg field. While RdyFlg is false the
// CPU will not complete a read cycle and waits, calling the cycle callback
// each time. Write cycles are unaffected. This is how the VIC-II steals
// cycles from the CPU during bad lines and sprite fetches.
//
// The undocumented opcodes are implemented according to the NMOS 6510
// reference in "No More Secrets". The unstable ANE and LXA instructions use
// the magic constant $EE.
package cpu
