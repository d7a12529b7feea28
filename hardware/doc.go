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

// Package hardware is the base package for the C64 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the sub-systems. The emulation can be run continuously with Run(), a
// frame at a time with RunFrame() or an instruction at a time with Step().
//
// Every sub-system is advanced one cycle at a time from inside the CPU's
// cycle callback. When Step() returns, every sub-system has been advanced by
// exactly the number of cycles the instruction took, in cycle order.
//
// Only Stop() and Input.PushEvent() are safe to call from a goroutine other
// than the one running the machine.
package hardware
