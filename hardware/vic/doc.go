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

// Package vic emulates the VIC-II video chip. The 6569 (PAL) and the 6567R8
// (NTSC) are supported, the difference between them being the frame geometry
// described by the specification package.
//
// The VIC is stepped once per system clock cycle and produces eight pixels
// for every cycle inside the visible window. Memory accesses happen in the
// cycles documented by Christian Bauer's "The MOS 6567/6569 video controller
// (VIC-II) and its application in the Commodore 64":
//
//	c-accesses (video matrix and colour RAM) in cycles 15 to 54 of a bad line
//	g-accesses (character, bitmap or idle data) in cycles 16 to 55
//	p and s-accesses for sprites 0 to 2 in cycles 58 to 63
//	p and s-accesses for sprites 3 to 7 in cycles 1 to 10
//
// Cycles are numbered from one. The BA line is pulled low three cycles before
// the VIC needs the bus, which is when the CPU must stop on its next read
// cycle. The machine reads BA after every Step() and drives the RDY line of
// the CPU with it.
//
// Completed frames are double buffered. CurrentFrameBuffer() returns the last
// completed frame and HandOff() returns a copy of it from a recycling pool,
// suitable for passing to another goroutine.
package vic
