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

// Package memory implements the C64 memory bus. It routes CPU accesses to RAM,
// to the BASIC, KERNAL and character ROMs, and to the chips mapped into the
// I/O area. The routing depends on the bank selector, which is controlled by
// the 6510 processor port at addresses $00 and $01 (see the memorymap
// package).
//
// The VIC-II has its own view of memory. It sees a 16KB bank of RAM selected
// by the CIA2 and the character ROM in banks zero and two. The VIC-II view is
// provided by the VICRead() and ColourRead() functions.
//
// Chips in the I/O area implement the IODevice interface and are attached to
// one or more pages with the AttachIO() function.
package memory
