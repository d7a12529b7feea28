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

// Package memorymap describes how the C64 address space is divided between
// RAM, the ROMs and the I/O area. The layout depends on the bank selector,
// which is the value of the three low bits of the 6510 processor port (LORAM,
// HIRAM and CHAREN).
//
// The cartridge lines (GAME and EXROM) are not emulated and are assumed to
// be high.
package memorymap
