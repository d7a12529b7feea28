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

// Package keyboard implements the C64 keyboard. The keyboard is a matrix of
// eight columns and eight rows connected to the two ports of CIA1. The KERNAL
// scans the keyboard by pulling one column low through port A and reading the
// rows through port B. A pressed key connects its column and its row so the
// matrix can also be scanned the other way round.
//
// The RESTORE key is not part of the matrix. It is connected to the NMI line
// of the CPU.
package keyboard
