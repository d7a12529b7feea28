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

// Package drive emulates the Commodore 1541 disk drive.
//
// The 1541 is a computer in its own right. It has a 6502, 2KB of RAM, 16KB of
// DOS ROM and two 6522 VIAs. The first VIA is connected to the serial bus and
// the second VIA controls the mechanism: the stepper motor, the spindle motor,
// the LED and the read/write head.
//
// The drive CPU runs at 1MHz. The drive is advanced in system cycles and the
// difference in clock speed is accounted for with a fractional accumulator.
// The drive CPU executes whole instructions and may run ahead of the system
// clock by the length of one instruction. The excess is owed by the next call
// to Advance().
//
// The head reads and writes the bit level GCR tracks of a media.Disk. The
// rate at which bits pass under the head is selected by the density bits of
// the second VIA. A run of ten or more one bits is a SYNC mark and every eight
// bits following a SYNC mark make a byte. The byte ready signal is connected
// to CA1 of the second VIA and to the SO pin of the CPU.
package drive
