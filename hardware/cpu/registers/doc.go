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

// Package registers implements the registers of the 6502 family of CPUs. The
// Register type is used for the accumulator and the index registers and
// provides the arithmetic and logical operations of the instruction set. The
// ProgramCounter, StackPointer and StatusRegister types are the special
// purpose registers.
//
// Arithmetic functions return the carry and overflow conditions but do not
// alter the status register. It is the job of the CPU to decide which flags
// are affected by an operation.
package registers
