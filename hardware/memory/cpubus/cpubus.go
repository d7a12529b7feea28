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

// Package cpubus defines the interface between a CPU and the memory it is
// attached to. Both the C64 memory and the 1541 drive memory implement the
// Memory interface.
package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. Every read and write is a single bus cycle with side effects (register
// reads can clear latches, for example).
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is returned by a Memory implementation for an access that
// the hardware tolerates but which indicates a probable program error. The
// CPU records the error in its Result and continues.
var AddressError = errors.New("address error")

// Vectors for the 6502 family.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares the IRQ vector
	BRK = IRQ
)

// Stack is the page containing the CPU stack.
const Stack = uint16(0x0100)
