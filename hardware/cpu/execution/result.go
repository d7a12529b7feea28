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

package execution

import (
	"fmt"

	"github.com/technic0/Ready/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt sequence, if any, that was serviced
// instead of an instruction.
type Interrupt int

// List of interrupt types.
const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return ""
}

// Result records the state/result of the last CPU step. The
// InstructionData field is zero for implied instructions.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition. nil if the step was an interrupt sequence
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in
	// the case of ZeroPageIndexedX, this is the base zero page address before
	// indexing
	InstructionData uint16

	// the actual number of cycles taken by the instruction. this does not
	// include any cycles the CPU spent waiting on the RDY line
	Cycles int

	// the number of cycles the CPU was held by the RDY line
	Stalled int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path (in the CPU) was triggered
	CPUBug string

	// the non-fatal error message from the memory bus
	Error string

	// whether branch instruction test passed (ie. branched) or not
	BranchSuccess bool

	// the interrupt sequence that was performed, if any
	Interrupt Interrupt

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// TotalCycles is the number of system cycles that elapsed during the step.
func (r Result) TotalCycles() int {
	return r.Cycles + r.Stalled
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04x\t%s\t[%d]", r.Address, r.Interrupt, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x\t???", r.Address)
	}

	var data string
	switch r.Defn.Bytes {
	case 2:
		data = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	case instructions.Indirect:
		data = fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		data = fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		data = fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		data = fmt.Sprintf("%s,Y", data)
	}

	s := fmt.Sprintf("%04x\t%s\t%s\t[%d]", r.Address, r.Defn.Operator, data, r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s page-fault", s)
	}
	if r.CPUBug != "" {
		s = fmt.Sprintf("%s * %s *", s, r.CPUBug)
	}
	return s
}
