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

package cpu

import (
	"errors"
	"fmt"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware/cpu/execution"
	"github.com/technic0/Ready/hardware/cpu/instructions"
	"github.com/technic0/Ready/hardware/cpu/registers"
	"github.com/technic0/Ready/hardware/memory/cpubus"
	"github.com/technic0/Ready/logger"
)

// InterruptLine identifies the source of an interrupt request. Each source
// owns one bit and the line is asserted while any source bit is set.
type InterruptLine uint8

// CPU implements the 6502 family of CPUs.
type CPU struct {
	perm logger.Permission

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// cycleCallback is called for additional emulator functionality
	cycleCallback func() error

	// controls whether cpu completes a read cycle. write cycles always
	// complete
	RdyFlg bool

	// the sources currently asserting the IRQ and NMI lines
	irq InterruptLine
	nmi InterruptLine

	// the NMI line is edge triggered. the latch is set on the transition from
	// inactive to active and cleared when the interrupt sequence begins
	nmiLatch bool

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result

	// Interrupted indicates that the CPU has been put into a state outside of
	// its normal operation (a reset). Resets to false on every call to
	// ExecuteInstruction()
	Interrupted bool

	// whether the last memory access by the CPU was a phantom access
	PhantomMemAccess bool

	// the cpu has encountered a JAM instruction. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// permission argument is used for log entries and can be nil.
func NewCPU(perm logger.Permission, mem cpubus.Memory) *CPU {
	mc := &CPU{
		perm:         perm,
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb CPU into a new memory bus.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset CPU. The program counter is not loaded from the reset vector. Call
// LoadPCIndirect(cpubus.Reset) for that.
//
// The interrupt lines are not changed because they are owned by the sources
// that assert them.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Interrupted = true
	mc.Killed = false
	mc.nmiLatch = false

	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()
	mc.RdyFlg = true
	mc.cycleCallback = nil
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && mc.LastResult.Defn == nil && mc.LastResult.Interrupt == execution.NoInterrupt
}

// AtBoundary returns true if the CPU is between instructions.
func (mc *CPU) AtBoundary() bool {
	return mc.LastResult.Final || mc.Interrupted || mc.Killed
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	mc.PhantomMemAccess = false

	if !mc.AtBoundary() {
		return curated.Errorf("cpu: load PC indirect invalid mid-instruction")
	}

	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}

	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if !mc.AtBoundary() {
		return curated.Errorf("cpu: load PC invalid mid-instruction")
	}

	mc.PC.Load(directAddress)

	return nil
}

// SetIRQ asserts or releases the IRQ line on behalf of the source. The line
// is level triggered.
func (mc *CPU) SetIRQ(source InterruptLine, asserted bool) {
	if asserted {
		mc.irq |= source
	} else {
		mc.irq &^= source
	}
}

// SetNMI asserts or releases the NMI line on behalf of the source. The NMI is
// latched on the transition of the line from inactive to active.
func (mc *CPU) SetNMI(source InterruptLine, asserted bool) {
	active := mc.nmi != 0
	if asserted {
		mc.nmi |= source
	} else {
		mc.nmi &^= source
	}
	if !active && mc.nmi != 0 {
		mc.nmiLatch = true
	}
}

// IRQ returns true if the IRQ line is asserted by any source.
func (mc *CPU) IRQ() bool {
	return mc.irq != 0
}

// NMI returns true if the NMI line is asserted by any source.
func (mc *CPU) NMI() bool {
	return mc.nmi != 0
}

// SetOverflow emulates the SO pin. The overflow flag is set.
func (mc *CPU) SetOverflow() {
	mc.Status.Overflow = true
}

// cycle ends the current CPU cycle.
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// waitRDY holds the CPU until the RDY line is high. only called before read
// cycles.
func (mc *CPU) waitRDY() error {
	for !mc.RdyFlg {
		mc.LastResult.Stalled++
		if err := mc.cycleCallback(); err != nil {
			return err
		}
	}
	return nil
}

func (mc *CPU) read8Bit(address uint16, phantom bool) (uint8, error) {
	if err := mc.waitRDY(); err != nil {
		return 0, err
	}

	mc.PhantomMemAccess = phantom

	val, err := mc.mem.Read(address)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return 0, err
		}
		mc.LastResult.Error = err.Error()
	}

	// +1 cycle
	if err := mc.cycle(); err != nil {
		return 0, err
	}

	return val, nil
}

// write8Bit does not end the cycle. the caller is responsible for that.
func (mc *CPU) write8Bit(address uint16, value uint8, phantom bool) error {
	mc.PhantomMemAccess = phantom

	err := mc.mem.Write(address, value)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}

	return nil
}

func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address, false)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(address+1, false)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage reads a pointer from the zero page. the high byte wraps
// around to the start of the zero page.
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address), false)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(uint16(address+1), false)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	if err := mc.waitRDY(); err != nil {
		return err
	}

	mc.PhantomMemAccess = false

	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}

	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case brk:
		// BRK advances the PC by two but the padding byte is not counted as
		// part of the instruction
		mc.LastResult.ByteCount--

	case newOpcode:
		mc.LastResult.Defn = mc.instructions[v]

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	return mc.cycle()
}

func (mc *CPU) read16BitPC() error {
	if err := mc.read8BitPC(loNibble); err != nil {
		return err
	}
	return mc.read8BitPC(hiNibble)
}

// push value onto the stack. one cycle.
func (mc *CPU) push(value uint8) error {
	if err := mc.write8Bit(mc.SP.Address(), value, false); err != nil {
		return err
	}
	mc.SP.Push()
	return mc.cycle()
}

// pull value from the stack. one cycle.
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Pop()
	return mc.read8Bit(mc.SP.Address(), false)
}

func (mc *CPU) branch(flag bool, address uint16) error {
	// the operand is a signed 8 bit value. propagate the sign into the most
	// significant byte
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	mc.LastResult.BranchSuccess = flag

	if flag {
		oldPC := mc.PC.Address()

		// phantom read
		// +1 cycle
		_, err := mc.read8Bit(oldPC, true)
		if err != nil {
			return err
		}

		newPC := oldPC + address

		// the LSB of the PC is updated first. the MSB is corrected in an
		// additional cycle if necessary
		mc.LastResult.PageFault = oldPC&0xff00 != newPC&0xff00
		if mc.LastResult.PageFault {
			// phantom read
			// +1 cycle
			_, err := mc.read8Bit(oldPC&0xff00|newPC&0x00ff, true)
			if err != nil {
				return err
			}
		}

		mc.PC.Load(newPC)
	}

	return nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// interruptPending returns the interrupt that will be serviced at the next
// instruction boundary, if any. NMI has priority.
func (mc *CPU) interruptPending() execution.Interrupt {
	if mc.nmiLatch {
		return execution.NMI
	}
	if mc.irq != 0 && !mc.Status.InterruptDisable {
		return execution.IRQ
	}
	return execution.NoInterrupt
}

// the seven cycle interrupt sequence.
func (mc *CPU) interrupt(kind execution.Interrupt) error {
	mc.LastResult.Interrupt = kind

	// two phantom reads of the PC. the PC is not incremented
	// +2 cycles
	for range 2 {
		if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
			return err
		}
	}

	// +3 cycles
	if err := mc.push(uint8(mc.PC.Address() >> 8)); err != nil {
		return err
	}
	if err := mc.push(uint8(mc.PC.Address())); err != nil {
		return err
	}
	if err := mc.push(mc.Status.Value() &^ 0x10); err != nil {
		return err
	}

	mc.Status.InterruptDisable = true

	vector := cpubus.IRQ
	if kind == execution.NMI {
		vector = cpubus.NMI
		mc.nmiLatch = false
	}

	// +2 cycles
	address, err := mc.read16Bit(vector)
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	mc.LastResult.Final = true

	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run, thereby allowing the rest of the machine
// to operate.
//
// If an interrupt is pending then the interrupt sequence is run instead of an
// instruction.
//
// The cycleCallback argument should *never* be nil. Use the NilCycleCallback()
// function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if !mc.AtBoundary() {
		return curated.Errorf("cpu: starting a new instruction is invalid mid-instruction")
	}

	mc.Interrupted = false
	mc.cycleCallback = cycleCallback

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// a jammed CPU does nothing except let time pass
	if mc.Killed {
		mc.LastResult.Final = true
		return mc.cycle()
	}

	if kind := mc.interruptPending(); kind != execution.NoInterrupt {
		return mc.interrupt(kind)
	}

	// +1 cycle
	err := mc.read8BitPC(newOpcode)
	if err != nil {
		mc.LastResult.ByteCount = 1
		mc.LastResult.Final = true
		return err
	}

	defn := mc.LastResult.Defn

	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address uint16

	// the high byte of the base address before indexing. used by the
	// undocumented SHA, SHX, SHY and TAS instructions
	var baseHi uint8

	// value is read from the program for immediate/relative mode, and from
	// non-program memory for all other modes. for read-modify-write
	// instructions the value will change during execution and be written back
	// to memory
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		if defn.Operator == instructions.Brk {
			// BRK is unusual in that it increases the PC by two bytes despite
			// being an implied addressing instruction
			// +1 cycle
			err = mc.read8BitPC(brk)
		} else {
			// phantom read of the next byte. the PC is not incremented
			// +1 cycle
			_, err = mc.read8Bit(mc.PC.Address(), true)
		}
		if err != nil {
			return err
		}

	case instructions.Immediate:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// most of the addressing cycles for this addressing mode are consumed
		// in the branch() function
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		// JSR reads its operand differently and is handled in the operator
		// switch below
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			err = mc.read16BitPC()
			if err != nil {
				return err
			}
			address = mc.LastResult.InstructionData
		}

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// only used by JMP
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		// the high byte of the pointer is always read from the same page as
		// the low byte
		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = "indirect addressing bug (JMP bug)"
		}

		// +2 cycles
		var lo, hi uint8
		lo, err = mc.read8Bit(indirectAddress, false)
		if err != nil {
			return err
		}
		hi, err = mc.read8Bit(indirectAddress&0xff00|(indirectAddress+1)&0x00ff, false)
		if err != nil {
			return err
		}
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		_, err = mc.read8Bit(uint16(indirectAddress), true)
		if err != nil {
			return err
		}

		// indexing wraps around the zero page
		// +2 cycles
		address, err = mc.read16BitZeroPage(indirectAddress + mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// +2 cycles
		var base uint16
		base, err = mc.read16BitZeroPage(uint8(mc.LastResult.InstructionData))
		if err != nil {
			return err
		}

		address, err = mc.indexed(defn, base, mc.Y.Value())
		if err != nil {
			return err
		}
		baseHi = uint8(base >> 8)

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		base := mc.LastResult.InstructionData

		address, err = mc.indexed(defn, base, mc.X.Value())
		if err != nil {
			return err
		}
		baseHi = uint8(base >> 8)

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		base := mc.LastResult.InstructionData

		address, err = mc.indexed(defn, base, mc.Y.Value())
		if err != nil {
			return err
		}
		baseHi = uint8(base >> 8)

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// phantom read from base address before index adjustment
		// +1 cycle
		_, err = mc.read8Bit(mc.LastResult.InstructionData, true)
		if err != nil {
			return err
		}

		index := mc.X.Value()
		if defn.AddressingMode == instructions.ZeroPageIndexedY {
			index = mc.Y.Value()
		}

		// indexing never leaves the zero page
		address = uint16(uint8(mc.LastResult.InstructionData) + index)

	default:
		return curated.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory using the address found in the switch above.
	// implied and immediate instructions have no address. write and flow
	// instructions use the address in their own specific ways
	if defn.AddressingMode != instructions.Implied && defn.AddressingMode != instructions.Immediate {
		switch defn.Effect {
		case instructions.Read:
			// +1 cycle
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}

		case instructions.RMW:
			// +1 cycle
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}

			// the unmodified value is written back while the modification
			// takes place
			// +1 cycle
			err = mc.write8Bit(address, value, true)
			if err != nil {
				return err
			}
			err = mc.cycle()
			if err != nil {
				return err
			}
		}
	}

	value, err = mc.operate(defn, address, baseHi, value)
	if err != nil {
		return err
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		err = mc.write8Bit(address, value, false)
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}
	}

	mc.LastResult.Final = true

	return nil
}

// indexed adds the index to the base address and performs the phantom read
// that happens when the page is crossed (or always for write and RMW
// instructions).
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, index uint8) (uint16, error) {
	address := base + uint16(index)
	crossed := base&0xff00 != address&0xff00

	mc.LastResult.PageFault = defn.PageSensitive && crossed
	if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
		// phantom read from the address before the MSB is fixed
		// +1 cycle
		_, err := mc.read8Bit(base&0xff00|address&0x00ff, true)
		if err != nil {
			return 0, err
		}
	}

	return address, nil
}
