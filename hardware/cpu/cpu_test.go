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

package cpu_test

import (
	"testing"

	"github.com/technic0/Ready/hardware/cpu"
	"github.com/technic0/Ready/hardware/cpu/execution"
	"github.com/technic0/Ready/hardware/cpu/instructions"
	"github.com/technic0/Ready/hardware/memory/cpubus"
	"github.com/technic0/Ready/test"
)

const origin = uint16(0x0200)

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	o := mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIZc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")

	// PHP; PLP
	mem.putInstructions(o, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	// the break flag is set in the pushed value
	mem.assert(t, 0x01fd, 0x36)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)

	// LDA immediate; ADC immediate
	o := mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	o = mem.putInstructions(o, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), 3)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// SED; LDA #$09; CLC; ADC #$01; CLD
	mem.putInstructions(o, 0xf8, 0xa9, 0x09, 0x18, 0x69, 0x01, 0xd8)
	step(t, mc) // SED
	step(t, mc) // LDA #$09
	step(t, mc) // CLC
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	step(t, mc) // CLD
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)

	// ORA immediate; EOR immediate; AND immediate
	mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzc")
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)

	// pointers in the zero page
	mem.putVector(0x80, 0x0410)
	mem.putVector(0x85, 0x0500)

	// LDA #$42; STA $0300; LDX #$05; STA $0300,X; LDY #$02; STA ($80),Y; STA ($80,X)
	mem.putInstructions(origin, 0xa9, 0x42, 0x8d, 0x00, 0x03, 0xa2, 0x05, 0x9d, 0x00, 0x03,
		0xa0, 0x02, 0x91, 0x80, 0x81, 0x80)
	step(t, mc) // LDA #$42
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	mem.assert(t, 0x0300, 0x42)
	step(t, mc) // LDX #$05
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x0305, 0x42)
	step(t, mc) // LDY #$02
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x0412, 0x42)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x0500, 0x42)
}

func testZeroPageWrap(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)

	mem.internal[0x08] = 0x99

	// the high byte of the pointer is read from $00
	mem.internal[0xff] = 0x00
	mem.internal[0x00] = 0x06
	mem.internal[0x0600] = 0x77

	// LDX #$10; LDA $F8,X; LDY #$00; LDA ($FF),Y
	mem.putInstructions(origin, 0xa2, 0x10, 0xb5, 0xf8, 0xa0, 0x00, 0xb1, 0xff)
	step(t, mc) // LDX #$10
	step(t, mc) // LDA $F8,X
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	step(t, mc) // LDY #$00
	step(t, mc) // LDA ($FF),Y
	test.ExpectEquality(t, mc.A.Value(), 0x77)
}

func testPageFaults(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)

	mem.internal[0x0300] = 0xaa

	// LDX #$01; LDA $02FF,X; LDA $0200,X; STA $0200,X
	mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0xff, 0x02, 0xbd, 0x00, 0x02, 0x9d, 0x00, 0x02)
	step(t, mc) // LDX #$01
	r := step(t, mc)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.A.Value(), 0xaa)
	r = step(t, mc)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 4)

	// write instructions always take the extra cycle but it is not a page fault
	r = step(t, mc)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 5)
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)

	// LDA #$00; BEQ +2
	mem.putInstructions(origin, 0xa9, 0x00, 0xf0, 0x02)
	step(t, mc) // LDA #$00
	r := step(t, mc)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0206)

	// BNE is not taken
	mem.putInstructions(0x0206, 0xd0, 0x05)
	r = step(t, mc)
	test.ExpectEquality(t, r.BranchSuccess, false)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0208)

	// branching forward across a page
	test.DemandSuccess(t, mc.LoadPC(0x02f0))
	mem.putInstructions(0x02f0, 0xf0, 0x20)
	r = step(t, mc)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x0312)

	// branching backwards within a page
	mem.putInstructions(0x0312, 0xf0, 0xfc)
	r = step(t, mc)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0310)

	// branching backwards across a page
	mem.putInstructions(0x0310, 0xf0, 0xec)
	r = step(t, mc)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x02fe)
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)

	// JMP ($03FF) reads the high byte from $0300 and not $0400
	mem.internal[0x03ff] = 0x34
	mem.internal[0x0300] = 0x12
	mem.internal[0x0400] = 0x56
	mem.putInstructions(origin, 0x6c, 0xff, 0x03)
	r := step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectInequality(t, r.CPUBug, "")

	// JSR $0300; RTS
	reset(t, mc, mem, origin)
	mem.putInstructions(origin, 0x20, 0x00, 0x03)
	mem.putInstructions(0x0300, 0x60)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func testBreakAndReturn(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)
	mem.putVector(cpubus.BRK, 0x0400)

	// CLI; BRK
	mem.putInstructions(origin, 0x58, 0x00, 0xff)
	mem.putInstructions(0x0400, 0x40)
	step(t, mc) // CLI
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)

	// BRK skips the padding byte and pushes the status with the break flag set
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x03)
	mem.assert(t, 0x01fb, 0x32)

	// RTI
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.Status.InterruptDisable, false)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func testUndocumented(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)

	mem.internal[0x0300] = 0x81
	mem.internal[0x0302] = 0x43
	mem.internal[0x0303] = 0x0f
	mem.internal[0x0304] = 0x81

	// LAX $0300
	o := mem.putInstructions(origin, 0xaf, 0x00, 0x03)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectEquality(t, mc.X.Value(), 0x81)
	test.ExpectEquality(t, mc.Status.Sign, true)

	// SAX $0301
	mc.A.Load(0xf0)
	mc.X.Load(0x3c)
	o = mem.putInstructions(o, 0x8f, 0x01, 0x03)
	step(t, mc)
	mem.assert(t, 0x0301, 0x30)

	// DCP $0302
	mc.A.Load(0x42)
	o = mem.putInstructions(o, 0xcf, 0x02, 0x03)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x0302, 0x42)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// ISC $0303
	mc.A.Load(0x20)
	mc.Status.Carry = true
	o = mem.putInstructions(o, 0xef, 0x03, 0x03)
	step(t, mc)
	mem.assert(t, 0x0303, 0x10)
	test.ExpectEquality(t, mc.A.Value(), 0x10)

	// SLO $0304
	mc.A.Load(0x02)
	o = mem.putInstructions(o, 0x0f, 0x04, 0x03)
	step(t, mc)
	mem.assert(t, 0x0304, 0x02)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.A.Value(), 0x02)

	// ANC #$80
	mc.A.Load(0xff)
	o = mem.putInstructions(o, 0x0b, 0x80)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Sign, true)

	// SBX #$01
	mc.A.Load(0x0f)
	mc.X.Load(0x03)
	mem.putInstructions(o, 0xcb, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.Carry, true)
}

func testJam(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(t, mc, mem, origin)
	mem.putInstructions(origin, 0x02)

	step(t, mc)
	test.ExpectEquality(t, mc.Killed, true)

	// a jammed CPU lets time pass but does nothing else
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.LastResult.Cycles, 1)
	test.ExpectEquality(t, mc.PC.Address(), origin+1)

	mc.Reset()
	test.ExpectEquality(t, mc.Killed, false)
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)

	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testZeroPageWrap(t, mc, mem)
	testPageFaults(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testBreakAndReturn(t, mc, mem)
	testUndocumented(t, mc, mem)
	testJam(t, mc, mem)
}

func TestResetVector(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)

	mem.putVector(cpubus.Reset, 0xe000)

	// LDX #$FF; TXS; LDA #$37
	mem.putInstructions(0xe000, 0xa2, 0xff, 0x9a, 0xa9, 0x37)

	mc.Reset()
	test.DemandSuccess(t, mc.LoadPCIndirect(cpubus.Reset))
	test.ExpectEquality(t, mc.PC.Address(), 0xe000)

	var cycles int
	for range 3 {
		r := step(t, mc)
		cycles += r.Cycles
	}

	test.ExpectEquality(t, cycles, 6)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.A.Value(), 0x37)
	test.ExpectEquality(t, mc.PC.Address(), 0xe005)
}

func TestInterrupts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	reset(t, mc, mem, origin)

	const source = cpu.InterruptLine(0x01)

	mem.putVector(cpubus.IRQ, 0x0400)
	mem.putVector(cpubus.NMI, 0x0500)

	// CLI; NOP; NOP
	mem.putInstructions(origin, 0x58, 0xea, 0xea)
	mem.putInstructions(0x0400, 0xea)
	mem.putInstructions(0x0500, 0xea, 0xea)

	// the IRQ is masked until the CLI is executed
	mc.SetIRQ(source, true)
	r := step(t, mc) // CLI
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)

	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.IRQ)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// the return address is the instruction that was not executed. the
	// pushed status does not have the break flag set
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x01)
	mem.assert(t, 0x01fb, 0x22)

	// the line is still asserted but interrupts are now disabled
	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.PC.Address(), 0x0401)
	mc.SetIRQ(source, false)
	test.ExpectEquality(t, mc.IRQ(), false)

	// NMI is not masked and is edge triggered
	mc.SetNMI(source, true)
	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NMI)
	test.ExpectEquality(t, mc.PC.Address(), 0x0500)

	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.PC.Address(), 0x0501)

	// a second source on an already active line is not an edge
	mc.SetNMI(source<<1, true)
	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)

	mc.SetNMI(source, false)
	mc.SetNMI(source<<1, false)
	mc.SetNMI(source, true)
	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NMI)
}

func TestInterruptLatency(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	reset(t, mc, mem, origin)

	mem.putVector(cpubus.IRQ, 0x0400)

	// CLI; LDA $0300
	mem.putInstructions(origin, 0x58, 0xad, 0x00, 0x03)
	step(t, mc)

	// the IRQ is asserted in the middle of the LDA instruction
	var n int
	err := mc.ExecuteInstruction(func() error {
		n++
		if n == 2 {
			mc.SetIRQ(0x01, true)
		}
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	// serviced at the very next boundary
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.IRQ)
}

func TestRDY(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	reset(t, mc, mem, origin)

	// LDA $0300; STA $0300
	mem.putInstructions(origin, 0xad, 0x00, 0x03, 0x8d, 0x00, 0x03)

	// RDY goes low after the first cycle and is held for three cycles
	var n, held int
	err := mc.ExecuteInstruction(func() error {
		n++
		if n == 1 {
			mc.RdyFlg = false
			return nil
		}
		if !mc.RdyFlg {
			held++
			if held == 3 {
				mc.RdyFlg = true
			}
		}
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.LastResult.Stalled, 3)
	test.ExpectEquality(t, mc.LastResult.TotalCycles(), 7)
	test.DemandSuccess(t, mc.LastResult.IsValid())

	// RDY going low before a write cycle does not hold the CPU
	n = 0
	err = mc.ExecuteInstruction(func() error {
		n++
		if n == 3 {
			mc.RdyFlg = false
		}
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.LastResult.Stalled, 0)
	mc.RdyFlg = true
}

// every opcode must produce a result that is consistent with its definition,
// with and without page faults.
func TestAllOpcodes(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)

	for _, defn := range instructions.GetDefinitions() {
		if defn.Operator == instructions.Jam {
			continue
		}

		for _, index := range []uint8{0x00, 0xff} {
			reset(t, mc, mem, origin)
			mem.putVector(cpubus.BRK, 0x0400)
			mem.putInstructions(origin, defn.OpCode, 0x10, 0x20)
			mc.X.Load(index)
			mc.Y.Load(index)

			r := step(t, mc)
			test.ExpectEquality(t, r.Defn.OpCode, defn.OpCode)

			switch defn.Effect {
			case instructions.Flow, instructions.Subroutine, instructions.Interrupt:
			default:
				test.ExpectEquality(t, mc.PC.Address(), origin+uint16(defn.Bytes), defn)
			}
		}
	}
}

func TestState(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	reset(t, mc, mem, origin)

	// LDA #$80; LDX #$01
	mem.putInstructions(origin, 0xa9, 0x80, 0xa2, 0x01)
	step(t, mc)
	mc.SetNMI(0x02, true)
	s := mc.State()

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)

	mc.SetState(s)
	test.ExpectEquality(t, mc.State(), s)
	test.ExpectEquality(t, mc.AtBoundary(), true)

	// the NMI latch was restored so the interrupt happens again
	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, execution.NMI)
}

// cycle counts for a sample of instructions, taken from the 6510 data sheet
// and not from the instruction definitions
func TestCycleCounts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)

	type cycleTest struct {
		name    string
		at      uint16
		code    []uint8
		x, y    uint8
		pointer uint16
		cycles  int
	}

	tests := []cycleTest{
		{name: "LDA #", code: []uint8{0xa9, 0x10}, cycles: 2},
		{name: "LDA zp", code: []uint8{0xa5, 0x10}, cycles: 3},
		{name: "LDA zp,X", code: []uint8{0xb5, 0x10}, cycles: 4},
		{name: "LDA abs", code: []uint8{0xad, 0x00, 0x20}, cycles: 4},
		{name: "LDA abs,X", code: []uint8{0xbd, 0x00, 0x20}, x: 0x10, cycles: 4},
		{name: "LDA abs,X page", code: []uint8{0xbd, 0x80, 0x20}, x: 0x80, cycles: 5},
		{name: "LDA abs,Y page", code: []uint8{0xb9, 0x80, 0x20}, y: 0x80, cycles: 5},
		{name: "LDA (zp,X)", code: []uint8{0xa1, 0x10}, cycles: 6},
		{name: "LDA (zp),Y", code: []uint8{0xb1, 0x10}, pointer: 0x2000, y: 0x01, cycles: 5},
		{name: "LDA (zp),Y page", code: []uint8{0xb1, 0x10}, pointer: 0x20ff, y: 0x01, cycles: 6},
		{name: "STA abs", code: []uint8{0x8d, 0x00, 0x20}, cycles: 4},
		{name: "STA abs,X", code: []uint8{0x9d, 0x00, 0x20}, cycles: 5},
		{name: "STA (zp),Y", code: []uint8{0x91, 0x10}, pointer: 0x2000, cycles: 6},
		{name: "INC zp", code: []uint8{0xe6, 0x10}, cycles: 5},
		{name: "INC abs", code: []uint8{0xee, 0x00, 0x20}, cycles: 6},
		{name: "INC abs,X", code: []uint8{0xfe, 0x00, 0x20}, cycles: 7},
		{name: "ASL A", code: []uint8{0x0a}, cycles: 2},
		{name: "ASL zp", code: []uint8{0x06, 0x10}, cycles: 5},
		{name: "NOP", code: []uint8{0xea}, cycles: 2},
		{name: "PHA", code: []uint8{0x48}, cycles: 3},
		{name: "PLA", code: []uint8{0x68}, cycles: 4},
		{name: "PHP", code: []uint8{0x08}, cycles: 3},
		{name: "PLP", code: []uint8{0x28}, cycles: 4},
		{name: "JMP abs", code: []uint8{0x4c, 0x00, 0x20}, cycles: 3},
		{name: "JMP (abs)", code: []uint8{0x6c, 0x00, 0x20}, cycles: 5},
		{name: "JSR", code: []uint8{0x20, 0x00, 0x20}, cycles: 6},
		{name: "RTS", code: []uint8{0x60}, cycles: 6},
		{name: "RTI", code: []uint8{0x40}, cycles: 6},
		{name: "BRK", code: []uint8{0x00, 0x00}, cycles: 7},

		// the zero flag is set after a reset
		{name: "BNE not taken", code: []uint8{0xd0, 0x10}, cycles: 2},
		{name: "BEQ taken", code: []uint8{0xf0, 0x10}, cycles: 3},
		{name: "BEQ taken page", at: 0x02f0, code: []uint8{0xf0, 0x10}, cycles: 4},

		// undocumented
		{name: "LAX zp", code: []uint8{0xa7, 0x10}, cycles: 3},
		{name: "DCP zp", code: []uint8{0xc7, 0x10}, cycles: 5},
		{name: "ANC #", code: []uint8{0x0b, 0x10}, cycles: 2},
		{name: "NOP zp", code: []uint8{0x04, 0x10}, cycles: 3},
		{name: "NOP abs", code: []uint8{0x0c, 0x00, 0x20}, cycles: 4},
		{name: "NOP abs,X page", code: []uint8{0x1c, 0x80, 0x20}, x: 0x80, cycles: 5},
	}

	for _, tt := range tests {
		at := tt.at
		if at == 0 {
			at = origin
		}
		reset(t, mc, mem, at)
		mem.putVector(cpubus.BRK, 0x0400)
		mem.putVector(0x0010, tt.pointer)
		mem.putInstructions(at, tt.code...)
		mc.X.Load(tt.x)
		mc.Y.Load(tt.y)

		r := step(t, mc)
		test.ExpectEquality(t, r.Cycles, tt.cycles, tt.name)
	}
}
