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
	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware/cpu/instructions"
	"github.com/technic0/Ready/hardware/cpu/registers"
	"github.com/technic0/Ready/hardware/memory/cpubus"
	"github.com/technic0/Ready/logger"
)

// the constant used by the unstable ANE and LXA instructions. the value
// differs between individual chips
const magicConstant = 0xee

// the break flag as it appears in a status value pushed onto the stack
const breakFlag = 0x10

func (mc *CPU) setNZ(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// adc performs ADC taking the decimal flag into account
func (mc *CPU) adc(value uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.setNZ(mc.A)
	}
}

// sbc performs SBC taking the decimal flag into account
func (mc *CPU) sbc(value uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.setNZ(mc.A)
	}
}

// compare register with value. the decimal flag has no effect
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.setNZ(mc.acc8)
}

// store value at address. one cycle.
func (mc *CPU) store(address uint16, value uint8) error {
	if err := mc.write8Bit(address, value, false); err != nil {
		return err
	}
	return mc.cycle()
}

// storeUnstable is used by the SHA, SHX, SHY and TAS instructions. the value
// is ANDed with the high byte of the base address plus one and when indexing
// crosses a page the high byte of the target address is corrupted.
func (mc *CPU) storeUnstable(address uint16, baseHi uint8, value uint8) error {
	value &= baseHi + 1
	if address>>8 != uint16(baseHi) {
		address = uint16(value)<<8 | address&0x00ff
	}
	return mc.store(address, value)
}

// modify returns the register to use for shift and rotate instructions. if
// the instruction is operating on memory the register is the accumulator
// register loaded with the value from memory.
func (mc *CPU) modify(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.Effect == instructions.RMW {
		mc.acc8.Load(value)
		return &mc.acc8
	}
	return &mc.A
}

// operate performs the instruction on the value and/or address resolved by
// the addressing mode. the returned value is the value to write back to
// memory for RMW instructions.
func (mc *CPU) operate(defn *instructions.Definition, address uint16, baseHi uint8, value uint8) (uint8, error) {
	var err error

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		err = mc.push(mc.A.Value())

	case instructions.Php:
		// +1 cycle
		err = mc.push(mc.Status.Value() | breakFlag)

	case instructions.Pla:
		// the stack is read before the SP is incremented
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return 0, err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return 0, err
		}
		mc.A.Load(value)
		mc.setNZ(mc.A)

	case instructions.Plp:
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return 0, err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return 0, err
		}
		mc.Status.Load(value)
		mc.Status.Break = false

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X)

	case instructions.Txs:
		// does not affect status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setNZ(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setNZ(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setNZ(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setNZ(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setNZ(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setNZ(mc.Y)

	case instructions.Sta:
		// +1 cycle
		err = mc.store(address, mc.A.Value())

	case instructions.Stx:
		// +1 cycle
		err = mc.store(address, mc.X.Value())

	case instructions.Sty:
		// +1 cycle
		err = mc.store(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setNZ(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setNZ(mc.Y)

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setNZ(mc.X)

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setNZ(mc.Y)

	case instructions.Asl:
		r := mc.modify(defn, value)
		mc.Status.Carry = r.ASL()
		mc.setNZ(*r)
		value = r.Value()

	case instructions.Lsr:
		r := mc.modify(defn, value)
		mc.Status.Carry = r.LSR()
		mc.setNZ(*r)
		value = r.Value()

	case instructions.Rol:
		r := mc.modify(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setNZ(*r)
		value = r.Value()

	case instructions.Ror:
		r := mc.modify(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setNZ(*r)
		value = r.Value()

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.setNZ(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.setNZ(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		err = mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		err = mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, err
		}

		// internal operation. the stack is read and the value discarded
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return 0, err
		}

		// the PC now points to the last byte of the JSR instruction. RTS
		// corrects this when the address is pulled from the stack
		// +2 cycles
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return 0, err
		}
		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return 0, err
		}

		// +1 cycle
		err = mc.read8BitPC(hiNibble)
		if err != nil {
			return 0, err
		}
		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return 0, err
		}

		// +2 cycles
		var lo, hi uint8
		lo, err = mc.pull()
		if err != nil {
			return 0, err
		}
		hi, err = mc.pull()
		if err != nil {
			return 0, err
		}
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

		// the PC is incremented in the final cycle
		// +1 cycle
		_, err = mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return 0, err
		}
		mc.PC.Add(1)

	case instructions.Brk:
		// +3 cycles
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return 0, err
		}
		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return 0, err
		}
		err = mc.push(mc.Status.Value() | breakFlag)
		if err != nil {
			return 0, err
		}

		mc.Status.InterruptDisable = true

		// +2 cycles
		var brkAddress uint16
		brkAddress, err = mc.read16Bit(cpubus.BRK)
		if err != nil {
			return 0, err
		}
		mc.PC.Load(brkAddress)

	case instructions.Rti:
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return 0, err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return 0, err
		}
		mc.Status.Load(value)
		mc.Status.Break = false

		// unlike RTS there is no need to add one to return address
		// +2 cycles
		var lo, hi uint8
		lo, err = mc.pull()
		if err != nil {
			return 0, err
		}
		hi, err = mc.pull()
		if err != nil {
			return 0, err
		}
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	// undocumented instructions

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setNZ(mc.A)

	case instructions.Sax:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(mc.X.Value())

		// +1 cycle
		err = mc.store(address, mc.acc8.Value())

	case instructions.Dcp:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		value = mc.acc8.Value()
		mc.compare(mc.A, value)

	case instructions.Isc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		value = mc.acc8.Value()
		mc.sbc(value)

	case instructions.Slo:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		value = mc.acc8.Value()
		mc.A.ORA(value)
		mc.setNZ(mc.A)

	case instructions.Rla:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.A.AND(value)
		mc.setNZ(mc.A)

	case instructions.Sre:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		value = mc.acc8.Value()
		mc.A.EOR(value)
		mc.setNZ(mc.A)

	case instructions.Rra:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.adc(value)

	case instructions.Anc:
		mc.A.AND(value)
		mc.setNZ(mc.A)
		mc.Status.Carry = mc.A.IsNegative()

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setNZ(mc.A)

	case instructions.Arr:
		mc.arr(value)

	case instructions.Sbx:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(mc.X.Value())
		mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
		mc.X.Load(mc.acc8.Value())
		mc.setNZ(mc.X)

	case instructions.Ane:
		mc.A.ORA(magicConstant)
		mc.A.AND(mc.X.Value())
		mc.A.AND(value)
		mc.setNZ(mc.A)

	case instructions.Lxa:
		mc.A.ORA(magicConstant)
		mc.A.AND(value)
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.A)

	case instructions.Las:
		mc.acc8.Load(mc.SP.Value())
		mc.acc8.AND(value)
		mc.SP.Load(mc.acc8.Value())
		mc.A.Load(mc.acc8.Value())
		mc.X.Load(mc.acc8.Value())
		mc.setNZ(mc.A)

	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())

		// +1 cycle
		err = mc.storeUnstable(address, baseHi, mc.SP.Value())

	case instructions.Sha:
		// +1 cycle
		err = mc.storeUnstable(address, baseHi, mc.A.Value()&mc.X.Value())

	case instructions.Shx:
		// +1 cycle
		err = mc.storeUnstable(address, baseHi, mc.X.Value())

	case instructions.Shy:
		// +1 cycle
		err = mc.storeUnstable(address, baseHi, mc.Y.Value())

	case instructions.Jam:
		mc.Killed = true
		logger.Logf(mc.perm, "cpu", "JAM instruction (%#04x)", mc.LastResult.Address)

	default:
		return 0, curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	return value, err
}

// arr is AND followed by ROR but with unusual flag results. in decimal mode
// the result is adjusted in a similar way to the ADC instruction.
func (mc *CPU) arr(value uint8) {
	t := mc.A.Value() & value

	var carryIn uint8
	if mc.Status.Carry {
		carryIn = 0x80
	}
	r := t>>1 | carryIn

	if !mc.Status.DecimalMode {
		mc.A.Load(r)
		mc.setNZ(mc.A)
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = (r&0x40)>>6^(r&0x20)>>5 == 1
		return
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = r == 0
	mc.Status.Overflow = (t^r)&0x40 == 0x40

	lo := t & 0x0f
	hi := t >> 4
	if lo+(lo&0x01) > 5 {
		r = r&0xf0 | (r+6)&0x0f
	}
	mc.Status.Carry = hi+(hi&0x01) > 5
	if mc.Status.Carry {
		r += 0x60
	}
	mc.A.Load(r)
}
