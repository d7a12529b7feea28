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

package instructions

// shorthand used by the opcode table
const (
	imp = Implied
	imm = Immediate
	rel = Relative
	abs = Absolute
	zpg = ZeroPage
	ind = Indirect
	izx = IndexedIndirect
	izy = IndirectIndexed
	abx = AbsoluteIndexedX
	aby = AbsoluteIndexedY
	zpx = ZeroPageIndexedX
	zpy = ZeroPageIndexedY
)

type entry struct {
	op     Operator
	mode   AddressingMode
	cycles int
	page   bool
	effect EffectCategory
}

// the opcode table in opcode order. page sensitive instructions take an
// additional cycle when indexing crosses a page boundary.
var table = [256]entry{
	// 0x00
	{Brk, imp, 7, false, Interrupt}, {Ora, izx, 6, false, Read}, {Jam, imp, 2, false, Read}, {Slo, izx, 8, false, RMW},
	{Nop, zpg, 3, false, Read}, {Ora, zpg, 3, false, Read}, {Asl, zpg, 5, false, RMW}, {Slo, zpg, 5, false, RMW},
	{Php, imp, 3, false, Write}, {Ora, imm, 2, false, Read}, {Asl, imp, 2, false, Read}, {Anc, imm, 2, false, Read},
	{Nop, abs, 4, false, Read}, {Ora, abs, 4, false, Read}, {Asl, abs, 6, false, RMW}, {Slo, abs, 6, false, RMW},

	// 0x10
	{Bpl, rel, 2, true, Flow}, {Ora, izy, 5, true, Read}, {Jam, imp, 2, false, Read}, {Slo, izy, 8, false, RMW},
	{Nop, zpx, 4, false, Read}, {Ora, zpx, 4, false, Read}, {Asl, zpx, 6, false, RMW}, {Slo, zpx, 6, false, RMW},
	{Clc, imp, 2, false, Read}, {Ora, aby, 4, true, Read}, {Nop, imp, 2, false, Read}, {Slo, aby, 7, false, RMW},
	{Nop, abx, 4, true, Read}, {Ora, abx, 4, true, Read}, {Asl, abx, 7, false, RMW}, {Slo, abx, 7, false, RMW},

	// 0x20
	{Jsr, abs, 6, false, Subroutine}, {And, izx, 6, false, Read}, {Jam, imp, 2, false, Read}, {Rla, izx, 8, false, RMW},
	{Bit, zpg, 3, false, Read}, {And, zpg, 3, false, Read}, {Rol, zpg, 5, false, RMW}, {Rla, zpg, 5, false, RMW},
	{Plp, imp, 4, false, Read}, {And, imm, 2, false, Read}, {Rol, imp, 2, false, Read}, {Anc, imm, 2, false, Read},
	{Bit, abs, 4, false, Read}, {And, abs, 4, false, Read}, {Rol, abs, 6, false, RMW}, {Rla, abs, 6, false, RMW},

	// 0x30
	{Bmi, rel, 2, true, Flow}, {And, izy, 5, true, Read}, {Jam, imp, 2, false, Read}, {Rla, izy, 8, false, RMW},
	{Nop, zpx, 4, false, Read}, {And, zpx, 4, false, Read}, {Rol, zpx, 6, false, RMW}, {Rla, zpx, 6, false, RMW},
	{Sec, imp, 2, false, Read}, {And, aby, 4, true, Read}, {Nop, imp, 2, false, Read}, {Rla, aby, 7, false, RMW},
	{Nop, abx, 4, true, Read}, {And, abx, 4, true, Read}, {Rol, abx, 7, false, RMW}, {Rla, abx, 7, false, RMW},

	// 0x40
	{Rti, imp, 6, false, Interrupt}, {Eor, izx, 6, false, Read}, {Jam, imp, 2, false, Read}, {Sre, izx, 8, false, RMW},
	{Nop, zpg, 3, false, Read}, {Eor, zpg, 3, false, Read}, {Lsr, zpg, 5, false, RMW}, {Sre, zpg, 5, false, RMW},
	{Pha, imp, 3, false, Write}, {Eor, imm, 2, false, Read}, {Lsr, imp, 2, false, Read}, {Alr, imm, 2, false, Read},
	{Jmp, abs, 3, false, Flow}, {Eor, abs, 4, false, Read}, {Lsr, abs, 6, false, RMW}, {Sre, abs, 6, false, RMW},

	// 0x50
	{Bvc, rel, 2, true, Flow}, {Eor, izy, 5, true, Read}, {Jam, imp, 2, false, Read}, {Sre, izy, 8, false, RMW},
	{Nop, zpx, 4, false, Read}, {Eor, zpx, 4, false, Read}, {Lsr, zpx, 6, false, RMW}, {Sre, zpx, 6, false, RMW},
	{Cli, imp, 2, false, Read}, {Eor, aby, 4, true, Read}, {Nop, imp, 2, false, Read}, {Sre, aby, 7, false, RMW},
	{Nop, abx, 4, true, Read}, {Eor, abx, 4, true, Read}, {Lsr, abx, 7, false, RMW}, {Sre, abx, 7, false, RMW},

	// 0x60
	{Rts, imp, 6, false, Subroutine}, {Adc, izx, 6, false, Read}, {Jam, imp, 2, false, Read}, {Rra, izx, 8, false, RMW},
	{Nop, zpg, 3, false, Read}, {Adc, zpg, 3, false, Read}, {Ror, zpg, 5, false, RMW}, {Rra, zpg, 5, false, RMW},
	{Pla, imp, 4, false, Read}, {Adc, imm, 2, false, Read}, {Ror, imp, 2, false, Read}, {Arr, imm, 2, false, Read},
	{Jmp, ind, 5, false, Flow}, {Adc, abs, 4, false, Read}, {Ror, abs, 6, false, RMW}, {Rra, abs, 6, false, RMW},

	// 0x70
	{Bvs, rel, 2, true, Flow}, {Adc, izy, 5, true, Read}, {Jam, imp, 2, false, Read}, {Rra, izy, 8, false, RMW},
	{Nop, zpx, 4, false, Read}, {Adc, zpx, 4, false, Read}, {Ror, zpx, 6, false, RMW}, {Rra, zpx, 6, false, RMW},
	{Sei, imp, 2, false, Read}, {Adc, aby, 4, true, Read}, {Nop, imp, 2, false, Read}, {Rra, aby, 7, false, RMW},
	{Nop, abx, 4, true, Read}, {Adc, abx, 4, true, Read}, {Ror, abx, 7, false, RMW}, {Rra, abx, 7, false, RMW},

	// 0x80
	{Nop, imm, 2, false, Read}, {Sta, izx, 6, false, Write}, {Nop, imm, 2, false, Read}, {Sax, izx, 6, false, Write},
	{Sty, zpg, 3, false, Write}, {Sta, zpg, 3, false, Write}, {Stx, zpg, 3, false, Write}, {Sax, zpg, 3, false, Write},
	{Dey, imp, 2, false, Read}, {Nop, imm, 2, false, Read}, {Txa, imp, 2, false, Read}, {Ane, imm, 2, false, Read},
	{Sty, abs, 4, false, Write}, {Sta, abs, 4, false, Write}, {Stx, abs, 4, false, Write}, {Sax, abs, 4, false, Write},

	// 0x90
	{Bcc, rel, 2, true, Flow}, {Sta, izy, 6, false, Write}, {Jam, imp, 2, false, Read}, {Sha, izy, 6, false, Write},
	{Sty, zpx, 4, false, Write}, {Sta, zpx, 4, false, Write}, {Stx, zpy, 4, false, Write}, {Sax, zpy, 4, false, Write},
	{Tya, imp, 2, false, Read}, {Sta, aby, 5, false, Write}, {Txs, imp, 2, false, Read}, {Tas, aby, 5, false, Write},
	{Shy, abx, 5, false, Write}, {Sta, abx, 5, false, Write}, {Shx, aby, 5, false, Write}, {Sha, aby, 5, false, Write},

	// 0xa0
	{Ldy, imm, 2, false, Read}, {Lda, izx, 6, false, Read}, {Ldx, imm, 2, false, Read}, {Lax, izx, 6, false, Read},
	{Ldy, zpg, 3, false, Read}, {Lda, zpg, 3, false, Read}, {Ldx, zpg, 3, false, Read}, {Lax, zpg, 3, false, Read},
	{Tay, imp, 2, false, Read}, {Lda, imm, 2, false, Read}, {Tax, imp, 2, false, Read}, {Lxa, imm, 2, false, Read},
	{Ldy, abs, 4, false, Read}, {Lda, abs, 4, false, Read}, {Ldx, abs, 4, false, Read}, {Lax, abs, 4, false, Read},

	// 0xb0
	{Bcs, rel, 2, true, Flow}, {Lda, izy, 5, true, Read}, {Jam, imp, 2, false, Read}, {Lax, izy, 5, true, Read},
	{Ldy, zpx, 4, false, Read}, {Lda, zpx, 4, false, Read}, {Ldx, zpy, 4, false, Read}, {Lax, zpy, 4, false, Read},
	{Clv, imp, 2, false, Read}, {Lda, aby, 4, true, Read}, {Tsx, imp, 2, false, Read}, {Las, aby, 4, true, Read},
	{Ldy, abx, 4, true, Read}, {Lda, abx, 4, true, Read}, {Ldx, aby, 4, true, Read}, {Lax, aby, 4, true, Read},

	// 0xc0
	{Cpy, imm, 2, false, Read}, {Cmp, izx, 6, false, Read}, {Nop, imm, 2, false, Read}, {Dcp, izx, 8, false, RMW},
	{Cpy, zpg, 3, false, Read}, {Cmp, zpg, 3, false, Read}, {Dec, zpg, 5, false, RMW}, {Dcp, zpg, 5, false, RMW},
	{Iny, imp, 2, false, Read}, {Cmp, imm, 2, false, Read}, {Dex, imp, 2, false, Read}, {Sbx, imm, 2, false, Read},
	{Cpy, abs, 4, false, Read}, {Cmp, abs, 4, false, Read}, {Dec, abs, 6, false, RMW}, {Dcp, abs, 6, false, RMW},

	// 0xd0
	{Bne, rel, 2, true, Flow}, {Cmp, izy, 5, true, Read}, {Jam, imp, 2, false, Read}, {Dcp, izy, 8, false, RMW},
	{Nop, zpx, 4, false, Read}, {Cmp, zpx, 4, false, Read}, {Dec, zpx, 6, false, RMW}, {Dcp, zpx, 6, false, RMW},
	{Cld, imp, 2, false, Read}, {Cmp, aby, 4, true, Read}, {Nop, imp, 2, false, Read}, {Dcp, aby, 7, false, RMW},
	{Nop, abx, 4, true, Read}, {Cmp, abx, 4, true, Read}, {Dec, abx, 7, false, RMW}, {Dcp, abx, 7, false, RMW},

	// 0xe0
	{Cpx, imm, 2, false, Read}, {Sbc, izx, 6, false, Read}, {Nop, imm, 2, false, Read}, {Isc, izx, 8, false, RMW},
	{Cpx, zpg, 3, false, Read}, {Sbc, zpg, 3, false, Read}, {Inc, zpg, 5, false, RMW}, {Isc, zpg, 5, false, RMW},
	{Inx, imp, 2, false, Read}, {Sbc, imm, 2, false, Read}, {Nop, imp, 2, false, Read}, {Sbc, imm, 2, false, Read},
	{Cpx, abs, 4, false, Read}, {Sbc, abs, 4, false, Read}, {Inc, abs, 6, false, RMW}, {Isc, abs, 6, false, RMW},

	// 0xf0
	{Beq, rel, 2, true, Flow}, {Sbc, izy, 5, true, Read}, {Jam, imp, 2, false, Read}, {Isc, izy, 8, false, RMW},
	{Nop, zpx, 4, false, Read}, {Sbc, zpx, 4, false, Read}, {Inc, zpx, 6, false, RMW}, {Isc, zpx, 6, false, RMW},
	{Sed, imp, 2, false, Read}, {Sbc, aby, 4, true, Read}, {Nop, imp, 2, false, Read}, {Isc, aby, 7, false, RMW},
	{Nop, abx, 4, true, Read}, {Sbc, abx, 4, true, Read}, {Inc, abx, 7, false, RMW}, {Isc, abx, 7, false, RMW},
}

// the documented opcodes with a NOP operator. all other NOPs are undocumented
const documentedNop = 0xea

// the undocumented duplicate of SBC immediate
const undocumentedSbc = 0xeb

// GetDefinitions returns the table of instruction definitions for the 6502
// family, indexed by opcode. Every opcode has a definition.
func GetDefinitions() []*Definition {
	defns := make([]*Definition, len(table))
	for i, e := range table {
		defns[i] = &Definition{
			OpCode:         uint8(i),
			Operator:       e.op,
			Bytes:          e.mode.Bytes(),
			Cycles:         e.cycles,
			AddressingMode: e.mode,
			PageSensitive:  e.page,
			Effect:         e.effect,
			Undocumented:   isUndocumented(uint8(i), e.op),
		}
	}
	return defns
}

func isUndocumented(opcode uint8, op Operator) bool {
	switch op {
	case Nop:
		return opcode != documentedNop
	case Sbc:
		return opcode == undocumentedSbc
	}
	return op >= Slo
}
