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

package instructions_test

import (
	"testing"

	"github.com/technic0/Ready/hardware/cpu/instructions"
	"github.com/technic0/Ready/test"
)

func TestDefinitionsComplete(t *testing.T) {
	defns := instructions.GetDefinitions()
	test.ExpectEquality(t, len(defns), 256)
	for i, d := range defns {
		test.DemandEquality(t, int(d.OpCode), i)
		if d.Cycles < 2 || d.Cycles > 8 {
			t.Errorf("opcode %02x has out of range cycle count %d", i, d.Cycles)
		}
		test.ExpectEquality(t, d.Bytes, d.AddressingMode.Bytes())
	}
}

func TestDocumentedCount(t *testing.T) {
	var documented int
	for _, d := range instructions.GetDefinitions() {
		if !d.Undocumented {
			documented++
		}
	}
	// the NMOS 6502 has 151 documented opcodes
	test.ExpectEquality(t, documented, 151)
}

func TestSpotChecks(t *testing.T) {
	defns := instructions.GetDefinitions()

	lda := defns[0xbd]
	test.ExpectEquality(t, lda.Operator, instructions.Lda)
	test.ExpectEquality(t, lda.AddressingMode, instructions.AbsoluteIndexedX)
	test.ExpectEquality(t, lda.Cycles, 4)
	test.ExpectEquality(t, lda.PageSensitive, true)
	test.ExpectEquality(t, lda.Bytes, 3)

	sta := defns[0x9d]
	test.ExpectEquality(t, sta.Effect, instructions.Write)
	test.ExpectEquality(t, sta.Cycles, 5)
	test.ExpectEquality(t, sta.PageSensitive, false)

	test.ExpectEquality(t, defns[0xd0].IsBranch(), true)
	test.ExpectEquality(t, defns[0x4c].IsBranch(), false)
	test.ExpectEquality(t, defns[0x00].Effect, instructions.Interrupt)

	test.ExpectEquality(t, defns[0xeb].Undocumented, true)
	test.ExpectEquality(t, defns[0xea].Undocumented, false)
	test.ExpectEquality(t, defns[0x02].Operator, instructions.Jam)
	test.ExpectEquality(t, defns[0x02].Operator.String(), "JAM")
}
