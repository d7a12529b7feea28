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
	"github.com/technic0/Ready/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putVector(address uint16, vector uint16) {
	mem.internal[address] = uint8(vector)
	mem.internal[address+1] = uint8(vector >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %04x)", mem.internal[address], value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	clear(mem.internal)
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// reset the CPU and place the program counter at the origin
func reset(t *testing.T, mc *cpu.CPU, mem *mockMem, origin uint16) {
	t.Helper()
	mem.Clear()
	mc.Reset()
	test.DemandSuccess(t, mc.LoadPC(origin))
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return mc.LastResult
}
