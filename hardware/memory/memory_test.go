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

package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware/memory"
	"github.com/technic0/Ready/hardware/memory/memorymap"
	"github.com/technic0/Ready/test"
)

// ROMs filled with a recognisable value
func testROMs(t *testing.T) *memory.ROMSet {
	t.Helper()
	basic := make([]uint8, memory.SizeBASIC)
	kernal := make([]uint8, memory.SizeKERNAL)
	chargen := make([]uint8, memory.SizeCHARGEN)
	for i := range basic {
		basic[i] = 0xba
	}
	for i := range kernal {
		kernal[i] = 0xea
	}
	for i := range chargen {
		chargen[i] = 0xc0
	}
	roms, err := memory.NewROMSet(basic, kernal, chargen)
	test.DemandSuccess(t, err)
	return roms
}

// a simple device that records register accesses
type mockChip struct {
	regs  [64]uint8
	reads int
}

func (c *mockChip) ReadRegister(reg uint8) uint8 {
	c.reads++
	return c.regs[reg]
}

func (c *mockChip) WriteRegister(reg uint8, data uint8) {
	c.regs[reg] = data
}

func (c *mockChip) PeekRegister(reg uint8) uint8 {
	return c.regs[reg]
}

func TestROMSet(t *testing.T) {
	_, err := memory.NewROMSet(make([]uint8, 100), make([]uint8, memory.SizeKERNAL), make([]uint8, memory.SizeCHARGEN))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, faults.Category(err), faults.Configuration)

	dir := t.TempDir()
	_, err = memory.LoadROMSet(dir)
	test.ExpectEquality(t, faults.Category(err), faults.Configuration)

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "basic"), make([]uint8, memory.SizeBASIC), 0o644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "kernal.bin"), make([]uint8, memory.SizeKERNAL), 0o644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "characters-901225-01.bin"), make([]uint8, memory.SizeCHARGEN), 0o644))

	roms, err := memory.LoadROMSet(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, roms.Drive == nil, true)

	// a drive ROM of the wrong size is a configuration error
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "dos1541"), make([]uint8, 10), 0o644))
	_, err = memory.LoadROMSet(dir)
	test.ExpectEquality(t, faults.Category(err), faults.Configuration)

	_, err = memory.NewMemory(nil, nil)
	test.ExpectEquality(t, faults.Category(err), faults.Configuration)
}

func TestPowerOn(t *testing.T) {
	mem, err := memory.NewMemory(nil, testROMs(t))
	test.DemandSuccess(t, err)

	// the processor port defaults to all inputs, which selects the default
	// bank configuration
	test.ExpectEquality(t, mem.Bank(), memorymap.MaxSelector)

	test.ExpectEquality(t, mem.PeekRAM(0x0002), 0x00)
	test.ExpectEquality(t, mem.PeekRAM(0x0040), 0xff)
	test.ExpectEquality(t, mem.PeekRAM(0x0080), 0x00)

	v, err := mem.Read(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xba)
	v, _ = mem.Read(0xfffc)
	test.ExpectEquality(t, v, 0xea)
}

func TestWriteUnderROM(t *testing.T) {
	mem, err := memory.NewMemory(nil, testROMs(t))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, mem.Write(0xa000, 0x12))
	v, _ := mem.Read(0xa000)
	test.ExpectEquality(t, v, 0xba)
	test.ExpectEquality(t, mem.PeekRAM(0xa000), 0x12)

	// switch out BASIC by writing to the processor port
	test.DemandSuccess(t, mem.Write(0x0000, 0x07))
	test.DemandSuccess(t, mem.Write(0x0001, 0x06))
	test.ExpectEquality(t, mem.Bank(), 0x06)
	v, _ = mem.Read(0xa000)
	test.ExpectEquality(t, v, 0x12)

	// CHAREN low shows the character ROM
	test.DemandSuccess(t, mem.Write(0x0001, 0x03))
	v, _ = mem.Read(0xd000)
	test.ExpectEquality(t, v, 0xc0)

	// reading the port data register
	v, _ = mem.Read(0x0001)
	test.ExpectEquality(t, v&0x07, 0x03)
}

func TestSetBank(t *testing.T) {
	mem, err := memory.NewMemory(nil, testROMs(t))
	test.DemandSuccess(t, err)

	err = mem.SetBank(8)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, faults.InternalInvariantViolation))
	test.ExpectEquality(t, faults.IsFatal(err), true)
	test.ExpectEquality(t, mem.Bank(), memorymap.MaxSelector)

	test.ExpectSuccess(t, mem.SetBank(0))
	v, _ := mem.Read(0xe000)
	test.ExpectEquality(t, v, mem.PeekRAM(0xe000))
}

func TestIO(t *testing.T) {
	mem, err := memory.NewMemory(nil, testROMs(t))
	test.DemandSuccess(t, err)

	chip := &mockChip{}
	for p := uint8(0xd0); p <= 0xd3; p++ {
		test.DemandSuccess(t, mem.AttachIO(p, 0x3f, chip))
	}
	test.ExpectFailure(t, mem.AttachIO(0xc0, 0x3f, chip))
	test.ExpectFailure(t, mem.AttachIO(0xd8, 0x3f, chip))

	// mirrored every 64 bytes
	test.DemandSuccess(t, mem.Write(0xd020, 0x0e))
	v, _ := mem.Read(0xd060)
	test.ExpectEquality(t, v, 0x0e)
	v, _ = mem.Read(0xd320)
	test.ExpectEquality(t, v, 0x0e)
	test.ExpectEquality(t, chip.reads, 2)

	// peeking does not read
	v, err = mem.Peek(0xd020)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x0e)
	test.ExpectEquality(t, chip.reads, 2)

	// open bus
	v, _ = mem.Read(0xde00)
	test.ExpectEquality(t, v, 0xff)

	// colour RAM is four bits
	test.DemandSuccess(t, mem.Write(0xd800, 0xf5))
	test.ExpectEquality(t, mem.ColourRead(0x0000), 0x05)
	v, _ = mem.Read(0xd800)
	test.ExpectEquality(t, v&0x0f, 0x05)

	test.ExpectFailure(t, mem.Poke(0xd020, 0x00))
}

func TestVICView(t *testing.T) {
	mem, err := memory.NewMemory(nil, testROMs(t))
	test.DemandSuccess(t, err)

	mem.PokeRAM(0x1000, 0x11)
	mem.PokeRAM(0x5000, 0x55)
	mem.PokeRAM(0x9000, 0x99)

	// the character ROM is visible in bank 0 and 2
	test.ExpectEquality(t, mem.VICRead(0x1000), 0xc0)
	mem.SetVICBank(1)
	test.ExpectEquality(t, mem.VICRead(0x1000), 0x55)
	mem.SetVICBank(2)
	test.ExpectEquality(t, mem.VICRead(0x1000), 0xc0)
	mem.SetVICBank(3)
	test.ExpectEquality(t, mem.VICRead(0x0000), mem.PeekRAM(0xc000))
}

func TestState(t *testing.T) {
	mem, err := memory.NewMemory(nil, testROMs(t))
	test.DemandSuccess(t, err)

	mem.PokeRAM(0x0400, 0x01)
	s := mem.State()
	mem.PokeRAM(0x0400, 0x02)

	s.Selector = 9
	test.ExpectFailure(t, mem.SetState(s))
	test.ExpectEquality(t, mem.PeekRAM(0x0400), 0x02)

	s.Selector = memorymap.MaxSelector
	test.ExpectSuccess(t, mem.SetState(s))
	test.ExpectEquality(t, mem.PeekRAM(0x0400), 0x01)
}
