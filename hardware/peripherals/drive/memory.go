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

package drive

import (
	"github.com/technic0/Ready/hardware/memory"
	"github.com/technic0/Ready/hardware/via"
)

// Memory map of the 1541.
const (
	RAMSize  = 0x0800
	VIA1Base = 0x1800
	VIA2Base = 0x1c00
	ROMBase  = 0xc000
)

// driveMemory is the address space of the drive CPU. It implements the
// cpubus.Memory interface.
//
// Address decoding is partial. RAM is mirrored up to $17FF, the VIA registers
// are mirrored every 16 bytes and the ROM is mirrored at $8000.
type driveMemory struct {
	ram  [RAMSize]uint8
	rom  []uint8
	via1 *via.VIA
	via2 *via.VIA
}

func (mem *driveMemory) read(address uint16, peek bool) uint8 {
	switch {
	case address < VIA1Base:
		return mem.ram[address&(RAMSize-1)]
	case address < VIA2Base:
		if peek {
			return mem.via1.PeekRegister(uint8(address & 0x0f))
		}
		return mem.via1.ReadRegister(uint8(address & 0x0f))
	case address < 0x2000:
		if peek {
			return mem.via2.PeekRegister(uint8(address & 0x0f))
		}
		return mem.via2.ReadRegister(uint8(address & 0x0f))
	case address >= 0x8000:
		return mem.rom[address&(memory.SizeDrive-1)]
	}

	// unmapped addresses read the high byte of the address left on the bus
	return uint8(address >> 8)
}

// Read implements the cpubus.Memory interface.
func (mem *driveMemory) Read(address uint16) (uint8, error) {
	return mem.read(address, false), nil
}

// Write implements the cpubus.Memory interface.
func (mem *driveMemory) Write(address uint16, data uint8) error {
	switch {
	case address < VIA1Base:
		mem.ram[address&(RAMSize-1)] = data
	case address < VIA2Base:
		mem.via1.WriteRegister(uint8(address&0x0f), data)
	case address < 0x2000:
		mem.via2.WriteRegister(uint8(address&0x0f), data)
	}
	return nil
}
