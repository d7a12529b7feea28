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

package memory

import (
	"fmt"
	"strings"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware/memory/cpubus"
	"github.com/technic0/Ready/hardware/memory/memorymap"
)

// Memory is the C64 memory bus. It implements the cpubus.Memory interface.
type Memory struct {
	env  *environment.Environment
	roms *ROMSet

	ram    [0x10000]uint8
	colour [0x400]uint8

	// the 6510 processor port
	Port ProcessorPort

	// the current bank selector. normally the same as Port.Selector() but
	// can be forced with SetBank()
	selector uint8

	// the devices mapped into the 16 pages of the I/O area
	io [16]ioMapping

	// the 16KB bank seen by the VIC-II
	vicBank uint8

	// the last value on the data bus
	lastData uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment, roms *ROMSet) (*Memory, error) {
	if roms == nil {
		return nil, faults.Errorf(faults.ConfigurationError, "memory: no ROM set")
	}

	mem := &Memory{
		env:  env,
		roms: roms,
	}

	for i := range mem.io {
		mem.io[i] = ioMapping{dev: openBus{}}
	}

	mem.Reset()

	return mem, nil
}

// Reset memory to the power-on state. RAM is filled with the pattern seen on
// real hardware: alternating blocks of 64 bytes of $00 and $FF.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		if i&0x40 == 0 {
			mem.ram[i] = 0x00
		} else {
			mem.ram[i] = 0xff
		}
	}
	clear(mem.colour[:])
	mem.Port.reset()
	mem.selector = mem.Port.Selector()
	mem.vicBank = 0
	mem.lastData = 0
}

// ResetPort resets the processor port and leaves RAM untouched. This is the
// effect of the RESET line on memory.
func (mem *Memory) ResetPort() {
	mem.Port.reset()
	mem.selector = mem.Port.Selector()
}

// ROMs returns the ROM set used by the memory.
func (mem *Memory) ROMs() *ROMSet {
	return mem.roms
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("selector: %d (DDR=%02x DATA=%02x)\n", mem.selector, mem.Port.DDR, mem.Port.Data))
	s.WriteString(memorymap.Summary(mem.selector))
	for p := range uint8(16) {
		s.WriteString(fmt.Sprintf("%02x00: %s\n", ioPage|p, mem.describeIO(p)))
	}
	return s.String()
}

// SetBank forces the bank selector. The selector must be in the range 0 to 7.
// The processor port sets the selector whenever it is written to, so there
// is normally no need to call this function.
func (mem *Memory) SetBank(selector uint8) error {
	if selector > memorymap.MaxSelector {
		return faults.Errorf(faults.InternalInvariantViolation, "memory: bank selector %d does not exist", selector)
	}
	mem.selector = selector
	return nil
}

// Bank returns the current bank selector.
func (mem *Memory) Bank() uint8 {
	return mem.selector
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	v, err := mem.read(address, false)
	if err != nil {
		return 0, err
	}
	mem.lastData = v
	return v, nil
}

// Peek returns the value at the address as the CPU would see it, without any
// of the side effects of a read.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.read(address, true)
}

func (mem *Memory) read(address uint16, peek bool) (uint8, error) {
	addr, area := memorymap.MapAddress(mem.selector, address, true)

	switch area {
	case memorymap.RAM:
		return mem.ram[addr], nil
	case memorymap.BASIC:
		return mem.roms.BASIC[addr], nil
	case memorymap.KERNAL:
		return mem.roms.KERNAL[addr], nil
	case memorymap.CHARGEN:
		return mem.roms.CHARGEN[addr], nil
	case memorymap.IO:
		return mem.readIO(addr, peek), nil
	case memorymap.ProcessorPort:
		return mem.Port.read(addr), nil
	}

	return 0, faults.Errorf(faults.InternalInvariantViolation, "memory: %#04x is not mapped (selector %d)", address, mem.selector)
}

// Write implements the cpubus.Memory interface. Writes to an address where a
// ROM is visible are written to the RAM underneath.
func (mem *Memory) Write(address uint16, data uint8) error {
	mem.lastData = data

	addr, area := memorymap.MapAddress(mem.selector, address, false)

	switch area {
	case memorymap.RAM:
		mem.ram[addr] = data
	case memorymap.IO:
		mem.writeIO(addr, data)
	case memorymap.ProcessorPort:
		// the write also reaches the RAM underneath the port
		mem.ram[addr] = data
		mem.Port.write(addr, data)
		mem.selector = mem.Port.Selector()
	default:
		return faults.Errorf(faults.InternalInvariantViolation, "memory: %#04x is not writable (selector %d)", address, mem.selector)
	}

	return nil
}

// Poke changes the value at the address as the CPU would see it. If a ROM is
// visible at the address then the ROM is changed. The I/O area can not be
// poked.
func (mem *Memory) Poke(address uint16, data uint8) error {
	addr, area := memorymap.MapAddress(mem.selector, address, true)

	switch area {
	case memorymap.RAM:
		mem.ram[addr] = data
	case memorymap.BASIC:
		mem.roms.BASIC[addr] = data
	case memorymap.KERNAL:
		mem.roms.KERNAL[addr] = data
	case memorymap.CHARGEN:
		mem.roms.CHARGEN[addr] = data
	case memorymap.ProcessorPort:
		mem.Port.write(addr, data)
		mem.selector = mem.Port.Selector()
	default:
		return curated.Errorf("memory: cannot poke %s area (%#04x)", area, address)
	}

	return nil
}

// PokeRAM writes directly to RAM regardless of the bank selector.
func (mem *Memory) PokeRAM(address uint16, data uint8) {
	mem.ram[address] = data
}

// PeekRAM reads directly from RAM regardless of the bank selector.
func (mem *Memory) PeekRAM(address uint16) uint8 {
	return mem.ram[address]
}

// SetVICBank sets the 16KB bank seen by the VIC-II. Bank zero is $0000 to
// $3FFF. Only the lower two bits of the argument are used.
func (mem *Memory) SetVICBank(bank uint8) {
	mem.vicBank = bank & 0x03
}

// VICBank returns the 16KB bank seen by the VIC-II.
func (mem *Memory) VICBank() uint8 {
	return mem.vicBank
}

// VICRead returns the value at the 14 bit address in the VIC-II bank. The
// character ROM is seen at $1000 to $1FFF in banks zero and two.
func (mem *Memory) VICRead(address uint16) uint8 {
	address &= 0x3fff
	if mem.vicBank&0x01 == 0 && address&0x3000 == 0x1000 {
		return mem.roms.CHARGEN[address&0x0fff]
	}
	return mem.ram[uint16(mem.vicBank)<<14|address]
}

// ColourRead returns the 4 bit value at the 10 bit address in colour RAM.
func (mem *Memory) ColourRead(address uint16) uint8 {
	return mem.colour[address&0x03ff]
}

// make sure Memory satisfies the cpubus.Memory interface
var _ cpubus.Memory = (*Memory)(nil)
