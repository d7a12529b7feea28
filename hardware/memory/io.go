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

	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware/memory/memorymap"
)

// IODevice is implemented by the chips mapped into the I/O area. The register
// argument has had the mirror mask applied.
//
// PeekRegister returns the value of the register without any of the side
// effects of a real read. Used by debuggers and by the snapshot system.
type IODevice interface {
	ReadRegister(reg uint8) uint8
	WriteRegister(reg uint8, data uint8)
	PeekRegister(reg uint8) uint8
}

// the first page of the I/O area.
const ioPage = uint8(memorymap.OriginIO >> 8)

// the pages of the I/O area that hold the colour RAM.
const (
	colourFirstPage = 0x08
	colourLastPage  = 0x0b
)

type ioMapping struct {
	dev  IODevice
	mask uint8
}

// openBus is the device attached to pages that have nothing else attached.
// The IO1 and IO2 pages are open bus unless a cartridge is attached.
type openBus struct{}

func (openBus) ReadRegister(uint8) uint8 {
	return 0xff
}

func (openBus) WriteRegister(uint8, uint8) {
}

func (openBus) PeekRegister(uint8) uint8 {
	return 0xff
}

// AttachIO maps the device to the page in the I/O area. The page is the high
// byte of the address and must be in the range $D0 to $DF. The colour RAM
// pages ($D8 to $DB) cannot be replaced. The mask is applied to the low byte
// of the address to produce the register number, which is how chips are
// mirrored within the page.
func (mem *Memory) AttachIO(page uint8, mask uint8, dev IODevice) error {
	if page < ioPage || page > ioPage|0x0f {
		return faults.Errorf(faults.InternalInvariantViolation, "memory: page %#02x is not in the I/O area", page)
	}
	p := page & 0x0f
	if p >= colourFirstPage && p <= colourLastPage {
		return faults.Errorf(faults.InternalInvariantViolation, "memory: page %#02x is colour RAM", page)
	}
	if dev == nil {
		dev = openBus{}
		mask = 0
	}
	mem.io[p] = ioMapping{dev: dev, mask: mask}
	return nil
}

func (mem *Memory) readIO(address uint16, peek bool) uint8 {
	p := uint8(address>>8) & 0x0f
	if p >= colourFirstPage && p <= colourLastPage {
		// only the low nibble of colour RAM is connected. the high nibble
		// is whatever was last on the data bus
		return mem.colour[address&0x03ff]&0x0f | mem.lastData&0xf0
	}
	m := mem.io[p]
	if peek {
		return m.dev.PeekRegister(uint8(address) & m.mask)
	}
	return m.dev.ReadRegister(uint8(address) & m.mask)
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	p := uint8(address>>8) & 0x0f
	if p >= colourFirstPage && p <= colourLastPage {
		mem.colour[address&0x03ff] = data & 0x0f
		return
	}
	m := mem.io[p]
	m.dev.WriteRegister(uint8(address)&m.mask, data)
}

// describe an I/O page for the String() function
func (mem *Memory) describeIO(p uint8) string {
	if p >= colourFirstPage && p <= colourLastPage {
		return "colour RAM"
	}
	if _, ok := mem.io[p].dev.(openBus); ok {
		return "open bus"
	}
	if l, ok := mem.io[p].dev.(interface{ Label() string }); ok {
		return l.Label()
	}
	return fmt.Sprintf("%T", mem.io[p].dev)
}
