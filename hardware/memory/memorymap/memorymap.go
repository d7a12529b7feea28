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

package memorymap

// Area represents the different areas of memory
type Area int

// The different memory areas in the C64
const (
	Undefined Area = iota
	RAM
	BASIC
	KERNAL
	CHARGEN
	IO
	ProcessorPort
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case BASIC:
		return "BASIC"
	case KERNAL:
		return "KERNAL"
	case CHARGEN:
		return "CHARGEN"
	case IO:
		return "IO"
	case ProcessorPort:
		return "Processor Port"
	}
	return "undefined"
}

// IsROM returns true if the area is one of the ROMs.
func (a Area) IsROM() bool {
	return a == BASIC || a == KERNAL || a == CHARGEN
}

// The origin and memory top for each area of memory that can be banked.
//
// Implementations of the different memory areas may need to drag the address
// down into the range of an array. This can be done with (address^origin)
// rather than subtraction.
const (
	OriginBASIC   = uint16(0xa000)
	MemtopBASIC   = uint16(0xbfff)
	OriginIO      = uint16(0xd000)
	MemtopIO      = uint16(0xdfff)
	OriginCHARGEN = OriginIO
	MemtopCHARGEN = MemtopIO
	OriginKERNAL  = uint16(0xe000)
	MemtopKERNAL  = uint16(0xffff)

	OriginPort = uint16(0x0000)
	MemtopPort = uint16(0x0001)
)

// Memtop is the top most address of memory in the C64.
const Memtop = uint16(0xffff)

// Bits of the bank selector.
const (
	LORAM  = uint8(0x01)
	HIRAM  = uint8(0x02)
	CHAREN = uint8(0x04)
)

// MaxSelector is the largest valid bank selector.
const MaxSelector = LORAM | HIRAM | CHAREN

// MapAddress returns the area of memory the address is mapped to, for the
// bank selector. The returned address is normalised to the origin of the
// area for ROM areas and is unchanged for other areas.
//
// Writes to ROM areas are mapped to the RAM underneath. Selectors larger
// than MaxSelector map every address to Undefined.
func MapAddress(selector uint8, address uint16, read bool) (uint16, Area) {
	if selector > MaxSelector {
		return address, Undefined
	}

	if address <= MemtopPort {
		return address, ProcessorPort
	}

	loram := selector&LORAM == LORAM
	hiram := selector&HIRAM == HIRAM
	charen := selector&CHAREN == CHAREN

	switch {
	case address >= OriginKERNAL:
		if read && hiram {
			return address ^ OriginKERNAL, KERNAL
		}

	case address >= OriginIO && address <= MemtopIO:
		// with both LORAM and HIRAM low the area is always RAM
		if !loram && !hiram {
			break
		}
		if charen {
			return address, IO
		}
		if read {
			return address ^ OriginCHARGEN, CHARGEN
		}

	case address >= OriginBASIC && address <= MemtopBASIC:
		if read && loram && hiram {
			return address ^ OriginBASIC, BASIC
		}
	}

	return address, RAM
}
