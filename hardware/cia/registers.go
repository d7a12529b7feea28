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

package cia

// ReadRegister implements the memory.IODevice interface. Reading the ICR
// clears it and reading the TOD hours register latches the clock.
func (cia *CIA) ReadRegister(reg uint8) uint8 {
	return cia.read(reg&0x0f, false)
}

// PeekRegister implements the memory.IODevice interface.
func (cia *CIA) PeekRegister(reg uint8) uint8 {
	return cia.read(reg&0x0f, true)
}

func (cia *CIA) read(reg uint8, peek bool) uint8 {
	switch reg {
	case PRA:
		return cia.readPort(PRA)
	case PRB:
		return cia.readPort(PRB)
	case DDRA:
		return cia.ddra
	case DDRB:
		return cia.ddrb
	case TALO:
		return uint8(cia.ta.counter)
	case TAHI:
		return uint8(cia.ta.counter >> 8)
	case TBLO:
		return uint8(cia.tb.counter)
	case TBHI:
		return uint8(cia.tb.counter >> 8)
	case TOD10THS:
		return cia.tod.read(todTenths, peek)
	case TODSEC:
		return cia.tod.read(todSeconds, peek)
	case TODMIN:
		return cia.tod.read(todMinutes, peek)
	case TODHR:
		return cia.tod.read(todHours, peek)
	case SDR:
		return cia.sdr
	case ICR:
		v := cia.icr
		if cia.ir {
			v |= ICRIR
		}
		if !peek {
			cia.icr = 0
			cia.ir = false
		}
		return v
	case CRA:
		return cia.ta.control
	case CRB:
		return cia.tb.control
	}
	return 0xff
}

// WriteRegister implements the memory.IODevice interface.
func (cia *CIA) WriteRegister(reg uint8, data uint8) {
	pb := cia.PortB()

	switch reg & 0x0f {
	case PRA:
		cia.pra = data
		cia.notify(PRA)
	case DDRA:
		cia.ddra = data
		cia.notify(PRA)
	case PRB:
		cia.prb = data
	case DDRB:
		cia.ddrb = data
	case TALO:
		cia.ta.writeLatchLo(data)
	case TAHI:
		cia.ta.writeLatchHi(data)
	case TBLO:
		cia.tb.writeLatchLo(data)
	case TBHI:
		cia.tb.writeLatchHi(data)
	case TOD10THS:
		cia.writeTOD(todTenths, data)
	case TODSEC:
		cia.writeTOD(todSeconds, data)
	case TODMIN:
		cia.writeTOD(todMinutes, data)
	case TODHR:
		cia.writeTOD(todHours, data)
	case SDR:
		cia.sdr = data
		if cia.ta.control&crSPMode != 0 {
			if cia.shiftBits == 0 {
				cia.shift = data
				cia.shiftBits = 8
				cia.shiftHalf = false
			} else {
				cia.sdrLoaded = true
			}
		}
	case ICR:
		if data&ICRIR != 0 {
			cia.mask |= data & 0x1f
		} else {
			cia.mask &^= data & 0x1f
		}
		if cia.icr&cia.mask != 0 {
			cia.ir = true
		}
	case CRA:
		if (data^cia.ta.control)&crSPMode != 0 {
			cia.shiftBits = 0
			cia.sdrLoaded = false
		}
		cia.ta.writeControl(data)
	case CRB:
		cia.tb.writeControl(data)
	}

	if cia.PortB() != pb {
		cia.notify(PRB)
	}
}

func (cia *CIA) writeTOD(idx int, data uint8) {
	if cia.tod.write(idx, data, cia.tb.control&crbAlarm != 0) {
		cia.setICR(ICRAlarm)
	}
}
