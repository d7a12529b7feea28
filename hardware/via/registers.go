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

package via

// ReadRegister returns the value of the register, with all the side effects
// of a real read.
func (via *VIA) ReadRegister(reg uint8) uint8 {
	return via.read(reg&0x0f, false)
}

// PeekRegister returns the value of the register without side effects.
func (via *VIA) PeekRegister(reg uint8) uint8 {
	return via.read(reg&0x0f, true)
}

func (via *VIA) read(reg uint8, peek bool) uint8 {
	switch reg {
	case ORB:
		in := via.pins(PB)
		if via.acr&acrPBLatch != 0 {
			in = via.irb
		}
		ddr := via.ddrb
		if via.acr&acrT1PB7 != 0 {
			ddr |= 0x80
		}
		if !peek {
			via.handshakeB(false)
		}
		return via.PortB()&ddr | in&^ddr
	case ORA, ORANH:
		v := via.pins(PA)
		if via.acr&acrPALatch != 0 {
			v = via.ira
		}
		if !peek && reg == ORA {
			via.handshakeA()
		}
		return v
	case DDRB:
		return via.ddrb
	case DDRA:
		return via.ddra
	case T1CL:
		if !peek {
			via.clearIFR(IFRT1)
		}
		return uint8(via.t1)
	case T1CH:
		return uint8(via.t1 >> 8)
	case T1LL:
		return uint8(via.t1latch)
	case T1LH:
		return uint8(via.t1latch >> 8)
	case T2CL:
		if !peek {
			via.clearIFR(IFRT2)
		}
		return uint8(via.t2)
	case T2CH:
		return uint8(via.t2 >> 8)
	case SR:
		if !peek {
			via.clearIFR(IFRSR)
			if via.srMode() != 0 {
				via.srCount = 8
			}
		}
		return via.sr
	case ACR:
		return via.acr
	case PCR:
		return via.pcr
	case IFR:
		return via.readIFR()
	case IER:
		return via.ier | 0x80
	}
	return 0xff
}

// WriteRegister writes to the register, with all the side effects of a real
// write.
func (via *VIA) WriteRegister(reg uint8, data uint8) {
	pb := via.PortB()

	switch reg & 0x0f {
	case ORB:
		via.orb = data
		via.handshakeB(true)
	case ORA:
		via.ora = data
		via.handshakeA()
		via.notify(PA)
	case ORANH:
		via.ora = data
		via.notify(PA)
	case DDRB:
		via.ddrb = data
	case DDRA:
		via.ddra = data
		via.notify(PA)
	case T1CL, T1LL:
		via.t1latch = via.t1latch&0xff00 | uint16(data)
	case T1CH:
		via.t1latch = via.t1latch&0x00ff | uint16(data)<<8
		via.t1 = via.t1latch
		via.clearIFR(IFRT1)
		via.t1armed = true
		via.t1reload = false
		via.t1skip = true
		if via.acr&acrT1PB7 != 0 {
			via.pb7 = false
		}
	case T1LH:
		via.t1latch = via.t1latch&0x00ff | uint16(data)<<8
		via.clearIFR(IFRT1)
	case T2CL:
		via.t2latchLo = data
	case T2CH:
		via.t2 = uint16(data)<<8 | uint16(via.t2latchLo)
		via.clearIFR(IFRT2)
		via.t2armed = true
		via.t2skip = true
	case SR:
		via.sr = data
		via.clearIFR(IFRSR)
		if via.srMode() != 0 {
			via.srCount = 8
		}
	case ACR:
		via.acr = data
	case PCR:
		via.pcr = data
		switch data & 0x0e {
		case 0x0c:
			via.ca2Out = false
		case 0x0e:
			via.ca2Out = true
		}
		switch data & 0xe0 {
		case 0xc0:
			via.cb2Out = false
		case 0xe0:
			via.cb2Out = true
		}
	case IFR:
		via.clearIFR(data & 0x7f)
	case IER:
		if data&0x80 != 0 {
			via.ier |= data & 0x7f
		} else {
			via.ier &^= data & 0x7f
		}
	}

	if via.PortB() != pb || reg&0x0f == ORB || reg&0x0f == DDRB {
		via.notify(PB)
	}
}
