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

// the shift register mode from bits 2 to 4 of the ACR. modes 1 to 3 shift in
// and modes 4 to 7 shift out
func (via *VIA) srMode() uint8 {
	return (via.acr & acrSRMode) >> 2
}

func (via *VIA) shift() {
	mode := via.srMode()

	// mode 4 shifts continuously without interrupts
	if via.srCount == 0 && mode != 4 {
		return
	}

	if mode >= 4 {
		bit := via.sr&0x80 != 0
		via.sr <<= 1
		if bit {
			via.sr |= 0x01
		}
		via.cb2Out = bit
	} else {
		via.sr <<= 1
		if via.cb2 {
			via.sr |= 0x01
		}
	}

	if mode == 4 {
		return
	}

	via.srCount--
	if via.srCount == 0 {
		via.setIFR(IFRSR)
	}
}

// SetCA1 sets the level of the CA1 input. The active edge is selected by bit
// 0 of the PCR.
func (via *VIA) SetCA1(level bool) {
	if level == via.ca1 {
		return
	}
	via.ca1 = level

	if level != (via.pcr&0x01 != 0) {
		return
	}

	via.setIFR(IFRCA1)
	if via.acr&acrPALatch != 0 {
		via.ira = via.pins(PA)
	}

	// handshake output returns high on the active edge
	if via.pcr&0x0e == 0x08 {
		via.ca2Out = true
	}
}

// SetCA2 sets the level of the CA2 input. It has no effect when CA2 is an
// output.
func (via *VIA) SetCA2(level bool) {
	if level == via.ca2 {
		return
	}
	via.ca2 = level

	if via.pcr&0x08 != 0 {
		return
	}
	if level == (via.pcr&0x04 != 0) {
		via.setIFR(IFRCA2)
	}
}

// SetCB1 sets the level of the CB1 input. The active edge is selected by bit
// 4 of the PCR. CB1 also clocks the shift register in external clock modes.
func (via *VIA) SetCB1(level bool) {
	if level == via.cb1 {
		return
	}
	via.cb1 = level

	switch via.srMode() {
	case 3, 7:
		if level {
			via.shift()
		}
	}

	if level != (via.pcr&0x10 != 0) {
		return
	}

	via.setIFR(IFRCB1)
	if via.acr&acrPBLatch != 0 {
		via.irb = via.pins(PB)
	}

	if via.pcr&0xe0 == 0x80 {
		via.cb2Out = true
	}
}

// SetCB2 sets the level of the CB2 input. It has no effect when CB2 is an
// output.
func (via *VIA) SetCB2(level bool) {
	if level == via.cb2 {
		return
	}
	via.cb2 = level

	if via.pcr&0x80 != 0 {
		return
	}
	if level == (via.pcr&0x40 != 0) {
		via.setIFR(IFRCB2)
	}
}

// access to port A through ORA clears the CA flags and starts the CA2
// handshake
func (via *VIA) handshakeA() {
	via.clearIFR(IFRCA1)
	if via.pcr&0x0a != 0x02 {
		via.clearIFR(IFRCA2)
	}
	switch via.pcr & 0x0e {
	case 0x08:
		via.ca2Out = false
	case 0x0a:
		via.ca2Out = false
		via.ca2Pulse = true
	}
}

// as above for port B. the CB2 handshake happens only on writes
func (via *VIA) handshakeB(write bool) {
	via.clearIFR(IFRCB1)
	if via.pcr&0xa0 != 0x20 {
		via.clearIFR(IFRCB2)
	}
	if !write {
		return
	}
	switch via.pcr & 0xe0 {
	case 0x80:
		via.cb2Out = false
	case 0xa0:
		via.cb2Out = false
		via.cb2Pulse = true
	}
}
