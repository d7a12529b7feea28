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
	"github.com/technic0/Ready/hardware/via"
	"github.com/technic0/Ready/media"
)

// Port B of the second VIA.
const (
	pbStepper  = 0x03
	pbMotor    = 0x04
	pbLED      = 0x08
	pbWriteOK  = 0x10
	pbDensity  = 0x60
	pbSync     = 0x80
	densityShf = 5
)

// the head is timed against the 16MHz crystal of the drive. a bit cell is
// (16 - density) * 4 ticks long
const (
	ticksPerCycle = 16
	syncBits      = 10
)

// mechanism is the disk mechanism as seen through the ports of the second
// VIA. it implements the via.PortDevice interface.
type mechanism struct {
	disk *media.Disk

	halfTrack int
	motor     bool
	led       bool
	density   uint8

	// position of the head on the track in bits
	headPos int
	ticks   int

	// consecutive one bits read. a run of syncBits is a SYNC mark
	ones int

	// the byte being assembled or written and the number of bits so far
	shift uint8
	bits  int

	// the last complete byte read from the disk
	latch uint8

	writeMode bool

	// bits have been written since write mode was entered
	writePending bool

	// the byte ready line is low for one cycle
	byteReady bool
}

// the GCR data under the head. the head straddles two tracks when positioned
// on an odd half-track and an unformatted half-track reads the track below it
func (m *mechanism) track() []byte {
	if m.disk == nil {
		return nil
	}
	t := m.disk.Tracks[m.halfTrack]
	if len(t) == 0 && m.halfTrack&0x01 == 0x01 {
		t = m.disk.Tracks[m.halfTrack-1]
	}
	return t
}

func (m *mechanism) trackBits() int {
	if t := m.track(); len(t) > 0 {
		return len(t) * 8
	}
	return media.TrackBytes(m.halfTrack/2+1) * 8
}

func (m *mechanism) sync() bool {
	return !m.writeMode && m.ones >= syncBits
}

// step the head by one half-track. the head only moves if the active stepper
// phase is next to the phase of the current position
func (m *mechanism) step(phase uint8) {
	var to int
	switch (int(phase) - m.halfTrack) & 0x03 {
	case 1:
		to = m.halfTrack + 1
	case 3:
		to = m.halfTrack - 1
	default:
		return
	}
	if to < 0 || to >= media.MaxHalfTracks {
		return
	}

	m.flush()

	// the disk keeps turning so the angular position of the head is kept
	bits := m.trackBits()
	m.halfTrack = to
	m.headPos = m.headPos * m.trackBits() / bits
}

// flush marks the track as modified if anything has been written to it
func (m *mechanism) flush() {
	if m.writePending {
		m.writePending = false
		if m.disk != nil {
			m.disk.SetModified(m.halfTrack)
		}
	}
}

// BusRead implements the via.PortDevice interface.
func (m *mechanism) BusRead(address uint16) uint8 {
	if address == via.PA {
		if m.writeMode {
			return 0xff
		}
		return m.latch
	}

	v := uint8(0xff)
	if m.sync() {
		v &^= pbSync
	}
	if m.disk != nil && m.disk.WriteProtected {
		v &^= pbWriteOK
	}
	return v
}

// BusWrite implements the via.PortDevice interface.
func (m *mechanism) BusWrite(address uint16, data uint8) {
	if address != via.PB {
		return
	}
	m.step(data & pbStepper)
	m.motor = data&pbMotor == pbMotor
	m.led = data&pbLED == pbLED
	m.density = (data & pbDensity) >> densityShf
}

// readBit reads the next bit from the disk. the result is false if there is
// no disk or the track is unformatted
func (m *mechanism) readBit() bool {
	t := m.track()
	bits := m.trackBits()
	if m.headPos >= bits {
		m.headPos = 0
	}
	var b bool
	if len(t) > 0 {
		b = t[m.headPos>>3]&(0x80>>(m.headPos&0x07)) != 0
	}
	m.headPos = (m.headPos + 1) % bits
	return b
}

// writeBit writes a bit to the disk. a missing track is created at the
// density of the zone it should be in
func (m *mechanism) writeBit(b bool) {
	bits := m.trackBits()
	if m.headPos >= bits {
		m.headPos = 0
	}
	if m.disk == nil || m.disk.WriteProtected {
		m.headPos = (m.headPos + 1) % bits
		return
	}

	t := m.disk.Tracks[m.halfTrack]
	if len(t) == 0 {
		t = make([]byte, bits/8)
		m.disk.Tracks[m.halfTrack] = t
	}

	mask := uint8(0x80 >> (m.headPos & 0x07))
	if b {
		t[m.headPos>>3] |= mask
	} else {
		t[m.headPos>>3] &^= mask
	}
	m.writePending = true
	m.headPos = (m.headPos + 1) % bits
}
