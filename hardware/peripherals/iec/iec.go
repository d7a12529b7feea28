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

package iec

import (
	"fmt"
	"strings"

	"github.com/technic0/Ready/hardware/peripherals"
)

// Line is a bitmask of the serial bus lines.
type Line uint8

// List of valid Line bits.
const (
	ATN Line = 1 << iota
	CLK
	DATA
)

func (l Line) String() string {
	s := strings.Builder{}
	for _, b := range []struct {
		l Line
		n string
	}{{ATN, "ATN"}, {CLK, "CLK"}, {DATA, "DATA"}} {
		if l&b.l != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(b.n)
		}
	}
	return s.String()
}

// Bus is the serial bus.
type Bus struct {
	computer ComputerPort
	drives   []*DrivePort

	// the state of ATN as last seen by the drives
	atn bool
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	b := &Bus{}
	b.computer.bus = b
	return b
}

func (b *Bus) String() string {
	low := b.Low()
	if low == 0 {
		return "all lines released"
	}
	return fmt.Sprintf("low: %s", low)
}

// Computer returns the port for the computer side of the bus. It should be
// attached to port A of CIA2.
func (b *Bus) Computer() *ComputerPort {
	return &b.computer
}

// AddDrive connects a drive to the bus. The device number must be between 8
// and 11. The onATN function is called with the new state of ATN whenever it
// changes and can be nil.
func (b *Bus) AddDrive(device int, onATN func(asserted bool)) (*DrivePort, error) {
	if device < 8 || device > 11 {
		return nil, fmt.Errorf("iec: invalid device number (%d)", device)
	}
	for _, d := range b.drives {
		if d.device == device {
			return nil, fmt.Errorf("iec: device number %d already on the bus", device)
		}
	}
	d := &DrivePort{
		bus:    b,
		device: device,
		onATN:  onATN,
	}
	b.drives = append(b.drives, d)
	return d, nil
}

// RemoveDrive disconnects the drive from the bus.
func (b *Bus) RemoveDrive(d *DrivePort) {
	for i, p := range b.drives {
		if p == d {
			b.drives = append(b.drives[:i], b.drives[i+1:]...)
			return
		}
	}
}

// Low returns the lines that are currently low.
func (b *Bus) Low() Line {
	low := b.computer.out
	atn := low&ATN != 0
	for _, d := range b.drives {
		low |= d.pulls(atn)
	}
	return low
}

func (b *Bus) update() {
	atn := b.computer.out&ATN != 0
	if atn == b.atn {
		return
	}
	b.atn = atn
	for _, d := range b.drives {
		if d.onATN != nil {
			d.onATN(atn)
		}
	}
}

// ComputerPort is the computer side of the bus. It implements the
// cia.PortDevice interface.
type ComputerPort struct {
	bus *Bus

	// lines pulled low by the computer
	out Line
}

// BusRead implements the cia.PortDevice interface.
func (p *ComputerPort) BusRead(address uint16) uint8 {
	if address != peripherals.PortA {
		return 0xff
	}
	v := uint8(0xff)
	low := p.bus.Low()
	if low&CLK != 0 {
		v &^= 0x40
	}
	if low&DATA != 0 {
		v &^= 0x80
	}
	return v
}

// BusWrite implements the cia.PortDevice interface.
func (p *ComputerPort) BusWrite(address uint16, data uint8) {
	if address != peripherals.PortA {
		return
	}
	p.out = 0
	if data&0x08 != 0 {
		p.out |= ATN
	}
	if data&0x10 != 0 {
		p.out |= CLK
	}
	if data&0x20 != 0 {
		p.out |= DATA
	}
	p.bus.update()
}

// DrivePort is the drive side of the bus. It implements the via.PortDevice
// interface.
type DrivePort struct {
	bus    *Bus
	device int
	onATN  func(bool)

	// lines pulled low by the drive and the ATN acknowledge output
	out  Line
	atna bool
}

// Device returns the device number of the drive.
func (d *DrivePort) Device() int {
	return d.device
}

func (d *DrivePort) pulls(atn bool) Line {
	p := d.out
	if atn != d.atna {
		p |= DATA
	}
	return p
}

// BusRead implements the via.PortDevice interface.
func (d *DrivePort) BusRead(address uint16) uint8 {
	if address != peripherals.PortB {
		return 0xff
	}

	// output bits read back high and the jumper bits encode the device number
	v := uint8(0x1a) | uint8(d.device-8)<<5

	low := d.bus.Low()
	if low&DATA != 0 {
		v |= 0x01
	}
	if low&CLK != 0 {
		v |= 0x04
	}
	if low&ATN != 0 {
		v |= 0x80
	}
	return v
}

// BusWrite implements the via.PortDevice interface.
func (d *DrivePort) BusWrite(address uint16, data uint8) {
	if address != peripherals.PortB {
		return
	}
	d.out = 0
	if data&0x02 != 0 {
		d.out |= DATA
	}
	if data&0x08 != 0 {
		d.out |= CLK
	}
	d.atna = data&0x10 != 0
}

// State is the state of the lines driven by the computer.
type State struct {
	Out Line
	ATN bool
}

// State returns the state of the computer side of the bus.
func (b *Bus) State() State {
	return State{Out: b.computer.out, ATN: b.atn}
}

// SetState applies the state to the computer side of the bus. The ATN
// callbacks are not called.
func (b *Bus) SetState(s State) {
	b.computer.out = s.Out
	b.atn = s.ATN
}

// DriveState is the state of the lines driven by a drive.
type DriveState struct {
	Out  Line
	ATNA bool
}

// State returns the state of the drive side of the bus.
func (d *DrivePort) State() DriveState {
	return DriveState{Out: d.out, ATNA: d.atna}
}

// SetState applies the state to the drive side of the bus.
func (d *DrivePort) SetState(s DriveState) {
	d.out = s.Out
	d.atna = s.ATNA
}
