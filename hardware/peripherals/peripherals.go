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

package peripherals

import (
	"fmt"
	"strings"
)

// ID identifies a peripheral.
type ID string

// List of valid peripheral IDs.
const (
	Keyboard  ID = "keyboard"
	Joystick1 ID = "joystick1"
	Joystick2 ID = "joystick2"
	Datasette ID = "datasette"
	Drive8    ID = "drive8"
)

// The port registers as seen by peripherals. The values are the register
// numbers of the ports in both the CIA and the VIA.
const (
	PortA uint16 = 0
	PortB uint16 = 1
)

// Peripheral is implemented by every device attached to the machine.
type Peripheral interface {
	ID() ID

	// reset the peripheral to its power-on state. inserted media is not
	// removed
	Reset()

	// advance the peripheral by the number of system cycles
	Advance(cycles int)

	BusRead(address uint16) uint8
	BusWrite(address uint16, data uint8)

	// whether the peripheral is asserting its interrupt output. what the
	// interrupt output is connected to depends on the peripheral
	AssertsInterrupt() bool
}

// Part priorities used to order the parts of a machine.
const (
	LowPriority    = 50
	NormalPriority = 100
	HighPriority   = 200
)

// Part describes a component of the machine.
type Part struct {
	ID       ID
	Name     string
	Priority int
}

func (p Part) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.ID)
}

// Parts is a list of Part values.
type Parts []Part

func (p Parts) String() string {
	s := strings.Builder{}
	for i, pt := range p {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(pt.String())
	}
	return s.String()
}
