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

// Package joystick implements a digital joystick for the two control ports.
// Control port 1 is read through port B of CIA1 and control port 2 through
// port A. All lines are active low.
//
// The fire button of control port 1 shares its line with the light pen input
// of the VIC.
package joystick

import (
	"fmt"
	"strings"

	"github.com/technic0/Ready/hardware/peripherals"
)

// Direction is a bitmask of the directions the joystick is pushed in. The bits
// are in the same position as the port lines.
type Direction uint8

// List of valid Direction bits.
const (
	Centre Direction = 0x00
	Up     Direction = 0x01
	Down   Direction = 0x02
	Left   Direction = 0x04
	Right  Direction = 0x08
)

const fireBit = 0x10

func (d Direction) String() string {
	if d == Centre {
		return "centre"
	}
	s := strings.Builder{}
	for _, b := range []struct {
		d Direction
		n string
	}{{Up, "up"}, {Down, "down"}, {Left, "left"}, {Right, "right"}} {
		if d&b.d == b.d {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(b.n)
		}
	}
	return s.String()
}

// Joystick implements the peripherals.Peripheral interface.
type Joystick struct {
	id peripherals.ID

	direction Direction
	fire      bool
}

// NewJoystick is the preferred method of initialisation for the Joystick type.
// The id argument should be peripherals.Joystick1 or peripherals.Joystick2.
func NewJoystick(id peripherals.ID) (*Joystick, error) {
	switch id {
	case peripherals.Joystick1, peripherals.Joystick2:
	default:
		return nil, fmt.Errorf("joystick: not a joystick port (%s)", id)
	}
	return &Joystick{id: id}, nil
}

func (j *Joystick) String() string {
	if j.fire {
		return fmt.Sprintf("%s: %s fire", j.id, j.direction)
	}
	return fmt.Sprintf("%s: %s", j.id, j.direction)
}

// ID implements the peripherals.Peripheral interface.
func (j *Joystick) ID() peripherals.ID {
	return j.id
}

// Reset implements the peripherals.Peripheral interface.
func (j *Joystick) Reset() {
	j.direction = Centre
	j.fire = false
}

// Advance implements the peripherals.Peripheral interface.
func (j *Joystick) Advance(_ int) {
}

// SetDirection sets the direction the joystick is pushed in. Opposing
// directions cannot be pushed at the same time and the second direction of
// the pair is ignored.
func (j *Joystick) SetDirection(d Direction) {
	if d&(Up|Down) == Up|Down {
		d &^= Down
	}
	if d&(Left|Right) == Left|Right {
		d &^= Right
	}
	j.direction = d
}

// Direction returns the current direction.
func (j *Joystick) Direction() Direction {
	return j.direction
}

// SetFire sets the state of the fire button.
func (j *Joystick) SetFire(fire bool) {
	j.fire = fire
}

// Fire returns the state of the fire button.
func (j *Joystick) Fire() bool {
	return j.fire
}

// the CIA1 port the joystick drives
func (j *Joystick) port() uint16 {
	if j.id == peripherals.Joystick1 {
		return peripherals.PortB
	}
	return peripherals.PortA
}

// BusRead implements the peripherals.Peripheral interface.
func (j *Joystick) BusRead(address uint16) uint8 {
	if address != j.port() {
		return 0xff
	}
	v := uint8(j.direction)
	if j.fire {
		v |= fireBit
	}
	return ^v
}

// BusWrite implements the peripherals.Peripheral interface. The joystick
// ignores the port output.
func (j *Joystick) BusWrite(_ uint16, _ uint8) {
}

// AssertsInterrupt implements the peripherals.Peripheral interface. Returns
// true if the light pen line is being held low by the fire button. Only
// the joystick in control port 1 is connected to the light pen input.
func (j *Joystick) AssertsInterrupt() bool {
	return j.fire && j.id == peripherals.Joystick1
}

// State is the state of a joystick.
type State struct {
	Direction Direction
	Fire      bool
}

// State returns the current state of the joystick.
func (j *Joystick) State() State {
	return State{Direction: j.direction, Fire: j.fire}
}

// SetState applies the state to the joystick.
func (j *Joystick) SetState(s State) {
	j.direction = s.Direction
	j.fire = s.Fire
}
