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

package joystick_test

import (
	"testing"

	"github.com/technic0/Ready/hardware/peripherals"
	"github.com/technic0/Ready/hardware/peripherals/joystick"
	"github.com/technic0/Ready/test"
)

func TestPorts(t *testing.T) {
	j1, err := joystick.NewJoystick(peripherals.Joystick1)
	test.DemandSuccess(t, err)
	test.DemandImplements[peripherals.Peripheral](t, j1)
	j2, err := joystick.NewJoystick(peripherals.Joystick2)
	test.DemandSuccess(t, err)

	_, err = joystick.NewJoystick(peripherals.Keyboard)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, j1.BusRead(peripherals.PortB), 0xff)
	test.ExpectEquality(t, j2.BusRead(peripherals.PortA), 0xff)

	j1.SetDirection(joystick.Up | joystick.Left)
	test.ExpectEquality(t, j1.BusRead(peripherals.PortB), 0xfa)
	test.ExpectEquality(t, j1.BusRead(peripherals.PortA), 0xff)

	j2.SetDirection(joystick.Right)
	j2.SetFire(true)
	test.ExpectEquality(t, j2.BusRead(peripherals.PortA), 0xe7)
	test.ExpectEquality(t, j2.BusRead(peripherals.PortB), 0xff)
	test.ExpectEquality(t, j2.String(), "joystick2: right fire")

	// opposing directions
	j1.SetDirection(joystick.Up | joystick.Down | joystick.Left | joystick.Right)
	test.ExpectEquality(t, j1.Direction(), joystick.Up|joystick.Left)
}

func TestLightPen(t *testing.T) {
	j1, _ := joystick.NewJoystick(peripherals.Joystick1)
	j2, _ := joystick.NewJoystick(peripherals.Joystick2)

	j1.SetFire(true)
	j2.SetFire(true)
	test.ExpectSuccess(t, j1.AssertsInterrupt())
	test.ExpectFailure(t, j2.AssertsInterrupt())

	s := j1.State()
	j1.Reset()
	test.ExpectFailure(t, j1.AssertsInterrupt())
	j1.SetState(s)
	test.ExpectSuccess(t, j1.Fire())
}
