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

package snapshot

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/cia"
	"github.com/technic0/Ready/hardware/cpu"
	"github.com/technic0/Ready/hardware/memory"
	"github.com/technic0/Ready/hardware/memory/memorymap"
	"github.com/technic0/Ready/hardware/peripherals/datasette"
	"github.com/technic0/Ready/hardware/peripherals/drive"
	"github.com/technic0/Ready/hardware/peripherals/iec"
	"github.com/technic0/Ready/hardware/peripherals/joystick"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
	"github.com/technic0/Ready/hardware/sid"
	"github.com/technic0/Ready/hardware/vic"
)

// device adapts the State functions of a part of the machine to the Device
// interface. The check and set functions can be nil.
type device[S any] struct {
	tag   Tag
	get   func() (S, error)
	check func(S) error
	set   func(S) error
}

func (d device[S]) SnapshotTag() Tag {
	return d.tag
}

func (d device[S]) MarshalState() ([]byte, error) {
	s, err := d.get()
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(s); err != nil {
		return nil, faults.Errorf(faults.SnapshotError, faults.IncompleteCapture, fmt.Errorf("%s: %w", d.tag, err))
	}
	return b.Bytes(), nil
}

func (d device[S]) PrepareState(data []byte) (func() error, error) {
	var s S
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return nil, faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, fmt.Errorf("%s: %w", d.tag, err))
	}
	if d.check != nil {
		if err := d.check(s); err != nil {
			return nil, err
		}
	}
	return func() error {
		return d.set(s)
	}, nil
}

// wraps a SetState() function that cannot fail
func noError[S any](f func(S)) func(S) error {
	return func(s S) error {
		f(s)
		return nil
	}
}

// wraps a State() function that cannot fail
func always[S any](f func() S) func() (S, error) {
	return func() (S, error) {
		return f(), nil
	}
}

// the devices of the machine in the order they are restored. devices that
// notify other devices when their state is set come before the devices that
// are notified
func devices(m *hardware.Machine) []Device {
	devs := []Device{
		device[hardware.State]{
			tag:   Tag{'M', 'A', 'C', 'H'},
			get:   always(m.State),
			check: m.CheckState,
			set:   noError(m.SetState),
		},
		device[cpu.State]{
			tag: Tag{'C', 'P', 'U', ' '},
			get: func() (cpu.State, error) {
				if !m.CPU.AtBoundary() {
					return cpu.State{}, faults.Errorf(faults.SnapshotError, faults.IncompleteCapture, "cpu: mid-instruction")
				}
				return m.CPU.State(), nil
			},
			set: noError(m.CPU.SetState),
		},
		device[cia.State]{
			tag: Tag{'C', 'I', 'A', '1'},
			get: always(m.CIA1.State),
			set: noError(m.CIA1.SetState),
		},
		device[cia.State]{
			tag: Tag{'C', 'I', 'A', '2'},
			get: always(m.CIA2.State),
			set: noError(m.CIA2.SetState),
		},
		device[*memory.State]{
			tag: Tag{'M', 'E', 'M', ' '},
			get: always(m.Mem.State),
			check: func(s *memory.State) error {
				if s.Selector > memorymap.MaxSelector {
					return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "memory: bank selector out of range")
				}
				return nil
			},
			set: m.Mem.SetState,
		},
		device[*vic.State]{
			tag:   Tag{'V', 'I', 'C', ' '},
			get:   always(m.VIC.State),
			check: m.VIC.CheckState,
			set:   m.VIC.SetState,
		},
		device[sid.State]{
			tag:   Tag{'S', 'I', 'D', ' '},
			get:   always(m.SID.State),
			check: m.SID.CheckState,
			set:   m.SID.SetState,
		},
		device[keyboard.State]{
			tag: Tag{'K', 'B', 'D', ' '},
			get: always(m.Keyboard.State),
			set: noError(m.Keyboard.SetState),
		},
		device[joystick.State]{
			tag: Tag{'J', 'O', 'Y', '1'},
			get: always(m.Joysticks[0].State),
			set: noError(m.Joysticks[0].SetState),
		},
		device[joystick.State]{
			tag: Tag{'J', 'O', 'Y', '2'},
			get: always(m.Joysticks[1].State),
			set: noError(m.Joysticks[1].SetState),
		},
		device[datasette.State]{
			tag:   Tag{'T', 'A', 'P', 'E'},
			get:   always(m.Datasette.State),
			check: m.Datasette.CheckState,
			set:   noError(m.Datasette.SetState),
		},
		device[iec.State]{
			tag: Tag{'I', 'E', 'C', ' '},
			get: always(m.IEC.State),
			set: noError(m.IEC.SetState),
		},
	}

	if m.Drive != nil {
		devs = append(devs, device[drive.State]{
			tag:   Tag{'D', 'R', 'V', '8'},
			get:   m.Drive.State,
			check: m.Drive.CheckState,
			set:   noError(m.Drive.SetState),
		})
	}

	return devs
}
