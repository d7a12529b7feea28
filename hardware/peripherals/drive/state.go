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
	"fmt"

	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware/cpu"
	"github.com/technic0/Ready/hardware/peripherals/iec"
	"github.com/technic0/Ready/hardware/via"
	"github.com/technic0/Ready/media"
)

// MechanismState is the state of the disk mechanism.
type MechanismState struct {
	HalfTrack    int
	Motor        bool
	LED          bool
	Density      uint8
	HeadPos      int
	Ticks        int
	Ones         int
	Shift        uint8
	Bits         int
	Latch        uint8
	WriteMode    bool
	WritePending bool
	ByteReady    bool
}

// State is the state of the drive. The disk is not part of the state.
type State struct {
	CPU  cpu.State
	RAM  [RAMSize]uint8
	VIA1 via.State
	VIA2 via.State
	Port iec.DriveState
	Mech MechanismState
	Acc  int
	Debt int
}

// State returns the current state of the drive. The state cannot be captured
// while the CPU is in the middle of an instruction or while a write to the
// disk is in progress.
func (d *Drive) State() (State, error) {
	if !d.cpu.AtBoundary() {
		return State{}, faults.Errorf(faults.SnapshotError, faults.IncompleteCapture, fmt.Sprintf("%s: cpu is mid-instruction", d.id))
	}
	if d.mech.writePending {
		return State{}, faults.Errorf(faults.SnapshotError, faults.IncompleteCapture, fmt.Sprintf("%s: write to half-track %d in progress", d.id, d.mech.halfTrack))
	}

	m := &d.mech
	return State{
		CPU:  d.cpu.State(),
		RAM:  d.mem.ram,
		VIA1: d.via1.State(),
		VIA2: d.via2.State(),
		Port: d.port.State(),
		Mech: MechanismState{
			HalfTrack:    m.halfTrack,
			Motor:        m.motor,
			LED:          m.led,
			Density:      m.density,
			HeadPos:      m.headPos,
			Ticks:        m.ticks,
			Ones:         m.ones,
			Shift:        m.shift,
			Bits:         m.bits,
			Latch:        m.latch,
			WriteMode:    m.writeMode,
			WritePending: m.writePending,
			ByteReady:    m.byteReady,
		},
		Acc:  d.acc,
		Debt: d.debt,
	}, nil
}

// CheckState returns an error if the state is not a valid state for the
// drive.
func (d *Drive) CheckState(s State) error {
	corrupt := func(detail string) error {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, fmt.Sprintf("%s: %s", d.id, detail))
	}

	if s.Mech.HalfTrack < 0 || s.Mech.HalfTrack >= media.MaxHalfTracks {
		return corrupt("head is off the disk")
	}
	if s.Mech.Density > 3 {
		return corrupt("invalid density")
	}
	if s.Mech.Bits < 0 || s.Mech.Bits > 7 || s.Mech.HeadPos < 0 {
		return corrupt("invalid head state")
	}
	if s.Acc < 0 || s.Acc >= d.clockHz {
		return corrupt("clock accumulator out of range")
	}
	return nil
}

// SetState applies the state to the drive. The state should have been checked
// with CheckState.
func (d *Drive) SetState(s State) {
	d.cpu.SetState(s.CPU)
	d.mem.ram = s.RAM
	d.via1.SetState(s.VIA1)
	d.via2.SetState(s.VIA2)
	d.port.SetState(s.Port)

	m := &d.mech
	m.halfTrack = s.Mech.HalfTrack
	m.motor = s.Mech.Motor
	m.led = s.Mech.LED
	m.density = s.Mech.Density
	m.headPos = s.Mech.HeadPos
	m.ticks = s.Mech.Ticks
	m.ones = s.Mech.Ones
	m.shift = s.Mech.Shift
	m.bits = s.Mech.Bits
	m.latch = s.Mech.Latch
	m.writeMode = s.Mech.WriteMode
	m.writePending = s.Mech.WritePending
	m.byteReady = s.Mech.ByteReady

	d.acc = s.Acc
	d.debt = s.Debt
	d.err = nil
}
