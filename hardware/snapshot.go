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

package hardware

import (
	"github.com/technic0/Ready/faults"
)

// State is the state of the machine that does not belong to any one of the
// sub-systems.
type State struct {
	Cycles      uint64
	FrameCycles int
	LastFrame   uint64
	Swapped     bool

	LightPen     bool
	LightPenLine bool

	IRQLine bool
	NMILine bool
}

// State returns the current state of the machine.
func (m *Machine) State() State {
	return State{
		Cycles:       m.cycles,
		FrameCycles:  m.frameCycles,
		LastFrame:    m.lastFrame,
		Swapped:      m.swapped,
		LightPen:     m.lightPen,
		LightPenLine: m.lightPenLine,
		IRQLine:      m.irqLine,
		NMILine:      m.nmiLine,
	}
}

// CheckState returns an error if the state cannot be applied to the machine.
func (m *Machine) CheckState(s State) error {
	if s.FrameCycles < 0 || s.FrameCycles >= m.FrameBudget() {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "machine: frame cycles out of range")
	}
	return nil
}

// SetState applies the state to the machine. The state should have been
// checked with CheckState.
func (m *Machine) SetState(s State) {
	m.cycles = s.Cycles
	m.frameCycles = s.FrameCycles
	m.lastFrame = s.LastFrame
	m.swapped = s.Swapped
	m.lightPen = s.LightPen
	m.lightPenLine = s.LightPenLine
	m.irqLine = s.IRQLine
	m.nmiLine = s.NMILine
}
