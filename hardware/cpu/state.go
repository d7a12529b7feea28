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

package cpu

// State is the CPU state that is saved in a snapshot. It is a fixed size
// structure.
type State struct {
	PC       uint16
	A        uint8
	X        uint8
	Y        uint8
	SP       uint8
	Status   uint8
	IRQ      uint8
	NMI      uint8
	NMILatch bool
	Killed   bool
	RdyFlg   bool
}

// State returns the current state of the CPU. The state is only meaningful
// at an instruction boundary. See AtBoundary().
func (mc *CPU) State() State {
	return State{
		PC:       mc.PC.Address(),
		A:        mc.A.Value(),
		X:        mc.X.Value(),
		Y:        mc.Y.Value(),
		SP:       mc.SP.Value(),
		Status:   mc.Status.Value(),
		IRQ:      uint8(mc.irq),
		NMI:      uint8(mc.nmi),
		NMILatch: mc.nmiLatch,
		Killed:   mc.Killed,
		RdyFlg:   mc.RdyFlg,
	}
}

// SetState restores the CPU to a previously saved state. The CPU is left at
// an instruction boundary.
func (mc *CPU) SetState(s State) {
	mc.LastResult.Reset()
	mc.LastResult.Address = s.PC
	mc.LastResult.Final = true
	mc.Interrupted = true

	mc.PC.Load(s.PC)
	mc.A.Load(s.A)
	mc.X.Load(s.X)
	mc.Y.Load(s.Y)
	mc.SP.Load(s.SP)
	mc.Status.Load(s.Status)
	mc.Status.Break = false
	mc.irq = InterruptLine(s.IRQ)
	mc.nmi = InterruptLine(s.NMI)
	mc.nmiLatch = s.NMILatch
	mc.Killed = s.Killed
	mc.RdyFlg = s.RdyFlg
}
