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

import "github.com/technic0/Ready/logger"

// Step the emulation one CPU instruction. Input pushed since the last step is
// handled before the instruction begins. Returns the number of cycles taken,
// which includes any cycles stolen by the VIC.
func (m *Machine) Step() (int, error) {
	if err := m.Input.Process(); err != nil {
		return 0, err
	}

	err := m.CPU.ExecuteInstruction(m.cycle)
	n := m.CPU.LastResult.TotalCycles()

	// the frame counter is kept inside the frame budget however the machine
	// is being stepped
	if budget := m.FrameBudget(); m.frameCycles >= budget {
		m.frameCycles -= budget
		m.frameDone = true
	}

	if err != nil {
		return n, err
	}

	// a drive fault stops the machine once. the drive stays dead until the
	// next reset and the fault is available from DriveFault()
	if m.Drive != nil && m.driveErr == nil {
		if err := m.Drive.Err(); err != nil {
			m.driveErr = err
			logger.Logf(m.env, "machine", "drive fault: %v", err)
			return n, err
		}
	}

	m.boundary()

	return n, nil
}

// DriveFault returns the error that stopped the disk drive. Returns nil if
// there is no drive or if the drive is running normally.
func (m *Machine) DriveFault() error {
	return m.driveErr
}

// cycle is called by the CPU after every CPU cycle. It defines the order of
// operation for the rest of the machine. The VIC goes first because BA must
// be known before the next CPU read cycle.
func (m *Machine) cycle() error {
	m.cycles++
	m.frameCycles++

	ba := m.VIC.Step()
	m.SID.Step()
	m.CIA1.Step()
	m.CIA2.Step()

	m.Datasette.Advance(1)
	m.CIA1.SetFlag(m.Datasette.AssertsInterrupt())
	m.Mem.Port.SetSense(m.Datasette.Playing())

	if m.Drive != nil {
		m.Drive.Advance(1)
	}

	// the light pen is triggered on the falling edge of the line
	pen := m.lightPen || m.Joysticks[0].AssertsInterrupt()
	if pen && !m.lightPenLine {
		m.VIC.TriggerLightPen()
	}
	m.lightPenLine = pen

	m.CPU.SetIRQ(irqVIC, m.VIC.IRQ())
	m.CPU.SetIRQ(irqCIA1, m.CIA1.IRQ())
	m.CPU.SetNMI(nmiCIA2, m.CIA2.IRQ())
	m.CPU.SetNMI(nmiRestore, m.Keyboard.AssertsInterrupt())

	m.CPU.RdyFlg = !ba

	return nil
}

// boundary is called at the end of every instruction.
func (m *Machine) boundary() {
	irq := m.CPU.IRQ()
	nmi := m.CPU.NMI()
	if irq != m.irqLine || nmi != m.nmiLine {
		m.irqLine = irq
		m.nmiLine = nmi
		if m.callbacks.OnInterruptStateChange != nil {
			m.callbacks.OnInterruptStateChange(irq, nmi)
		}
	}

	if fn := m.VIC.FrameNum(); fn != m.lastFrame {
		m.lastFrame = fn
		if m.callbacks.OnFrameReady != nil {
			m.callbacks.OnFrameReady(m.VIC.HandOff())
		}

		// audio is drained every frame whether there is a callback or not
		batch := m.SID.Drain()
		if m.callbacks.OnAudioBatchReady != nil {
			m.callbacks.OnAudioBatchReady(batch)
		}
	}
}
