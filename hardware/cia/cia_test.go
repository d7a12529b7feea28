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

package cia_test

import (
	"testing"

	"github.com/technic0/Ready/hardware/cia"
	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/test"
)

// a device that pulls port lines low and records the port outputs
type mockDevice struct {
	drive [2]uint8
	out   [2]uint8
}

func newMockDevice() *mockDevice {
	return &mockDevice{drive: [2]uint8{0xff, 0xff}}
}

func (dev *mockDevice) BusRead(address uint16) uint8 {
	return dev.drive[address]
}

func (dev *mockDevice) BusWrite(address uint16, data uint8) {
	dev.out[address] = data
}

func newCIA() *cia.CIA {
	return cia.NewCIA(nil, "CIA1", specification.SpecPAL)
}

func TestTimerContinuous(t *testing.T) {
	c := newCIA()
	c.WriteRegister(cia.TALO, 0x10)
	c.WriteRegister(cia.TAHI, 0x00)
	c.WriteRegister(cia.ICR, cia.ICRIR|cia.ICRTimerA)
	test.ExpectEquality(t, c.ReadRegister(cia.TALO), 0x10)

	c.WriteRegister(cia.CRA, 0x01)

	// the timer does not count in the cycle it was started
	c.Step()
	test.ExpectEquality(t, c.ReadRegister(cia.TALO), 0x10)

	c.Advance(0x10)
	test.ExpectEquality(t, c.ReadRegister(cia.TALO), 0x00)
	test.ExpectFailure(t, c.IRQ())

	c.Step()
	test.ExpectSuccess(t, c.IRQ())
	test.ExpectEquality(t, c.ReadRegister(cia.TALO), 0x10)
	test.ExpectEquality(t, c.ReadRegister(cia.CRA)&0x01, 0x01)

	// reading the ICR clears it
	test.ExpectEquality(t, c.ReadRegister(cia.ICR), cia.ICRIR|cia.ICRTimerA)
	test.ExpectFailure(t, c.IRQ())
	test.ExpectEquality(t, c.ReadRegister(cia.ICR), 0x00)

	// period is latch+1
	c.Advance(0x10)
	test.ExpectFailure(t, c.IRQ())
	c.Step()
	test.ExpectSuccess(t, c.IRQ())
}

func TestTimerOneShot(t *testing.T) {
	c := newCIA()
	c.WriteRegister(cia.CRA, 0x08)
	c.WriteRegister(cia.TALO, 0x04)

	// writing the high byte starts a timer in one-shot mode
	c.WriteRegister(cia.TAHI, 0x00)
	test.ExpectEquality(t, c.ReadRegister(cia.CRA), 0x09)

	c.Advance(6)
	test.ExpectEquality(t, c.PeekRegister(cia.ICR), cia.ICRTimerA)
	test.ExpectEquality(t, c.ReadRegister(cia.CRA)&0x01, 0x00)
	test.ExpectEquality(t, c.ReadRegister(cia.TALO), 0x04)

	// masked interrupt does not assert the output
	test.ExpectFailure(t, c.IRQ())

	// but unmasking it does
	c.WriteRegister(cia.ICR, cia.ICRIR|cia.ICRTimerA)
	test.ExpectSuccess(t, c.IRQ())

	// force load
	c.WriteRegister(cia.TALO, 0x20)
	c.WriteRegister(cia.CRA, 0x10)
	test.ExpectEquality(t, c.ReadRegister(cia.TALO), 0x20)
	test.ExpectEquality(t, c.ReadRegister(cia.CRA), 0x00)
}

func TestTimerBCountsA(t *testing.T) {
	c := newCIA()
	c.WriteRegister(cia.TALO, 0x01)
	c.WriteRegister(cia.TAHI, 0x00)
	c.WriteRegister(cia.TBLO, 0x02)
	c.WriteRegister(cia.TBHI, 0x00)
	c.WriteRegister(cia.CRB, 0x41)
	c.WriteRegister(cia.CRA, 0x01)

	c.Advance(6)
	test.ExpectEquality(t, c.PeekRegister(cia.ICR)&cia.ICRTimerB, 0x00)
	test.ExpectEquality(t, c.PeekRegister(cia.TBLO), 0x00)
	c.Step()
	test.ExpectEquality(t, c.PeekRegister(cia.ICR)&cia.ICRTimerB, cia.ICRTimerB)
	test.ExpectEquality(t, c.PeekRegister(cia.TBLO), 0x02)
}

func TestPorts(t *testing.T) {
	c := newCIA()
	dev := newMockDevice()
	c.Attach(dev)

	// inputs are pulled high
	test.ExpectEquality(t, dev.out[cia.PRA], 0xff)

	c.WriteRegister(cia.DDRA, 0xff)
	c.WriteRegister(cia.PRA, 0xfe)
	test.ExpectEquality(t, dev.out[cia.PRA], 0xfe)
	test.ExpectEquality(t, c.ReadRegister(cia.PRA), 0xfe)

	dev.drive[cia.PRB] = 0xf7
	test.ExpectEquality(t, c.ReadRegister(cia.PRB), 0xf7)

	// an output driven high is still pulled low by the device
	c.WriteRegister(cia.DDRB, 0x0f)
	c.WriteRegister(cia.PRB, 0x0f)
	test.ExpectEquality(t, c.ReadRegister(cia.PRB), 0xf7)

	c.Detach(dev)
	test.ExpectEquality(t, c.ReadRegister(cia.PRB), 0xff)
}

func TestTimerOutput(t *testing.T) {
	c := newCIA()
	dev := newMockDevice()
	c.Attach(dev)

	c.WriteRegister(cia.TALO, 0x02)
	c.WriteRegister(cia.TAHI, 0x00)
	c.WriteRegister(cia.CRA, 0x07)
	test.ExpectEquality(t, c.PortB()&0x40, 0x40)
	test.ExpectEquality(t, dev.out[cia.PRB]&0x40, 0x40)

	c.Advance(3)
	test.ExpectEquality(t, c.PortB()&0x40, 0x40)
	c.Step()
	test.ExpectEquality(t, c.PortB()&0x40, 0x00)
	test.ExpectEquality(t, dev.out[cia.PRB]&0x40, 0x00)
}

func TestSerialOut(t *testing.T) {
	c := newCIA()
	c.WriteRegister(cia.TALO, 0x00)
	c.WriteRegister(cia.TAHI, 0x00)
	c.WriteRegister(cia.CRA, 0x41)
	c.WriteRegister(cia.SDR, 0xa5)

	c.Advance(16)
	test.ExpectEquality(t, c.PeekRegister(cia.ICR)&cia.ICRSerial, 0x00)
	c.Step()
	test.ExpectEquality(t, c.PeekRegister(cia.ICR)&cia.ICRSerial, cia.ICRSerial)
}

func TestSerialIn(t *testing.T) {
	c := newCIA()
	for _, b := range []bool{true, false, true, false, false, true, false, true} {
		test.ExpectEquality(t, c.PeekRegister(cia.ICR)&cia.ICRSerial, 0x00)
		c.PulseCNT(b)
	}
	test.ExpectEquality(t, c.PeekRegister(cia.ICR)&cia.ICRSerial, cia.ICRSerial)
	test.ExpectEquality(t, c.ReadRegister(cia.SDR), 0xa5)
}

func TestFlag(t *testing.T) {
	c := newCIA()
	c.WriteRegister(cia.ICR, cia.ICRIR|cia.ICRFlag)

	c.SetFlag(true)
	test.ExpectSuccess(t, c.IRQ())
	test.ExpectEquality(t, c.ReadRegister(cia.ICR), cia.ICRIR|cia.ICRFlag)

	// the pin is still low. no new edge
	c.SetFlag(true)
	test.ExpectFailure(t, c.IRQ())

	c.SetFlag(false)
	test.ExpectFailure(t, c.IRQ())
	c.SetFlag(true)
	test.ExpectSuccess(t, c.IRQ())
}

// one tenth of a second at 50Hz is a little less than 100000 PAL cycles
const tenth = 100000

func TestTOD(t *testing.T) {
	c := newCIA()

	// 50Hz input
	c.WriteRegister(cia.CRA, 0x80)

	c.WriteRegister(cia.TODHR, 0x11)
	c.WriteRegister(cia.TODMIN, 0x59)
	c.WriteRegister(cia.TODSEC, 0x59)

	// the clock is halted until tenths is written
	c.Advance(tenth)
	test.ExpectEquality(t, c.PeekRegister(cia.TOD10THS), 0x00)

	c.WriteRegister(cia.TOD10THS, 0x09)
	c.Advance(tenth)

	test.ExpectEquality(t, c.ReadRegister(cia.TODHR), 0x92)
	test.ExpectEquality(t, c.ReadRegister(cia.TODMIN), 0x00)
	test.ExpectEquality(t, c.ReadRegister(cia.TODSEC), 0x00)

	// the clock is latched by the read of hours
	c.Advance(tenth)
	test.ExpectEquality(t, c.ReadRegister(cia.TOD10THS), 0x00)
	test.ExpectEquality(t, c.ReadRegister(cia.TOD10THS), 0x01)

	// alarm
	c.WriteRegister(cia.ICR, cia.ICRIR|cia.ICRAlarm)
	c.WriteRegister(cia.CRB, 0x80)
	c.WriteRegister(cia.TODHR, 0x92)
	c.WriteRegister(cia.TODMIN, 0x00)
	c.WriteRegister(cia.TODSEC, 0x00)
	c.WriteRegister(cia.TOD10THS, 0x02)
	c.WriteRegister(cia.CRB, 0x00)
	test.ExpectFailure(t, c.IRQ())

	// writing the alarm does not change the clock
	test.ExpectEquality(t, c.PeekRegister(cia.TOD10THS), 0x01)

	c.Advance(tenth)
	test.ExpectEquality(t, c.PeekRegister(cia.TOD10THS), 0x02)
	test.ExpectSuccess(t, c.IRQ())
	test.ExpectEquality(t, c.ReadRegister(cia.ICR), cia.ICRIR|cia.ICRAlarm)
}

func TestState(t *testing.T) {
	c := newCIA()
	c.WriteRegister(cia.TALO, 0x34)
	c.WriteRegister(cia.TAHI, 0x12)
	c.WriteRegister(cia.CRA, 0x01)
	c.Advance(100)

	s := c.State()
	c.Advance(1000)
	c.WriteRegister(cia.DDRA, 0x3f)
	test.ExpectInequality(t, c.State(), s)

	c.SetState(s)
	test.ExpectEquality(t, c.State(), s)
	test.ExpectEquality(t, c.ReadRegister(cia.DDRA), 0x00)

	// the restored CIA continues as the original did
	d := newCIA()
	d.SetState(s)
	c.Advance(5000)
	d.Advance(5000)
	test.ExpectEquality(t, c.State(), d.State())
}
