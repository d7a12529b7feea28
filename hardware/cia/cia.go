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

package cia

import (
	"fmt"

	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/hardware/specification"
)

// Register numbers. Registers are mirrored every 16 bytes.
const (
	PRA = iota
	PRB
	DDRA
	DDRB
	TALO
	TAHI
	TBLO
	TBHI
	TOD10THS
	TODSEC
	TODMIN
	TODHR
	SDR
	ICR
	CRA
	CRB
)

// Bits of the interrupt control register.
const (
	ICRTimerA = uint8(0x01)
	ICRTimerB = uint8(0x02)
	ICRAlarm  = uint8(0x04)
	ICRSerial = uint8(0x08)
	ICRFlag   = uint8(0x10)
	ICRIR     = uint8(0x80)
)

// Bits of the control registers. Bits 5 and 6 of CRB select the timer B input
// and are handled separately.
const (
	crStart     = uint8(0x01)
	crPBOn      = uint8(0x02)
	crOutMode   = uint8(0x04)
	crOneShot   = uint8(0x08)
	crForceLoad = uint8(0x10)
	crInMode    = uint8(0x20)
	crSPMode    = uint8(0x40)
	crTODIn     = uint8(0x80)
	crbInMode   = uint8(0x60)
	crbAlarm    = uint8(0x80)
)

// timer B input modes
const (
	inputClock    = 0x00
	inputCNT      = 0x20
	inputTimerA   = 0x40
	inputTimerCNT = 0x60
)

// PortDevice is implemented by anything attached to the ports of a CIA. The
// address argument is the register number of the port (PRA or PRB).
//
// BusRead returns the value the device drives onto the port lines. Lines the
// device does not drive must be returned as 1. BusWrite is called whenever
// the output of the port changes.
type PortDevice interface {
	BusRead(address uint16) uint8
	BusWrite(address uint16, data uint8)
}

// CIA represents a single 6526.
type CIA struct {
	env   *environment.Environment
	label string

	pra  uint8
	prb  uint8
	ddra uint8
	ddrb uint8

	devices []PortDevice

	ta timer
	tb timer

	tod tod

	// mains pulses are derived from the system clock with a fractional
	// accumulator
	mainsHz  int
	clockHz  int
	mainsAcc int

	// the interrupt data and mask. the IR bit of the data register is held
	// separately
	icr  uint8
	mask uint8
	ir   bool

	// serial port
	sdr       uint8
	shift     uint8
	shiftBits int
	shiftHalf bool
	sdrLoaded bool

	// the FLAG pin. true if the pin is being held low
	flag bool
}

// NewCIA is the preferred method of initialisation for the CIA type. The
// label is used in String() and in the memory summary.
func NewCIA(env *environment.Environment, label string, spec specification.Spec) *CIA {
	cia := &CIA{
		env:     env,
		label:   label,
		mainsHz: spec.MainsHz,
		clockHz: spec.ClockHz,
	}
	cia.Reset()
	return cia
}

// Label implements the memory.IODevice interface.
func (cia *CIA) Label() string {
	return cia.label
}

func (cia *CIA) String() string {
	return fmt.Sprintf("%s: PRA=%02x/%02x PRB=%02x/%02x TA=%04x/%04x TB=%04x/%04x ICR=%02x/%02x TOD=%s",
		cia.label,
		cia.pra, cia.ddra, cia.prb, cia.ddrb,
		cia.ta.counter, cia.ta.latch,
		cia.tb.counter, cia.tb.latch,
		cia.icr, cia.mask,
		cia.tod.String(),
	)
}

// Reset the CIA to its power-on state. The timer latches are set to $FFFF.
func (cia *CIA) Reset() {
	cia.pra = 0
	cia.prb = 0
	cia.ddra = 0
	cia.ddrb = 0
	cia.ta = timer{counter: 0xffff, latch: 0xffff}
	cia.tb = timer{counter: 0xffff, latch: 0xffff}
	cia.tod.reset()
	cia.mainsAcc = 0
	cia.icr = 0
	cia.mask = 0
	cia.ir = false
	cia.sdr = 0
	cia.shift = 0
	cia.shiftBits = 0
	cia.shiftHalf = false
	cia.sdrLoaded = false
	cia.flag = false
	cia.notify(PRA)
	cia.notify(PRB)
}

// Attach a device to the ports of the CIA. Devices see the current output of
// both ports immediately.
func (cia *CIA) Attach(dev PortDevice) {
	cia.devices = append(cia.devices, dev)
	dev.BusWrite(PRA, cia.PortA())
	dev.BusWrite(PRB, cia.PortB())
}

// Detach removes a device from the ports of the CIA.
func (cia *CIA) Detach(dev PortDevice) {
	for i, d := range cia.devices {
		if d == dev {
			cia.devices = append(cia.devices[:i], cia.devices[i+1:]...)
			return
		}
	}
}

// PortA returns the level of the port A output lines. Lines configured as
// input are pulled high.
func (cia *CIA) PortA() uint8 {
	return cia.pra | ^cia.ddra
}

// PortB returns the level of the port B output lines. Bits 6 and 7 are
// replaced by the timer outputs when they are enabled.
func (cia *CIA) PortB() uint8 {
	v := cia.prb | ^cia.ddrb
	if cia.ta.control&crPBOn != 0 {
		v &^= 0x40
		if cia.ta.output() {
			v |= 0x40
		}
	}
	if cia.tb.control&crPBOn != 0 {
		v &^= 0x80
		if cia.tb.output() {
			v |= 0x80
		}
	}
	return v
}

// the value of the port lines as seen by a read
func (cia *CIA) readPort(port uint16) uint8 {
	var v uint8
	if port == PRA {
		v = cia.PortA()
	} else {
		v = cia.PortB()
	}
	for _, d := range cia.devices {
		v &= d.BusRead(port)
	}
	return v
}

func (cia *CIA) notify(port uint16) {
	var v uint8
	if port == PRA {
		v = cia.PortA()
	} else {
		v = cia.PortB()
	}
	for _, d := range cia.devices {
		d.BusWrite(port, v)
	}
}

// IRQ returns true if the CIA is asserting its interrupt output. For CIA1
// this is connected to IRQ and for CIA2 to NMI.
func (cia *CIA) IRQ() bool {
	return cia.ir
}

func (cia *CIA) setICR(bits uint8) {
	cia.icr |= bits
	if cia.icr&cia.mask != 0 {
		cia.ir = true
	}
}

// SetFlag sets the state of the FLAG pin. The argument is true if the pin is
// held low. A high to low transition sets the FLAG bit of the ICR.
func (cia *CIA) SetFlag(low bool) {
	if low && !cia.flag {
		cia.setICR(ICRFlag)
	}
	cia.flag = low
}

// PulseCNT signals a positive edge on the CNT pin. Timers in CNT mode count
// the edge and the serial port shifts in the bit.
func (cia *CIA) PulseCNT(bit bool) {
	if cia.ta.control&crInMode != 0 && cia.ta.running() {
		if cia.ta.tick() {
			cia.underflowA()
		}
	}
	switch cia.tb.control & crbInMode {
	case inputCNT:
		if cia.tb.running() && cia.tb.tick() {
			cia.underflowB()
		}
	}

	// input mode of the serial port
	if cia.ta.control&crSPMode == 0 {
		cia.shift <<= 1
		if bit {
			cia.shift |= 0x01
		}
		cia.shiftBits++
		if cia.shiftBits == 8 {
			cia.sdr = cia.shift
			cia.shiftBits = 0
			cia.setICR(ICRSerial)
		}
	}
}

// Advance the CIA by the number of cycles.
func (cia *CIA) Advance(cycles int) {
	for range cycles {
		cia.Step()
	}
}

// Step the CIA by one system clock cycle.
func (cia *CIA) Step() {
	pb := cia.PortB()
	cia.ta.pulse = false
	cia.tb.pulse = false

	if cia.ta.control&crInMode == 0 && cia.ta.running() {
		if cia.ta.tick() {
			cia.underflowA()
		}
	}

	if cia.tb.control&crbInMode == inputClock && cia.tb.running() {
		if cia.tb.tick() {
			cia.underflowB()
		}
	}

	cia.ta.settle()
	cia.tb.settle()

	cia.mainsAcc += cia.mainsHz
	if cia.mainsAcc >= cia.clockHz {
		cia.mainsAcc -= cia.clockHz
		div := 6
		if cia.ta.control&crTODIn != 0 {
			div = 5
		}
		if cia.tod.pulse(div) {
			cia.setICR(ICRAlarm)
		}
	}

	// timer outputs on port B
	if cia.PortB() != pb {
		cia.notify(PRB)
	}
}

func (cia *CIA) underflowA() {
	cia.setICR(ICRTimerA)

	// timer B in one of the timer A modes. the CNT pin is always high on the
	// C64 so both modes are the same
	switch cia.tb.control & crbInMode {
	case inputTimerA, inputTimerCNT:
		if cia.tb.running() && cia.tb.tick() {
			cia.underflowB()
		}
	}

	// output mode of the serial port. one bit is shifted out for every two
	// underflows
	if cia.ta.control&crSPMode != 0 && cia.shiftBits > 0 {
		cia.shiftHalf = !cia.shiftHalf
		if !cia.shiftHalf {
			cia.shift <<= 1
			cia.shiftBits--
			if cia.shiftBits == 0 {
				cia.setICR(ICRSerial)
				if cia.sdrLoaded {
					cia.shift = cia.sdr
					cia.shiftBits = 8
					cia.sdrLoaded = false
				}
			}
		}
	}
}

func (cia *CIA) underflowB() {
	cia.setICR(ICRTimerB)
}
