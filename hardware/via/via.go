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

package via

import (
	"fmt"

	"github.com/technic0/Ready/environment"
)

// Register numbers. Registers are mirrored every 16 bytes.
const (
	ORB = iota
	ORA
	DDRB
	DDRA
	T1CL
	T1CH
	T1LL
	T1LH
	T2CL
	T2CH
	SR
	ACR
	PCR
	IFR
	IER
	ORANH
)

// Bits of the interrupt flag and enable registers.
const (
	IFRCA2 = uint8(0x01)
	IFRCA1 = uint8(0x02)
	IFRSR  = uint8(0x04)
	IFRCB2 = uint8(0x08)
	IFRCB1 = uint8(0x10)
	IFRT2  = uint8(0x20)
	IFRT1  = uint8(0x40)
	IFRIRQ = uint8(0x80)
)

// Bits of the auxiliary control register.
const (
	acrPALatch   = uint8(0x01)
	acrPBLatch   = uint8(0x02)
	acrSRMode    = uint8(0x1c)
	acrT2Pulse   = uint8(0x20)
	acrT1FreeRun = uint8(0x40)
	acrT1PB7     = uint8(0x80)
)

// The ports as addressed by a PortDevice.
const (
	PA uint16 = 0
	PB uint16 = 1
)

// PortDevice is implemented by anything attached to the ports of a VIA. The
// address argument is PA or PB.
//
// BusRead returns the value the device drives onto the port lines. Lines the
// device does not drive must be returned as 1. BusWrite is called whenever
// the output of the port changes.
type PortDevice interface {
	BusRead(address uint16) uint8
	BusWrite(address uint16, data uint8)
}

// VIA represents a single 6522.
type VIA struct {
	env   *environment.Environment
	label string

	ora  uint8
	orb  uint8
	ddra uint8
	ddrb uint8

	// input latches
	ira uint8
	irb uint8

	devices []PortDevice

	t1        uint16
	t1latch   uint16
	t1armed   bool
	t1reload  bool
	t1skip    bool
	pb7       bool
	t2        uint16
	t2latchLo uint8
	t2armed   bool
	t2skip    bool
	pb6       bool

	sr      uint8
	srCount int

	acr uint8
	pcr uint8
	ifr uint8
	ier uint8

	// control lines. the input level is recorded for edge detection and the
	// output level for CA2 and CB2 when they are outputs
	ca1, ca2, cb1, cb2 bool
	ca2Out, cb2Out     bool
	ca2Pulse, cb2Pulse bool
}

// NewVIA is the preferred method of initialisation for the VIA type.
func NewVIA(env *environment.Environment, label string) *VIA {
	via := &VIA{
		env:   env,
		label: label,
	}
	via.Reset()
	return via
}

// Label returns the name of the VIA.
func (via *VIA) Label() string {
	return via.label
}

func (via *VIA) String() string {
	return fmt.Sprintf("%s: ORA=%02x/%02x ORB=%02x/%02x T1=%04x/%04x T2=%04x ACR=%02x PCR=%02x IFR=%02x IER=%02x",
		via.label,
		via.ora, via.ddra, via.orb, via.ddrb,
		via.t1, via.t1latch, via.t2,
		via.acr, via.pcr, via.readIFR(), via.ier|0x80,
	)
}

// Reset the VIA. The registers are cleared but the timers and the shift
// register are unaffected, as on the real chip.
func (via *VIA) Reset() {
	via.ora = 0
	via.orb = 0
	via.ddra = 0
	via.ddrb = 0
	via.acr = 0
	via.pcr = 0
	via.ifr = 0
	via.ier = 0
	via.t1armed = false
	via.t1reload = false
	via.t2armed = false
	via.srCount = 0
	via.pb7 = true
	via.ca2Out = true
	via.cb2Out = true
	via.ca2Pulse = false
	via.cb2Pulse = false
	via.ca1, via.ca2, via.cb1, via.cb2 = true, true, true, true
	via.notify(PA)
	via.notify(PB)
}

// Attach a device to the ports of the VIA.
func (via *VIA) Attach(dev PortDevice) {
	via.devices = append(via.devices, dev)
	dev.BusWrite(PA, via.PortA())
	dev.BusWrite(PB, via.PortB())
}

// PortA returns the level of the port A output lines. Lines configured as
// input are pulled high.
func (via *VIA) PortA() uint8 {
	return via.ora | ^via.ddra
}

// PortB returns the level of the port B output lines. Bit 7 is replaced by the
// timer 1 output when it is enabled.
func (via *VIA) PortB() uint8 {
	v := via.orb | ^via.ddrb
	if via.acr&acrT1PB7 != 0 {
		v &^= 0x80
		if via.pb7 {
			v |= 0x80
		}
	}
	return v
}

func (via *VIA) pins(port uint16) uint8 {
	var v uint8
	if port == PA {
		v = via.PortA()
	} else {
		v = via.PortB()
	}
	for _, d := range via.devices {
		v &= d.BusRead(port)
	}
	return v
}

func (via *VIA) notify(port uint16) {
	var v uint8
	if port == PA {
		v = via.PortA()
	} else {
		v = via.PortB()
	}
	for _, d := range via.devices {
		d.BusWrite(port, v)
	}
}

// IRQ returns true if the VIA is asserting its interrupt output.
func (via *VIA) IRQ() bool {
	return via.ifr&via.ier&0x7f != 0
}

func (via *VIA) readIFR() uint8 {
	v := via.ifr & 0x7f
	if via.IRQ() {
		v |= IFRIRQ
	}
	return v
}

func (via *VIA) setIFR(bits uint8) {
	via.ifr |= bits
}

func (via *VIA) clearIFR(bits uint8) {
	via.ifr &^= bits
}

// CA2 returns the output level of the CA2 line. The line is high when it is
// configured as an input.
func (via *VIA) CA2() bool {
	if via.pcr&0x08 == 0 {
		return true
	}
	return via.ca2Out
}

// CB2 returns the output level of the CB2 line. The line is high when it is
// configured as an input.
func (via *VIA) CB2() bool {
	if via.srMode() >= 4 {
		return via.cb2Out
	}
	if via.pcr&0x80 == 0 {
		return true
	}
	return via.cb2Out
}

// Advance the VIA by the number of cycles.
func (via *VIA) Advance(cycles int) {
	for range cycles {
		via.Step()
	}
}

// Step the VIA by one cycle.
func (via *VIA) Step() {
	pb := via.PortB()

	// pulse output mode returns the line high after one cycle
	if via.ca2Pulse {
		via.ca2Pulse = false
		via.ca2Out = true
	}
	if via.cb2Pulse {
		via.cb2Pulse = false
		via.cb2Out = true
	}

	via.stepT1()
	via.stepT2()

	switch via.srMode() {
	case 2, 6:
		via.shift()
	}

	if via.PortB() != pb {
		via.notify(PB)
	}
}

// timer 1 decrements to zero and then to $FFFF, at which point the interrupt
// is raised. in free-running mode the latch is reloaded on the next cycle so
// the period is the latch value plus two
func (via *VIA) stepT1() {
	if via.t1skip {
		via.t1skip = false
		return
	}
	if via.t1reload {
		via.t1reload = false
		via.t1 = via.t1latch
		return
	}
	if via.t1 != 0 {
		via.t1--
		return
	}

	via.t1 = 0xffff
	if !via.t1armed {
		return
	}

	via.setIFR(IFRT1)
	if via.acr&acrT1FreeRun != 0 {
		via.t1reload = true
		via.pb7 = !via.pb7
	} else {
		via.t1armed = false
		via.pb7 = true
	}
}

// timer 2 is always one-shot. in pulse counting mode it is decremented by
// PB6 and not by the clock. when the shift register is clocked by timer 2
// only the low byte counts and it reloads from the latch
func (via *VIA) stepT2() {
	if via.t2skip {
		via.t2skip = false
		return
	}

	switch via.srMode() {
	case 1, 4, 5:
		lo := uint8(via.t2)
		if lo == 0 {
			via.t2 = via.t2&0xff00 | uint16(via.t2latchLo)
			via.shift()
			return
		}
		via.t2--
		return
	}

	if via.acr&acrT2Pulse != 0 {
		return
	}
	via.countT2()
}

func (via *VIA) countT2() {
	if via.t2 == 0 && via.t2armed {
		via.setIFR(IFRT2)
		via.t2armed = false
	}
	via.t2--
}

// SetPB6 sets the level of the PB6 input. Falling edges decrement timer 2 in
// pulse counting mode.
func (via *VIA) SetPB6(level bool) {
	if via.pb6 && !level && via.acr&acrT2Pulse != 0 {
		via.countT2()
	}
	via.pb6 = level
}
