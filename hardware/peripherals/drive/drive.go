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

	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware/clocks"
	"github.com/technic0/Ready/hardware/cpu"
	"github.com/technic0/Ready/hardware/memory"
	"github.com/technic0/Ready/hardware/memory/cpubus"
	"github.com/technic0/Ready/hardware/peripherals"
	"github.com/technic0/Ready/hardware/peripherals/iec"
	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/hardware/via"
	"github.com/technic0/Ready/logger"
	"github.com/technic0/Ready/media"
)

// interrupt sources of the drive CPU
const (
	irqVIA1 cpu.InterruptLine = 1 << iota
	irqVIA2
)

// the head is parked on track 18 when the drive is created
const initialHalfTrack = 34

// Drive implements the peripherals.Peripheral interface.
type Drive struct {
	env     *environment.Environment
	id      peripherals.ID
	clockHz int

	cpu  *cpu.CPU
	mem  driveMemory
	via1 *via.VIA
	via2 *via.VIA

	bus  *iec.Bus
	port *iec.DrivePort

	mech mechanism

	// system cycles are converted to drive cycles with a fractional
	// accumulator. debt is the number of drive cycles owed. it is negative
	// if the drive has run ahead of the system clock
	acc  int
	debt int

	// the first error encountered by the drive CPU
	err error
}

// NewDrive is the preferred method of initialisation for the Drive type. The
// drive is connected to the serial bus with the device number, which should be
// between 8 and 11.
func NewDrive(env *environment.Environment, spec specification.Spec, rom []uint8, bus *iec.Bus, device int) (*Drive, error) {
	if len(rom) != memory.SizeDrive {
		return nil, faults.Errorf(faults.ConfigurationError, "drive ROM is %d bytes, should be %d", len(rom), memory.SizeDrive)
	}

	d := &Drive{
		env:     env,
		id:      peripherals.ID(fmt.Sprintf("drive%d", device)),
		clockHz: spec.ClockHz,
		bus:     bus,
		via1:    via.NewVIA(env, "VIA1"),
		via2:    via.NewVIA(env, "VIA2"),
	}

	d.mem.rom = rom
	d.mem.via1 = d.via1
	d.mem.via2 = d.via2
	d.mech.halfTrack = initialHalfTrack

	var err error
	d.port, err = bus.AddDrive(device, func(asserted bool) {
		// ATN reaches CA1 through an inverter
		d.via1.SetCA1(asserted)
	})
	if err != nil {
		return nil, fmt.Errorf("drive: %w", err)
	}

	d.via1.Attach(d.port)
	d.via2.Attach(&d.mech)
	d.cpu = cpu.NewCPU(env, &d.mem)

	d.Reset()

	return d, nil
}

func (d *Drive) String() string {
	s := fmt.Sprintf("%s: track %.1f", d.id, float32(d.mech.halfTrack)/2+1)
	if d.mech.motor {
		s += " motor"
	}
	if d.mech.led {
		s += " led"
	}
	if d.mech.disk != nil {
		s += fmt.Sprintf(" [%s]", d.mech.disk.Name())
	}
	return s
}

// ID implements the peripherals.Peripheral interface.
func (d *Drive) ID() peripherals.ID {
	return d.id
}

// Reset implements the peripherals.Peripheral interface. The drive is reset
// to its power-on state. The disk and the position of the head are
// unaffected.
func (d *Drive) Reset() {
	clear(d.mem.ram[:])
	d.via1.Reset()
	d.via2.Reset()

	// the ATN input is already at its level when the reset ends
	d.via1.SetCA1(d.bus.Low()&iec.ATN == iec.ATN)
	d.via1.WriteRegister(via.IFR, 0x7f)

	d.mech.flush()
	d.mech.writeMode = false
	d.mech.byteReady = false
	d.mech.ones = 0
	d.mech.bits = 0

	d.acc = 0
	d.debt = 0
	d.err = nil

	d.cpu.Reset()
	d.cpu.SetIRQ(irqVIA1|irqVIA2, false)
	if err := d.cpu.LoadPCIndirect(cpubus.Reset); err != nil {
		d.err = err
	}
}

// Remove the drive from the serial bus.
func (d *Drive) Remove() {
	d.bus.RemoveDrive(d.port)
}

// Insert a disk into the drive.
func (d *Drive) Insert(disk *media.Disk) {
	d.mech.flush()
	d.mech.disk = disk
	d.mech.headPos = 0
	logger.Logf(d.env, "drive", "%s: inserted %s", d.id, disk.Name())
}

// Eject the disk.
func (d *Drive) Eject() {
	d.mech.flush()
	d.mech.disk = nil
}

// Disk returns the inserted disk or nil.
func (d *Drive) Disk() *media.Disk {
	return d.mech.disk
}

// Directory decodes the directory of the inserted disk.
func (d *Drive) Directory() (media.Directory, error) {
	if d.mech.disk == nil {
		return media.Directory{}, faults.Errorf(faults.MediaError, faults.MediaNotPresent, d.id)
	}
	return d.mech.disk.Directory()
}

// LED returns true if the drive LED is lit.
func (d *Drive) LED() bool {
	return d.mech.led
}

// Motor returns true if the spindle motor is running.
func (d *Drive) Motor() bool {
	return d.mech.motor
}

// HalfTrack returns the position of the head.
func (d *Drive) HalfTrack() int {
	return d.mech.halfTrack
}

// Err returns the error that stopped the drive CPU. Advance() does nothing
// while there is an error. Reset() clears the error.
func (d *Drive) Err() error {
	return d.err
}

// Advance implements the peripherals.Peripheral interface.
func (d *Drive) Advance(cycles int) {
	if d.err != nil {
		return
	}

	d.acc += cycles * clocks.Drive1541
	d.debt += d.acc / d.clockHz
	d.acc %= d.clockHz

	for d.debt > 0 {
		if d.cpu.Killed {
			_ = d.cycle()
			continue
		}
		if err := d.cpu.ExecuteInstruction(d.cycle); err != nil {
			d.err = err
			logger.Logf(d.env, "drive", "%s: %v", d.id, err)
			return
		}
	}
}

// cycle is the callback for the drive CPU. it advances the rest of the drive
// by one cycle
func (d *Drive) cycle() error {
	d.debt--

	d.via1.Step()
	d.via2.Step()
	d.stepMechanism()

	d.cpu.SetIRQ(irqVIA1, d.via1.IRQ())
	d.cpu.SetIRQ(irqVIA2, d.via2.IRQ())

	return nil
}

func (d *Drive) stepMechanism() {
	m := &d.mech

	if m.byteReady {
		m.byteReady = false
		d.via2.SetCA1(true)
	}

	// CB2 selects write mode when low
	write := !d.via2.CB2()
	if write != m.writeMode {
		m.writeMode = write
		m.bits = 0
		m.ones = 0
		if write {
			m.shift = d.via2.PortA()
		} else {
			m.flush()
		}
	}

	if !m.motor {
		return
	}

	m.ticks += ticksPerCycle
	cell := (16 - int(m.density)) * 4
	if m.ticks < cell {
		return
	}
	m.ticks -= cell

	if m.writeMode {
		m.writeBit(m.shift&0x80 == 0x80)
		m.shift <<= 1
		m.bits++
		if m.bits == 8 {
			m.bits = 0
			m.shift = d.via2.PortA()
			d.signalByteReady()
		}
		return
	}

	if m.readBit() {
		m.ones++
	} else {
		m.ones = 0
	}
	if m.sync() {
		m.bits = 0
		return
	}

	m.shift <<= 1
	if m.ones > 0 {
		m.shift |= 0x01
	}
	m.bits++
	if m.bits == 8 {
		m.bits = 0
		m.latch = m.shift
		d.signalByteReady()
	}
}

// the byte ready signal is gated by CA2 of the second VIA, which is the SO
// enable line
func (d *Drive) signalByteReady() {
	if !d.via2.CA2() {
		return
	}
	d.mech.byteReady = true
	d.via2.SetCA1(false)
	d.cpu.SetOverflow()
}

// BusRead implements the peripherals.Peripheral interface. The address is in
// the address space of the drive CPU. Reads have no side effects.
func (d *Drive) BusRead(address uint16) uint8 {
	return d.mem.read(address, true)
}

// BusWrite implements the peripherals.Peripheral interface. The address is in
// the address space of the drive CPU.
func (d *Drive) BusWrite(address uint16, data uint8) {
	_ = d.mem.Write(address, data)
}

// AssertsInterrupt implements the peripherals.Peripheral interface. The drive
// has no interrupt line to the computer.
func (d *Drive) AssertsInterrupt() bool {
	return false
}
