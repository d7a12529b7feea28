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
	"sync/atomic"

	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware/cia"
	"github.com/technic0/Ready/hardware/cpu"
	"github.com/technic0/Ready/hardware/input"
	"github.com/technic0/Ready/hardware/memory"
	"github.com/technic0/Ready/hardware/memory/cpubus"
	"github.com/technic0/Ready/hardware/peripherals"
	"github.com/technic0/Ready/hardware/peripherals/datasette"
	"github.com/technic0/Ready/hardware/peripherals/drive"
	"github.com/technic0/Ready/hardware/peripherals/iec"
	"github.com/technic0/Ready/hardware/peripherals/joystick"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
	"github.com/technic0/Ready/hardware/sid"
	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/hardware/vic"
	"github.com/technic0/Ready/logger"
	"github.com/technic0/Ready/paths"
)

// the sources of the CPU interrupt lines
const (
	irqVIC cpu.InterruptLine = 1 << iota
	irqCIA1
)

const (
	nmiCIA2 cpu.InterruptLine = 1 << iota
	nmiRestore
)

// the device number of the disk drive on the serial bus
const driveDevice = 8

// Callbacks are called by the machine at instruction boundaries. Any of the
// fields can be nil.
type Callbacks struct {
	// a copy of the frame that has just completed. the frame should be
	// released with Frame.Release() when it is no longer required
	OnFrameReady func(*vic.Frame)

	// the audio produced during the frame that has just completed
	OnAudioBatchReady func(sid.Batch)

	// the level of the IRQ and NMI lines has changed
	OnInterruptStateChange func(irq bool, nmi bool)
}

// Machine is the main container for the emulated components of the C64.
type Machine struct {
	env  *environment.Environment
	spec specification.Spec

	CPU  *cpu.CPU
	Mem  *memory.Memory
	VIC  *vic.VIC
	SID  *sid.SID
	CIA1 *cia.CIA
	CIA2 *cia.CIA

	Keyboard  *keyboard.Keyboard
	Joysticks [2]*joystick.Joystick
	Datasette *datasette.Datasette
	IEC       *iec.Bus

	// nil if no drive is attached
	Drive    *drive.Drive
	driveErr error

	Input *input.Input

	callbacks Callbacks

	// number of cycles since power on
	cycles uint64

	// cycles run towards the current frame. any cycles run beyond the frame
	// budget are carried into the next frame. always less than the budget
	// at an instruction boundary
	frameCycles int

	// set by Step() when frameCycles passes the budget
	frameDone bool

	// the frame number of the VIC at the last frame hand off
	lastFrame uint64

	// joystick events for port 1 go to port 2 and vice versa
	swapped bool

	// light pen input from input events and the level of the light pen line
	// on the previous cycle
	lightPen     bool
	lightPenLine bool

	// the level of the interrupt lines at the last instruction boundary
	irqLine bool
	nmiLine bool

	stop          atomic.Bool
	paused        atomic.Bool
	pausedOnError atomic.Bool
}

// NewMachine is the preferred method of initialisation for the Machine type.
// If roms is nil then the ROM set is loaded from the directory named by the
// roms.dir preference.
func NewMachine(env *environment.Environment, roms *memory.ROMSet) (*Machine, error) {
	if env == nil || env.Prefs == nil {
		return nil, faults.Errorf(faults.ConfigurationError, "machine: no preferences")
	}

	spec, err := specification.SearchSpec(env.Prefs.TVSpec.Get().(string))
	if err != nil {
		return nil, faults.Errorf(faults.ConfigurationError, "machine: %v", err)
	}

	if roms == nil {
		roms, err = loadROMs(env)
		if err != nil {
			return nil, err
		}
	}

	m := &Machine{
		env:  env,
		spec: spec,
	}

	m.Mem, err = memory.NewMemory(env, roms)
	if err != nil {
		return nil, err
	}

	m.CPU = cpu.NewCPU(env, m.Mem)
	m.VIC = vic.NewVIC(env, spec, m.Mem)
	m.SID = sid.NewSID(env, spec)
	m.CIA1 = cia.NewCIA(env, "CIA1", spec)
	m.CIA2 = cia.NewCIA(env, "CIA2", spec)

	if err := m.attachIO(); err != nil {
		return nil, err
	}

	m.Keyboard = keyboard.NewKeyboard()
	m.CIA1.Attach(m.Keyboard)
	for i, id := range []peripherals.ID{peripherals.Joystick1, peripherals.Joystick2} {
		m.Joysticks[i], err = joystick.NewJoystick(id)
		if err != nil {
			return nil, err
		}
		m.CIA1.Attach(m.Joysticks[i])
	}

	m.CIA2.Attach(&vicBankSelect{mem: m.Mem})
	m.IEC = iec.NewBus()
	m.CIA2.Attach(m.IEC.Computer())

	m.Datasette = datasette.NewDatasette(env, spec)
	m.Mem.Port.OnChange(func() {
		m.Datasette.BusWrite(peripherals.PortA, m.Mem.Port.Output())
	})

	if env.Prefs.DriveAttached.Get().(bool) {
		if roms.Drive == nil {
			logger.Log(env, "machine", "no drive ROM: drive not attached")
		} else {
			m.Drive, err = drive.NewDrive(env, spec, roms.Drive, m.IEC, driveDevice)
			if err != nil {
				return nil, err
			}
		}
	}

	m.Input = input.NewInput(m, m)

	if err := m.Reset(); err != nil {
		return nil, err
	}

	logger.Logf(env, "machine", "created: %s", spec)

	return m, nil
}

func loadROMs(env *environment.Environment) (*memory.ROMSet, error) {
	dir := env.Prefs.ROMDir.Get().(string)
	if dir == "" {
		var err error
		dir, err = paths.ResourcePath("roms", "")
		if err != nil {
			return nil, faults.Errorf(faults.ConfigurationError, "machine: %v", err)
		}
	}
	return memory.LoadROMSet(dir)
}

// the mirror masks of the chips in the I/O area
const (
	maskVIC = 0x3f
	maskSID = 0x1f
	maskCIA = 0x0f
)

func (m *Machine) attachIO() error {
	for p := uint8(0xd0); p <= 0xd3; p++ {
		if err := m.Mem.AttachIO(p, maskVIC, m.VIC); err != nil {
			return err
		}
	}
	for p := uint8(0xd4); p <= 0xd7; p++ {
		if err := m.Mem.AttachIO(p, maskSID, m.SID); err != nil {
			return err
		}
	}
	if err := m.Mem.AttachIO(0xdc, maskCIA, m.CIA1); err != nil {
		return err
	}
	return m.Mem.AttachIO(0xdd, maskCIA, m.CIA2)
}

// vicBankSelect connects the lower two bits of CIA2 port A to the bank
// select of the VIC. The lines are inverted.
type vicBankSelect struct {
	mem *memory.Memory
}

func (v *vicBankSelect) BusRead(_ uint16) uint8 {
	return 0xff
}

func (v *vicBankSelect) BusWrite(address uint16, data uint8) {
	if address == peripherals.PortA {
		v.mem.SetVICBank(^data)
	}
}

// Env returns the environment of the machine.
func (m *Machine) Env() *environment.Environment {
	return m.env
}

// Spec returns the television specification of the machine.
func (m *Machine) Spec() specification.Spec {
	return m.spec
}

// SetCallbacks sets the functions called by the machine. The callbacks
// replace any that were set previously.
func (m *Machine) SetCallbacks(cb Callbacks) {
	m.callbacks = cb
}

// Cycles returns the number of cycles since power on. Implements the
// input.Clock interface.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// Reset is the equivalent of switching the machine off and on again. RAM is
// returned to its power-on pattern. Inserted media is not removed.
func (m *Machine) Reset() error {
	m.Mem.Reset()
	m.VIC.Reset()
	m.Keyboard.Reset()
	for _, j := range m.Joysticks {
		j.Reset()
	}
	m.lightPen = false
	m.lightPenLine = false
	return m.SoftReset()
}

// SoftReset emulates the RESET line. The CPU, the CIAs, the SID and the disk
// drive are reset. RAM is unaffected.
func (m *Machine) SoftReset() error {
	m.Mem.ResetPort()
	m.SID.Reset()
	m.CIA1.Reset()
	m.CIA2.Reset()
	m.Datasette.Reset()
	m.Datasette.BusWrite(peripherals.PortA, m.Mem.Port.Output())
	if m.Drive != nil {
		m.Drive.Reset()
	}
	m.driveErr = nil

	m.CPU.Reset()
	m.CPU.SetIRQ(irqVIC|irqCIA1, false)
	m.CPU.SetNMI(nmiCIA2|nmiRestore, false)
	m.irqLine = false
	m.nmiLine = false

	if err := m.CPU.LoadPCIndirect(cpubus.Reset); err != nil {
		return err
	}

	logger.Log(m.env, "machine", "reset")

	return nil
}

// SwapJoysticks changes which control port joystick events are sent to.
// Returns true if the ports are now swapped.
func (m *Machine) SwapJoysticks() bool {
	m.swapped = !m.swapped
	return m.swapped
}

// Joystick returns the joystick in the control port. The ID should be
// peripherals.Joystick1 or peripherals.Joystick2. Swapping the joysticks has
// no effect on the result.
func (m *Machine) Joystick(id peripherals.ID) *joystick.Joystick {
	if id == peripherals.Joystick2 {
		return m.Joysticks[1]
	}
	return m.Joysticks[0]
}

// HandleEvent implements the input.Handler interface.
func (m *Machine) HandleEvent(ev input.Event) error {
	switch ev.Kind {
	case input.KeyDown:
		return m.Keyboard.KeyDown(ev.Key)
	case input.KeyUp:
		return m.Keyboard.KeyUp(ev.Key)
	case input.JoystickState:
		port := ev.Port
		if m.swapped {
			if port == peripherals.Joystick1 {
				port = peripherals.Joystick2
			} else {
				port = peripherals.Joystick1
			}
		}
		j := m.Joystick(port)
		j.SetDirection(ev.Direction)
		j.SetFire(ev.Fire)
	case input.Restore:
		if ev.Pressed {
			return m.Keyboard.KeyDown(keyboard.Restore)
		}
		return m.Keyboard.KeyUp(keyboard.Restore)
	case input.Lightpen:
		m.lightPen = ev.Pressed
	}
	return nil
}

// Parts returns a description of every component attached to the machine.
func (m *Machine) Parts() peripherals.Parts {
	parts := peripherals.Parts{
		{ID: "cpu", Name: "6510 CPU", Priority: peripherals.HighPriority},
		{ID: "vic", Name: "VIC-II " + m.spec.VICModel, Priority: peripherals.HighPriority},
		{ID: "sid", Name: "SID " + m.SID.Model().String(), Priority: peripherals.NormalPriority},
		{ID: "cia1", Name: "CIA 6526 #1", Priority: peripherals.NormalPriority},
		{ID: "cia2", Name: "CIA 6526 #2", Priority: peripherals.NormalPriority},
		{ID: m.Keyboard.ID(), Name: "Keyboard", Priority: peripherals.NormalPriority},
		{ID: m.Joysticks[0].ID(), Name: "Joystick (port 1)", Priority: peripherals.LowPriority},
		{ID: m.Joysticks[1].ID(), Name: "Joystick (port 2)", Priority: peripherals.LowPriority},
		{ID: m.Datasette.ID(), Name: "Datasette", Priority: peripherals.LowPriority},
	}
	if m.Drive != nil {
		parts = append(parts, peripherals.Part{ID: m.Drive.ID(), Name: "1541 disk drive", Priority: peripherals.NormalPriority})
	}
	return parts
}
