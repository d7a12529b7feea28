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

package datasette

import (
	"fmt"
	"math"

	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware/memory"
	"github.com/technic0/Ready/hardware/peripherals"
	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/logger"
	"github.com/technic0/Ready/media"
)

// Datasette implements the peripherals.Peripheral interface.
type Datasette struct {
	env     *environment.Environment
	clockHz int

	tape *media.Tape

	// index of the current pulse and the number of cycles of the pulse that
	// have been played
	pos     int
	elapsed uint32

	// number of cycles played since the start of the tape
	played uint64

	playing bool
	motor   bool
}

// NewDatasette is the preferred method of initialisation for the Datasette
// type.
func NewDatasette(env *environment.Environment, spec specification.Spec) *Datasette {
	return &Datasette{
		env:     env,
		clockHz: spec.ClockHz,
	}
}

func (ds *Datasette) String() string {
	name := "no tape"
	if ds.tape != nil {
		name = ds.tape.Name()
	}
	s := fmt.Sprintf("%s [%03d]", name, ds.Counter())
	if ds.playing {
		s += " play"
	}
	if ds.motor {
		s += " motor"
	}
	return s
}

// ID implements the peripherals.Peripheral interface.
func (ds *Datasette) ID() peripherals.ID {
	return peripherals.Datasette
}

// Reset implements the peripherals.Peripheral interface. The tape and the
// buttons are unaffected.
func (ds *Datasette) Reset() {
	ds.motor = false
}

// Insert a tape. The tape is at the beginning and the buttons are released.
func (ds *Datasette) Insert(tape *media.Tape) {
	ds.tape = tape
	ds.Rewind()
	logger.Logf(ds.env, "datasette", "inserted %s (%d pulses)", tape.Name(), len(tape.Pulses))
}

// Eject the tape.
func (ds *Datasette) Eject() {
	ds.tape = nil
	ds.Rewind()
}

// Tape returns the inserted tape or nil.
func (ds *Datasette) Tape() *media.Tape {
	return ds.tape
}

// Play presses the PLAY button. Returns an error if there is no tape.
func (ds *Datasette) Play() error {
	if ds.tape == nil {
		return faults.Errorf(faults.MediaError, faults.MediaNotPresent, "datasette")
	}
	ds.playing = true
	return nil
}

// Stop releases the buttons.
func (ds *Datasette) Stop() {
	ds.playing = false
}

// Rewind the tape to the beginning. The buttons are released.
func (ds *Datasette) Rewind() {
	ds.playing = false
	ds.pos = 0
	ds.elapsed = 0
	ds.played = 0
}

// Playing returns true if PLAY is pressed.
func (ds *Datasette) Playing() bool {
	return ds.playing
}

// Motor returns true if the motor is running.
func (ds *Datasette) Motor() bool {
	return ds.motor
}

// the counter is driven by the take-up reel. the reel turns more slowly as
// the tape winds onto it
const (
	tapeThickness = 1.27e-5
	reelRadius    = 1.07e-2
	tapeSpeed     = 4.76e-2
	counterGear   = 0.525
)

// Counter returns the value of the three digit tape counter.
func (ds *Datasette) Counter() int {
	if ds.clockHz == 0 {
		return 0
	}
	t := float64(ds.played) / float64(ds.clockHz)
	r := math.Sqrt(reelRadius*reelRadius + tapeThickness*tapeSpeed*t/math.Pi)
	return int(counterGear*(r-reelRadius)/tapeThickness) % 1000
}

func (ds *Datasette) running() bool {
	return ds.tape != nil && ds.playing && ds.motor && ds.pos < len(ds.tape.Pulses)
}

// Advance implements the peripherals.Peripheral interface.
func (ds *Datasette) Advance(cycles int) {
	if !ds.running() {
		return
	}

	for range cycles {
		ds.elapsed++
		ds.played++
		if ds.elapsed < ds.tape.Pulses[ds.pos] {
			continue
		}

		ds.elapsed = 0
		ds.pos++
		if ds.pos >= len(ds.tape.Pulses) {
			// the PLAY button is released at the end of the tape
			ds.playing = false
			logger.Log(ds.env, "datasette", "end of tape")
			return
		}
	}
}

// BusRead implements the peripherals.Peripheral interface. The sense line is
// pulled low while a button is pressed.
func (ds *Datasette) BusRead(address uint16) uint8 {
	if address != peripherals.PortA || !ds.playing {
		return 0xff
	}
	return ^memory.PortCassetteSense
}

// BusWrite implements the peripherals.Peripheral interface. The data is the
// output of the processor port.
func (ds *Datasette) BusWrite(address uint16, data uint8) {
	if address != peripherals.PortA {
		return
	}
	motor := data&memory.PortCassetteMotor == 0
	if motor != ds.motor {
		ds.motor = motor
		logger.Logf(ds.env, "datasette", "motor %v", motor)
	}
}

// AssertsInterrupt implements the peripherals.Peripheral interface. Returns
// true if the signal from the tape is low, which is the first half of every
// pulse. The signal is high when the tape is not moving.
func (ds *Datasette) AssertsInterrupt() bool {
	if !ds.running() {
		return false
	}
	return ds.elapsed < ds.tape.Pulses[ds.pos]/2
}

// State is the state of the datasette. The tape itself is not part of the
// state.
type State struct {
	Pos     int
	Elapsed uint32
	Played  uint64
	Playing bool
	Motor   bool
}

// State returns the current state of the datasette.
func (ds *Datasette) State() State {
	return State{
		Pos:     ds.pos,
		Elapsed: ds.elapsed,
		Played:  ds.played,
		Playing: ds.playing,
		Motor:   ds.motor,
	}
}

// CheckState returns an error if the state cannot be applied with the
// inserted tape.
func (ds *Datasette) CheckState(s State) error {
	if ds.tape == nil {
		if s.Pos != 0 || s.Playing {
			return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "datasette: position without a tape")
		}
		return nil
	}
	if s.Pos < 0 || s.Pos > len(ds.tape.Pulses) {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "datasette: position is outside the tape")
	}
	return nil
}

// SetState applies the state to the datasette. The state should have been
// checked with CheckState.
func (ds *Datasette) SetState(s State) {
	ds.pos = s.Pos
	ds.elapsed = s.Elapsed
	ds.played = s.Played
	ds.playing = s.Playing
	ds.motor = s.Motor
	if ds.tape != nil && ds.pos >= len(ds.tape.Pulses) {
		ds.playing = false
	}
}
