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

// TimerState is the state of one of the two CIA timers.
type TimerState struct {
	Counter uint16
	Latch   uint16
	Control uint8
	Delay   int
	Toggle  bool
	Pulse   bool
}

// TODState is the state of the time of day clock.
type TODState struct {
	Clock   [4]uint8
	Alarm   [4]uint8
	Latch   [4]uint8
	Latched bool
	Halted  bool
	Pulses  int
}

// State is the complete state of a CIA, as required by the snapshot package.
// Attached devices are not part of the state.
type State struct {
	PRA  uint8
	PRB  uint8
	DDRA uint8
	DDRB uint8

	TimerA TimerState
	TimerB TimerState
	TOD    TODState

	MainsAcc int

	ICR  uint8
	Mask uint8
	IR   bool

	SDR       uint8
	Shift     uint8
	ShiftBits int
	ShiftHalf bool
	SDRLoaded bool

	Flag bool
}

func (tmr *timer) state() TimerState {
	return TimerState{
		Counter: tmr.counter,
		Latch:   tmr.latch,
		Control: tmr.control,
		Delay:   tmr.delay,
		Toggle:  tmr.toggle,
		Pulse:   tmr.pulse,
	}
}

func (tmr *timer) setState(s TimerState) {
	tmr.counter = s.Counter
	tmr.latch = s.Latch
	tmr.control = s.Control
	tmr.delay = s.Delay
	tmr.toggle = s.Toggle
	tmr.pulse = s.Pulse
}

// State returns the current state of the CIA.
func (cia *CIA) State() State {
	return State{
		PRA:    cia.pra,
		PRB:    cia.prb,
		DDRA:   cia.ddra,
		DDRB:   cia.ddrb,
		TimerA: cia.ta.state(),
		TimerB: cia.tb.state(),
		TOD: TODState{
			Clock:   cia.tod.clock,
			Alarm:   cia.tod.alarm,
			Latch:   cia.tod.latch,
			Latched: cia.tod.latched,
			Halted:  cia.tod.halted,
			Pulses:  cia.tod.pulses,
		},
		MainsAcc:  cia.mainsAcc,
		ICR:       cia.icr,
		Mask:      cia.mask,
		IR:        cia.ir,
		SDR:       cia.sdr,
		Shift:     cia.shift,
		ShiftBits: cia.shiftBits,
		ShiftHalf: cia.shiftHalf,
		SDRLoaded: cia.sdrLoaded,
		Flag:      cia.flag,
	}
}

// SetState restores the CIA to a previously saved state. Attached devices
// are told about the restored port outputs.
func (cia *CIA) SetState(s State) {
	cia.pra = s.PRA
	cia.prb = s.PRB
	cia.ddra = s.DDRA
	cia.ddrb = s.DDRB
	cia.ta.setState(s.TimerA)
	cia.tb.setState(s.TimerB)
	cia.tod.clock = s.TOD.Clock
	cia.tod.alarm = s.TOD.Alarm
	cia.tod.latch = s.TOD.Latch
	cia.tod.latched = s.TOD.Latched
	cia.tod.halted = s.TOD.Halted
	cia.tod.pulses = s.TOD.Pulses
	cia.mainsAcc = s.MainsAcc
	cia.icr = s.ICR
	cia.mask = s.Mask
	cia.ir = s.IR
	cia.sdr = s.SDR
	cia.shift = s.Shift
	cia.shiftBits = s.ShiftBits
	cia.shiftHalf = s.ShiftHalf
	cia.sdrLoaded = s.SDRLoaded
	cia.flag = s.Flag
	cia.notify(PRA)
	cia.notify(PRB)
}
