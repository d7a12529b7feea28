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

// the number of cycles between a timer being started and it counting its
// first clock
const startDelay = 1

type timer struct {
	counter uint16
	latch   uint16

	// the control register. the force load bit is never stored
	control uint8

	// cycles remaining before a newly started timer counts
	delay int

	// output to port B. toggle flips on every underflow and pulse is high for
	// the cycle of the underflow
	toggle bool
	pulse  bool
}

func (tmr *timer) running() bool {
	return tmr.control&crStart != 0 && tmr.delay == 0
}

// called at the end of every cycle
func (tmr *timer) settle() {
	if tmr.delay > 0 {
		tmr.delay--
	}
}

// count one tick. returns true if the timer underflowed. a timer with a latch
// value of N underflows every N+1 ticks
func (tmr *timer) tick() bool {
	if tmr.counter == 0 {
		tmr.counter = tmr.latch
		tmr.pulse = true
		tmr.toggle = !tmr.toggle
		if tmr.control&crOneShot != 0 {
			tmr.control &^= crStart
		}
		return true
	}
	tmr.counter--
	return false
}

func (tmr *timer) start() {
	if tmr.control&crStart == 0 {
		tmr.delay = startDelay
		tmr.toggle = true
	}
	tmr.control |= crStart
}

func (tmr *timer) writeControl(data uint8) {
	if data&crStart != 0 {
		tmr.start()
	}
	if data&crForceLoad != 0 {
		tmr.counter = tmr.latch
	}
	tmr.control = data &^ crForceLoad
}

func (tmr *timer) writeLatchLo(data uint8) {
	tmr.latch = tmr.latch&0xff00 | uint16(data)
}

// writing the high byte of the latch loads a stopped timer. in one-shot mode
// it also starts the timer
func (tmr *timer) writeLatchHi(data uint8) {
	tmr.latch = tmr.latch&0x00ff | uint16(data)<<8
	if tmr.control&crStart == 0 {
		tmr.counter = tmr.latch
		if tmr.control&crOneShot != 0 {
			tmr.start()
		}
	}
}

func (tmr *timer) output() bool {
	if tmr.control&crOutMode != 0 {
		return tmr.toggle
	}
	return tmr.pulse
}
