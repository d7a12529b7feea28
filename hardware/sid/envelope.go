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

package sid

import "fmt"

type envelopeState int

const (
	attack envelopeState = iota
	decaySustain
	release
)

func (s envelopeState) String() string {
	switch s {
	case attack:
		return "A"
	case decaySustain:
		return "DS"
	case release:
		return "R"
	}
	return "?"
}

// the number of cycles between each step of the envelope counter for each
// of the 16 rate values. decay and release are also slowed by the exponential
// period
var ratePeriods = [16]uint16{
	9, 32, 63, 95, 149, 220, 267, 313,
	392, 977, 1954, 3126, 3907, 11720, 19532, 31251,
}

// exponentialPeriod approximates the exponential decay curve by slowing the
// rate of decay as the level falls
func exponentialPeriod(level uint8) uint8 {
	switch {
	case level > 93:
		return 1
	case level > 54:
		return 2
	case level > 26:
		return 4
	case level > 14:
		return 8
	case level > 6:
		return 16
	case level > 0:
		return 30
	}
	return 1
}

type envelope struct {
	attackDecay    uint8
	sustainRelease uint8

	state   envelopeState
	gated   bool
	counter uint8

	// 15 bit rate counter. the counter is not reset when the rate changes so
	// lowering the rate during a count causes the counter to wrap, as on the
	// real chip
	rate uint16

	exp uint8
}

func (e *envelope) String() string {
	return fmt.Sprintf("%s:%02x", e.state, e.counter)
}

func (e *envelope) reset() {
	*e = envelope{state: release}
}

func (e *envelope) gate(on bool) {
	if on == e.gated {
		return
	}
	e.gated = on
	if on {
		e.state = attack
	} else {
		e.state = release
	}
}

func (e *envelope) period() uint16 {
	switch e.state {
	case attack:
		return ratePeriods[e.attackDecay>>4]
	case decaySustain:
		return ratePeriods[e.attackDecay&0x0f]
	}
	return ratePeriods[e.sustainRelease&0x0f]
}

func (e *envelope) sustainLevel() uint8 {
	return (e.sustainRelease >> 4) * 0x11
}

func (e *envelope) clock() {
	e.rate = (e.rate + 1) & 0x7fff
	if e.rate != e.period() {
		return
	}
	e.rate = 0

	if e.state == attack {
		e.exp = 0
		e.counter++
		if e.counter == 0xff {
			e.state = decaySustain
		}
		return
	}

	e.exp++
	if e.exp < exponentialPeriod(e.counter) {
		return
	}
	e.exp = 0

	switch e.state {
	case decaySustain:
		if e.counter != e.sustainLevel() && e.counter > 0 {
			e.counter--
		}
	case release:
		if e.counter > 0 {
			e.counter--
		}
	}
}
