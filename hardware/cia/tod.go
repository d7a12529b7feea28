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

import "fmt"

// indexes into the tod arrays
const (
	todTenths = iota
	todSeconds
	todMinutes
	todHours
)

// bits that exist in each of the TOD registers
var todMasks = [4]uint8{0x0f, 0x7f, 0x7f, 0x9f}

// the time of day clock. all values are BCD. bit 7 of the hours register is
// the PM flag
type tod struct {
	clock [4]uint8
	alarm [4]uint8

	// reading the hours register latches the clock until the tenths register
	// is read
	latch   [4]uint8
	latched bool

	// writing the hours register stops the clock until the tenths register is
	// written
	halted bool

	// mains pulses since the last tenth of a second
	pulses int
}

func (t *tod) reset() {
	t.clock = [4]uint8{0x00, 0x00, 0x00, 0x01}
	t.alarm = [4]uint8{}
	t.latch = [4]uint8{}
	t.latched = false
	t.halted = false
	t.pulses = 0
}

func (t tod) String() string {
	ampm := "AM"
	if t.clock[todHours]&0x80 != 0 {
		ampm = "PM"
	}
	return fmt.Sprintf("%02x:%02x:%02x.%x %s",
		t.clock[todHours]&0x1f, t.clock[todMinutes], t.clock[todSeconds], t.clock[todTenths], ampm)
}

func (t *tod) read(idx int, peek bool) uint8 {
	if peek {
		if t.latched {
			return t.latch[idx]
		}
		return t.clock[idx]
	}

	if idx == todHours && !t.latched {
		t.latch = t.clock
		t.latched = true
	}

	v := t.clock[idx]
	if t.latched {
		v = t.latch[idx]
	}

	if idx == todTenths {
		t.latched = false
	}

	return v
}

// write to the clock or to the alarm. returns true if the clock now matches
// the alarm
func (t *tod) write(idx int, data uint8, alarm bool) bool {
	data &= todMasks[idx]

	if alarm {
		t.alarm[idx] = data
		return t.clock == t.alarm
	}

	t.clock[idx] = data
	switch idx {
	case todHours:
		t.halted = true
	case todTenths:
		t.halted = false
		t.pulses = 0
	}

	return t.clock == t.alarm
}

// a single pulse from the mains. div is the number of pulses in a tenth of a
// second. returns true if the clock advanced and now matches the alarm
func (t *tod) pulse(div int) bool {
	t.pulses++
	if t.pulses < div {
		return false
	}
	t.pulses = 0

	if t.halted {
		return false
	}

	t.advance()
	return t.clock == t.alarm
}

func (t *tod) advance() {
	t.clock[todTenths] = (t.clock[todTenths] + 1) & 0x0f
	if t.clock[todTenths] < 0x0a {
		return
	}
	t.clock[todTenths] = 0

	t.clock[todSeconds] = bcdIncrement(t.clock[todSeconds])
	if t.clock[todSeconds] < 0x60 {
		return
	}
	t.clock[todSeconds] = 0

	t.clock[todMinutes] = bcdIncrement(t.clock[todMinutes])
	if t.clock[todMinutes] < 0x60 {
		return
	}
	t.clock[todMinutes] = 0

	pm := t.clock[todHours] & 0x80
	hr := t.clock[todHours] & 0x1f
	switch hr {
	case 0x11:
		hr = 0x12
		pm ^= 0x80
	case 0x12:
		hr = 0x01
	default:
		hr = bcdIncrement(hr)
	}
	t.clock[todHours] = pm | hr
}

func bcdIncrement(v uint8) uint8 {
	v++
	if v&0x0f >= 0x0a {
		v = v&0xf0 + 0x10
	}
	return v
}
