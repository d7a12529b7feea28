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

// bits in the voice control register
const (
	ctrlGate     = 0x01
	ctrlSync     = 0x02
	ctrlRing     = 0x04
	ctrlTest     = 0x08
	ctrlTriangle = 0x10
	ctrlSawtooth = 0x20
	ctrlPulse    = 0x40
	ctrlNoise    = 0x80
)

// the value of the noise shift register after reset
const noiseSeed = 0x7ffff8

type voice struct {
	freq    uint16
	pw      uint16
	control uint8

	// 24 bit phase accumulator
	acc uint32

	// set in the cycle the MSB of the accumulator goes from zero to one
	msbRising bool

	// 23 bit shift register for the noise waveform. clocked by bit 19 of the
	// accumulator
	noise uint32

	env envelope
}

func (v *voice) String() string {
	return fmt.Sprintf("f=%04x pw=%03x ctrl=%02x %s", v.freq, v.pw, v.control, &v.env)
}

func (v *voice) reset() {
	*v = voice{noise: noiseSeed}
	v.env.reset()
}

func (v *voice) sync() bool {
	return v.control&ctrlSync != 0
}

func (v *voice) writeControl(data uint8) {
	was := v.control
	v.control = data

	if data&ctrlTest != 0 {
		v.acc = 0
	} else if was&ctrlTest != 0 {
		v.noise = noiseSeed
	}

	v.env.gate(data&ctrlGate != 0)
}

func (v *voice) clockOscillator() {
	v.msbRising = false
	if v.control&ctrlTest != 0 {
		return
	}

	prev := v.acc
	v.acc = (v.acc + uint32(v.freq)) & 0xffffff
	v.msbRising = prev&0x800000 == 0 && v.acc&0x800000 != 0

	if prev&0x080000 == 0 && v.acc&0x080000 != 0 {
		bit := (v.noise>>22 ^ v.noise>>17) & 0x01
		v.noise = (v.noise<<1 | bit) & 0x7fffff
	}
}

func (v *voice) triangle(src *voice) uint16 {
	msb := v.acc & 0x800000
	if v.control&ctrlRing != 0 {
		msb ^= src.acc & 0x800000
	}
	a := v.acc
	if msb != 0 {
		a = ^a
	}
	return uint16(a>>11) & 0x0fff
}

func (v *voice) sawtooth() uint16 {
	return uint16(v.acc >> 12)
}

func (v *voice) pulse() uint16 {
	if v.control&ctrlTest != 0 || uint16(v.acc>>12) >= v.pw {
		return 0x0fff
	}
	return 0x0000
}

func (v *voice) noiseOut() uint16 {
	n := v.noise
	return uint16(n>>22&0x01)<<11 |
		uint16(n>>20&0x01)<<10 |
		uint16(n>>16&0x01)<<9 |
		uint16(n>>13&0x01)<<8 |
		uint16(n>>11&0x01)<<7 |
		uint16(n>>7&0x01)<<6 |
		uint16(n>>4&0x01)<<5 |
		uint16(n>>2&0x01)<<4
}

// waveform returns the 12 bit output of the waveform generator. combined
// waveforms are the AND of the selected waveforms. the 6581 combines less
// strongly and a bit only survives if its lower neighbour is also set
func (v *voice) waveform(src *voice, model Model) uint16 {
	out := uint16(0x0fff)
	n := 0

	if v.control&ctrlTriangle != 0 {
		out &= v.triangle(src)
		n++
	}
	if v.control&ctrlSawtooth != 0 {
		out &= v.sawtooth()
		n++
	}
	if v.control&ctrlPulse != 0 {
		out &= v.pulse()
		n++
	}
	if v.control&ctrlNoise != 0 {
		out &= v.noiseOut()
		n++
	}

	switch n {
	case 0:
		return 0
	case 1:
		return out
	}

	if model == MOS6581 {
		out &= out<<1 | 0x001
	}
	return out
}

// output of the voice. the waveform is centred on zero and multiplied by the
// envelope
func (v *voice) output(src *voice, model Model) int32 {
	if v.control&0xf0 == 0 {
		return 0
	}
	return (int32(v.waveform(src, model)) - 0x800) * int32(v.env.counter)
}
