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

package media

import (
	"encoding/binary"
)

const tapSignature = "C64-TAPE-RAW"

const (
	tapHeaderLen = 20

	// a TAP byte is a pulse length in units of eight cycles
	tapUnit = 8

	// a zero byte in a version 0 image is a pulse longer than 255 units
	tapOverflow = 256 * tapUnit
)

// Tape is a sequence of pulses. Each pulse is the number of cycles between
// two falling edges of the signal read from the tape.
type Tape struct {
	name string

	// the TAP version of the image. recordings are decoded as version 1
	Version int

	Pulses []uint32
}

// Kind implements the Media interface.
func (t *Tape) Kind() Kind {
	return TapeMedia
}

// Name implements the Media interface.
func (t *Tape) Name() string {
	return t.name
}

// Cycles returns the total length of the tape in cycles.
func (t *Tape) Cycles() uint64 {
	var n uint64
	for _, p := range t.Pulses {
		n += uint64(p)
	}
	return n
}

// DecodeTAP decodes a TAP image. Versions 0, 1 and 2 are supported. Version 2
// images store half waves, which are paired into full pulses.
func DecodeTAP(name string, data []byte) (*Tape, error) {
	if len(data) < tapHeaderLen || string(data[:len(tapSignature)]) != tapSignature {
		return nil, malformed(name, "not a TAP image")
	}

	t := &Tape{
		name:    name,
		Version: int(data[12]),
	}
	if t.Version > 2 {
		return nil, malformed(name, "unsupported TAP version %d", t.Version)
	}

	size := int(binary.LittleEndian.Uint32(data[16:]))
	data = data[tapHeaderLen:]
	if size > len(data) {
		return nil, malformed(name, "TAP data is truncated (%d of %d bytes)", len(data), size)
	}
	data = data[:size]

	var half uint32
	var halves int

	for i := 0; i < len(data); i++ {
		var p uint32
		if data[i] != 0 {
			p = uint32(data[i]) * tapUnit
		} else if t.Version == 0 {
			p = tapOverflow
		} else {
			if i+3 >= len(data) {
				return nil, malformed(name, "TAP long pulse is truncated")
			}
			p = uint32(data[i+1]) | uint32(data[i+2])<<8 | uint32(data[i+3])<<16
			i += 3
		}

		if t.Version == 2 {
			half += p
			halves++
			if halves < 2 {
				continue
			}
			p = half
			half = 0
			halves = 0
		}

		t.Pulses = append(t.Pulses, p)
	}

	return t, nil
}
