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

// the 4 bit to 5 bit group code used by Commodore drives. no code has more
// than two zero bits in a row and no code can be part of a sync mark
var gcrEncode = [16]uint8{
	0x0a, 0x0b, 0x12, 0x13, 0x0e, 0x0f, 0x16, 0x17,
	0x09, 0x19, 0x1a, 0x1b, 0x0d, 0x1d, 0x1e, 0x15,
}

// 5 bit codes to 4 bit values. invalid codes are 0xff
var gcrDecode [32]uint8

func init() {
	for i := range gcrDecode {
		gcrDecode[i] = 0xff
	}
	for v, c := range gcrEncode {
		gcrDecode[c] = uint8(v)
	}
}

// encodeGCR converts every four bytes of data into five bytes of GCR. the
// length of data must be a multiple of four
func encodeGCR(data []byte) []byte {
	out := make([]byte, 0, len(data)*5/4)
	for i := 0; i+3 < len(data); i += 4 {
		var bits uint64
		for _, b := range data[i : i+4] {
			bits = bits<<10 | uint64(gcrEncode[b>>4])<<5 | uint64(gcrEncode[b&0x0f])
		}
		out = append(out, uint8(bits>>32), uint8(bits>>24), uint8(bits>>16), uint8(bits>>8), uint8(bits))
	}
	return out
}

// bitReader reads the bits of a track. the track is circular
type bitReader struct {
	track []byte
	pos   int

	// number of bits read
	read int
}

func (r *bitReader) bits() int {
	return len(r.track) * 8
}

func (r *bitReader) next() bool {
	b := r.track[r.pos>>3]&(0x80>>(r.pos&0x07)) != 0
	r.pos = (r.pos + 1) % r.bits()
	r.read++
	return b
}

// sync advances the reader past the next sync mark. the reader is left on the
// first zero bit after the mark. returns false if no sync mark is found in
// one revolution
func (r *bitReader) sync() bool {
	ones := 0
	for range r.bits() + 10 {
		if r.next() {
			ones++
			continue
		}
		if ones >= 10 {
			r.pos = (r.pos - 1 + r.bits()) % r.bits()
			return true
		}
		ones = 0
	}
	return false
}

// decode reads n bytes of GCR encoded data. returns false if an invalid code
// is found
func (r *bitReader) decode(n int) ([]byte, bool) {
	out := make([]byte, n)
	for i := range out {
		var hi, lo uint8
		for range 5 {
			hi <<= 1
			if r.next() {
				hi |= 1
			}
		}
		for range 5 {
			lo <<= 1
			if r.next() {
				lo |= 1
			}
		}
		if gcrDecode[hi] == 0xff || gcrDecode[lo] == 0xff {
			return out, false
		}
		out[i] = gcrDecode[hi]<<4 | gcrDecode[lo]
	}
	return out, true
}
