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

package registers

// AddDecimal adds value to register as though both values are binary coded
// decimal. Returns new carry, zero, overflow and sign states.
//
// The flags follow the NMOS 6502: Z is computed from the binary sum, N and V
// are computed after the adjustment of the low nibble but before the
// adjustment of the high nibble.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c uint16
	if carry {
		c = 1
	}

	a := uint16(r.value)
	v := uint16(val)

	zero = uint8(a+v+c) == 0

	lo := (a & 0x0f) + (v & 0x0f) + c
	if lo > 0x09 {
		lo += 0x06
	}

	hi := (a >> 4) + (v >> 4)
	if lo > 0x0f {
		hi++
	}

	sign = hi&0x08 == 0x08
	overflow = ((hi<<4)^a)&0x80 == 0x80 && (a^v)&0x80 == 0x00

	if hi > 0x09 {
		hi += 0x06
	}
	rcarry = hi > 0x0f

	r.value = uint8(hi<<4) | uint8(lo&0x0f)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both values are
// binary coded decimal. Returns new carry, zero, overflow and sign states.
//
// On the NMOS 6502 all flags are the same as for binary subtraction. Only the
// value in the register differs.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	var borrow int
	if !carry {
		borrow = 1
	}

	a := int(r.value)
	v := int(val)

	lo := (a & 0x0f) - (v & 0x0f) - borrow
	hi := (a >> 4) - (v >> 4)
	if lo < 0 {
		lo -= 0x06
		hi--
	}
	if hi < 0 {
		hi -= 0x06
	}

	r.value = uint8(hi<<4) | uint8(lo&0x0f)

	return rcarry, zero, overflow, sign
}
