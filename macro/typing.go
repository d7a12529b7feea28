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

package macro

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// the KERNAL keyboard buffer
const (
	keyBuffer      = 0x0277
	keyBufferCount = 0x00c6
	keyBufferLen   = 10
)

// the number of frames to wait for the KERNAL to empty the keyboard buffer
const typeTimeout = 250

// petscii converts the character to the PETSCII code typed by the keyboard
// with the character set in upper case mode
func petscii(r rune) (uint8, error) {
	switch {
	case r == '\n':
		return 0x0d, nil
	case r >= 'a' && r <= 'z':
		return uint8(r - 'a' + 'A'), nil
	case r >= ' ' && r <= ']':
		return uint8(r), nil
	}
	return 0, fmt.Errorf("cannot type %q", r)
}

func (mcr *Macro) luaType(L *lua.LState) int {
	var codes []uint8
	for _, r := range L.CheckString(1) {
		c, err := petscii(r)
		if err != nil {
			L.ArgError(1, err.Error())
		}
		codes = append(codes, c)
	}

	for len(codes) > 0 {
		// wait for the buffer to be emptied by the KERNAL
		for w := 0; mcr.m.Mem.PeekRAM(keyBufferCount) != 0; w++ {
			if w >= typeTimeout {
				L.RaiseError("keyboard buffer was not emptied")
			}
			mcr.wait(L, 1)
		}

		n := min(len(codes), keyBufferLen)
		for i, c := range codes[:n] {
			mcr.m.Mem.PokeRAM(keyBuffer+uint16(i), c)
		}
		mcr.m.Mem.PokeRAM(keyBufferCount, uint8(n))
		codes = codes[n:]
	}

	return 0
}
