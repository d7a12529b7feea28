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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory
// for the bank selector. Useful for reference.
func Summary(selector uint8) string {
	var area, current Area
	var sa uint16

	s := strings.Builder{}

	_, current = MapAddress(selector, 0, true)

	// the loop counter is wider than an address so that the loop can reach
	// Memtop without overflowing
	for a := uint32(1); a <= uint32(Memtop); a++ {
		_, area = MapAddress(selector, uint16(a), true)
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current))
			current = area
			sa = uint16(a)
		}
	}

	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, Memtop, current))

	return s.String()
}
