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

package vic

// render the eight pixels of the cycle. c is the cycle relative to the first
// visible cycle
func (vic *VIC) render(c int) {
	y := vic.raster - vic.spec.FirstVisibleLine
	row := vic.back.Pix[y*vic.back.Width : (y+1)*vic.back.Width]

	for i := range 8 {
		fx := c*8 + i

		// x in the coordinates used by sprites
		x := fx - 8

		if x == vic.rightCompare() {
			vic.mainBorder = true
		}
		if x == vic.leftCompare() {
			if vic.raster == vic.bottomCompare() {
				vic.vertBorder = true
			} else if vic.raster == vic.topCompare() && vic.den() {
				vic.vertBorder = false
			}
			if !vic.vertBorder {
				vic.mainBorder = false
			}
		}

		colour, fg := vic.graphicsPixel(x)
		colour = vic.spritePixel(x, colour, fg)
		if vic.mainBorder {
			colour = vic.regs[regBorder] & 0x0f
		}
		row[fx] = colour
	}
}

// returns the colour of the graphics at x and whether the pixel is
// foreground. foreground pixels take part in sprite priority and collisions
func (vic *VIC) graphicsPixel(x int) (uint8, bool) {
	bg0 := vic.regs[regBackground0] & 0x0f

	gx := x - displayLeft - int(vic.xscroll())
	if gx < 0 || gx >= 320 {
		return bg0, false
	}

	col := gx >> 3
	bit := uint(gx & 0x07)
	g := vic.gdata[col]

	// in idle state the video matrix and colour data are zero
	var c, clr uint8
	if !vic.idle[col] {
		c = vic.matrix[col]
		clr = vic.colour[col]
	}

	on := g&(0x80>>bit) != 0
	pair := (g >> (6 - bit&^1)) & 0x03

	switch {
	case !vic.ecm() && !vic.bmm() && !vic.mcm():
		if on {
			return clr, true
		}
		return bg0, false

	case !vic.ecm() && !vic.bmm() && vic.mcm():
		if clr&0x08 == 0 {
			if on {
				return clr & 0x07, true
			}
			return bg0, false
		}
		switch pair {
		case 0:
			return bg0, false
		case 1:
			return vic.regs[regBackground1] & 0x0f, false
		case 2:
			return vic.regs[regBackground2] & 0x0f, true
		}
		return clr & 0x07, true

	case !vic.ecm() && vic.bmm() && !vic.mcm():
		if on {
			return c >> 4, true
		}
		return c & 0x0f, false

	case !vic.ecm() && vic.bmm() && vic.mcm():
		switch pair {
		case 0:
			return bg0, false
		case 1:
			return c >> 4, false
		case 2:
			return c & 0x0f, true
		}
		return clr, true

	case vic.ecm() && !vic.bmm() && !vic.mcm():
		if on {
			return clr, true
		}
		return vic.regs[regBackground0+c>>6] & 0x0f, false
	}

	// the invalid modes output black but still produce foreground pixels for
	// collision detection
	if vic.mcm() && (vic.bmm() || clr&0x08 != 0) {
		return Black, pair&0x02 != 0
	}
	return Black, on
}
