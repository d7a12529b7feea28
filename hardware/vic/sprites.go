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

type sprite struct {
	dma     bool
	display bool

	// the Y expansion flip flop. set whenever Y expansion is off for the
	// sprite
	expFF bool

	mc     uint8
	mcBase uint8

	// 24 bits of sprite data for the current line
	data uint32
}

// the first cycle of the p-access for the sprite. sprites 0 to 2 are fetched
// at the end of the line and sprites 3 to 7 at the start of the next line
func (vic *VIC) spriteStart(n int) int {
	cpl := vic.spec.CyclesPerScanline
	s := cpl - 5 + 2*n
	if s > cpl {
		s -= cpl
	}
	return s
}

// BA is low for the three cycles before the p-access and for the two cycles
// of the fetch
func (vic *VIC) spriteBA(n int) bool {
	cpl := vic.spec.CyclesPerScanline
	s := vic.spriteStart(n)
	before := (s - vic.cycle + cpl) % cpl
	after := (vic.cycle - s + cpl) % cpl
	return before <= 3 || after == 1
}

func (vic *VIC) spriteEnabled(n int) bool {
	return vic.regs[regSpriteEnable]&(1<<n) != 0
}

func (vic *VIC) spriteYExpanded(n int) bool {
	return vic.regs[regSpriteYExp]&(1<<n) != 0
}

func (vic *VIC) spriteXExpanded(n int) bool {
	return vic.regs[regSpriteXExp]&(1<<n) != 0
}

func (vic *VIC) spriteX(n int) int {
	return int(vic.regs[n*2]) | int(vic.regs[regSpriteXMSB]>>n&0x01)<<8
}

func (vic *VIC) spriteY(n int) int {
	return int(vic.regs[n*2+1])
}

// the sprite logic that happens in specific cycles of every line
func (vic *VIC) spriteCycle() {
	switch vic.cycle {
	case cycleMCBase:
		for n := range vic.sprites {
			sp := &vic.sprites[n]
			if sp.expFF {
				sp.mcBase = sp.mc
			}
			if sp.mcBase == 63 {
				sp.dma = false
			}
		}
	case cycleSpriteDMA1, cycleSpriteDMA2:
		for n := range vic.sprites {
			sp := &vic.sprites[n]
			if vic.cycle == cycleSpriteDMA1 && vic.spriteYExpanded(n) {
				sp.expFF = !sp.expFF
			}
			if vic.spriteEnabled(n) && vic.spriteY(n) == vic.raster&0xff && !sp.dma {
				sp.dma = true
				sp.mcBase = 0
				if vic.spriteYExpanded(n) {
					sp.expFF = false
				}
			}
		}
	case cycleRCUpdate:
		for n := range vic.sprites {
			sp := &vic.sprites[n]
			sp.mc = sp.mcBase
			if sp.dma {
				if vic.spriteY(n) == vic.raster&0xff {
					sp.display = true
				}
			} else {
				sp.display = false
			}
		}
	}

	for n := range vic.sprites {
		if vic.cycle == vic.spriteStart(n) {
			vic.spriteFetch(n)
		}
	}
}

// the p-access and the three s-accesses for the sprite
func (vic *VIC) spriteFetch(n int) {
	ptr := vic.mem.VICRead(vic.videoMatrix() | 0x03f8 | uint16(n))

	sp := &vic.sprites[n]
	if !sp.dma {
		return
	}

	var data uint32
	for range 3 {
		data = data<<8 | uint32(vic.mem.VICRead(uint16(ptr)<<6|uint16(sp.mc)))
		sp.mc = (sp.mc + 1) & 0x3f
	}
	sp.data = data
}

// returns the colour of the pixel at x after sprites have been considered.
// collisions are detected here
func (vic *VIC) spritePixel(x int, colour uint8, fg bool) uint8 {
	if x < 0 {
		return colour
	}

	var hits uint8
	top := -1
	var topColour uint8

	for n := range vic.sprites {
		sp := &vic.sprites[n]
		if !sp.display {
			continue
		}

		dx := x - vic.spriteX(n)
		w := 24
		if vic.spriteXExpanded(n) {
			w = 48
		}
		if dx < 0 || dx >= w {
			continue
		}
		if w == 48 {
			dx >>= 1
		}

		var c uint8
		if vic.regs[regSpriteMC]&(1<<n) != 0 {
			switch (sp.data >> (22 - uint(dx&^1))) & 0x03 {
			case 0:
				continue
			case 1:
				c = vic.regs[regSpriteMC0]
			case 2:
				c = vic.regs[regSpriteColour+n]
			case 3:
				c = vic.regs[regSpriteMC1]
			}
		} else {
			if (sp.data>>(23-uint(dx)))&0x01 == 0 {
				continue
			}
			c = vic.regs[regSpriteColour+n]
		}

		hits |= 1 << n
		if top < 0 {
			top = n
			topColour = c & 0x0f
		}
	}

	if hits == 0 {
		return colour
	}

	// an interrupt is raised by the first collision since the register was
	// last cleared
	if hits&(hits-1) != 0 {
		if vic.spriteCollision == 0 {
			vic.irqLatch |= IRQSprite
		}
		vic.spriteCollision |= hits
	}

	if fg {
		if vic.bgCollision == 0 {
			vic.irqLatch |= IRQSpriteBG
		}
		vic.bgCollision |= hits
		if vic.regs[regSpritePrio]&(1<<top) != 0 {
			return colour
		}
	}

	return topColour
}
