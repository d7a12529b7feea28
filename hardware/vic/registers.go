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

// register numbers that need special handling
const (
	regSpriteXMSB   = 0x10
	regControl1     = 0x11
	regRaster       = 0x12
	regLightPenX    = 0x13
	regLightPenY    = 0x14
	regSpriteEnable = 0x15
	regControl2     = 0x16
	regSpriteYExp   = 0x17
	regMemory       = 0x18
	regIRQ          = 0x19
	regIRQEnable    = 0x1a
	regSpritePrio   = 0x1b
	regSpriteMC     = 0x1c
	regSpriteXExp   = 0x1d
	regSpriteSprite = 0x1e
	regSpriteBG     = 0x1f
	regBorder       = 0x20
	regBackground0  = 0x21
	regBackground1  = 0x22
	regBackground2  = 0x23
	regSpriteMC0    = 0x25
	regSpriteMC1    = 0x26
	regSpriteColour = 0x27
	regLast         = 0x2e
)

// ReadRegister implements the memory.IODevice interface. Reading the
// collision registers clears them.
func (vic *VIC) ReadRegister(reg uint8) uint8 {
	return vic.read(reg&0x3f, false)
}

// PeekRegister implements the memory.IODevice interface.
func (vic *VIC) PeekRegister(reg uint8) uint8 {
	return vic.read(reg&0x3f, true)
}

func (vic *VIC) read(reg uint8, peek bool) uint8 {
	switch reg {
	case regControl1:
		return vic.regs[regControl1]&0x7f | uint8(vic.raster>>1)&0x80
	case regRaster:
		return uint8(vic.raster)
	case regLightPenX:
		return vic.lpX
	case regLightPenY:
		return vic.lpY
	case regControl2:
		return vic.regs[regControl2] | 0xc0
	case regMemory:
		return vic.regs[regMemory] | 0x01
	case regIRQ:
		v := vic.irqLatch | 0x70
		if vic.IRQ() {
			v |= 0x80
		}
		return v
	case regIRQEnable:
		return vic.irqEnable | 0xf0
	case regSpriteSprite:
		v := vic.spriteCollision
		if !peek {
			vic.spriteCollision = 0
		}
		return v
	case regSpriteBG:
		v := vic.bgCollision
		if !peek {
			vic.bgCollision = 0
		}
		return v
	}

	if reg > regLast {
		return 0xff
	}
	if reg >= regBorder {
		return vic.regs[reg] | 0xf0
	}
	return vic.regs[reg]
}

// WriteRegister implements the memory.IODevice interface.
func (vic *VIC) WriteRegister(reg uint8, data uint8) {
	reg &= 0x3f

	switch reg {
	case regControl1:
		vic.regs[regControl1] = data
		vic.setRasterCompare(int(data&0x80)<<1 | int(vic.regs[regRaster]))
		if vic.raster == firstBadLine && vic.den() {
			vic.denLatch = true
		}
		vic.badLine = vic.badLineCondition()
	case regRaster:
		vic.regs[regRaster] = data
		vic.setRasterCompare(int(vic.regs[regControl1]&0x80)<<1 | int(data))
	case regLightPenX, regLightPenY, regSpriteSprite, regSpriteBG:
		// read only
	case regSpriteYExp:
		vic.regs[regSpriteYExp] = data
		for n := range vic.sprites {
			if data&(1<<n) == 0 {
				vic.sprites[n].expFF = true
			}
		}
	case regIRQ:
		vic.irqLatch &^= data & irqSourceAll
	case regIRQEnable:
		vic.irqEnable = data & irqSourceAll
	default:
		if reg <= regLast {
			vic.regs[reg] = data
		}
	}
}

// a write that makes the compare value equal to the current line triggers
// the interrupt immediately
func (vic *VIC) setRasterCompare(v int) {
	if v != vic.rasterCompare && v == vic.raster {
		vic.irqLatch |= IRQRaster
	}
	vic.rasterCompare = v
}

func (vic *VIC) den() bool {
	return vic.regs[regControl1]&0x10 != 0
}

func (vic *VIC) yscroll() uint8 {
	return vic.regs[regControl1] & 0x07
}

func (vic *VIC) rsel() bool {
	return vic.regs[regControl1]&0x08 != 0
}

func (vic *VIC) bmm() bool {
	return vic.regs[regControl1]&0x20 != 0
}

func (vic *VIC) ecm() bool {
	return vic.regs[regControl1]&0x40 != 0
}

func (vic *VIC) xscroll() uint8 {
	return vic.regs[regControl2] & 0x07
}

func (vic *VIC) csel() bool {
	return vic.regs[regControl2]&0x08 != 0
}

func (vic *VIC) mcm() bool {
	return vic.regs[regControl2]&0x10 != 0
}

func (vic *VIC) videoMatrix() uint16 {
	return uint16(vic.regs[regMemory]&0xf0) << 6
}

func (vic *VIC) charBase() uint16 {
	return uint16(vic.regs[regMemory]&0x0e) << 10
}

func (vic *VIC) bitmapBase() uint16 {
	return uint16(vic.regs[regMemory]&0x08) << 10
}

func (vic *VIC) topCompare() int {
	if vic.rsel() {
		return 51
	}
	return 55
}

func (vic *VIC) bottomCompare() int {
	if vic.rsel() {
		return 251
	}
	return 247
}

func (vic *VIC) leftCompare() int {
	if vic.csel() {
		return 24
	}
	return 31
}

func (vic *VIC) rightCompare() int {
	if vic.csel() {
		return 344
	}
	return 335
}
