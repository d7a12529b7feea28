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

import (
	"fmt"

	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/logger"
)

// Memory is the view of memory used by the VIC. Addresses for VICRead() are
// 14 bits wide and addresses for ColourRead() are 10 bits wide.
type Memory interface {
	VICRead(address uint16) uint8
	ColourRead(address uint16) uint8
}

// Bits of the IRQ latch and enable registers.
const (
	IRQRaster    = uint8(0x01)
	IRQSpriteBG  = uint8(0x02)
	IRQSprite    = uint8(0x04)
	IRQLightPen  = uint8(0x08)
	irqSourceAll = uint8(0x0f)
)

// the range of raster lines that can be bad lines
const (
	firstBadLine = 0x30
	lastBadLine  = 0xf7
)

// line cycles of interest
const (
	cycleVCLoad     = 14
	cycleFirstC     = 15
	cycleLastC      = 54
	cycleFirstG     = 16
	cycleLastG      = 55
	cycleBAFirst    = 12
	cycleSpriteDMA1 = 55
	cycleSpriteDMA2 = 56
	cycleRCUpdate   = 58
	cycleMCBase     = 16
)

// VIC represents the VIC-II chip.
type VIC struct {
	env  *environment.Environment
	spec specification.Spec
	mem  Memory

	// registers as written by the CPU. some registers are read differently to
	// how they are written. see registers.go
	regs [0x40]uint8

	// current raster line and the current cycle on that line. cycles count
	// from one
	raster int
	cycle  int

	// raster compare value including bit 8 from $D011
	rasterCompare int

	irqLatch  uint8
	irqEnable uint8

	// the bad line condition for the current line. denLatch records whether
	// DEN was set in any cycle of line $30
	badLine  bool
	denLatch bool

	// display or idle state and the counters of the display logic
	display bool
	vc      uint16
	vcBase  uint16
	rc      uint8
	vmli    int

	// the line buffers filled by the c-accesses and g-accesses
	matrix [40]uint8
	colour [40]uint8
	gdata  [40]uint8
	idle   [40]bool

	// border flip flops
	mainBorder bool
	vertBorder bool

	sprites [8]sprite

	// collisions are accumulated here and read through $D01E and $D01F
	spriteCollision uint8
	bgCollision     uint8

	// light pen
	lpLatched bool
	lpX       uint8
	lpY       uint8

	// BA low. the CPU stops on its next read cycle
	ba bool

	// frames
	frameNum uint64
	back     *Frame
	front    *Frame
	pool     *framePool
}

// NewVIC is the preferred method of initialisation for the VIC type.
func NewVIC(env *environment.Environment, spec specification.Spec, mem Memory) *VIC {
	vic := &VIC{
		env:  env,
		spec: spec,
		mem:  mem,
		pool: newFramePool(spec),
	}
	vic.back = newFrame(spec)
	vic.front = newFrame(spec)
	vic.Reset()
	return vic
}

// Label implements the memory.IODevice interface.
func (vic *VIC) Label() string {
	return fmt.Sprintf("VIC-II (%s)", vic.spec.VICModel)
}

func (vic *VIC) String() string {
	state := "idle"
	if vic.display {
		state = "display"
	}
	return fmt.Sprintf("raster=%03d cycle=%02d vc=%03x vcbase=%03x rc=%d %s badline=%v ba=%v irq=%02x/%02x",
		vic.raster, vic.cycle, vic.vc, vic.vcBase, vic.rc, state,
		vic.badLine, vic.ba, vic.irqLatch, vic.irqEnable)
}

// Spec returns the TV specification of the VIC.
func (vic *VIC) Spec() specification.Spec {
	return vic.spec
}

// Reset the VIC. The frame buffers are cleared.
func (vic *VIC) Reset() {
	clear(vic.regs[:])
	vic.raster = 0
	vic.cycle = 1
	vic.rasterCompare = 0
	vic.irqLatch = 0
	vic.irqEnable = 0
	vic.badLine = false
	vic.denLatch = false
	vic.display = false
	vic.vc = 0
	vic.vcBase = 0
	vic.rc = 0
	vic.vmli = 0
	clear(vic.matrix[:])
	clear(vic.colour[:])
	clear(vic.gdata[:])
	clear(vic.idle[:])
	vic.mainBorder = true
	vic.vertBorder = true
	for i := range vic.sprites {
		vic.sprites[i] = sprite{expFF: true}
	}
	vic.spriteCollision = 0
	vic.bgCollision = 0
	vic.lpLatched = false
	vic.lpX = 0
	vic.lpY = 0
	vic.ba = false
	vic.frameNum = 0
	clear(vic.back.Pix)
	clear(vic.front.Pix)
	vic.back.Number = 0
	vic.front.Number = 0
}

// RasterLine returns the current raster line.
func (vic *VIC) RasterLine() int {
	return vic.raster
}

// LineCycle returns the current cycle of the raster line. The first cycle of
// a line is cycle one.
func (vic *VIC) LineCycle() int {
	return vic.cycle
}

// BA returns true if the BA line is low.
func (vic *VIC) BA() bool {
	return vic.ba
}

// IRQ returns true if the VIC is asserting the IRQ line.
func (vic *VIC) IRQ() bool {
	return vic.irqLatch&vic.irqEnable != 0
}

// FrameNum returns the number of frames completed since reset.
func (vic *VIC) FrameNum() uint64 {
	return vic.frameNum
}

// CurrentFrameBuffer returns the last completed frame. The frame is owned by
// the VIC and will be overwritten when the next frame completes. Use
// HandOff() for a copy that can be kept.
func (vic *VIC) CurrentFrameBuffer() *Frame {
	return vic.front
}

// HandOff returns a copy of the last completed frame. The copy should be
// returned with Frame.Release() when it is no longer required.
func (vic *VIC) HandOff() *Frame {
	return vic.pool.copyOf(vic.front)
}

// Advance the VIC by the number of cycles.
func (vic *VIC) Advance(cycles int) {
	for range cycles {
		vic.Step()
	}
}

// Step the VIC by one cycle. Returns true if BA is low for the next cycle.
func (vic *VIC) Step() bool {
	if vic.cycle == 1 {
		vic.startLine()
	}

	if vic.badLine {
		vic.display = true
	}

	switch {
	case vic.cycle == cycleVCLoad:
		vic.vc = vic.vcBase
		vic.vmli = 0
		if vic.badLine {
			vic.rc = 0
		}
	case vic.cycle == cycleRCUpdate:
		if vic.rc == 7 {
			vic.vcBase = vic.vc
			if !vic.badLine {
				vic.display = false
			}
		}
		if vic.display {
			vic.rc = (vic.rc + 1) & 0x07
		}
	}

	if vic.cycle >= cycleFirstC && vic.cycle <= cycleLastC && vic.badLine {
		vic.cAccess()
	}

	vic.spriteCycle()

	if vic.cycle >= cycleFirstG && vic.cycle <= cycleLastG {
		vic.gAccess()
	}

	if vic.raster >= vic.spec.FirstVisibleLine && vic.raster <= vic.spec.LastVisibleLine {
		c := vic.cycle - vic.spec.FirstVisibleCycle
		if c >= 0 && c < vic.spec.VisibleCycles {
			vic.render(c)
		}
	}

	// vertical border flip flop is checked in the last cycle of the line
	if vic.cycle == vic.spec.CyclesPerScanline {
		if vic.raster == vic.bottomCompare() {
			vic.vertBorder = true
		} else if vic.raster == vic.topCompare() && vic.den() {
			vic.vertBorder = false
		}
	}

	vic.cycle++
	if vic.cycle > vic.spec.CyclesPerScanline {
		vic.cycle = 1
		vic.raster++
		if vic.raster >= vic.spec.ScanlinesTotal {
			vic.raster = 0
			vic.endFrame()
		}
	}

	vic.ba = vic.baLow()
	return vic.ba
}

// work done at the start of every line
func (vic *VIC) startLine() {
	if vic.raster == 0 {
		vic.lpLatched = false
		vic.vcBase = 0
		vic.denLatch = false
	}

	if vic.raster == firstBadLine && vic.den() {
		vic.denLatch = true
	}

	vic.badLine = vic.badLineCondition()

	if vic.raster == vic.rasterCompare {
		vic.irqLatch |= IRQRaster
	}
}

func (vic *VIC) endFrame() {
	vic.back.Number = vic.frameNum
	vic.back, vic.front = vic.front, vic.back
	vic.frameNum++
}

func (vic *VIC) badLineCondition() bool {
	return vic.denLatch &&
		vic.raster >= firstBadLine && vic.raster <= lastBadLine &&
		uint8(vic.raster)&0x07 == vic.yscroll()
}

// true if BA should be low in the current cycle
func (vic *VIC) baLow() bool {
	if vic.badLine && vic.cycle >= cycleBAFirst && vic.cycle <= cycleLastC {
		return true
	}
	for n := range vic.sprites {
		if vic.sprites[n].dma && vic.spriteBA(n) {
			return true
		}
	}
	return false
}

// the c-access reads the video matrix and colour RAM into the line buffers
func (vic *VIC) cAccess() {
	i := vic.cycle - cycleFirstC
	vic.matrix[i] = vic.mem.VICRead(vic.videoMatrix() | vic.vc)
	vic.colour[i] = vic.mem.ColourRead(vic.vc) & 0x0f
}

// the g-access reads the graphics data. in idle state the data always comes
// from the last byte of the bank
func (vic *VIC) gAccess() {
	i := vic.cycle - cycleFirstG

	if !vic.display {
		addr := uint16(0x3fff)
		if vic.ecm() {
			addr = 0x39ff
		}
		vic.gdata[i] = vic.mem.VICRead(addr)
		vic.idle[i] = true
		return
	}

	var addr uint16
	if vic.bmm() {
		addr = vic.bitmapBase() | vic.vc<<3 | uint16(vic.rc)
	} else {
		addr = vic.charBase() | uint16(vic.matrix[vic.vmli])<<3 | uint16(vic.rc)
	}
	if vic.ecm() {
		addr &^= 0x0600
	}

	vic.gdata[i] = vic.mem.VICRead(addr)
	vic.idle[i] = false
	vic.vc = (vic.vc + 1) & 0x03ff
	vic.vmli++
}

// TriggerLightPen latches the current beam position into the light pen
// registers. Only the first trigger in a frame is latched.
func (vic *VIC) TriggerLightPen() {
	if vic.lpLatched {
		return
	}
	vic.lpLatched = true

	x := (vic.cycle-vic.spec.FirstVisibleCycle)*8 - 8
	vic.lpX = uint8((x & 0x1ff) >> 1)
	vic.lpY = uint8(vic.raster)
	vic.irqLatch |= IRQLightPen

	logger.Logf(vic.env, "vic", "light pen latched at %d,%d", vic.lpX, vic.lpY)
}
