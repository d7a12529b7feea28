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
	"github.com/technic0/Ready/faults"
)

// SpriteState is the state of a single sprite.
type SpriteState struct {
	DMA     bool
	Display bool
	ExpFF   bool
	MC      uint8
	MCBase  uint8
	Data    uint32
}

// State is the complete state of the VIC, as required by the snapshot
// package. It includes both frame buffers.
type State struct {
	Regs [0x40]uint8

	Raster        int
	Cycle         int
	RasterCompare int

	IRQLatch  uint8
	IRQEnable uint8

	BadLine  bool
	DENLatch bool
	Display  bool
	VC       uint16
	VCBase   uint16
	RC       uint8
	VMLI     int

	Matrix [40]uint8
	Colour [40]uint8
	GData  [40]uint8
	Idle   [40]bool

	MainBorder bool
	VertBorder bool

	Sprites [8]SpriteState

	SpriteCollision uint8
	BGCollision     uint8

	LPLatched bool
	LPX       uint8
	LPY       uint8

	BA bool

	FrameNum    uint64
	BackNumber  uint64
	FrontNumber uint64
	Back        []uint8
	Front       []uint8
}

// State returns the current state of the VIC.
func (vic *VIC) State() *State {
	s := &State{
		Regs:            vic.regs,
		Raster:          vic.raster,
		Cycle:           vic.cycle,
		RasterCompare:   vic.rasterCompare,
		IRQLatch:        vic.irqLatch,
		IRQEnable:       vic.irqEnable,
		BadLine:         vic.badLine,
		DENLatch:        vic.denLatch,
		Display:         vic.display,
		VC:              vic.vc,
		VCBase:          vic.vcBase,
		RC:              vic.rc,
		VMLI:            vic.vmli,
		Matrix:          vic.matrix,
		Colour:          vic.colour,
		GData:           vic.gdata,
		Idle:            vic.idle,
		MainBorder:      vic.mainBorder,
		VertBorder:      vic.vertBorder,
		SpriteCollision: vic.spriteCollision,
		BGCollision:     vic.bgCollision,
		LPLatched:       vic.lpLatched,
		LPX:             vic.lpX,
		LPY:             vic.lpY,
		BA:              vic.ba,
		FrameNum:        vic.frameNum,
		BackNumber:      vic.back.Number,
		FrontNumber:     vic.front.Number,
		Back:            append([]uint8(nil), vic.back.Pix...),
		Front:           append([]uint8(nil), vic.front.Pix...),
	}
	for n, sp := range vic.sprites {
		s.Sprites[n] = SpriteState{
			DMA:     sp.dma,
			Display: sp.display,
			ExpFF:   sp.expFF,
			MC:      sp.mc,
			MCBase:  sp.mcBase,
			Data:    sp.data,
		}
	}
	return s
}

// CheckState returns an error if the state cannot be applied to the VIC.
func (vic *VIC) CheckState(s *State) error {
	size := vic.spec.VisibleWidth() * vic.spec.VisibleHeight()
	if len(s.Back) != size || len(s.Front) != size {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "vic: frame buffer is the wrong size")
	}
	if s.Raster < 0 || s.Raster >= vic.spec.ScanlinesTotal {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "vic: raster line out of range")
	}
	if s.Cycle < 1 || s.Cycle > vic.spec.CyclesPerScanline {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "vic: line cycle out of range")
	}
	if s.VMLI < 0 || s.VMLI > len(vic.matrix) {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "vic: VMLI out of range")
	}

	// VMLI reaches the end of the matrix after the last g-access of a line
	// and is not reset until cycleVCLoad. between the reset and the last
	// g-access it can be no further on than the number of g-accesses made
	if s.Cycle > cycleVCLoad && s.Cycle <= cycleLastG && s.VMLI > max(0, s.Cycle-cycleFirstG) {
		return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "vic: VMLI ahead of line cycle")
	}
	return nil
}

// SetState restores the VIC to a previously saved state. The VIC is unchanged
// if the state is not valid.
func (vic *VIC) SetState(s *State) error {
	if err := vic.CheckState(s); err != nil {
		return err
	}

	vic.regs = s.Regs
	vic.raster = s.Raster
	vic.cycle = s.Cycle
	vic.rasterCompare = s.RasterCompare
	vic.irqLatch = s.IRQLatch
	vic.irqEnable = s.IRQEnable
	vic.badLine = s.BadLine
	vic.denLatch = s.DENLatch
	vic.display = s.Display
	vic.vc = s.VC
	vic.vcBase = s.VCBase
	vic.rc = s.RC
	vic.vmli = s.VMLI
	vic.matrix = s.Matrix
	vic.colour = s.Colour
	vic.gdata = s.GData
	vic.idle = s.Idle
	vic.mainBorder = s.MainBorder
	vic.vertBorder = s.VertBorder
	vic.spriteCollision = s.SpriteCollision
	vic.bgCollision = s.BGCollision
	vic.lpLatched = s.LPLatched
	vic.lpX = s.LPX
	vic.lpY = s.LPY
	vic.ba = s.BA
	vic.frameNum = s.FrameNum
	vic.back.Number = s.BackNumber
	vic.front.Number = s.FrontNumber
	copy(vic.back.Pix, s.Back)
	copy(vic.front.Pix, s.Front)
	for n, sp := range s.Sprites {
		vic.sprites[n] = sprite{
			dma:     sp.DMA,
			display: sp.Display,
			expFF:   sp.ExpFF,
			mc:      sp.MC,
			mcBase:  sp.MCBase,
			data:    sp.Data,
		}
	}

	return nil
}
