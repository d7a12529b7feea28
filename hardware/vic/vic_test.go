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

package vic_test

import (
	"testing"

	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/hardware/vic"
	"github.com/technic0/Ready/test"
)

type mockMem struct {
	ram    [0x4000]uint8
	colour [0x400]uint8
}

func (mem *mockMem) VICRead(address uint16) uint8 {
	return mem.ram[address&0x3fff]
}

func (mem *mockMem) ColourRead(address uint16) uint8 {
	return mem.colour[address&0x3ff]
}

func newVIC(spec specification.Spec) (*vic.VIC, *mockMem) {
	mem := &mockMem{}
	return vic.NewVIC(nil, spec, mem), mem
}

// advance the VIC to the first cycle of the raster line
func advanceTo(v *vic.VIC, line int) {
	for v.RasterLine() != line || v.LineCycle() != 1 {
		v.Step()
	}
}

func TestFrameTiming(t *testing.T) {
	for _, spec := range []specification.Spec{specification.SpecPAL, specification.SpecNTSC} {
		v, _ := newVIC(spec)
		v.Advance(spec.CyclesPerFrame() - 1)
		test.ExpectEquality(t, v.FrameNum(), uint64(0), spec.ID)
		test.ExpectEquality(t, v.RasterLine(), spec.ScanlinesTotal-1, spec.ID)
		test.ExpectEquality(t, v.LineCycle(), spec.CyclesPerScanline, spec.ID)

		v.Step()
		test.ExpectEquality(t, v.FrameNum(), uint64(1), spec.ID)
		test.ExpectEquality(t, v.RasterLine(), 0, spec.ID)
		test.ExpectEquality(t, v.LineCycle(), 1, spec.ID)

		f := v.CurrentFrameBuffer()
		test.ExpectEquality(t, f.Width, 384, spec.ID)
		test.ExpectEquality(t, f.Height, spec.VisibleHeight(), spec.ID)
	}

	test.ExpectEquality(t, specification.SpecPAL.VisibleHeight(), 272)
	test.ExpectEquality(t, specification.SpecNTSC.VisibleHeight(), 235)
}

func TestRasterIRQ(t *testing.T) {
	v, _ := newVIC(specification.SpecPAL)
	v.WriteRegister(0x12, 100)
	v.WriteRegister(0x1a, vic.IRQRaster)

	advanceTo(v, 100)
	test.ExpectFailure(t, v.IRQ())
	v.Step()
	test.ExpectSuccess(t, v.IRQ())
	test.ExpectEquality(t, v.ReadRegister(0x19), 0xf1)
	test.ExpectEquality(t, v.ReadRegister(0x12), 100)

	// acknowledge
	v.WriteRegister(0x19, vic.IRQRaster)
	test.ExpectFailure(t, v.IRQ())
	test.ExpectEquality(t, v.ReadRegister(0x19), 0x70)

	// writing the current line triggers immediately
	v.WriteRegister(0x12, 101)
	test.ExpectFailure(t, v.IRQ())
	v.WriteRegister(0x12, 100)
	test.ExpectSuccess(t, v.IRQ())

	// bit 8 of the compare value is in $D011
	v.WriteRegister(0x19, vic.IRQRaster)
	v.WriteRegister(0x11, 0x80)
	v.WriteRegister(0x12, 0x00)
	advanceTo(v, 0x100)
	v.Step()
	test.ExpectSuccess(t, v.IRQ())
	test.ExpectEquality(t, v.ReadRegister(0x11)&0x80, 0x80)
	test.ExpectEquality(t, v.ReadRegister(0x12), 0x00)
}

func TestBadLines(t *testing.T) {
	v, _ := newVIC(specification.SpecPAL)

	// display enabled, 25 rows, YSCROLL of 3
	v.WriteRegister(0x11, 0x1b)

	count := func() int {
		n := 0
		for range specification.SpecPAL.CyclesPerScanline {
			if v.Step() {
				n++
			}
		}
		return n
	}

	advanceTo(v, 0x32)
	test.ExpectEquality(t, count(), 0)
	test.ExpectEquality(t, count(), 43)
	test.ExpectEquality(t, count(), 0)

	advanceTo(v, 0x3b)
	test.ExpectEquality(t, count(), 43)

	// no bad lines after $F7
	advanceTo(v, 0xfb)
	test.ExpectEquality(t, count(), 0)

	// no bad lines in a frame where DEN was clear on line $30
	v.WriteRegister(0x11, 0x0b)
	advanceTo(v, 0x33)
	test.ExpectEquality(t, count(), 0)
}

// set up a text screen with the video matrix at $0400 and the character set
// at $1000
func textScreen(v *vic.VIC, mem *mockMem) {
	v.WriteRegister(0x11, 0x1b)
	v.WriteRegister(0x16, 0x08)
	v.WriteRegister(0x18, 0x14)
	v.WriteRegister(0x20, vic.LightBlue)
	v.WriteRegister(0x21, vic.Blue)

	mem.ram[0x0400] = 0x01
	for i := range 8 {
		mem.ram[0x1008+i] = 0xff
	}
	mem.colour[0] = vic.White
}

func TestTextMode(t *testing.T) {
	spec := specification.SpecPAL
	v, mem := newVIC(spec)
	textScreen(v, mem)
	v.Advance(spec.CyclesPerFrame() * 2)

	f := v.CurrentFrameBuffer()
	top := 51 - spec.FirstVisibleLine

	test.ExpectEquality(t, f.At(0, 0), vic.LightBlue)
	test.ExpectEquality(t, f.At(31, top), vic.LightBlue)
	test.ExpectEquality(t, f.At(32, top), vic.White)
	test.ExpectEquality(t, f.At(39, top+7), vic.White)
	test.ExpectEquality(t, f.At(40, top), vic.Blue)
	test.ExpectEquality(t, f.At(32, top+8), vic.Blue)
	test.ExpectEquality(t, f.At(32, top-1), vic.LightBlue)
	test.ExpectEquality(t, f.At(351, top+199), vic.Blue)
	test.ExpectEquality(t, f.At(352, top+199), vic.LightBlue)
	test.ExpectEquality(t, f.At(351, top+200), vic.LightBlue)

	// horizontal scrolling
	v.WriteRegister(0x16, 0x0a)
	v.Advance(spec.CyclesPerFrame())
	f = v.CurrentFrameBuffer()
	test.ExpectEquality(t, f.At(33, top), vic.Blue)
	test.ExpectEquality(t, f.At(34, top), vic.White)
	test.ExpectEquality(t, f.At(41, top), vic.White)
	test.ExpectEquality(t, f.At(42, top), vic.Blue)

	// blanking the display leaves only the border
	v.WriteRegister(0x11, 0x0b)
	v.Advance(spec.CyclesPerFrame())
	f = v.CurrentFrameBuffer()
	test.ExpectEquality(t, f.At(34, top), vic.LightBlue)
	test.ExpectEquality(t, f.At(200, 150), vic.LightBlue)
}

func TestSprites(t *testing.T) {
	spec := specification.SpecPAL
	v, mem := newVIC(spec)
	textScreen(v, mem)

	// sprite 0 at 100,100 with data at $2000
	v.WriteRegister(0x00, 100)
	v.WriteRegister(0x01, 100)
	v.WriteRegister(0x27, vic.Red)
	v.WriteRegister(0x15, 0x01)
	mem.ram[0x07f8] = 0x80
	for i := range 63 {
		mem.ram[0x2000+i] = 0xff
	}

	v.Advance(spec.CyclesPerFrame() * 2)
	f := v.CurrentFrameBuffer()

	// sprites are displayed from the line after the Y coordinate
	y := 101 - spec.FirstVisibleLine
	x := 100 + 8
	test.ExpectEquality(t, f.At(x, y), vic.Red)
	test.ExpectEquality(t, f.At(x-1, y), vic.Blue)
	test.ExpectEquality(t, f.At(x+23, y), vic.Red)
	test.ExpectEquality(t, f.At(x+24, y), vic.Blue)
	test.ExpectEquality(t, f.At(x, y-1), vic.Blue)
	test.ExpectEquality(t, f.At(x, y+20), vic.Red)
	test.ExpectEquality(t, f.At(x, y+21), vic.Blue)

	// X expansion
	v.WriteRegister(0x1d, 0x01)
	v.Advance(spec.CyclesPerFrame())
	f = v.CurrentFrameBuffer()
	test.ExpectEquality(t, f.At(x+47, y), vic.Red)
	test.ExpectEquality(t, f.At(x+48, y), vic.Blue)

	// Y expansion
	v.WriteRegister(0x17, 0x01)
	v.Advance(spec.CyclesPerFrame())
	f = v.CurrentFrameBuffer()
	test.ExpectEquality(t, f.At(x, y+41), vic.Red)
	test.ExpectEquality(t, f.At(x, y+42), vic.Blue)
}

func TestCollisions(t *testing.T) {
	spec := specification.SpecPAL
	v, mem := newVIC(spec)
	textScreen(v, mem)

	mem.ram[0x07f8] = 0x80
	mem.ram[0x07f9] = 0x80
	for i := range 63 {
		mem.ram[0x2000+i] = 0xff
	}

	v.WriteRegister(0x00, 100)
	v.WriteRegister(0x01, 100)
	v.WriteRegister(0x02, 110)
	v.WriteRegister(0x03, 110)
	v.WriteRegister(0x1a, vic.IRQSprite|vic.IRQSpriteBG)
	v.WriteRegister(0x15, 0x03)

	v.Advance(spec.CyclesPerFrame())
	test.ExpectSuccess(t, v.IRQ())
	test.ExpectEquality(t, v.ReadRegister(0x19)&0x0f, vic.IRQSprite)
	test.ExpectEquality(t, v.PeekRegister(0x1e), 0x03)
	test.ExpectEquality(t, v.ReadRegister(0x1e), 0x03)
	test.ExpectEquality(t, v.ReadRegister(0x1e), 0x00)

	// move sprite 0 over the character in the top left corner
	v.WriteRegister(0x19, 0x0f)
	v.WriteRegister(0x00, 24)
	v.WriteRegister(0x01, 50)
	v.Advance(spec.CyclesPerFrame())
	test.ExpectEquality(t, v.ReadRegister(0x1f), 0x01)
	test.ExpectEquality(t, v.ReadRegister(0x19)&vic.IRQSpriteBG, vic.IRQSpriteBG)
}

func TestLightPen(t *testing.T) {
	v, _ := newVIC(specification.SpecPAL)
	advanceTo(v, 150)
	v.Advance(20)

	v.TriggerLightPen()
	test.ExpectEquality(t, v.ReadRegister(0x14), 150)
	test.ExpectEquality(t, v.ReadRegister(0x19)&vic.IRQLightPen, vic.IRQLightPen)
	x := v.ReadRegister(0x13)

	// only one latch per frame
	v.Advance(100)
	v.TriggerLightPen()
	test.ExpectEquality(t, v.ReadRegister(0x13), x)
	test.ExpectEquality(t, v.ReadRegister(0x14), 150)

	advanceTo(v, 0)
	advanceTo(v, 160)
	v.TriggerLightPen()
	test.ExpectEquality(t, v.ReadRegister(0x14), 160)
}

func TestFrames(t *testing.T) {
	spec := specification.SpecPAL
	v, mem := newVIC(spec)
	textScreen(v, mem)
	v.Advance(spec.CyclesPerFrame() * 2)

	f := v.HandOff()
	test.ExpectEquality(t, f.Number, v.CurrentFrameBuffer().Number)
	test.ExpectEquality(t, f.At(32, 35), vic.White)

	// the copy is not affected by later frames
	mem.colour[0] = vic.Green
	v.Advance(spec.CyclesPerFrame())
	test.ExpectEquality(t, v.CurrentFrameBuffer().At(32, 35), vic.Green)
	test.ExpectEquality(t, f.At(32, 35), vic.White)

	// lines can be iterated more than once
	for range 2 {
		n := 0
		for y, line := range f.Lines() {
			test.ExpectEquality(t, y, n)
			test.ExpectEquality(t, len(line), f.Width)
			n++
		}
		test.ExpectEquality(t, n, f.Height)
	}

	test.ExpectEquality(t, f.Crop(vic.FullBorder), f.Bounds())
	test.ExpectEquality(t, f.Crop(vic.NoBorder).Dx(), 320)
	test.ExpectEquality(t, f.Crop(vic.NoBorder).Dy(), 200)
	test.ExpectEquality(t, f.Crop(vic.ReducedBorder).Dx(), 352)
	test.ExpectEquality(t, f.Crop(vic.ReducedBorder).Dy(), 232)

	img := f.RGBA()
	test.ExpectEquality(t, img.RGBAAt(32, 35), vic.Palette[vic.White])
	test.ExpectEquality(t, img.RGBAAt(0, 0), vic.Palette[vic.LightBlue])

	f.Release()
}

func TestState(t *testing.T) {
	spec := specification.SpecPAL
	v, mem := newVIC(spec)
	textScreen(v, mem)
	v.Advance(spec.CyclesPerFrame() + 5000)

	s := v.State()
	v.Advance(30000)
	test.ExpectInequality(t, v.RasterLine(), s.Raster)

	test.ExpectSuccess(t, v.SetState(s))
	test.ExpectEquality(t, v.RasterLine(), s.Raster)
	test.ExpectEquality(t, v.LineCycle(), s.Cycle)

	w := vic.NewVIC(nil, spec, mem)
	test.ExpectSuccess(t, w.SetState(s))
	w.Advance(spec.CyclesPerFrame())
	v.Advance(spec.CyclesPerFrame())
	test.ExpectEquality(t, string(w.CurrentFrameBuffer().Pix), string(v.CurrentFrameBuffer().Pix))

	// a bad state is rejected without changing the VIC
	bad := v.State()
	bad.Back = bad.Back[:10]
	raster := v.RasterLine()
	test.ExpectFailure(t, w.SetState(bad))
	test.ExpectEquality(t, w.RasterLine(), raster)

	// the video matrix index must leave room for the g-accesses still to
	// come on the line
	bad = v.State()
	bad.Cycle = 20
	bad.Display = true
	bad.VMLI = 40
	test.ExpectFailure(t, w.CheckState(bad))
	test.ExpectFailure(t, w.SetState(bad))

	bad.VMLI = 4
	test.ExpectSuccess(t, w.CheckState(bad))

	bad.Cycle = 15
	bad.VMLI = 1
	test.ExpectFailure(t, w.CheckState(bad))

	// the end of the matrix is normal once the g-accesses are done
	bad.Cycle = 60
	bad.VMLI = 40
	test.ExpectSuccess(t, w.CheckState(bad))
	bad.Cycle = 5
	test.ExpectSuccess(t, w.CheckState(bad))

	bad.VMLI = 41
	test.ExpectFailure(t, w.CheckState(bad))
}
