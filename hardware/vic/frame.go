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
	"image"
	"iter"
	"sync"

	"github.com/technic0/Ready/hardware/specification"
)

// BorderMode selects how much of the border is shown by Frame.Crop().
type BorderMode int

// List of valid BorderMode values.
const (
	FullBorder BorderMode = iota
	ReducedBorder
	NoBorder
)

func (m BorderMode) String() string {
	switch m {
	case FullBorder:
		return "full"
	case ReducedBorder:
		return "reduced"
	case NoBorder:
		return "none"
	}
	return "unknown"
}

// the display window in the coordinates used for sprites
const (
	displayLeft   = 24
	displayRight  = 344
	displayTop    = 51
	displayBottom = 251
)

// the size of the border on each side of the display window with the
// ReducedBorder mode
const reducedBorder = 16

// Frame is a single completed television frame. Pixels are stored as colour
// indexes, one byte per pixel, one row per raster line.
type Frame struct {
	// the ID of the TV specification that produced the frame
	Spec string

	// frame number since the last reset
	Number uint64

	Width  int
	Height int

	// the raster line of the first row of the frame
	FirstLine int

	Pix []uint8

	pool *framePool
}

func newFrame(spec specification.Spec) *Frame {
	w := spec.VisibleWidth()
	h := spec.VisibleHeight()
	return &Frame{
		Spec:      spec.ID,
		Width:     w,
		Height:    h,
		FirstLine: spec.FirstVisibleLine,
		Pix:       make([]uint8, w*h),
	}
}

func (f *Frame) String() string {
	return fmt.Sprintf("%s frame %d (%dx%d)", f.Spec, f.Number, f.Width, f.Height)
}

// At returns the colour index of the pixel.
func (f *Frame) At(x, y int) uint8 {
	return f.Pix[y*f.Width+x]
}

// Lines returns the rows of the frame in raster order. The sequence can be
// iterated any number of times.
func (f *Frame) Lines() iter.Seq2[int, []uint8] {
	return func(yield func(int, []uint8) bool) {
		for y := range f.Height {
			i := y * f.Width
			if !yield(y, f.Pix[i:i+f.Width:i+f.Width]) {
				return
			}
		}
	}
}

// Crop returns the part of the frame that should be displayed for the border
// mode.
func (f *Frame) Crop(border BorderMode) image.Rectangle {
	display := image.Rect(
		displayLeft+8, displayTop-f.FirstLine,
		displayRight+8, displayBottom-f.FirstLine,
	)

	switch border {
	case ReducedBorder:
		return display.Inset(-reducedBorder).Intersect(f.Bounds())
	case NoBorder:
		return display
	}

	return f.Bounds()
}

// Bounds returns the size of the frame as an image.Rectangle.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// RGBA converts the frame to an image using the palette.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for y, line := range f.Lines() {
		for x, c := range line {
			img.SetRGBA(x, y, Palette[c&0x0f])
		}
	}
	return img
}

// Release returns the frame to the pool it came from. The frame must not be
// used after it has been released. Releasing a frame that did not come from
// a pool does nothing.
func (f *Frame) Release() {
	if f.pool != nil {
		f.pool.put(f)
	}
}

// framePool recycles frames handed to the host
type framePool struct {
	spec specification.Spec
	pool sync.Pool
}

func newFramePool(spec specification.Spec) *framePool {
	p := &framePool{spec: spec}
	p.pool.New = func() any {
		f := newFrame(spec)
		f.pool = p
		return f
	}
	return p
}

// get a frame from the pool and copy the source frame into it
func (p *framePool) copyOf(src *Frame) *Frame {
	f := p.pool.Get().(*Frame)
	f.Number = src.Number
	copy(f.Pix, src.Pix)
	return f
}

func (p *framePool) put(f *Frame) {
	p.pool.Put(f)
}
