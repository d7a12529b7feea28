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

// Package screenshot saves frames produced by the VIC as image files. Images
// are scaled to correct for the pixel aspect ratio of the television
// specification. The BMP and PNG formats are supported and chosen by the
// filename extension.
package screenshot

import (
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware/vic"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// the width of a pixel relative to its height
var pixelAspect = map[string]float64{
	"PAL":  0.9365,
	"NTSC": 0.75,
}

// Options for the Save() function.
type Options struct {
	Border vic.BorderMode

	// integer scaling applied before the aspect correction. values less than
	// one are treated as one
	Scale int
}

// Image returns the frame as an aspect corrected image.
func Image(f *vic.Frame, opts Options) image.Image {
	crop := f.Crop(opts.Border)
	src := f.RGBA().SubImage(crop)

	scale := max(opts.Scale, 1)
	aspect, ok := pixelAspect[f.Spec]
	if !ok {
		aspect = 1.0
	}

	w := int(math.Round(float64(crop.Dx()*scale) * aspect))
	h := crop.Dy() * scale

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)

	return dst
}

// Encode the frame to the writer in the named format ("bmp" or "png").
func Encode(w io.Writer, f *vic.Frame, format string, opts Options) error {
	img := Image(f, opts)

	var err error
	switch strings.ToLower(format) {
	case "bmp":
		err = bmp.Encode(w, img)
	case "png":
		err = png.Encode(w, img)
	default:
		return curated.Errorf("screenshot: unsupported format (%s)", format)
	}
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}

// Save the frame to the file. The format is taken from the file extension.
func Save(f *vic.Frame, filename string, opts Options) (rerr error) {
	if f == nil {
		return curated.Errorf("screenshot: no frame")
	}

	format := strings.TrimPrefix(filepath.Ext(filename), ".")

	// check the format before creating the file
	switch strings.ToLower(format) {
	case "bmp", "png":
	default:
		return curated.Errorf("screenshot: unsupported format (%s)", format)
	}

	fl, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		if err := fl.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	return Encode(fl, f, format, opts)
}

// Grabber keeps a copy of the most recent frame. Frames are passed to it with
// NewFrame() and the caller retains ownership of the frame.
type Grabber struct {
	crit sync.Mutex
	last *vic.Frame
}

// NewFrame copies the frame.
func (g *Grabber) NewFrame(f *vic.Frame) {
	g.crit.Lock()
	defer g.crit.Unlock()

	if g.last == nil || len(g.last.Pix) != len(f.Pix) {
		g.last = &vic.Frame{Pix: make([]uint8, len(f.Pix))}
	}

	pix := g.last.Pix
	*g.last = vic.Frame{
		Spec:      f.Spec,
		Number:    f.Number,
		Width:     f.Width,
		Height:    f.Height,
		FirstLine: f.FirstLine,
		Pix:       pix,
	}
	copy(g.last.Pix, f.Pix)
}

// Save the most recent frame to the file.
func (g *Grabber) Save(filename string, opts Options) error {
	g.crit.Lock()
	defer g.crit.Unlock()
	if g.last == nil {
		return curated.Errorf("screenshot: no frame has been produced")
	}
	return Save(g.last, filename, opts)
}
