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

// Package specification defines the frame geometry and timing of the
// supported television standards. Every timing decision in the emulation is
// derived from the values in the Spec type.
package specification

import (
	"fmt"
	"strings"

	"github.com/technic0/Ready/hardware/clocks"
)

// Spec is used to define the two television specifications.
type Spec struct {
	ID string

	// name of the VIC-II revision
	VICModel string

	// system clock in Hz
	ClockHz int

	// frame geometry. the number of cycles in a frame is the product of these
	// two values
	ScanlinesTotal    int
	CyclesPerScanline int

	// the visible part of the raster. lines are inclusive
	FirstVisibleLine int
	LastVisibleLine  int

	// the first cycle on a scanline that produces visible pixels and the number
	// of visible cycles. each cycle produces eight pixels
	FirstVisibleCycle int
	VisibleCycles     int

	// the raster line that generates the first line of the raster IRQ
	// compare window. the first line after vertical blank
	VBlankEnd int

	// the frequency of the power supply, used by the TOD clocks
	MainsHz int
}

// Spec values for PAL and NTSC.
var (
	SpecPAL = Spec{
		ID:                "PAL",
		VICModel:          "6569",
		ClockHz:           clocks.PAL,
		ScanlinesTotal:    312,
		CyclesPerScanline: 63,
		FirstVisibleLine:  16,
		LastVisibleLine:   287,
		FirstVisibleCycle: 12,
		VisibleCycles:     48,
		VBlankEnd:         16,
		MainsHz:           clocks.MainsPAL,
	}

	SpecNTSC = Spec{
		ID:                "NTSC",
		VICModel:          "6567R8",
		ClockHz:           clocks.NTSC,
		ScanlinesTotal:    263,
		CyclesPerScanline: 65,
		FirstVisibleLine:  27,
		LastVisibleLine:   261,
		FirstVisibleCycle: 12,
		VisibleCycles:     48,
		VBlankEnd:         27,
		MainsHz:           clocks.MainsNTSC,
	}
)

// SearchSpec looks for a specification by its ID. The search is case
// insensitive.
func SearchSpec(id string) (Spec, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "PAL":
		return SpecPAL, nil
	case "NTSC":
		return SpecNTSC, nil
	}
	return Spec{}, fmt.Errorf("specification: unknown tv spec (%s)", id)
}

func (s Spec) String() string {
	return fmt.Sprintf("%s (%s) %dx%d", s.ID, s.VICModel, s.ScanlinesTotal, s.CyclesPerScanline)
}

// CyclesPerFrame returns the number of system clock cycles in one frame.
func (s Spec) CyclesPerFrame() int {
	return s.ScanlinesTotal * s.CyclesPerScanline
}

// RefreshRate returns the number of frames per second.
func (s Spec) RefreshRate() float64 {
	return float64(s.ClockHz) / float64(s.CyclesPerFrame())
}

// VisibleWidth returns the width of the visible raster in pixels.
func (s Spec) VisibleWidth() int {
	return s.VisibleCycles * 8
}

// VisibleHeight returns the height of the visible raster in lines.
func (s Spec) VisibleHeight() int {
	return s.LastVisibleLine - s.FirstVisibleLine + 1
}
