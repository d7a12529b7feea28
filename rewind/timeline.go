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

package rewind

import (
	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware/peripherals/joystick"
)

func (r *Rewind) addTimelineEntry(frame uint64) {
	tl := &r.timeline

	// the frame has already been added
	if n := len(tl.FrameNum); n > 0 && tl.FrameNum[n-1] >= frame {
		return
	}

	tl.FrameNum = append(tl.FrameNum, frame)
	tl.KeyboardInput = append(tl.KeyboardInput, r.m.Keyboard.Active())
	tl.Joystick1Input = append(tl.Joystick1Input, joystickActive(r.m.Joysticks[0]))
	tl.Joystick2Input = append(tl.Joystick2Input, joystickActive(r.m.Joysticks[1]))

	if len(tl.FrameNum) > timelineLength {
		tl.FrameNum = tl.FrameNum[1:]
		tl.KeyboardInput = tl.KeyboardInput[1:]
		tl.Joystick1Input = tl.Joystick1Input[1:]
		tl.Joystick2Input = tl.Joystick2Input[1:]
	}
}

func joystickActive(j *joystick.Joystick) bool {
	return j.Direction() != joystick.Centre || j.Fire()
}

// Timeline provides a summary of the current state of the rewind system.
//
// Useful for a host to present the range of frame numbers that are available
// in the rewind history.
type Timeline struct {
	FrameNum       []uint64
	KeyboardInput  []bool
	Joystick1Input []bool
	Joystick2Input []bool

	// These two "available" fields state the earliest and latest frames that
	// are available in the rewind history.
	//
	// The earliest information in the Timeline array fields may be different.
	AvailableStart uint64
	AvailableEnd   uint64
}

const timelineLength = 1000

func newTimeline() Timeline {
	return Timeline{
		FrameNum:       make([]uint64, 0),
		KeyboardInput:  make([]bool, 0),
		Joystick1Input: make([]bool, 0),
		Joystick2Input: make([]bool, 0),
	}
}

func (tl *Timeline) checkIntegrity() error {
	if len(tl.FrameNum) != len(tl.KeyboardInput) {
		return curated.Errorf("timeline arrays are different lengths")
	}

	if len(tl.FrameNum) > 1 {
		prev := tl.FrameNum[0]
		for _, fn := range tl.FrameNum[1:] {
			if fn <= prev {
				return curated.Errorf("frame numbers in timeline are not increasing")
			}
			prev = fn
		}
	}

	return nil
}

// splice removes every frame after the frame number
func (tl *Timeline) splice(frame uint64) {
	for i := range tl.FrameNum {
		if tl.FrameNum[i] > frame {
			tl.FrameNum = tl.FrameNum[:i]
			tl.KeyboardInput = tl.KeyboardInput[:i]
			tl.Joystick1Input = tl.Joystick1Input[:i]
			tl.Joystick2Input = tl.Joystick2Input[:i]
			break // for loop
		}
	}
}

// GetTimeline returns a copy of the timeline.
func (r *Rewind) GetTimeline() (Timeline, error) {
	if err := r.timeline.checkIntegrity(); err != nil {
		return Timeline{}, curated.Errorf("rewind: %v", err)
	}

	tl := Timeline{
		FrameNum:       append([]uint64(nil), r.timeline.FrameNum...),
		KeyboardInput:  append([]bool(nil), r.timeline.KeyboardInput...),
		Joystick1Input: append([]bool(nil), r.timeline.Joystick1Input...),
		Joystick2Input: append([]bool(nil), r.timeline.Joystick2Input...),
	}

	f := r.GetFrames()
	tl.AvailableStart = f.Start
	tl.AvailableEnd = f.End

	return tl, nil
}
