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

package rewind_test

import (
	"testing"

	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/hardwaretest"
	"github.com/technic0/Ready/rewind"
	"github.com/technic0/Ready/test"
)

func newRewind(t *testing.T, frequency int, depth int) (*hardware.Machine, *rewind.Rewind) {
	t.Helper()

	m := hardwaretest.NewMachine(t, false)
	test.DemandSuccess(t, m.Env().Prefs.RewindFrequency.Set(frequency))
	test.DemandSuccess(t, m.Env().Prefs.RewindDepth.Set(depth))

	r, err := rewind.NewRewind(m)
	test.DemandSuccess(t, err)
	return m, r
}

// runs the machine for the number of frames and returns the cycle count at
// the end of each frame, indexed by frame number
func run(t *testing.T, m *hardware.Machine, r *rewind.Rewind, frames int, cycles map[uint64]uint64) {
	t.Helper()
	for range frames {
		test.DemandSuccess(t, m.RunFrame())
		test.DemandSuccess(t, r.Check())
		cycles[m.VIC.FrameNum()] = m.Cycles()
	}
}

func TestRewind(t *testing.T) {
	m, r := newRewind(t, 1, 4)
	cycles := make(map[uint64]uint64)
	cycles[0] = m.Cycles()

	test.ExpectEquality(t, r.GetFrames().Entries, 1)

	run(t, m, r, 6, cycles)

	f := r.GetFrames()
	test.ExpectEquality(t, f.Entries, 4)
	test.ExpectEquality(t, f.End, m.VIC.FrameNum())
	test.ExpectEquality(t, f.End-f.Start, uint64(3))
	last := f.End

	fn, err := r.Rewind(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, last-2)
	test.ExpectEquality(t, m.VIC.FrameNum(), fn)
	test.ExpectEquality(t, m.Cycles(), cycles[fn])

	// entries after the current position are forgotten
	test.ExpectEquality(t, r.GetFrames().Entries, 2)

	// cannot move past the earliest entry
	fn, err = r.Rewind(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, f.Start)
	test.ExpectEquality(t, m.Cycles(), cycles[fn])

	_, err = r.Rewind(-1)
	test.ExpectFailure(t, err)

	// running forward from an earlier entry reaches the same state as before
	fn, err = r.GotoFrame(last)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, last)
	test.ExpectEquality(t, m.Cycles(), cycles[last])

	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, m.VIC.FrameNum(), f.Start)
}

func TestFrequency(t *testing.T) {
	m, r := newRewind(t, 3, 10)
	cycles := make(map[uint64]uint64)

	run(t, m, r, 7, cycles)

	// the reset entry plus one entry for every third frame
	f := r.GetFrames()
	test.ExpectEquality(t, f.Start, uint64(0))
	test.ExpectEquality(t, f.End%3, uint64(0))
	test.ExpectEquality(t, f.Entries, int(f.End/3)+1)

	// the requested frame is between two entries
	fn, err := r.GotoFrame(f.End - 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, f.End-1)
	test.ExpectEquality(t, m.Cycles(), cycles[fn])
}

func TestTimeline(t *testing.T) {
	m, r := newRewind(t, 1, 10)
	cycles := make(map[uint64]uint64)

	run(t, m, r, 3, cycles)
	m.Joysticks[1].SetFire(true)
	run(t, m, r, 2, cycles)

	tl, err := r.GetTimeline()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(tl.FrameNum), 5)
	test.ExpectFailure(t, tl.Joystick2Input[2])
	test.ExpectSuccess(t, tl.Joystick2Input[3])
	test.ExpectEquality(t, tl.AvailableEnd, tl.FrameNum[4])

	_, err = r.Rewind(2)
	test.DemandSuccess(t, err)
	tl, err = r.GetTimeline()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(tl.FrameNum), 3)
}

func TestComparison(t *testing.T) {
	m, r := newRewind(t, 1, 10)
	cycles := make(map[uint64]uint64)

	test.ExpectEquality(t, r.GetComparisonState().Frame, uint64(0))

	run(t, m, r, 2, cycles)
	r.UpdateComparison()
	cmp := r.GetComparisonState()
	test.ExpectEquality(t, cmp.Frame, m.VIC.FrameNum())
	test.ExpectEquality(t, cmp.Snapshot.Cycles, m.Cycles())

	r.LockComparison(true)
	run(t, m, r, 2, cycles)
	r.UpdateComparison()
	test.ExpectEquality(t, r.GetComparisonState().Frame, cmp.Frame)
	test.ExpectSuccess(t, r.GetComparisonState().Locked)
}
