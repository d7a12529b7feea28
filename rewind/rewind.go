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

// Package rewind keeps a history of machine states so that the emulation can
// be returned to an earlier point.
//
// A snapshot is taken every N frames, where N is the rewind.frequency
// preference. The history is a circular array of rewind.depth entries. When
// the array is full the earliest entry is forgotten.
//
// Returning to an earlier entry and then allowing the emulation to continue
// forgets every entry after that point.
package rewind

import (
	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/logger"
	"github.com/technic0/Ready/snapshot"
)

// entry is a single point in the rewind history
type entry struct {
	frame uint64
	snap  *snapshot.Snapshot
}

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	m *hardware.Machine

	// circular array of snapshotted entries. the array is one longer than the
	// rewind depth. end is always an unused position
	entries []*entry
	start   int
	end     int

	// the position of the current rewind entry
	curr int

	frequency int

	// the comparison point and whether it can be moved by UpdateComparison()
	comparison       *entry
	comparisonLocked bool

	timeline Timeline
}

// NewRewind is the preferred method of initialisation for the Rewind type. The
// history is reset and contains the current state of the machine.
func NewRewind(m *hardware.Machine) (*Rewind, error) {
	if m == nil {
		return nil, curated.Errorf("rewind: no machine")
	}

	r := &Rewind{m: m}
	if err := r.Reset(); err != nil {
		return nil, err
	}

	return r, nil
}

// reads the preferences and allocates the circular array
func (r *Rewind) allocate() {
	prefs := r.m.Env().Prefs

	r.frequency = max(prefs.RewindFrequency.Get().(int), 1)
	depth := max(prefs.RewindDepth.Get().(int), 1)

	r.entries = make([]*entry, depth+1)
}

// Reset removes all entries and takes a snapshot of the current state. The
// preferences are read again. This should be called whenever the machine is
// reset or media is inserted.
func (r *Rewind) Reset() error {
	r.allocate()
	r.timeline = newTimeline()

	e, err := r.capture()
	if err != nil {
		return err
	}

	r.start = 0
	r.curr = len(r.entries) - 1
	r.append(e)

	// first comparison is to the snapshot of the reset machine
	r.comparison = r.entries[r.curr]

	return nil
}

func (r *Rewind) capture() (*entry, error) {
	s, err := snapshot.Capture(r.m)
	if err != nil {
		return nil, curated.Errorf("rewind: %v", err)
	}
	return &entry{frame: r.m.VIC.FrameNum(), snap: s}, nil
}

// Check should be called at the end of every frame. A snapshot is taken if
// the frequency preference allows.
func (r *Rewind) Check() error {
	fn := r.m.VIC.FrameNum()

	r.addTimelineEntry(fn)

	if fn%uint64(r.frequency) != 0 {
		return nil
	}

	// the VIC may not have completed a frame since the last check
	if r.entries[r.curr].frame == fn {
		return nil
	}

	e, err := r.capture()
	if err != nil {
		return err
	}
	r.append(e)

	return nil
}

func (r *Rewind) wrap(idx int) int {
	n := len(r.entries)
	return ((idx % n) + n) % n
}

func (r *Rewind) append(e *entry) {
	// append at current position
	r.curr = r.wrap(r.curr + 1)
	r.entries[r.curr] = e

	// next update point is recent update point plus one
	r.end = r.wrap(r.curr + 1)

	// push start index along
	if r.end == r.start {
		r.start = r.wrap(r.start + 1)
	}
}

// Frames of the current state of the rewind system.
type Frames struct {
	Start   uint64
	End     uint64
	Current uint64

	// number of entries in the history
	Entries int
}

// GetFrames returns the frame numbers of the first and last entry in the
// history and the current frame number of the machine.
func (r *Rewind) GetFrames() Frames {
	return Frames{
		Start:   r.entries[r.start].frame,
		End:     r.entries[r.wrap(r.end-1)].frame,
		Current: r.m.VIC.FrameNum(),
		Entries: r.wrap(r.end - r.start),
	}
}

// plumb restores the entry at idx into the machine and makes it the current
// entry. The machine is unchanged if the restore fails
func (r *Rewind) plumb(idx int) error {
	e := r.entries[idx]
	if err := snapshot.Restore(r.m, e.snap); err != nil {
		return curated.Errorf("rewind: %v", err)
	}

	r.curr = idx
	r.end = r.wrap(idx + 1)
	r.timeline.splice(e.frame)

	logger.Logf(r.m.Env(), "rewind", "frame %d", e.frame)

	return nil
}

// GotoLast sets the position to the last in the history.
func (r *Rewind) GotoLast() error {
	return r.plumb(r.wrap(r.end - 1))
}

// Rewind moves back n entries from the current position, stopping at the
// earliest entry. Returns the frame number of the restored entry.
func (r *Rewind) Rewind(n int) (uint64, error) {
	if n < 0 {
		return 0, curated.Errorf("rewind: cannot rewind by a negative amount (%d)", n)
	}

	n = min(n, r.wrap(r.curr-r.start))
	idx := r.wrap(r.curr - n)
	if err := r.plumb(idx); err != nil {
		return 0, err
	}

	return r.entries[idx].frame, nil
}

// GotoFrame restores the latest entry at or before the frame and then runs
// the emulation until the frame is reached. If the frame is earlier than
// the history then the earliest entry is restored.
//
// Returns the frame number of the machine after the operation.
func (r *Rewind) GotoFrame(frame uint64) (uint64, error) {
	// binary search over the logical positions of the circular array
	s := 0
	e := r.wrap(r.end-r.start) - 1
	found := 0
	for s <= e {
		mid := (s + e) / 2
		if r.entries[r.wrap(r.start+mid)].frame <= frame {
			found = mid
			s = mid + 1
		} else {
			e = mid - 1
		}
	}

	if err := r.plumb(r.wrap(r.start + found)); err != nil {
		return 0, err
	}

	for r.m.VIC.FrameNum() < frame {
		if err := r.m.RunFrame(); err != nil {
			return r.m.VIC.FrameNum(), curated.Errorf("rewind: %v", err)
		}
	}

	return r.m.VIC.FrameNum(), nil
}
