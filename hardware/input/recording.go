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

package input

import (
	"github.com/technic0/Ready/curated"
)

// Playback implementations feed events previously recorded back into the
// machine. GetPlayback() is called repeatedly with the current cycle until it
// returns an event of Kind NoEvent. An event due at an earlier cycle is
// either returned or reported as an error.
type Playback interface {
	GetPlayback(cycle uint64) (Event, error)
}

// Recorder implementations receive every handled event.
type Recorder interface {
	RecordEvent(TimedEvent) error
}

// AttachRecorder attaches a Recorder implementation. The recorder can be nil
// in order to remove the recorder.
func (inp *Input) AttachRecorder(r Recorder) error {
	if r != nil && inp.playback != nil {
		return curated.Errorf("input: attach recorder: machine already has a playback attached")
	}
	inp.recorder = r
	return nil
}

// AttachPlayback attaches a Playback implementation. The playback can be nil
// in order to remove the playback.
func (inp *Input) AttachPlayback(pb Playback) error {
	if pb != nil && inp.recorder != nil {
		return curated.Errorf("input: attach playback: machine already has a recorder attached")
	}
	inp.playback = pb
	return nil
}

// handlePlayback applies every event that is due
func (inp *Input) handlePlayback() error {
	if inp.playback == nil {
		return nil
	}

	for {
		ev, err := inp.playback.GetPlayback(inp.clock.Cycles())
		if err != nil {
			return curated.Errorf("input: %v", err)
		}
		if ev.Kind == NoEvent {
			return nil
		}
		if err := inp.handler.HandleEvent(ev); err != nil {
			return err
		}
	}
}
