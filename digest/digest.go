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

// Package digest creates SHA-1 hashes of the video and audio output of the
// emulation. Each hash is chained to the previous hash so the final value
// summarises the entire output since the last reset.
//
// The digests are used to check that an emulation is deterministic: the same
// machine state with the same input must produce the same digests.
package digest

import (
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/sid"
	"github.com/technic0/Ready/hardware/vic"
)

// Digest implementations return a hash of the output they have seen.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Attach video and audio digests to the machine. Either digest can be nil.
// Any callbacks previously set on the machine are replaced.
func Attach(m *hardware.Machine, video *Video, audio *Audio) {
	var cb hardware.Callbacks

	if video != nil {
		cb.OnFrameReady = func(f *vic.Frame) {
			video.NewFrame(f)
			f.Release()
		}
	} else {
		cb.OnFrameReady = func(f *vic.Frame) {
			f.Release()
		}
	}

	if audio != nil {
		cb.OnAudioBatchReady = func(b sid.Batch) {
			audio.NewBatch(b)
		}
	}

	m.SetCallbacks(cb)
}

// Run the machine for the number of frames with new digests attached.
// Returns the video and audio hashes at the end of the run.
func Run(m *hardware.Machine, frames int) (string, string, error) {
	video := NewVideo()
	audio := NewAudio()
	Attach(m, video, audio)
	defer m.SetCallbacks(hardware.Callbacks{})

	for range frames {
		if err := m.RunFrame(); err != nil {
			return "", "", err
		}
	}

	audio.Flush()

	return video.Hash(), audio.Hash(), nil
}
