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

package recorder

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/input"
	"github.com/technic0/Ready/snapshot"
)

type playbackEntry struct {
	input.TimedEvent

	// the line in the transcript the event appears
	line int
}

// Playback is used to play back input from a previously recorded transcript.
// It implements the input.Playback interface.
type Playback struct {
	transcript string

	// details from the header of the transcript
	TVSpec      string
	Fingerprint uint32

	sequence []playbackEntry
	seqCt    int

	m *hardware.Machine
}

func (plb *Playback) String() string {
	if plb.m == nil {
		return fmt.Sprintf("%d events", len(plb.sequence))
	}
	end := plb.EndCycle()
	if end == 0 {
		return "0/0 (100.0%)"
	}
	curr := plb.m.Cycles()
	return fmt.Sprintf("%d/%d (%.1f%%)", curr, end, 100*(float64(curr)/float64(end)))
}

// EndCycle returns the cycle of the last event in the transcript.
func (plb *Playback) EndCycle() uint64 {
	if len(plb.sequence) == 0 {
		return 0
	}
	return plb.sequence[len(plb.sequence)-1].Cycle
}

// Ended returns true if every event in the transcript has been played.
func (plb *Playback) Ended() bool {
	return plb.seqCt >= len(plb.sequence)
}

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(transcript string) (*Playback, error) {
	plb := &Playback{
		transcript: transcript,
	}

	buffer, err := os.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(string(buffer), "\n")

	// read header and perform validation checks
	if err := plb.readHeader(lines); err != nil {
		return nil, err
	}

	var last uint64

	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		entry := playbackEntry{line: i + 1}

		entry.Cycle, err = strconv.ParseUint(toks[fieldCycle], 10, 64)
		if err != nil {
			return nil, curated.Errorf("playback: %v line %d, col %d", err, i+1, 1)
		}
		if entry.Cycle < last {
			return nil, curated.Errorf("playback: events out of order at line %d", i+1)
		}
		last = entry.Cycle

		err = entry.Event.UnmarshalText([]byte(toks[fieldEvent]))
		if err != nil {
			return nil, curated.Errorf("playback: %v line %d, col %d", err, i+1, len(toks[fieldCycle])+len(fieldSep)+1)
		}

		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// AttachToMachine checks that the machine is compatible with the transcript
// and attaches the playback to the machine's input.
func (plb *Playback) AttachToMachine(m *hardware.Machine) error {
	if m == nil {
		return curated.Errorf("playback: no machine to play back into")
	}

	// keep it simple and disallow any difference in configuration
	if m.Spec().ID != plb.TVSpec {
		return curated.Errorf("playback: recording was made with the %s TV spec. trying to playback with a TV spec of %s.", plb.TVSpec, m.Spec().ID)
	}
	if f := snapshot.Fingerprint(m); f != plb.Fingerprint {
		return curated.Errorf("playback: recording was made with a different machine configuration (%08x, machine is %08x)", plb.Fingerprint, f)
	}

	if err := m.Input.AttachPlayback(plb); err != nil {
		return curated.Errorf("playback: %v", err)
	}

	plb.m = m

	return nil
}

// PlaybackDiverged is returned by GetPlayback() when the machine has passed
// the cycle of the next event without stopping on it.
const PlaybackDiverged = "playback: emulation diverged from recording at line %d (cycle %d)"

// GetPlayback implements the input.Playback interface.
func (plb *Playback) GetPlayback(cycle uint64) (input.Event, error) {
	if plb.Ended() {
		return input.Event{}, nil
	}

	entry := plb.sequence[plb.seqCt]
	switch {
	case entry.Cycle == cycle:
		plb.seqCt++
		return entry.Event, nil
	case entry.Cycle < cycle:
		return input.Event{}, curated.Errorf(PlaybackDiverged, entry.line, entry.Cycle)
	}

	// next event is in the future
	return input.Event{}, nil
}
