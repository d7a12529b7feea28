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
	"io"
	"os"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/input"
)

// Recorder transcribes input events to a file.
type Recorder struct {
	m      *hardware.Machine
	output io.WriteCloser
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The recorder is attached to the machine's input immediately.
func NewRecorder(transcript string, m *hardware.Machine) (*Recorder, error) {
	if m == nil {
		return nil, curated.Errorf("recorder: no machine to record")
	}

	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec := &Recorder{
		m:      m,
		output: f,
	}

	if err := rec.writeHeader(); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := m.Input.AttachRecorder(rec); err != nil {
		_ = f.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	return rec, nil
}

// End the recording. The recorder is detached from the machine and the
// transcript file is closed.
func (rec *Recorder) End() error {
	_ = rec.m.Input.AttachRecorder(nil)
	if err := rec.output.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

// RecordEvent implements the input.Recorder interface.
func (rec *Recorder) RecordEvent(ev input.TimedEvent) error {
	text, err := ev.MarshalText()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	line := fmt.Sprintf("%d%s%s\n", ev.Cycle, fieldSep, text)
	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}
