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

package snapshot

import (
	"fmt"
	"hash/crc32"

	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/logger"
)

// Version of the snapshot format. Snapshots of a different version cannot be
// restored.
const Version = uint16(1)

// Tag identifies a section of a snapshot.
type Tag [4]byte

func (t Tag) String() string {
	return string(t[:])
}

// Device is implemented by every part of the machine that contributes to a
// snapshot.
type Device interface {
	SnapshotTag() Tag

	// the encoded state of the device. an error is returned if the state
	// cannot be captured at the current moment
	MarshalState() ([]byte, error)

	// decode and check the data and return the function that applies it to
	// the device. the device must be unchanged by PrepareState()
	PrepareState(data []byte) (func() error, error)
}

// Section is one part of a Snapshot.
type Section struct {
	Tag  Tag
	Data []byte
}

// Snapshot is the captured state of a machine. A Snapshot has no reference to
// the machine it was captured from.
type Snapshot struct {
	Version     uint16
	Fingerprint uint32
	Sections    []Section

	// the value of the cycle counter when the snapshot was captured. not
	// written to file
	Cycles uint64
}

// Fingerprint returns the configuration fingerprint of the machine.
func Fingerprint(m *hardware.Machine) uint32 {
	h := crc32.NewIEEE()
	_, _ = h.Write([]byte(m.Spec().ID))

	roms := m.Mem.ROMs()
	_, _ = h.Write(roms.BASIC[:])
	_, _ = h.Write(roms.KERNAL[:])
	_, _ = h.Write(roms.CHARGEN[:])

	if m.Drive != nil {
		_, _ = h.Write([]byte{1})
		_, _ = h.Write(roms.Drive)
	} else {
		_, _ = h.Write([]byte{0})
	}

	return h.Sum32()
}

// Capture the state of the machine. Should be called at an instruction
// boundary. Returns an IncompleteCapture error if any device cannot be
// captured.
func Capture(m *hardware.Machine) (*Snapshot, error) {
	s := &Snapshot{
		Version:     Version,
		Fingerprint: Fingerprint(m),
		Cycles:      m.Cycles(),
	}

	for _, d := range devices(m) {
		data, err := d.MarshalState()
		if err != nil {
			return nil, err
		}
		s.Sections = append(s.Sections, Section{Tag: d.SnapshotTag(), Data: data})
	}

	return s, nil
}

// Restore the snapshot to the machine. The machine is unchanged if an error
// is returned.
func Restore(m *hardware.Machine, s *Snapshot) error {
	if s.Version != Version {
		return faults.Errorf(faults.SnapshotError, faults.VersionMismatch, fmt.Sprintf("snapshot is version %d", s.Version))
	}
	if f := Fingerprint(m); f != s.Fingerprint {
		return faults.Errorf(faults.SnapshotError, faults.VersionMismatch, "snapshot is for a different machine configuration")
	}

	sections := make(map[Tag][]byte, len(s.Sections))
	for _, sec := range s.Sections {
		sections[sec.Tag] = sec.Data
	}

	// phase one
	devs := devices(m)
	apply := make([]func() error, 0, len(devs))
	for _, d := range devs {
		data, ok := sections[d.SnapshotTag()]
		if !ok {
			return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, "missing %s section", d.SnapshotTag())
		}
		f, err := d.PrepareState(data)
		if err != nil {
			return err
		}
		apply = append(apply, f)
	}

	// phase two
	for _, f := range apply {
		if err := f(); err != nil {
			return faults.Errorf(faults.InternalInvariantViolation, "snapshot: %v", err)
		}
	}

	logger.Logf(m.Env(), "snapshot", "restored to cycle %d", m.Cycles())

	return nil
}
