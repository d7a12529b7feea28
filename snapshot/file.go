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
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/faults"
)

const magic = "READYSNP"

// length of the header including the checksum
const headerLen = len(magic) + 2 + 4 + 2 + 4

// the largest section that will be read from a file
const maxSectionLen = 1 << 24

// WriteTo implements the io.WriterTo interface.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	var body bytes.Buffer
	for _, sec := range s.Sections {
		body.Write(sec.Tag[:])
		_ = binary.Write(&body, binary.LittleEndian, uint32(len(sec.Data)))
		body.Write(sec.Data)
	}

	hdr := make([]byte, 0, headerLen)
	hdr = append(hdr, magic...)
	hdr = binary.LittleEndian.AppendUint16(hdr, s.Version)
	hdr = binary.LittleEndian.AppendUint32(hdr, s.Fingerprint)
	hdr = binary.LittleEndian.AppendUint16(hdr, uint16(len(s.Sections)))
	hdr = binary.LittleEndian.AppendUint32(hdr, crc32.ChecksumIEEE(body.Bytes()))

	n, err := w.Write(hdr)
	if err != nil {
		return int64(n), curated.Errorf("snapshot: %v", err)
	}
	m, err := body.WriteTo(w)
	if err != nil {
		return int64(n) + m, curated.Errorf("snapshot: %v", err)
	}

	return int64(n) + m, nil
}

func corrupt(detail string) error {
	return faults.Errorf(faults.SnapshotError, faults.CorruptSnapshot, detail)
}

// ReadFrom implements the io.ReaderFrom interface. The contents of the
// snapshot are replaced.
func (s *Snapshot) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	n := int64(len(data))
	if err != nil {
		return n, curated.Errorf("snapshot: %v", err)
	}

	if len(data) < headerLen || string(data[:len(magic)]) != magic {
		return n, corrupt("not a snapshot")
	}

	hdr := data[len(magic):headerLen]
	version := binary.LittleEndian.Uint16(hdr[0:])
	fingerprint := binary.LittleEndian.Uint32(hdr[2:])
	count := int(binary.LittleEndian.Uint16(hdr[6:]))
	checksum := binary.LittleEndian.Uint32(hdr[8:])

	if version != Version {
		return n, faults.Errorf(faults.SnapshotError, faults.VersionMismatch, fmt.Sprintf("snapshot is version %d", version))
	}

	body := data[headerLen:]
	if crc32.ChecksumIEEE(body) != checksum {
		return n, corrupt("checksum")
	}

	sections := make([]Section, 0, count)
	for range count {
		if len(body) < 8 {
			return n, corrupt("truncated section")
		}
		var sec Section
		copy(sec.Tag[:], body)
		l := binary.LittleEndian.Uint32(body[4:])
		body = body[8:]
		if l > maxSectionLen || int(l) > len(body) {
			return n, corrupt("section length")
		}
		sec.Data = body[:l]
		body = body[l:]
		sections = append(sections, sec)
	}

	if len(body) != 0 {
		return n, corrupt("trailing data")
	}

	*s = Snapshot{
		Version:     version,
		Fingerprint: fingerprint,
		Sections:    sections,
	}

	return n, nil
}

// Save writes the snapshot to the named file.
func (s *Snapshot) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	if _, err := s.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	return nil
}

// Load reads a snapshot from the named file.
func Load(filename string) (*Snapshot, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("snapshot: %v", err)
	}
	defer f.Close()

	s := &Snapshot{}
	if _, err := s.ReadFrom(f); err != nil {
		return nil, err
	}
	return s, nil
}
