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

package media

import (
	"encoding/binary"
)

const g64Signature = "GCR-1541"

const g64HeaderLen = 12

// DecodeG64 decodes a G64 image. The image contains the GCR tracks as they
// were read from the original disk.
//
// Speed zone information in the image is ignored. The density is selected by
// the drive software when the track is read.
func DecodeG64(name string, data []byte) (*Disk, error) {
	if len(data) < g64HeaderLen || string(data[:len(g64Signature)]) != g64Signature {
		return nil, malformed(name, "not a G64 image")
	}
	if data[8] != 0 {
		return nil, malformed(name, "unsupported G64 version %d", data[8])
	}

	halfTracks := int(data[9])
	if halfTracks > MaxHalfTracks {
		return nil, malformed(name, "too many tracks (%d)", halfTracks)
	}
	maxSize := int(binary.LittleEndian.Uint16(data[10:]))

	tables := g64HeaderLen + halfTracks*8
	if len(data) < tables {
		return nil, malformed(name, "G64 track table is truncated")
	}

	d := &Disk{name: name}

	for i := range halfTracks {
		offset := int(binary.LittleEndian.Uint32(data[g64HeaderLen+i*4:]))
		if offset == 0 {
			continue
		}
		if offset+2 > len(data) {
			return nil, malformed(name, "half-track %d is outside the image", i)
		}

		size := int(binary.LittleEndian.Uint16(data[offset:]))
		if size > maxSize || offset+2+size > len(data) {
			return nil, malformed(name, "half-track %d is truncated", i)
		}

		// copy so the image data can be released
		d.Tracks[i] = append([]byte(nil), data[offset+2:offset+2+size]...)
	}

	return d, nil
}
