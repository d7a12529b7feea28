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
	"fmt"

	"github.com/technic0/Ready/faults"
)

// MaxHalfTracks is the number of head positions on a 1541 disk.
const MaxHalfTracks = 84

// Disk is the GCR content of a disk. Tracks are indexed by half-track. Whole
// track 1 is at index 0 and index 1 is the half-track between tracks 1 and 2.
// A nil entry is an unformatted half-track.
type Disk struct {
	name string

	Tracks         [MaxHalfTracks][]byte
	WriteProtected bool

	// half-tracks written to since the disk was decoded
	modified [MaxHalfTracks]bool
}

// Kind implements the Media interface.
func (d *Disk) Kind() Kind {
	return DiskMedia
}

// Name implements the Media interface.
func (d *Disk) Name() string {
	return d.name
}

// SetModified marks a half-track as having been written to.
func (d *Disk) SetModified(halfTrack int) {
	d.modified[halfTrack] = true
}

// Modified returns true if any half-track has been written to.
func (d *Disk) Modified() bool {
	for _, m := range d.modified {
		if m {
			return true
		}
	}
	return false
}

// SectorsPerTrack returns the number of sectors on a track. Tracks are
// numbered from 1.
func SectorsPerTrack(track int) int {
	switch {
	case track <= 17:
		return 21
	case track <= 24:
		return 19
	case track <= 30:
		return 18
	}
	return 17
}

// SpeedZone returns the density zone of a track. Zone 3 is the outermost and
// most dense zone.
func SpeedZone(track int) int {
	switch {
	case track <= 17:
		return 3
	case track <= 24:
		return 2
	case track <= 30:
		return 1
	}
	return 0
}

// the number of bytes on a track in each speed zone
var trackBytes = [4]int{6250, 6666, 7142, 7692}

// TrackBytes returns the number of GCR bytes on a track written at the
// density of the track's zone.
func TrackBytes(track int) int {
	return trackBytes[SpeedZone(track)]
}

// block identifiers in the header and data blocks of a sector
const (
	headerBlockID = 0x08
	dataBlockID   = 0x07
)

// ReadSector decodes a sector from the GCR track. The track and sector are
// numbered as they are by DOS. Tracks from 1 and sectors from 0.
func (d *Disk) ReadSector(track int, sector int) ([]byte, error) {
	if track < 1 || (track-1)*2 >= MaxHalfTracks {
		return nil, malformed(d.name, "no track %d", track)
	}

	data := d.Tracks[(track-1)*2]
	if len(data) == 0 {
		return nil, malformed(d.name, "track %d is not formatted", track)
	}

	r := bitReader{track: data}

	// a sector starting near the end of the track wraps around so the search
	// continues into a second revolution
	for r.read < r.bits()*2 {
		if !r.sync() {
			break
		}

		hdr, ok := r.decode(8)
		if !ok || hdr[0] != headerBlockID {
			continue
		}
		if int(hdr[2]) != sector || int(hdr[3]) != track {
			continue
		}
		if hdr[1] != hdr[2]^hdr[3]^hdr[4]^hdr[5] {
			return nil, checksum(d.name, "header", track, sector)
		}

		if !r.sync() {
			break
		}
		blk, ok := r.decode(260)
		if !ok || blk[0] != dataBlockID {
			return nil, malformed(d.name, "no data block for track %d sector %d", track, sector)
		}

		var chk uint8
		for _, b := range blk[1:257] {
			chk ^= b
		}
		if chk != blk[257] {
			return nil, checksum(d.name, "data", track, sector)
		}

		return blk[1:257], nil
	}

	return nil, malformed(d.name, "track %d sector %d not found", track, sector)
}

func checksum(name string, block string, track int, sector int) error {
	return faults.Errorf(faults.MediaError, faults.ChecksumMismatch,
		fmt.Sprintf("%s: %s block of track %d sector %d", name, block, track, sector))
}
