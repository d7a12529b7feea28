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

// geometry of a D64 image
type d64Layout struct {
	tracks int
	errors bool
}

func d64Sectors(tracks int) int {
	var n int
	for t := 1; t <= tracks; t++ {
		n += SectorsPerTrack(t)
	}
	return n
}

// d64Geometry identifies a D64 image by its size
func d64Geometry(size int) (d64Layout, bool) {
	for _, tracks := range []int{35, 40, 42} {
		n := d64Sectors(tracks)
		switch size {
		case n * 256:
			return d64Layout{tracks: tracks}, true
		case n * 257:
			return d64Layout{tracks: tracks, errors: true}, true
		}
	}
	return d64Layout{}, false
}

// error codes in the error information of a D64 image. the codes are the
// DOS error numbers minus 18
const (
	d64NoError        = 0x01
	d64NoHeader       = 0x02
	d64NoSync         = 0x03
	d64NoData         = 0x04
	d64DataChecksum   = 0x05
	d64HeaderChecksum = 0x09
	d64IDMismatch     = 0x0b
)

// sector layout on a track
const (
	syncLen      = 5
	headerGapLen = 9
	gapByte      = 0x55
)

// DecodeD64 GCR encodes the sectors of a D64 image into tracks. The error
// information in the image, if present, is used to corrupt the encoding of
// the affected sectors in the same way as the original disk.
func DecodeD64(name string, data []byte) (*Disk, error) {
	layout, ok := d64Geometry(len(data))
	if !ok {
		return nil, malformed(name, "%d bytes is not the size of a D64 image", len(data))
	}

	n := d64Sectors(layout.tracks)
	var errs []byte
	if layout.errors {
		errs = data[n*256:]
	}

	// disk ID from the BAM at track 18 sector 0
	bam := d64Offset(18, 0) * 256
	id := [2]byte{data[bam+0xa2], data[bam+0xa3]}

	d := &Disk{name: name}

	idx := 0
	for t := 1; t <= layout.tracks; t++ {
		sectors := SectorsPerTrack(t)
		size := TrackBytes(t)

		track := make([]byte, 0, size)
		gap := (size - sectors*sectorBytes) / sectors

		for s := range sectors {
			code := uint8(d64NoError)
			if errs != nil {
				code = errs[idx]
			}
			track = appendSector(track, t, s, id, data[idx*256:idx*256+256], code)
			for range gap {
				track = append(track, gapByte)
			}
			idx++
		}
		for len(track) < size {
			track = append(track, gapByte)
		}

		d.Tracks[(t-1)*2] = track
	}

	return d, nil
}

// d64Offset returns the index of the sector in the image
func d64Offset(track int, sector int) int {
	return d64Sectors(track-1) + sector
}

// number of bytes taken by a sector on the track, excluding the gap after the
// data block
const sectorBytes = syncLen + 10 + headerGapLen + syncLen + 325

func appendSector(track []byte, t int, s int, id [2]byte, data []byte, code uint8) []byte {
	sync := func() {
		b := uint8(0xff)
		if code == d64NoSync {
			b = gapByte
		}
		for range syncLen {
			track = append(track, b)
		}
	}

	if code == d64IDMismatch {
		id[0] ^= 0xff
		id[1] ^= 0xff
	}

	hdr := []byte{headerBlockID, 0, uint8(s), uint8(t), id[1], id[0], 0x0f, 0x0f}
	hdr[1] = hdr[2] ^ hdr[3] ^ hdr[4] ^ hdr[5]
	switch code {
	case d64NoHeader:
		hdr[0] = 0x00
	case d64HeaderChecksum:
		hdr[1] ^= 0xff
	}

	sync()
	track = append(track, encodeGCR(hdr)...)
	for range headerGapLen {
		track = append(track, gapByte)
	}

	blk := make([]byte, 260)
	blk[0] = dataBlockID
	copy(blk[1:], data)
	for _, b := range data {
		blk[257] ^= b
	}
	switch code {
	case d64NoData:
		blk[0] = 0x00
	case d64DataChecksum:
		blk[257] ^= 0xff
	}

	sync()
	track = append(track, encodeGCR(blk)...)

	return track
}
