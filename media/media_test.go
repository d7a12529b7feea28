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

package media_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/media"
	"github.com/technic0/Ready/test"
)

const sectors35 = 683

// offset of a sector in a 35 track D64 image
func offset(track int, sector int) int {
	var n int
	for t := 1; t < track; t++ {
		n += media.SectorsPerTrack(t)
	}
	return (n + sector) * 256
}

// makeD64 creates an image with a one entry directory. every other sector is
// filled with a pattern derived from its position
func makeD64(errorInfo bool) []byte {
	size := sectors35 * 256
	if errorInfo {
		size += sectors35
	}
	data := make([]byte, size)

	for t := 1; t <= 35; t++ {
		for s := range media.SectorsPerTrack(t) {
			o := offset(t, s)
			for i := range 256 {
				data[o+i] = uint8(t*3 + s*7 + i)
			}
		}
	}

	bam := data[offset(18, 0):]
	clear(bam[:256])
	bam[0] = 18
	bam[1] = 1
	bam[4] = 21
	for i := 0x90; i < 0xab; i++ {
		bam[i] = 0xa0
	}
	copy(bam[0x90:], "TEST DISK")
	copy(bam[0xa2:], "AB")
	copy(bam[0xa5:], "2A")

	dir := data[offset(18, 1):]
	clear(dir[:256])
	dir[1] = 0xff
	dir[2] = 0x82
	dir[3] = 17
	for i := 5; i < 21; i++ {
		dir[i] = 0xa0
	}
	copy(dir[5:], "HELLO")
	dir[30] = 1

	if errorInfo {
		for i := range sectors35 {
			data[sectors35*256+i] = 0x01
		}
	}

	return data
}

func TestD64(t *testing.T) {
	img := makeD64(false)
	m, err := media.FromBytes("test.d64", img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Kind(), media.DiskMedia)

	d := m.(*media.Disk)
	test.ExpectEquality(t, len(d.Tracks[0]), 7692)
	test.ExpectEquality(t, len(d.Tracks[1]), 0)
	test.ExpectEquality(t, len(d.Tracks[17*2]), 7142)
	test.ExpectEquality(t, len(d.Tracks[24*2]), 6666)
	test.ExpectEquality(t, len(d.Tracks[34*2]), 6250)
	test.ExpectEquality(t, len(d.Tracks[35*2]), 0)
	test.ExpectFailure(t, d.Modified())

	for _, ts := range [][2]int{{1, 0}, {1, 20}, {17, 10}, {24, 18}, {30, 3}, {35, 16}} {
		sec, err := d.ReadSector(ts[0], ts[1])
		test.DemandSuccess(t, err)
		o := offset(ts[0], ts[1])
		test.ExpectEquality(t, string(sec), string(img[o:o+256]))
	}

	_, err = d.ReadSector(1, 21)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, faults.Category(err), faults.Media)
	_, err = d.ReadSector(36, 0)
	test.ExpectFailure(t, err)
}

func TestDirectory(t *testing.T) {
	m, err := media.FromBytes("test.d64", makeD64(false))
	test.DemandSuccess(t, err)

	dir, err := m.(*media.Disk).Directory()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dir.Name, "TEST DISK")
	test.ExpectEquality(t, dir.ID, "AB 2A")
	test.ExpectEquality(t, dir.Free, 21)
	test.DemandEquality(t, len(dir.Entries), 1)
	test.ExpectEquality(t, dir.Entries[0], media.Entry{
		Name:   "HELLO",
		Type:   media.PRG,
		Blocks: 1,
		Closed: true,
	})
	test.ExpectEquality(t, dir.String(), "0 \"TEST DISK\"        AB 2A\n1    \"HELLO\"             PRG\n21 BLOCKS FREE.")
}

func TestD64ErrorInfo(t *testing.T) {
	img := makeD64(true)
	img[sectors35*256+3] = 0x05
	img[sectors35*256+4] = 0x09
	img[sectors35*256+5] = 0x02
	img[sectors35*256+6] = 0x03

	m, err := media.FromBytes("errors.d64", img)
	test.DemandSuccess(t, err)
	d := m.(*media.Disk)

	_, err = d.ReadSector(1, 2)
	test.ExpectSuccess(t, err)

	_, err = d.ReadSector(1, 3)
	test.ExpectSuccess(t, curated.Has(err, faults.ChecksumMismatch))
	test.ExpectEquality(t, faults.Category(err), faults.Media)

	_, err = d.ReadSector(1, 4)
	test.ExpectSuccess(t, curated.Has(err, faults.ChecksumMismatch))

	_, err = d.ReadSector(1, 5)
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))

	_, err = d.ReadSector(1, 6)
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))

	_, err = d.ReadSector(1, 7)
	test.ExpectSuccess(t, err)
}

func TestMalformed(t *testing.T) {
	img := makeD64(false)

	// a truncated image is not recognised
	_, err := media.FromBytes("short.d64", img[:len(img)-100])
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))
	test.ExpectFailure(t, faults.IsFatal(err))

	_, err = media.FromBytes("short.prg", []byte{0x01, 0x08})
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))

	_, err = media.FromBytes("big.prg", append([]byte{0x00, 0xff}, make([]byte, 0x200)...))
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))

	_, err = media.Load(filepath.Join(t.TempDir(), "missing.d64"))
	test.ExpectFailure(t, err)
}

func TestG64(t *testing.T) {
	m, err := media.FromBytes("test.d64", makeD64(false))
	test.DemandSuccess(t, err)
	track := m.(*media.Disk).Tracks[0]

	const halfTracks = 84
	hdr := make([]byte, 12+halfTracks*8)
	copy(hdr, "GCR-1541")
	hdr[9] = halfTracks
	binary.LittleEndian.PutUint16(hdr[10:], 7928)
	binary.LittleEndian.PutUint32(hdr[12:], uint32(len(hdr)))
	binary.LittleEndian.PutUint32(hdr[12+halfTracks*4:], 3)

	img := binary.LittleEndian.AppendUint16(hdr, uint16(len(track)))
	img = append(img, track...)

	m, err = media.FromBytes("test.g64", img)
	test.DemandSuccess(t, err)
	d := m.(*media.Disk)
	test.ExpectEquality(t, string(d.Tracks[0]), string(track))
	test.ExpectEquality(t, len(d.Tracks[2]), 0)

	sec, err := d.ReadSector(1, 5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sec[0], uint8(3+5*7))

	_, err = media.FromBytes("short.g64", img[:len(img)-10])
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))

	img[8] = 1
	_, err = media.FromBytes("version.g64", img)
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))
}

func tap(version uint8, data ...byte) []byte {
	b := make([]byte, 20)
	copy(b, "C64-TAPE-RAW")
	b[12] = version
	binary.LittleEndian.PutUint32(b[16:], uint32(len(data)))
	return append(b, data...)
}

func TestTAP(t *testing.T) {
	m, err := media.FromBytes("v1.tap", tap(1, 0x30, 0x00, 0x10, 0x27, 0x00, 0x2f))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Kind(), media.TapeMedia)
	tp := m.(*media.Tape)
	test.DemandEquality(t, len(tp.Pulses), 3)
	test.ExpectEquality(t, tp.Pulses[0], uint32(384))
	test.ExpectEquality(t, tp.Pulses[1], uint32(10000))
	test.ExpectEquality(t, tp.Pulses[2], uint32(376))
	test.ExpectEquality(t, tp.Cycles(), uint64(10760))

	m, err = media.FromBytes("v0.tap", tap(0, 0x00, 0x01))
	test.DemandSuccess(t, err)
	tp = m.(*media.Tape)
	test.DemandEquality(t, len(tp.Pulses), 2)
	test.ExpectEquality(t, tp.Pulses[0], uint32(2048))
	test.ExpectEquality(t, tp.Pulses[1], uint32(8))

	// half waves are paired
	m, err = media.FromBytes("v2.tap", tap(2, 0x10, 0x10, 0x20, 0x30, 0x05))
	test.DemandSuccess(t, err)
	tp = m.(*media.Tape)
	test.DemandEquality(t, len(tp.Pulses), 2)
	test.ExpectEquality(t, tp.Pulses[0], uint32(256))
	test.ExpectEquality(t, tp.Pulses[1], uint32(640))

	_, err = media.FromBytes("v3.tap", tap(3, 0x10))
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))

	_, err = media.FromBytes("long.tap", tap(1, 0x10, 0x00, 0x01))
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))

	b := tap(1, 0x10, 0x20)
	binary.LittleEndian.PutUint32(b[16:], 10)
	_, err = media.FromBytes("truncated.tap", b)
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))
}

func TestWAVRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tape.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	// 50 periods of a square wave with a period of 40 samples
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		SourceBitDepth: 16,
	}
	for range 50 {
		for range 20 {
			buf.Data = append(buf.Data, 16000)
		}
		for range 20 {
			buf.Data = append(buf.Data, -16000)
		}
	}

	enc := wav.NewEncoder(f, 44100, 16, 1, 1)
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	m, err := media.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Name(), "tape.wav")
	tp := m.(*media.Tape)
	test.DemandEquality(t, len(tp.Pulses), 49)
	for _, p := range tp.Pulses {
		test.ExpectEquality(t, p, uint32(40*985248/44100))
	}
}

func TestPRG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hello.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x01, 0x08, 0xaa, 0xbb, 0xcc}, 0o644))

	m, err := media.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Kind(), media.ProgramMedia)
	p := m.(*media.Program)
	test.ExpectEquality(t, p.Address, uint16(0x0801))
	test.ExpectEquality(t, len(p.Data), 3)
	test.ExpectEquality(t, p.End(), uint16(0x0804))

	// the largest program that can be loaded at the top of memory ends on
	// $fffe
	m, err = media.FromBytes("top.prg", append([]byte{0x00, 0xff}, make([]byte, 0xff)...))
	test.DemandSuccess(t, err)
	p = m.(*media.Program)
	test.ExpectEquality(t, p.End(), uint16(0xffff))

	// one more byte would put the end address past the top of memory
	_, err = media.FromBytes("top.prg", append([]byte{0x00, 0xff}, make([]byte, 0x100)...))
	test.ExpectSuccess(t, curated.Has(err, faults.MediaMalformed))
}
