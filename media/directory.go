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
	"strings"
)

// FileType is the type of a file in the directory.
type FileType uint8

// List of valid FileType values.
const (
	DEL FileType = iota
	SEQ
	PRG
	USR
	REL
)

func (t FileType) String() string {
	switch t {
	case DEL:
		return "DEL"
	case SEQ:
		return "SEQ"
	case PRG:
		return "PRG"
	case USR:
		return "USR"
	case REL:
		return "REL"
	}
	return "???"
}

// Entry is a file in the directory of a disk.
type Entry struct {
	Name   string
	Type   FileType
	Blocks int
	Closed bool
	Locked bool
}

func (e Entry) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%-5d%-18s ", e.Blocks, fmt.Sprintf("%q", e.Name))
	if !e.Closed {
		s.WriteRune('*')
	} else {
		s.WriteRune(' ')
	}
	s.WriteString(e.Type.String())
	if e.Locked {
		s.WriteRune('<')
	}
	return s.String()
}

// Directory is the directory of a disk, as decoded from the BAM and the
// directory sectors on track 18.
type Directory struct {
	Name    string
	ID      string
	Free    int
	Entries []Entry
}

func (d Directory) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "0 %-18s %s\n", fmt.Sprintf("%q", d.Name), d.ID)
	for _, e := range d.Entries {
		fmt.Fprintln(&s, e)
	}
	fmt.Fprintf(&s, "%d BLOCKS FREE.", d.Free)
	return s.String()
}

const (
	dirTrack = 18

	// names are padded with shifted spaces
	namePadding = 0xa0

	// a bad directory chain must not loop forever
	maxDirSectors = 18
)

// Directory decodes the directory from the GCR content of the disk. A sector
// with a bad checksum is reported as a ChecksumMismatch.
func (d *Disk) Directory() (Directory, error) {
	var dir Directory

	bam, err := d.ReadSector(dirTrack, 0)
	if err != nil {
		return dir, err
	}
	dir.Name = petscii(bam[0x90:0xa0])
	dir.ID = petscii(bam[0xa2:0xa4]) + " " + petscii(bam[0xa5:0xa7])

	// free blocks are counted from the BAM entries of every track except the
	// directory track
	for t := 1; t <= 35; t++ {
		if t != dirTrack {
			dir.Free += int(bam[t*4])
		}
	}

	t, s := int(bam[0]), int(bam[1])
	for range maxDirSectors {
		if t == 0 {
			break
		}
		sec, err := d.ReadSector(t, s)
		if err != nil {
			return dir, err
		}

		for e := range 8 {
			entry := sec[e*32 : e*32+32]
			typ := entry[2]
			if typ == 0 {
				continue
			}
			dir.Entries = append(dir.Entries, Entry{
				Name:   petscii(entry[5:21]),
				Type:   FileType(typ & 0x07),
				Blocks: int(entry[30]) | int(entry[31])<<8,
				Closed: typ&0x80 != 0,
				Locked: typ&0x40 != 0,
			})
		}

		t, s = int(sec[0]), int(sec[1])
	}

	return dir, nil
}

// petscii converts a padded name to a string. only the printable ASCII
// subset of PETSCII is converted
func petscii(b []byte) string {
	var s strings.Builder
	for _, c := range b {
		if c == namePadding {
			break
		}
		switch {
		case c >= 0x20 && c < 0x5b:
			s.WriteByte(c)
		case c >= 0xc1 && c <= 0xda:
			s.WriteByte(c - 0x80)
		default:
			s.WriteByte('?')
		}
	}
	return s.String()
}
