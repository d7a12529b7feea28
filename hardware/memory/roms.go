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

package memory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/faults"
)

// Sizes of the ROMs.
const (
	SizeBASIC   = 8192
	SizeKERNAL  = 8192
	SizeCHARGEN = 4096
	SizeDrive   = 16384
)

// the file names that are tried for each ROM when loading from a directory.
// the first name that exists is used
var (
	namesBASIC   = []string{"basic", "basic.bin", "basic-901226-01.bin"}
	namesKERNAL  = []string{"kernal", "kernal.bin", "kernal-901227-03.bin"}
	namesCHARGEN = []string{"chargen", "chargen.bin", "characters-901225-01.bin"}
	namesDrive   = []string{"dos1541", "dos1541.bin", "1541-II.251968-03.bin", "1541-c000.325302-01.bin"}
)

// ROMSet is the collection of ROM images required by the machine. The drive
// ROM is optional and is only required if a disk drive is attached.
type ROMSet struct {
	BASIC   [SizeBASIC]uint8
	KERNAL  [SizeKERNAL]uint8
	CHARGEN [SizeCHARGEN]uint8

	// nil if no drive ROM is available
	Drive []uint8
}

// NewROMSet creates a ROMSet from the supplied data. The size of each ROM
// must be exact.
func NewROMSet(basic, kernal, chargen []uint8) (*ROMSet, error) {
	roms := &ROMSet{}

	if len(basic) != SizeBASIC {
		return nil, faults.Errorf(faults.ConfigurationError, "BASIC ROM is %d bytes, should be %d", len(basic), SizeBASIC)
	}
	if len(kernal) != SizeKERNAL {
		return nil, faults.Errorf(faults.ConfigurationError, "KERNAL ROM is %d bytes, should be %d", len(kernal), SizeKERNAL)
	}
	if len(chargen) != SizeCHARGEN {
		return nil, faults.Errorf(faults.ConfigurationError, "character ROM is %d bytes, should be %d", len(chargen), SizeCHARGEN)
	}

	copy(roms.BASIC[:], basic)
	copy(roms.KERNAL[:], kernal)
	copy(roms.CHARGEN[:], chargen)

	return roms, nil
}

// SetDriveROM adds the 1541 DOS ROM to the set.
func (roms *ROMSet) SetDriveROM(data []uint8) error {
	if len(data) != SizeDrive {
		return faults.Errorf(faults.ConfigurationError, "drive ROM is %d bytes, should be %d", len(data), SizeDrive)
	}
	roms.Drive = make([]uint8, SizeDrive)
	copy(roms.Drive, data)
	return nil
}

// LoadROMSet loads the ROMs from the directory. A missing drive ROM is not an
// error.
func LoadROMSet(dir string) (*ROMSet, error) {
	basic, err := loadROM(dir, namesBASIC)
	if err != nil {
		return nil, err
	}
	kernal, err := loadROM(dir, namesKERNAL)
	if err != nil {
		return nil, err
	}
	chargen, err := loadROM(dir, namesCHARGEN)
	if err != nil {
		return nil, err
	}

	roms, err := NewROMSet(basic, kernal, chargen)
	if err != nil {
		return nil, err
	}

	drive, err := loadROM(dir, namesDrive)
	if err == nil {
		err = roms.SetDriveROM(drive)
		if err != nil {
			return nil, err
		}
	}

	return roms, nil
}

func loadROM(dir string, names []string) ([]uint8, error) {
	for _, n := range names {
		data, err := os.ReadFile(filepath.Join(dir, n))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, curated.Errorf(faults.ConfigurationError, fmt.Errorf("memory: %w", err))
		}
	}
	return nil, faults.Errorf(faults.ConfigurationError, "no %s ROM in %s", names[0], dir)
}
