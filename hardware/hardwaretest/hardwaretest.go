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

// Package hardwaretest creates machines with a minimal ROM set for use in
// test functions.
//
// The KERNAL of the test ROM set runs this program from $E000:
//
//	E000  LDA #$01
//	E002  STA $0400
//	E005  BNE $E000
//
// The NMI handler at $E100 loops forever. The drive ROM increments zero page
// address $00 in a loop.
package hardwaretest

import (
	"path/filepath"
	"testing"

	"github.com/technic0/Ready/environment"
	"github.com/technic0/Ready/hardware"
	"github.com/technic0/Ready/hardware/memory"
	"github.com/technic0/Ready/hardware/preferences"
	"github.com/technic0/Ready/test"
)

// Program is the code at the start of the test KERNAL.
var Program = []uint8{0xa9, 0x01, 0x8d, 0x00, 0x04, 0xd0, 0xf9}

// ROMs returns the test ROM set.
func ROMs(t *testing.T, withDrive bool) *memory.ROMSet {
	t.Helper()

	kernal := make([]uint8, memory.SizeKERNAL)
	copy(kernal, Program)
	copy(kernal[0x100:], []uint8{0x4c, 0x00, 0xe1})

	// NMI, RESET and IRQ vectors
	copy(kernal[0x1ffa:], []uint8{0x00, 0xe1, 0x00, 0xe0, 0x00, 0xe0})

	roms, err := memory.NewROMSet(make([]uint8, memory.SizeBASIC), kernal, make([]uint8, memory.SizeCHARGEN))
	test.DemandSuccess(t, err)

	if withDrive {
		rom := make([]uint8, memory.SizeDrive)
		copy(rom, []uint8{0xe6, 0x00, 0x4c, 0x00, 0xc0})
		copy(rom[0x3ffc:], []uint8{0x00, 0xc0})
		test.DemandSuccess(t, roms.SetDriveROM(rom))
	}

	return roms
}

// Environment returns a main emulation environment with preferences stored
// in a temporary directory.
func Environment(t *testing.T, withDrive bool) *environment.Environment {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.DriveAttached.Set(withDrive))

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	return env
}

// NewMachine returns a machine using the test ROM set.
func NewMachine(t *testing.T, withDrive bool) *hardware.Machine {
	t.Helper()

	m, err := hardware.NewMachine(Environment(t, withDrive), ROMs(t, withDrive))
	test.DemandSuccess(t, err)
	return m
}
