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

package drive_test

import (
	"testing"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/hardware/memory"
	"github.com/technic0/Ready/hardware/peripherals"
	"github.com/technic0/Ready/hardware/peripherals/drive"
	"github.com/technic0/Ready/hardware/peripherals/iec"
	"github.com/technic0/Ready/hardware/specification"
	"github.com/technic0/Ready/media"
	"github.com/technic0/Ready/test"
)

// the test ROM increments $00 in a loop. eight cycles per iteration
func testROM() []uint8 {
	rom := make([]uint8, memory.SizeDrive)
	copy(rom, []uint8{
		0xe6, 0x00, // INC $00
		0x4c, 0x00, 0xc0, // JMP $C000
	})
	rom[0x3ffc] = 0x00
	rom[0x3ffd] = 0xc0
	return rom
}

func newDrive(t *testing.T) (*drive.Drive, *iec.Bus) {
	t.Helper()
	bus := iec.NewBus()
	d, err := drive.NewDrive(nil, specification.SpecPAL, testROM(), bus, 8)
	test.DemandSuccess(t, err)
	return d, bus
}

// a blank 35 track disk with a name in the BAM
func blankDisk(t *testing.T) *media.Disk {
	t.Helper()
	img := make([]byte, 174848)
	bam := img[357*256:]
	for i := 0x90; i < 0xab; i++ {
		bam[i] = 0xa0
	}
	copy(bam[0x90:], "BLANK")
	d, err := media.DecodeD64("blank.d64", img)
	test.DemandSuccess(t, err)
	return d
}

// register addresses in the drive
const (
	via1PB  = 0x1800
	via1PCR = 0x180c
	via1IFR = 0x180d
	via2PB  = 0x1c00
	via2PA  = 0x1c01
	via2DDB = 0x1c02
	via2DDA = 0x1c03
	via2PCR = 0x1c0c
	via2IFR = 0x1c0d
)

func TestNewDrive(t *testing.T) {
	bus := iec.NewBus()
	_, err := drive.NewDrive(nil, specification.SpecPAL, make([]uint8, 100), bus, 8)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, faults.IsFatal(err))

	d, err := drive.NewDrive(nil, specification.SpecPAL, testROM(), bus, 8)
	test.DemandSuccess(t, err)
	test.DemandImplements[peripherals.Peripheral](t, d)
	test.ExpectEquality(t, d.ID(), peripherals.Drive8)

	_, err = drive.NewDrive(nil, specification.SpecPAL, testROM(), bus, 8)
	test.ExpectFailure(t, err)

	d.Remove()
	_, err = drive.NewDrive(nil, specification.SpecPAL, testROM(), bus, 8)
	test.ExpectSuccess(t, err)
}

func TestClock(t *testing.T) {
	// one second of system time is exactly one million drive cycles
	d, _ := newDrive(t)
	d.Advance(985248)
	test.ExpectEquality(t, d.BusRead(0x0000), 0x48)
	test.DemandSuccess(t, d.Err())

	// RAM is mirrored
	test.ExpectEquality(t, d.BusRead(0x0800), 0x48)

	// the drive can run ahead of the system but the total is the same
	d, _ = newDrive(t)
	for range 985248 {
		d.Advance(1)
	}
	test.ExpectEquality(t, d.BusRead(0x0000), 0x48)

	s, err := d.State()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Debt, 0)
	test.ExpectEquality(t, s.Acc, 0)

	// ROM is mirrored and unmapped addresses read the high byte
	test.ExpectEquality(t, d.BusRead(0x8000), 0xe6)
	test.ExpectEquality(t, d.BusRead(0x4000), 0x40)
}

func TestStepper(t *testing.T) {
	d, _ := newDrive(t)
	test.ExpectEquality(t, d.HalfTrack(), 35)

	// port B outputs: stepper, motor, LED and density
	d.BusWrite(via2DDB, 0x6f)
	test.ExpectEquality(t, d.HalfTrack(), 36)
	test.ExpectFailure(t, d.Motor())

	d.BusWrite(via2PB, 0x65)
	test.ExpectEquality(t, d.HalfTrack(), 37)
	d.BusWrite(via2PB, 0x66)
	test.ExpectEquality(t, d.HalfTrack(), 38)
	d.BusWrite(via2PB, 0x65)
	test.ExpectEquality(t, d.HalfTrack(), 37)
	d.BusWrite(via2PB, 0x64)
	test.ExpectEquality(t, d.HalfTrack(), 36)

	// two phases at once does not move the head
	d.BusWrite(via2PB, 0x66)
	d.BusWrite(via2PB, 0x64)
	test.ExpectEquality(t, d.HalfTrack(), 36)

	test.ExpectSuccess(t, d.Motor())
	test.ExpectFailure(t, d.LED())
	d.BusWrite(via2PB, 0x6c)
	test.ExpectSuccess(t, d.LED())
	test.ExpectEquality(t, d.String(), "drive8: track 19.0 motor led")
}

// spin the disk until two SYNC marks have passed and return the first byte
// after each of them
func readAfterSync(t *testing.T, d *drive.Drive) []uint8 {
	t.Helper()

	var found []uint8
	var sync bool
	for range 20000 {
		d.Advance(1)
		if d.BusRead(via2PB)&0x80 == 0x00 {
			sync = true
		}
		if d.BusRead(via2IFR)&0x02 == 0x02 {
			b := d.BusRead(via2PA)
			d.BusWrite(via2IFR, 0x02)
			if sync {
				found = append(found, b)
				sync = false
			}
		}
		if len(found) == 2 {
			break
		}
	}
	return found
}

func spinUp(d *drive.Drive) {
	d.BusWrite(via2DDB, 0x6f)
	d.BusWrite(via2PB, 0x64)
	d.BusWrite(via2PCR, 0xee)
}

func TestRead(t *testing.T) {
	d, _ := newDrive(t)
	spinUp(d)
	d.Insert(blankDisk(t))

	// header blocks start with $52 and data blocks with $55 once GCR encoded
	found := readAfterSync(t, d)
	test.DemandEquality(t, len(found), 2)
	test.ExpectEquality(t, found[0], 0x52)
	test.ExpectEquality(t, found[1], 0x55)

	// byte ready is connected to the SO pin
	s, err := d.State()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.CPU.Status&0x40, 0x40)

	// without a disk there is nothing to read
	d.Eject()
	test.ExpectEquality(t, len(readAfterSync(t, d)), 0)
}

func TestWrite(t *testing.T) {
	d, _ := newDrive(t)
	spinUp(d)
	disk := blankDisk(t)
	d.Insert(disk)
	test.ExpectEquality(t, d.BusRead(via2PB)&0x10, 0x10)

	// CB2 low selects write mode
	d.BusWrite(via2DDA, 0xff)
	d.BusWrite(via2PA, 0x00)
	d.BusWrite(via2PCR, 0xce)
	d.Advance(1000)

	_, err := d.State()
	test.ExpectSuccess(t, curated.Has(err, faults.IncompleteCapture))
	test.ExpectFailure(t, disk.Modified())

	d.BusWrite(via2PCR, 0xee)
	d.Advance(1)
	test.ExpectSuccess(t, disk.Modified())
	_, err = d.State()
	test.ExpectSuccess(t, err)

	// write protected disks are not changed
	disk = blankDisk(t)
	disk.WriteProtected = true
	d.Insert(disk)
	test.ExpectEquality(t, d.BusRead(via2PB)&0x10, 0x00)
	d.BusWrite(via2PCR, 0xce)
	d.Advance(1000)
	d.BusWrite(via2PCR, 0xee)
	d.Advance(1)
	test.ExpectFailure(t, disk.Modified())
}

func TestATN(t *testing.T) {
	d, bus := newDrive(t)

	// CA1 on the positive edge
	d.BusWrite(via1PCR, 0x01)
	test.ExpectEquality(t, d.BusRead(via1IFR)&0x02, 0x00)
	test.ExpectEquality(t, d.BusRead(via1PB)&0x80, 0x00)

	bus.Computer().BusWrite(peripherals.PortA, 0x08)
	test.ExpectEquality(t, d.BusRead(via1IFR)&0x02, 0x02)
	test.ExpectEquality(t, d.BusRead(via1PB)&0x80, 0x80)
}

func TestDirectory(t *testing.T) {
	d, _ := newDrive(t)

	_, err := d.Directory()
	test.ExpectSuccess(t, curated.Has(err, faults.MediaNotPresent))

	d.Insert(blankDisk(t))
	dir, err := d.Directory()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dir.Name, "BLANK")
}

func TestState(t *testing.T) {
	d, _ := newDrive(t)
	spinUp(d)
	d.Insert(blankDisk(t))
	d.Advance(5000)

	s, err := d.State()
	test.DemandSuccess(t, err)

	w, _ := newDrive(t)
	w.Insert(blankDisk(t))
	test.DemandSuccess(t, w.CheckState(s))
	w.SetState(s)

	d.Advance(5000)
	w.Advance(5000)
	ds, err := d.State()
	test.DemandSuccess(t, err)
	ws, err := w.State()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ws, ds)

	bad := s
	bad.Mech.HalfTrack = 84
	test.ExpectFailure(t, w.CheckState(bad))
	bad = s
	bad.Acc = -1
	test.ExpectFailure(t, w.CheckState(bad))
}
