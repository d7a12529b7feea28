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

package hardware

import (
	"github.com/technic0/Ready/faults"
	"github.com/technic0/Ready/logger"
	"github.com/technic0/Ready/media"
)

// the start of BASIC program text and the zero page pointers that are set
// after a program is loaded
const (
	basicStart = 0x0801
	ptrVARTAB  = 0x2d
	ptrARYTAB  = 0x2f
	ptrSTREND  = 0x31
	ptrLoadEnd = 0xae
)

// InsertMedia inserts the media into the appropriate device. Tapes go into
// the datasette and disks into the disk drive. Programs are copied directly
// into RAM.
//
// The machine is unchanged if an error is returned.
func (m *Machine) InsertMedia(md media.Media) error {
	switch md := md.(type) {
	case *media.Tape:
		m.Datasette.Insert(md)
	case *media.Disk:
		if m.Drive == nil {
			return faults.Errorf(faults.MediaError, faults.MediaNotPresent, "no disk drive attached")
		}
		m.Drive.Insert(md)
	case *media.Program:
		m.quickLoad(md)
	default:
		return faults.Errorf(faults.MediaError, faults.MediaMalformed, "unsupported media")
	}
	return nil
}

// InsertFile loads the media from the file and inserts it. See media.Load()
// and InsertMedia().
func (m *Machine) InsertFile(filename string) error {
	md, err := media.Load(filename)
	if err != nil {
		return err
	}
	return m.InsertMedia(md)
}

// EjectMedia removes media of the kind from its device. Programs cannot be
// ejected.
func (m *Machine) EjectMedia(kind media.Kind) error {
	switch kind {
	case media.TapeMedia:
		if m.Datasette.Tape() == nil {
			return faults.Errorf(faults.MediaError, faults.MediaNotPresent, "datasette")
		}
		m.Datasette.Eject()
	case media.DiskMedia:
		if m.Drive == nil || m.Drive.Disk() == nil {
			return faults.Errorf(faults.MediaError, faults.MediaNotPresent, "drive")
		}
		m.Drive.Eject()
	default:
		return faults.Errorf(faults.MediaError, faults.MediaNotPresent, kind)
	}
	return nil
}

// quickLoad copies the program into RAM regardless of the bank selector. A
// program loaded at the start of BASIC has the BASIC pointers set so that it
// can be RUN.
func (m *Machine) quickLoad(p *media.Program) {
	for i, b := range p.Data {
		m.Mem.PokeRAM(p.Address+uint16(i), b)
	}

	end := p.End()
	m.pokeWord(ptrLoadEnd, end)
	if p.Address == basicStart {
		m.pokeWord(ptrVARTAB, end)
		m.pokeWord(ptrARYTAB, end)
		m.pokeWord(ptrSTREND, end)
	}

	logger.Logf(m.env, "machine", "loaded %s at %#04x-%#04x", p.Name(), p.Address, end)
}

func (m *Machine) pokeWord(address uint16, v uint16) {
	m.Mem.PokeRAM(address, uint8(v))
	m.Mem.PokeRAM(address+1, uint8(v>>8))
}
