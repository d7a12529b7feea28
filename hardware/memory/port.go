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

// Bits of the processor port data register with a fixed purpose.
const (
	PortCassetteWrite = uint8(0x08)
	PortCassetteSense = uint8(0x10)
	PortCassetteMotor = uint8(0x20)
)

// ProcessorPort is the 6-bit I/O port built into the 6510. Address $00 is the
// data direction register and address $01 is the data register. A bit set in
// the DDR makes the corresponding data bit an output.
//
// Bits 0 to 2 select the memory banks. Bits 3 to 5 are connected to the
// datasette.
type ProcessorPort struct {
	DDR  uint8
	Data uint8

	// the cassette sense line is pulled low when a datasette button is
	// pressed
	sense bool

	// called whenever the output of the port changes
	onChange func()
}

// Output returns the level of the output lines. Lines configured as input are
// pulled high.
func (p *ProcessorPort) Output() uint8 {
	return p.Data | ^p.DDR
}

// Selector returns the bank selector. See the memorymap package.
func (p *ProcessorPort) Selector() uint8 {
	return p.Output() & 0x07
}

// Motor returns true if the datasette motor is switched on. The motor line is
// active low.
func (p *ProcessorPort) Motor() bool {
	return p.Output()&PortCassetteMotor == 0
}

// CassetteWrite returns the level of the cassette write line.
func (p *ProcessorPort) CassetteWrite() bool {
	return p.Output()&PortCassetteWrite == PortCassetteWrite
}

// SetSense sets the state of the cassette sense line. The argument should be
// true if a datasette button is pressed.
func (p *ProcessorPort) SetSense(pressed bool) {
	p.sense = pressed
}

// OnChange sets the function to call when the output of the port changes.
func (p *ProcessorPort) OnChange(f func()) {
	p.onChange = f
}

func (p *ProcessorPort) read(address uint16) uint8 {
	if address == 0x0000 {
		return p.DDR
	}

	// input lines are pulled high except for the sense line. bits 6 and 7
	// are not connected and read back the last value written
	in := uint8(0x3f)
	if p.sense {
		in &^= PortCassetteSense
	}
	in |= p.Data & 0xc0

	return p.Data&p.DDR | in&^p.DDR
}

func (p *ProcessorPort) write(address uint16, data uint8) {
	before := p.Output()
	if address == 0x0000 {
		p.DDR = data
	} else {
		p.Data = data
	}
	if p.onChange != nil && before != p.Output() {
		p.onChange()
	}
}

func (p *ProcessorPort) reset() {
	p.DDR = 0x00
	p.Data = 0x00
}
