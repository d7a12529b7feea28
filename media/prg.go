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

// Program is a PRG file. The first two bytes of the file are the load address.
type Program struct {
	name    string
	Address uint16
	Data    []byte
}

// Kind implements the Media interface.
func (p *Program) Kind() Kind {
	return ProgramMedia
}

// Name implements the Media interface.
func (p *Program) Name() string {
	return p.name
}

// End returns the address after the last byte of the program. It is always
// greater than Address.
func (p *Program) End() uint16 {
	return p.Address + uint16(len(p.Data))
}

// DecodePRG decodes a PRG file.
func DecodePRG(name string, data []byte) (*Program, error) {
	if len(data) < 3 {
		return nil, malformed(name, "program is too short")
	}
	// the end address must be representable. a program cannot finish on the
	// last byte of memory
	if (int(data[0])|int(data[1])<<8)+len(data)-2 > 0xffff {
		return nil, malformed(name, "program does not fit in memory")
	}
	return &Program{
		name:    name,
		Address: uint16(data[0]) | uint16(data[1])<<8,
		Data:    data[2:],
	}, nil
}
