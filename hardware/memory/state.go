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

// State is the memory state that is saved in a snapshot. The ROMs are not
// part of the state and are identified by the snapshot fingerprint.
type State struct {
	RAM      [0x10000]uint8
	Colour   [0x400]uint8
	DDR      uint8
	Data     uint8
	Sense    bool
	Selector uint8
	VICBank  uint8
	LastData uint8
}

// State returns the current memory state.
func (mem *Memory) State() *State {
	return &State{
		RAM:      mem.ram,
		Colour:   mem.colour,
		DDR:      mem.Port.DDR,
		Data:     mem.Port.Data,
		Sense:    mem.Port.sense,
		Selector: mem.selector,
		VICBank:  mem.vicBank,
		LastData: mem.lastData,
	}
}

// SetState restores memory to a previously saved state. The selector is
// validated before any change is made.
func (mem *Memory) SetState(s *State) error {
	if err := mem.SetBank(s.Selector); err != nil {
		return err
	}
	mem.ram = s.RAM
	mem.colour = s.Colour
	mem.Port.DDR = s.DDR
	mem.Port.Data = s.Data
	mem.Port.sense = s.Sense
	mem.vicBank = s.VICBank
	mem.lastData = s.LastData
	return nil
}
