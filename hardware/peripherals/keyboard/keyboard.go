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

package keyboard

import (
	"fmt"
	"strings"

	"github.com/technic0/Ready/hardware/peripherals"
)

// Keyboard implements the peripherals.Peripheral interface.
type Keyboard struct {
	// pressed keys. indexed by column and with a bit for each row
	matrix [8]uint8

	// port outputs of the CIA. a low bit in colSelect selects a column and a
	// low bit in rowSelect selects a row
	colSelect uint8
	rowSelect uint8

	restore   bool
	shiftLock bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard() *Keyboard {
	kb := &Keyboard{}
	kb.Reset()
	return kb
}

func (kb *Keyboard) String() string {
	s := strings.Builder{}
	for k := range matrixKeys {
		if kb.Pressed(k) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(k.String())
		}
	}
	if kb.restore {
		s.WriteString(" [restore]")
	}
	if kb.shiftLock {
		s.WriteString(" [shift lock]")
	}
	return strings.TrimSpace(s.String())
}

// ID implements the peripherals.Peripheral interface.
func (kb *Keyboard) ID() peripherals.ID {
	return peripherals.Keyboard
}

// Reset implements the peripherals.Peripheral interface. All keys are released
// and shift lock is turned off.
func (kb *Keyboard) Reset() {
	clear(kb.matrix[:])
	kb.colSelect = 0xff
	kb.rowSelect = 0xff
	kb.restore = false
	kb.shiftLock = false
}

// Advance implements the peripherals.Peripheral interface. The keyboard has
// no cycle driven behaviour.
func (kb *Keyboard) Advance(_ int) {
}

// KeyDown presses the key. Pressing ShiftLock toggles the lock.
func (kb *Keyboard) KeyDown(k Key) error {
	switch {
	case k.InMatrix():
		kb.matrix[k>>3] |= 1 << (k & 0x07)
	case k == Restore:
		kb.restore = true
	case k == ShiftLock:
		kb.shiftLock = !kb.shiftLock
	default:
		m, ok := shifted[k]
		if !ok {
			return fmt.Errorf("keyboard: unknown key (%d)", k)
		}
		_ = kb.KeyDown(LeftShift)
		_ = kb.KeyDown(m)
	}
	return nil
}

// KeyUp releases the key. Releasing ShiftLock has no effect.
func (kb *Keyboard) KeyUp(k Key) error {
	switch {
	case k.InMatrix():
		kb.matrix[k>>3] &^= 1 << (k & 0x07)
	case k == Restore:
		kb.restore = false
	case k == ShiftLock:
	default:
		m, ok := shifted[k]
		if !ok {
			return fmt.Errorf("keyboard: unknown key (%d)", k)
		}
		_ = kb.KeyUp(m)
		_ = kb.KeyUp(LeftShift)
	}
	return nil
}

// ReleaseAll releases every key. Shift lock is not affected.
func (kb *Keyboard) ReleaseAll() {
	clear(kb.matrix[:])
	kb.restore = false
}

// Active returns true if any key is pressed or shift lock is engaged.
func (kb *Keyboard) Active() bool {
	for _, v := range kb.matrix {
		if v != 0 {
			return true
		}
	}
	return kb.restore || kb.shiftLock
}

// Pressed returns true if the key is pressed. Shift lock counts as the left
// shift key being pressed.
func (kb *Keyboard) Pressed(k Key) bool {
	switch {
	case k.InMatrix():
		return kb.effective(int(k>>3))&(1<<(k&0x07)) != 0
	case k == Restore:
		return kb.restore
	case k == ShiftLock:
		return kb.shiftLock
	}
	m, ok := shifted[k]
	return ok && kb.Pressed(m) && kb.Pressed(LeftShift)
}

// the pressed rows of a column including the shift lock
func (kb *Keyboard) effective(col int) uint8 {
	v := kb.matrix[col]
	if kb.shiftLock && col == int(LeftShift>>3) {
		v |= 1 << (LeftShift & 0x07)
	}
	return v
}

// BusWrite implements the peripherals.Peripheral interface.
func (kb *Keyboard) BusWrite(address uint16, data uint8) {
	switch address {
	case peripherals.PortA:
		kb.colSelect = data
	case peripherals.PortB:
		kb.rowSelect = data
	}
}

// BusRead implements the peripherals.Peripheral interface. Reading port B
// returns the rows connected to the selected columns. Reading port A returns
// the columns connected to the selected rows.
func (kb *Keyboard) BusRead(address uint16) uint8 {
	var v uint8

	switch address {
	case peripherals.PortA:
		for col := range 8 {
			if kb.effective(col)&^kb.rowSelect != 0 {
				v |= 1 << col
			}
		}
	case peripherals.PortB:
		for col := range 8 {
			if kb.colSelect&(1<<col) == 0 {
				v |= kb.effective(col)
			}
		}
	}

	return ^v
}

// AssertsInterrupt implements the peripherals.Peripheral interface. Returns
// true while RESTORE is held down.
func (kb *Keyboard) AssertsInterrupt() bool {
	return kb.restore
}

// State is the state of the keyboard.
type State struct {
	Matrix    [8]uint8
	ColSelect uint8
	RowSelect uint8
	Restore   bool
	ShiftLock bool
}

// State returns the current state of the keyboard.
func (kb *Keyboard) State() State {
	return State{
		Matrix:    kb.matrix,
		ColSelect: kb.colSelect,
		RowSelect: kb.rowSelect,
		Restore:   kb.restore,
		ShiftLock: kb.shiftLock,
	}
}

// SetState applies the state to the keyboard.
func (kb *Keyboard) SetState(s State) {
	kb.matrix = s.Matrix
	kb.colSelect = s.ColSelect
	kb.rowSelect = s.RowSelect
	kb.restore = s.Restore
	kb.shiftLock = s.ShiftLock
}
