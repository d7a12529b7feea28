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

import "strings"

// Key is a key on the C64 keyboard. Keys in the matrix have a value of
// column*8+row, where the column is the bit of CIA1 port A that selects the
// key and the row is the bit of CIA1 port B that reads it.
type Key int

// Keys in the matrix.
const (
	Delete Key = iota
	Return
	CursorRight
	F7
	F1
	F3
	F5
	CursorDown

	Key3
	W
	A
	Key4
	Z
	S
	E
	LeftShift

	Key5
	R
	D
	Key6
	C
	F
	T
	X

	Key7
	Y
	G
	Key8
	B
	H
	U
	V

	Key9
	I
	J
	Key0
	M
	K
	O
	N

	Plus
	P
	L
	Minus
	Period
	Colon
	At
	Comma

	Pound
	Asterisk
	Semicolon
	Home
	RightShift
	Equals
	UpArrow
	Slash

	Key1
	LeftArrow
	Control
	Key2
	Space
	Commodore
	Q
	RunStop

	matrixKeys
)

// Keys outside the matrix.
const (
	// RESTORE is connected to the NMI line
	Restore Key = iota + matrixKeys

	// SHIFT LOCK is a latching left shift
	ShiftLock

	// keys that are shifted versions of matrix keys. on the real keyboard
	// they are typed with a shift key
	F2
	F4
	F6
	F8
	CursorUp
	CursorLeft

	numKeys
)

var names = [numKeys]string{
	"delete", "return", "right", "f7", "f1", "f3", "f5", "down",
	"3", "w", "a", "4", "z", "s", "e", "lshift",
	"5", "r", "d", "6", "c", "f", "t", "x",
	"7", "y", "g", "8", "b", "h", "u", "v",
	"9", "i", "j", "0", "m", "k", "o", "n",
	"+", "p", "l", "-", ".", ":", "@", ",",
	"pound", "*", ";", "home", "rshift", "=", "uparrow", "/",
	"1", "leftarrow", "ctrl", "2", "space", "commodore", "q", "runstop",
	"restore", "shiftlock",
	"f2", "f4", "f6", "f8", "up", "left",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "unknown"
	}
	return names[k]
}

// InMatrix returns true if the key is part of the keyboard matrix.
func (k Key) InMatrix() bool {
	return k >= 0 && k < matrixKeys
}

// shifted keys and the matrix key they are a shifted version of
var shifted = map[Key]Key{
	F2:         F1,
	F4:         F3,
	F6:         F5,
	F8:         F7,
	CursorUp:   CursorDown,
	CursorLeft: CursorRight,
}

// LookupKey returns the key with the name. Names are case insensitive.
func LookupKey(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range names {
		if n == name {
			return Key(k), true
		}
	}
	return 0, false
}

// AllKeys returns every key.
func AllKeys() []Key {
	keys := make([]Key, numKeys)
	for k := range keys {
		keys[k] = Key(k)
	}
	return keys
}
