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

package hostterm

import (
	"github.com/technic0/Ready/hardware/input"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
)

// Press is a key typed in the host terminal. Shift is true if the key must
// be pressed with the left shift key.
type Press struct {
	Key   keyboard.Key
	Shift bool
}

// the keys for characters that do not need the shift key
const unshifted = "abcdefghijklmnopqrstuvwxyz0123456789+-.:@,*;=/"

// characters that need the shift key and the key that is pressed with it
var shifted = map[byte]byte{
	'!': '1', '"': '2', '#': '3', '$': '4', '%': '5', '&': '6', '\'': '7',
	'(': '8', ')': '9', '<': ',', '>': '.', '?': '/', '[': ':', ']': ';',
}

// ANSI cursor sequences
var cursors = map[byte]keyboard.Key{
	'A': keyboard.CursorUp,
	'B': keyboard.CursorDown,
	'C': keyboard.CursorRight,
	'D': keyboard.CursorLeft,
}

func lookup(b byte) (keyboard.Key, bool) {
	return keyboard.LookupKey(string(b))
}

// Translate the bytes read from the terminal into key presses. Bytes that
// have no equivalent on the C64 keyboard are ignored.
func Translate(b []byte) []Press {
	var p []Press

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == 0x1b:
			if i+2 < len(b) && b[i+1] == '[' {
				if k, ok := cursors[b[i+2]]; ok {
					p = append(p, Press{Key: k})
					i += 2
					continue
				}
			}
			p = append(p, Press{Key: keyboard.RunStop})
		case c == '\r' || c == '\n':
			p = append(p, Press{Key: keyboard.Return})
		case c == 0x7f || c == 0x08:
			p = append(p, Press{Key: keyboard.Delete})
		case c == ' ':
			p = append(p, Press{Key: keyboard.Space})
		case c >= 'A' && c <= 'Z':
			if k, ok := lookup(c - 'A' + 'a'); ok {
				p = append(p, Press{Key: k, Shift: true})
			}
		default:
			if s, ok := shifted[c]; ok {
				if k, ok := lookup(s); ok {
					p = append(p, Press{Key: k, Shift: true})
				}
				continue
			}
			for j := range len(unshifted) {
				if unshifted[j] == c {
					if k, ok := lookup(c); ok {
						p = append(p, Press{Key: k})
					}
					break
				}
			}
		}
	}

	return p
}

// DefaultHold is the number of frames a key is held down for.
const DefaultHold = 3

type held struct {
	press  Press
	frames int
}

// Keys turns key presses into a sequence of key down and key up events. Only
// one key is held down at a time and presses that arrive while a key is held
// are queued.
type Keys struct {
	hold    int
	queue   []Press
	current *held
}

// NewKeys is the preferred method of initialisation for the Keys type. Each
// key is held down for the number of frames.
func NewKeys(hold int) *Keys {
	return &Keys{hold: max(hold, 1)}
}

// Pending returns true if there are keys waiting to be released or pressed.
func (ks *Keys) Pending() bool {
	return ks.current != nil || len(ks.queue) > 0
}

// Frame should be called once per frame with any key presses that have
// arrived since the last frame. Returns the events to apply to the machine
// for the coming frame.
func (ks *Keys) Frame(presses []Press) []input.Event {
	ks.queue = append(ks.queue, presses...)

	var ev []input.Event

	if ks.current != nil {
		ks.current.frames--
		if ks.current.frames > 0 {
			return nil
		}
		ev = append(ev, input.Event{Kind: input.KeyUp, Key: ks.current.press.Key})
		if ks.current.press.Shift {
			ev = append(ev, input.Event{Kind: input.KeyUp, Key: keyboard.LeftShift})
		}
		ks.current = nil

		// leave one frame with no keys pressed so that repeated keys are
		// seen as separate presses
		return ev
	}

	if len(ks.queue) == 0 {
		return nil
	}

	p := ks.queue[0]
	ks.queue = ks.queue[1:]

	if p.Shift {
		ev = append(ev, input.Event{Kind: input.KeyDown, Key: keyboard.LeftShift})
	}
	ev = append(ev, input.Event{Kind: input.KeyDown, Key: p.Key})
	ks.current = &held{press: p, frames: ks.hold}

	return ev
}
