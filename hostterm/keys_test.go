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

package hostterm_test

import (
	"testing"

	"github.com/technic0/Ready/hardware/input"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
	"github.com/technic0/Ready/hostterm"
	"github.com/technic0/Ready/test"
)

func TestTranslate(t *testing.T) {
	p := hostterm.Translate([]byte("aZ1!\r \x7f"))
	test.DemandEquality(t, len(p), 7)
	test.ExpectEquality(t, p[0], hostterm.Press{Key: keyboard.A})
	test.ExpectEquality(t, p[1], hostterm.Press{Key: keyboard.Z, Shift: true})
	test.ExpectEquality(t, p[2].Key.String(), "1")
	test.ExpectEquality(t, p[2].Shift, false)
	test.ExpectEquality(t, p[3].Key.String(), "1")
	test.ExpectEquality(t, p[3].Shift, true)
	test.ExpectEquality(t, p[4].Key, keyboard.Return)
	test.ExpectEquality(t, p[5].Key, keyboard.Space)
	test.ExpectEquality(t, p[6].Key, keyboard.Delete)

	// cursor sequence and lone escape
	p = hostterm.Translate([]byte("\x1b[A\x1b"))
	test.DemandEquality(t, len(p), 2)
	test.ExpectEquality(t, p[0].Key, keyboard.CursorUp)
	test.ExpectEquality(t, p[1].Key, keyboard.RunStop)

	// characters with no key are ignored
	p = hostterm.Translate([]byte("~\t"))
	test.ExpectEquality(t, len(p), 0)
}

func TestKeys(t *testing.T) {
	ks := hostterm.NewKeys(2)
	test.ExpectEquality(t, ks.Pending(), false)

	ev := ks.Frame(hostterm.Translate([]byte("Aa")))
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality(t, ev[0], input.Event{Kind: input.KeyDown, Key: keyboard.LeftShift})
	test.ExpectEquality(t, ev[1], input.Event{Kind: input.KeyDown, Key: keyboard.A})
	test.ExpectEquality(t, ks.Pending(), true)

	// held for two frames
	test.ExpectEquality(t, len(ks.Frame(nil)), 0)

	ev = ks.Frame(nil)
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality(t, ev[0], input.Event{Kind: input.KeyUp, Key: keyboard.A})
	test.ExpectEquality(t, ev[1], input.Event{Kind: input.KeyUp, Key: keyboard.LeftShift})

	// the queued key
	ev = ks.Frame(nil)
	test.DemandEquality(t, len(ev), 1)
	test.ExpectEquality(t, ev[0], input.Event{Kind: input.KeyDown, Key: keyboard.A})

	test.ExpectEquality(t, len(ks.Frame(nil)), 0)
	ev = ks.Frame(nil)
	test.DemandEquality(t, len(ev), 1)
	test.ExpectEquality(t, ev[0].Kind, input.KeyUp)
	test.ExpectEquality(t, ks.Pending(), false)
}
