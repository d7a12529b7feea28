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

package input

import (
	"fmt"
	"strings"

	"github.com/technic0/Ready/curated"
	"github.com/technic0/Ready/hardware/peripherals"
	"github.com/technic0/Ready/hardware/peripherals/joystick"
	"github.com/technic0/Ready/hardware/peripherals/keyboard"
)

// Kind is the type of an input event.
type Kind int

// List of valid Kind values.
const (
	NoEvent Kind = iota
	KeyDown
	KeyUp
	JoystickState
	Restore
	Lightpen
)

var kindNames = map[Kind]string{
	NoEvent:       "none",
	KeyDown:       "keydown",
	KeyUp:         "keyup",
	JoystickState: "joystick",
	Restore:       "restore",
	Lightpen:      "lightpen",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Event is a single input event. The fields used depend on the Kind.
type Event struct {
	Kind Kind

	// KeyDown and KeyUp
	Key keyboard.Key

	// JoystickState. Port is peripherals.Joystick1 or peripherals.Joystick2
	Port      peripherals.ID
	Direction joystick.Direction
	Fire      bool

	// Restore and Lightpen
	Pressed bool
}

// TimedEvent is an Event stamped with the machine's cycle counter.
type TimedEvent struct {
	Cycle uint64
	Event
}

func (ev Event) String() string {
	b, _ := ev.MarshalText()
	return string(b)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (ev Event) MarshalText() ([]byte, error) {
	var s string
	switch ev.Kind {
	case KeyDown, KeyUp:
		s = fmt.Sprintf("%s:%s", ev.Kind, ev.Key)
	case JoystickState:
		s = fmt.Sprintf("%s:%s:%s", ev.Kind, ev.Port, ev.Direction)
		if ev.Fire {
			s += ":fire"
		}
	case Restore, Lightpen:
		if ev.Pressed {
			s = fmt.Sprintf("%s:down", ev.Kind)
		} else {
			s = fmt.Sprintf("%s:up", ev.Kind)
		}
	default:
		s = NoEvent.String()
	}
	return []byte(s), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (ev *Event) UnmarshalText(text []byte) error {
	f := strings.Split(strings.TrimSpace(string(text)), ":")

	*ev = Event{}
	for k, n := range kindNames {
		if n == f[0] {
			ev.Kind = k
			break
		}
	}

	switch ev.Kind {
	case KeyDown, KeyUp:
		if len(f) != 2 {
			break
		}
		k, ok := keyboard.LookupKey(f[1])
		if !ok {
			return curated.Errorf("input: unknown key: %s", f[1])
		}
		ev.Key = k
		return nil

	case JoystickState:
		if len(f) < 3 || len(f) > 4 {
			break
		}
		ev.Port = peripherals.ID(f[1])
		if ev.Port != peripherals.Joystick1 && ev.Port != peripherals.Joystick2 {
			return curated.Errorf("input: not a joystick port: %s", f[1])
		}
		d, err := parseDirection(f[2])
		if err != nil {
			return err
		}
		ev.Direction = d
		if len(f) == 4 {
			if f[3] != "fire" {
				break
			}
			ev.Fire = true
		}
		return nil

	case Restore, Lightpen:
		if len(f) != 2 {
			break
		}
		switch f[1] {
		case "down":
			ev.Pressed = true
			return nil
		case "up":
			return nil
		}

	case NoEvent:
		if f[0] == NoEvent.String() {
			return nil
		}
		return curated.Errorf("input: unknown event: %s", f[0])
	}

	return curated.Errorf("input: malformed %s event: %s", ev.Kind, text)
}

func parseDirection(s string) (joystick.Direction, error) {
	var d joystick.Direction
	if s == joystick.Centre.String() {
		return d, nil
	}
	for _, n := range strings.Split(s, "+") {
		switch n {
		case "up":
			d |= joystick.Up
		case "down":
			d |= joystick.Down
		case "left":
			d |= joystick.Left
		case "right":
			d |= joystick.Right
		default:
			return d, curated.Errorf("input: unknown direction: %s", n)
		}
	}
	return d, nil
}
