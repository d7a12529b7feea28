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
	"github.com/technic0/Ready/curated"
)

// Clock is the source of the timestamps for recorded events.
type Clock interface {
	Cycles() uint64
}

// Handler applies events to the machine.
type Handler interface {
	HandleEvent(Event) error
}

// the number of events that can be pushed before Process() is called
const pushedQueueLen = 64

// Input handles all forms of input into the machine.
type Input struct {
	clock   Clock
	handler Handler

	playback Playback
	recorder Recorder

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(clock Clock, handler Handler) *Input {
	return &Input{
		clock:   clock,
		handler: handler,
		pushed:  make(chan Event, pushedQueueLen),
	}
}

// HandleEvent applies the event immediately and passes it to the recorder.
// Should only be called from the goroutine running the machine.
//
// If a playback is attached the event is ignored and false is returned.
func (inp *Input) HandleEvent(ev Event) (bool, error) {
	if inp.playback != nil {
		return false, nil
	}

	if inp.recorder != nil {
		err := inp.recorder.RecordEvent(TimedEvent{Cycle: inp.clock.Cycles(), Event: ev})
		if err != nil {
			return false, curated.Errorf("input: %v", err)
		}
	}

	if err := inp.handler.HandleEvent(ev); err != nil {
		return false, err
	}

	return true, nil
}

// Process handles any pushed events and any playback events that are due.
// Should be called at instruction boundaries.
func (inp *Input) Process() error {
	if err := inp.handlePushed(); err != nil {
		return err
	}
	return inp.handlePlayback()
}
