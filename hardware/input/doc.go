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

// Package input coordinates the input into the machine. Input arrives in one
// of three ways:
//
// 1) Events handled immediately by the goroutine running the machine
// 2) Events pushed from a different goroutine
// 3) Events from a playback of a previous recording
//
// Pushed events are queued and are only handled when Process() is called.
// The machine calls Process() at instruction boundaries so an event never
// arrives in the middle of an instruction.
//
// Every handled event can be passed to a Recorder. Events are stamped with the
// machine's cycle counter so that a Playback from the same starting state
// reproduces the input at exactly the same moment. A recorder and a playback
// cannot be attached at the same time.
package input
