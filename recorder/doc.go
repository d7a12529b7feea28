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

// Package recorder writes input events to a transcript file and plays them
// back. A transcript played back into a machine in the same starting state
// produces exactly the same emulation.
//
// The transcript is a text file. The header lines identify the recording and
// the configuration of the machine it was made with. Each line after the
// header is one event:
//
//	cycle, event
//
// where cycle is the value of the machine's cycle counter when the event was
// handled and event is in the format of input.Event.MarshalText().
//
// A playback that reaches a recorded cycle without the machine being at an
// instruction boundary on that cycle has diverged from the recording and
// fails with an error.
package recorder
