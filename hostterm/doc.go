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

// Package hostterm reads key presses from the host terminal and turns them
// into input events for the emulated keyboard. It is used when there is no
// window to receive key events.
//
// A terminal only reports that a key has been typed, not when it is released.
// The Keys type holds each key down for a number of frames before releasing
// it.
package hostterm
