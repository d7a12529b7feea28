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

// Package datasette implements the Commodore 1530 tape unit.
//
// The datasette is connected to the cassette lines of the 6510 processor
// port and to the FLAG pin of CIA1. The motor is switched by bit 5 of the
// port (active low) and bit 4 senses whether a button is pressed.
//
// Tapes are played as the sequence of pulses decoded by the media package.
// The signal read from the tape is a square wave and every pulse begins with
// a falling edge, which sets the FLAG bit in CIA1. The position on the tape
// only advances while the motor is running and PLAY is pressed.
//
// Writing to tape is not supported.
package datasette
