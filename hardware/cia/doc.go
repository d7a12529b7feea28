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

// Package cia emulates the 6526 Complex Interface Adapter. The C64 has two of
// them. CIA1 at $DC00 scans the keyboard and joysticks and raises IRQ. CIA2 at
// $DD00 drives the serial bus and the VIC-II bank select and raises NMI.
//
// The external world is connected to the two 8-bit ports through the
// PortDevice interface. Port lines are open collector: the value read from a
// port is the output of the CIA ANDed with the value every attached device
// drives onto the lines.
//
// The CIA is stepped once per system clock cycle. Timers count down on the
// clock (or on the CNT pin, or on timer A underflows in the case of timer B)
// and the time of day clock counts tenths of a second from the mains
// frequency of the TV specification.
package cia
